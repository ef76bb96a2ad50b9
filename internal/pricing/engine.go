package pricing

import (
	"context"

	"github.com/homebarberid/booking-api/internal/httperr"
)

// DistanceResolver is satisfied by geo.Resolver. Resolution never fails;
// upstream trouble is absorbed behind the haversine fallback.
type DistanceResolver interface {
	ResolveKm(ctx context.Context, oLat, oLon, dLat, dLon float64) float64
}

type Quote struct {
	DeliveryFee float64
	TotalPrice  float64
}

type Engine struct {
	resolver DistanceResolver
}

func NewEngine(resolver DistanceResolver) *Engine {
	return &Engine{resolver: resolver}
}

// Compute prices a booking: delivery fee from the barber's location to
// the customer's, plus the service base price. The barber's coordinates
// must both be set; this gate runs before any distance lookup.
func (e *Engine) Compute(
	ctx context.Context,
	servicePrice float64,
	barberLat, barberLon *float64,
	customerLat, customerLon float64,
) (Quote, error) {

	if barberLat == nil || barberLon == nil {
		return Quote{}, httperr.ErrValidation("barber_location_missing")
	}

	km := e.resolver.ResolveKm(ctx, *barberLat, *barberLon, customerLat, customerLon)
	fee := DeliveryFee(km)

	return Quote{
		DeliveryFee: fee,
		TotalPrice:  servicePrice + fee,
	}, nil
}
