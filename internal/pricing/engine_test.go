package pricing

import (
	"context"
	"testing"

	"github.com/homebarberid/booking-api/internal/httperr"
)

type stubResolver struct {
	km     float64
	called bool
}

func (s *stubResolver) ResolveKm(ctx context.Context, oLat, oLon, dLat, dLon float64) float64 {
	s.called = true
	return s.km
}

func ptr(v float64) *float64 { return &v }

func TestComputeQuote(t *testing.T) {
	resolver := &stubResolver{km: 4}
	engine := NewEngine(resolver)

	q, err := engine.Compute(context.Background(), 50000, ptr(-6.2), ptr(106.8), -6.3, 106.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.DeliveryFee != 20000 {
		t.Errorf("delivery fee = %f, want 20000", q.DeliveryFee)
	}
	if q.TotalPrice != 70000 {
		t.Errorf("total price = %f, want 70000", q.TotalPrice)
	}
}

func TestComputeCapsFee(t *testing.T) {
	engine := NewEngine(&stubResolver{km: 80})

	q, err := engine.Compute(context.Background(), 50000, ptr(-6.2), ptr(106.8), -7.0, 110.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.DeliveryFee != MaxFee {
		t.Errorf("delivery fee = %f, want capped %d", q.DeliveryFee, MaxFee)
	}
	if q.TotalPrice != 150000 {
		t.Errorf("total price = %f, want 150000", q.TotalPrice)
	}
}

func TestComputeRejectsMissingBarberLocation(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon *float64
	}{
		{"both nil", nil, nil},
		{"latitude nil", nil, ptr(106.8)},
		{"longitude nil", ptr(-6.2), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &stubResolver{km: 4}
			engine := NewEngine(resolver)

			_, err := engine.Compute(context.Background(), 50000, tc.lat, tc.lon, -6.3, 106.9)
			if !httperr.IsBusiness(err, "barber_location_missing") {
				t.Fatalf("expected barber_location_missing, got %v", err)
			}
			if resolver.called {
				t.Fatalf("distance must not be resolved when location is missing")
			}
		})
	}
}
