package pricing

import "github.com/homebarberid/booking-api/internal/models"

// ChangeSet is the subset of booking-update fields that feed the price.
// Nil means "not supplied in this update". Repricing is a dirty check:
// the cached fee/total are only recomputed when one of these four inputs
// actually differs from the stored booking, so untouched bookings are
// never silently rewritten with a fresh (possibly different) quote.
type ChangeSet struct {
	ServiceID       *uint
	BarberProfileID *uint
	Latitude        *float64
	Longitude       *float64
}

func (c ChangeSet) RequiresReprice(b *models.Booking) bool {
	if c.ServiceID != nil && *c.ServiceID != b.ServiceID {
		return true
	}
	if c.BarberProfileID != nil && *c.BarberProfileID != b.BarberProfileID {
		return true
	}
	if c.Latitude != nil && *c.Latitude != b.Latitude {
		return true
	}
	if c.Longitude != nil && *c.Longitude != b.Longitude {
		return true
	}
	return false
}

// EffectiveServiceID returns the service that will apply after the
// update: the supplied one, or the stored one when unchanged.
func (c ChangeSet) EffectiveServiceID(b *models.Booking) uint {
	if c.ServiceID != nil {
		return *c.ServiceID
	}
	return b.ServiceID
}

func (c ChangeSet) EffectiveBarberProfileID(b *models.Booking) uint {
	if c.BarberProfileID != nil {
		return *c.BarberProfileID
	}
	return b.BarberProfileID
}

func (c ChangeSet) EffectiveCoordinates(b *models.Booking) (float64, float64) {
	lat, lon := b.Latitude, b.Longitude
	if c.Latitude != nil {
		lat = *c.Latitude
	}
	if c.Longitude != nil {
		lon = *c.Longitude
	}
	return lat, lon
}
