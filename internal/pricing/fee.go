package pricing

// Delivery fee (ongkir) tariff: flat per-km rate in rupiah, hard capped.
const (
	PerKmRate = 5000
	MaxFee    = 100000
)

// DeliveryFee converts a distance in km to a delivery fee. Zero distance
// yields zero fee; the result never exceeds MaxFee and never goes
// negative.
func DeliveryFee(km float64) float64 {
	if km < 0 {
		km = 0
	}

	fee := km * PerKmRate
	if fee > MaxFee {
		return MaxFee
	}
	return fee
}
