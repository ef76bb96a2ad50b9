package geo

import (
	"math"
	"testing"
)

func TestHaversineZeroDistance(t *testing.T) {
	got := Haversine(-6.2, 106.8, -6.2, 106.8)
	if got != 0 {
		t.Fatalf("expected 0 for identical points, got %f", got)
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := Haversine(-6.2, 106.8, -6.9, 107.6)
	b := Haversine(-6.9, 107.6, -6.2, 106.8)

	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance is not symmetric: %f vs %f", a, b)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of longitude on the equator is ~111.19 km.
	got := Haversine(0, 0, 0, 1)

	if math.Abs(got-111.19) > 0.5 {
		t.Fatalf("expected ~111.19 km, got %f", got)
	}
}

func TestHaversineJakartaBandung(t *testing.T) {
	// Monas to Gedung Sate, roughly 118 km great-circle.
	got := Haversine(-6.1754, 106.8272, -6.9025, 107.6186)

	if got < 110 || got > 130 {
		t.Fatalf("expected ~118 km, got %f", got)
	}
}
