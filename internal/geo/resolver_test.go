package geo

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveKmUsesMatrixDistance(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in request")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rows": [
				{"elements": [{"status": "OK", "distance": {"value": 12500}}]}
			]
		}`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "test-key")

	got := r.ResolveKm(context.Background(), -6.2, 106.8, -6.3, 106.9)
	if got != 12.5 {
		t.Fatalf("expected 12.5 km from matrix, got %f", got)
	}
}

func TestResolveKmFallsBackOnElementStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"rows": [
				{"elements": [{"status": "ZERO_RESULTS", "distance": {"value": 0}}]}
			]
		}`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "test-key")

	got := r.ResolveKm(context.Background(), -6.2, 106.8, -6.3, 106.9)
	want := Haversine(-6.2, 106.8, -6.3, 106.9)

	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected haversine fallback %f, got %f", want, got)
	}
}

func TestResolveKmFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "test-key")

	got := r.ResolveKm(context.Background(), -6.2, 106.8, -6.3, 106.9)
	want := Haversine(-6.2, 106.8, -6.3, 106.9)

	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected haversine fallback %f, got %f", want, got)
	}
}

func TestResolveKmSkipsLookupWithoutKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "")

	got := r.ResolveKm(context.Background(), -6.2, 106.8, -6.3, 106.9)
	want := Haversine(-6.2, 106.8, -6.3, 106.9)

	if called {
		t.Fatalf("lookup must not be attempted without an api key")
	}
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected haversine %f, got %f", want, got)
	}
}
