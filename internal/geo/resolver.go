package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Resolver turns two coordinate pairs into a road distance in km using a
// distance-matrix API, falling back to Haversine when the upstream is
// unavailable or returns a malformed payload. Callers never see the
// upstream failure; ResolveKm always succeeds.
type Resolver struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewResolver(baseURL, apiKey string) *Resolver {
	return &Resolver{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			// Booking creation blocks on this call; keep it bounded.
			Timeout: 5 * time.Second,
		},
	}
}

type matrixResponse struct {
	Rows []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

func (r *Resolver) ResolveKm(ctx context.Context, oLat, oLon, dLat, dLon float64) float64 {
	if r.apiKey == "" {
		return Haversine(oLat, oLon, dLat, dLon)
	}

	km, err := r.matrixLookup(ctx, oLat, oLon, dLat, dLon)
	if err != nil {
		log.Printf("distance matrix lookup failed, using haversine: %v", err)
		return Haversine(oLat, oLon, dLat, dLon)
	}
	return km
}

func (r *Resolver) matrixLookup(ctx context.Context, oLat, oLon, dLat, dLon float64) (float64, error) {
	q := url.Values{}
	q.Set("origins", fmt.Sprintf("%f,%f", oLat, oLon))
	q.Set("destinations", fmt.Sprintf("%f,%f", dLat, dLon))
	q.Set("key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance matrix returned status %d", resp.StatusCode)
	}

	var body matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}

	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix response has no elements")
	}

	el := body.Rows[0].Elements[0]
	if el.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %q", el.Status)
	}

	return float64(el.Distance.Value) / 1000, nil
}
