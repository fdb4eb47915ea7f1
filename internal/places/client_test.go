package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"realestate_api_backend/platform/logger"
)

type stubConfig struct {
	geocodeURL string
	placesURL  string
	nearbyURL  string
}

func (s stubConfig) GetPlacesAPIKey() string        { return "test-key" }
func (s stubConfig) GetGeocodeBaseURL() string      { return s.geocodeURL }
func (s stubConfig) GetPlacesBaseURL() string       { return s.placesURL }
func (s stubConfig) GetNearbySearchBaseURL() string { return s.nearbyURL }
func (s stubConfig) IsPlacesEnabled() bool          { return true }

func newUpstream(t *testing.T, geocodeStatus string) (*httptest.Server, stubConfig) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/geocode", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"status": %q,
			"results": [{
				"place_id": "place-1",
				"geometry": {"location": {"lat": 30.2672, "lng": -97.7431}}
			}]
		}`, geocodeStatus)
	})
	mux.HandleFunc("/details/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"formattedAddress": "123 Main St, Austin, TX 78701, USA",
			"location": {"latitude": 30.2673, "longitude": -97.7432}
		}`)
	})
	mux.HandleFunc("/nearby", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") == "neighborhood" {
			fmt.Fprint(w, `{
				"status": "OK",
				"results": [{"name": "Downtown", "vicinity": "Austin", "types": ["neighborhood"]}]
			}`)
			return
		}
		results := make([]string, 0, 12)
		for i := 0; i < 12; i++ {
			results = append(results, fmt.Sprintf(`{"name": "POI %d", "vicinity": "Austin", "types": ["school"], "rating": 4.5}`, i))
		}
		fmt.Fprint(w, `{"status": "OK", "results": [`)
		for i, entry := range results {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprint(w, entry)
		}
		fmt.Fprint(w, `]}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv, stubConfig{
		geocodeURL: srv.URL + "/geocode",
		placesURL:  srv.URL + "/details",
		nearbyURL:  srv.URL + "/nearby",
	}
}

func TestPlaceDetails_Success(t *testing.T) {
	_, cfg := newUpstream(t, "OK")
	c := NewClient(cfg, logger.New("test"))

	result := c.PlaceDetails(context.Background(), "123 Main St, Austin, TX 78701")

	if !result.OK() {
		t.Fatalf("expected success, got error: %v", result.Err)
	}
	d := result.Data
	if d.PlaceID != "place-1" {
		t.Fatalf("expected place-1, got %q", d.PlaceID)
	}
	if d.Address != "123 Main St, Austin, TX 78701, USA" {
		t.Fatalf("expected detailed address, got %q", d.Address)
	}
	if d.Location.Lat != 30.2673 || d.Location.Lng != -97.7432 {
		t.Fatalf("expected detailed location, got %+v", d.Location)
	}
	if len(d.Neighborhoods) != 1 || d.Neighborhoods[0].Name != "Downtown" {
		t.Fatalf("unexpected neighborhoods %+v", d.Neighborhoods)
	}
	if len(d.PointsOfInterest) != 10 {
		t.Fatalf("expected points of interest capped at 10, got %d", len(d.PointsOfInterest))
	}
	if d.PointsOfInterest[0].Type != "school" {
		t.Fatalf("expected first type used, got %q", d.PointsOfInterest[0].Type)
	}
}

func TestPlaceDetails_GeocodeFailureDegrades(t *testing.T) {
	_, cfg := newUpstream(t, "ZERO_RESULTS")
	c := NewClient(cfg, logger.New("test"))

	result := c.PlaceDetails(context.Background(), "nowhere")

	if result.OK() {
		t.Fatalf("expected degraded result")
	}
	if result.Data != nil {
		t.Fatalf("expected nil data on degradation, got %+v", result.Data)
	}
}

func TestPlaceDetails_UpstreamErrorDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := stubConfig{geocodeURL: srv.URL, placesURL: srv.URL, nearbyURL: srv.URL}
	c := NewClient(cfg, logger.New("test"))

	result := c.PlaceDetails(context.Background(), "123 Main St")

	if result.OK() {
		t.Fatalf("expected degraded result on upstream 500")
	}
}

func TestPlaceDetails_PartialFanOutFailureDegrades(t *testing.T) {
	_, cfg := newUpstream(t, "OK")

	// Replace the nearby endpoint with a failing one.
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()
	cfg.nearbyURL = failing.URL

	c := NewClient(cfg, logger.New("test"))
	result := c.PlaceDetails(context.Background(), "123 Main St")

	if result.OK() {
		t.Fatalf("expected degraded result when a fan-out call fails")
	}
}

func TestGeocodeRequestCarriesKey(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "ZERO_RESULTS"})
	}))
	defer srv.Close()

	cfg := stubConfig{geocodeURL: srv.URL, placesURL: srv.URL, nearbyURL: srv.URL}
	c := NewClient(cfg, logger.New("test"))
	_ = c.PlaceDetails(context.Background(), "123 Main St")

	if gotKey != "test-key" {
		t.Fatalf("expected api key on geocode request, got %q", gotKey)
	}
}
