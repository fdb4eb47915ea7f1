// Package places fetches neighborhood and location context for a property
// address from the Google geocoding and places APIs.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"realestate_api_backend/platform/config"
	"realestate_api_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const (
	nearbyRadiusMeters  = "1500"
	maxPointsOfInterest = 10

	detailFields = "id,displayName,formattedAddress,types,location,rating,userRatingCount,businessStatus,primaryType,addressComponents,viewport"
	poiTypes     = "school|store|restaurant|park|transit_station"
)

// Client calls the geocoding and places endpoints. Base URLs come from
// configuration so tests can point the client at a local server.
type Client struct {
	client *http.Client
	cfg    config.PlacesConfig
	log    *logger.Logger
}

func NewClient(cfg config.PlacesConfig, log *logger.Logger) *Client {
	return &Client{
		client: &http.Client{Timeout: 10 * time.Second},
		cfg:    cfg,
		log:    log,
	}
}

// PlaceDetails geocodes the formatted address, then fans out the place
// details, neighborhood, and points-of-interest lookups concurrently. Any
// failure degrades the whole enrichment; the caller decides how to surface
// that.
func (c *Client) PlaceDetails(ctx context.Context, formattedAddress string) Result {
	location, placeID, err := c.geocode(ctx, formattedAddress)
	if err != nil {
		return Degraded(err)
	}

	details := &Details{
		Address:  formattedAddress,
		Location: location,
		PlaceID:  placeID,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		address, loc, err := c.placeDetails(gctx, placeID)
		if err != nil {
			return err
		}
		if address != "" {
			details.Address = address
		}
		if loc != (Location{}) {
			details.Location = loc
		}
		return nil
	})

	g.Go(func() error {
		neighborhoods, err := c.nearbyNeighborhoods(gctx, location)
		if err != nil {
			return err
		}
		details.Neighborhoods = neighborhoods
		return nil
	})

	g.Go(func() error {
		pois, err := c.nearbyPointsOfInterest(gctx, location)
		if err != nil {
			return err
		}
		details.PointsOfInterest = pois
		return nil
	})

	if err := g.Wait(); err != nil {
		return Degraded(err)
	}

	return Success(details)
}

func (c *Client) geocode(ctx context.Context, address string) (Location, string, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.cfg.GetPlacesAPIKey())

	var payload geocodeResponse
	if err := c.getJSON(ctx, c.cfg.GetGeocodeBaseURL()+"?"+params.Encode(), &payload); err != nil {
		return Location{}, "", err
	}

	if payload.Status != "OK" || len(payload.Results) == 0 {
		return Location{}, "", fmt.Errorf("geocoding failed: %s", payload.Status)
	}

	return payload.Results[0].Geometry.Location, payload.Results[0].PlaceID, nil
}

func (c *Client) placeDetails(ctx context.Context, placeID string) (string, Location, error) {
	params := url.Values{}
	params.Set("fields", detailFields)
	params.Set("key", c.cfg.GetPlacesAPIKey())

	var payload placeDetailsResponse
	if err := c.getJSON(ctx, c.cfg.GetPlacesBaseURL()+"/"+placeID+"?"+params.Encode(), &payload); err != nil {
		return "", Location{}, err
	}

	return payload.FormattedAddress, Location{Lat: payload.Location.Latitude, Lng: payload.Location.Longitude}, nil
}

func (c *Client) nearbyNeighborhoods(ctx context.Context, location Location) ([]Neighborhood, error) {
	payload, err := c.nearbySearch(ctx, location, "neighborhood")
	if err != nil {
		return nil, err
	}

	neighborhoods := make([]Neighborhood, 0, len(payload.Results))
	for _, place := range payload.Results {
		neighborhoods = append(neighborhoods, Neighborhood{
			Name:     place.Name,
			Vicinity: place.Vicinity,
			Types:    place.Types,
		})
	}
	return neighborhoods, nil
}

func (c *Client) nearbyPointsOfInterest(ctx context.Context, location Location) ([]PointOfInterest, error) {
	payload, err := c.nearbySearch(ctx, location, poiTypes)
	if err != nil {
		return nil, err
	}

	results := payload.Results
	if len(results) > maxPointsOfInterest {
		results = results[:maxPointsOfInterest]
	}

	pois := make([]PointOfInterest, 0, len(results))
	for _, place := range results {
		poi := PointOfInterest{
			Name:     place.Name,
			Vicinity: place.Vicinity,
			Rating:   place.Rating,
		}
		if len(place.Types) > 0 {
			poi.Type = place.Types[0]
		}
		pois = append(pois, poi)
	}
	return pois, nil
}

func (c *Client) nearbySearch(ctx context.Context, location Location, placeType string) (*nearbySearchResponse, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", location.Lat, location.Lng))
	params.Set("radius", nearbyRadiusMeters)
	params.Set("type", placeType)
	params.Set("key", c.cfg.GetPlacesAPIKey())

	var payload nearbySearchResponse
	if err := c.getJSON(ctx, c.cfg.GetNearbySearchBaseURL()+"?"+params.Encode(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("places request failed", "error", err)
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("places upstream error", "status", resp.StatusCode)
		return fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
