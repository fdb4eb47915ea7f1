package places

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Neighborhood is a named neighborhood near the property.
type Neighborhood struct {
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Types    []string `json:"types"`
}

// PointOfInterest is a nearby amenity (school, store, restaurant, park,
// transit station).
type PointOfInterest struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Vicinity string  `json:"vicinity"`
	Rating   float64 `json:"rating,omitempty"`
}

// Details is the enrichment payload attached to a property record.
type Details struct {
	Address          string            `json:"address"`
	Location         Location          `json:"location"`
	PlaceID          string            `json:"placeId"`
	Neighborhoods    []Neighborhood    `json:"neighborhoods"`
	PointsOfInterest []PointOfInterest `json:"pointsOfInterest"`
}

// Result is the outcome of an enrichment lookup: either Data or Err is set.
// A failed lookup never propagates as an error past the orchestrator; callers
// inspect OK and substitute a degraded placeholder.
type Result struct {
	Data *Details
	Err  error
}

// OK reports whether the lookup produced data.
func (r Result) OK() bool { return r.Err == nil }

// Success wraps enrichment data in a Result.
func Success(d *Details) Result { return Result{Data: d} }

// Degraded wraps a lookup failure in a Result.
func Degraded(err error) Result { return Result{Err: err} }

// The raw upstream payload shapes. Only the fields the enrichment pipeline
// consumes are mirrored.

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string `json:"place_id"`
		Geometry struct {
			Location Location `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type placeDetailsResponse struct {
	FormattedAddress string `json:"formattedAddress"`
	Location         struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

type nearbySearchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Vicinity string   `json:"vicinity"`
		Types    []string `json:"types"`
		Rating   float64  `json:"rating"`
	} `json:"results"`
}
