package domain_models

// Coordinates is an immutable (latitude, longitude) pair.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Place is the canonical candidate record every source normalizes into
// before ranking. All fields except Name may be absent; a place missing
// either coordinate has undefined distance and can never win a
// nearest-neighbor selection.
type Place struct {
	ID      string
	Name    string
	Address string

	Latitude  *float64
	Longitude *float64

	// Ordinal price bucket (1 cheapest .. 4 priciest), source-specific.
	PriceTier *float64

	// Unbounded non-negative demand signal.
	Popularity *float64

	// Normalized category tag names plus the offline free-text
	// category/tags column, both used for substring matching.
	Tags     []string
	FreeText string

	// Set at the source boundary when a tag record could not be
	// interpreted; such places always pass the category filter.
	UnparsedTags bool
}

// Coords reports the place position and whether both components are present.
func (p Place) Coords() (Coordinates, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *p.Latitude, Lon: *p.Longitude}, true
}

// PopularityValue returns the popularity signal, 0 when absent.
func (p Place) PopularityValue() float64 {
	if p.Popularity == nil {
		return 0
	}
	return *p.Popularity
}

// RankedPlace is a Place with its derived ranking fields. Score and
// DistanceM are recomputed on every ranking pass, never carried between
// requests.
type RankedPlace struct {
	Place

	Score     float64
	DistanceM *float64
}

// RouteStop is a RankedPlace positioned inside a visiting order. The leg
// distance is measured from the previous stop in the route, not from the
// original query center. Arrival/Departure are minutes since midnight of a
// synthetic day starting at 09:00.
type RouteStop struct {
	RankedPlace

	LegDistanceM  float64
	TravelMinutes int
	StayMinutes   int
	Arrival       int
	Departure     int
}
