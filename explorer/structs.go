package explorer

import (
	"strconv"
)

const (
	// ZoomWorld is a zoom level which shows a whole world.
	ZoomWorld = 1

	// ZoomCountry is a zoom level for locations we know coordinates of
	// but not a city.
	ZoomCountry = 5

	// ZoomCity is a zoom level for locations resolved up to a city.
	ZoomCity = 9
)

// DefaultLocation is used if we cannot resolve a location of the
// caller.
var DefaultLocation = GeoLocation{
	Latitude:  0,
	Longitude: 0,
	ZoomHint:  ZoomWorld,
}

// GeoLocation is an approximate location of the caller with a map
// zoom level which matches its precision.
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	ZoomHint  int     `json:"zoomHint"`
}

// LocateResult is an outcome of locating the caller. If Fallback is
// true, Location is DefaultLocation and Reason explains why.
type LocateResult struct {
	Location GeoLocation
	Fallback bool
	Reason   error
}

// ViewState is everything a map page needs on load.
type ViewState struct {
	MapboxAccessToken string      `json:"mapboxAccessToken"`
	Center            GeoLocation `json:"center"`
}

// PlaceQuery identifies an airport for PlaceEnricher.
type PlaceQuery struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Location returns a string in a format of "lat,lng".
func (p PlaceQuery) Location() string {
	return strconv.FormatFloat(p.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(p.Longitude, 'f', -1, 64)
}

// AirportDetail is an enrichment of the airport. Empty fields mean
// that upstream has not provided them.
type AirportDetail struct {
	FormattedAddress string `json:"formattedAddress,omitempty"`
	PhoneNumber      string `json:"phoneNumber,omitempty"`
	Website          string `json:"website,omitempty"`
	PhotoBase64      string `json:"photoBase64,omitempty"`
	PhotoCredit      string `json:"photoCredit,omitempty"`
}
