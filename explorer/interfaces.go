package explorer

import (
	"context"
	"net"
	"net/http"
	"time"
)

// HTTPClient is an interface of a client which is used by providers
// to access external services.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// GeoLocator resolves an IP address into approximate coordinates.
type GeoLocator interface {
	Name() string
	Locate(net.IP) (GeoLocation, error)
}

// PlaceEnricher asks an external places service about a given airport.
// It has to return an error wrapping ErrPlaceNotFound if service knows
// nothing about it.
type PlaceEnricher interface {
	Name() string
	Enrich(context.Context, PlaceQuery) (AirportDetail, error)
}

// Logger receives events which explorer and its parts report.
type Logger interface {
	LocateFallback(ip net.IP, name string, err error)
	EnrichError(query PlaceQuery, name string, err error)
	CatalogRowSkipped(path string, line int, err error)
	RequestServed(req *http.Request, statusCode, size int, elapsed time.Duration)
}
