package explorer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/paulmach/orb/geojson"
)

// Opts is a set of dependencies of Explorer. Locator is optional.
type Opts struct {
	MapboxAccessToken string
	Catalog           *Catalog
	Locator           GeoLocator
	Enricher          PlaceEnricher
	Logger            Logger
}

// Explorer composes a catalog, a geolocator and a place enricher.
// It keeps no state between calls.
type Explorer struct {
	mapboxAccessToken string
	catalog           *Catalog
	locator           GeoLocator
	enricher          PlaceEnricher
	logger            Logger
	handler           http.Handler
}

func (e *Explorer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	e.handler.ServeHTTP(w, req)
}

// Locate guesses a location of the given remote address. It accepts
// both host:port and a bare IP. It never fails: if something goes
// wrong, a result is marked as fallback and has DefaultLocation.
func (e *Explorer) Locate(remoteAddr string) (rv LocateResult) {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return e.locateFallback(nil, fmt.Errorf("%w: %q", ErrIncorrectAddress, remoteAddr))
	}

	if e.locator == nil {
		return e.locateFallback(ip, ErrLocatorIsNotConfigured)
	}

	defer func() {
		if rec := recover(); rec != nil {
			rv = e.locateFallback(ip, fmt.Errorf("geolocator has panicked: %v", rec))
		}
	}()

	location, err := e.locator.Locate(ip)

	switch {
	case err != nil:
		return e.locateFallback(ip, err)
	case location.Latitude == 0 && location.Longitude == 0:
		return e.locateFallback(ip, ErrNoCoordinates)
	}

	if location.ZoomHint <= 0 {
		location.ZoomHint = ZoomCountry
	}

	return LocateResult{
		Location: location,
	}
}

func (e *Explorer) locateFallback(ip net.IP, err error) LocateResult {
	name := ""
	if e.locator != nil {
		name = e.locator.Name()
	}

	e.logger.LocateFallback(ip, name, err)

	return LocateResult{
		Location: DefaultLocation,
		Fallback: true,
		Reason:   err,
	}
}

// ViewState returns an initial state of the map for a given caller.
func (e *Explorer) ViewState(remoteAddr string) ViewState {
	return ViewState{
		MapboxAccessToken: e.mapboxAccessToken,
		Center:            e.Locate(remoteAddr).Location,
	}
}

// Airports returns all valid airports of the catalog as GeoJSON points.
func (e *Explorer) Airports() (*geojson.FeatureCollection, error) {
	return e.catalog.LoadFeatures()
}

// AirportDetail enriches an airport with data from the places service.
// Errors which wrap ErrPlaceNotFound mean that the service does not
// know this airport, all others wrap ErrEnrichmentFailed.
func (e *Explorer) AirportDetail(ctx context.Context, query PlaceQuery) (AirportDetail, error) {
	detail, err := e.enricher.Enrich(ctx, query)
	if err != nil {
		e.logger.EnrichError(query, e.enricher.Name(), err)

		if !errors.Is(err, ErrPlaceNotFound) {
			err = fmt.Errorf("%w: %w", ErrEnrichmentFailed, err)
		}

		return AirportDetail{}, err
	}

	return detail, nil
}

// NewExplorer validates options and builds a new Explorer.
func NewExplorer(opts Opts) (*Explorer, error) {
	switch {
	case opts.Catalog == nil:
		return nil, errors.New("catalog is required")
	case opts.Enricher == nil:
		return nil, errors.New("place enricher is required")
	case opts.Logger == nil:
		return nil, errors.New("logger is required")
	}

	rv := &Explorer{
		mapboxAccessToken: opts.MapboxAccessToken,
		catalog:           opts.Catalog,
		locator:           opts.Locator,
		enricher:          opts.Enricher,
		logger:            opts.Logger,
	}
	rv.handler = newRouter(rv)

	return rv, nil
}
