package explorer_test

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/airportexplorer/airportexplorer/explorer"
)

type GeoLocatorMock struct {
	mock.Mock
}

func (m *GeoLocatorMock) Name() string {
	return m.Called().String(0)
}

func (m *GeoLocatorMock) Locate(ip net.IP) (explorer.GeoLocation, error) {
	args := m.Called(ip)

	return args.Get(0).(explorer.GeoLocation), args.Error(1)
}

type PlaceEnricherMock struct {
	mock.Mock
}

func (m *PlaceEnricherMock) Name() string {
	return m.Called().String(0)
}

func (m *PlaceEnricherMock) Enrich(ctx context.Context, query explorer.PlaceQuery) (explorer.AirportDetail, error) {
	args := m.Called(ctx, query)

	return args.Get(0).(explorer.AirportDetail), args.Error(1)
}

type LoggerMock struct {
	mock.Mock
}

func (m *LoggerMock) LocateFallback(ip net.IP, name string, err error) {
	m.Called(ip, name, err)
}

func (m *LoggerMock) EnrichError(query explorer.PlaceQuery, name string, err error) {
	m.Called(query, name, err)
}

func (m *LoggerMock) CatalogRowSkipped(path string, line int, err error) {
	m.Called(path, line, err)
}

func (m *LoggerMock) RequestServed(req *http.Request, statusCode, size int, elapsed time.Duration) {
	m.Called(req, statusCode, size, elapsed)
}

func newLoggerMock() *LoggerMock {
	rv := &LoggerMock{}

	rv.On("LocateFallback", mock.Anything, mock.Anything, mock.Anything).Maybe()
	rv.On("EnrichError", mock.Anything, mock.Anything, mock.Anything).Maybe()
	rv.On("CatalogRowSkipped", mock.Anything, mock.Anything, mock.Anything).Maybe()
	rv.On("RequestServed", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	return rv
}
