package explorer_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/airportexplorer/airportexplorer/csvdb"
	"github.com/airportexplorer/airportexplorer/explorer"
)

type ExplorerTestSuite struct {
	suite.Suite

	fs       afero.Fs
	locator  *GeoLocatorMock
	enricher *PlaceEnricherMock
	logger   *LoggerMock
	exp      *explorer.Explorer
}

func (suite *ExplorerTestSuite) SetupTest() {
	suite.fs = afero.NewMemMapFs()
	suite.locator = &GeoLocatorMock{}
	suite.enricher = &PlaceEnricherMock{}
	suite.logger = newLoggerMock()

	suite.locator.On("Name").Return("locator").Maybe()
	suite.enricher.On("Name").Return("enricher").Maybe()

	exp, err := explorer.NewExplorer(explorer.Opts{
		MapboxAccessToken: "pk.token",
		Catalog:           explorer.NewCatalog(suite.fs, "airports.dat", csvdb.OpenFlightsColumns, suite.logger),
		Locator:           suite.locator,
		Enricher:          suite.enricher,
		Logger:            suite.logger,
	})
	suite.Require().NoError(err)

	suite.exp = exp
}

func (suite *ExplorerTestSuite) TestLocateOk() {
	location := explorer.GeoLocation{
		Latitude:  59.3293,
		Longitude: 18.0686,
		ZoomHint:  explorer.ZoomCity,
	}

	suite.locator.On("Locate", mock.Anything).Return(location, nil).Once()

	result := suite.exp.Locate("89.160.20.112:34567")

	suite.False(result.Fallback)
	suite.NoError(result.Reason)
	suite.Equal(location, result.Location)
	suite.locator.AssertCalled(suite.T(), "Locate", net.ParseIP("89.160.20.112"))
}

func (suite *ExplorerTestSuite) TestLocateBareIP() {
	suite.locator.On("Locate", mock.Anything).Return(explorer.GeoLocation{
		Latitude:  1,
		Longitude: 2,
	}, nil).Once()

	result := suite.exp.Locate("2a02:ec0::1")

	suite.False(result.Fallback)
	suite.Equal(explorer.ZoomCountry, result.Location.ZoomHint)
}

func (suite *ExplorerTestSuite) TestLocateUnresolved() {
	suite.locator.On("Locate", mock.Anything).Return(explorer.GeoLocation{}, errors.New("not found")).Once()

	result := suite.exp.Locate("10.0.0.1:80")

	suite.True(result.Fallback)
	suite.Error(result.Reason)
	suite.Equal(explorer.GeoLocation{Latitude: 0, Longitude: 0, ZoomHint: 1}, result.Location)
	suite.logger.AssertCalled(suite.T(), "LocateFallback", mock.Anything, "locator", mock.Anything)
}

func (suite *ExplorerTestSuite) TestLocateNoCoordinates() {
	suite.locator.On("Locate", mock.Anything).Return(explorer.GeoLocation{ZoomHint: explorer.ZoomCity}, nil).Once()

	result := suite.exp.Locate("10.0.0.1:80")

	suite.True(result.Fallback)
	suite.True(errors.Is(result.Reason, explorer.ErrNoCoordinates))
	suite.Equal(explorer.DefaultLocation, result.Location)
}

func (suite *ExplorerTestSuite) TestLocateMalformedAddress() {
	for _, addr := range []string{"", "localhost", "not an ip:80", "300.1.1.1"} {
		result := suite.exp.Locate(addr)

		suite.True(result.Fallback, addr)
		suite.True(errors.Is(result.Reason, explorer.ErrIncorrectAddress), addr)
		suite.Equal(explorer.DefaultLocation, result.Location, addr)
	}

	suite.locator.AssertNotCalled(suite.T(), "Locate", mock.Anything)
}

func (suite *ExplorerTestSuite) TestLocatePanic() {
	suite.locator.On("Locate", mock.Anything).Panic("boom").Once()

	result := suite.exp.Locate("10.0.0.1")

	suite.True(result.Fallback)
	suite.Error(result.Reason)
	suite.Equal(explorer.DefaultLocation, result.Location)
}

func (suite *ExplorerTestSuite) TestLocateWithoutLocator() {
	exp, err := explorer.NewExplorer(explorer.Opts{
		Catalog:  explorer.NewCatalog(suite.fs, "airports.dat", csvdb.OpenFlightsColumns, suite.logger),
		Enricher: suite.enricher,
		Logger:   suite.logger,
	})
	suite.NoError(err)

	result := exp.Locate("10.0.0.1")

	suite.True(errors.Is(result.Reason, explorer.ErrLocatorIsNotConfigured))
	suite.Equal(explorer.DefaultLocation, result.Location)
}

func (suite *ExplorerTestSuite) TestViewState() {
	suite.locator.On("Locate", mock.Anything).Return(explorer.GeoLocation{}, errors.New("not found")).Once()

	state := suite.exp.ViewState("10.0.0.1:80")

	suite.Equal("pk.token", state.MapboxAccessToken)
	suite.Equal(explorer.DefaultLocation, state.Center)
}

func (suite *ExplorerTestSuite) TestAirportDetailOk() {
	query := explorer.PlaceQuery{Name: "Heathrow Airport", Latitude: 51.47, Longitude: -0.4543}
	detail := explorer.AirportDetail{FormattedAddress: "Longford TW6, UK"}

	suite.enricher.On("Enrich", mock.Anything, query).Return(detail, nil).Once()

	result, err := suite.exp.AirportDetail(context.Background(), query)

	suite.NoError(err)
	suite.Equal(detail, result)
	suite.logger.AssertNotCalled(suite.T(), "EnrichError", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExplorerTestSuite) TestAirportDetailNotFound() {
	query := explorer.PlaceQuery{Name: "Atlantis", Latitude: 1, Longitude: 1}

	suite.enricher.On("Enrich", mock.Anything, query).Return(explorer.AirportDetail{}, explorer.ErrPlaceNotFound).Once()

	_, err := suite.exp.AirportDetail(context.Background(), query)

	suite.True(errors.Is(err, explorer.ErrPlaceNotFound))
	suite.logger.AssertCalled(suite.T(), "EnrichError", query, "enricher", explorer.ErrPlaceNotFound)
}

func (suite *ExplorerTestSuite) TestAirportDetailUpstreamFailure() {
	query := explorer.PlaceQuery{Name: "Heathrow Airport", Latitude: 51.47, Longitude: -0.4543}
	upstreamErr := errors.New("connection reset")

	suite.enricher.On("Enrich", mock.Anything, query).Return(explorer.AirportDetail{}, upstreamErr).Once()

	_, err := suite.exp.AirportDetail(context.Background(), query)

	suite.True(errors.Is(err, explorer.ErrEnrichmentFailed))
	suite.True(errors.Is(err, upstreamErr))
	suite.False(errors.Is(err, explorer.ErrPlaceNotFound))
	suite.logger.AssertCalled(suite.T(), "EnrichError", query, "enricher", upstreamErr)
}

func (suite *ExplorerTestSuite) TestNewExplorerValidation() {
	_, err := explorer.NewExplorer(explorer.Opts{Enricher: suite.enricher, Logger: suite.logger})
	suite.Error(err)

	_, err = explorer.NewExplorer(explorer.Opts{
		Catalog: explorer.NewCatalog(suite.fs, "airports.dat", csvdb.OpenFlightsColumns, suite.logger),
		Logger:  suite.logger,
	})
	suite.Error(err)
}

func TestExplorer(t *testing.T) {
	suite.Run(t, &ExplorerTestSuite{})
}

func TestPlaceQueryLocation(t *testing.T) {
	query := explorer.PlaceQuery{Latitude: 51.47, Longitude: -0.4543}

	if query.Location() != "51.47,-0.4543" {
		t.Fatalf("unexpected location %s", query.Location())
	}
}
