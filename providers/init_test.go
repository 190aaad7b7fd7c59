package providers_test

import (
	"net"
	"net/http"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/airportexplorer/airportexplorer/explorer"
)

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

type ProviderTestSuite struct {
	suite.Suite

	http   explorer.HTTPClient
	logger *LoggerMock
}

func (suite *ProviderTestSuite) SetupTest() {
	suite.http = explorer.NewHTTPClient(&http.Client{},
		"test-agent",
		time.Millisecond,
		100)

	suite.logger = &LoggerMock{}
	suite.logger.On("EnrichError", mock.Anything, mock.Anything, mock.Anything).Maybe()
}

type MockedProviderTestSuite struct {
	ProviderTestSuite
}

func (suite *MockedProviderTestSuite) SetupSuite() {
	httpmock.Activate()
}

func (suite *MockedProviderTestSuite) TearDownSuite() {
	httpmock.DeactivateAndReset()
}

func (suite *MockedProviderTestSuite) TearDownTest() {
	httpmock.Reset()
}
