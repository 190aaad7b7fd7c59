package csvdb

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
)

// NullValue is a marker OpenFlights uses for missing values.
const NullValue = `\N`

var (
	ErrMissingColumn      = errors.New("row has not enough columns")
	ErrIncorrectLatitude  = errors.New("latitude is not correct")
	ErrIncorrectLongitude = errors.New("longitude is not correct")
	ErrIncorrectLocation  = errors.New("coordinates are out of range")
)

// Columns describes a positional layout of airport rows. All indexes
// are zero-based.
type Columns struct {
	Name      int
	IATACode  int
	Latitude  int
	Longitude int
}

// OpenFlightsColumns is a layout of airports.dat from openflights.org:
//
//	0 airport id
//	1 name
//	2 city
//	3 country
//	4 IATA code
//	5 ICAO code
//	6 latitude
//	7 longitude
//	8... altitude, timezone etc.
var OpenFlightsColumns = Columns{
	Name:      1,
	IATACode:  4,
	Latitude:  6,
	Longitude: 7,
}

func (c Columns) maxIndex() int {
	rv := c.Name

	for _, v := range []int{c.IATACode, c.Latitude, c.Longitude} {
		if v > rv {
			rv = v
		}
	}

	return rv
}

// RecordMaker returns a function which extracts airports from rows of
// this layout.
func (c Columns) RecordMaker() RecordMaker {
	return func(data []string) (*Airport, error) {
		if len(data) <= c.maxIndex() {
			return nil, fmt.Errorf("%w: got %d", ErrMissingColumn, len(data))
		}

		latitude, err := strconv.ParseFloat(strings.TrimSpace(data[c.Latitude]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIncorrectLatitude, err)
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(data[c.Longitude]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIncorrectLongitude, err)
		}

		return NewAirport(data[c.Name], data[c.IATACode], latitude, longitude)
	}
}

// Airport presents an extracted data from CSV row.
type Airport struct {
	Name      string
	IATACode  string
	Latitude  float64
	Longitude float64
}

// NewAirport creates new airport record.
func NewAirport(name, iataCode string, latitude, longitude float64) (*Airport, error) {
	if !s2.LatLngFromDegrees(latitude, longitude).IsValid() {
		return nil, fmt.Errorf("%w: %f,%f", ErrIncorrectLocation, latitude, longitude)
	}

	iataCode = strings.TrimSpace(iataCode)
	if iataCode == NullValue {
		iataCode = ""
	}

	return &Airport{
		Name:      name,
		IATACode:  iataCode,
		Latitude:  latitude,
		Longitude: longitude,
	}, nil
}
