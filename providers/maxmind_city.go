package providers

import (
	"fmt"
	"net"
	"sync"

	"github.com/oschwald/geoip2-golang"
	"github.com/spf13/afero"

	"github.com/airportexplorer/airportexplorer/explorer"
)

type maxmindCityReader interface {
	City(net.IP) (*geoip2.City, error)
	Close() error
}

// MaxmindCity locates IP addresses with offline MaxMind City database.
//
//	Identifier: maxmind_city
//	Provider type: offline
//	Website: https://maxmind.com
//
// Database is not updated automatically. Please use geoipupdate or
// something similar and restart the service.
type MaxmindCity struct {
	fs           afero.Fs
	path         string
	dbReader     maxmindCityReader
	dbReaderLock sync.RWMutex
}

func (m *MaxmindCity) Name() string {
	return NameMaxmindCity
}

// Open reads a database file. If it fails, previously opened database
// is kept.
func (m *MaxmindCity) Open() error {
	data, err := afero.ReadFile(m.fs, m.path)
	if err != nil {
		return fmt.Errorf("cannot read a database file: %w", err)
	}

	reader, err := geoip2.FromBytes(data)
	if err != nil {
		return fmt.Errorf("cannot initialize a reader of maxminddb: %w", err)
	}

	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader != nil {
		m.dbReader.Close()
	}

	m.dbReader = reader

	return nil
}

func (m *MaxmindCity) Shutdown() {
	m.dbReaderLock.Lock()
	defer m.dbReaderLock.Unlock()

	if m.dbReader != nil {
		m.dbReader.Close()
		m.dbReader = nil
	}
}

func (m *MaxmindCity) Locate(ip net.IP) (explorer.GeoLocation, error) {
	m.dbReaderLock.RLock()
	defer m.dbReaderLock.RUnlock()

	rv := explorer.GeoLocation{}

	if m.dbReader == nil {
		return rv, ErrDatabaseIsNotReadyYet
	}

	record, err := m.dbReader.City(ip)
	if err != nil {
		return rv, fmt.Errorf("cannot lookup this ip address: %w", err)
	}

	rv.Latitude = record.Location.Latitude
	rv.Longitude = record.Location.Longitude
	rv.ZoomHint = explorer.ZoomCountry

	if record.City.GeoNameID != 0 || record.City.Names["en"] != "" {
		rv.ZoomHint = explorer.ZoomCity
	}

	return rv, nil
}

// NewMaxmindCity returns a new provider for a database at the given
// path. Database is not opened, please call Open.
func NewMaxmindCity(fs afero.Fs, path string) *MaxmindCity {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &MaxmindCity{
		fs:   fs,
		path: path,
	}
}
