package explorer

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/afero"

	"github.com/airportexplorer/airportexplorer/csvdb"
)

// Catalog reads a file with airports and renders it as GeoJSON. The
// file is read on each call, nothing is cached.
type Catalog struct {
	fs      afero.Fs
	path    string
	columns csvdb.Columns
	logger  Logger
}

// Airports returns all valid airports in the order of the file.
func (c *Catalog) Airports() ([]csvdb.Airport, error) {
	fp, err := c.fs.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("cannot open airports file: %w", err)
	}

	defer fp.Close()

	reader := csvdb.NewCSVReader(fp, c.columns.RecordMaker(), func(line int, err error) {
		c.logger.CatalogRowSkipped(c.path, line, err)
	})

	airports, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read airports file: %w", err)
	}

	return airports, nil
}

// LoadFeatures returns a feature collection with a point per airport.
// Each feature has name and iataCode properties.
func (c *Catalog) LoadFeatures() (*geojson.FeatureCollection, error) {
	airports, err := c.Airports()
	if err != nil {
		return nil, err
	}

	rv := geojson.NewFeatureCollection()
	rv.Features = make([]*geojson.Feature, 0, len(airports))

	for i := range airports {
		feature := geojson.NewFeature(orb.Point{airports[i].Longitude, airports[i].Latitude})
		feature.Properties["name"] = airports[i].Name
		feature.Properties["iataCode"] = airports[i].IATACode

		rv.Append(feature)
	}

	return rv, nil
}

// NewCatalog creates a catalog over a file with a given column layout.
// If fs is nil, OS filesystem is used.
func NewCatalog(fs afero.Fs, path string, columns csvdb.Columns, logger Logger) *Catalog {
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return &Catalog{
		fs:      fs,
		path:    path,
		columns: columns,
		logger:  logger,
	}
}
