package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net"
	"os"
	"time"

	"github.com/hjson/hjson-go"
)

const (
	DefaultListen            = "127.0.0.1:8000"
	DefaultAirportsPath      = "airports.dat"
	DefaultHTTPTimeout       = 10 * time.Second
	DefaultRateLimitInterval = 100 * time.Millisecond
	DefaultRateLimitBurst    = 10

	EnvMapboxAccessToken = "MAPBOX_ACCESS_TOKEN"
	EnvPlacesAPIKey      = "PLACES_API_KEY"
)

type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(b []byte) error {
	var v interface{}

	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("cannot unmarshal duration: %w", err)
	}

	vv, ok := v.(string)
	if !ok {
		return fmt.Errorf("incorrect duration: %v", v)
	}

	dur, err := time.ParseDuration(vv)
	if err != nil {
		return fmt.Errorf("cannot parse duration: %w", err)
	}

	d.Duration = dur

	return nil
}

type config struct {
	Listen            string   `json:"listen"`
	AirportsPath      string   `json:"airports_path"`
	GeoDatabasePath   string   `json:"geo_database_path"`
	MapboxAccessToken string   `json:"mapbox_access_token"`
	PlacesAPIKey      string   `json:"places_api_key"`
	HTTPTimeout       duration `json:"http_timeout"`
	RateLimitInterval duration `json:"rate_limit_interval"`
	RateLimitBurst    uint     `json:"rate_limit_burst"`
}

func (c config) GetListen() string {
	if c.Listen != "" {
		return c.Listen
	}

	return DefaultListen
}

func (c config) GetAirportsPath() string {
	if c.AirportsPath != "" {
		return c.AirportsPath
	}

	return DefaultAirportsPath
}

func (c config) GetGeoDatabasePath() string {
	return c.GeoDatabasePath
}

func (c config) GetMapboxAccessToken() string {
	if c.MapboxAccessToken != "" {
		return c.MapboxAccessToken
	}

	return os.Getenv(EnvMapboxAccessToken)
}

func (c config) GetPlacesAPIKey() string {
	if c.PlacesAPIKey != "" {
		return c.PlacesAPIKey
	}

	return os.Getenv(EnvPlacesAPIKey)
}

func (c config) GetHTTPTimeout() time.Duration {
	if c.HTTPTimeout.Duration == 0 {
		return DefaultHTTPTimeout
	}

	return c.HTTPTimeout.Duration
}

func (c config) GetRateLimitInterval() time.Duration {
	if c.RateLimitInterval.Duration == 0 {
		return DefaultRateLimitInterval
	}

	return c.RateLimitInterval.Duration
}

func (c config) GetRateLimitBurst() int {
	if c.RateLimitBurst == 0 {
		return DefaultRateLimitBurst
	}

	return int(c.RateLimitBurst)
}

func parseConfig(path string) (*config, error) {
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	conf := config{}
	rawMap := map[string]interface{}{}

	if err := hjson.Unmarshal(content, &rawMap); err != nil {
		return nil, fmt.Errorf("cannot parse json: %w", err)
	}

	rawBytes, _ := json.Marshal(rawMap)

	if err := json.Unmarshal(rawBytes, &conf); err != nil {
		return nil, fmt.Errorf("incorrect config: %w", err)
	}

	if _, _, err := net.SplitHostPort(conf.GetListen()); err != nil {
		return nil, fmt.Errorf("incorrect host:port for listen: %w", err)
	}

	if conf.GetPlacesAPIKey() == "" {
		return nil, fmt.Errorf("places api key is required: set places_api_key or %s", EnvPlacesAPIKey)
	}

	return &conf, nil
}
