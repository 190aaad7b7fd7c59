package main

import (
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/airportexplorer/airportexplorer/explorer"
)

type logger struct {
	appLog     zerolog.Logger
	locateLog  zerolog.Logger
	enrichLog  zerolog.Logger
	catalogLog zerolog.Logger
	httpLog    zerolog.Logger
}

func (l *logger) LocateFallback(ip net.IP, name string, err error) {
	l.locateLog.Debug().Str("provider", name).Stringer("ip", ip).Err(err).Msg("Use default location")
}

func (l *logger) EnrichError(query explorer.PlaceQuery, name string, err error) {
	event := l.enrichLog.Error()
	if errors.Is(err, explorer.ErrPlaceNotFound) {
		event = l.enrichLog.Info()
	}

	event.Str("provider", name).
		Str("airport", query.Name).
		Float64("latitude", query.Latitude).
		Float64("longitude", query.Longitude).
		Err(err).
		Msg("")
}

func (l *logger) CatalogRowSkipped(path string, line int, err error) {
	l.catalogLog.Debug().Str("path", path).Int("line", line).Err(err).Msg("Row is skipped")
}

func (l *logger) RequestServed(req *http.Request, statusCode, size int, elapsed time.Duration) {
	l.httpLog.Info().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("remote_addr", req.RemoteAddr).
		Int("status", statusCode).
		Int("size", size).
		Dur("elapsed", elapsed).
		Msg("")
}

func newLogger(out io.Writer, debug bool) *logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	makeLog := func(eventName string) zerolog.Logger {
		return zerolog.New(out).Level(level).With().Timestamp().Str("event_name", eventName).Logger()
	}

	return &logger{
		appLog:     makeLog("app"),
		locateLog:  makeLog("locate"),
		enrichLog:  makeLog("enrich"),
		catalogLog: makeLog("catalog"),
		httpLog:    makeLog("http"),
	}
}
