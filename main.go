package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/airportexplorer/airportexplorer/csvdb"
	"github.com/airportexplorer/airportexplorer/explorer"
	"github.com/airportexplorer/airportexplorer/providers"
)

const shutdownTimeout = 10 * time.Second

var (
	version = "dev"

	app = kingpin.New(
		"airportexplorer",
		"Backend of the airport exploration map")

	debug = app.Flag("debug", "Run in debug mode.").
		Short('d').
		Envar("AIRPORTEXPLORER_DEBUG").
		Bool()
	envFile = app.Flag("env-file", "Path to the .env file with secrets.").
		Default(".env").
		String()
	configPath = app.Arg("config-path", "Path to the config.").
			Required().
			ExistingFile()
)

func main() {
	app.Version(version)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := newLogger(os.Stderr, *debug)

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.appLog.Fatal().Err(err).Msg("Cannot load env file")
	}

	conf, err := parseConfig(*configPath)
	if err != nil {
		log.appLog.Fatal().Err(err).Msg("Cannot parse config")
	}

	ctx, cancel := makeRootContext()
	defer cancel()

	httpClient := makeNewHTTPClient(conf)

	enricher, err := providers.NewGooglePlaces(httpClient, log, providers.GooglePlacesConfig{
		APIKey: conf.GetPlacesAPIKey(),
	})
	if err != nil {
		log.appLog.Fatal().Err(err).Msg("Cannot create places provider")
	}

	opts := explorer.Opts{
		MapboxAccessToken: conf.GetMapboxAccessToken(),
		Catalog:           explorer.NewCatalog(nil, conf.GetAirportsPath(), csvdb.OpenFlightsColumns, log),
		Enricher:          enricher,
		Logger:            log,
	}

	if path := conf.GetGeoDatabasePath(); path != "" {
		locator := providers.NewMaxmindCity(nil, path)
		if err := locator.Open(); err != nil {
			log.appLog.Warn().Err(err).Str("path", path).Msg("Geo database is not available")
		}

		defer locator.Shutdown()

		opts.Locator = locator
	}

	exp, err := explorer.NewExplorer(opts)
	if err != nil {
		log.appLog.Fatal().Err(err).Msg("Cannot create explorer")
	}

	srv := &http.Server{
		Addr:              conf.GetListen(),
		Handler:           handlers.CompressHandler(exp),
		ReadHeaderTimeout: conf.GetHTTPTimeout(),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		srv.Shutdown(shutdownCtx) // nolint: errcheck
	}()

	log.appLog.Info().Str("listen", conf.GetListen()).Msg("Start server")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.appLog.Error().Err(err).Msg("Server has stopped")
	}
}
