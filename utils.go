package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/airportexplorer/airportexplorer/explorer"
)

func makeRootContext() (context.Context, context.CancelFunc) {
	rootCtx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)

	go func() {
		for range sigChan {
			cancel()
		}
	}()

	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	return rootCtx, cancel
}

func makeNewHTTPClient(conf *config) explorer.HTTPClient {
	httpClient := &http.Client{
		Timeout: conf.GetHTTPTimeout(),
	}

	return explorer.NewHTTPClient(httpClient,
		"airportexplorer/"+version,
		conf.GetRateLimitInterval(),
		conf.GetRateLimitBurst())
}
