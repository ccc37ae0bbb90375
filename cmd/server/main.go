// DalatGuide - Da Lat Tourism Recommendations and Travel Chat Assistant
// Copyright 2026 DalatGuide Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/dalatguide/dalatguide

// Command server runs the DalatGuide HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/dalatguide/dalatguide/internal/api"
	"github.com/dalatguide/dalatguide/internal/catalog"
	"github.com/dalatguide/dalatguide/internal/config"
	"github.com/dalatguide/dalatguide/internal/engine"
	"github.com/dalatguide/dalatguide/internal/logging"
	"github.com/dalatguide/dalatguide/internal/weather"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	configPath := flag.String("config", "", "path to config file (default: search standard locations)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	logger := logging.Logger()

	store := catalog.NewFileStore(cfg.Catalog.Path)

	var weatherSignal engine.WeatherSignal
	switch cfg.Weather.Provider {
	case "static":
		weatherSignal = &weather.Static{Reading: engine.WeatherReading{
			Condition:   cfg.Weather.StaticCondition,
			Description: cfg.Weather.StaticDescription,
			TempC:       cfg.Weather.StaticTempC,
		}}
	default:
		weatherSignal = weather.NewClient(cfg.Weather.BaseURL, cfg.Weather.APIKey,
			cfg.Weather.City, cfg.Weather.Timeout, logger)
	}

	eng, err := engine.New(&engine.Config{MaxResults: cfg.Engine.MaxResults}, store, weatherSignal, logger)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	router := api.NewRouter(api.NewHandler(eng), &cfg.Server)
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", srv.Addr).
			Str("catalog", cfg.Catalog.Path).
			Str("weather_provider", cfg.Weather.Provider).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("server stopped")
	return nil
}
