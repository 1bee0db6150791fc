// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/maridaje/internal/api"
	"github.com/tomtom215/maridaje/internal/catalog"
	"github.com/tomtom215/maridaje/internal/config"
	"github.com/tomtom215/maridaje/internal/explorer"
	"github.com/tomtom215/maridaje/internal/graph"
	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/lookup"
	"github.com/tomtom215/maridaje/internal/recommend"
	"github.com/tomtom215/maridaje/internal/supervisor"
	"github.com/tomtom215/maridaje/internal/supervisor/services"
	ws "github.com/tomtom215/maridaje/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "maridaje-server",
	})
	logger := logging.Logger()

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("pairs", cfg.Data.PairsPath).
		Str("recipes", cfg.Data.RecipesPath).
		Msg("Starting Maridaje with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loadCtx, loadCancel := context.WithTimeout(ctx, time.Minute)
	tables, err := catalog.Load(loadCtx, cfg.Data, logger)
	loadCancel()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load catalog")
	}

	lk := lookup.New(tables)
	engine := recommend.NewEngine(tables, recommend.Config{
		Limit:          cfg.Explorer.RecommendLimit,
		RecipeQuantity: cfg.Explorer.RecipeQuantity,
		Seed:           cfg.Explorer.Seed,
	}, logger)
	view := graph.NewView(tables, lk.Color, graph.LayoutConfig{
		Width:          cfg.Layout.Width,
		Height:         cfg.Layout.Height,
		Charge:         cfg.Layout.Charge,
		LinkDistance:   cfg.Layout.LinkDistance,
		LinkValueScale: cfg.Layout.LinkValueScale,
		AlphaThreshold: cfg.Layout.AlphaThreshold,
		MaxTicks:       cfg.Layout.MaxTicks,
	}, logger)

	wsHub := ws.NewHub()
	sessions := explorer.New(explorer.Deps{
		Tables: tables,
		View:   view,
		Engine: engine,
		Lookup: lk,
	}, explorer.Config{
		SessionTTL:  cfg.Explorer.SessionTTL,
		MaxSessions: cfg.Explorer.MaxSessions,
	}, wsHub, logger)

	handler := api.NewHandler(api.Deps{
		Tables:   tables,
		View:     view,
		Engine:   engine,
		Lookup:   lk,
		Explorer: sessions,
		Hub:      wsHub,
	}, cfg)
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Bridges zerolog to slog for sutureslog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddDataService(services.NewLayoutWarmupService(view, logger))
	tree.AddDataService(services.NewSessionJanitorService(sessions, cfg.Explorer.CleanupInterval, logger))
	tree.AddMessagingService(services.NewWebSocketHubService(wsHub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Maridaje stopped")
}
