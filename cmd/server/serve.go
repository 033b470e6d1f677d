// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/catalogrec/internal/api"
	"github.com/tomtom215/catalogrec/internal/config"
	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/recommend"
	"github.com/tomtom215/catalogrec/internal/supervisor"
	"github.com/tomtom215/catalogrec/internal/supervisor/services"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd)
		},
	}
}

// serve builds the engine and runs the supervised HTTP server until SIGINT or SIGTERM.
func (a *app) serve(cmd *cobra.Command) error {
	logging.Info().Str("addr", a.cfg.Server.Addr()).Msg("Starting Catalogrec with supervisor tree")

	engine, err := buildEngine(a.cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("building recommendation engine: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runServer(ctx, a.cfg, engine)
}

// runServer serves engine over HTTP under the supervisor tree until ctx is canceled.
func runServer(ctx context.Context, cfg *config.Config, engine *recommend.Engine) error {
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(engine, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFromConfig(cfg))
	if err != nil {
		return fmt.Errorf("creating supervisor tree: %w", err)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// errCh receives exactly once and is never closed.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown requested, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}

	logUnstoppedServices(tree)

	if treeErr != nil && !errors.Is(treeErr, context.Canceled) && !errors.Is(treeErr, context.DeadlineExceeded) {
		return fmt.Errorf("supervisor tree: %w", treeErr)
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}

// unstoppedReporter is satisfied by *supervisor.SupervisorTree.
type unstoppedReporter interface {
	UnstoppedServiceReport() ([]suture.UnstoppedService, error)
}

// logUnstoppedServices warns about every service that outlived its shutdown timeout.
func logUnstoppedServices(tree unstoppedReporter) {
	unstopped, err := tree.UnstoppedServiceReport()
	if err != nil {
		logging.Warn().Err(err).Msg("Could not build unstopped service report")
		return
	}
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
}
