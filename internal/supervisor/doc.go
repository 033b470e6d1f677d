// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package supervisor provides process supervision for Catalogrec using suture v4.

The tree restarts crashed services with backoff and shuts them down in order
when the root context is canceled:

	RootSupervisor ("catalogrec")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service start, failure, backoff) are logged through
sutureslog, which takes a *slog.Logger. logging.NewSlogLogger bridges that
to the process-wide zerolog logger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfigFromConfig(cfg))
	if err != nil {
	    return err
	}

	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout, logging.Logger()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor tree stopped with error")
	}

# Configuration

FailureThreshold, FailureDecay and FailureBackoff come from the supervisor
section of the config (SUPERVISOR_* environment variables). ShutdownTimeout
is the server shutdown timeout.
*/
package supervisor
