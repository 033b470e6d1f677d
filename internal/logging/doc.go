// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package logging provides the process-wide zerolog logger for Catalogrec.

# Quick Start

	logging.Init(logging.Config{
	    Level:  cfg.Logging.Level,
	    Format: cfg.Logging.Format,
	    Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("addr", addr).Msg("HTTP server service added")
	logging.Error().Err(err).Msg("Catalog rejected")

# Request Context

The API middleware stores a request ID and a short correlation ID in the
request context. Ctx returns a logger that includes both:

	logging.Ctx(r.Context()).Warn().Str("param", "id").Msg("Invalid product id")

# Components

Packages that take a logger by value (the recommendation engine, for example)
tag it with a component field:

	logger := logging.WithComponent("catalog")

# slog Bridge

NewSlogLogger returns a *slog.Logger writing through zerolog. The supervisor
tree hands it to sutureslog so service restarts and failures land in the same
log stream.

# Configuration

  - LOG_LEVEL: trace, debug, info, warn, error, fatal, panic, disabled (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: include caller file and line (default: false)

Always terminate log chains with .Msg() or .Send(); an event that is never
sent is never written.
*/
package logging
