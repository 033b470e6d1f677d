// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package middleware provides infrastructure HTTP middleware for the API router.

Key Components:

  - RequestID: Request ID and correlation ID for every request, shared with the logging context
  - PrometheusMetrics: Request count, latency and in-flight gauge labeled by chi route pattern
  - AccessLog: Request-scoped completion log with slow request and 5xx warnings

All middleware uses the standard func(http.Handler) http.Handler shape and
plugs into chi with r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.PrometheusMetrics)

CORS and rate limiting are configured in the api package, which owns the
error envelope returned on rejection.
*/
package middleware
