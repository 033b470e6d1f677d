// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/catalogrec/internal/logging"
)

// DefaultSlowRequestThreshold is the latency above which a request is logged at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs every completed request through the request-scoped logger.
//
// Requests are logged at debug level; requests slower than slowThreshold
// and 5xx responses are logged at warn. A non-positive threshold uses
// DefaultSlowRequestThreshold.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowRequestThreshold
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			status := statusOf(ww)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			msg := "Request completed"
			switch {
			case status >= http.StatusInternalServerError:
				event = logger.Warn()
				msg = "Request failed"
			case duration > slowThreshold:
				event = logger.Warn()
				msg = "Slow request detected"
			}

			event.
				Str("method", r.Method).
				Str("route", RoutePattern(r)).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", duration).
				Msg(msg)
		})
	}
}
