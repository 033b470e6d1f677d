// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/catalogrec/internal/middleware"
)

// Router wires the handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router serving engine. A nil mwConfig selects DefaultChiMiddlewareConfig.
func NewRouter(engine Recommender, mwConfig *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       NewHandler(engine),
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)        // X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(router.notFound)
	r.MethodNotAllowed(router.methodNotAllowed)

	// ========================
	// Catalog & Recommendation Endpoints
	// ========================
	// Group middleware runs once the /api router has matched the endpoint, so
	// the rate limiter sees the final route pattern. Routes inside the group
	// must stay flat: a nested r.Route would resolve only to its mount
	// pattern (/api/recommend/*) at that point.
	r.Route("/api", func(r chi.Router) {
		r.NotFound(router.notFound)
		r.MethodNotAllowed(router.methodNotAllowed)

		r.Group(func(r chi.Router) {
			r.Use(middleware.PrometheusMetrics) // before the limiter so 429s are counted
			r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
			r.Use(router.chiMiddleware.RateLimit())

			r.Get("/products", router.handler.ListProducts)
			r.Get("/categories", router.handler.Categories)

			r.Get("/recommend/similar/{id}", router.handler.Similar)
			r.Get("/recommend/trending", router.handler.Trending)
			r.Get("/recommend/deals", router.handler.Deals)
		})

		// Probes bypass the rate limiter.
		r.Route("/health", func(r chi.Router) {
			r.Get("/live", router.handler.HealthLive)
			r.Get("/ready", router.handler.HealthReady)
		})
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	return r
}

func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Resource not found", nil)
}

func (router *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}
