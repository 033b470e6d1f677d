// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package api provides the HTTP REST API layer for Catalogrec.

The API is read-only. It exposes the catalog and the three recommendation
strategies computed by the recommend package.

Endpoints:

  - GET /api/products?category=&search=  {"products": [...]}
  - GET /api/categories                  {"categories": [...]}
  - GET /api/recommend/similar/{id}      {"recommendations": [...]}
  - GET /api/recommend/trending          {"recommendations": [...]}
  - GET /api/recommend/deals             {"recommendations": [...]}
  - GET /api/health/live, /api/health/ready
  - GET /metrics                         Prometheus exposition
  - GET /swagger/*                       Swagger UI

Errors share one envelope:

	{"error": {"code": "INVALID_PRODUCT_ID", "message": "...", "request_id": "..."}}

Middleware Stack:

Global middleware runs on every request: request ID, RealIP, panic
recovery and CORS. Routes under /api additionally pass through the per-IP
rate limiter (go-chi/httprate), Prometheus request metrics and the access
log. Health probes are exempt from rate limiting.

Usage Example:

	engine, err := recommend.NewEngine(products, logging.Logger())
	if err != nil {
	    return err
	}
	router := api.NewRouter(engine, api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Thread Safety:

Handlers hold no mutable state. The engine is immutable after
construction, so concurrent requests need no locking.
*/
package api
