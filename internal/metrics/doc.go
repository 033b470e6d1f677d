// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics by the API router:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Requests by method, route pattern and status (counter)
  - api_request_duration_seconds: Request latency by method and route pattern (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Requests rejected by the rate limiter (counter)

Catalog Metrics:
  - catalog_products: Products in the loaded catalog (gauge)
  - catalog_categories: Distinct categories (gauge)

Recommendation Metrics:
  - recommend_engine_build_duration_seconds: Engine build time (histogram)
  - recommend_engine_build_errors_total: Failed builds (counter)
  - recommend_feature_dimensions: Feature vector length (gauge)
  - recommend_requests_total: Queries by algorithm (counter)
  - recommend_results_count: Products returned per query (histogram)
  - recommend_empty_results_total: Queries with no results (counter)

The recommend package itself does not import this package. Callers record
engine builds and queries, which keeps the engine free of global state.
*/
package metrics
