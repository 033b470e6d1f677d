// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package main provides the Catalogrec HTTP server
//
// Catalogrec serves content-based product recommendations over a static catalog.
//
// @title Catalogrec API
// @version 1.0
// @description Product catalog browsing and recommendations
// @description
// @description ## Recommendation Strategies
// @description
// @description - **Similar**: cosine similarity over one-hot category, normalized price and normalized rating
// @description - **Trending**: reviews multiplied by rating
// @description - **Deals**: rating divided by price
// @description
// @description Every strategy returns at most 6 products.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description Health probes are not rate limited.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "request_id": "..."
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/catalogrec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api
// @schemes http https
//
// @tag.name Catalog
// @tag.description Product listing and category endpoints
//
// @tag.name Recommendations
// @tag.description Similar, trending and best-value recommendations
//
// @tag.name Health
// @tag.description Liveness and readiness probes
package main
