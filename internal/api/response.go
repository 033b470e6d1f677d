// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package api

import (
	"time"

	"github.com/tomtom215/catalogrec/internal/catalog"
)

// ProductsResponse is the envelope for product listings.
type ProductsResponse struct {
	Products []catalog.Product `json:"products"`
}

// RecommendationsResponse is the envelope for every recommendation endpoint.
type RecommendationsResponse struct {
	Recommendations []catalog.Product `json:"recommendations"`
}

// CategoriesResponse lists the distinct catalog categories.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// HealthResponse is returned by the liveness and readiness probes.
type HealthResponse struct {
	Status        string     `json:"status"`
	Uptime        float64    `json:"uptime_seconds"`
	Products      int        `json:"products,omitempty"`
	Categories    int        `json:"categories,omitempty"`
	EngineBuiltAt *time.Time `json:"engine_built_at,omitempty"`
}

// ErrorResponse wraps an APIError.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// APIError represents an error response.
type APIError struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains additional error details (optional)
	Details interface{} `json:"details,omitempty"`

	// RequestID is the request ID for tracing
	RequestID string `json:"request_id,omitempty"`
}
