// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive.
//
// @Summary Liveness probe
// @Description Returns 200 OK while the process is running.
// @Tags Health
// @Produce json
// @Success 200 {object} api.HealthResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, &HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once the engine holds a non-empty catalog.
//
// @Summary Readiness probe
// @Description Returns 200 OK with catalog statistics once the recommendation engine is built. Returns 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} api.HealthResponse "Service is ready"
// @Failure 503 {object} api.ErrorResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if h.engine == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Recommendation engine not ready", nil)
		return
	}

	if h.engine.Size() == 0 {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Catalog is empty", nil)
		return
	}

	stats := h.engine.Stats()
	builtAt := stats.BuiltAt
	respondJSON(w, r, http.StatusOK, &HealthResponse{
		Status:        "ok",
		Uptime:        time.Since(h.startTime).Seconds(),
		Products:      stats.Products,
		Categories:    stats.Categories,
		EngineBuiltAt: &builtAt,
	})
}
