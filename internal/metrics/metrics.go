// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Metrics
	CatalogProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Number of products in the loaded catalog",
		},
	)

	CatalogCategories = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_categories",
			Help: "Number of distinct categories in the loaded catalog",
		},
	)

	// Recommendation Engine Metrics
	EngineBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_engine_build_duration_seconds",
			Help:    "Time to validate the catalog and build features, similarity and rankings",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 100us .. ~26s
		},
	)

	EngineBuildErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_engine_build_errors_total",
			Help: "Total number of failed engine builds (invalid catalog)",
		},
	)

	EngineFeatureDimensions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_feature_dimensions",
			Help: "Length of each product feature vector",
		},
	)

	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation queries by algorithm",
		},
		[]string{"algorithm"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_results_count",
			Help:    "Number of products returned per recommendation query",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 6},
		},
		[]string{"algorithm"},
	)

	RecommendationEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_empty_results_total",
			Help: "Total number of recommendation queries that returned nothing (e.g. unknown product id)",
		},
		[]string{"algorithm"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordAPIResponse records an API request with a numeric status code.
func RecordAPIResponse(method, endpoint string, status int, duration time.Duration) {
	RecordAPIRequest(method, endpoint, strconv.Itoa(status), duration)
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordEngineBuild records the outcome of building the recommendation engine.
// On success the catalog gauges reflect the new engine.
func RecordEngineBuild(duration time.Duration, products, categories, dimensions int, err error) {
	EngineBuildDuration.Observe(duration.Seconds())
	if err != nil {
		EngineBuildErrors.Inc()
		return
	}
	CatalogProducts.Set(float64(products))
	CatalogCategories.Set(float64(categories))
	EngineFeatureDimensions.Set(float64(dimensions))
}

// RecordRecommendation records one recommendation query and its result size.
func RecordRecommendation(algorithm string, results int) {
	RecommendationsServed.WithLabelValues(algorithm).Inc()
	RecommendationResults.WithLabelValues(algorithm).Observe(float64(results))
	if results == 0 {
		RecommendationEmpty.WithLabelValues(algorithm).Inc()
	}
}
