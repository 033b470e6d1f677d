// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogrec/internal/catalog"
	"github.com/tomtom215/catalogrec/internal/recommend"
)

// testProducts is a small catalog with hand-checked rankings:
//
//	trending (reviews*rating): 1, 3, 4, 2
//	deals (rating/price):      3, 4, 1, 2
//	similar to 1:              2, 3, 4
func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Studio Monitor", Category: "Electronics", Price: 100, Rating: 4.0, Reviews: 1000, Tags: []string{"audio"}},
		{ID: 2, Name: "Wireless Headset", Category: "Electronics", Price: 200, Rating: 4.5, Reviews: 10, Tags: []string{"audio", "wireless"}},
		{ID: 3, Name: "Paperback Novel", Category: "Books", Price: 20, Rating: 5.0, Reviews: 500, Tags: []string{"fiction"}},
		{ID: 4, Name: "Pasta Cookbook", Category: "Books", Price: 25, Rating: 3.0, Reviews: 50, Tags: []string{"cooking"}},
	}
}

func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	engine, err := recommend.NewEngine(testProducts(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// newTestServer returns the full router over the test catalog with rate limiting disabled.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(newTestEngine(t), cfg).SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func productIDs(products []catalog.Product) []int {
	ids := make([]int, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
