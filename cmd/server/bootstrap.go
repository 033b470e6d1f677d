// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	"fmt"
	"time"

	"github.com/tomtom215/catalogrec/internal/catalog"
	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/metrics"
	"github.com/tomtom215/catalogrec/internal/recommend"
)

// builtinCatalogSource names the embedded catalog in logs and summaries.
const builtinCatalogSource = "built-in"

// loadCatalog reads products from path, or returns the built-in catalog when path is empty.
// The second return value describes where the products came from.
func loadCatalog(path string) ([]catalog.Product, string, error) {
	if path == "" {
		return catalog.Default(), builtinCatalogSource, nil
	}
	products, err := catalog.LoadFile(path)
	if err != nil {
		return nil, path, err
	}
	return products, path, nil
}

// buildEngine loads the catalog at path and builds the recommendation engine.
// Build metrics are recorded whether or not the build succeeds.
func buildEngine(path string) (*recommend.Engine, error) {
	start := time.Now()

	products, source, err := loadCatalog(path)
	if err != nil {
		metrics.RecordEngineBuild(time.Since(start), 0, 0, 0, err)
		return nil, err
	}

	engine, err := recommend.NewEngine(products, logging.Logger())
	if err != nil {
		metrics.RecordEngineBuild(time.Since(start), 0, 0, 0, err)
		return nil, fmt.Errorf("catalog %s: %w", source, err)
	}

	stats := engine.Stats()
	metrics.RecordEngineBuild(time.Since(start), stats.Products, stats.Categories, stats.Dimensions, nil)

	logging.Info().
		Str("source", source).
		Int("products", stats.Products).
		Int("categories", stats.Categories).
		Msg("Catalog loaded")

	return engine, nil
}
