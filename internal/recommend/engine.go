// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/catalogrec/internal/catalog"
)

// Engine holds the catalog and everything derived from it.
//
// All fields are written once by NewEngine and never modified afterwards,
// so an *Engine is safe for concurrent use without locking. Methods return
// fresh copies; callers cannot reach the internal slices.
type Engine struct {
	products   []catalog.Product
	index      map[int]int // product id -> catalog position
	categories []string
	features   [][]float64
	similarity [][]float64

	// Catalog-only rankings do not change after construction.
	trending []int
	deals    []int

	stats  Stats
	logger zerolog.Logger
}

// Stats describes a built engine.
type Stats struct {
	Products      int           `json:"products"`
	Categories    int           `json:"categories"`
	Dimensions    int           `json:"dimensions"`
	BuildDuration time.Duration `json:"build_duration_ns"`
	BuiltAt       time.Time     `json:"built_at"`
}

// NewEngine validates products and precomputes the feature vectors, the
// similarity matrix and the catalog-only rankings.
//
// The products slice is copied; later changes by the caller are not seen by
// the engine. Any validation failure wraps catalog.ErrInvalidCatalog and no
// engine is returned.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(products []catalog.Product, logger zerolog.Logger) (*Engine, error) {
	start := time.Now()

	if err := catalog.Validate(products); err != nil {
		return nil, err
	}

	owned := make([]catalog.Product, len(products))
	index := make(map[int]int, len(products))
	for i := range products {
		owned[i] = products[i].Clone()
		index[owned[i].ID] = i
	}

	categories, features := EncodeFeatures(owned)
	similarity := BuildSimilarityMatrix(features)

	e := &Engine{
		products:   owned,
		index:      index,
		categories: categories,
		features:   features,
		similarity: similarity,
		trending:   rankCatalog(owned, PopularityScore),
		deals:      rankCatalog(owned, ValueScore),
		logger:     logger.With().Str("component", "recommend").Logger(),
	}

	e.stats = Stats{
		Products:      len(owned),
		Categories:    len(categories),
		Dimensions:    len(categories) + numericDims,
		BuildDuration: time.Since(start),
		BuiltAt:       time.Now(),
	}

	e.logger.Info().
		Int("products", e.stats.Products).
		Int("categories", e.stats.Categories).
		Int("dimensions", e.stats.Dimensions).
		Dur("build_duration", e.stats.BuildDuration).
		Msg("Recommendation engine built")

	return e, nil
}

// Stats returns build statistics.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Size returns the number of products in the catalog.
func (e *Engine) Size() int {
	return len(e.products)
}

// Categories returns the distinct categories in feature-dimension order.
func (e *Engine) Categories() []string {
	out := make([]string, len(e.categories))
	copy(out, e.categories)
	return out
}

// Product looks up a single product by id.
func (e *Engine) Product(id int) (catalog.Product, bool) {
	i, ok := e.index[id]
	if !ok {
		return catalog.Product{}, false
	}
	return e.products[i].Clone(), true
}

// ListProducts returns the products passing both filters, in catalog order.
// See catalog.Product.MatchesCategory and MatchesSearch for the filter rules.
func (e *Engine) ListProducts(category, search string) []catalog.Product {
	out := make([]catalog.Product, 0, len(e.products))
	for i := range e.products {
		p := &e.products[i]
		if !p.MatchesCategory(category) || !p.MatchesSearch(search) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// Similar returns up to MaxResults products ordered by descending cosine
// similarity to the product with the given id. The product itself is never
// included and ties keep catalog order.
//
// An unknown id yields an empty result rather than an error: there is
// simply nothing to recommend.
func (e *Engine) Similar(id int) []catalog.Product {
	target, ok := e.index[id]
	if !ok {
		e.logger.Debug().Int("product_id", id).Msg("Similar requested for unknown product")
		return []catalog.Product{}
	}

	candidates := make([]int, 0, len(e.products)-1)
	for i := range e.products {
		if i == target {
			continue
		}
		candidates = append(candidates, i)
	}

	return e.collect(rankIndices(candidates, e.similarity[target], MaxResults))
}

// Trending returns up to MaxResults products ranked by reviews * rating.
func (e *Engine) Trending() []catalog.Product {
	return e.collect(e.trending)
}

// Deals returns up to MaxResults products ranked by rating / price.
func (e *Engine) Deals() []catalog.Product {
	return e.collect(e.deals)
}

func (e *Engine) collect(indices []int) []catalog.Product {
	out := make([]catalog.Product, len(indices))
	for k, i := range indices {
		out[k] = e.products[i].Clone()
	}
	return out
}
