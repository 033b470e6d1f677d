// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import (
	"sort"

	"github.com/tomtom215/catalogrec/internal/catalog"
)

// MaxResults is the fixed size cap for every ranking operation.
const MaxResults = 6

// Algorithm names, used as labels by callers that record metrics.
const (
	AlgorithmSimilar  = "similar"
	AlgorithmTrending = "trending"
	AlgorithmDeals    = "deals"
)

// Scorer maps a product to a ranking score. Higher scores rank first.
type Scorer func(p *catalog.Product) float64

// PopularityScore ranks by reviews weighted by rating.
func PopularityScore(p *catalog.Product) float64 {
	return float64(p.Reviews) * p.Rating
}

// ValueScore ranks by rating per currency unit. Price is always positive
// in a validated catalog.
func ValueScore(p *catalog.Product) float64 {
	return p.Rating / p.Price
}

// scoreProducts evaluates score over every product in catalog order.
func scoreProducts(products []catalog.Product, score Scorer) []float64 {
	scores := make([]float64, len(products))
	for i := range products {
		scores[i] = score(&products[i])
	}
	return scores
}

// byScoreDesc orders candidate indices by descending score.
// Used with sort.SliceStable over indices that start in catalog order, it
// breaks ties by catalog position.
func byScoreDesc(candidates []int, scores []float64) func(a, b int) bool {
	return func(a, b int) bool {
		return scores[candidates[a]] > scores[candidates[b]]
	}
}

// rankIndices returns candidate indices sorted by descending score, stable,
// truncated to limit.
func rankIndices(candidates []int, scores []float64, limit int) []int {
	sort.SliceStable(candidates, byScoreDesc(candidates, scores))
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// rankCatalog ranks all products by score and keeps the top MaxResults indices.
func rankCatalog(products []catalog.Product, score Scorer) []int {
	candidates := make([]int, len(products))
	for i := range candidates {
		candidates[i] = i
	}
	return rankIndices(candidates, scoreProducts(products, score), MaxResults)
}
