// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package recommend implements a deterministic, content-based recommendation
// engine over a fixed product catalog.
//
// # Architecture
//
// Everything expensive happens once, inside NewEngine:
//
//  1. The catalog is validated (catalog.Validate).
//  2. EncodeFeatures turns each product into a feature vector: a one-hot
//     block over the sorted distinct categories followed by price/2500 and
//     rating/5.
//  3. BuildSimilarityMatrix computes all-pairs cosine similarity.
//  4. The catalog-only rankings (trending, deals) are ranked.
//
// Queries then read these structures without recomputation.
//
// # Rankings
//
//   - Similar(id): other products by descending similarity to id.
//   - Trending(): products by descending reviews * rating.
//   - Deals(): products by descending rating / price.
//   - ListProducts(category, search): filtered listing in catalog order.
//
// Every ranking returns at most MaxResults (6) products and breaks ties by
// catalog order using stable sorts over index permutations.
//
// # Usage
//
//	engine, err := recommend.NewEngine(catalog.Default(), logger)
//	if err != nil {
//	    // errors.Is(err, catalog.ErrInvalidCatalog)
//	}
//	recs := engine.Similar(8)
//
// # Thread Safety
//
// An *Engine is immutable once NewEngine returns and may be shared by any
// number of goroutines. No method blocks or performs I/O.
package recommend
