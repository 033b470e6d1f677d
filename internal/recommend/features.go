// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package recommend

import (
	"sort"

	"github.com/tomtom215/catalogrec/internal/catalog"
)

// Fixed scale references for the numeric feature dimensions.
// They are constants, not statistics of the catalog.
const (
	PriceNorm  = 2500.0
	RatingNorm = 5.0
)

// numericDims is the number of non-categorical dimensions appended after
// the one-hot category block (price, rating).
const numericDims = 2

// Categories returns the distinct category values of products in
// lexicographic byte order. Comparison is exact; "Home" and "home" are
// different categories.
func Categories(products []catalog.Product) []string {
	seen := make(map[string]struct{}, len(products))
	categories := make([]string, 0, len(products))
	for i := range products {
		c := products[i].Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories
}

// EncodeFeatures builds one feature vector per product, in catalog order.
//
// Layout: one-hot over the sorted categories, then price/PriceNorm and
// rating/RatingNorm. Every vector has len(categories)+2 dimensions.
func EncodeFeatures(products []catalog.Product) (categories []string, vectors [][]float64) {
	categories = Categories(products)

	position := make(map[string]int, len(categories))
	for i, c := range categories {
		position[c] = i
	}

	dims := len(categories) + numericDims
	vectors = make([][]float64, len(products))
	for i := range products {
		p := &products[i]
		v := make([]float64, dims)
		v[position[p.Category]] = 1.0
		v[len(categories)] = p.Price / PriceNorm
		v[len(categories)+1] = p.Rating / RatingNorm
		vectors[i] = v
	}

	return categories, vectors
}
