// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

/*
Package catalog defines the product records the recommendation engine ranks.

A catalog is an ordered slice of Product values. Order carries no ranking
meaning; it is storage order and the tie-break order for every ranking the
engine produces.

# Sources

Two sources are supported:

  - Default returns the built-in catalog of 19 consumer electronics and home
    products that ships with the service.
  - LoadFile reads a catalog from disk. The format is picked by extension:
    .json, .yaml/.yml and .toml are accepted. Every format uses the same
    layout, a top-level "products" list whose entries carry the same keys as
    the API responses.

Example YAML catalog:

	products:
	  - id: 1
	    name: Sony WH-1000XM5
	    category: Electronics
	    price: 399
	    rating: 4.8
	    reviews: 12400
	    tags: [headphones, wireless, sony]

# Validation

Validate rejects catalogs the engine cannot rank. All failures wrap
ErrInvalidCatalog so callers can test with errors.Is:

  - empty catalog
  - duplicate product id
  - id not positive
  - price not strictly positive
  - rating outside [0, 5]
  - negative review count

Per-field rules are declared as go-playground/validator struct tags on
Product and checked through the shared validation package.

# Filtering

MatchesCategory and MatchesSearch implement the product listing filters.
Category matching is exact and case-sensitive, with "All" or an empty string
meaning no filter. Search matching is a case-insensitive substring match
against the product name or any tag.
*/
package catalog
