// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/catalogrec/internal/validation"
)

// AllCategories is the category filter value that disables category filtering.
const AllCategories = "All"

// ErrInvalidCatalog is returned (wrapped) for any catalog the engine cannot be built from.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Product is a single catalog entry.
//
// Struct tags serve the three file formats (json, yaml via koanf, toml)
// and the validator. The JSON keys are also the API wire format.
type Product struct {
	ID       int      `json:"id" koanf:"id" toml:"id" validate:"gt=0"`
	Name     string   `json:"name" koanf:"name" toml:"name" validate:"required"`
	Category string   `json:"category" koanf:"category" toml:"category" validate:"required"`
	Price    float64  `json:"price" koanf:"price" toml:"price" validate:"gt=0"`
	Rating   float64  `json:"rating" koanf:"rating" toml:"rating" validate:"gte=0,lte=5"`
	Reviews  int      `json:"reviews" koanf:"reviews" toml:"reviews" validate:"gte=0"`
	Tags     []string `json:"tags" koanf:"tags" toml:"tags"`
}

// Clone returns a copy of the product that shares no memory with p.
func (p *Product) Clone() Product {
	c := *p
	if p.Tags != nil {
		c.Tags = make([]string, len(p.Tags))
		copy(c.Tags, p.Tags)
	}
	return c
}

// MatchesCategory reports whether the product passes the category filter.
// An empty filter or AllCategories matches every product; otherwise the
// comparison is exact and case-sensitive.
func (p *Product) MatchesCategory(category string) bool {
	if category == "" || category == AllCategories {
		return true
	}
	return p.Category == category
}

// MatchesSearch reports whether term is a case-insensitive substring of the
// product name or of any tag. An empty term matches every product.
func (p *Product) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Validate checks a whole catalog and reports every problem it finds in a
// single error wrapping ErrInvalidCatalog.
func Validate(products []Product) error {
	if len(products) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	var problems []string
	seen := make(map[int]int, len(products))

	for i := range products {
		p := &products[i]

		if verr := validation.ValidateStruct(p); verr != nil {
			problems = append(problems, fmt.Sprintf("product %d (index %d): %s", p.ID, i, verr.Error()))
		}

		if first, dup := seen[p.ID]; dup {
			problems = append(problems, fmt.Sprintf("product %d (index %d): duplicate id, first defined at index %d", p.ID, i, first))
			continue
		}
		seen[p.ID] = i
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, "; "))
	}
	return nil
}
