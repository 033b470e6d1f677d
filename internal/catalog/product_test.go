// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func validProduct(id int) Product {
	return Product{
		ID:       id,
		Name:     "Product",
		Category: "Electronics",
		Price:    100,
		Rating:   4.0,
		Reviews:  10,
		Tags:     []string{"tag"},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		products func() []Product
		wantErr  bool
		contains string
	}{
		{
			name:     "empty catalog",
			products: func() []Product { return nil },
			wantErr:  true,
			contains: "catalog is empty",
		},
		{
			name:     "single valid product",
			products: func() []Product { return []Product{validProduct(1)} },
		},
		{
			name: "duplicate id",
			products: func() []Product {
				return []Product{validProduct(1), validProduct(2), validProduct(1)}
			},
			wantErr:  true,
			contains: "duplicate id",
		},
		{
			name: "empty name",
			products: func() []Product {
				p := validProduct(1)
				p.Name = ""
				return []Product{p}
			},
			wantErr:  true,
			contains: "name is required",
		},
		{
			name: "empty category",
			products: func() []Product {
				p := validProduct(1)
				p.Category = ""
				return []Product{p}
			},
			wantErr:  true,
			contains: "category is required",
		},
		{
			name: "zero price",
			products: func() []Product {
				p := validProduct(1)
				p.Price = 0
				return []Product{p}
			},
			wantErr:  true,
			contains: "price must be greater than 0",
		},
		{
			name: "negative price",
			products: func() []Product {
				p := validProduct(1)
				p.Price = -5
				return []Product{p}
			},
			wantErr:  true,
			contains: "price must be greater than 0",
		},
		{
			name: "NaN price",
			products: func() []Product {
				p := validProduct(1)
				p.Price = math.NaN()
				return []Product{p}
			},
			wantErr:  true,
			contains: "price must be greater than 0",
		},
		{
			name: "rating above five",
			products: func() []Product {
				p := validProduct(1)
				p.Rating = 5.1
				return []Product{p}
			},
			wantErr:  true,
			contains: "rating must be",
		},
		{
			name: "negative rating",
			products: func() []Product {
				p := validProduct(1)
				p.Rating = -0.1
				return []Product{p}
			},
			wantErr:  true,
			contains: "rating must be",
		},
		{
			name: "rating bounds are inclusive",
			products: func() []Product {
				low, high := validProduct(1), validProduct(2)
				low.Rating, high.Rating = 0, 5
				return []Product{low, high}
			},
		},
		{
			name: "non-positive id",
			products: func() []Product {
				return []Product{validProduct(0)}
			},
			wantErr:  true,
			contains: "id must be greater than 0",
		},
		{
			name: "negative reviews",
			products: func() []Product {
				p := validProduct(1)
				p.Reviews = -1
				return []Product{p}
			},
			wantErr:  true,
			contains: "reviews must be greater than or equal to 0",
		},
		{
			name:     "default catalog",
			products: Default,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.products())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("error %v does not wrap ErrInvalidCatalog", err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	bad := validProduct(2)
	bad.Price = 0
	products := []Product{validProduct(1), bad, validProduct(1)}

	err := Validate(products)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "product 2 (index 1)") {
		t.Errorf("missing price problem in %q", msg)
	}
	if !strings.Contains(msg, "product 1 (index 2): duplicate id, first defined at index 0") {
		t.Errorf("missing duplicate problem in %q", msg)
	}
}

func TestProduct_MatchesCategory(t *testing.T) {
	t.Parallel()

	p := validProduct(1)
	p.Category = "Smart Home"

	tests := []struct {
		filter string
		want   bool
	}{
		{"", true},
		{AllCategories, true},
		{"Smart Home", true},
		{"smart home", false},
		{"Smart Home ", false},
		{"Home", false},
	}

	for _, tt := range tests {
		if got := p.MatchesCategory(tt.filter); got != tt.want {
			t.Errorf("MatchesCategory(%q) = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestProduct_MatchesSearch(t *testing.T) {
	t.Parallel()

	p := Product{ID: 1, Name: "Sony WH-1000XM5", Tags: []string{"headphones", "wireless"}}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"sony", true},
		{"SONY", true},
		{"wh-1000", true},
		{"wire", true},
		{"HEADPHONES", true},
		{"apple", false},
		{"sony headphones", false},
	}

	for _, tt := range tests {
		if got := p.MatchesSearch(tt.term); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestProduct_Clone(t *testing.T) {
	t.Parallel()

	orig := validProduct(1)
	clone := orig.Clone()
	clone.Tags[0] = "changed"
	clone.Name = "changed"

	if orig.Tags[0] != "tag" {
		t.Errorf("clone shares tag storage with original")
	}
	if orig.Name != "Product" {
		t.Errorf("clone mutated original name")
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	products := Default()
	if len(products) != 19 {
		t.Fatalf("len(Default()) = %d, want 19", len(products))
	}
	for i, p := range products {
		if p.ID != i+1 {
			t.Errorf("products[%d].ID = %d, want %d", i, p.ID, i+1)
		}
	}

	// Callers get an independent copy.
	products[0].Tags[0] = "mutated"
	if Default()[0].Tags[0] != "headphones" {
		t.Error("Default() returned shared tag storage")
	}
}
