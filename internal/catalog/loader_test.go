// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const jsonCatalog = `{
  "products": [
    {"id": 1, "name": "Sony WH-1000XM5", "category": "Electronics", "price": 399, "rating": 4.8, "reviews": 12400, "tags": ["headphones", "wireless", "sony"]},
    {"id": 2, "name": "Apple AirPods Pro", "category": "Electronics", "price": 249, "rating": 4.7, "reviews": 89300, "tags": ["earbuds", "apple"]}
  ]
}`

const jsonArrayCatalog = `[
  {"id": 1, "name": "Sony WH-1000XM5", "category": "Electronics", "price": 399, "rating": 4.8, "reviews": 12400, "tags": ["headphones", "wireless", "sony"]},
  {"id": 2, "name": "Apple AirPods Pro", "category": "Electronics", "price": 249, "rating": 4.7, "reviews": 89300, "tags": ["earbuds", "apple"]}
]`

const yamlCatalog = `products:
  - id: 1
    name: Sony WH-1000XM5
    category: Electronics
    price: 399
    rating: 4.8
    reviews: 12400
    tags: [headphones, wireless, sony]
  - id: 2
    name: Apple AirPods Pro
    category: Electronics
    price: 249
    rating: 4.7
    reviews: 89300
    tags: [earbuds, apple]
`

const tomlCatalog = `[[products]]
id = 1
name = "Sony WH-1000XM5"
category = "Electronics"
price = 399.0
rating = 4.8
reviews = 12400
tags = ["headphones", "wireless", "sony"]

[[products]]
id = 2
name = "Apple AirPods Pro"
category = "Electronics"
price = 249.0
rating = 4.7
reviews = 89300
tags = ["earbuds", "apple"]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFile_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"json envelope", "catalog.json", jsonCatalog},
		{"json array", "catalog.json", jsonArrayCatalog},
		{"yaml", "catalog.yaml", yamlCatalog},
		{"yml", "catalog.yml", yamlCatalog},
		{"toml", "catalog.toml", tomlCatalog},
		{"uppercase extension", "CATALOG.JSON", jsonCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			products, err := LoadFile(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if len(products) != 2 {
				t.Fatalf("len(products) = %d, want 2", len(products))
			}

			first := products[0]
			if first.ID != 1 || first.Name != "Sony WH-1000XM5" || first.Category != "Electronics" {
				t.Errorf("products[0] = %+v", first)
			}
			if first.Price != 399 || first.Rating != 4.8 || first.Reviews != 12400 {
				t.Errorf("products[0] numeric fields = %v/%v/%v", first.Price, first.Rating, first.Reviews)
			}
			if len(first.Tags) != 3 || first.Tags[2] != "sony" {
				t.Errorf("products[0].Tags = %v", first.Tags)
			}
			if products[1].ID != 2 {
				t.Errorf("products[1].ID = %d, want 2 (order must be preserved)", products[1].ID)
			}
			if err := Validate(products); err != nil {
				t.Errorf("loaded catalog failed validation: %v", err)
			}
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()
		_, err := LoadFile(writeFile(t, "catalog.csv", "id,name\n"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadFile(writeFile(t, "catalog.json", `{"products": [`)); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("malformed toml", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadFile(writeFile(t, "catalog.toml", "[[products]\nid = ")); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestLoadFile_EmptyProductList(t *testing.T) {
	t.Parallel()

	products, err := LoadFile(writeFile(t, "catalog.json", `{"products": []}`))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if products == nil || len(products) != 0 {
		t.Fatalf("products = %v, want empty non-nil slice", products)
	}
	if err := Validate(products); !errors.Is(err, ErrInvalidCatalog) {
		t.Errorf("Validate(empty) = %v, want ErrInvalidCatalog", err)
	}
}
