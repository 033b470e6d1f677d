// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ErrUnsupportedFormat is returned when a catalog file extension is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported catalog file format")

// productsKey is the top-level key holding the product list in every format.
const productsKey = "products"

// fileDocument is the on-disk layout shared by the JSON and TOML loaders.
type fileDocument struct {
	Products []Product `json:"products" toml:"products"`
}

// LoadFile reads a catalog from path. The format is chosen by extension.
// The result is not validated; pass it to Validate or to the engine.
func LoadFile(path string) ([]Product, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	var (
		products []Product
		err      error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		products, err = loadJSON(path)
	case ".yaml", ".yml":
		products, err = loadYAML(path)
	case ".toml":
		products, err = loadTOML(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog file %s: %w", path, err)
	}

	if products == nil {
		products = []Product{}
	}
	return products, nil
}

// loadJSON accepts either {"products": [...]} or a bare array of products.
func loadJSON(path string) ([]Product, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var products []Product
		if err := json.Unmarshal(trimmed, &products); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
		return products, nil
	}

	var doc fileDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return doc.Products, nil
}

// loadYAML reuses the koanf file provider and YAML parser used for configuration.
func loadYAML(path string) ([]Product, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	var products []Product
	if err := k.Unmarshal(productsKey, &products); err != nil {
		return nil, fmt.Errorf("decode yaml products: %w", err)
	}
	return products, nil
}

func loadTOML(path string) ([]Product, error) {
	var doc fileDocument
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("parse toml: %w", err)
	}
	return doc.Products, nil
}
