// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/catalogrec/internal/api"
	"github.com/tomtom215/catalogrec/internal/catalog"
	"github.com/tomtom215/catalogrec/internal/logging"
	"github.com/tomtom215/catalogrec/internal/recommend"
)

func newSimilarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "similar <id>",
		Short: "Print the products most similar to a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("product id %q is not an integer: %w", args[0], err)
			}
			return a.printRecommendations(cmd, func(e *recommend.Engine) []catalog.Product {
				if _, ok := e.Product(id); !ok {
					logging.Warn().Int("product_id", id).Msg("Product not in catalog, no recommendations")
				}
				return e.Similar(id)
			})
		},
	}
}

func newTrendingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "Print the most popular products (reviews x rating)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printRecommendations(cmd, (*recommend.Engine).Trending)
		},
	}
}

func newDealsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deals",
		Short: "Print the best-value products (rating / price)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.printRecommendations(cmd, (*recommend.Engine).Deals)
		},
	}
}

func newProductsCmd(a *app) *cobra.Command {
	var category, search string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Print catalog products, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := buildEngine(a.cfg.Catalog.Path)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), &api.ProductsResponse{
				Products: engine.ListProducts(category, search),
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Exact category name (empty or All for every category)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive substring of name or tag")

	return cmd
}

func (a *app) printRecommendations(cmd *cobra.Command, query func(*recommend.Engine) []catalog.Product) error {
	engine, err := buildEngine(a.cfg.Catalog.Path)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), &api.RecommendationsResponse{
		Recommendations: query(engine),
	})
}

// writeJSON prints v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
