// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Load and validate a catalog file",
		Long: `Load and validate a catalog file (.json, .yaml, .yml or .toml).

Without an argument the configured catalog (CATALOG_PATH) is checked, or the
built-in catalog when none is configured. Every invalid product is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Catalog.Path
			if len(args) == 1 {
				path = args[0]
			}

			engine, err := buildEngine(path)
			if err != nil {
				return err
			}

			source := path
			if source == "" {
				source = builtinCatalogSource
			}
			stats := engine.Stats()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog %s is valid\n", source)
			fmt.Fprintf(out, "  products:   %d\n", stats.Products)
			fmt.Fprintf(out, "  categories: %d (%s)\n", stats.Categories, strings.Join(engine.Categories(), ", "))
			fmt.Fprintf(out, "  dimensions: %d\n", stats.Dimensions)
			return nil
		},
	}
}
