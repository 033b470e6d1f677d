// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/catalogrec/internal/config"
	"github.com/tomtom215/catalogrec/internal/logging"
)

// app carries state shared by every subcommand. cfg is set by the root
// PersistentPreRunE before any RunE executes.
type app struct {
	configPath string
	cfg        *config.Config
}

const rootLongDesc string = `Catalogrec serves product recommendations over a static catalog.

Without a subcommand it runs the HTTP server. The query subcommands build the
same engine offline and print the JSON envelope the API would return.

Configuration is read from defaults, then an optional YAML file, then
environment variables. Use --config to point at a specific file.

Example:
  catalogrec --config /etc/catalogrec/config.yaml
  CATALOG_PATH=products.json catalogrec similar 3
  catalogrec products --category Electronics --search wireless
  catalogrec validate products.toml`

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "catalogrec",
		Short:         "Product recommendation service",
		Long:          rootLongDesc,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file (sets CONFIG_PATH)")

	cmd.AddCommand(
		newServeCmd(a),
		newSimilarCmd(a),
		newTrendingCmd(a),
		newDealsCmd(a),
		newProductsCmd(a),
		newValidateCmd(a),
	)

	return cmd
}

// setup loads configuration and initializes logging.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		if _, err := os.Stat(a.configPath); err != nil {
			return fmt.Errorf("config file: %w", err)
		}
		if err := os.Setenv(config.ConfigPathEnvVar, a.configPath); err != nil {
			return fmt.Errorf("setting %s: %w", config.ConfigPathEnvVar, err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    cmd.ErrOrStderr(),
	})

	return nil
}
