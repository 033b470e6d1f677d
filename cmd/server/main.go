// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package main

import (
	_ "github.com/tomtom215/catalogrec/docs" // Import generated swagger docs
	"github.com/tomtom215/catalogrec/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.Fatal().Err(err).Msg("catalogrec failed")
	}
}
