// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in error messages are
// taken from the `query` tag, then the `json` tag, so messages name the
// parameter or key the client actually sent.
//
// # Custom Rules
//
//   - nocontrol: rejects strings containing Unicode control characters
//
// # Usage
//
//	type listProductsRequest struct {
//	    Category string `query:"category" validate:"max=64,nocontrol"`
//	    Search   string `query:"search" validate:"max=100,nocontrol"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// The catalog package uses the same validator for product records, so a
// catalog file and a request query report problems in the same words.
package validation
