// Catalogrec - Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/catalogrec

package api

import "github.com/tomtom215/catalogrec/internal/validation"

// Error codes for API responses
const (
	ErrCodeInvalidProductID   = "INVALID_PRODUCT_ID"
	ErrCodeValidation         = validation.ErrorCode
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
