// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/maridaje/internal/explorer"
)

// Error codes carried in APIError.Code.
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeSessionNotFound    = "SESSION_NOT_FOUND"
	ErrCodeUnknownNode        = "UNKNOWN_NODE"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeTimeout            = "TIMEOUT"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// explorerErrorStatus maps an explorer error to a status and code.
func explorerErrorStatus(err error) (int, string, string) {
	switch {
	case errors.Is(err, explorer.ErrSessionNotFound):
		return http.StatusNotFound, ErrCodeSessionNotFound, "Session not found or expired"
	case errors.Is(err, explorer.ErrUnknownNode):
		return http.StatusBadRequest, ErrCodeUnknownNode, "Unknown graph node"
	default:
		return http.StatusInternalServerError, ErrCodeInternal, "Internal server error"
	}
}
