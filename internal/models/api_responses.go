// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package models

import (
	"time"
)

// APIResponse is the envelope for every HTTP response.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": ["cebolla", "limon"],
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 0}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms"`
	Count       *int      `json:"count,omitempty"`
}

// APIError describes a failed request.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status      string    `json:"status"`
	Version     string    `json:"version"`
	Ingredients int       `json:"ingredients"`
	Recipes     int       `json:"recipes"`
	Sessions    int       `json:"sessions"`
	LayoutReady bool      `json:"layout_ready"`
	Uptime      float64   `json:"uptime_seconds"`
	Timestamp   time.Time `json:"timestamp"`
}
