// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package api serves the ingredient explorer over HTTP.

Routes are mounted on a chi router (see SetupChi). Every JSON response uses
the models.APIResponse envelope:

	{"status": "success", "data": ..., "metadata": {"timestamp": ..., "query_time_ms": 0}}
	{"status": "error", "data": null, "error": {"code": "NOT_FOUND", "message": "..."}}

Catalog endpoints are read-only and cacheable: responses carry an ETag over
the data and honor If-None-Match. Session endpoints and recipe samples are
sent with Cache-Control: no-store.

Error codes:

  - VALIDATION_ERROR (400): query or body failed validation
  - UNKNOWN_NODE (400): toggled id or ingredient is not in the graph
  - NOT_FOUND (404): no nutrition or classification for the ingredient
  - SESSION_NOT_FOUND (404): session id unknown or expired
  - TOO_MANY_REQUESTS (429): per-IP rate limit exceeded
  - SERVICE_UNAVAILABLE (503): layout not ready or WebSocket hub missing
*/
package api
