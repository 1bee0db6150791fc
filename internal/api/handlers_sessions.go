// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/tomtom215/maridaje/internal/explorer"
	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/models"
	ws "github.com/tomtom215/maridaje/internal/websocket"
)

// CreateSession starts an empty explorer session.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	session := h.explorer.Create()

	w.Header().Set("Location", "/api/v1/sessions/"+session.ID())
	respondNoStore(w, http.StatusCreated, success(session.View(), start))
}

// GetSession returns the current view of a session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}
	respondNoStore(w, http.StatusOK, success(session.View(), start))
}

// DeleteSession ends a session and disconnects its WebSocket subscribers.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}
	if err := h.explorer.Delete(id); err != nil {
		status, code, message := explorerErrorStatus(err)
		respondError(w, status, code, message, nil)
		return
	}
	w.Header().Set("Cache-Control", cacheNoStore)
	w.WriteHeader(http.StatusNoContent)
}

// ToggleNode adds a node to the selection or removes it.
func (h *Handler) ToggleNode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}
	var req models.ToggleRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	view, err := h.explorer.Toggle(id, req.NodeID)
	if err != nil {
		h.respondExplorerError(w, r, err)
		return
	}
	respondNoStore(w, http.StatusOK, success(view, start))
}

// ToggleRecommended toggles the node of a suggested ingredient.
func (h *Handler) ToggleRecommended(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}
	var req models.RecommendedRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	view, err := h.explorer.AddRecommended(id, req.Ingredient)
	if err != nil {
		h.respondExplorerError(w, r, err)
		return
	}
	respondNoStore(w, http.StatusOK, success(view, start))
}

// SelectRecipe replaces the selection with a recipe's ingredients. An
// unknown title leaves the session untouched and reports matched=false.
func (h *Handler) SelectRecipe(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := sessionIDParam(w, r)
	if !ok {
		return
	}
	var req models.RecipeSearchRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	result, err := h.explorer.SelectRecipe(id, req.Title)
	if err != nil {
		h.respondExplorerError(w, r, err)
		return
	}
	respondNoStore(w, http.StatusOK, success(result, start))
}

// SessionWebSocket streams session_update messages for one session.
func (h *Handler) SessionWebSocket(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		logging.Warn().Msg("WebSocket connection rejected: hub not initialized")
		respondError(w, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "WebSocket service unavailable", nil)
		return
	}

	session, ok := h.lookupSession(w, r)
	if !ok {
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade error")
		return
	}

	client := ws.NewClient(h.wsHub, conn, session.ID())
	h.wsHub.Register <- client
	client.Start()

	// Send the current state so the client does not wait for the next change.
	session.Republish()
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin accepts requests without an Origin header (non-browser
// clients) and browser requests from a configured CORS origin.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.allowedOrigins() {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	logging.Warn().Str("origin", sanitizeLogValue(origin)).Msg("WebSocket connection rejected from unauthorized origin")
	return false
}

func (h *Handler) lookupSession(w http.ResponseWriter, r *http.Request) (*explorer.Session, bool) {
	id, ok := sessionIDParam(w, r)
	if !ok {
		return nil, false
	}
	session, err := h.explorer.Get(id)
	if err != nil {
		status, code, message := explorerErrorStatus(err)
		respondError(w, status, code, message, nil)
		return nil, false
	}
	return session, true
}

func (h *Handler) respondExplorerError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := explorerErrorStatus(err)
	if status >= http.StatusInternalServerError {
		respondError(w, status, code, message, err)
		return
	}
	logging.Ctx(r.Context()).Debug().Str("code", code).Msg("Session request rejected")
	respondError(w, status, code, message, nil)
}

// sessionIDParam reads and validates the {id} path parameter.
func sessionIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	req := SessionPathRequest{ID: chi.URLParam(r, "id")}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, apiErr)
		return "", false
	}
	return req.ID, true
}
