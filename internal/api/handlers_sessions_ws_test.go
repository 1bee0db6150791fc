// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/maridaje/internal/config"
	"github.com/tomtom215/maridaje/internal/models"
	ws "github.com/tomtom215/maridaje/internal/websocket"
)

type wsFrame struct {
	Type string             `json:"type"`
	Data models.SessionView `json:"data"`
}

func TestSessionWebSocket_StreamsUpdates(t *testing.T) {
	t.Parallel()
	s := newTestServer(t, nil)
	srv := httptest.NewServer(s.router)
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/v1/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	var view models.SessionView
	var env envelope
	if err := decodeBody(resp, &env, &view); err != nil {
		t.Fatalf("decode session: %v", err)
	}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/sessions/" + view.ID + "/ws"
	conn, wsResp, err := websocket.DefaultDialer.Dial(url, nil)
	if wsResp != nil && wsResp.Body != nil {
		defer wsResp.Body.Close()
	}
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var frame wsFrame
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read initial frame: %v", err)
	}
	if frame.Type != ws.MessageTypeSessionUpdate || frame.Data.ID != view.ID {
		t.Fatalf("initial frame = %+v, want session_update for %s", frame, view.ID)
	}

	toggle, err := http.Post(srv.URL+"/api/v1/sessions/"+view.ID+"/toggle", "application/json",
		strings.NewReader(`{"node_id":"ajo"}`))
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	_ = toggle.Body.Close()

	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read update frame: %v", err)
	}
	if len(frame.Data.Selection) != 1 || frame.Data.Selection[0].ID != "ajo" || frame.Data.Version != 1 {
		t.Errorf("update = %+v, want selection [ajo] at version 1", frame.Data)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/sessions/"+view.ID, nil)
	del, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	_ = del.Body.Close()

	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read close frame: %v", err)
	}
	if frame.Type != ws.MessageTypeSessionClosed {
		t.Errorf("Type = %q, want %q", frame.Type, ws.MessageTypeSessionClosed)
	}
}

func TestSessionWebSocket_Rejections(t *testing.T) {
	t.Parallel()
	cfg := &config.Config{Security: config.SecurityConfig{CORSOrigins: []string{"https://maridaje.example"}}}
	s := newTestServer(t, cfg)

	rec := s.do(t, http.MethodGet, "/api/v1/sessions/0b6c1f52-4c1e-4a8e-9d53-0d6a7f5b2c11/ws", "")
	expectError(t, rec, http.StatusNotFound, ErrCodeSessionNotFound)

	origins := []struct {
		origin string
		want   bool
	}{
		{origin: "", want: true},
		{origin: "https://maridaje.example", want: true},
		{origin: "https://evil.example", want: false},
	}
	for _, tt := range origins {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.origin != "" {
			req.Header.Set("Origin", tt.origin)
		}
		if got := s.handler.checkWebSocketOrigin(req); got != tt.want {
			t.Errorf("checkWebSocketOrigin(%q) = %v, want %v", tt.origin, got, tt.want)
		}
	}
}

func TestSessionWebSocket_NoHub(t *testing.T) {
	t.Parallel()
	h := NewHandler(Deps{}, nil)
	rec := httptest.NewRecorder()
	h.SessionWebSocket(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	expectError(t, rec, http.StatusServiceUnavailable, ErrCodeServiceUnavailable)
}
