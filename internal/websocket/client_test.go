// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/maridaje/internal/models"
)

// serveHub upgrades every request into a client of topic "s1".
func serveHub(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		client := NewClient(hub, conn, "s1")
		hub.Register <- client
		client.Start()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestNewClient(t *testing.T) {
	hub := NewHub()
	a := NewClient(hub, nil, "topic")
	b := NewClient(hub, nil, "topic")

	if a.Topic() != "topic" {
		t.Errorf("Topic() = %q, want topic", a.Topic())
	}
	if b.ID() <= a.ID() {
		t.Errorf("ids not increasing: %d then %d", a.ID(), b.ID())
	}
	if cap(a.send) != 64 {
		t.Errorf("send capacity = %d, want 64", cap(a.send))
	}
}

func TestClient_EndToEnd(t *testing.T) {
	hub := startHub(t)
	srv := serveHub(t, hub)
	conn := dial(t, srv)
	waitForCount(t, hub, 1)

	hub.PublishSessionUpdate(models.SessionView{ID: "s1", Version: 7})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type string             `json:"type"`
		Data models.SessionView `json:"data"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if msg.Type != MessageTypeSessionUpdate || msg.Data.Version != 7 {
		t.Errorf("message = %+v, want session_update version 7", msg)
	}

	if err := conn.WriteJSON(Message{Type: MessageTypePing}); err != nil {
		t.Fatalf("WriteJSON(ping) error = %v", err)
	}
	var pong Message
	if err := conn.ReadJSON(&pong); err != nil {
		t.Fatalf("ReadJSON(pong) error = %v", err)
	}
	if pong.Type != MessageTypePong {
		t.Errorf("Type = %q, want pong", pong.Type)
	}
}

func TestClient_DisconnectUnregisters(t *testing.T) {
	hub := startHub(t)
	srv := serveHub(t, hub)
	conn := dial(t, srv)
	waitForCount(t, hub, 1)

	_ = conn.Close()
	waitForCount(t, hub, 0)
}
