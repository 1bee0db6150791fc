// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package websocket

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/models"
)

//nolint:gochecknoinits // init ensures consistent logging for tests
func init() {
	logging.Init(logging.Config{
		Level:  "info",
		Format: "console",
		Output: io.Discard,
	})
}

// startHub runs a hub until the test ends.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = hub.RunWithContext(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return hub
}

// createTestClient creates a client without a connection.
func createTestClient(hub *Hub, topic string) *Client {
	return &Client{id: clientIDCounter.Add(1), topic: topic, hub: hub, send: make(chan Message, 8)}
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	for i := 0; i < 50; i++ {
		if hub.GetClientCount() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("GetClientCount() = %d, want %d", hub.GetClientCount(), want)
}

func receive(t *testing.T, c *Client) (Message, bool) {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		return msg, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}, false
	}
}

func expectNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Errorf("unexpected message %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_PublishSessionUpdateRoutesByTopic(t *testing.T) {
	hub := startHub(t)

	a := createTestClient(hub, "session-a")
	a2 := createTestClient(hub, "session-a")
	b := createTestClient(hub, "session-b")
	for _, c := range []*Client{a, a2, b} {
		hub.Register <- c
	}
	waitForCount(t, hub, 3)

	hub.PublishSessionUpdate(models.SessionView{ID: "session-a", Version: 4})

	for _, c := range []*Client{a, a2} {
		msg, ok := receive(t, c)
		if !ok {
			t.Fatal("send channel closed unexpectedly")
		}
		if msg.Type != MessageTypeSessionUpdate {
			t.Errorf("Type = %q, want %q", msg.Type, MessageTypeSessionUpdate)
		}
		view, isView := msg.Data.(models.SessionView)
		if !isView || view.Version != 4 {
			t.Errorf("Data = %#v, want session view version 4", msg.Data)
		}
	}
	expectNothing(t, b)
}

func TestHub_SessionClosedDisconnectsTopic(t *testing.T) {
	hub := startHub(t)

	a := createTestClient(hub, "gone")
	b := createTestClient(hub, "stays")
	hub.Register <- a
	hub.Register <- b
	waitForCount(t, hub, 2)

	hub.SessionClosed("gone")

	msg, ok := receive(t, a)
	if !ok || msg.Type != MessageTypeSessionClosed {
		t.Fatalf("first message = %+v (open=%v), want session_closed", msg, ok)
	}
	if _, ok := receive(t, a); ok {
		t.Error("send channel should be closed after session_closed")
	}
	waitForCount(t, hub, 1)
	expectNothing(t, b)

	// A late unregister for the closed client must be harmless.
	hub.Unregister <- a
	waitForCount(t, hub, 1)
}

func TestHub_SlowClientIsDropped(t *testing.T) {
	hub := startHub(t)

	slow := &Client{id: clientIDCounter.Add(1), topic: "s", hub: hub, send: make(chan Message, 1)}
	hub.Register <- slow
	waitForCount(t, hub, 1)

	hub.Publish("s", "one", nil)
	hub.Publish("s", "two", nil)
	waitForCount(t, hub, 0)

	if msg, ok := <-slow.send; !ok || msg.Type != "one" {
		t.Errorf("buffered message = %+v (open=%v), want one", msg, ok)
	}
	if _, ok := <-slow.send; ok {
		t.Error("slow client channel should be closed")
	}
}

func TestHub_RunWithContext(t *testing.T) {
	tests := []struct {
		name    string
		ctx     func() (context.Context, context.CancelFunc)
		cancel  bool
		wantErr error
	}{
		{
			name:    "cancellation",
			ctx:     func() (context.Context, context.CancelFunc) { return context.WithCancel(context.Background()) },
			cancel:  true,
			wantErr: context.Canceled,
		},
		{
			name: "deadline",
			ctx: func() (context.Context, context.CancelFunc) {
				return context.WithTimeout(context.Background(), 50*time.Millisecond)
			},
			wantErr: context.DeadlineExceeded,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := NewHub()
			ctx, cancel := tt.ctx()
			defer cancel()

			errCh := make(chan error, 1)
			go func() { errCh <- hub.RunWithContext(ctx) }()

			c := createTestClient(hub, "t")
			hub.Register <- c
			waitForCount(t, hub, 1)

			if tt.cancel {
				cancel()
			}
			select {
			case err := <-errCh:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("RunWithContext() = %v, want %v", err, tt.wantErr)
				}
			case <-time.After(time.Second):
				t.Fatal("RunWithContext did not return")
			}
			if hub.GetClientCount() != 0 {
				t.Errorf("GetClientCount() = %d after shutdown, want 0", hub.GetClientCount())
			}
			if _, ok := <-c.send; ok {
				t.Error("client channel should be closed on shutdown")
			}
		})
	}
}

func TestGetShutdownReason(t *testing.T) {
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()

	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("getShutdownReason(canceled) = %q", got)
	}
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("getShutdownReason(expired) = %q", got)
	}
}

func TestMarshalMessage(t *testing.T) {
	data, err := MarshalMessage(Message{Type: MessageTypeSessionUpdate, Data: map[string]int{"version": 2}})
	if err != nil {
		t.Fatalf("MarshalMessage() error = %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `"type":"session_update"`) || !strings.Contains(got, `"version":2`) {
		t.Errorf("MarshalMessage() = %s", got)
	}
}
