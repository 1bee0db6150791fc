// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package websocket

import (
	"context"
	"sort"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/metrics"
	"github.com/tomtom215/maridaje/internal/models"
)

// ShutdownReason identifies why the hub is shutting down.
type ShutdownReason string

const (
	// ShutdownReasonContextCanceled indicates the parent context was canceled.
	ShutdownReasonContextCanceled ShutdownReason = "context_canceled"

	// ShutdownReasonContextDeadline indicates the context deadline was exceeded.
	ShutdownReasonContextDeadline ShutdownReason = "context_deadline"
)

// Message types for WebSocket communication
const (
	MessageTypeSessionUpdate = "session_update"
	MessageTypeSessionClosed = "session_closed"
	MessageTypePing          = "ping"
	MessageTypePong          = "pong"
)

// Message represents a WebSocket message
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// envelope routes a message to the clients of one topic. An empty topic
// reaches every client.
type envelope struct {
	topic   string
	message Message
	close   bool
}

// Hub maintains the set of active clients and routes messages to them by
// topic (the explorer session id).
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan envelope
	Register   chan *Client
	Unregister chan *Client
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		broadcast:  make(chan envelope, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
	}
}

// RunWithContext runs the hub until ctx is done, then closes every client
// and returns ctx.Err(). It is meant to run under a supervisor.
//
// Client lifecycle events are drained before messages so a freshly
// registered client never misses an update that was queued after it.
func (h *Hub) RunWithContext(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		default:
		}

		select {
		case client := <-h.Register:
			h.register(client)
			continue
		case client := <-h.Unregister:
			h.unregister(client)
			continue
		default:
		}

		select {
		case <-ctx.Done():
			h.logGracefulShutdown(ctx)
			return ctx.Err()
		case client := <-h.Register:
			h.register(client)
		case client := <-h.Unregister:
			h.unregister(client)
		case env := <-h.broadcast:
			h.deliver(env)
		}
	}
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	metrics.WSConnections.Inc()
	logging.Info().
		Str("session_id", logging.SanitizeSessionID(client.topic)).
		Int("total_clients", total).
		Msg("websocket client connected")
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	_, ok := h.clients[client]
	if ok {
		delete(h.clients, client)
		close(client.send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	if ok {
		metrics.WSConnections.Dec()
		logging.Info().Int("total_clients", total).Msg("websocket client disconnected")
	}
}

// logGracefulShutdown closes all clients and logs the shutdown. The context
// error is not logged as an error since cancellation is the normal path.
func (h *Hub) logGracefulShutdown(ctx context.Context) {
	clientCount := h.GetClientCount()
	h.closeAllClients()

	logging.Info().
		Str("component", "websocket-hub").
		Str("reason", string(getShutdownReason(ctx))).
		Int("clients_closed", clientCount).
		Msg("websocket hub stopped")
}

func getShutdownReason(ctx context.Context) ShutdownReason {
	switch ctx.Err() {
	case context.DeadlineExceeded:
		return ShutdownReasonContextDeadline
	default:
		return ShutdownReasonContextCanceled
	}
}

// sortedClients returns the clients of topic ordered by id. Must be called
// with mu held.
func (h *Hub) sortedClients(topic string) []*Client {
	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		if topic == "" || client.topic == topic {
			clients = append(clients, client)
		}
	}
	sort.Slice(clients, func(i, j int) bool {
		return clients[i].id < clients[j].id
	})
	return clients
}

// deliver sends env to its clients in id order. Clients whose buffer is full
// are dropped; a closing envelope disconnects its clients after delivery.
func (h *Hub) deliver(env envelope) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.sortedClients(env.topic) {
		select {
		case client.send <- env.message:
			metrics.WSMessagesSent.Inc()
			if !env.close {
				continue
			}
		default:
			metrics.WSErrors.WithLabelValues("slow_client").Inc()
		}
		close(client.send)
		delete(h.clients, client)
		metrics.WSConnections.Dec()
	}
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, client := range h.sortedClients("") {
		close(client.send)
		delete(h.clients, client)
		metrics.WSConnections.Dec()
	}
}

func (h *Hub) enqueue(env envelope) {
	select {
	case h.broadcast <- env:
	default:
		metrics.WSErrors.WithLabelValues("queue_full").Inc()
		logging.Warn().
			Str("message_type", env.message.Type).
			Msg("broadcast channel full, dropping message")
	}
}

// Publish queues a message for the clients subscribed to topic.
func (h *Hub) Publish(topic, messageType string, data interface{}) {
	h.enqueue(envelope{topic: topic, message: Message{Type: messageType, Data: data}})
}

// PublishSessionUpdate sends a session's new view to its subscribers.
func (h *Hub) PublishSessionUpdate(view models.SessionView) {
	h.Publish(view.ID, MessageTypeSessionUpdate, view)
}

// SessionClosed tells a session's subscribers it has ended and disconnects them.
func (h *Hub) SessionClosed(sessionID string) {
	h.enqueue(envelope{
		topic:   sessionID,
		message: Message{Type: MessageTypeSessionClosed, Data: map[string]string{"id": sessionID}},
		close:   true,
	})
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// MarshalMessage encodes a message as a JSON text frame.
func MarshalMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}
