// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package websocket

import (
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tomtom215/maridaje/internal/logging"
	"github.com/tomtom215/maridaje/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
)

// clientIDCounter hands out monotonically increasing ids so delivery order
// is stable.
var clientIDCounter atomic.Uint64

// Client is one browser connection following a single session.
type Client struct {
	id    uint64
	topic string
	hub   *Hub
	conn  *websocket.Conn
	send  chan Message
}

// NewClient creates a client subscribed to topic.
func NewClient(hub *Hub, conn *websocket.Conn, topic string) *Client {
	return &Client{
		id:    clientIDCounter.Add(1),
		topic: topic,
		hub:   hub,
		conn:  conn,
		send:  make(chan Message, 64),
	}
}

// ID returns the client id.
func (c *Client) ID() uint64 {
	return c.id
}

// Topic returns the session id the client follows.
func (c *Client) Topic() string {
	return c.topic
}

// logger tags entries with the client and its session.
func (c *Client) logger() *zerolog.Logger {
	l := logging.With().
		Str("component", "websocket").
		Uint64("client_id", c.id).
		Str("session_id", logging.SanitizeSessionID(c.topic)).
		Logger()
	return &l
}

// readPump keeps the read deadline alive and answers application pings.
// Anything other than a ping is ignored.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister <- c
		_ = c.conn.Close() // best-effort cleanup
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger().Error().Err(err).Msg("Failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				metrics.WSErrors.WithLabelValues("unexpected_close").Inc()
				c.logger().Warn().Err(err).Msg("Unexpected websocket close")
			}
			return
		}
		if msg.Type != MessageTypePing {
			continue
		}
		select {
		case c.send <- Message{Type: MessageTypePong}:
		default:
		}
	}
}

// write runs fn under a fresh write deadline.
func (c *Client) write(fn func() error) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return fn()
}

// writePump drains the send queue and pings on an interval. A closed queue
// means the hub dropped the client, usually because its session ended.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close() // best-effort cleanup
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed")
				_ = c.write(func() error { return c.conn.WriteMessage(websocket.CloseMessage, closeMsg) })
				return
			}
			data, err := MarshalMessage(message)
			if err != nil {
				metrics.WSErrors.WithLabelValues("marshal").Inc()
				c.logger().Error().Err(err).Str("type", message.Type).Msg("Failed to encode message")
				continue
			}
			if err := c.write(func() error { return c.conn.WriteMessage(websocket.TextMessage, data) }); err != nil {
				metrics.WSErrors.WithLabelValues("write").Inc()
				c.logger().Debug().Err(err).Str("type", message.Type).Msg("Failed to write message")
				return
			}

		case <-ticker.C:
			if err := c.write(func() error { return c.conn.WriteMessage(websocket.PingMessage, nil) }); err != nil {
				return
			}
		}
	}
}

// Start launches the read and write pumps.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
