// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package websocket streams explorer session updates to browsers.

Key Components:

  - Hub: routes messages to clients by topic (the session id)
  - Client: one WebSocket connection with read and write goroutines
  - Message: typed JSON frame {type, data}

Each client has two goroutines:
  - readPump: reads pings and keeps the read deadline alive
  - writePump: writes queued messages and periodic pings

Message Types:

  - session_update: the session's new view after a selection change
  - session_closed: the session was deleted or expired; the hub closes
    the connection right after
  - ping / pong: application-level keepalive

Usage:

	hub := websocket.NewHub()
	go hub.RunWithContext(ctx) // or supervise it

	client := websocket.NewClient(hub, conn, sessionID)
	hub.Register <- client
	client.Start()

	hub.PublishSessionUpdate(view)

Thread Safety:

All Hub methods are safe for concurrent use. Publishing never blocks: when
the hub queue is full the message is dropped and counted, and a client whose
send buffer is full is disconnected.
*/
package websocket
