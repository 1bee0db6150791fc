// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package services adapts explorer server components to suture.Service.

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancel
  - WebSocketHubService: runs the session update hub
  - SessionJanitorService: periodic eviction of idle sessions
  - LayoutWarmupService: one-shot graph layout build at startup

Every wrapper implements fmt.Stringer so supervisor events name the service.
The wrappers depend on small interfaces (HTTPServer, ContextHub, Sweeper,
LayoutBuilder) rather than the concrete packages.
*/
package services
