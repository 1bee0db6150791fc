// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package supervisor runs the explorer server's long-lived services under a
suture v4 supervision tree.

# Overview

	RootSupervisor ("maridaje")
	├── DataSupervisor ("data-layer")
	│   ├── LayoutWarmupService
	│   └── SessionJanitorService
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocketHubService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures on its own, so a hub that keeps crashing backs off
without taking the HTTP server down with it.

# Usage

	tree, err := supervisor.NewSupervisorTree(slog.Default(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewLayoutWarmupService(view, logger))
	tree.AddDataService(services.NewSessionJanitorService(explorer, time.Minute, logger))
	tree.AddMessagingService(services.NewWebSocketHubService(hub))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	errCh := tree.ServeBackground(ctx)

# Configuration

Zero fields in TreeConfig fall back to suture's defaults: 5 failures, 30s
decay, 15s backoff and a 10s per-service shutdown timeout.

# Service Contract

Services implement suture.Service. Returning an error restarts the service,
returning suture.ErrDoNotRestart retires it, and a canceled context must make
Serve return promptly. Supervisor events are logged through sutureslog.

UnstoppedServiceReport lists services that ignored cancellation during
shutdown.
*/
package supervisor
