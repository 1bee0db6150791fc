// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

/*
Package main is the entry point for the Maridaje explorer server.

Maridaje serves an ingredient co-occurrence graph built from Argentine
recipes, recommends ingredients that pair well with a selection, samples
recipes using the selection and looks up nutrition and sweet/savory labels.
Browser sessions keep their selection on the server and receive updates
over a WebSocket.

# Application Architecture

	RootSupervisor ("maridaje")
	├── DataSupervisor ("data-layer")
	│   ├── Layout warmup (one-shot)
	│   └── Session janitor
	├── MessagingSupervisor ("messaging-layer")
	│   └── WebSocket Hub
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog
 3. Catalog: the JSON tables under data/, loaded concurrently
 4. Engine, lookups, graph view and explorer sessions
 5. Supervisor tree with the services above

The data files are produced by cmd/pipeline.

# Configuration

Common environment variables:

	HTTP_PORT=8080
	DATA_PAIRS_PATH=data/ingredient-pairs.json
	DATA_RECIPES_PATH=data/formatted-recipes.json
	SESSION_TTL=30m
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree: the HTTP server drains for up
to 10 seconds and WebSocket clients are closed.
*/
package main
