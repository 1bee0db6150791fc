// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package logging provides centralized zerolog-based structured logging for Maridaje.
//
// JSON output is used in production and a human-readable console format in
// development. Both the explorer server and the data pipeline log through
// this package.
//
// # Quick Start
//
//	import "github.com/tomtom215/maridaje/internal/logging"
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("recipes", n).Msg("Catalog loaded")
//	logging.Error().Err(err).Str("path", p).Msg("Failed to read table")
//
//	// Request-scoped logging with correlation and request IDs
//	logging.Ctx(ctx).Info().Str("session_id", id).Msg("Selection changed")
//
// # Components
//
// Long-lived components take a zerolog.Logger and derive a child with a
// "component" field:
//
//	logger := logging.WithComponent("recommend")
//
// # Supervisor Integration
//
// Suture v4 logs through log/slog. NewSlogLogger returns a *slog.Logger backed
// by the global zerolog logger so supervisor events share the same output.
//
// # Always terminate log chains
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
