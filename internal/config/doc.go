// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

// Package config loads Maridaje configuration with Koanf v2.
//
// Sources are layered, later ones overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. YAML file from CONFIG_PATH, ./config.yaml or /etc/maridaje/config.yaml
//  3. Environment variables, mapped explicitly through envMappings
//
// Example config.yaml:
//
//	data:
//	  pairs_path: data/pairs_tfidf.json
//	  matrix_path: data/matrix.json
//	server:
//	  port: 8080
//	explorer:
//	  recommend_limit: 3
//	  seed: 42
//
// Comma-separated environment values (CORS_ORIGINS, PIPELINE_SOURCES) are
// split into slices after loading.
package config
