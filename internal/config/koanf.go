// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/maridaje/config.yaml",
	"/etc/maridaje/config.yml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultUserAgent is sent by the pipeline scraper.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func defaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			PairsPath:          "data/pairs.json",
			MatrixPath:         "",
			RecipesPath:        "data/recipes.json",
			NutritionIndexPath: "data/ingredient_to_usda.json",
			NutritionPath:      "data/foundation_foods.json",
			ClassificationPath: "data/classification.json",
		},
		Server: ServerConfig{
			Port:        8080,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",

			SlowRequestThreshold: time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Explorer: ExplorerConfig{
			RecommendLimit:  3,
			RecipeQuantity:  3,
			Seed:            0,
			SessionTTL:      30 * time.Minute,
			MaxSessions:     10000,
			CleanupInterval: time.Minute,
		},
		Layout: LayoutConfig{
			Width:          928,
			Height:         600,
			Charge:         -600,
			LinkDistance:   20,
			LinkValueScale: 0.5,
			AlphaThreshold: 0.1,
			MaxTicks:       300,
		},
		Pipeline: PipelineConfig{
			OutputDir:      "data",
			PageStorePath:  "data/pages",
			UserAgent:      defaultUserAgent,
			RequestsPerSec: 2,
			FetchTimeout:   20 * time.Second,
			Workers:        4,
			Sources:        []string{"cookpad", "recetasgratis", "saborargento"},
			Replacements: []string{
				"cantidad necesaria->",
				"c/n->",
				"a gusto->",
				"al gusto->",
			},
		},
	}
}

// LoadWithKoanf loads configuration in three layers:
//
//  1. Struct defaults
//  2. Optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment variables (highest priority)
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated environment values.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"pipeline.sources",
	"pipeline.replacements",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Data tables
	"data_pairs_path":           "data.pairs_path",
	"data_matrix_path":          "data.matrix_path",
	"data_recipes_path":         "data.recipes_path",
	"data_nutrition_index_path": "data.nutrition_index_path",
	"data_nutrition_path":       "data.nutrition_path",
	"data_classification_path":  "data.classification_path",

	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	"slow_request_threshold": "server.slow_request_threshold",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Explorer
	"recommend_limit":          "explorer.recommend_limit",
	"recipe_qty":               "explorer.recipe_qty",
	"explorer_seed":            "explorer.seed",
	"session_ttl":              "explorer.session_ttl",
	"max_sessions":             "explorer.max_sessions",
	"session_cleanup_interval": "explorer.cleanup_interval",

	// Layout
	"layout_width":           "layout.width",
	"layout_height":          "layout.height",
	"layout_charge":          "layout.charge",
	"layout_alpha_threshold": "layout.alpha_threshold",
	"layout_max_ticks":       "layout.max_ticks",

	// Pipeline
	"pipeline_output_dir":       "pipeline.output_dir",
	"pipeline_page_store_path":  "pipeline.page_store_path",
	"pipeline_user_agent":       "pipeline.user_agent",
	"pipeline_requests_per_sec": "pipeline.requests_per_sec",
	"pipeline_fetch_timeout":    "pipeline.fetch_timeout",
	"pipeline_workers":          "pipeline.workers",
	"pipeline_sources":          "pipeline.sources",
	"pipeline_replacements":     "pipeline.replacements",
}

// envTransformFunc maps an environment variable name to its koanf path.
// Unmapped variables return "" and are skipped so unrelated environment
// does not leak into configuration.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
