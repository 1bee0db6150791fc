// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaultConfig().Validate() error = %v", err)
	}
	if cfg.Explorer.RecommendLimit != 3 {
		t.Errorf("Explorer.RecommendLimit = %d, want 3", cfg.Explorer.RecommendLimit)
	}
	if cfg.Explorer.RecipeQuantity != 3 {
		t.Errorf("Explorer.RecipeQuantity = %d, want 3", cfg.Explorer.RecipeQuantity)
	}
	if cfg.Layout.Charge != -600 {
		t.Errorf("Layout.Charge = %v, want -600", cfg.Layout.Charge)
	}
	if cfg.Layout.AlphaThreshold != 0.1 {
		t.Errorf("Layout.AlphaThreshold = %v, want 0.1", cfg.Layout.AlphaThreshold)
	}
	if cfg.Server.SlowRequestThreshold != time.Second {
		t.Errorf("Server.SlowRequestThreshold = %v, want 1s", cfg.Server.SlowRequestThreshold)
	}

	cfg.Server.SlowRequestThreshold = -time.Second
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "SLOW_REQUEST_THRESHOLD") {
		t.Errorf("Validate() with negative slow threshold = %v, want SLOW_REQUEST_THRESHOLD error", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"DATA_PAIRS_PATH", "data.pairs_path"},
		{"EXPLORER_SEED", "explorer.seed"},
		{"PIPELINE_SOURCES", "pipeline.sources"},
		{"SLOW_REQUEST_THRESHOLD", "server.slow_request_threshold"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

// Tests below touch the process environment and cannot run in parallel.

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("EXPLORER_SEED", "7")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("SLOW_REQUEST_THRESHOLD", "250ms")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Explorer.Seed != 7 {
		t.Errorf("Explorer.Seed = %d, want 7", cfg.Explorer.Seed)
	}
	if cfg.Explorer.SessionTTL != 5*time.Minute {
		t.Errorf("Explorer.SessionTTL = %v, want 5m", cfg.Explorer.SessionTTL)
	}
	if cfg.Server.SlowRequestThreshold != 250*time.Millisecond {
		t.Errorf("Server.SlowRequestThreshold = %v, want 250ms", cfg.Server.SlowRequestThreshold)
	}
	if got := strings.Join(cfg.Security.CORSOrigins, "|"); got != "http://a.local|http://b.local" {
		t.Errorf("Security.CORSOrigins = %q", got)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	configContent := `
data:
  pairs_path: "/srv/pairs.json"
  matrix_path: "/srv/matrix.json"
server:
  port: 8888
explorer:
  recommend_limit: 5
logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Data.PairsPath != "/srv/pairs.json" {
		t.Errorf("Data.PairsPath = %q, want /srv/pairs.json", cfg.Data.PairsPath)
	}
	if cfg.Data.MatrixPath != "/srv/matrix.json" {
		t.Errorf("Data.MatrixPath = %q, want /srv/matrix.json", cfg.Data.MatrixPath)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Explorer.RecommendLimit != 5 {
		t.Errorf("Explorer.RecommendLimit = %d, want 5", cfg.Explorer.RecommendLimit)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env overrides file)", cfg.Logging.Level)
	}
	if cfg.Data.RecipesPath != "data/recipes.json" {
		t.Errorf("Data.RecipesPath = %q, want default", cfg.Data.RecipesPath)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"bad port", map[string]string{"HTTP_PORT": "70000"}, "HTTP_PORT"},
		{"bad level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
		{"zero recommend limit", map[string]string{"RECOMMEND_LIMIT": "0"}, "RECOMMEND_LIMIT"},
		{"missing pairs", map[string]string{"DATA_PAIRS_PATH": " "}, "DATA_PAIRS_PATH"},
		{"bad replacement", map[string]string{"PIPELINE_REPLACEMENTS": "no arrow"}, "replacement"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
