// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package config

import "time"

// Config holds all application configuration.
//
// Values are layered: struct defaults, then an optional YAML file, then
// environment variables. See LoadWithKoanf.
type Config struct {
	Data     DataConfig     `koanf:"data"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Explorer ExplorerConfig `koanf:"explorer"`
	Layout   LayoutConfig   `koanf:"layout"`
	Pipeline PipelineConfig `koanf:"pipeline"`
}

// DataConfig points at the static tables the explorer serves.
type DataConfig struct {
	// PairsPath is the flat pairing list used to build the graph.
	PairsPath string `koanf:"pairs_path"`

	// MatrixPath is the nested pairing matrix used for recommendations.
	// When empty the matrix is derived from PairsPath.
	MatrixPath string `koanf:"matrix_path"`

	RecipesPath        string `koanf:"recipes_path"`
	NutritionIndexPath string `koanf:"nutrition_index_path"`
	NutritionPath      string `koanf:"nutrition_path"`

	// ClassificationPath is optional; without it nodes carry no color.
	ClassificationPath string `koanf:"classification_path"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`

	// SlowRequestThreshold is the latency above which a request is logged
	// as slow. Zero disables slow request logging.
	SlowRequestThreshold time.Duration `koanf:"slow_request_threshold"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ExplorerConfig tunes the interactive explorer.
type ExplorerConfig struct {
	// RecommendLimit is the number of suggested ingredients returned.
	RecommendLimit int `koanf:"recommend_limit"`

	// RecipeQuantity is the default number of sampled recipes.
	RecipeQuantity int `koanf:"recipe_qty"`

	// Seed fixes the recipe sampling source. Zero seeds from the clock.
	Seed int64 `koanf:"seed"`

	SessionTTL      time.Duration `koanf:"session_ttl"`
	MaxSessions     int           `koanf:"max_sessions"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// LayoutConfig holds the force simulation parameters.
type LayoutConfig struct {
	Width          float64 `koanf:"width"`
	Height         float64 `koanf:"height"`
	Charge         float64 `koanf:"charge"`
	LinkDistance   float64 `koanf:"link_distance"`
	LinkValueScale float64 `koanf:"link_value_scale"`
	AlphaThreshold float64 `koanf:"alpha_threshold"`
	MaxTicks       int     `koanf:"max_ticks"`
}

// PipelineConfig configures the data-building pipeline.
type PipelineConfig struct {
	OutputDir      string        `koanf:"output_dir"`
	PageStorePath  string        `koanf:"page_store_path"`
	UserAgent      string        `koanf:"user_agent"`
	RequestsPerSec float64       `koanf:"requests_per_sec"`
	FetchTimeout   time.Duration `koanf:"fetch_timeout"`
	Workers        int           `koanf:"workers"`
	Sources        []string      `koanf:"sources"`

	// Replacements are "from->to" rewrite rules applied to ingredient text.
	Replacements []string `koanf:"replacements"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
