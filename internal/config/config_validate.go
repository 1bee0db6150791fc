// Maridaje - Ingredient Pairing Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maridaje

package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for required values and sane ranges.
func (c *Config) Validate() error {
	if err := c.validateData(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateExplorer(); err != nil {
		return err
	}
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validatePipeline(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateData() error {
	required := []struct{ name, value string }{
		{"DATA_PAIRS_PATH", c.Data.PairsPath},
		{"DATA_RECIPES_PATH", c.Data.RecipesPath},
		{"DATA_NUTRITION_INDEX_PATH", c.Data.NutritionIndexPath},
		{"DATA_NUTRITION_PATH", c.Data.NutritionPath},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%s is required", r.name)
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.SlowRequestThreshold < 0 {
		return fmt.Errorf("SLOW_REQUEST_THRESHOLD must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateExplorer() error {
	if c.Explorer.RecommendLimit < 1 {
		return fmt.Errorf("RECOMMEND_LIMIT must be at least 1")
	}
	if c.Explorer.RecipeQuantity < 1 {
		return fmt.Errorf("RECIPE_QTY must be at least 1")
	}
	if c.Explorer.MaxSessions < 1 {
		return fmt.Errorf("MAX_SESSIONS must be at least 1")
	}
	if c.Explorer.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Explorer.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateLayout() error {
	if c.Layout.Width <= 0 || c.Layout.Height <= 0 {
		return fmt.Errorf("layout width and height must be positive")
	}
	if c.Layout.AlphaThreshold <= 0 || c.Layout.AlphaThreshold >= 1 {
		return fmt.Errorf("LAYOUT_ALPHA_THRESHOLD must be in (0, 1)")
	}
	if c.Layout.MaxTicks < 1 {
		return fmt.Errorf("LAYOUT_MAX_TICKS must be at least 1")
	}
	return nil
}

func (c *Config) validatePipeline() error {
	if c.Pipeline.RequestsPerSec <= 0 {
		return fmt.Errorf("PIPELINE_REQUESTS_PER_SEC must be positive")
	}
	if c.Pipeline.Workers < 1 {
		return fmt.Errorf("PIPELINE_WORKERS must be at least 1")
	}
	for _, rule := range c.Pipeline.Replacements {
		if !strings.Contains(rule, "->") {
			return fmt.Errorf("pipeline replacement %q must have the form from->to", rule)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, panic, disabled")
	}
	switch c.Logging.Format {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console")
	}
}
