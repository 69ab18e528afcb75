// Copyright (c) 2026 Longbox. All rights reserved.
// Author: engineering@longbox.dev

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, Search) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Longbox API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Search engine tuning
	//
	// FuzzyThreshold is the minimum similarity accepted by the edit-distance
	// tier of the match cascade; MinMatchResults is the result count a tier
	// must reach before escalation stops.
	FuzzyThreshold  float64 `env:"FUZZY_THRESHOLD"   envDefault:"0.8"`
	MinMatchResults int     `env:"MIN_MATCH_RESULTS" envDefault:"1"`

	// IncludeTeamAppearances controls whether character search counts comics
	// where the character appears only via a team roster. The per-request
	// include_teams parameter overrides this default.
	IncludeTeamAppearances bool `env:"INCLUDE_TEAM_APPEARANCES" envDefault:"true"`

	// SearchCacheTTL bounds staleness of cached search responses.
	SearchCacheTTL time.Duration `env:"SEARCH_CACHE_TTL" envDefault:"5m"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.FuzzyThreshold < 0 || cfg.FuzzyThreshold > 1 {
		return nil, fmt.Errorf("config: FUZZY_THRESHOLD must be within [0,1], got %v", cfg.FuzzyThreshold)
	}

	if cfg.MinMatchResults < 1 {
		return nil, fmt.Errorf("config: MIN_MATCH_RESULTS must be at least 1, got %d", cfg.MinMatchResults)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
