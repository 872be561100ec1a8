// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package config holds the settings of the ksuid command.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/complex-gh/ksuid_go/entropy"
)

// Formats lists the output formats the command understands
var Formats = []string{"string", "inspect", "time", "timestamp", "payload", "raw"}

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Source string    `json:"source"`
	Format string    `json:"format"`
	Count  int       `json:"count"`
	Log    LogConfig `json:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level    string `json:"level"`    // debug|info|warn|error
	Encoding string `json:"encoding"` // json|console
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Source: entropy.Default,
		Format: "string",
		Count:  1,
		Log: LogConfig{
			Level:    "info",
			Encoding: "console",
		},
	}
}

// Load reads a JSON file over the defaults. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the source and format are known and the count is positive.
func (c Config) Validate() error {
	if _, err := entropy.Lookup(c.Source); err != nil {
		return err
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}
	return nil
}
