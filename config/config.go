package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	BackendNotnil = "notnil"
	BackendDragon = "dragon"
)

// Config holds the knobs shared by the CLI and the HTTP server.
type Config struct {
	Depth          int    `json:"depth"`
	Backend        string `json:"backend"`
	Addr           string `json:"addr"`
	MaxPlies       int    `json:"max_plies"`
	MaxDepth       int    `json:"max_depth"`
	Seed           int64  `json:"seed"` // random bot seed; 0 picks one from the clock
	LogSearchStats bool   `json:"log_search_stats"`
}

func Default() Config {
	return Config{
		Depth:    3,
		Backend:  BackendNotnil,
		Addr:     ":8080",
		MaxPlies: 200,
		MaxDepth: 5,
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.Depth < 1 {
		errs = append(errs, fmt.Errorf("depth must be at least 1, got %d", c.Depth))
	}
	if c.MaxDepth < c.Depth {
		errs = append(errs, fmt.Errorf("max_depth %d is below depth %d", c.MaxDepth, c.Depth))
	}
	if !ValidBackend(c.Backend) {
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	if c.MaxPlies < 1 {
		errs = append(errs, fmt.Errorf("max_plies must be at least 1, got %d", c.MaxPlies))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func ValidBackend(name string) bool {
	return name == BackendNotnil || name == BackendDragon
}
