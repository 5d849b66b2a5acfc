package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/natefinch/atomic"
)

// Config - Settings of a benchmark session
type Config struct {
	MaxK       int    `json:"max_k"`
	Runs       int    `json:"runs"`
	OutputPath string `json:"output_path"`
	LogLevel   string `json:"log_level"`
}

// DefaultConfig - Creates a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		MaxK:       5,
		Runs:       3,
		OutputPath: "execution_times.csv",
		LogLevel:   "info",
	}
}

// LoadConfig - Reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Defaults are still usable without the file.
				slog.Warn("Failed to write default config file", "path", path, "error", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - Checks that the configuration describes a runnable session
func (c *Config) Validate() error {
	if c.MaxK < 1 {
		return fmt.Errorf("max_k must be at least 1, got %d", c.MaxK)
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", c.Runs)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output_path can not be empty")
	}
	return nil
}
