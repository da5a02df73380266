package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the canary. It is loaded once at
// startup and never reloaded.
type Config struct {
	Target          string `yaml:"target"`
	IntervalSeconds int    `yaml:"interval_seconds"`
	TimeoutSeconds  int    `yaml:"timeout_seconds"`
	WebhookFile     string `yaml:"webhook_file"`
}

// DefaultConfig returns the built-in configuration used when no file is
// provided.
func DefaultConfig() Config {
	return Config{
		Target:          "1.1.1.1",
		IntervalSeconds: 5,
		TimeoutSeconds:  3,
		WebhookFile:     "webhook-secret",
	}
}

// Load reads configuration from a yaml file. An empty path or a missing
// file falls back to defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Interval is the fixed sleep between probes.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

// Timeout is the per-probe reply deadline.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("target must be specified")
	}
	if c.IntervalSeconds <= 0 {
		return fmt.Errorf("interval must be positive")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.WebhookFile == "" {
		return fmt.Errorf("webhook file path cannot be empty")
	}
	return nil
}
