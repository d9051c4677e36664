// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all phonebook configuration.
type Config struct {
	Shell Shell `yaml:"shell"`
	Log   Log   `yaml:"log"`
}

// Shell holds interactive session settings.
type Shell struct {
	Prompt   string `yaml:"prompt"`
	Greeting string `yaml:"greeting"`
	Farewell string `yaml:"farewell"`
	Plain    bool   `yaml:"plain"`   // Force line mode even on a TTY
	History  int    `yaml:"history"` // Transcript lines kept by the TUI
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	File   string `yaml:"file"`   // Empty disables logging
	Format string `yaml:"format"` // "json" | "console"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Shell: Shell{
			Prompt:   "Enter a command: ",
			Greeting: "Welcome to the assistant bot!",
			Farewell: "Good bye!",
			History:  200,
		},
		Log: Log{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	layer, err := loadLayer(path)
	if err != nil {
		return nil, err
	}
	if layer != nil {
		cfg.merge(layer)
	}
	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Shell.History <= 0 {
		return fmt.Errorf("config: shell.history must be positive, got %d", c.Shell.History)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
		// valid
	default:
		return fmt.Errorf("config: log.format must be \"json\" or \"console\", got %q", c.Log.Format)
	}
	if c.Shell.Farewell == "" {
		return errors.New("config: shell.farewell cannot be empty")
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: PHONEBOOK_LOG_LEVEL, PHONEBOOK_LOG_FILE, PHONEBOOK_PLAIN.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("PHONEBOOK_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("PHONEBOOK_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("PHONEBOOK_PLAIN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: invalid PHONEBOOK_PLAIN %q: %w", v, err)
		}
		c.Shell.Plain = b
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Shell *rawShell `yaml:"shell"`
	Log   *rawLog   `yaml:"log"`
}

type rawShell struct {
	Prompt   *string `yaml:"prompt"`
	Greeting *string `yaml:"greeting"`
	Farewell *string `yaml:"farewell"`
	Plain    *bool   `yaml:"plain"`
	History  *int    `yaml:"history"`
}

type rawLog struct {
	Level  *string `yaml:"level"`
	File   *string `yaml:"file"`
	Format *string `yaml:"format"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if s := layer.Shell; s != nil {
		if s.Prompt != nil {
			c.Shell.Prompt = *s.Prompt
		}
		if s.Greeting != nil {
			c.Shell.Greeting = *s.Greeting
		}
		if s.Farewell != nil {
			c.Shell.Farewell = *s.Farewell
		}
		if s.Plain != nil {
			c.Shell.Plain = *s.Plain
		}
		if s.History != nil {
			c.Shell.History = *s.History
		}
	}
	if l := layer.Log; l != nil {
		if l.Level != nil {
			c.Log.Level = *l.Level
		}
		if l.File != nil {
			c.Log.File = *l.File
		}
		if l.Format != nil {
			c.Log.Format = *l.Format
		}
	}
}
