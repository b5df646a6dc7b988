// Package config loads run configuration from YAML.
//
// A configuration file is optional. Keys that are absent keep their
// default; unknown keys are rejected so typos surface instead of being
// ignored:
//
//	max_fields: 6          # struct field cap, 0 for none
//	enum_probe_limit: 10   # highest raw value probed for enum names
//	path_style: base       # base | full
//	log_level: warn        # debug | info | warn | error
//	log_format: text       # text | json
//
// The decoded values are validated against an embedded CUE schema.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/expect/internal/check"
	"github.com/roach88/expect/internal/naming"
	"github.com/roach88/expect/internal/shape"
)

// Config holds the run settings.
type Config struct {
	MaxFields      int    `yaml:"max_fields" json:"max_fields"`
	EnumProbeLimit int    `yaml:"enum_probe_limit" json:"enum_probe_limit"`
	PathStyle      string `yaml:"path_style" json:"path_style"`
	LogLevel       string `yaml:"log_level" json:"log_level"`
	LogFormat      string `yaml:"log_format" json:"log_format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxFields:      shape.DefaultMaxFields,
		EnumProbeLimit: naming.DefaultProbeLimit,
		PathStyle:      string(check.PathBase),
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// Error is a configuration validation failure.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Load reads and validates the configuration file at path. An empty path
// yields Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Empty input yields Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// CheckOptions converts the configuration into assertion options.
func (c Config) CheckOptions() check.Options {
	return check.Options{
		MaxFields:      c.MaxFields,
		EnumProbeLimit: c.EnumProbeLimit,
		PathStyle:      check.PathStyle(c.PathStyle),
	}
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
