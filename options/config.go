// Package options holds the builder configuration and its YAML loader.
package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"schema-caster/primitive"
)

// DefaultCacheSize is the plan cache capacity used when none is configured.
const DefaultCacheSize = 1024

// Config configures a plan builder.
type Config struct {
	// CacheSize bounds the number of cached plans.
	CacheSize int `yaml:"cache_size"`
	// Categories lists enabled primitive conversion categories by name,
	// for example safe_number, text_number or all.
	Categories []string `yaml:"categories"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		CacheSize:  DefaultCacheSize,
		Categories: []string{"safe_number", "enum_string", "safe_array"},
		LogLevel:   "info",
	}
}

// Load loads and parses a YAML configuration file from the given path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.CacheSize == 0 {
		cfg.CacheSize = def.CacheSize
	}

	if cfg.Categories == nil {
		cfg.Categories = def.Categories
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// Validate checks every field of the configuration.
func (c Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must not be negative, got %d", c.CacheSize)
	}

	if _, err := c.CategorySet(); err != nil {
		return err
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// CategorySet combines the configured categories.
func (c Config) CategorySet() (primitive.CategoryEnum, error) {
	var set primitive.CategoryEnum

	for _, name := range c.Categories {
		category, err := primitive.ParseCategory(name)
		if err != nil {
			return primitive.CategoryNone, err
		}

		set |= category
	}

	return set, nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return level, nil
}

// Marshal serializes a Config to YAML.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}
