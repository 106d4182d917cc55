// Package config loads runtime settings from an optional YAML file and the
// environment. Environment variables win over the file, command-line flags
// win over both (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no explicit config file is given.
const DefaultPath = "almanac.yaml"

// Config holds runtime settings.
type Config struct {
	// InputsDir holds inputs/DD.txt and examples/DD.txt.
	InputsDir string `yaml:"inputs_dir" env:"AOC_INPUTS_DIR"`
	// Workers bounds the part-two worker pool; 0 means GOMAXPROCS.
	Workers int `yaml:"workers" env:"AOC_WORKERS"`
	// ChunkSize is the number of consecutive seeds per unit of work.
	ChunkSize uint64 `yaml:"chunk_size" env:"AOC_CHUNK_SIZE"`
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"AOC_LOG_LEVEL"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		InputsDir: "data",
		Workers:   0,
		ChunkSize: 1 << 16,
		LogLevel:  "info",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path, then environment overrides. An empty path reads DefaultPath if it
// exists.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := parseInto(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file; defaults apply.
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Parse parses YAML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := parseInto(data, &cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func parseInto(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	return nil
}

// ParseEnv overrides fields whose environment variable is set.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// applyDefaults restores defaults for fields explicitly emptied.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.InputsDir == "" {
		cfg.InputsDir = def.InputsDir
	}

	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = def.ChunkSize
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}

	return nil
}

// Level returns the configured log level, info if it does not parse.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}

	return lvl
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
