// Package config loads and validates the settings for a sieve run.
//
// Settings are layered, later sources overriding earlier ones:
//
//	Default() → YAML file (LoadFile) → SIEVE_* environment (FromEnv) → flags
//
// The command applies flags itself; this package owns the first three layers
// and Validate, which must pass before any worker starts.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by FromEnv
const (
	EnvBound     = "SIEVE_N"
	EnvWorkers   = "SIEVE_WORKERS"
	EnvChunkSize = "SIEVE_CHUNK"
	EnvProgress  = "SIEVE_PROGRESS"
	EnvFile      = "SIEVE_CONFIG"
)

// ErrInvalidConfig is returned when a setting is out of range or malformed
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the parameters of one sieve run
type Config struct {
	N         int           `yaml:"n"`          // Sieve bound, inclusive
	Workers   int           `yaml:"workers"`    // Worker goroutines
	ChunkSize int           `yaml:"chunk_size"` // Positions per chunk
	Progress  time.Duration `yaml:"progress"`   // Progress log interval, 0 disables
}

// Default returns the settings used when nothing else is configured
func Default() Config {
	return Config{
		N:         100,
		Workers:   runtime.NumCPU(),
		ChunkSize: 64,
	}
}

// LoadFile overlays the YAML document at path onto base.
// Keys absent from the file keep their value from base; unknown keys are an error.
func LoadFile(path string, base Config) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	cfg := base
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document
			return base, nil
		}
		return base, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// FromEnv overlays the SIEVE_* variables returned by getenv onto base.
// Unset or empty variables are ignored.
func FromEnv(base Config, getenv func(string) string) (Config, error) {
	cfg := base

	ints := []struct {
		key string
		dst *int
	}{
		{EnvBound, &cfg.N},
		{EnvWorkers, &cfg.Workers},
		{EnvChunkSize, &cfg.ChunkSize},
	}
	for _, v := range ints {
		raw := getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return base, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, v.key, raw)
		}
		*v.dst = n
	}

	if raw := getenv(EnvProgress); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return base, fmt.Errorf("%w: %s=%q is not a duration", ErrInvalidConfig, EnvProgress, raw)
		}
		cfg.Progress = d
	}

	return cfg, nil
}

// Validate checks every setting and reports all problems at once
func (c Config) Validate() error {
	var errs []error
	if c.N < 2 {
		errs = append(errs, fmt.Errorf("%w: n must be at least 2, got %d", ErrInvalidConfig, c.N))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers))
	}
	if c.ChunkSize < 1 {
		errs = append(errs, fmt.Errorf("%w: chunk size must be at least 1, got %d", ErrInvalidConfig, c.ChunkSize))
	}
	if c.Progress < 0 {
		errs = append(errs, fmt.Errorf("%w: progress interval must not be negative, got %v", ErrInvalidConfig, c.Progress))
	}
	return errors.Join(errs...)
}
