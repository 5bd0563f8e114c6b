// SPDX-License-Identifier: MIT

// Package config loads the settings of the strassen program from a .env file
// and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/strassen/matrix"
)

// Environment variables read by Load.
const (
	EnvSize      = "STRASSEN_SIZE"
	EnvThreshold = "STRASSEN_THRESHOLD"
	EnvWorkers   = "STRASSEN_WORKERS"
	EnvSeed      = "STRASSEN_SEED"
	EnvMaxValue  = "STRASSEN_MAX_VALUE"
	EnvTrace     = "STRASSEN_TRACE"
)

// Defaults applied when a variable is unset or empty.
const (
	DefaultSize      = 4
	DefaultThreshold = 64
	DefaultMaxValue  = 10
	DefaultTrace     = TraceError
)

// Trace levels accepted by STRASSEN_TRACE.
const (
	TraceError = "error"
	TraceInfo  = "info"
	TraceDebug = "debug"
)

// envSearchDepth is how many directories Load inspects for a .env file:
// the working directory and its parents.
const envSearchDepth = 5

// ErrInvalidValue indicates a setting that cannot be parsed or is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the settings of the demo program and the threshold tuner.
type Config struct {
	Size      int    // matrix extent N, a power of two
	Threshold int    // classical cutoff, >= 1
	Workers   int    // 0 = GOMAXPROCS
	Seed      int64  // 0 = fixed default seed
	MaxValue  int64  // random entries are drawn from [0, MaxValue)
	Trace     string // error | info | debug
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Size:      DefaultSize,
		Threshold: DefaultThreshold,
		MaxValue:  DefaultMaxValue,
		Trace:     DefaultTrace,
	}
}

// Load reads the configuration from environment variables.
// It first loads the nearest .env file in the current or parent directories;
// variables already present in the environment take precedence over it.
// Load does not range-check; call Validate for that.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	cfg := Default()
	var err error
	if cfg.Size, err = intFromEnv(EnvSize, cfg.Size); err != nil {
		return nil, err
	}
	if cfg.Threshold, err = intFromEnv(EnvThreshold, cfg.Threshold); err != nil {
		return nil, err
	}
	if cfg.Workers, err = intFromEnv(EnvWorkers, cfg.Workers); err != nil {
		return nil, err
	}
	if cfg.Seed, err = int64FromEnv(EnvSeed, cfg.Seed); err != nil {
		return nil, err
	}
	if cfg.MaxValue, err = int64FromEnv(EnvMaxValue, cfg.MaxValue); err != nil {
		return nil, err
	}
	if v := strings.TrimSpace(os.Getenv(EnvTrace)); v != "" {
		cfg.Trace = strings.ToLower(v)
	}

	return cfg, nil
}

// Validate checks every setting against its allowed range.
func (c *Config) Validate() error {
	if !matrix.IsPowerOfTwo(c.Size) {
		return fmt.Errorf("%w: size %d is not a positive power of two", ErrInvalidValue, c.Size)
	}
	if c.Threshold < 1 {
		return fmt.Errorf("%w: threshold %d < 1", ErrInvalidValue, c.Threshold)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidValue, c.Workers)
	}
	if c.MaxValue < 1 {
		return fmt.Errorf("%w: max value %d < 1", ErrInvalidValue, c.MaxValue)
	}
	switch c.Trace {
	case TraceError, TraceInfo, TraceDebug:
	default:
		return fmt.Errorf("%w: trace level %q", ErrInvalidValue, c.Trace)
	}

	return nil
}

func intFromEnv(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}

	return n, nil
}

func int64FromEnv(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}

	return n, nil
}

// loadEnvFile looks upward from the working directory for a .env file and
// loads the first one found. A missing file is not an error.
func loadEnvFile() error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}

	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
