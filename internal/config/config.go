// Package config provides tuning configuration for Axion engine
// operations.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Config holds the engine-wide tuning knobs.
type Config struct {
	// ParallelThreshold is the minimum column length before ParApply
	// splits work across the worker pool.
	ParallelThreshold int `json:"parallel_threshold" yaml:"parallel_threshold"`
	// WorkerPoolSize is the number of worker goroutines (0 = one per CPU).
	WorkerPoolSize int `json:"worker_pool_size" yaml:"worker_pool_size"`
	// CSVInferLength is the number of non-empty values sampled per column
	// during CSV schema inference (0 = sample every value).
	CSVInferLength int `json:"csv_infer_length" yaml:"csv_infer_length"`
}

// Default configuration values.
const (
	DefaultParallelThreshold = 1000
	DefaultCSVInferLength    = 100
)

var (
	globalConfig Config
	configMutex  sync.RWMutex
)

func init() {
	globalConfig = NewConfig()
}

// NewConfig returns a configuration populated with default values.
func NewConfig() Config {
	return Config{
		ParallelThreshold: DefaultParallelThreshold,
		WorkerPoolSize:    0, // auto-detect
		CSVInferLength:    DefaultCSVInferLength,
	}
}

// Validate returns an error when a field is outside its allowed range.
func (c *Config) Validate() error {
	if c.ParallelThreshold <= 0 {
		return fmt.Errorf("ParallelThreshold must be positive, got %d", c.ParallelThreshold)
	}
	if c.WorkerPoolSize < 0 {
		return fmt.Errorf("WorkerPoolSize must be non-negative, got %d", c.WorkerPoolSize)
	}
	if c.CSVInferLength < 0 {
		return fmt.Errorf("CSVInferLength must be non-negative, got %d", c.CSVInferLength)
	}
	return nil
}

// WithDefaults fills zero-valued fields with their defaults.
func (c Config) WithDefaults() Config {
	defaults := NewConfig()
	if c.ParallelThreshold == 0 {
		c.ParallelThreshold = defaults.ParallelThreshold
	}
	if c.CSVInferLength == 0 {
		c.CSVInferLength = defaults.CSVInferLength
	}
	return c
}

// LoadFromFile reads a configuration file, dispatching on the file
// extension (.yaml/.yml or .json).
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path supplied by caller
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing JSON config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}

	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv overlays AXION_* environment variables on top of c.
// Unset variables leave the field untouched.
func LoadFromEnv(c Config) Config {
	if v, ok := intFromEnv("AXION_PARALLEL_THRESHOLD"); ok {
		c.ParallelThreshold = v
	}
	if v, ok := intFromEnv("AXION_WORKER_POOL_SIZE"); ok {
		c.WorkerPoolSize = v
	}
	if v, ok := intFromEnv("AXION_CSV_INFER_LENGTH"); ok {
		c.CSVInferLength = v
	}
	return c
}

func intFromEnv(key string) (int, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Global returns a copy of the process-wide configuration.
func Global() Config {
	configMutex.RLock()
	defer configMutex.RUnlock()
	return globalConfig
}

// SetGlobal replaces the process-wide configuration after validation.
func SetGlobal(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = c
	return nil
}

// ResetGlobal restores the process-wide configuration to defaults.
func ResetGlobal() {
	configMutex.Lock()
	defer configMutex.Unlock()
	globalConfig = NewConfig()
}
