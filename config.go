package fibre

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config controls a Scheduler. The zero value is ready to use.
type Config struct {
	// Pool sizes the routine pool.
	Pool PoolConfig `yaml:"pool"`
	// Debug enables lifecycle and per-tick stats logging at debug level.
	Debug bool `yaml:"debug"`
	// LogLevel is the minimum zerolog level used by NewConsoleLogger
	// (trace, debug, info, warn, error). Empty means info.
	LogLevel string `yaml:"log_level"`
}

// Validate reports configuration values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Pool.InitialCapacity < 0 {
		return fmt.Errorf("pool.initial_capacity %d: %w", c.Pool.InitialCapacity, ErrInvalidConfig)
	}
	if c.Pool.GrowthStep < 0 {
		return fmt.Errorf("pool.growth_step %d: %w", c.Pool.GrowthStep, ErrInvalidConfig)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	return nil
}

// LoadConfig parses a YAML scheduler config:
//
//	pool:
//	  initial_capacity: 64
//	  growth_step: 32
//	debug: true
//	log_level: debug
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
