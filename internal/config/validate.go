package config

import (
	"errors"
	"fmt"
	"math"
)

// RatioTolerance is the largest accepted distance between the ratio sum and 1.
const RatioTolerance = 1e-6

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir must be set")
	}
	if c.TargetDir == "" {
		return errors.New("target_dir must be set")
	}
	if err := c.Ratios.Validate(); err != nil {
		return err
	}
	return c.validateLogging()
}

// Validate checks that every ratio lies in [0, 1] and that they sum to 1.
func (r Ratios) Validate() error {
	for _, entry := range []struct {
		name  string
		value float64
	}{
		{"train", r.Train},
		{"val", r.Val},
		{"test", r.Test},
	} {
		if math.IsNaN(entry.value) || entry.value < 0 || entry.value > 1 {
			return fmt.Errorf("%s ratio must be between 0 and 1, got %v", entry.name, entry.value)
		}
	}
	if sum := r.Sum(); !(math.Abs(sum-1.0) < RatioTolerance) {
		return fmt.Errorf("sum of ratios must be 1, got %v (train=%v val=%v test=%v)", sum, r.Train, r.Val, r.Test)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
