package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ratios holds the fraction of samples assigned to each split.
type Ratios struct {
	Train float64
	Val   float64
	Test  float64
}

// Sum returns Train + Val + Test.
func (r Ratios) Sum() float64 {
	return r.Train + r.Val + r.Test
}

// Logging contains configuration for log output.
type Logging struct {
	Format string
	Level  string
}

// Config encapsulates everything a single split invocation needs. Values come
// from command-line flags only; there is no configuration file.
type Config struct {
	InputDir  string
	TargetDir string
	Ratios    Ratios
	Seed      int64

	// Verify hashes every copy and removes corrupted destinations.
	Verify bool
	// Force allows copying into split directories that already hold entries.
	Force bool
	// DryRun computes the assignment without touching the filesystem.
	DryRun bool
	// SkipSpaceCheck disables the free-space preflight.
	SkipSpaceCheck bool

	Logging Logging
}

// Normalize trims and expands the directory paths and canonicalizes logging
// values. It does not touch the filesystem.
func (c *Config) Normalize() error {
	var err error
	if c.InputDir, err = expandPath(strings.TrimSpace(c.InputDir)); err != nil {
		return fmt.Errorf("input_dir: %w", err)
	}
	if c.TargetDir, err = expandPath(strings.TrimSpace(c.TargetDir)); err != nil {
		return fmt.Errorf("target_dir: %w", err)
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
