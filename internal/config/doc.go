// Package config normalizes and validates datasplit run settings.
//
// It supplies repository defaults (80/10/10 ratios, seed 42), expands user
// paths including tilde shortcuts, and rejects ratio sets that do not sum to 1
// within RatioTolerance. Settings arrive from command-line flags; the package
// never reads files or environment variables.
package config
