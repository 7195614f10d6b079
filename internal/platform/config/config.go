// Package config loads service configuration from the process environment.
//
// Every service declares its settings as a struct with NATUR_-prefixed `env`
// tags (see internal/cmd for the per-service structs) and fills it through
// ParseEnv at startup.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// ParseEnv fills target from the environment variables named in its env tags.
func ParseEnv(target any) error {
	if target == nil {
		return errors.New("config target is required")
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Exitf writes a fatal startup message to stderr and exits with code 1.
// CLI entry points use it instead of log.Fatalf to keep startup errors
// free of log prefixes.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
