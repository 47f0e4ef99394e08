// Package config holds runtime configuration: CLI options with defaults,
// flag parsing, and the dataset configuration model loaded from JSON.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Options holds all runtime settings. It is populated by [DefaultOptions]
// and then mutated by [ParseFlags] before being passed (by pointer) to
// packages that need it.
type Options struct {
	// Input.
	ConfigPath string // Dataset configuration JSON file; empty means stdin.

	// Execution.
	Parallel bool // Fan counting out across a worker pool.
	Workers  int  // Pool size; 0 means one worker per CPU.

	// Display and logging.
	ShowProgress bool // Default: true. Cleared by --no-progress.
	Verbose      bool
	ColorMode    ColorMode // Default: "auto".
	LogFile      string    // Optional log file path.
	CheckOnly    bool      // Run --check diagnostics and exit.
}

// DefaultOptions returns an Options with all defaults applied. Used as the
// base before [ParseFlags] applies CLI overrides.
func DefaultOptions() Options {
	return Options{
		Parallel:     false,
		Workers:      0,
		ShowProgress: true,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// Validate checks that enum and numeric fields hold valid values.
func (o *Options) Validate() error {
	switch o.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}
	if o.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}
