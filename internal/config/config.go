// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. Both command variants (mediastamp and videostamp) share
// this package; the variant mains set VideosOnly and MetadataDevice before
// parsing flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Target directory (positional arg), absolute after main resolves it.
	Dir string

	// Naming.
	IPhonePrefix  string         // Default: "iphone".
	AndroidPrefix string         // Default: "android".
	Timezone      string         // Default: "America/Los_Angeles".
	Location      *time.Location // Resolved from Timezone by Validate.

	// Variant behavior, fixed per binary (not flag-controlled).
	VideosOnly     bool // Restrict scope to .mov/.mp4.
	MetadataDevice bool // Classify device via exiftool metadata.

	// External tools. Overridable so nonstandard install locations work
	// and so failure paths are reachable in tests.
	FfprobeBin  string // Default: "ffprobe".
	ExiftoolBin string // Default: "exiftool".

	// Behavior flags.
	DryRun  bool
	Analyze bool // Print the plan table, change nothing.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		IPhonePrefix:  "iphone",
		AndroidPrefix: "android",
		Timezone:      "America/Los_Angeles",
		FfprobeBin:    "ffprobe",
		ExiftoolBin:   "exiftool",
		ColorMode:     ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and prefixes, and resolves the timezone into
// Location. When not in CheckOnly mode it also requires the directory
// argument to be present.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := validatePrefix(c.IPhonePrefix); err != nil {
		return fmt.Errorf("iphone prefix: %w", err)
	}
	if err := validatePrefix(c.AndroidPrefix); err != nil {
		return fmt.Errorf("android prefix: %w", err)
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("unknown timezone %q", c.Timezone)
	}
	c.Location = loc

	if c.CheckOnly {
		return nil
	}
	if c.Dir == "" {
		return errors.New("need a directory argument")
	}
	return nil
}

// validatePrefix rejects device tokens that would break generated filenames.
func validatePrefix(p string) error {
	if strings.TrimSpace(p) == "" {
		return errors.New("must not be empty")
	}
	if strings.ContainsAny(p, `/\`) {
		return errors.New("must not contain path separators")
	}
	return nil
}
