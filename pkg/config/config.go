// Package config defines the configuration types for mdoutline.
// These are pure data structures; loading and discovery live in
// internal/configloader.
package config

import "fmt"

// OutputFormat specifies how outlines and node dumps are rendered.
type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatText   OutputFormat = "text"
	FormatJSON   OutputFormat = "json"
)

// IsValid returns true if the format is one of the known formats.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatPretty, FormatText, FormatJSON:
		return true
	default:
		return false
	}
}

// ColorMode controls colorized output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is one of the known modes.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration for mdoutline.
type Config struct {
	// Format selects the output rendering.
	Format OutputFormat `yaml:"format"`

	// MaxDepth limits how deep the rendered outline tree goes.
	// Zero means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// Color controls colorized terminal output.
	Color ColorMode `yaml:"color"`

	// DetectLanguages enables content-based language guessing for code
	// blocks whose fence has no info string.
	DetectLanguages bool `yaml:"detect_languages"`
}

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	return Config{
		Format:          FormatPretty,
		MaxDepth:        0,
		Color:           ColorAuto,
		DetectLanguages: false,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !c.Format.IsValid() {
		return fmt.Errorf("invalid format %q (expected pretty, text, or json)", c.Format)
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("invalid color mode %q (expected auto, always, or never)", c.Color)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max_depth %d (must be >= 0)", c.MaxDepth)
	}
	return nil
}
