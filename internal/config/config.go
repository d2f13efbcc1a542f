// Package config holds the run configuration for the tribute book
// generator. Limits and page geometry are always passed down as
// explicit values; nothing in this package is process-global.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default capacity limits, matching the values the book was originally
// produced with.
const (
	DefaultMaxChars   = 2400
	DefaultMaxPerPage = 2
)

// Configuration validation errors.
var (
	ErrUnknownPageSize = errors.New("page size must be one of A3, A4, A5, Letter, Legal")
)

// LimitsConfig bounds how much a single page may hold.
type LimitsConfig struct {
	MaxChars   int `yaml:"max_chars" json:"max_chars"`
	MaxPerPage int `yaml:"max_per_page" json:"max_per_page"`
	// ShortMessageThreshold makes messages at or below this many
	// characters count at half weight. Zero disables the discount.
	ShortMessageThreshold int `yaml:"short_message_threshold" json:"short_message_threshold"`
}

// Validate checks the limits configuration.
func (l LimitsConfig) Validate() error {
	if l.MaxChars <= 0 {
		return fmt.Errorf("limits.max_chars must be positive, got %d", l.MaxChars)
	}
	if l.MaxPerPage <= 0 {
		return fmt.Errorf("limits.max_per_page must be positive, got %d", l.MaxPerPage)
	}
	if l.ShortMessageThreshold < 0 {
		return fmt.Errorf("limits.short_message_threshold must not be negative, got %d", l.ShortMessageThreshold)
	}
	return nil
}

// PageConfig describes page geometry.
type PageConfig struct {
	// Size is a named page size: A3, A4, A5, Letter or Legal.
	Size string `yaml:"size" json:"size"`
	// Margin is the uniform page margin in points.
	Margin float64 `yaml:"margin" json:"margin"`
}

// Validate checks the page configuration.
func (p PageConfig) Validate() error {
	switch p.Size {
	case "A3", "A4", "A5", "Letter", "Legal":
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownPageSize, p.Size)
	}
	if p.Margin < 0 {
		return fmt.Errorf("page.margin must not be negative, got %.1f", p.Margin)
	}
	return nil
}

// OutputConfig names the generated files.
type OutputConfig struct {
	PDF string `yaml:"pdf" json:"pdf"`
	// DebugHTML, when set, writes the rendered book as HTML next to
	// the PDF for inspection.
	DebugHTML string `yaml:"debug_html" json:"debug_html"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// Config is the full run configuration.
type Config struct {
	Limits  LimitsConfig  `yaml:"limits" json:"limits"`
	Page    PageConfig    `yaml:"page" json:"page"`
	Output  OutputConfig  `yaml:"output" json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Limits: LimitsConfig{
			MaxChars:   DefaultMaxChars,
			MaxPerPage: DefaultMaxPerPage,
		},
		Page: PageConfig{
			Size:   "A4",
			Margin: 72,
		},
		Output: OutputConfig{
			PDF: "book.pdf",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the full configuration.
func (c *Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	if err := c.Page.Validate(); err != nil {
		return err
	}
	return nil
}
