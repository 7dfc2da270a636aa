package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/exporter"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/internal/frequency"
	"github.com/HukumaM/analyzer-frequency-of-occurrence/pkg/analyzer"
)

// ErrConfiguration wraps every error caused by an invalid configuration.
var ErrConfiguration = errors.New("configuration error")

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"cin":       false,
		"ifstream":  "",
		"cout":      false,
		"ofstream":  "",
		"format":    DefaultFormat,
		"encoding":  DefaultEncoding,
		"top":       0,
		"stats":     false,
		"tie_break": DefaultTieBreak,
		"strict":    false,
		"verbose":   false,
	}
}

// Load merges, lowest priority first: built-in defaults, the YAML file at
// cfgFile (when non-empty), ANALYZER_* environment variables, then flags.
// flags holds only the options given on the command line, keyed like the
// YAML file.
func Load(cfgFile string, flags map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Load the config file
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: error reading config file %s: %v", ErrConfiguration, cfgFile, err)
		}
	}

	// 3. Load environment variables
	// Transform: ANALYZER_TIE_BREAK -> tie_break
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Load flags (highest priority)
	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: unable to decode config: %v", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks option combinations and fills in Mode.
func (c *Config) Validate() error {
	c.Mode = 0

	switch {
	case c.Cin && c.PathIn != "":
		return fmt.Errorf("%w: -cin and -ifstream are mutually exclusive", ErrConfiguration)
	case c.Cin:
		c.Mode |= ModeCin
	case c.PathIn != "":
		c.Mode |= ModeIfstream
	default:
		return fmt.Errorf("%w: no input stream specified (use -cin or -ifstream=path)", ErrConfiguration)
	}

	switch {
	case c.Cout && c.PathOut != "":
		return fmt.Errorf("%w: -cout and -ofstream are mutually exclusive", ErrConfiguration)
	case c.Cout:
		c.Mode |= ModeCout
	case c.PathOut != "":
		c.Mode |= ModeOfstream
	default:
		return fmt.Errorf("%w: no output stream specified (use -cout or -ofstream=path)", ErrConfiguration)
	}

	if _, err := exporter.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if _, err := frequency.ParseTieBreak(c.TieBreak); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if c.Encoding != "" && !slices.Contains(analyzer.Encodings, c.Encoding) {
		return fmt.Errorf("%w: unsupported encoding: %s", ErrConfiguration, c.Encoding)
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: top must not be negative, got %d", ErrConfiguration, c.Top)
	}

	return nil
}

// ReportFormat returns the validated report format.
func (c *Config) ReportFormat() exporter.Format {
	f, _ := exporter.ParseFormat(c.Format)
	return f
}

// ReportTieBreak returns the validated tie-break policy.
func (c *Config) ReportTieBreak() frequency.TieBreak {
	t, _ := frequency.ParseTieBreak(c.TieBreak)
	return t
}
