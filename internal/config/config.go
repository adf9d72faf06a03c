// Package config loads isodt defaults from TOML or YAML files.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/theory/isodatetime/datetime/format"
	"github.com/theory/isodatetime/datetime/parser"
	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted for a configuration file
// path when none is passed to LoadFromEnv.
const EnvVar = "ISODT_CONFIG"

// ErrConfig wraps configuration errors.
var ErrConfig = errors.New("config")

// Config is the file representation of the isodt defaults.
type Config struct {
	// Unit is the unit name passed to the parser and formatter. Defaults to
	// "auto".
	Unit string `toml:"unit" yaml:"unit"`

	// Casting is the casting rule name. Defaults to "same_kind".
	Casting string `toml:"casting" yaml:"casting"`

	// TimeZone is the IANA name of the local time zone, "UTC", or "Local"
	// for the host zone. Defaults to "Local".
	TimeZone string `toml:"timezone" yaml:"timezone"`

	// OffsetMinutes, if set, formats local times at a fixed offset east of
	// UTC rather than in TimeZone.
	OffsetMinutes *int `toml:"offset_minutes" yaml:"offset_minutes"`

	// Local formats values in local time.
	Local bool `toml:"local" yaml:"local"`
}

// Settings are the validated values of a Config.
type Settings struct {
	Unit     unit.Unit
	Casting  unit.Casting
	Location *time.Location
	Offset   *int
	Local    bool
}

// Default returns the default Config.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration file at path, decoding TOML or YAML according
// to its extension, applies defaults, and validates the result.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: config file not found: %v", ErrConfig, path)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %v: %w", ErrConfig, path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to parse %v: %w", ErrConfig, path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config file type %q", ErrConfig, ext)
	}

	cfg.applyDefaults()
	if _, err := cfg.Settings(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads path, or the file named by the ISODT_CONFIG environment
// variable if path is empty. Returns Default if neither names a file.
func LoadFromEnv(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// applyDefaults sets default values for missing configuration.
func (c *Config) applyDefaults() {
	if c.Unit == "" {
		c.Unit = "auto"
	}
	if c.Casting == "" {
		c.Casting = unit.SameKind.String()
	}
	if c.TimeZone == "" {
		c.TimeZone = "Local"
	}
}

// maxOffset bounds fixed offsets to those that format as ±hhmm.
const maxOffset = 24*60 - 1

// Settings validates c and returns its Settings.
func (c *Config) Settings() (*Settings, error) {
	u, err := unit.ParseUnit(c.Unit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	rule, err := unit.ParseCasting(c.Casting)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("%w: time zone: %w", ErrConfig, err)
	}
	if c.OffsetMinutes != nil && (*c.OffsetMinutes < -maxOffset || *c.OffsetMinutes > maxOffset) {
		return nil, fmt.Errorf(
			"%w: offset_minutes %d out of range [%d, %d]",
			ErrConfig, *c.OffsetMinutes, -maxOffset, maxOffset,
		)
	}

	return &Settings{
		Unit:     u,
		Casting:  rule,
		Location: loc,
		Offset:   c.OffsetMinutes,
		Local:    c.Local || c.OffsetMinutes != nil,
	}, nil
}

// Context returns ctx with the Settings time zone.
func (s *Settings) Context(ctx context.Context) context.Context {
	return types.ContextWithTZ(ctx, s.Location)
}

// ParseOptions returns the parser options for s.
func (s *Settings) ParseOptions() []parser.Option {
	return []parser.Option{
		parser.WithUnit(s.Unit),
		parser.WithCasting(s.Casting),
	}
}

// FormatOptions returns the format options for s.
func (s *Settings) FormatOptions() []format.Option {
	opts := []format.Option{
		format.WithUnit(s.Unit),
		format.WithCasting(s.Casting),
	}
	switch {
	case s.Offset != nil:
		opts = append(opts, format.WithOffset(*s.Offset))
	case s.Local:
		opts = append(opts, format.WithLocal())
	}
	return opts
}
