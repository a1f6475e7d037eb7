// Package config loads lw settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-git/go-billy/v5"
	"gopkg.in/yaml.v3"

	"github.com/jallum/lexwrap/internal/wrap"
)

// DefaultPath is looked up relative to the working directory.
const DefaultPath = ".lw.yaml"

// EnvWidth overrides Width when set to an integer.
const EnvWidth = "LW_WIDTH"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds wrapping defaults. Command-line flags take precedence.
type Config struct {
	// Width is the target column count; 0 means ask the terminal.
	Width         int    `yaml:"width"`
	FallbackWidth int    `yaml:"fallback_width"`
	Indent        int    `yaml:"indent"`
	Color         string `yaml:"color"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		FallbackWidth: wrap.DefaultFallbackWidth,
		Color:         ColorAuto,
	}
}

// Load reads path from fs on top of Default. A missing file is not an
// error.
func Load(fs billy.Filesystem, path string) (Config, error) {
	cfg := Default()

	f, err := fs.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}
	return cfg, cfg.Validate()
}

// ApplyEnv applies environment overrides using lookup (os.LookupEnv in
// production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	v, ok := lookup(EnvWidth)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not a number", ErrInvalid, EnvWidth, v)
	}
	c.Width = n
	return c.Validate()
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("%w: width %d is negative", ErrInvalid, c.Width)
	case c.FallbackWidth <= 0:
		return fmt.Errorf("%w: fallback_width must be positive, got %d", ErrInvalid, c.FallbackWidth)
	case c.Indent < 0:
		return fmt.Errorf("%w: indent %d is negative", ErrInvalid, c.Indent)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalid, c.Color)
	}
}

// Save writes c to path on fs as YAML.
func Save(fs billy.Filesystem, path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
