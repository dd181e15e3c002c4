// Package config loads editor settings from a TOML file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/gosketch/pkg/chain"
	"github.com/philipparndt/gosketch/pkg/editor"
)

// Window holds the editor window size in pixels
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Config holds all settings
type Config struct {
	NearDistance     float64 `toml:"near_distance"`
	SnapTolerance    float64 `toml:"snap_tolerance"`
	MaxChainVertices int     `toml:"max_chain_vertices"`
	LogLevel         string  `toml:"log_level"`
	Window           Window  `toml:"window"`
}

// Default returns the built in settings
func Default() Config {
	return Config{
		NearDistance:     editor.DefaultNearDistance,
		SnapTolerance:    chain.DefaultSnapTolerance,
		MaxChainVertices: chain.DefaultMaxVertices,
		LogLevel:         "info",
		Window: Window{
			Width:  800,
			Height: 600,
		},
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return cfg, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

// Validate checks that all values are usable
func (c Config) Validate() error {
	var errs []error
	if c.NearDistance <= 0 {
		errs = append(errs, fmt.Errorf("near_distance must be positive, got %g", c.NearDistance))
	}
	if c.SnapTolerance <= 0 {
		errs = append(errs, fmt.Errorf("snap_tolerance must be positive, got %g", c.SnapTolerance))
	}
	if c.MaxChainVertices < 4 {
		errs = append(errs, fmt.Errorf("max_chain_vertices must be at least 4, got %d", c.MaxChainVertices))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level returns the configured log level, info when invalid
func (c Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses debug, info, warn or error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q", s)
	}
	return level, nil
}

// SessionOptions returns the options for a segment session
func (c Config) SessionOptions(logger *slog.Logger) []editor.Option {
	return []editor.Option{
		editor.WithNearDistance(c.NearDistance),
		editor.WithLogger(logger),
	}
}

// PolygonOptions returns the options for a polygon session
func (c Config) PolygonOptions(logger *slog.Logger) []editor.Option {
	return []editor.Option{
		editor.WithSnapTolerance(c.SnapTolerance),
		editor.WithMaxVertices(c.MaxChainVertices),
		editor.WithLogger(logger),
	}
}

// NewLogger creates a text logger on stderr at the configured level
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()}))
}
