// Package config loads pivotgrid settings from a TOML file.
//
// Every key is optional; [Default] supplies the values a missing key keeps.
//
//	[layout]
//	cell_height = 24
//	max_rows_to_measure = 100
//
//	[font]
//	family = "Go"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pivotgrid/pkg/errors"
	"github.com/matzehuels/pivotgrid/pkg/fonts"
	"github.com/matzehuels/pivotgrid/pkg/layout"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the complete pivotgrid configuration.
type Config struct {
	Layout layout.Metrics `toml:"layout"`
	Font   Font           `toml:"font"`
	Cache  Cache          `toml:"cache"`
	Server Server         `toml:"server"`
}

// Font selects the family used for measurement.
type Font struct {
	Family   string `toml:"family"`
	MemoSize int    `toml:"memo_size"`
}

// Cache configures where computed layouts are kept.
type Cache struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	RedisDB   int      `toml:"redis_db"`
	TTL       Duration `toml:"ttl"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string such as "90s".
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// appName names the per-user cache directory.
const appName = "pivotgrid"

// CacheDir returns the directory of the file cache: c.Dir when set, else
// $XDG_CACHE_HOME/pivotgrid or ~/.cache/pivotgrid.
func (c Cache) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Layout: layout.DefaultMetrics(),
		Font:   Font{Family: fonts.DefaultFamily},
		Cache:  Cache{Backend: CacheFile, TTL: Duration{24 * time.Hour}},
		Server: Server{Addr: ":8080"},
	}
}

// Load reads path over the defaults and validates the result. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data), cfg)
}

// Parse decodes data over base and validates the result.
func Parse(data string, base Config) (Config, error) {
	md, err := toml.Decode(data, &base)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	if err := base.Validate(); err != nil {
		return Config{}, err
	}
	return base, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	m := c.Layout
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"layout.cell_width", m.CellWidth},
		{"layout.cell_height", m.CellHeight},
		{"layout.min_header_cell_width", m.MinHeaderCellWidth},
		{"layout.max_header_cell_width", m.MaxHeaderCellWidth},
		{"layout.font_size", m.FontSize},
	} {
		if f.v <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive", f.key)
		}
	}
	if m.RowToggleIconWidth < 0 || m.CellPadding < 0 || m.LeftHeaderLeftSpacing < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout spacing values cannot be negative")
	}
	if m.MinHeaderCellWidth > m.MaxHeaderCellWidth {
		return errors.New(errors.ErrCodeInvalidConfig,
			"layout.min_header_cell_width (%g) exceeds layout.max_header_cell_width (%g)",
			m.MinHeaderCellWidth, m.MaxHeaderCellWidth)
	}
	if m.MaxRowsToMeasure <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout.max_rows_to_measure must be positive")
	}

	switch c.Cache.Backend {
	case CacheNone, CacheFile:
	case CacheRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}
	return nil
}
