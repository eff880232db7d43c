// Package pipeline runs the pivotgrid operations for the CLI and HTTP API.
//
// A [Runner] wraps the pure pivot and layout packages with the concerns the
// outer surfaces share: request validation, result caching, structured
// logging, and observability hooks. Both entry points build a Runner from
// the same configuration, so a layout computed by the CLI is a cache hit
// for the API and vice versa.
//
// # Usage
//
//	cfg, err := config.Load(path)
//	runner, err := pipeline.Open(ctx, cfg, logger)
//	defer runner.Close()
//
//	setting, err := runner.Reconcile(ctx, reconcileReq)
//	header, cached, err := runner.Layout(ctx, layoutReq)
package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pivotgrid/pkg/cache"
	"github.com/matzehuels/pivotgrid/pkg/config"
	"github.com/matzehuels/pivotgrid/pkg/errors"
	"github.com/matzehuels/pivotgrid/pkg/fonts"
	"github.com/matzehuels/pivotgrid/pkg/layout"
	"github.com/matzehuels/pivotgrid/pkg/measure"
)

const (
	// DefaultTTL bounds how long a computed layout is stored.
	DefaultTTL = 24 * time.Hour

	// redisPrefix namespaces pivotgrid keys in a shared Redis.
	redisPrefix = "pivotgrid:"

	// cacheKeyType labels cache hooks emitted by the runner.
	cacheKeyType = "layout"
)

// Open builds a Runner from cfg: the configured cache backend, a font
// measurer, the layout metrics, and the default font family.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (*Runner, error) {
	c, err := NewCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}
	m, err := measure.New(cfg.Font.MemoSize)
	if err != nil {
		_ = c.Close()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create measurer")
	}

	r := NewRunner(c, m, cfg.Layout, logger)
	if cfg.Font.Family != "" {
		r.FontFamily = cfg.Font.Family
	}
	r.TTL = cfg.Cache.TTL.Duration
	r.closers = append(r.closers, m.Close)
	return r, nil
}

// NewCache opens the cache backend named by cfg.
func NewCache(ctx context.Context, cfg config.Cache) (cache.Cache, error) {
	switch cfg.Backend {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:   cfg.RedisAddr,
			DB:     cfg.RedisDB,
			Prefix: redisPrefix,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect redis %s", cfg.RedisAddr)
		}
		return rc, nil
	case config.CacheFile, "":
		dir, err := cfg.CacheDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "resolve cache dir")
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "open cache dir %s", dir)
		}
		return fc, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", cfg.Backend)
}

// defaultFamily is the family a Runner measures with when neither the
// request nor the configuration names one.
var defaultFamily = fonts.DefaultFamily

// estimateCharWidth approximates a glyph advance as a fraction of the font
// size for runners whose font measurer could not be created.
const estimateCharWidth = 0.55

// fontMeasurer creates the default measurer and registers its Close.
func (r *Runner) fontMeasurer() layout.Measurer {
	m, err := measure.New(0)
	if err != nil {
		r.Logger.Warn("font measurer unavailable, estimating text widths", "err", err)
		return layout.MeasureFunc(func(text string, style layout.TextStyle) float64 {
			return float64(len([]rune(text))) * style.Size * estimateCharWidth
		})
	}
	r.closers = append(r.closers, m.Close)
	return m
}
