package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pivotgrid/pkg/cache"
	"github.com/matzehuels/pivotgrid/pkg/document"
	"github.com/matzehuels/pivotgrid/pkg/errors"
	"github.com/matzehuels/pivotgrid/pkg/layout"
	"github.com/matzehuels/pivotgrid/pkg/observability"
	"github.com/matzehuels/pivotgrid/pkg/pivot"
)

// Runner executes pivotgrid operations with caching.
// Both CLI and API use it so caching and logging behave the same.
//
// The Runner holds no per-request state; multiple goroutines can share one
// as long as its Measurer and Cache are safe for concurrent use.
type Runner struct {
	Cache    cache.Cache
	Measurer layout.Measurer
	Metrics  layout.Metrics
	Logger   *log.Logger

	// FontFamily is used for layout requests that name no family.
	FontFamily string
	// TTL bounds how long computed layouts are cached; zero never expires.
	TTL time.Duration

	closers []func() error
}

// NewRunner creates a runner.
// If c is nil, a NullCache is used (caching disabled).
// If measurer is nil, text is measured with the bundled fonts.
// Zero metrics are replaced by layout.DefaultMetrics.
func NewRunner(c cache.Cache, measurer layout.Measurer, metrics layout.Metrics, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	if metrics == (layout.Metrics{}) {
		metrics = layout.DefaultMetrics()
	}
	r := &Runner{
		Cache:      c,
		Measurer:   measurer,
		Metrics:    metrics,
		Logger:     logger,
		FontFamily: defaultFamily,
		TTL:        DefaultTTL,
	}
	if r.Measurer == nil {
		r.Measurer = r.fontMeasurer()
	}
	return r
}

// Reconcile brings the request's stored setting in line with its query
// breakouts and, when columns are given, with the result columns. A nil
// Columns slice means the result is not known yet and only the breakouts
// are applied; an empty one removes every assignment.
func (r *Runner) Reconcile(ctx context.Context, req document.ReconcileRequest) (pivot.Setting, error) {
	if err := ctx.Err(); err != nil {
		return pivot.Setting{}, err
	}
	if err := req.Validate(); err != nil {
		return pivot.Setting{}, err
	}
	start := time.Now()

	setting := pivot.ReconcileFromQueryBreakouts(req.Setting, req.Query.Pivot())
	if req.Columns != nil {
		setting = pivot.Reconcile(setting, req.Columns, pivot.DefaultPartitions())
	}

	duration := time.Since(start)
	observability.Pipeline().OnReconcileComplete(ctx, req.Setting.Len(), setting.Len(), duration)
	r.Logger.Debug("reconciled setting",
		"before", req.Setting.Len(),
		"after", setting.Len(),
		"rows", len(setting.Rows),
		"columns", len(setting.Columns),
		"values", len(setting.Values))
	return setting, nil
}

// Check reports why the request's result cannot be shown as a pivot
// table, or nil when it can.
func (r *Runner) Check(ctx context.Context, req document.CheckRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := pivot.CheckRenderable(req.Result(), req.Setting, req.Query())
	observability.Pipeline().OnCheckComplete(ctx, err)
	if err != nil {
		r.Logger.Debug("result not renderable", "code", errors.GetCode(err))
	}
	return err
}

// LayoutWithCacheInfo computes the header geometry for req and reports
// whether it came from the cache. Cache failures are logged and never fail
// the layout.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, req document.LayoutRequest) (layout.Header, bool, error) {
	if err := ctx.Err(); err != nil {
		return layout.Header{}, false, err
	}
	if err := req.Validate(); err != nil {
		return layout.Header{}, false, err
	}

	in := req.Input()
	if in.FontFamily == "" {
		in.FontFamily = r.FontFamily
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(in.LeftItems), len(in.TopItems))
	start := time.Now()

	key, err := r.layoutKey(in)
	if err != nil {
		hooks.OnLayoutComplete(ctx, time.Since(start), err)
		return layout.Header{}, false, err
	}

	if h, ok := r.cachedLayout(ctx, key); ok {
		hooks.OnLayoutComplete(ctx, time.Since(start), nil)
		r.Logger.Debug("layout cache hit", "key", key)
		return h, true, nil
	}

	h := layout.Compute(r.Metrics, in, r.Measurer)
	r.storeLayout(ctx, key, h)

	duration := time.Since(start)
	hooks.OnLayoutComplete(ctx, duration, nil)
	r.Logger.Info("computed layout",
		"depths", len(h.Widths.Widths),
		"left", len(h.Left),
		"top", len(h.Top),
		"duration", duration)
	return h, false, nil
}

// Layout is a convenience wrapper that calls LayoutWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, req document.LayoutRequest) (layout.Header, error) {
	h, _, err := r.LayoutWithCacheInfo(ctx, req)
	return h, err
}

// layoutKey hashes the resolved input; the metrics are part of the key.
func (r *Runner) layoutKey(in layout.Input) (string, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize layout input")
	}
	return cache.LayoutKey(cache.Hash(data), r.Metrics), nil
}

func (r *Runner) cachedLayout(ctx context.Context, key string) (layout.Header, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Warn("cache read failed", "err", err)
		return layout.Header{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return layout.Header{}, false
	}
	var h layout.Header
	if err := json.Unmarshal(data, &h); err != nil {
		// Recompute over an unreadable entry.
		r.Logger.Warn("discarding cached layout", "err", err)
		observability.Cache().OnCacheMiss(ctx, cacheKeyType)
		return layout.Header{}, false
	}
	observability.Cache().OnCacheHit(ctx, cacheKeyType)
	return h, true
}

func (r *Runner) storeLayout(ctx context.Context, key string, h layout.Header) {
	data, err := json.Marshal(h)
	if err != nil {
		r.Logger.Warn("serialize layout", "err", err)
		return
	}
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(data))
}

// Close releases resources held by the runner.
func (r *Runner) Close() error {
	var first error
	for _, c := range r.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	r.closers = nil
	if r.Cache != nil {
		if err := r.Cache.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
