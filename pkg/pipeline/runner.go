package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/narravis/narravis/pkg/cache"
	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/graph"
	"github.com/narravis/narravis/pkg/layout"
	"github.com/narravis/narravis/pkg/observability"
)

// Runner encapsulates layout execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for its caches and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// memo is a small in-process layer in front of the shared cache, so a
	// document replayed in the same process skips even the backend round
	// trip. The lru package is safe for concurrent use.
	memo *lru.Cache[string, graph.Layout]
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	memo, _ := lru.New[string, graph.Layout](DefaultMemoSize)
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		memo:   memo,
	}
}

// LayoutDocument lays out every scene of a document in order.
//
// A scene that fails to lay out (for example an archetype the validator let
// through but the engine rejects) produces an unsuccessful Layout entry
// rather than aborting the run; the caller decides how to handle partial
// results. Only option validation and context cancellation return an error.
func (r *Runner) LayoutDocument(ctx context.Context, doc graph.Document, opts Options) (*DocumentResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	result := &DocumentResult{
		Layouts: make([]graph.Layout, 0, len(doc.Scenes)),
	}

	for i, scene := range doc.Scenes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		l, hit, err := r.LayoutScene(ctx, scene, opts)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "scene %d", i)
		}
		if hit {
			result.Stats.CacheHits++
		}
		result.Layouts = append(result.Layouts, l)
		result.Cached = append(result.Cached, hit)

		opts.Logger.Info("scene laid out",
			"scene", i,
			"archetype", l.Archetype,
			"nodes", len(l.Nodes),
			"confidence", l.Confidence,
			"cached", hit)
	}

	result.Stats.SceneCount = len(doc.Scenes)
	result.Stats.Duration = time.Since(start)
	return result, nil
}

// LayoutScene lays out a single scene with caching and reports whether the
// result came from a cache. Engine-level failures (which the engine folds
// into the Result) come back as an unsuccessful Layout, not an error, and
// are never cached.
func (r *Runner) LayoutScene(ctx context.Context, scene graph.Scene, opts Options) (graph.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return graph.Layout{}, false, err
	}

	sceneData, err := json.Marshal(scene)
	if err != nil {
		return graph.Layout{}, false, errors.Wrap(errors.ErrCodeInvalidDocument, err, "hash scene")
	}
	key := r.Keyer.LayoutKey(cache.Hash(sceneData), opts.LayoutKeyOpts(scene.Archetype))

	if !opts.Refresh {
		if cached, ok := r.memo.Get(key); ok {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil
		}
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			cached, err := graph.UnmarshalLayout(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				r.memo.Add(key, cached)
				return cached, true, nil
			}
			// Corrupt entry, fall through to recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	l, err := r.computeLayout(ctx, scene, opts)
	if err != nil {
		return graph.Layout{}, false, err
	}

	if l.Success {
		r.memo.Add(key, l)
		if data, err := graph.MarshalLayout(l); err == nil {
			if err := r.Cache.Set(ctx, key, data, opts.TTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "layout", len(data))
			}
		}
	}

	return l, false, nil
}

// computeLayout runs the engine on one scene.
func (r *Runner) computeLayout(ctx context.Context, scene graph.Scene, opts Options) (graph.Layout, error) {
	if opts.Archetype != "" {
		scene.Archetype = opts.Archetype
	}

	nodes, edges, arch, err := scene.ToLayoutInput()
	if err != nil {
		return graph.Layout{}, err
	}

	engine, err := layout.New(opts.Config, layout.WithLogger(opts.Logger))
	if err != nil {
		return graph.Layout{}, err
	}

	res := engine.Generate(ctx, nodes, edges, arch)
	return graph.FromResult(scene, res), nil
}

// PurgeMemo drops every in-process cached layout. The shared cache backend
// is untouched; use the cache's own management for that.
func (r *Runner) PurgeMemo() {
	r.memo.Purge()
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
