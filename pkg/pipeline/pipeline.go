// Package pipeline provides the document → layouts orchestration for Narravis.
//
// This package wraps the layout engine with caching so CLI and API share one
// code path. By centralizing this logic, we ensure consistent behavior across
// all entry points and avoid code duplication.
//
// # Architecture
//
// A document run has two stages per scene:
//
//  1. Key: hash the scene content and engine config into a cache key
//  2. Layout: return the cached layout on a hit, otherwise run the engine
//     and store the result
//
// Layout computation is deterministic, so cached entries never go stale on
// their own; TTLs exist only to bound cache growth.
//
// # Usage
//
// Create a Runner and lay out a document:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, _ := graph.LoadDocument("explanation.json")
//	res, err := runner.LayoutDocument(ctx, doc, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, l := range res.Layouts {
//	    fmt.Println(l.Scene, l.Confidence)
//	}
//
// Lay out a single scene:
//
//	l, hit, err := runner.LayoutScene(ctx, scene, opts)
package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/narravis/narravis/pkg/cache"
	"github.com/narravis/narravis/pkg/graph"
	"github.com/narravis/narravis/pkg/layout"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultMemoSize is the number of layouts held in the in-process LRU.
	// Documents rarely exceed a few dozen scenes, so this covers several
	// concurrent documents.
	DefaultMemoSize = 256

	// DefaultLayoutTTL is how long computed layouts stay in the shared cache.
	DefaultLayoutTTL = cache.DefaultLayoutTTL
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Config overrides the engine configuration. Zero value means defaults.
	Config layout.Config `json:"config,omitempty"`

	// Archetype overrides the per-scene archetype when non-empty. Useful for
	// previewing a document under a different shape.
	Archetype string `json:"archetype,omitempty"`

	// Refresh bypasses cache reads (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// TTL for cached layouts. Zero means DefaultLayoutTTL.
	TTL time.Duration `json:"ttl,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config == (layout.Config{}) {
		o.Config = layout.DefaultConfig()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if o.Archetype != "" {
		if _, err := layout.ParseArchetype(o.Archetype); err != nil {
			return err
		}
	}
	if o.TTL == 0 {
		o.TTL = DefaultLayoutTTL
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LayoutKeyOpts returns cache key options for the given scene archetype.
// The engine config participates in the key so that changing the canvas
// invalidates cached geometry.
func (o *Options) LayoutKeyOpts(archetype string) cache.LayoutKeyOpts {
	if o.Archetype != "" {
		archetype = o.Archetype
	}
	cfgData, _ := json.Marshal(o.Config)
	return cache.LayoutKeyOpts{
		Archetype:  archetype,
		ConfigHash: cache.Hash(cfgData),
	}
}

// =============================================================================
// Results
// =============================================================================

// DocumentResult contains the outputs of a document run.
type DocumentResult struct {
	// Layouts holds one computed layout per scene, in document order.
	Layouts []graph.Layout

	// Cached flags which scenes came from a cache, aligned with Layouts.
	Cached []bool

	// Stats contains timing and cache information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SceneCount int
	CacheHits  int
	Duration   time.Duration
}

// Succeeded reports whether every scene laid out successfully.
func (r *DocumentResult) Succeeded() bool {
	for _, l := range r.Layouts {
		if !l.Success {
			return false
		}
	}
	return true
}

// MinConfidence returns the lowest confidence across scenes, or 1 for an
// empty document.
func (r *DocumentResult) MinConfidence() float64 {
	minConf := 1.0
	for _, l := range r.Layouts {
		if l.Confidence < minConf {
			minConf = l.Confidence
		}
	}
	return minConf
}
