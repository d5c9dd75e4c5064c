package layout

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/narravis/narravis/pkg/errors"
	"github.com/narravis/narravis/pkg/observability"
)

// Engine computes diagram layouts. An Engine holds an immutable Config and a
// logger; it has no other state, so a single Engine may serve concurrent
// Generate calls without locking. The natural scale-out unit is one call per
// diagram.
type Engine struct {
	cfg    Config
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for warnings (dropped inputs, exhausted
// resolution). Defaults to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine with the given configuration. A malformed config
// (non-positive dimensions, zero rounds) is a programmer error and is
// rejected here rather than surfacing mid-layout.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, logger: log.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Generate computes a layout for the given graph: archetype-specific initial
// placement, overlap resolution, boundary clamping, edge routing, and
// quality scoring.
//
// Generate never panics and never returns an error value: every failure mode
// is folded into the Result. Recoverable input problems (empty node IDs,
// duplicate IDs, dangling edges) are dropped with a warning. Exhausted
// overlap resolution degrades confidence but still succeeds. Unexpected
// faults are caught at this boundary and produce Success=false with a
// human-readable Error.
//
// Cancellation is cooperative at resolution-round granularity: if ctx is
// cancelled, Generate returns a failed Result after the in-flight round.
func (e *Engine) Generate(ctx context.Context, nodes []NodeSpec, edges []EdgeSpec, archetype Archetype) (result Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("layout panic recovered", "archetype", archetype, "panic", r)
			result = failedResult(fmt.Sprintf("internal layout fault: %v", r), time.Since(start))
		}
	}()

	if !archetype.Valid() {
		return failedResult(
			errors.New(errors.ErrCodeInvalidArchetype, "unknown archetype %d", int(archetype)).Message,
			time.Since(start))
	}

	observability.Layout().OnLayoutStart(ctx, archetype.String(), len(nodes))

	cleanNodes, cleanEdges := e.sanitize(nodes, edges)

	// Degenerate inputs short-circuit before placement.
	switch len(cleanNodes) {
	case 0:
		return e.finish(ctx, start, archetype, nil, nil)
	case 1:
		n := sizedNodes(cleanNodes, e.cfg)[0]
		n.X = (e.cfg.Width - n.W) / 2
		n.Y = (e.cfg.Height - n.H) / 2
		return e.finish(ctx, start, archetype, []PositionedNode{n}, nil)
	}

	positioned := strategyFor(archetype).place(cleanNodes, cleanEdges, e.cfg)
	for i := range positioned {
		clampToCanvas(&positioned[i], e.cfg)
	}

	rounds, remaining, err := resolveOverlaps(ctx, positioned, e.cfg, e.logger)
	observability.Layout().OnResolveRound(ctx, rounds, remaining)
	if err != nil {
		return failedResult(fmt.Sprintf("layout cancelled: %v", err), time.Since(start))
	}

	// Defensive re-check: resolution already clamps after every round, but
	// the invariant is cheap to re-assert before results leave the engine.
	for i := range positioned {
		clampToCanvas(&positioned[i], e.cfg)
	}

	return e.finish(ctx, start, archetype, positioned, cleanEdges)
}

// sanitize drops invalid nodes and edges: empty or duplicate node IDs, and
// edges whose endpoints aren't in the node set. Every drop is logged, never
// fatal.
func (e *Engine) sanitize(nodes []NodeSpec, edges []EdgeSpec) ([]NodeSpec, []EdgeSpec) {
	seen := make(map[string]bool, len(nodes))
	cleanNodes := make([]NodeSpec, 0, len(nodes))
	for _, n := range nodes {
		if err := errors.ValidateNodeID(n.ID); err != nil {
			e.logger.Warn("dropping node with invalid id", "label", n.Label, "err", errors.UserMessage(err))
			continue
		}
		if seen[n.ID] {
			e.logger.Warn("dropping node with duplicate id", "id", n.ID)
			continue
		}
		seen[n.ID] = true
		cleanNodes = append(cleanNodes, n)
	}

	cleanEdges := make([]EdgeSpec, 0, len(edges))
	for _, edge := range edges {
		if !seen[edge.From] || !seen[edge.To] {
			e.logger.Warn("dropping edge with dangling endpoint", "from", edge.From, "to", edge.To)
			continue
		}
		cleanEdges = append(cleanEdges, edge)
	}
	return cleanNodes, cleanEdges
}

// finish routes edges, computes bounds, metrics and confidence, and
// assembles the successful Result.
func (e *Engine) finish(ctx context.Context, start time.Time, archetype Archetype, nodes []PositionedNode, edges []EdgeSpec) Result {
	routed := routeEdges(edges, nodes, e.logger)
	bounds := computeBounds(nodes)
	metrics := computeMetrics(nodes, routed, bounds, e.cfg)
	elapsed := time.Since(start)

	if nodes == nil {
		nodes = []PositionedNode{}
	}

	observability.Layout().OnLayoutComplete(ctx, archetype.String(), elapsed, metrics.OverlapCount)

	return Result{
		Nodes:          nodes,
		Edges:          routed,
		Bounds:         bounds,
		Metrics:        metrics,
		ProcessingTime: elapsed,
		Success:        true,
		Confidence:     confidence(metrics, elapsed),
	}
}

// failedResult is the structured failure shape: empty geometry, zero
// confidence, and a human-readable error string.
func failedResult(msg string, elapsed time.Duration) Result {
	return Result{
		Nodes:          []PositionedNode{},
		Edges:          []Edge{},
		ProcessingTime: elapsed,
		Success:        false,
		Confidence:     0,
		Error:          msg,
	}
}
