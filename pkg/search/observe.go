package search

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tianliu1119/npuzzle-solver/pkg/telemetry"
)

// startSpan opens the solve span when an observer is attached. Without
// one it returns the no-op span already carried by the context.
func (e *Engine) startSpan(ctx context.Context) (context.Context, trace.Span) {
	if e.tel == nil || e.tel.Tracer == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return e.tel.Tracer.StartSpan(ctx, "search.solve",
		attribute.String("search.heuristic", e.sel.String()),
		attribute.Int("puzzle.dim", e.puz.Dim()),
	)
}

// searchStarted records the start of a search run.
func (e *Engine) searchStarted() {
	if e.tel == nil {
		return
	}
	if e.tel.Metrics != nil {
		e.tel.Metrics.SearchStarted(e.sel.String())
	}
	if e.tel.Events != nil {
		e.tel.Events.Publish(telemetry.NewEvent(
			telemetry.EventTypeSearchStarted, "search", "search started",
			map[string]interface{}{"heuristic": e.sel.String(), "dim": e.puz.Dim()}))
	}
}

// observe records the terminal outcome of a search run.
func (e *Engine) observe(outcome string, started time.Time, res Result) {
	if e.tel == nil {
		return
	}
	if e.tel.Metrics != nil {
		e.tel.Metrics.SearchCompleted(e.sel.String(), outcome, time.Since(started),
			res.NodesExpanded, res.MaxFrontierSize, res.GoalDepth)
	}
	if e.tel.Events == nil {
		return
	}
	eventType := telemetry.EventTypeSearchCompleted
	if outcome == "unsolvable" {
		eventType = telemetry.EventTypeSearchUnsolvable
	}
	e.tel.Events.Publish(telemetry.NewEvent(eventType, "search", "search finished",
		map[string]interface{}{
			"heuristic":      e.sel.String(),
			"outcome":        outcome,
			"nodes_expanded": res.NodesExpanded,
			"max_frontier":   res.MaxFrontierSize,
			"goal_depth":     res.GoalDepth,
			"duration_ms":    time.Since(started).Milliseconds(),
		}))
}
