// Package search implements best-first graph search over puzzle states.
// With a zero heuristic it behaves as uniform-cost search; with any of
// the admissible heuristics it is A*. The engine owns the frontier and
// explored registries for the duration of one Solve call and produces an
// optimal path together with expansion statistics.
package search

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/tianliu1119/npuzzle-solver/pkg/heuristic"
	"github.com/tianliu1119/npuzzle-solver/pkg/puzzle"
	"github.com/tianliu1119/npuzzle-solver/pkg/telemetry"
)

// Result is the outcome of one search. An empty Path with zero statistics
// signals an unsolvable puzzle; it is an expected outcome, not an error.
type Result struct {
	// Path is the ordered start-to-goal state sequence, empty when the
	// puzzle is unsolvable.
	Path []puzzle.State

	// NodesExpanded counts states moved into the explored registry. The
	// goal test runs on pop, so a start state that is already the goal
	// reports zero expansions.
	NodesExpanded int

	// MaxFrontierSize is the largest simultaneous frontier population,
	// sampled after each expansion.
	MaxFrontierSize int

	// GoalDepth is the number of moves in the solution, len(Path)-1, or
	// zero when Path is empty.
	GoalDepth int
}

// ExpandHook observes each state expansion. expanded is the running
// expansion count including the current state.
type ExpandHook func(s puzzle.State, expanded int)

// Engine runs best-first search on one puzzle instance. Engines are
// single-use per Solve call and not safe for concurrent use; the frontier
// and explored registries are owned exclusively by the in-flight search.
type Engine struct {
	puz      *puzzle.Puzzle
	sel      heuristic.Selector
	maxNodes int
	hook     ExpandHook
	tel      *telemetry.Telemetry
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxNodes caps the number of expansions. The search fails with a
// budget error once the cap is exceeded. Zero means unlimited. This is
// the caller-side ceiling for bounded-time behavior; the core search
// itself never gives up on a solvable puzzle.
func WithMaxNodes(n int) Option {
	return func(e *Engine) { e.maxNodes = n }
}

// WithExpandHook registers a callback invoked on every expansion, after
// the state enters the explored registry. Used by the CLI to trace the
// search; the hook must not retain the state's tile slice.
func WithExpandHook(hook ExpandHook) Option {
	return func(e *Engine) { e.hook = hook }
}

// WithObserver attaches telemetry: search metrics, spans, and lifecycle
// events. A nil observer disables instrumentation.
func WithObserver(tel *telemetry.Telemetry) Option {
	return func(e *Engine) { e.tel = tel }
}

// New creates an engine for the given puzzle and heuristic selector.
func New(puz *puzzle.Puzzle, sel heuristic.Selector, opts ...Option) *Engine {
	e := &Engine{puz: puz, sel: sel}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Solve runs the search to completion and returns the optimal path with
// statistics. Unsolvable puzzles return an empty result and nil error
// without expanding any node. The context is only consulted between
// expansions; an expired context aborts with its error.
func (e *Engine) Solve(ctx context.Context) (Result, error) {
	started := time.Now()
	ctx, span := e.startSpan(ctx)
	defer span.End()

	if !e.puz.Solvable() {
		e.observe("unsolvable", started, Result{})
		return Result{}, nil
	}
	e.searchStarted()

	dim := e.puz.Dim()
	start := e.puz.Start()
	start.H = heuristic.Cost(start.Tiles, dim, e.sel)
	start.F = float64(start.G) + start.H

	fr := newFrontier()
	fr.Admit(start, start.Key())
	explored := make(map[string]puzzle.State)

	expanded := 0
	maxFrontier := 0

	for fr.Len() > 0 {
		if err := ctx.Err(); err != nil {
			e.observe("cancelled", started, Result{})
			return Result{}, err
		}

		current, currentKey := fr.Pop()

		// Goal test on pop, not on generation. This keeps the first goal
		// pop optimal under admissible heuristics.
		if e.puz.IsGoal(current) {
			path := reconstructPath(explored, current)
			res := Result{
				Path:            path,
				NodesExpanded:   expanded,
				MaxFrontierSize: maxFrontier,
				GoalDepth:       len(path) - 1,
			}
			e.observe("solved", started, res)
			span.SetAttributes(
				attribute.Int("search.nodes_expanded", res.NodesExpanded),
				attribute.Int("search.goal_depth", res.GoalDepth),
			)
			return res, nil
		}

		if _, done := explored[currentKey]; done {
			continue
		}

		expanded++
		if e.maxNodes > 0 && expanded > e.maxNodes {
			e.observe("budget", started, Result{})
			return Result{}, puzzle.NewBudgetError(
				fmt.Sprintf("node budget of %d exhausted", e.maxNodes), nil)
		}

		explored[currentKey] = current
		if e.hook != nil {
			e.hook(current, expanded)
		}

		for _, child := range e.puz.Children(current) {
			childKey := child.Key()

			// First-discovered path wins. Safe because every shipped
			// heuristic is consistent; a non-consistent heuristic would
			// need re-opening here instead of pruning.
			if fr.Contains(childKey) {
				continue
			}
			if _, done := explored[childKey]; done {
				continue
			}

			child.G = current.G + 1
			child.H = heuristic.Cost(child.Tiles, dim, e.sel)
			child.F = float64(child.G) + child.H
			child.ParentKey = currentKey
			fr.Admit(child, childKey)
		}

		if fr.Len() > maxFrontier {
			maxFrontier = fr.Len()
		}
	}

	// Unreachable for a puzzle that passed the solvability gate, but the
	// exhausted frontier still has to terminate cleanly.
	e.observe("exhausted", started, Result{})
	return Result{}, nil
}
