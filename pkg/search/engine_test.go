package search

import (
	"context"
	"errors"
	"testing"

	"github.com/tianliu1119/npuzzle-solver/pkg/heuristic"
	"github.com/tianliu1119/npuzzle-solver/pkg/puzzle"
)

var allSelectors = []heuristic.Selector{
	heuristic.UniformCost,
	heuristic.MisplacedTile,
	heuristic.Euclidean,
	heuristic.Manhattan,
	heuristic.ManhattanLinearConflict,
}

// sameTiles compares two tile sequences.
func sameTiles(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if b[i] != v {
			return false
		}
	}
	return true
}

// mustSolve runs a search to completion or fails the test.
func mustSolve(t *testing.T, grid []int, sel heuristic.Selector, opts ...Option) Result {
	t.Helper()
	puz, err := puzzle.New(grid)
	if err != nil {
		t.Fatalf("failed to construct puzzle: %v", err)
	}
	res, err := New(puz, sel, opts...).Solve(context.Background())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	return res
}

// TestSolveTwoSlides tests a two-move instance under every heuristic:
// same optimal path endpoints and depth regardless of guidance.
func TestSolveTwoSlides(t *testing.T) {
	grid := []int{1, 2, 0, 4, 5, 3, 7, 8, 6}
	goal := []int{1, 2, 3, 4, 5, 6, 7, 8, 0}

	for _, sel := range allSelectors {
		t.Run(sel.String(), func(t *testing.T) {
			res := mustSolve(t, grid, sel)

			if len(res.Path) != 3 {
				t.Fatalf("path has %d states, want 3", len(res.Path))
			}
			if res.GoalDepth != 2 {
				t.Errorf("goal depth = %d, want 2", res.GoalDepth)
			}
			if got := res.Path[0].Tiles; !sameTiles(got, grid) {
				t.Errorf("path does not begin at the start state: %v", got)
			}
			if got := res.Path[len(res.Path)-1].Tiles; !sameTiles(got, goal) {
				t.Errorf("path does not end at the goal: %v", got)
			}
			for i, want := range []puzzle.Move{puzzle.MoveStart, puzzle.MoveDown, puzzle.MoveDown} {
				if res.Path[i].Move != want {
					t.Errorf("path[%d].Move = %v, want %v", i, res.Path[i].Move, want)
				}
			}
		})
	}
}

// TestSolveUnsolvable tests the solvability short-circuit: empty path,
// zero statistics, nil error.
func TestSolveUnsolvable(t *testing.T) {
	res := mustSolve(t, []int{1, 2, 3, 4, 5, 6, 8, 7, 0}, heuristic.Manhattan)
	if len(res.Path) != 0 {
		t.Errorf("unsolvable puzzle produced a %d-state path", len(res.Path))
	}
	if res.NodesExpanded != 0 || res.MaxFrontierSize != 0 || res.GoalDepth != 0 {
		t.Errorf("unsolvable statistics not zero: %+v", res)
	}
}

// TestSolveAlreadySolved tests the goal-check-on-pop policy on a 4x4
// grid that starts at the goal: a single-state path with zero
// expansions, since the start is popped and recognized before any
// expansion happens.
func TestSolveAlreadySolved(t *testing.T) {
	grid := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}
	res := mustSolve(t, grid, heuristic.Manhattan)

	if len(res.Path) != 1 {
		t.Fatalf("path has %d states, want 1", len(res.Path))
	}
	if res.NodesExpanded != 0 {
		t.Errorf("nodes expanded = %d, want 0", res.NodesExpanded)
	}
	if res.GoalDepth != 0 {
		t.Errorf("goal depth = %d, want 0", res.GoalDepth)
	}
}

// TestOptimalDepthHeuristicIndependent tests on a hard instance that
// every heuristic finds the same optimal depth while stronger admissible
// heuristics expand no more nodes than weaker ones.
func TestOptimalDepthHeuristicIndependent(t *testing.T) {
	if testing.Short() {
		t.Skip("uniform-cost sweep of a 22-move instance skipped in short mode")
	}
	grid := []int{8, 7, 1, 6, 0, 2, 5, 4, 3}

	expanded := make(map[heuristic.Selector]int)
	for _, sel := range allSelectors {
		res := mustSolve(t, grid, sel)
		if res.GoalDepth != 22 {
			t.Fatalf("%s found depth %d, want 22", sel, res.GoalDepth)
		}
		expanded[sel] = res.NodesExpanded
	}

	order := []heuristic.Selector{
		heuristic.ManhattanLinearConflict,
		heuristic.Manhattan,
		heuristic.MisplacedTile,
		heuristic.UniformCost,
	}
	for i := 0; i+1 < len(order); i++ {
		if expanded[order[i]] > expanded[order[i+1]] {
			t.Errorf("%s expanded %d nodes, more than %s's %d",
				order[i], expanded[order[i]], order[i+1], expanded[order[i+1]])
		}
	}
}

// TestSolveWorstCase tests the maximum-depth 8-puzzle instance with the
// strongest heuristic.
func TestSolveWorstCase(t *testing.T) {
	res := mustSolve(t, []int{8, 6, 7, 2, 5, 4, 3, 0, 1}, heuristic.ManhattanLinearConflict)
	if res.GoalDepth != 31 {
		t.Errorf("goal depth = %d, want 31", res.GoalDepth)
	}
	if res.MaxFrontierSize == 0 {
		t.Error("max frontier size not recorded")
	}
}

// TestPathParentLinks tests path integrity: each state was generated
// from its predecessor and parent keys chain accordingly.
func TestPathParentLinks(t *testing.T) {
	res := mustSolve(t, []int{0, 1, 2, 4, 5, 3, 7, 8, 6}, heuristic.Manhattan)

	if res.Path[0].ParentKey != "" {
		t.Errorf("start parent key = %q, want empty", res.Path[0].ParentKey)
	}
	for i := 1; i < len(res.Path); i++ {
		if res.Path[i].ParentKey != res.Path[i-1].Key() {
			t.Errorf("path[%d] parent key does not match path[%d]", i, i-1)
		}
		if res.Path[i].G != i {
			t.Errorf("path[%d].G = %d, want %d", i, res.Path[i].G, i)
		}
	}
}

// TestMaxNodesBudget tests the node-count ceiling.
func TestMaxNodesBudget(t *testing.T) {
	puz, err := puzzle.New([]int{8, 7, 1, 6, 0, 2, 5, 4, 3})
	if err != nil {
		t.Fatalf("failed to construct puzzle: %v", err)
	}

	_, err = New(puz, heuristic.UniformCost, WithMaxNodes(5)).Solve(context.Background())
	if err == nil {
		t.Fatal("expected a budget error, got nil")
	}
	var pe *puzzle.Error
	if !errors.As(err, &pe) || pe.Class != puzzle.ErrorClassBudget {
		t.Errorf("expected a budget-class error, got %v", err)
	}
}

// TestExpandHook tests that the hook fires once per expansion.
func TestExpandHook(t *testing.T) {
	calls := 0
	res := mustSolve(t, []int{0, 1, 2, 4, 5, 3, 7, 8, 6}, heuristic.Manhattan,
		WithExpandHook(func(s puzzle.State, expanded int) {
			calls++
			if expanded != calls {
				t.Errorf("hook expanded counter = %d, want %d", expanded, calls)
			}
		}))
	if calls != res.NodesExpanded {
		t.Errorf("hook fired %d times for %d expansions", calls, res.NodesExpanded)
	}
}

// TestSolveCancelledContext tests that an expired context aborts the
// search between expansions.
func TestSolveCancelledContext(t *testing.T) {
	puz, err := puzzle.New([]int{1, 2, 0, 4, 5, 3, 7, 8, 6})
	if err != nil {
		t.Fatalf("failed to construct puzzle: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = New(puz, heuristic.Manhattan).Solve(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
