// Package heuristic implements the cost-estimation strategies used to
// guide the puzzle search. All selectors except Euclidean are admissible
// and consistent for unit-cost blank slides; Euclidean is admissible but
// weaker. UniformCost degrades the search to uniform-cost (Dijkstra)
// ordering.
package heuristic

import "math"

// Selector identifies a heuristic strategy.
type Selector int

const (
	// UniformCost estimates zero remaining cost for every state.
	UniformCost Selector = iota + 1

	// MisplacedTile counts numbered tiles off their goal position.
	MisplacedTile

	// Euclidean sums straight-line distances of tiles to their goals.
	Euclidean

	// Manhattan sums row and column distances of tiles to their goals.
	Manhattan

	// ManhattanLinearConflict is Manhattan plus 2 per linear conflict.
	// It dominates Manhattan while remaining admissible.
	ManhattanLinearConflict
)

// selectorNames maps selectors to their display names.
var selectorNames = map[Selector]string{
	UniformCost:             "uniform",
	MisplacedTile:           "misplaced",
	Euclidean:               "euclidean",
	Manhattan:               "manhattan",
	ManhattanLinearConflict: "manhattan-lc",
}

// String returns the display name of the selector, or "uniform" for
// unrecognized values (mirroring Cost's fallback).
func (s Selector) String() string {
	if name, ok := selectorNames[s]; ok {
		return name
	}
	return selectorNames[UniformCost]
}

// FromChoice maps the classic numeric menu choice 1..5 to a selector.
// Out-of-range choices map to UniformCost.
func FromChoice(choice int) Selector {
	s := Selector(choice)
	if _, ok := selectorNames[s]; !ok {
		return UniformCost
	}
	return s
}

// FromName resolves a selector by display name. Unknown names resolve to
// UniformCost, matching the evaluator's non-fatal fallback policy.
func FromName(name string) Selector {
	for sel, n := range selectorNames {
		if n == name {
			return sel
		}
	}
	return UniformCost
}

// Cost evaluates the selected heuristic on a tile sequence. tiles is the
// row-major configuration with 0 for the blank, dim the grid side length.
// The result is always >= 0. An unrecognized selector evaluates as
// UniformCost rather than failing.
func Cost(tiles []int, dim int, sel Selector) float64 {
	switch sel {
	case MisplacedTile:
		return misplacedTile(tiles)
	case Euclidean:
		return euclidean(tiles, dim)
	case Manhattan:
		return manhattan(tiles, dim)
	case ManhattanLinearConflict:
		return manhattanLinearConflict(tiles, dim)
	default:
		return 0
	}
}

func misplacedTile(tiles []int) float64 {
	cost := 0.0
	for i, v := range tiles {
		if v == 0 {
			continue
		}
		if v != i+1 {
			cost++
		}
	}
	return cost
}

func euclidean(tiles []int, dim int) float64 {
	cost := 0.0
	for i, v := range tiles {
		if v == 0 {
			continue
		}
		rowDist := i/dim - (v-1)/dim
		colDist := i%dim - (v-1)%dim
		cost += math.Sqrt(float64(rowDist*rowDist + colDist*colDist))
	}
	return cost
}

func manhattan(tiles []int, dim int) float64 {
	cost := 0
	for i, v := range tiles {
		if v == 0 {
			continue
		}
		cost += abs((v-1)/dim-i/dim) + abs((v-1)%dim-i%dim)
	}
	return float64(cost)
}

// manhattanLinearConflict augments Manhattan with linear conflicts: two
// tiles whose goal row (or column) equals their current row (or column)
// but whose in-line order is inverted need at least two extra moves to
// slide past each other. Each tile scans only forward within its line, so
// a conflicting pair is counted exactly once.
func manhattanLinearConflict(tiles []int, dim int) float64 {
	length := len(tiles)
	cost := 0
	for i, v := range tiles {
		if v == 0 {
			continue
		}

		row := i / dim
		col := i % dim

		// Row conflicts: tiles later in this row, also homed in this row,
		// with a smaller value than v.
		if (v-1)/dim == row {
			for j := i + 1; j < row*dim+dim; j++ {
				w := tiles[j]
				if w == 0 || (w-1)/dim != row {
					continue
				}
				if w < v {
					cost += 2
				}
			}
		}

		// Column conflicts, the transpose of the row scan.
		if (v-1)%dim == col {
			for j := i + dim; j < length; j += dim {
				w := tiles[j]
				if w == 0 || (w-1)%dim != col {
					continue
				}
				if w < v {
					cost += 2
				}
			}
		}

		cost += abs((v-1)/dim-row) + abs((v-1)%dim-col)
	}
	return float64(cost)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
