package puzzle

import (
	"fmt"
	"math"
)

// Puzzle is one validated puzzle instance: the start state plus derived
// geometry and the cached solvability verdict. A Puzzle is constructed
// once and never mutated; searches read from it only.
type Puzzle struct {
	start    State
	size     int // number of tiles, N in "N-puzzle"
	len      int // tiles plus blank, size+1
	dim      int // side length of the square grid
	solvable bool
}

// New validates grid and returns a puzzle instance. The grid must be a
// row-major permutation of 0..N whose length is a perfect square with
// side at least 2; 0 marks the blank. Validation failures return an
// invalid-grid error.
func New(grid []int) (*Puzzle, error) {
	n := len(grid)
	if n == 0 {
		return nil, NewInvalidGridError("grid is empty", nil)
	}
	dim := int(math.Sqrt(float64(n)))
	if dim*dim != n {
		return nil, NewInvalidGridError(
			fmt.Sprintf("grid length %d is not a perfect square", n), nil)
	}
	if dim < 2 {
		return nil, NewInvalidGridError(
			fmt.Sprintf("grid dimension %d is below the 2x2 minimum", dim), nil)
	}

	seen := make([]bool, n)
	blank := -1
	for i, v := range grid {
		if v < 0 || v >= n {
			return nil, NewInvalidGridError(
				fmt.Sprintf("tile value %d at index %d is outside 0..%d", v, i, n-1), nil)
		}
		if seen[v] {
			return nil, NewInvalidGridError(
				fmt.Sprintf("tile value %d appears more than once", v), nil)
		}
		seen[v] = true
		if v == 0 {
			blank = i
		}
	}

	tiles := make([]int, n)
	copy(tiles, grid)
	p := &Puzzle{
		start: State{Tiles: tiles, BlankIndex: blank, Move: MoveStart},
		size:  n - 1,
		len:   n,
		dim:   dim,
	}
	p.solvable = p.checkSolvable()
	return p, nil
}

// Size returns N, the number of numbered tiles.
func (p *Puzzle) Size() int { return p.size }

// Dim returns the side length of the square grid.
func (p *Puzzle) Dim() int { return p.dim }

// Start returns a copy of the start state.
func (p *Puzzle) Start() State { return p.start.clone() }

// Solvable reports whether the goal arrangement is reachable from the
// start state. The verdict is computed once at construction.
func (p *Puzzle) Solvable() bool { return p.solvable }

// IsGoal reports whether every numbered tile of s sits at its goal index
// (tile v belongs at index v-1).
func (p *Puzzle) IsGoal(s State) bool {
	for i, v := range s.Tiles {
		if v == 0 {
			continue
		}
		if v != i+1 {
			return false
		}
	}
	return true
}

// checkSolvable applies the inversion-parity test. A pair of numbered
// tiles is an inversion when the later one holds the smaller value. For
// odd grid dimensions the puzzle is solvable iff the inversion count is
// even; for even dimensions the blank's row counted from the bottom
// enters the parity:
//
//	inversions odd  and blank row-from-bottom even -> solvable
//	inversions even and blank row-from-bottom odd  -> solvable
func (p *Puzzle) checkSolvable() bool {
	inversions := 0
	for i := 0; i < p.len; i++ {
		if p.start.Tiles[i] == 0 {
			continue
		}
		for j := i + 1; j < p.len; j++ {
			if p.start.Tiles[j] == 0 {
				continue
			}
			if p.start.Tiles[j] < p.start.Tiles[i] {
				inversions++
			}
		}
	}

	if p.dim%2 == 1 {
		return inversions%2 == 0
	}

	rowFromBottom := p.dim - p.start.BlankIndex/p.dim
	if inversions%2 == 1 {
		return rowFromBottom%2 == 0
	}
	return rowFromBottom%2 == 1
}
