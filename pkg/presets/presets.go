// Package presets ships the built-in puzzle boards and a YAML loader for
// user-supplied puzzle files. The built-in set spans trivial to
// worst-case instances for both the 8-puzzle and the 15-puzzle; the
// hardest 8-puzzle board needs the maximum 31 moves.
package presets

import (
	"fmt"
	"sort"
)

// Preset is a named built-in puzzle board.
type Preset struct {
	// Name is the preset identifier used on the command line.
	Name string

	// Description summarizes difficulty.
	Description string

	// Grid is the row-major board, 0 for the blank.
	Grid []int

	// Moves is the known optimal move count, or -1 when the board is
	// unsolvable.
	Moves int
}

// Dim returns the side length of the preset's grid.
func (p Preset) Dim() int {
	d := 0
	for d*d < len(p.Grid) {
		d++
	}
	return d
}

var builtin = map[string]Preset{
	"trivial": {
		Name:        "trivial",
		Description: "8-puzzle already in goal arrangement",
		Grid:        []int{1, 2, 3, 4, 5, 6, 7, 8, 0},
		Moves:       0,
	},
	"easy": {
		Name:        "easy",
		Description: "8-puzzle two slides from the goal",
		Grid:        []int{1, 2, 0, 4, 5, 3, 7, 8, 6},
		Moves:       2,
	},
	"doable": {
		Name:        "doable",
		Description: "8-puzzle four slides from the goal",
		Grid:        []int{0, 1, 2, 4, 5, 3, 7, 8, 6},
		Moves:       4,
	},
	"oh-boy": {
		Name:        "oh-boy",
		Description: "hard 8-puzzle, 22 moves",
		Grid:        []int{8, 7, 1, 6, 0, 2, 5, 4, 3},
		Moves:       22,
	},
	"wait-for-it": {
		Name:        "wait-for-it",
		Description: "worst-case 8-puzzle, 31 moves",
		Grid:        []int{8, 6, 7, 2, 5, 4, 3, 0, 1},
		Moves:       31,
	},
	"impossible": {
		Name:        "impossible",
		Description: "unsolvable 8-puzzle (two tiles transposed)",
		Grid:        []int{1, 2, 3, 4, 5, 6, 8, 7, 0},
		Moves:       -1,
	},
	"15-trivial": {
		Name:        "15-trivial",
		Description: "15-puzzle already in goal arrangement",
		Grid:        []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0},
		Moves:       0,
	},
	"15-easy": {
		Name:        "15-easy",
		Description: "15-puzzle three slides from the goal",
		Grid:        []int{1, 2, 3, 0, 5, 6, 7, 4, 9, 10, 11, 8, 13, 14, 15, 12},
		Moves:       3,
	},
	"15-doable": {
		Name:        "15-doable",
		Description: "15-puzzle nine moves from the goal",
		Grid:        []int{2, 0, 3, 4, 1, 10, 6, 8, 5, 9, 7, 11, 13, 14, 15, 12},
		Moves:       9,
	},
	"15-wait-for-it": {
		Name:        "15-wait-for-it",
		Description: "hard 15-puzzle, 35 moves",
		Grid:        []int{1, 10, 15, 4, 13, 6, 3, 8, 2, 9, 12, 7, 14, 5, 0, 11},
		Moves:       35,
	},
	"15-impossible": {
		Name:        "15-impossible",
		Description: "unsolvable 15-puzzle (two tiles transposed)",
		Grid:        []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0},
		Moves:       -1,
	},
}

// Get returns the named preset. The returned grid is a copy; callers may
// mutate it freely.
func Get(name string) (Preset, error) {
	p, ok := builtin[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", name)
	}
	grid := make([]int, len(p.Grid))
	copy(grid, p.Grid)
	p.Grid = grid
	return p, nil
}

// List returns all presets sorted by name.
func List() []Preset {
	out := make([]Preset, 0, len(builtin))
	for _, p := range builtin {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
