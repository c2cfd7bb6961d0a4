package puzzle

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderState formats s as an aligned square grid, one row per line.
// Column width follows the widest tile value so 15-puzzles and larger
// stay aligned.
func (p *Puzzle) RenderState(s State) string {
	width := len(strconv.Itoa(p.size))
	var b strings.Builder
	for i, v := range s.Tiles {
		fmt.Fprintf(&b, "%-*d ", width, v)
		if i%p.dim == p.dim-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderSolution formats a solution path as a numbered sequence of move
// labels and grids. An empty path renders as a no-solution marker.
func (p *Puzzle) RenderSolution(path []State) string {
	var b strings.Builder
	if len(path) == 0 {
		b.WriteString("-- NO SOLUTION --\n")
		return b.String()
	}
	for i, s := range path {
		fmt.Fprintf(&b, "-- %d: %s\n", i, s.Move)
		b.WriteString(p.RenderState(s))
		b.WriteByte('\n')
	}
	return b.String()
}
