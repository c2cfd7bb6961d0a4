// Package puzzle provides the core state model for square sliding-tile
// puzzles (8-puzzle, 15-puzzle, and larger). It defines the immutable
// state value, blank-slide transitions, the parity-based solvability
// test, and grid rendering used by the CLI.
package puzzle

import (
	"strconv"
	"strings"
)

// Move identifies the blank-slide operation that produced a state.
type Move int

const (
	// MoveStart marks the initial state; no operation produced it.
	MoveStart Move = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// String returns the display label for the move.
func (m Move) String() string {
	switch m {
	case MoveUp:
		return "UP"
	case MoveDown:
		return "DOWN"
	case MoveLeft:
		return "LEFT"
	case MoveRight:
		return "RIGHT"
	default:
		return "START"
	}
}

// State is one configuration of the puzzle. Tiles holds the tile values in
// row-major order with 0 denoting the blank. Two states are equal iff their
// tile sequences are equal; the cost and bookkeeping fields are search
// metadata and take no part in identity.
type State struct {
	// Tiles is the tile sequence in row-major order, 0 for the blank.
	Tiles []int

	// BlankIndex is the position of the blank within Tiles.
	BlankIndex int

	// G is the path cost from the start state.
	G int

	// H is the heuristic estimate of the remaining cost.
	H float64

	// F is the total priority, G + H.
	F float64

	// Move is the blank-slide operation that produced this state.
	Move Move

	// ParentKey is the canonical key of the state this one was generated
	// from. Empty for the start state.
	ParentKey string
}

// Key returns the canonical identity of the state: the tile values joined
// with a separator. The separator keeps multi-digit tiles collision-free
// ({1,12} and {11,2} must not share a key on a 15-puzzle).
func (s State) Key() string {
	var b strings.Builder
	b.Grow(len(s.Tiles) * 3)
	for i, v := range s.Tiles {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Equal reports whether two states hold the same tile configuration.
func (s State) Equal(o State) bool {
	if len(s.Tiles) != len(o.Tiles) {
		return false
	}
	for i, v := range s.Tiles {
		if o.Tiles[i] != v {
			return false
		}
	}
	return true
}

// clone returns a copy of the state with its own tile slice. Search
// metadata is carried over and overwritten by the caller as needed.
func (s State) clone() State {
	tiles := make([]int, len(s.Tiles))
	copy(tiles, s.Tiles)
	c := s
	c.Tiles = tiles
	return c
}
