package puzzle

import "testing"

// TestChildrenCount tests the feasible move count for every blank
// position class: corners slide two ways, edges three, the center four.
func TestChildrenCount(t *testing.T) {
	tests := []struct {
		name string
		grid []int
		want int
	}{
		{"corner", []int{0, 1, 2, 4, 5, 3, 7, 8, 6}, 2},
		{"edge", []int{1, 0, 2, 4, 5, 3, 7, 8, 6}, 3},
		{"center", []int{1, 2, 3, 4, 0, 5, 7, 8, 6}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, tt.grid)
			children := p.Children(p.Start())
			if len(children) != tt.want {
				t.Errorf("got %d children, want %d", len(children), tt.want)
			}
		})
	}
}

// TestChildrenOrder tests that a center blank generates its children in
// the canonical UP, DOWN, LEFT, RIGHT order and with consistent tile
// swaps and blank tracking.
func TestChildrenOrder(t *testing.T) {
	p := mustNew(t, []int{1, 2, 3, 4, 0, 5, 7, 8, 6})
	children := p.Children(p.Start())
	if len(children) != 4 {
		t.Fatalf("got %d children, want 4", len(children))
	}

	wantMoves := []Move{MoveUp, MoveDown, MoveLeft, MoveRight}
	wantBlank := []int{1, 7, 3, 5}
	for i, child := range children {
		if child.Move != wantMoves[i] {
			t.Errorf("child %d move = %v, want %v", i, child.Move, wantMoves[i])
		}
		if child.BlankIndex != wantBlank[i] {
			t.Errorf("child %d blank index = %d, want %d", i, child.BlankIndex, wantBlank[i])
		}
		if child.Tiles[child.BlankIndex] != 0 {
			t.Errorf("child %d blank index does not point at the blank", i)
		}
	}
}

// TestChildrenDoNotAliasParent tests that a child's tile slice is
// independent of the parent's.
func TestChildrenDoNotAliasParent(t *testing.T) {
	p := mustNew(t, []int{1, 2, 3, 4, 0, 5, 7, 8, 6})
	start := p.Start()
	children := p.Children(start)
	children[0].Tiles[0] = 99
	if start.Tiles[0] != 1 {
		t.Error("child tile slice aliases the parent")
	}
}

// TestMoveReversibility tests that each move followed by its inverse
// restores the original configuration.
func TestMoveReversibility(t *testing.T) {
	inverse := map[Move]Move{
		MoveUp:    MoveDown,
		MoveDown:  MoveUp,
		MoveLeft:  MoveRight,
		MoveRight: MoveLeft,
	}

	p := mustNew(t, []int{1, 2, 3, 4, 0, 5, 7, 8, 6})
	start := p.Start()

	for _, child := range p.Children(start) {
		undone := false
		for _, grandchild := range p.Children(child) {
			if grandchild.Move != inverse[child.Move] {
				continue
			}
			undone = true
			if !grandchild.Equal(start) {
				t.Errorf("%v then %v does not restore the original state",
					child.Move, grandchild.Move)
			}
		}
		if !undone {
			t.Errorf("inverse of %v was not generated", child.Move)
		}
	}
}
