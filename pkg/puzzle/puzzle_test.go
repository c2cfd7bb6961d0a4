package puzzle

import (
	"errors"
	"testing"
)

// mustNew builds a puzzle or fails the test.
func mustNew(t *testing.T, grid []int) *Puzzle {
	t.Helper()
	p, err := New(grid)
	if err != nil {
		t.Fatalf("failed to construct puzzle: %v", err)
	}
	return p
}

// TestNewValidation tests grid validation at construction time.
func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		grid    []int
		wantErr bool
	}{
		{"valid 3x3", []int{1, 2, 0, 4, 5, 3, 7, 8, 6}, false},
		{"valid 4x4", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}, false},
		{"valid 2x2", []int{1, 2, 3, 0}, false},
		{"empty", nil, true},
		{"not a square", []int{1, 2, 3, 4, 5, 0}, true},
		{"1x1", []int{0}, true},
		{"no blank", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, true},
		{"duplicate tile", []int{1, 1, 2, 3, 4, 5, 6, 7, 0}, true},
		{"two blanks", []int{0, 0, 2, 3, 4, 5, 6, 7, 8}, true},
		{"value out of range", []int{1, 2, 3, 4, 5, 6, 7, 9, 0}, true},
		{"negative value", []int{1, 2, 3, 4, 5, 6, 7, -1, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.grid)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				if !IsInvalidGrid(err) {
					t.Errorf("expected an invalid-grid error, got %v", err)
				}
				var pe *Error
				if !errors.As(err, &pe) {
					t.Errorf("error is not a *puzzle.Error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

// TestAccessors tests geometry accessors and the start state copy.
func TestAccessors(t *testing.T) {
	grid := []int{1, 2, 0, 4, 5, 3, 7, 8, 6}
	p := mustNew(t, grid)

	if p.Size() != 8 {
		t.Errorf("Size() = %d, want 8", p.Size())
	}
	if p.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", p.Dim())
	}

	start := p.Start()
	if start.BlankIndex != 2 {
		t.Errorf("start blank index = %d, want 2", start.BlankIndex)
	}
	if start.Move != MoveStart {
		t.Errorf("start move = %v, want START", start.Move)
	}
	if start.ParentKey != "" {
		t.Errorf("start parent key = %q, want empty", start.ParentKey)
	}

	// Start must hand out an independent copy.
	start.Tiles[0] = 99
	if p.Start().Tiles[0] != 1 {
		t.Error("mutating a returned start state leaked into the puzzle")
	}
}

// TestIsGoal tests goal detection.
func TestIsGoal(t *testing.T) {
	p := mustNew(t, []int{1, 2, 0, 4, 5, 3, 7, 8, 6})

	if p.IsGoal(p.Start()) {
		t.Error("scrambled start reported as goal")
	}
	goal := State{Tiles: []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, BlankIndex: 8}
	if !p.IsGoal(goal) {
		t.Error("goal arrangement not recognized")
	}
}

// TestSolvability tests the parity rule on known instances of both
// parities and both grid dimensions.
func TestSolvability(t *testing.T) {
	tests := []struct {
		name     string
		grid     []int
		solvable bool
	}{
		{"3x3 goal", []int{1, 2, 3, 4, 5, 6, 7, 8, 0}, true},
		{"3x3 two slides out", []int{1, 2, 0, 4, 5, 3, 7, 8, 6}, true},
		{"3x3 hardest", []int{8, 6, 7, 2, 5, 4, 3, 0, 1}, true},
		{"3x3 transposed pair", []int{1, 2, 3, 4, 5, 6, 8, 7, 0}, false},
		{"4x4 goal", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 0}, true},
		{"4x4 three slides out", []int{1, 2, 3, 0, 5, 6, 7, 4, 9, 10, 11, 8, 13, 14, 15, 12}, true},
		{"4x4 transposed pair", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 15, 14, 0}, false},
		{"2x2 solvable", []int{1, 0, 3, 2}, true},
		{"2x2 unsolvable", []int{2, 1, 3, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, tt.grid)
			if p.Solvable() != tt.solvable {
				t.Errorf("Solvable() = %v, want %v", p.Solvable(), tt.solvable)
			}
		})
	}
}
