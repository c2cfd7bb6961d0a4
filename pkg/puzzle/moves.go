package puzzle

// Children generates the successor states of s by sliding the blank in
// each feasible direction, always in UP, DOWN, LEFT, RIGHT order. That
// order is the canonical tie-break feeding the search frontier and must
// not change. Each child carries the parent's path metadata untouched;
// the search engine assigns g, h, f and the parent key.
func (p *Puzzle) Children(s State) []State {
	row := s.BlankIndex / p.dim
	col := s.BlankIndex % p.dim

	children := make([]State, 0, 4)

	if row > 0 {
		children = append(children, p.slide(s, -p.dim, MoveUp))
	}
	if row < p.dim-1 {
		children = append(children, p.slide(s, p.dim, MoveDown))
	}
	if col > 0 {
		children = append(children, p.slide(s, -1, MoveLeft))
	}
	if col < p.dim-1 {
		children = append(children, p.slide(s, 1, MoveRight))
	}

	return children
}

// slide returns a copy of s with the blank swapped against the tile at
// BlankIndex+offset.
func (p *Puzzle) slide(s State, offset int, move Move) State {
	child := s.clone()
	target := child.BlankIndex + offset
	child.Tiles[child.BlankIndex] = child.Tiles[target]
	child.Tiles[target] = 0
	child.BlankIndex = target
	child.Move = move
	return child
}
