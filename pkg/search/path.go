package search

import "github.com/tianliu1119/npuzzle-solver/pkg/puzzle"

// reconstructPath walks parent keys from the goal state back through the
// explored registry and returns the start-to-goal sequence inclusive. The
// walk terminates at the start state, whose parent key is empty. Every
// ancestor is guaranteed to be present: the engine inserts a state into
// the explored registry before any of its children can be popped as the
// goal.
func reconstructPath(explored map[string]puzzle.State, goal puzzle.State) []puzzle.State {
	path := []puzzle.State{goal}
	key := goal.ParentKey
	for key != "" {
		parent := explored[key]
		path = append(path, parent)
		key = parent.ParentKey
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
