package search

import (
	"container/heap"

	"github.com/tianliu1119/npuzzle-solver/pkg/puzzle"
)

// frontierNode is one pending state in the priority heap.
type frontierNode struct {
	state puzzle.State
	key   string

	// seq is the admission sequence number, used as the tie-break among
	// equal-priority nodes so statistics stay reproducible.
	seq uint64

	// index is maintained by the heap interface.
	index int
}

// frontierHeap orders nodes by ascending total cost f, breaking ties by
// admission order (FIFO among equal f).
type frontierHeap []*frontierNode

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].state.F != h[j].state.F {
		return h[i].state.F < h[j].state.F
	}
	return h[i].seq < h[j].seq
}

func (h frontierHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *frontierHeap) Push(x any) {
	node := x.(*frontierNode)
	node.index = len(*h)
	*h = append(*h, node)
}

func (h *frontierHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return node
}

// frontier is the open set: a cost-ordered heap paired with a key
// registry for duplicate detection. Admission and removal always update
// both structures together so the registry never goes stale.
type frontier struct {
	heap  frontierHeap
	byKey map[string]*frontierNode
	seq   uint64
}

func newFrontier() *frontier {
	f := &frontier{byKey: make(map[string]*frontierNode)}
	heap.Init(&f.heap)
	return f
}

// Admit inserts a state under its canonical key.
func (f *frontier) Admit(s puzzle.State, key string) {
	f.seq++
	node := &frontierNode{state: s, key: key, seq: f.seq}
	heap.Push(&f.heap, node)
	f.byKey[key] = node
}

// Pop removes and returns the minimum-cost state and its key.
func (f *frontier) Pop() (puzzle.State, string) {
	node := heap.Pop(&f.heap).(*frontierNode)
	delete(f.byKey, node.key)
	return node.state, node.key
}

// Contains reports whether a state with the given key is pending.
func (f *frontier) Contains(key string) bool {
	_, ok := f.byKey[key]
	return ok
}

// Len returns the number of pending states.
func (f *frontier) Len() int { return len(f.heap) }
