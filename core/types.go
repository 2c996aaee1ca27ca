// File: types.go
// Role: Graph and Edge declarations, NewGraph constructor.

package core

import "sync"

// Edge is a directed, weighted connection From→To.
type Edge[V comparable] struct {
	// From is the source vertex.
	From V

	// To is the destination vertex.
	To V

	// Weight is the cost of traversing the edge. Its sign is not validated.
	Weight float64
}

// outgoing holds the out-edges of a single vertex.
// order keeps first-insertion order of neighbors; weight holds the current
// (last written) weight for each neighbor.
type outgoing[V comparable] struct {
	order  []V
	weight map[V]float64
}

// Graph is a directed weighted graph with last-write-wins edges.
//
// Invariants:
//   - every endpoint passed to AddEdge is in the vertex set;
//   - for every ordered pair (from, to) at most one edge exists;
//   - vertices and neighbor lists iterate in first-insertion order.
type Graph[V comparable] struct {
	mu sync.RWMutex // guards every field below

	vertices  []V                // insertion-ordered vertex list
	known     map[V]struct{}     // vertex membership
	adjacency map[V]*outgoing[V] // from → out-edges
	edgeCount int                // number of distinct ordered pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V comparable]() *Graph[V] {
	return &Graph[V]{
		known:     make(map[V]struct{}),
		adjacency: make(map[V]*outgoing[V]),
	}
}
