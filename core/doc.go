// Package core provides the directed weighted Graph that feeds the
// shortest-path solver in package dijkstra.
//
// The Graph G = (V,E) is generic over its vertex type: any comparable value
// may be a vertex (strings, integers, coordinate structs). Vertices have no
// identity beyond equality.
//
// Behavior:
//
//   - Directed edges only: AddEdge(A, B, w) never implies B→A.
//   - Last-write-wins: re-adding A→B replaces its weight, no accumulation.
//   - Growth only: there is no edge or vertex removal, just Clear.
//   - Deterministic iteration: Vertices() and Neighbors() follow first-insertion order.
//   - No errors: unknown vertices yield empty results.
//   - Weight sign is not validated; the solver assumes non-negative weights.
//
// Core Methods:
//
//	NewGraph[V]() *Graph[V]                // O(1)
//	AddEdge(from, to V, weight float64)    // O(1) amortized
//	Vertices() []V                         // O(V)
//	Edges(from V) map[V]float64            // O(deg)
//	Neighbors(from V) []Edge[V]            // O(deg), ordered
//	HasVertex(v V) bool                    // O(1)
//	HasEdge(from, to V) bool               // O(1)
//	Weight(from, to V) (float64, bool)     // O(1)
//	VertexCount() int, EdgeCount() int     // O(1)
//	Clear()                                // O(1)
//
// Concurrency: every method takes an internal sync.RWMutex, so concurrent
// readers are safe. Mutating while a solver is running is not supported.
package core
