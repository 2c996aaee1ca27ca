// File: methods_edges.go
// Role: Edge insertion and queries: AddEdge/Edges/Neighbors/HasEdge/Weight/EdgeCount.
//
// Determinism:
//   - Neighbors() returns out-edges in first-insertion order of the target;
//     overwriting a weight keeps the original position.
//
// Concurrency:
//   - Mutations under mu.Lock, queries under mu.RLock.
package core

// AddEdge inserts from and to into the vertex set if absent and sets the weight
// of the directed edge from→to, overwriting any previous weight.
//
// Steps:
//  1. Register both endpoints (idempotent).
//  2. Find or create the out-edge bucket of from.
//  3. First write of (from, to) appends to the neighbor order; later writes only replace the weight.
//
// The reverse edge to→from is never touched. Weight sign is not validated.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddEdge(from, to V, weight float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	out, ok := g.adjacency[from]
	if !ok {
		out = &outgoing[V]{weight: make(map[V]float64)}
		g.adjacency[from] = out
	}
	if _, exists := out.weight[to]; !exists {
		out.order = append(out.order, to)
		g.edgeCount++
	}
	out.weight[to] = weight
}

// Edges returns the outgoing edges of from as neighbor → weight.
// The map is a fresh copy; it is empty (never nil) when from has no
// out-edges or is not a vertex of the graph.
//
// Complexity: O(deg(from))
func (g *Graph[V]) Edges(from V) map[V]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adjacency[from]
	if !ok {
		return map[V]float64{}
	}
	res := make(map[V]float64, len(out.weight))
	for to, w := range out.weight {
		res[to] = w
	}

	return res
}

// Neighbors returns the outgoing edges of from in deterministic order.
// Returns nil for unknown vertices or vertices without out-edges.
//
// Complexity: O(deg(from))
func (g *Graph[V]) Neighbors(from V) []Edge[V] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adjacency[from]
	if !ok {
		return nil
	}
	res := make([]Edge[V], 0, len(out.order))
	for _, to := range out.order {
		res = append(res, Edge[V]{From: from, To: to, Weight: out.weight[to]})
	}

	return res
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph[V]) HasEdge(from, to V) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether that edge exists.
func (g *Graph[V]) Weight(from, to V) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adjacency[from]
	if !ok {
		return 0, false
	}
	w, ok := out.weight[to]

	return w, ok
}

// EdgeCount returns the number of distinct directed edges. O(1).
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
