// File: methods_vertices.go
// Role: Vertex queries and whole-graph lifecycle.
//
// Determinism:
//   - Vertices() returns vertices in first-insertion order.
//
// Concurrency:
//   - Reads under mu.RLock, Clear under mu.Lock.
package core

// Vertices returns every vertex ever mentioned by AddEdge since the last Clear,
// in first-insertion order. The returned slice is a copy.
//
// Complexity: O(V)
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// HasVertex reports whether v is in the vertex set.
// Complexity: O(1)
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.known[v]

	return ok
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Clear resets the graph to the empty state: no vertices, no edges.
func (g *Graph[V]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = nil
	g.known = make(map[V]struct{})
	g.adjacency = make(map[V]*outgoing[V])
	g.edgeCount = 0
}

// addVertexLocked registers v if missing. Caller holds mu for writing.
func (g *Graph[V]) addVertexLocked(v V) {
	if _, ok := g.known[v]; ok {
		return
	}
	g.known[v] = struct{}{}
	g.vertices = append(g.vertices, v)
}
