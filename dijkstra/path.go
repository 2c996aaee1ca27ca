package dijkstra

import "github.com/katalvlaran/lvpath/core"

// Path rebuilds the path start..dest by following predecessors back from dest.
//
// It returns (nil, false) when dest has no predecessor. That includes
// dest == start: the start vertex never gets a predecessor.
//
// Complexity: O(path length).
func (r *Result[V]) Path(dest V) ([]V, bool) {
	if _, ok := r.prev[dest]; !ok {
		return nil, false
	}

	path := []V{dest}
	cur := dest
	for cur != r.start {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		// A predecessor chain longer than the table can only come from a cycle,
		// which negative weights are able to create.
		if len(path) > len(r.prev) {
			return nil, false
		}
		path = append(path, p)
		cur = p
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}

// PathCost sums the edge weights along path in g. It returns false if any
// consecutive pair is not an edge of g. Paths of length 0 or 1 cost 0.
func PathCost[V comparable](g *core.Graph[V], path []V) (float64, bool) {
	var total float64
	for i := 1; i < len(path); i++ {
		if g == nil {
			return 0, false
		}
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, false
		}
		total += w
	}

	return total, true
}
