package dijkstra

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/pqueue"
)

// Dijkstra computes the cheapest path from start to destination in g.
//
// Returns:
//
//   - path: start..destination inclusive, in travel order.
//   - ok:   false when destination is unreachable, unknown, or equal to start.
//
// The run stops as soon as destination is extracted from the queue.
// No error is ever returned; see the package documentation for edge cases.
//
// Complexity: O((V + E) log E) with the heap queue.
func Dijkstra[V comparable](g *core.Graph[V], start, destination V, opts ...Option) ([]V, bool) {
	r := newRunner(g, start, opts)
	r.dest, r.hasDest = destination, true
	r.run()

	return r.result().Path(destination)
}

// Solve runs Dijkstra from start without a destination, exploring until the
// queue is exhausted. The returned Result holds the cost and predecessor of
// every reachable vertex; use Result.Path to extract individual paths.
func Solve[V comparable](g *core.Graph[V], start V, opts ...Option) *Result[V] {
	r := newRunner(g, start, opts)
	r.run()

	return r.result()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	g       *core.Graph[V]           // input graph; read-only here
	log     *slog.Logger             // trace sink
	start   V                        // source vertex
	dest    V                        // destination, valid when hasDest
	hasDest bool                     // whether to stop at dest
	cost    map[V]float64            // vertex → best known cost
	prev    map[V]V                  // vertex → predecessor; absent means none
	visited map[V]bool               // vertex → cost finalized
	pq      pqueue.Queue[V, float64] // frontier, may hold stale duplicates
	stats   Stats
}

func newRunner[V comparable](g *core.Graph[V], start V, opts []Option) *runner[V] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		g = core.NewGraph[V]()
	}
	n := g.VertexCount()

	return &runner[V]{
		g:       g,
		log:     cfg.Logger,
		start:   start,
		cost:    make(map[V]float64, n),
		prev:    make(map[V]V, n),
		visited: make(map[V]bool, n),
		pq:      pqueue.New[V, float64](cfg.Queue),
	}
}

// run initializes the working state and drains the queue.
func (r *runner[V]) run() {
	r.init()
	r.process()
	r.log.Debug("dijkstra: done",
		"extracted", r.stats.Extracted,
		"stale", r.stats.Stale,
		"relaxations", r.stats.Relaxations,
		"max_queue", r.stats.MaxQueueLen)
}

// init sets cost[v] = +Inf for all vertices, cost[start] = 0 and queues start.
func (r *runner[V]) init() {
	inf := math.Inf(1)
	for _, v := range r.g.Vertices() {
		r.cost[v] = inf
	}
	r.cost[r.start] = 0
	r.push(r.start, 0)
}

// process is the main loop. It terminates when the queue is empty or when the
// destination (if any) is extracted.
func (r *runner[V]) process() {
	for {
		u, ok := r.pq.ExtractMin()
		if !ok {
			return
		}
		r.stats.Extracted++

		if r.hasDest && u == r.dest {
			r.log.Debug("dijkstra: destination reached", "vertex", u, "cost", r.cost[u])
			return
		}

		// Lazy decrease-key: an older, costlier copy of a finalized vertex.
		if r.visited[u] {
			r.stats.Stale++
			continue
		}
		r.visited[u] = true
		r.log.Debug("dijkstra: extract", "vertex", u, "cost", r.cost[u])

		r.relax(u)
	}
}

// relax tries to improve the cost of every out-neighbor of u.
// Assumes cost[u] is final.
func (r *runner[V]) relax(u V) {
	base := r.cost[u]
	for _, e := range r.g.Neighbors(u) {
		candidate := base + e.Weight

		current, known := r.cost[e.To]
		if !known {
			current = math.Inf(1)
		}
		if candidate >= current {
			continue
		}

		r.cost[e.To] = candidate
		r.prev[e.To] = u
		r.stats.Relaxations++
		r.log.Debug("dijkstra: relax", "from", u, "to", e.To, "cost", candidate)
		r.push(e.To, candidate)
	}
}

// push inserts v and tracks the queue high-water mark.
func (r *runner[V]) push(v V, prio float64) {
	r.pq.Insert(v, prio)
	if n := r.pq.Len(); n > r.stats.MaxQueueLen {
		r.stats.MaxQueueLen = n
	}
}

// result freezes the working state into a Result.
func (r *runner[V]) result() *Result[V] {
	return &Result[V]{
		start: r.start,
		cost:  r.cost,
		prev:  r.prev,
		stats: r.stats,
	}
}
