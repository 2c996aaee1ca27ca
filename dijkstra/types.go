package dijkstra

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvpath/pqueue"
)

// Options configures a solver run.
//
// Queue  – priority queue implementation (pqueue.KindHeap by default).
// Logger – receives Debug-level trace of extractions and relaxations.
type Options struct {
	Queue  pqueue.Kind
	Logger *slog.Logger
}

// Option represents a functional option for configuring Dijkstra and Solve.
type Option func(*Options)

// WithQueue selects the priority queue implementation.
func WithQueue(kind pqueue.Kind) Option {
	return func(o *Options) {
		o.Queue = kind
	}
}

// WithLogger routes the solver trace to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the heap queue and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Queue:  pqueue.KindHeap,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Stats counts the work done by one run.
type Stats struct {
	Extracted   int // entries popped from the queue, stale ones included
	Stale       int // popped entries skipped because their vertex was already final
	Relaxations int // successful cost improvements (= queue insertions after the start)
	MaxQueueLen int // high-water mark of the queue length
}

// Result is the terminal state of a run: the best known cost and the
// predecessor of every vertex the run reached.
//
// Result is read-only; its methods are safe for concurrent use.
type Result[V comparable] struct {
	start V
	cost  map[V]float64
	prev  map[V]V
	stats Stats
}

// Start returns the source vertex of the run.
func (r *Result[V]) Start() V { return r.start }

// Stats returns the work counters of the run.
func (r *Result[V]) Stats() Stats { return r.stats }

// Cost returns the best known cost from start to v, or +Inf when v was not
// reached or is not a vertex of the graph.
func (r *Result[V]) Cost(v V) float64 {
	c, ok := r.cost[v]
	if !ok {
		return math.Inf(1)
	}

	return c
}

// Reachable reports whether v has a finite cost. The start vertex is always reachable.
func (r *Result[V]) Reachable(v V) bool {
	return !math.IsInf(r.Cost(v), 1)
}

// Predecessor returns the vertex before v on the best known path, and false
// when v has none (the start, unreachable vertices, unknown vertices).
func (r *Result[V]) Predecessor(v V) (V, bool) {
	p, ok := r.prev[v]

	return p, ok
}

// Costs returns a copy of the cost table, unreachable vertices included as +Inf.
func (r *Result[V]) Costs() map[V]float64 {
	out := make(map[V]float64, len(r.cost))
	for v, c := range r.cost {
		out[v] = c
	}

	return out
}
