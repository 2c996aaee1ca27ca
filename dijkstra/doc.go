// Package dijkstra implements single-source shortest paths (Dijkstra's
// algorithm) over a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, start, destination) returns the cheapest path start..destination
//     inclusive, or (nil, false) when there is none. Exploration stops as soon as
//     destination is extracted from the priority queue.
//   - Solve(g, start) runs until the queue is exhausted and returns a Result holding
//     the cost and predecessor of every reachable vertex.
//   - The priority queue is pluggable (WithQueue): the binary heap by default, or the
//     unordered list from package pqueue. Both give the same costs.
//
// Algorithm:
//
//  1. cost[v] = +Inf for every vertex, cost[start] = 0, no predecessors.
//  2. Insert start with priority 0.
//  3. Extract the minimum u. Stop if the queue is empty or u is the destination.
//     Skip u if it was already finalized (a stale duplicate).
//  4. For every edge u→v with weight w: if cost[u]+w < cost[v], record the new cost,
//     set predecessor[v] = u and insert v with that priority.
//  5. Rebuild the path by following predecessors back from the destination, then reverse.
//
// Decrease-key is lazy: step 4 inserts a fresh entry instead of adjusting an old one,
// so the queue holds at most one entry per successful relaxation.
//
// Edge cases:
//
//   - Unreachable vertices keep cost +Inf and yield (nil, false).
//   - start == destination yields (nil, false): start never receives a predecessor,
//     and the path check requires one. This is the established behavior and is pinned
//     by tests; use Result.Cost(start) == 0 for the trivial case.
//   - A nil graph behaves like an empty graph.
//   - Negative weights are not detected. They are a precondition violation and may
//     produce non-shortest paths.
//
// Complexity (heap queue):
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E), the queue holding up to one entry per relaxation.
//
// With the list queue each extraction is O(E) instead.
//
// Thread safety: a run owns its working state and reads the graph through its
// locked accessors. Mutating the graph during a run is not supported.
package dijkstra
