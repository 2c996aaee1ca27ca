// Package lvpath is an in-memory weighted-graph shortest-path engine.
//
// What is inside:
//
//   - core/      — generic directed weighted Graph (last-write-wins edges, deterministic iteration)
//   - pqueue/    — min-priority queues behind one contract: unordered List and binary Heap
//   - dijkstra/  — single-source Dijkstra with optional early exit and path backtracking
//   - gridgraph/ — integer matrix → Graph conversion for minimal path sum problems
//   - cmd/minpath — command-line solver for matrix files
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 1)
//	g.AddEdge("A", "C", 10)
//	path, ok := dijkstra.Dijkstra(g, "A", "C") // [A B C] true
//
// Edge weights are assumed non-negative; they are not validated.
//
//	go get github.com/katalvlaran/lvpath
package lvpath
