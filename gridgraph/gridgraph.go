package gridgraph

import (
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	var offsets [][2]int
	switch opts.Moves {
	case MovesConn8:
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	case MovesConn4:
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	default:
		offsets = [][2]int{{0, 1}, {1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Moves:           opts.Moves,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether c lies within the grid. O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Value returns the matrix value at c, or 0 when c is out of bounds.
func (gg *GridGraph) Value(c Cell) int {
	if !gg.InBounds(c) {
		return 0
	}

	return gg.CellValues[c.Row][c.Col]
}

// TopLeft returns the first cell, (0,0).
func (gg *GridGraph) TopLeft() Cell { return Cell{} }

// BottomRight returns the last cell, (Height-1, Width-1).
func (gg *GridGraph) BottomRight() Cell { return Cell{Row: gg.Height - 1, Col: gg.Width - 1} }

// NeighborOffsets returns the precomputed (dRow, dCol) move offsets.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// ToGraph converts the grid into a directed weighted core.Graph over Cell.
// For every cell u and allowed move to an in-bounds v, it adds u→v weighted by
// the value of v; the start cell's own value is therefore never on an edge.
// Cells without any move (a 1×1 grid) produce no vertices.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToGraph() *core.Graph[Cell] {
	g := core.NewGraph[Cell]()
	for r := 0; r < gg.Height; r++ {
		for c := 0; c < gg.Width; c++ {
			from := Cell{Row: r, Col: c}
			for _, d := range gg.neighborOffsets {
				to := Cell{Row: r + d[0], Col: c + d[1]}
				if !gg.InBounds(to) {
					continue
				}
				g.AddEdge(from, to, float64(gg.Value(to)))
			}
		}
	}

	return g
}

// PathSum adds up the values of every cell on path, the first one included.
func (gg *GridGraph) PathSum(path []Cell) int {
	sum := 0
	for _, c := range path {
		sum += gg.Value(c)
	}

	return sum
}

// MinPathSum finds the cheapest path from TopLeft to BottomRight and returns
// it with its PathSum. ok is false when the corner is unreachable.
//
// A 1×1 grid is answered directly as the single-cell path; the solver itself
// reports no path when start and destination coincide.
func (gg *GridGraph) MinPathSum(opts ...dijkstra.Option) (path []Cell, sum int, ok bool) {
	start, end := gg.TopLeft(), gg.BottomRight()
	if start == end {
		return []Cell{start}, gg.Value(start), true
	}

	path, ok = dijkstra.Dijkstra(gg.ToGraph(), start, end, opts...)
	if !ok {
		return nil, 0, false
	}

	return path, gg.PathSum(path), true
}
