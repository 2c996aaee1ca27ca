// Package gridgraph turns a rectangular matrix of integer cell costs into a
// directed weighted core.Graph, so minimal path sums over the matrix become
// shortest-path queries.
//
// What:
//
//   - Parse reads a comma-separated matrix ("131,673,234\n201,96,342\n...").
//   - GridGraph wraps the matrix and a move set (right/down, 4- or 8-neighbor).
//   - ToGraph emits one vertex per Cell and, for every allowed move u→v, an edge
//     weighted by the value of the cell being entered.
//   - MinPathSum runs dijkstra from the top-left to the bottom-right cell and
//     reports the path with its total, the start cell included.
//
// With MovesRightDown this is the classic "minimal path sum moving only right
// and down" problem; on the 5×5 sample matrix it yields 2427.
//
// Complexity:
//
//   - Parse:      O(W×H).
//   - ToGraph:    O(W×H×d) time and memory, d = moves per cell (2, 4 or 8).
//   - MinPathSum: O(W×H×d × log(W×H×d)) with the heap queue.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadValue:       a field is not an integer (wrapped with row and column).
//   - ErrUnknownMoves:   ParseMoves got an unknown name.
//
// Negative cell values are accepted but break the non-negative weight
// precondition of package dijkstra.
package gridgraph
