package gridgraph

import (
	"fmt"
	"strings"
)

// Moves selects which neighboring cells a path may step into.
type Moves int

const (
	// MovesRightDown allows steps to the right and downward only.
	MovesRightDown Moves = iota
	// MovesConn4 allows N, E, S, W.
	MovesConn4
	// MovesConn8 allows N, NE, E, SE, S, SW, W, NW.
	MovesConn8
)

// String returns the configuration name of m.
func (m Moves) String() string {
	switch m {
	case MovesRightDown:
		return "right-down"
	case MovesConn4:
		return "conn4"
	case MovesConn8:
		return "conn8"
	default:
		return fmt.Sprintf("Moves(%d)", int(m))
	}
}

// ParseMoves maps "right-down", "conn4" or "conn8" (case-insensitive) to a Moves value.
func ParseMoves(s string) (Moves, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right-down", "rightdown":
		return MovesRightDown, nil
	case "conn4":
		return MovesConn4, nil
	case "conn8":
		return MovesConn8, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMoves, s)
	}
}

// Cell identifies one matrix position and is the vertex type of ToGraph.
type Cell struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// Moves chooses the allowed steps between cells.
	Moves Moves
}

// DefaultGridOptions returns GridOptions with Moves=MovesRightDown.
func DefaultGridOptions() GridOptions {
	return GridOptions{Moves: MovesRightDown}
}

// GridGraph treats a 2D integer matrix as a graph. It is immutable once built.
// Width and Height define dimensions; CellValues[row][col] holds the input value.
// neighborOffsets is precomputed from Moves as (dRow, dCol) pairs.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Moves           Moves
	neighborOffsets [][2]int
}
