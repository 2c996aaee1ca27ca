package gridgraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single matrix row; large enough for thousands of columns.
const maxLineBytes = 1 << 20

// Parse reads a comma-separated integer matrix, one row per line.
// Blank lines are skipped and whitespace around fields is ignored.
// It does not check that rows have equal length; NewGridGraph does.
//
// Errors: ErrEmptyGrid for input without rows, ErrBadValue (wrapped with
// 1-based row and column) for a non-integer field, or the reader's error.
func Parse(r io.Reader) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]int
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Split(text, ",")
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadValue, line, i+1, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridgraph: read matrix: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	return rows, nil
}

// Load parses r and builds a GridGraph from it.
func Load(r io.Reader, opts GridOptions) (*GridGraph, error) {
	values, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return NewGridGraph(values, opts)
}
