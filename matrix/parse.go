// File: parse.go
// Role: adjacency-matrix text → core.Graph.
// Format:
//   - One row per line, cells split by Options.Separator, blank lines skipped.
//   - N rows of N cells; vertex i is "i" labelled "Vi" (1-based).
//   - Cell (i, j) with i < j is the weight of edge i–j; 0 means no edge.
//   - Negative cells are rejected anywhere. Otherwise the diagonal is
//     ignored and the lower triangle only matters under WithStrictSymmetry.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cetusw/g-loc/core"
)

// Parse builds a graph from the textual matrix in text.
func Parse(text string, opts ...Option) (*core.Graph, error) {
	return ParseReader(strings.NewReader(text), opts...)
}

// ParseReader builds a graph from a textual matrix read from r.
// On any error no graph is returned.
//
// Errors:
//   - ErrOptionViolation, ErrEmptyMatrix, ErrNonSquare, ErrBadValue,
//     ErrNaNInf, ErrNegativeWeight, ErrAsymmetry; read errors are wrapped.
func ParseReader(r io.Reader, opts ...Option) (*core.Graph, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	rows, err := readRows(r, o.Separator)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, i+1, len(row), n)
		}
		for j, w := range row {
			if w < 0 {
				return nil, fmt.Errorf("%w: %g at [%d,%d]", ErrNegativeWeight, w, i+1, j+1)
			}
		}
	}

	g := core.NewGraph()
	for i := 1; i <= n; i++ {
		id := strconv.Itoa(i)
		if err = g.AddVertexID(id, "V"+id); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := rows[i][j]
			if o.StrictSymmetry && rows[j][i] != w {
				return nil, fmt.Errorf("%w: [%d,%d]=%g but [%d,%d]=%g",
					ErrAsymmetry, i+1, j+1, w, j+1, i+1, rows[j][i])
			}
			if w > 0 {
				g.AddEdge(strconv.Itoa(i+1), strconv.Itoa(j+1), w)
			}
		}
	}
	g.UpdateVertexDegrees()

	return g, nil
}

// Line buffer bounds for readRows.
const (
	initialLineBytes = 64 * 1024
	maxLineBytes     = 16 * 1024 * 1024
)

// readRows scans r into numeric rows.
func readRows(r io.Reader, sep string) ([][]float64, error) {
	var rows [][]float64
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialLineBytes), maxLineBytes)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		cells := strings.Split(text, sep)
		row := make([]float64, len(cells))
		for j, cell := range cells {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d cell %d: %q", ErrBadValue, line, j+1, cell)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d cell %d", ErrNaNInf, line, j+1)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d longer than %d bytes", ErrBadValue, line+1, maxLineBytes)
		}
		return nil, fmt.Errorf("matrix: read: %w", err)
	}

	return rows, nil
}
