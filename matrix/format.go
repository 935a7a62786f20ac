package matrix

import (
	"strconv"
	"strings"

	"github.com/cetusw/g-loc/core"
)

// Format renders g as a symmetric matrix in vertex insertion order, one row
// per line. Parallel edges collapse to the first one between a pair.
// Parsing the output of a graph with IDs "1".."N" yields the same edges.
func Format(g *core.Graph, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrGraphNil
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return "", err
	}

	ids := g.VertexIDs()
	var sb strings.Builder
	cells := make([]string, len(ids))
	for _, a := range ids {
		for j, b := range ids {
			cells[j] = "0"
			if e := g.GetEdge(a, b); e != nil {
				cells[j] = strconv.FormatFloat(e.Weight, 'f', -1, 64)
			}
		}
		sb.WriteString(strings.Join(cells, o.Separator))
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}
