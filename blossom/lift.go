// File: lift.go
// Role: blossom base detection, contraction snapshots and path lifting.
// AI-HINT (file):
//   - All helpers are pure with respect to their inputs: contraction works
//     on a Clone and a matching Clone, lifting builds a fresh slice.
//   - A rotated cycle c has c[0] = base; its matched edges are
//     (c1,c2), (c3,c4), …, (c[k-2],c[k-1]).

package blossom

import (
	"fmt"

	"github.com/cetusw/g-loc/core"
	"github.com/cetusw/g-loc/matching"
)

// matchedBetween reports whether some edge of g linking a and b is in m.
func matchedBetween(g *core.Graph, m *matching.Matching, a, b string) bool {
	for _, e := range g.EdgesBetween(a, b) {
		if m.Contains(e) {
			return true
		}
	}

	return false
}

// findBase returns the unique cycle vertex whose two cycle edges are both
// unmatched. The cycle is closed: its last vertex links back to the first.
func findBase(g *core.Graph, m *matching.Matching, cycle []string) (string, error) {
	k := len(cycle)
	base, found := "", 0
	for i, cur := range cycle {
		prev := cycle[(i-1+k)%k]
		next := cycle[(i+1)%k]
		if !matchedBetween(g, m, prev, cur) && !matchedBetween(g, m, cur, next) {
			base = cur
			found++
		}
	}
	if found != 1 {
		return "", fmt.Errorf("%w: blossom %v has %d base candidates", ErrInvariantViolation, cycle, found)
	}

	return base, nil
}

// rotate returns cycle reordered to start at base, keeping cyclic order.
func rotate(cycle []string, base string) []string {
	out := make([]string, 0, len(cycle))
	for i, v := range cycle {
		if v == base {
			out = append(out, cycle[i:]...)
			out = append(out, cycle[:i]...)
			return out
		}
	}

	return append(out, cycle...)
}

// contract builds the snapshot in which every non-base cycle vertex is
// merged into base. Matching edges touching merged vertices are dropped.
func contract(g *core.Graph, m *matching.Matching, cycle []string, base string) (*core.Graph, *matching.Matching, error) {
	gc := g.Clone()
	mc := m.Clone()
	for _, v := range cycle {
		if v == base {
			continue
		}
		if err := gc.Contract(base, v); err != nil {
			return nil, nil, fmt.Errorf("blossom: contract %s into %s: %w", v, base, err)
		}
		mc.RemoveIncidentEdge(v)
	}

	return gc, mc, nil
}

// liftFrom returns the even-length alternating walk inside the blossom from
// the base c[0] to the first cycle vertex adjacent to q. The walk ends on a
// matched cycle edge (or is just the base), so the edge towards q that
// follows it is free to be unmatched.
func liftFrom(g *core.Graph, c []string, q string) ([]string, error) {
	k := len(c)
	for i, x := range c {
		if !g.ExistEdge(x, q) {
			continue
		}
		if i%2 == 0 {
			return append([]string(nil), c[:i+1]...), nil
		}
		out := []string{c[0]}
		for j := k - 1; j >= i; j-- {
			out = append(out, c[j])
		}
		return out, nil
	}

	return nil, fmt.Errorf("%w: stem vertex %s is not attached to blossom %v", ErrInvariantViolation, q, c)
}

// lift expands the contracted vertex b of path back into the blossom
// rotated so that rotated[0] == b.
//
// Implementation:
//   - Stage 1: Split path around b into left and right stems.
//   - Stage 2: b at an end: it was exposed, so walk from the base to the
//     vertex adjacent to the single stem.
//   - Stage 3: b in the middle: the stem whose edge to the base is matched
//     keeps the base; the other stem attaches through the lifted walk.
func lift(g *core.Graph, m *matching.Matching, rotated, path []string, b string) ([]string, error) {
	idx := -1
	for i, v := range path {
		if v == b {
			idx = i
			break
		}
	}
	if idx < 0 {
		return path, nil
	}
	if len(path) < 2 {
		return nil, fmt.Errorf("%w: path %v too short to lift", ErrInvariantViolation, path)
	}
	left := path[:idx]
	right := path[idx+1:]

	out := make([]string, 0, len(path)+len(rotated))
	switch {
	case len(left) == 0:
		walk, err := liftFrom(g, rotated, right[0])
		if err != nil {
			return nil, err
		}
		out = append(out, walk...)
		out = append(out, right...)

	case len(right) == 0:
		walk, err := liftFrom(g, rotated, left[len(left)-1])
		if err != nil {
			return nil, err
		}
		out = append(out, left...)
		out = append(out, reversed(walk)...)

	case matchedBetween(g, m, b, left[len(left)-1]):
		walk, err := liftFrom(g, rotated, right[0])
		if err != nil {
			return nil, err
		}
		out = append(out, left...)
		out = append(out, walk...)
		out = append(out, right...)

	case matchedBetween(g, m, b, right[0]):
		walk, err := liftFrom(g, rotated, left[len(left)-1])
		if err != nil {
			return nil, err
		}
		out = append(out, left...)
		out = append(out, reversed(walk)...)
		out = append(out, right...)

	default:
		return nil, fmt.Errorf("%w: blossom base %s has no matched stem in %v", ErrInvariantViolation, b, path)
	}

	return out, nil
}

func reversed(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
