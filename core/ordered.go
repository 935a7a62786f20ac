// File: ordered.go
// Role: insertion-ordered string-keyed store backing the vertex, edge and
//       adjacency catalogs.
//
// Determinism:
//   - Iteration follows first-insertion order of keys.
//   - del keeps the key's slot, so a later set restores it in place; purge
//     forgets the slot entirely.

package core

// ordered is a map that remembers the first-insertion order of its keys.
type ordered[V any] struct {
	keys  []string
	vals  map[string]V
	known map[string]struct{}
}

func newOrdered[V any]() *ordered[V] {
	return &ordered[V]{
		vals:  make(map[string]V),
		known: make(map[string]struct{}),
	}
}

func (o *ordered[V]) set(k string, v V) {
	if _, ok := o.known[k]; !ok {
		o.known[k] = struct{}{}
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *ordered[V]) get(k string) (V, bool) {
	v, ok := o.vals[k]

	return v, ok
}

func (o *ordered[V]) has(k string) bool {
	_, ok := o.vals[k]

	return ok
}

// del removes the value but keeps the ordering slot.
func (o *ordered[V]) del(k string) {
	delete(o.vals, k)
}

// purge removes the value and its ordering slot.
func (o *ordered[V]) purge(k string) {
	if _, ok := o.known[k]; !ok {
		return
	}
	delete(o.vals, k)
	delete(o.known, k)
	for i, key := range o.keys {
		if key == k {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
}

func (o *ordered[V]) len() int { return len(o.vals) }

// each visits live entries in order until fn returns false.
func (o *ordered[V]) each(fn func(k string, v V) bool) {
	for _, k := range o.keys {
		v, ok := o.vals[k]
		if !ok {
			continue
		}
		if !fn(k, v) {
			return
		}
	}
}
