package store

import "sort"

type pair struct {
	a, b int64
}

// canonical orders an undirected pair so that a <= b.
func canonical(x, y int64) pair {
	if x > y {
		x, y = y, x
	}
	return pair{a: x, b: y}
}

// relation is a many-to-many index from a to b with a value per edge. It keeps
// an inverted map so lookups from either side cost O(degree).
type relation[V any] struct {
	edges map[pair]V
	fwd   map[int64]map[int64]struct{}
	inv   map[int64]map[int64]struct{}
}

func newRelation[V any]() *relation[V] {
	return &relation[V]{
		edges: make(map[pair]V),
		fwd:   make(map[int64]map[int64]struct{}),
		inv:   make(map[int64]map[int64]struct{}),
	}
}

// put stores the edge and reports whether it did not exist before.
func (r *relation[V]) put(a, b int64, v V) bool {
	k := pair{a, b}
	_, existed := r.edges[k]
	r.edges[k] = v
	if existed {
		return false
	}
	link(r.fwd, a, b)
	link(r.inv, b, a)
	return true
}

func (r *relation[V]) get(a, b int64) (V, bool) {
	v, ok := r.edges[pair{a, b}]
	return v, ok
}

func (r *relation[V]) has(a, b int64) bool {
	_, ok := r.edges[pair{a, b}]
	return ok
}

// remove deletes the edge and reports whether it existed.
func (r *relation[V]) remove(a, b int64) bool {
	k := pair{a, b}
	if _, ok := r.edges[k]; !ok {
		return false
	}
	delete(r.edges, k)
	unlink(r.fwd, a, b)
	unlink(r.inv, b, a)
	return true
}

// from returns every b linked from a, ascending.
func (r *relation[V]) from(a int64) []int64 {
	return sortedKeys(r.fwd[a])
}

// to returns every a linking to b, ascending.
func (r *relation[V]) to(b int64) []int64 {
	return sortedKeys(r.inv[b])
}

// removeTo drops every edge ending at b.
func (r *relation[V]) removeTo(b int64) {
	for _, a := range r.to(b) {
		r.remove(a, b)
	}
}

// removeFrom drops every edge starting at a.
func (r *relation[V]) removeFrom(a int64) {
	for _, b := range r.from(a) {
		r.remove(a, b)
	}
}

func (r *relation[V]) len() int {
	return len(r.edges)
}

// each visits edges ordered by (a, b).
func (r *relation[V]) each(fn func(a, b int64, v V)) {
	keys := make([]pair, 0, len(r.edges))
	for k := range r.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})
	for _, k := range keys {
		fn(k.a, k.b, r.edges[k])
	}
}

func link(m map[int64]map[int64]struct{}, x, y int64) {
	set, ok := m[x]
	if !ok {
		set = make(map[int64]struct{})
		m[x] = set
	}
	set[y] = struct{}{}
}

func unlink(m map[int64]map[int64]struct{}, x, y int64) {
	set, ok := m[x]
	if !ok {
		return
	}
	delete(set, y)
	if len(set) == 0 {
		delete(m, x)
	}
}

func sortedKeys(set map[int64]struct{}) []int64 {
	if len(set) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
