package engine

import (
	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/sparse"
)

// relation is a mapping from vertex id to a set of vertex ids, the shape
// shared by E_a, E_c, E_b's indexes, R, T and their deltas. Rows are backed
// by internal/sparse.SparseSet, reused here exactly as it is reused for
// ε-closure and BFS visited sets.
type relation struct {
	rows     map[graph.VertexID]*sparse.SparseSet
	capacity uint32 // capacity each row is allocated with
}

func newRelation(capacity uint32) *relation {
	if capacity == 0 {
		capacity = 1
	}
	return &relation{rows: make(map[graph.VertexID]*sparse.SparseSet), capacity: capacity}
}

// row returns the row for x, allocating an empty one if absent.
func (r *relation) row(x graph.VertexID) *sparse.SparseSet {
	row, ok := r.rows[x]
	if !ok {
		row = sparse.NewSparseSet(r.capacity)
		r.rows[x] = row
	}
	return row
}

// has reports whether (x, z) is present without allocating a row for x.
func (r *relation) has(x graph.VertexID, z graph.VertexID) bool {
	row, ok := r.rows[x]
	if !ok {
		return false
	}
	return row.Contains(vid(z))
}

// insert adds (x, z), allocating x's row if needed. Reports whether the pair
// was newly added (false if it was already present).
func (r *relation) insert(x, z graph.VertexID) bool {
	row := r.row(x)
	if row.Contains(vid(z)) {
		return false
	}
	row.Insert(vid(z))
	return true
}

// degree returns the number of targets recorded for x.
func (r *relation) degree(x graph.VertexID) int {
	row, ok := r.rows[x]
	if !ok {
		return 0
	}
	return row.Len()
}

// absorb merges delta's rows into r in place: a per-key SparseSet.Union,
// since there is no cheap move-append across two maps of sparse sets.
func (r *relation) absorb(delta *relation) {
	for x, drow := range delta.rows {
		r.row(x).Union(drow)
	}
}

// isEmpty reports whether every row of r is empty.
func (r *relation) isEmpty() bool {
	for _, row := range r.rows {
		if !row.IsEmpty() {
			return false
		}
	}
	return true
}

// forEach calls f once per (x, z) pair in r. Iteration order is unspecified.
func (r *relation) forEach(f func(x, z graph.VertexID)) {
	for x, row := range r.rows {
		row.Iter(func(z uint32) {
			f(x, graph.VertexID(z))
		})
	}
}
