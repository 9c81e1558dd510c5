package engine

import (
	"context"

	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/telemetry"
)

// buildBaseRelations derives E_a, E_c and E_b's reverse index from pg: E_a
// and E_c are reflexive seeds on pg's starting and accepting vertices; E_b is
// every product edge, indexed by destination so the semi-naïve driving step
// can fetch predecessors of a delta's targets.
func buildBaseRelations(pg *graph.Graph) (starting []graph.VertexID, accepting []graph.VertexID, ebReverse *relation) {
	cap := uint32(pg.NumVertices())
	if cap == 0 {
		cap = 1
	}

	starting = pg.Starting()
	accepting = pg.Accepting()

	ebReverse = newRelation(cap)
	for _, v := range pg.Vertices() {
		for _, e := range pg.Edges(v) {
			// reverse index: row(dst) holds every src with an edge src->dst
			ebReverse.insert(e.Dst, v)
		}
	}
	return starting, accepting, ebReverse
}

// evaluateSemiNaive implements PG-SN (C7): the semi-naïve fixed-point
// evaluation of R(x,z) :- E_c(x,z). ; R(x,z) :- E_b(x,y), R(y,z). , then
// T(x,zs) = { R[x] : x in E_a }.
func evaluateSemiNaive(ctx context.Context, pg *graph.Graph, scope *telemetry.Scope) (Pairs, error) {
	cap := uint32(pg.NumVertices())
	if cap == 0 {
		cap = 1
	}

	starting, accepting, ebReverse := buildBaseRelations(pg)

	r := newRelation(cap)
	delta := newRelation(cap)
	for _, z := range accepting {
		r.insert(z, z)
		delta.insert(z, z)
	}

	for !delta.isEmpty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stop := scope.Start("seminaive.layer")

		next := newRelation(cap)
		// Driving step: for every (y, z) in delta, every x with an edge
		// x -> y (fetched via the reverse index) derives (x, z), if novel.
		delta.forEach(func(y, z graph.VertexID) {
			preds := ebReverse.row(y)
			preds.Iter(func(xRaw uint32) {
				x := graph.VertexID(xRaw)
				if !r.has(x, z) {
					next.insert(x, z)
				}
			})
		})

		r.absorb(next)
		delta = next
		stop()
	}

	result := NewPairs()
	for _, x := range starting {
		if row, ok := r.rows[x]; ok {
			row.Iter(func(z uint32) {
				result.Add(x, graph.VertexID(z))
			})
		}
	}
	return result, nil
}
