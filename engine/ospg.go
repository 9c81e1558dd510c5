package engine

import (
	"context"
	"math"

	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/telemetry"
)

// beta computes the heavy/light degree threshold β = ⌊√|E|⌋ + 1, unless
// overridden by cfg.
func beta(numEdges int, cfg Config) int {
	if cfg.OSPGBetaOverride > 0 {
		return cfg.OSPGBetaOverride
	}
	return int(math.Sqrt(float64(numEdges))) + 1
}

// evaluateOSPG implements OSPG (C8): a bounded semi-naïve fixpoint over R
// that stops materializing a source's row once its degree reaches β (Phase
// 1), a direct light answer from the rows that stayed below β (Phase 2), and
// a forward-chase answer for heavy sources, those whose row reached β
// (Phase 3).
func evaluateOSPG(ctx context.Context, pg *graph.Graph, cfg Config, scope *telemetry.Scope) (Pairs, error) {
	cap := uint32(pg.NumVertices())
	if cap == 0 {
		cap = 1
	}

	b := beta(pg.NumEdges(), cfg)
	starting, accepting, ebReverse := buildBaseRelations(pg)

	acceptSet := make(map[graph.VertexID]struct{}, len(accepting))
	for _, z := range accepting {
		acceptSet[z] = struct{}{}
	}

	// Phase 1: bounded fixpoint of R, capped at degree b per source.
	rLight := newRelation(cap)
	delta := newRelation(cap)
	heavy := make(map[graph.VertexID]struct{})

	for _, z := range accepting {
		if rLight.degree(z) < b {
			rLight.insert(z, z)
			delta.insert(z, z)
		} else {
			heavy[z] = struct{}{}
		}
	}

	for !delta.isEmpty() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stop := scope.Start("ospg.phase1.layer")

		next := newRelation(cap)
		delta.forEach(func(y, z graph.VertexID) {
			preds := ebReverse.row(y)
			preds.Iter(func(xRaw uint32) {
				x := graph.VertexID(xRaw)
				if _, isHeavy := heavy[x]; isHeavy {
					return
				}
				if rLight.has(x, z) {
					return
				}
				if rLight.degree(x)+next.degree(x) >= b {
					heavy[x] = struct{}{}
					return
				}
				next.insert(x, z)
			})
		})

		rLight.absorb(next)
		delta = next
		stop()
	}

	// A row that reached β may be missing pairs that a heavy successor
	// refused to propagate, so it is heavy too.
	for x := range rLight.rows {
		if rLight.degree(x) >= b {
			heavy[x] = struct{}{}
		}
	}

	result := NewPairs()

	// Phase 2: light answer, directly from rLight's rows for starting
	// vertices not flagged heavy.
	for _, x := range starting {
		if _, isHeavy := heavy[x]; isHeavy {
			continue
		}
		if row, ok := rLight.rows[x]; ok {
			row.Iter(func(z uint32) {
				result.Add(x, graph.VertexID(z))
			})
		}
	}

	// Phase 3: forward chase from heavy starting vertices through E_b,
	// intersected with E_c (accepting vertices) at the end.
	heavyStarts := make([]graph.VertexID, 0)
	for _, x := range starting {
		if _, isHeavy := heavy[x]; isHeavy {
			heavyStarts = append(heavyStarts, x)
		}
	}

	if len(heavyStarts) > 0 {
		ebForward := newRelation(cap)
		for _, v := range pg.Vertices() {
			for _, e := range pg.Edges(v) {
				ebForward.insert(v, e.Dst)
			}
		}

		t := newRelation(cap)
		tDelta := newRelation(cap)
		for _, x := range heavyStarts {
			t.insert(x, x)
			tDelta.insert(x, x)
		}

		for !tDelta.isEmpty() {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			stop := scope.Start("ospg.phase3.layer")

			next := newRelation(cap)
			tDelta.forEach(func(x, z graph.VertexID) {
				succ := ebForward.row(z)
				succ.Iter(func(yRaw uint32) {
					y := graph.VertexID(yRaw)
					if !t.has(x, y) {
						next.insert(x, y)
					}
				})
			})

			t.absorb(next)
			tDelta = next
			stop()
		}

		for _, x := range heavyStarts {
			if row, ok := t.rows[x]; ok {
				row.Iter(func(y uint32) {
					if _, ok := acceptSet[graph.VertexID(y)]; ok {
						result.Add(x, graph.VertexID(y))
					}
				})
			}
		}
	}

	return result, nil
}
