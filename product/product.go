// Package product implements the synchronous product construction (C5):
// intersecting a data graph with a query DFA to produce a product graph
// whose reachability answers the original RPQ.
package product

import (
	"github.com/rpqdb/rpqdb/automaton"
	"github.com/rpqdb/rpqdb/graph"
)

// pairKey canonicalizes a (DFA state, data-graph vertex) pair for the
// construction-time hash index, discarded once Build returns.
type pairKey struct {
	d automaton.StateID
	v graph.VertexID
}

// Build runs the synchronous product construction (C5) of the data graph g
// against the query DFA d, and returns the resulting product graph.
//
// Every vertex of g is seeded as a potential RPQ source: the frontier starts
// at {(d.Start(), v) : v ∈ g.Vertices()}, and a product vertex is marked
// starting unconditionally (callers wanting per-source queries filter the
// result's Starting() set afterward). A product vertex is marked accepting
// iff its DFA component is accepting.
//
// Build does not mutate d or g. d must satisfy d.IsDFA(); otherwise Build
// returns a *automaton.BuildError of kind automaton.ErrNotDFA.
func Build(g *graph.Graph, d *automaton.Automaton) (*graph.Graph, error) {
	if !d.IsDFA() {
		return nil, &automaton.BuildError{Kind: automaton.ErrNotDFA, Message: "product.Build requires a deterministic automaton"}
	}

	pg := graph.New()
	ids := make(map[pairKey]graph.VertexID)
	var next graph.VertexID

	type queued struct {
		d automaton.StateID
		v graph.VertexID
	}
	var queue []queued

	idOf := func(d automaton.StateID, v graph.VertexID) (graph.VertexID, bool) {
		key := pairKey{d: d, v: v}
		id, ok := ids[key]
		return id, ok
	}

	seed := func(dState automaton.StateID, v graph.VertexID) graph.VertexID {
		key := pairKey{d: dState, v: v}
		id := next
		next++
		ids[key] = id
		pg.SetStarting(id)
		if d.IsAccepting(dState) {
			pg.SetAccepting(id)
		}
		queue = append(queue, queued{d: dState, v: v})
		return id
	}

	for _, v := range g.Vertices() {
		seed(d.Start(), v)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		curID, ok := idOf(cur.d, cur.v)
		if !ok {
			continue
		}

		dState := d.State(cur.d)
		if dState == nil {
			continue
		}

		for _, dTr := range dState.Transitions() {
			for _, gEdge := range g.Edges(cur.v) {
				if gEdge.Label != string(dTr.Label) {
					continue
				}
				targetD := dTr.Target
				targetV := gEdge.Dst

				targetID, exists := idOf(targetD, targetV)
				if !exists {
					targetID = next
					next++
					ids[pairKey{d: targetD, v: targetV}] = targetID
					if d.IsAccepting(targetD) {
						pg.SetAccepting(targetID)
					}
					queue = append(queue, queued{d: targetD, v: targetV})
				}

				pg.AddEdge(curID, string(dTr.Label), targetID)
			}
		}
	}

	return pg, nil
}
