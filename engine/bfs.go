package engine

import (
	"context"

	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/sparse"
	"github.com/rpqdb/rpqdb/internal/telemetry"
)

// evaluateBFS implements PG-BFS (C6): for every starting vertex of pg, a
// fresh BFS over pg records every accepting vertex it reaches. There is no
// cross-source memoization; this is the correctness baseline.
func evaluateBFS(ctx context.Context, pg *graph.Graph, scope *telemetry.Scope) (Pairs, error) {
	result := NewPairs()
	cap := uint32(pg.NumVertices())

	for _, s := range pg.Starting() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stop := scope.Start("bfs.source")

		visited := sparse.NewSparseSet(cap)
		visited.Insert(vid(s))
		queue := []graph.VertexID{s}

		if pg.IsAccepting(s) {
			result.Add(s, s)
		}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			for _, e := range pg.Edges(v) {
				if visited.Contains(vid(e.Dst)) {
					continue
				}
				visited.Insert(vid(e.Dst))
				queue = append(queue, e.Dst)
				if pg.IsAccepting(e.Dst) {
					result.Add(s, e.Dst)
				}
			}
		}

		stop()
	}

	return result, nil
}
