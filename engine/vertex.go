package engine

import (
	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/conv"
)

// vid converts a product-graph vertex id to the uint32 domain
// internal/sparse.SparseSet indexes on. Product vertex ids are allocated
// densely from 0 by package product, so this is always in range for a
// well-formed product graph; a negative or over-large id is a programmer
// error and panics via conv.Uint64ToUint32, not a silent truncation.
func vid(v graph.VertexID) uint32 {
	return conv.Uint64ToUint32(uint64(v))
}
