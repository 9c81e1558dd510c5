// Package graph implements the labeled directed multigraph model (C4): the
// data graph an RPQ is evaluated over, and the product graph C5 builds from
// it. Both use the same Graph type.
package graph

import (
	"fmt"
	"sort"
	"strings"
)

// VertexID identifies a vertex. Data-graph vertex ids come from the input
// file; product-graph vertex ids are densely allocated starting at 0 by
// package product, which lets package engine reuse internal/sparse.SparseSet
// for visited sets and relation rows instead of a general hash set.
type VertexID int64

// Edge is one outgoing transition: a label and a destination vertex.
type Edge struct {
	Label string
	Dst   VertexID
}

// Graph is a labeled directed multigraph: adjacency from source vertex to an
// ordered sequence of outgoing edges, plus the set of vertices seen and the
// (optional) starting and accepting subsets used by RPQ evaluation.
//
// Edges are not deduplicated; parallel edges with the same label between the
// same pair of vertices are permitted and preserved.
type Graph struct {
	adjacency map[VertexID][]Edge
	vertices  map[VertexID]struct{}
	starting  map[VertexID]struct{}
	accepting map[VertexID]struct{}
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[VertexID][]Edge),
		vertices:  make(map[VertexID]struct{}),
		starting:  make(map[VertexID]struct{}),
		accepting: make(map[VertexID]struct{}),
	}
}

// AddEdge appends a labeled edge from src to dst, recording both endpoints in
// the vertex set.
func (g *Graph) AddEdge(src VertexID, label string, dst VertexID) {
	g.adjacency[src] = append(g.adjacency[src], Edge{Label: label, Dst: dst})
	g.vertices[src] = struct{}{}
	g.vertices[dst] = struct{}{}
}

// SetStarting marks v as a starting vertex. v need not already be present in
// the vertex set (useful for the labelled-graph variant, which discovers
// starting/accepting vertices before it has seen every edge).
func (g *Graph) SetStarting(v VertexID) {
	g.starting[v] = struct{}{}
	g.vertices[v] = struct{}{}
}

// SetAccepting marks v as an accepting vertex.
func (g *Graph) SetAccepting(v VertexID) {
	g.accepting[v] = struct{}{}
	g.vertices[v] = struct{}{}
}

// Edges returns the outgoing edges of v, or nil if v has none.
func (g *Graph) Edges(v VertexID) []Edge {
	return g.adjacency[v]
}

// NumVertices returns the number of distinct vertices seen.
func (g *Graph) NumVertices() int {
	return len(g.vertices)
}

// NumEdges returns the total number of edges across all vertices.
func (g *Graph) NumEdges() int {
	n := 0
	for _, edges := range g.adjacency {
		n += len(edges)
	}
	return n
}

// HasVertex reports whether v has been seen, either as an edge endpoint or
// via SetStarting/SetAccepting.
func (g *Graph) HasVertex(v VertexID) bool {
	_, ok := g.vertices[v]
	return ok
}

// Vertices returns every vertex in the graph, in ascending order.
func (g *Graph) Vertices() []VertexID {
	out := make([]VertexID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Starting returns the starting vertex set, in ascending order.
func (g *Graph) Starting() []VertexID {
	return sortedKeys(g.starting)
}

// Accepting returns the accepting vertex set, in ascending order.
func (g *Graph) Accepting() []VertexID {
	return sortedKeys(g.accepting)
}

// IsStarting reports whether v is a starting vertex.
func (g *Graph) IsStarting(v VertexID) bool {
	_, ok := g.starting[v]
	return ok
}

// IsAccepting reports whether v is an accepting vertex.
func (g *Graph) IsAccepting(v VertexID) bool {
	_, ok := g.accepting[v]
	return ok
}

func sortedKeys(m map[VertexID]struct{}) []VertexID {
	out := make([]VertexID, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// String returns a compact human-readable summary of the graph.
func (g *Graph) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Graph{vertices: %d, edges: %d, starting: %d, accepting: %d}",
		g.NumVertices(), g.NumEdges(), len(g.starting), len(g.accepting))
	return b.String()
}
