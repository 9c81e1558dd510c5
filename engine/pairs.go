package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rpqdb/rpqdb/graph"
)

// Pairs is the reachable-pairs result: a mapping from source vertex to the
// set of target vertices reachable under the query's language.
type Pairs map[graph.VertexID]map[graph.VertexID]struct{}

// NewPairs returns an empty Pairs.
func NewPairs() Pairs {
	return make(Pairs)
}

// Add records that t is reachable from s.
func (p Pairs) Add(s, t graph.VertexID) {
	targets, ok := p[s]
	if !ok {
		targets = make(map[graph.VertexID]struct{})
		p[s] = targets
	}
	targets[t] = struct{}{}
}

// Has reports whether t is recorded as reachable from s.
func (p Pairs) Has(s, t graph.VertexID) bool {
	targets, ok := p[s]
	if !ok {
		return false
	}
	_, ok = targets[t]
	return ok
}

// Len returns the total number of (source, target) pairs recorded.
func (p Pairs) Len() int {
	n := 0
	for _, targets := range p {
		n += len(targets)
	}
	return n
}

// Equal reports whether p and other represent the same logical pair set,
// independent of insertion order.
func (p Pairs) Equal(other Pairs) bool {
	if p.Len() != other.Len() {
		return false
	}
	for s, targets := range p {
		otherTargets, ok := other[s]
		if !ok || len(targets) != len(otherTargets) {
			return false
		}
		for t := range targets {
			if _, ok := otherTargets[t]; !ok {
				return false
			}
		}
	}
	return true
}

// Dump renders p as one line per source, "src: t1, t2, …", sorted by source
// and then by target for determinism. Debug/CLI use only.
func (p Pairs) Dump() string {
	sources := make([]graph.VertexID, 0, len(p))
	for s := range p {
		sources = append(sources, s)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	var b strings.Builder
	for _, s := range sources {
		targets := make([]graph.VertexID, 0, len(p[s]))
		for t := range p[s] {
			targets = append(targets, t)
		}
		sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

		parts := make([]string, len(targets))
		for i, t := range targets {
			parts[i] = fmt.Sprintf("%d", t)
		}
		fmt.Fprintf(&b, "%d: %s\n", s, strings.Join(parts, ", "))
	}
	return b.String()
}
