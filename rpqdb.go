// Package rpqdb evaluates regular path queries (RPQs) over directed
// edge-labeled graphs: given a data graph and a regular expression over its
// label alphabet, it computes the reachable-pairs relation — the set of
// (source, target) vertex pairs joined by a path whose label word matches
// the expression.
//
// Three tightly coupled subsystems do the work: a regex→NFA→DFA pipeline
// (packages regexsyntax and automaton), a synchronous product construction
// intersecting the data graph with the query DFA (package product), and a
// choice of three reachable-pairs evaluators over the product graph
// (package engine).
//
// Basic usage:
//
//	q, err := rpqdb.Compile("ab*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := graph.ReadEdges(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pairs, err := q.Run(context.Background(), g, engine.OSPG)
package rpqdb

import (
	"context"

	"github.com/rpqdb/rpqdb/automaton"
	"github.com/rpqdb/rpqdb/engine"
	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/telemetry"
	"github.com/rpqdb/rpqdb/product"
	"github.com/rpqdb/rpqdb/regexsyntax"
)

// Query is a compiled RPQ: a DFA ready to be intersected with a data graph.
//
// A Query is safe to use concurrently for Product and Run calls, as long as
// no caller mutates the data graphs or product graphs it is handed (package
// product and package engine never mutate their graph arguments).
type Query struct {
	dfa     *automaton.Automaton
	pattern string
}

// Compile compiles a regular expression pattern into a Query, running it
// through C1 (infix→postfix), C2 (Thompson construction) and C3 (subset
// construction).
func Compile(pattern string) (*Query, error) {
	postfix, err := regexsyntax.ToPostfix(pattern)
	if err != nil {
		return nil, err
	}
	nfa, err := automaton.BuildNFA(postfix)
	if err != nil {
		return nil, err
	}
	dfa, err := nfa.DFA()
	if err != nil {
		return nil, err
	}
	return &Query{dfa: dfa, pattern: pattern}, nil
}

// MustCompile compiles pattern and panics if it fails. Useful for patterns
// known to be valid at compile time (e.g. in tests or package-level vars).
func MustCompile(pattern string) *Query {
	q, err := Compile(pattern)
	if err != nil {
		panic("rpqdb: Compile(" + pattern + "): " + err.Error())
	}
	return q
}

// Pattern returns the regex string this Query was compiled from.
func (q *Query) Pattern() string { return q.pattern }

// Product runs C5, the synchronous product construction, intersecting g
// with the query's DFA.
func (q *Query) Product(g *graph.Graph) (*graph.Graph, error) {
	return product.Build(g, q.dfa)
}

// Evaluate runs one of C6/C7/C8 over an already-built product graph pg. Pass
// a *telemetry.Scope to record span counts and durations, or nil to disable
// recording.
func (q *Query) Evaluate(ctx context.Context, pg *graph.Graph, strategy engine.Strategy, scope *telemetry.Scope) (engine.Pairs, error) {
	return engine.Evaluate(ctx, pg, strategy, engine.DefaultConfig(), scope)
}

// Run is the one-shot convenience that chains Product then Evaluate against
// the data graph g.
func (q *Query) Run(ctx context.Context, g *graph.Graph, strategy engine.Strategy) (engine.Pairs, error) {
	pg, err := q.Product(g)
	if err != nil {
		return nil, err
	}
	return q.Evaluate(ctx, pg, strategy, nil)
}
