package product

import (
	"testing"

	"github.com/rpqdb/rpqdb/automaton"
	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/regexsyntax"
)

func compileDFA(t *testing.T, pattern string) *automaton.Automaton {
	t.Helper()
	postfix, err := regexsyntax.ToPostfix(pattern)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", pattern, err)
	}
	nfa, err := automaton.BuildNFA(postfix)
	if err != nil {
		t.Fatalf("BuildNFA(%q): %v", pattern, err)
	}
	d, err := nfa.DFA()
	if err != nil {
		t.Fatalf("DFA(%q): %v", pattern, err)
	}
	return d
}

func TestBuildRejectsNonDFA(t *testing.T) {
	nfa := automaton.New()
	s0 := nfa.AddState(false)
	s1 := nfa.AddState(true)
	nfa.SetStart(s0)
	nfa.AddTransition(s0, automaton.Epsilon, s1)

	g := graph.New()
	_, err := Build(g, nfa)
	if err == nil {
		t.Fatal("expected error building a product from a non-DFA automaton")
	}
	var be *automaton.BuildError
	if be, _ = err.(*automaton.BuildError); be == nil || be.Kind != automaton.ErrNotDFA {
		t.Fatalf("expected ErrNotDFA, got %v", err)
	}
}

func TestBuildSimpleChain(t *testing.T) {
	d := compileDFA(t, "ab*c")

	g := graph.New()
	g.AddEdge(0, "a", 1)
	g.AddEdge(1, "b", 1)
	g.AddEdge(1, "c", 2)

	pg, err := Build(g, d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(pg.Starting()) != g.NumVertices() {
		t.Errorf("expected every data-graph vertex to seed a starting product vertex, got %d starting for %d vertices",
			len(pg.Starting()), g.NumVertices())
	}
	if len(pg.Accepting()) == 0 {
		t.Error("expected at least one accepting product vertex")
	}
}

func TestBuildEmptyGraph(t *testing.T) {
	d := compileDFA(t, "a")
	g := graph.New()
	pg, err := Build(g, d)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if pg.NumVertices() != 0 {
		t.Errorf("expected empty product graph for empty data graph, got %d vertices", pg.NumVertices())
	}
}

func TestBuildDoesNotMutateInputs(t *testing.T) {
	d := compileDFA(t, "ab*c")
	beforeStates := d.NumStates()

	g := graph.New()
	g.AddEdge(0, "a", 1)
	g.AddEdge(1, "b", 1)
	g.AddEdge(1, "c", 2)
	beforeEdges := g.NumEdges()

	if _, err := Build(g, d); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if d.NumStates() != beforeStates {
		t.Error("expected Build to leave the DFA unmutated")
	}
	if g.NumEdges() != beforeEdges {
		t.Error("expected Build to leave the data graph unmutated")
	}
}
