package rpqdb

import (
	"context"
	"testing"

	"github.com/rpqdb/rpqdb/engine"
	"github.com/rpqdb/rpqdb/graph"
)

func TestCompileAndRun(t *testing.T) {
	q, err := Compile("ab*c")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}

	g := graph.New()
	g.AddEdge(0, "a", 1)
	g.AddEdge(1, "b", 1)
	g.AddEdge(1, "c", 2)

	pairs, err := q.Run(context.Background(), g, engine.BFS)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if pairs.Len() == 0 {
		t.Error("expected at least one reachable pair")
	}
}

func TestCompileInvalidPattern(t *testing.T) {
	if _, err := Compile("a+"); err == nil {
		t.Error("expected error compiling an unsupported quantifier")
	}
	if _, err := Compile("("); err == nil {
		t.Error("expected error compiling an unmatched paren")
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustCompile to panic on an invalid pattern")
		}
	}()
	MustCompile("a?")
}

func TestRunStrategiesAgree(t *testing.T) {
	q := MustCompile("ab*c")
	g := graph.New()
	g.AddEdge(0, "a", 1)
	g.AddEdge(1, "b", 1)
	g.AddEdge(1, "c", 2)

	bfs, err := q.Run(context.Background(), g, engine.BFS)
	if err != nil {
		t.Fatalf("Run(BFS): %v", err)
	}
	sn, err := q.Run(context.Background(), g, engine.SemiNaive)
	if err != nil {
		t.Fatalf("Run(SemiNaive): %v", err)
	}
	if !bfs.Equal(sn) {
		t.Errorf("BFS and SemiNaive disagree: %v vs %v", bfs, sn)
	}
}
