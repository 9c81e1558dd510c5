package automaton

import (
	"testing"

	"github.com/rpqdb/rpqdb/regexsyntax"
)

// runDFA simulates d (assumed to satisfy IsDFA) over s, following the
// single matching transition at each step.
func runDFA(d *Automaton, s string) bool {
	cur := d.Start()
	for i := 0; i < len(s); i++ {
		st := d.State(cur)
		if st == nil {
			return false
		}
		next := InvalidState
		for _, tr := range st.Transitions() {
			if tr.Label == Label(s[i]) {
				next = tr.Target
				break
			}
		}
		if next == InvalidState {
			return false
		}
		cur = next
	}
	return d.IsAccepting(cur)
}

func buildDFAFor(t *testing.T, pattern string) *Automaton {
	t.Helper()
	nfa := compileNFA(t, pattern)
	d, err := nfa.DFA()
	if err != nil {
		t.Fatalf("DFA(%q): %v", pattern, err)
	}
	if !d.IsDFA() {
		t.Fatalf("DFA(%q) result does not satisfy IsDFA", pattern)
	}
	return d
}

// TestDFAEquivalence checks that, for every pattern and every test string,
// the DFA agrees with direct NFA simulation.
func TestDFAEquivalence(t *testing.T) {
	patterns := []string{"a", "ab", "a|b", "b*", "ab*c", "a(b|c)*d", "a|b|c"}
	strings := []string{"", "a", "b", "c", "ab", "ac", "abc", "abbbc", "acd", "abd", "abcbcd", "x"}

	for _, p := range patterns {
		nfa := compileNFA(t, p)
		d, err := nfa.DFA()
		if err != nil {
			t.Fatalf("DFA(%q): %v", p, err)
		}
		for _, s := range strings {
			want := accepts(nfa, s)
			got := runDFA(d, s)
			if want != got {
				t.Errorf("pattern %q, string %q: NFA accepts=%v, DFA accepts=%v", p, s, want, got)
			}
		}
	}
}

func TestDFAIsCachedAndIdempotent(t *testing.T) {
	nfa := compileNFA(t, "a(b|c)*d")
	d1, err := nfa.DFA()
	if err != nil {
		t.Fatalf("DFA: %v", err)
	}
	d2, err := nfa.DFA()
	if err != nil {
		t.Fatalf("DFA: %v", err)
	}
	if d1 != d2 {
		t.Error("expected second DFA() call to return the cached instance")
	}
}

func TestDFACacheInvalidatedByMutation(t *testing.T) {
	// "ab" has an ε-transition, so its NFA is not already a DFA and DFA()
	// goes through the cache rather than returning the NFA itself.
	nfa := compileNFA(t, "ab")
	d1, err := nfa.DFA()
	if err != nil {
		t.Fatalf("DFA: %v", err)
	}

	extra := nfa.AddState(true)
	nfa.AddTransition(nfa.Start(), Label("x"), extra)

	d2, err := nfa.DFA()
	if err != nil {
		t.Fatalf("DFA: %v", err)
	}
	if d1 == d2 {
		t.Error("expected mutation to invalidate the cached DFA")
	}
	if !runDFA(d2, "x") {
		t.Error("expected rebuilt DFA to accept the newly added transition")
	}
}

func TestDFAOnAlreadyDeterministicAutomatonReturnsSelf(t *testing.T) {
	a := New()
	s0 := a.AddState(false)
	s1 := a.AddState(true)
	a.SetStart(s0)
	a.AddTransition(s0, Label("a"), s1)

	d, err := a.DFA()
	if err != nil {
		t.Fatalf("DFA: %v", err)
	}
	if d != a {
		t.Error("expected DFA() on an already-deterministic automaton to return itself")
	}
}

// TestDFAAcceptsEmptyStringForStarPattern covers P1's edge case: a pattern
// whose entire body is starred must accept the empty string.
func TestDFAAcceptsEmptyStringForStarPattern(t *testing.T) {
	d := buildDFAFor(t, "b*")
	if !runDFA(d, "") {
		t.Error("expected \"b*\" DFA to accept the empty string")
	}
}

func TestToPostfixThenDFASmoke(t *testing.T) {
	postfix, err := regexsyntax.ToPostfix("a(b|c)*d")
	if err != nil {
		t.Fatalf("ToPostfix: %v", err)
	}
	nfa, err := BuildNFA(postfix)
	if err != nil {
		t.Fatalf("BuildNFA: %v", err)
	}
	d, err := nfa.DFA()
	if err != nil {
		t.Fatalf("DFA: %v", err)
	}
	if !runDFA(d, "abcbcd") {
		t.Error("expected compiled DFA to accept \"abcbcd\"")
	}
}
