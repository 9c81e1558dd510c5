package automaton

import (
	"sort"
	"strings"

	"github.com/rpqdb/rpqdb/internal/sparse"
)

// DFA returns the deterministic projection of a, built by ε-closure subset
// construction (C3). The result is cached on a: repeated calls with no
// intervening mutation return the same *Automaton without rebuilding. Any
// mutator on a (AddState, AddTransition, SetAccepting, SetStart) invalidates
// the cache.
//
// If a is already a DFA (per IsDFA), DFA returns a itself.
func (a *Automaton) DFA() (*Automaton, error) {
	if a.IsDFA() {
		return a, nil
	}
	if !a.dirty && a.cachedDFA != nil {
		return a.cachedDFA, nil
	}

	d, err := a.buildDFA()
	if err != nil {
		return nil, err
	}
	a.cachedDFA = d
	a.dirty = false
	return d, nil
}

// subsetKey canonicalizes a set of NFA state IDs into a map key: the sorted
// IDs joined by a separator that cannot appear in a decimal representation.
func subsetKey(ids []uint32) string {
	sorted := make([]uint32, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var b strings.Builder
	for i, id := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(uitoa(id))
	}
	return b.String()
}

func uitoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// epsilonClosure extends set with every state reachable from the states
// already in set via zero or more ε-transitions, using an explicit stack
// (not recursion) so that closure computation cannot stack-overflow on a
// pathological automaton.
func epsilonClosure(nfa *Automaton, set *sparse.SparseSet, stack []uint32) []uint32 {
	stack = stack[:0]
	set.Iter(func(id uint32) { stack = append(stack, id) })

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		st := nfa.State(StateID(id))
		if st == nil {
			continue
		}
		for _, tr := range st.Transitions() {
			if tr.Label != Epsilon {
				continue
			}
			target := uint32(tr.Target)
			if !set.Contains(target) {
				set.Insert(target)
				stack = append(stack, target)
			}
		}
	}
	return stack
}

// dfaState is one node of the subset-construction worklist: the DFA StateID
// already allocated for this subset, plus the subset's NFA state members.
type dfaState struct {
	id      StateID
	members *sparse.SparseSet
}

// buildDFA performs ε-closure subset construction over a's NFA states,
// producing a fresh Automaton satisfying IsDFA.
func (a *Automaton) buildDFA() (*Automaton, error) {
	cap := uint32(a.NumStates())
	if cap == 0 {
		cap = 1
	}

	d := New()
	seen := make(map[string]StateID)
	var worklist []dfaState
	var stack []uint32

	startSet := sparse.NewSparseSet(cap)
	startSet.Insert(uint32(a.Start()))
	stack = epsilonClosure(a, startSet, stack)

	startKey := subsetKey(startSet.Values())
	startAccepting := subsetContainsAccepting(a, startSet)
	startID := d.AddState(startAccepting)
	d.SetStart(startID)
	seen[startKey] = startID
	worklist = append(worklist, dfaState{id: startID, members: startSet})

	alphabet := a.alphabet()

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, label := range alphabet {
			target := sparse.NewSparseSet(cap)
			cur.members.Iter(func(id uint32) {
				st := a.State(StateID(id))
				if st == nil {
					return
				}
				for _, tr := range st.Transitions() {
					if tr.Label == label {
						target.Insert(uint32(tr.Target))
					}
				}
			})
			if target.IsEmpty() {
				continue
			}
			stack = epsilonClosure(a, target, stack)

			key := subsetKey(target.Values())
			targetID, ok := seen[key]
			if !ok {
				accepting := subsetContainsAccepting(a, target)
				targetID = d.AddState(accepting)
				seen[key] = targetID
				worklist = append(worklist, dfaState{id: targetID, members: target})
			}
			d.AddTransition(cur.id, label, targetID)
		}
	}

	return d, nil
}

func subsetContainsAccepting(nfa *Automaton, set *sparse.SparseSet) bool {
	accepting := false
	set.Iter(func(id uint32) {
		if nfa.IsAccepting(StateID(id)) {
			accepting = true
		}
	})
	return accepting
}
