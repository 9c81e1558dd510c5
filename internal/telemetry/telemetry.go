// Package telemetry implements the evaluator's event-profiler collaborator
// as an explicit, caller-constructed scope object passed through the
// evaluator, instead of a singleton.
package telemetry

import "time"

// span records one named recorded interval: a count of occurrences and a
// cumulative duration.
type span struct {
	count int
	total time.Duration
}

// Scope accumulates span counts and durations for a single evaluator
// invocation. The zero value is not usable; construct with New. A nil
// *Scope is valid everywhere a Scope is accepted and disables recording at
// zero cost, so callers that don't care about telemetry can pass nil.
type Scope struct {
	spans map[string]*span
}

// New returns an empty, ready-to-use Scope.
func New() *Scope {
	return &Scope{spans: make(map[string]*span)}
}

// Start begins timing a named span and returns a function that, when
// called, records its elapsed duration. Safe to call on a nil *Scope: the
// returned function is then a no-op.
func (s *Scope) Start(name string) func() {
	if s == nil {
		return func() {}
	}
	begin := time.Now()
	return func() {
		s.Record(name, time.Since(begin))
	}
}

// Record adds one occurrence of name with the given duration. Safe to call
// on a nil *Scope (no-op).
func (s *Scope) Record(name string, d time.Duration) {
	if s == nil {
		return
	}
	sp, ok := s.spans[name]
	if !ok {
		sp = &span{}
		s.spans[name] = sp
	}
	sp.count++
	sp.total += d
}

// Count returns the number of recorded occurrences of name. Safe to call on
// a nil *Scope (returns 0).
func (s *Scope) Count(name string) int {
	if s == nil {
		return 0
	}
	if sp, ok := s.spans[name]; ok {
		return sp.count
	}
	return 0
}

// Total returns the cumulative recorded duration of name. Safe to call on a
// nil *Scope (returns 0).
func (s *Scope) Total(name string) time.Duration {
	if s == nil {
		return 0
	}
	if sp, ok := s.spans[name]; ok {
		return sp.total
	}
	return 0
}

// Names returns the names of every span recorded so far. Safe to call on a
// nil *Scope (returns nil).
func (s *Scope) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.spans))
	for name := range s.spans {
		out = append(out, name)
	}
	return out
}
