package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/telemetry"
)

// Strategy selects which reachable-pairs evaluator Evaluate runs.
type Strategy uint8

const (
	// BFS is the per-source baseline (C6): correct, O(|starts|·(|V|+|E|)).
	BFS Strategy = iota
	// SemiNaive is the Datalog-style fixed-point evaluator (C7).
	SemiNaive
	// OSPG is the output-sensitive heavy/light split evaluator (C8).
	OSPG
)

// String returns a human-readable strategy name, also used as the CLI flag
// value and in log output.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case SemiNaive:
		return "seminaive"
	case OSPG:
		return "ospg"
	default:
		return fmt.Sprintf("Strategy(%d)", uint8(s))
	}
}

// ParseStrategy parses a CLI-style strategy name ("bfs", "seminaive", "sn",
// "ospg"), case-insensitively.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "bfs":
		return BFS, nil
	case "seminaive", "sn":
		return SemiNaive, nil
	case "ospg":
		return OSPG, nil
	default:
		return 0, fmt.Errorf("engine: unknown strategy %q", s)
	}
}

// Evaluate runs the selected strategy over the product graph pg and returns
// the reachable-pairs result. cfg tunes OSPG's β threshold; pass
// DefaultConfig() for the standard formula. scope, if non-nil, records span
// counts and durations (internal/telemetry.Scope is nil-safe).
func Evaluate(ctx context.Context, pg *graph.Graph, strategy Strategy, cfg Config, scope *telemetry.Scope) (Pairs, error) {
	switch strategy {
	case BFS:
		return evaluateBFS(ctx, pg, scope)
	case SemiNaive:
		return evaluateSemiNaive(ctx, pg, scope)
	case OSPG:
		return evaluateOSPG(ctx, pg, cfg, scope)
	default:
		return nil, fmt.Errorf("engine: unknown strategy %v", strategy)
	}
}
