// Package runner wires the rpqdb CLI: flag parsing (goflags) and leveled
// logging (gologger).
package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/rpqdb/rpqdb"
	"github.com/rpqdb/rpqdb/engine"
	"github.com/rpqdb/rpqdb/graph"
	"github.com/rpqdb/rpqdb/internal/telemetry"
)

// Options holds the parsed CLI flags.
type Options struct {
	GraphFile string
	Pattern   string
	Strategy  string
	Labelled  bool
	Timeout   string
	Verbose   bool
}

// ParseFlags parses os.Args into Options using goflags flag groups.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Evaluate regular path queries over a directed edge-labeled graph.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.GraphFile, "graph", "g", "", "graph edge-triple file to evaluate against"),
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "regular path query pattern (concat, |, *, grouping)"),
		flagSet.BoolVarP(&opts.Labelled, "labelled", "lg", false, "parse -graph using the labelled-graph (a/c self-loop) convention"),
	)

	flagSet.CreateGroup("evaluation", "Evaluation",
		flagSet.StringVarP(&opts.Strategy, "strategy", "s", "ospg", "evaluation strategy: bfs, seminaive, ospg"),
		flagSet.StringVar(&opts.Timeout, "timeout", "", "abort evaluation after this duration (e.g. 5s); empty means no timeout"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}

	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if opts.GraphFile == "" {
		gologger.Fatal().Msgf("rpqdb: -graph is required")
	}
	if opts.Pattern == "" {
		gologger.Fatal().Msgf("rpqdb: -pattern is required")
	}

	return opts
}

// Run executes the full pipeline described by opts: read the graph, compile
// the pattern, build the product graph, evaluate, and print the result via
// Pairs.Dump.
func Run(opts *Options) error {
	strategy, err := engine.ParseStrategy(opts.Strategy)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if opts.Timeout != "" {
		d, err := time.ParseDuration(opts.Timeout)
		if err != nil {
			return fmt.Errorf("invalid -timeout: %w", err)
		}
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	f, err := os.Open(opts.GraphFile)
	if err != nil {
		return fmt.Errorf("opening -graph file: %w", err)
	}
	defer f.Close()

	var g *graph.Graph
	if opts.Labelled {
		g, err = graph.ReadLabelledGraph(f)
	} else {
		g, err = graph.ReadEdges(f)
	}
	if err != nil {
		return fmt.Errorf("reading graph: %w", err)
	}
	gologger.Verbose().Msgf("loaded %s", g.String())

	q, err := rpqdb.Compile(opts.Pattern)
	if err != nil {
		return fmt.Errorf("compiling pattern %q: %w", opts.Pattern, err)
	}

	scope := telemetry.New()
	pg, err := q.Product(g)
	if err != nil {
		return fmt.Errorf("building product graph: %w", err)
	}
	gologger.Verbose().Msgf("built product graph: %s", pg.String())

	pairs, err := q.Evaluate(ctx, pg, strategy, scope)
	if err != nil {
		return fmt.Errorf("evaluating query: %w", err)
	}
	gologger.Verbose().Msgf("evaluated %d pairs via %v", pairs.Len(), strategy)

	fmt.Print(pairs.Dump())
	return nil
}
