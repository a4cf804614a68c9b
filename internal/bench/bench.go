// Package bench is the small harness shared by cmd/csply-stats and the
// package tests: building an initial Solution from a map of
// per-variable domains, and running+reporting a solve with wall-clock
// timing and SearchStats.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/pmap"
)

// NoSemantics is a placeholder DomainSemantics for examples that build
// every Constraint directly via its constructor rather than from a
// declarative constraint-definition enum — BuildConstraint is never
// called in that mode, so it panics if it ever is, surfacing the
// misuse immediately instead of silently returning a zero value.
type NoSemantics[V csply.Value, CD any, M any] struct{}

func (NoSemantics[V, CD, M]) BuildConstraint(def CD) csply.Constraint[V, CD, M] {
	panic("bench: BuildConstraint called but this example builds constraints directly")
}

// NewSolution builds the initial Solution from a plain map of
// variable to starting domain, using NoSemantics and empty metadata.
func NewSolution[V csply.Value, CD any, M any](domains map[csply.VariableId]csply.Domain[V]) *csply.Solution[V, CD, M] {
	var domainMap pmap.Map[csply.Domain[V]]
	for v, d := range domains {
		domainMap = domainMap.Set(uint32(v), d)
	}
	var metadata pmap.Map[M]
	return csply.NewSolution[V, CD, M](domainMap, metadata, NoSemantics[V, CD, M]{})
}

// Run executes strategy.Solve against constraints/initial, timing the
// call and printing a one-line summary plus the per-constraint
// SearchStats table to w. It returns the found Solution (nil if
// infeasible) so callers can go on to render it.
func Run[V csply.Value, CD any, M any](
	w io.Writer,
	strategy csply.SearchStrategy[V, CD, M],
	constraints []csply.Constraint[V, CD, M],
	initial *csply.Solution[V, CD, M],
) *csply.Solution[V, CD, M] {
	start := time.Now()
	solution, stats, err := strategy.Solve(context.Background(), constraints, initial)
	elapsed := time.Since(start)

	if err != nil {
		fmt.Fprintf(w, "solve failed: %v\n", err)
		return nil
	}
	if solution == nil {
		fmt.Fprintf(w, "no solution (infeasible) — %s, %v\n", strategy.Name(), elapsed)
	} else {
		fmt.Fprintf(w, "solution found — %s, %v\n", strategy.Name(), elapsed)
	}
	PrintStats(w, stats)
	return solution
}

// PrintStats renders a SearchStats as a plain fixed-width table using
// fmt.Fprintf column alignment.
func PrintStats(w io.Writer, stats *csply.SearchStats) {
	if stats == nil {
		return
	}
	fmt.Fprintf(w, "  nodes visited:  %d\n", stats.NodesVisited)
	fmt.Fprintf(w, "  backtracks:     %d\n", stats.Backtracks)
	fmt.Fprintf(w, "  %-6s %10s %10s %12s\n", "arc", "revisions", "prunings", "time spent")
	for id, per := range stats.ConstraintStats {
		fmt.Fprintf(w, "  %-6d %10d %10d %12v\n", id, per.Revisions, per.Prunings, per.TimeSpent)
	}
}
