package csply

import "context"

// BacktrackingSearch is the standard depth-first explorer: propagate
// to a fixed point, pick a variable, try each candidate value in turn
// (each try re-propagates from a singleton-narrowed child Solution),
// and recurse. Built entirely on pure immutable Solution snapshots,
// so a failed branch needs no undo: the parent Solution is simply
// still there, untouched.
type BacktrackingSearch[V Value, CD any, M any] struct {
	VariableHeuristic VariableSelectionHeuristic[V, CD, M]
	ValueHeuristic    ValueOrderingHeuristic[V, CD, M]
}

// NewBacktrackingSearch builds a BacktrackingSearch with the given
// variable- and value-ordering heuristics.
func NewBacktrackingSearch[V Value, CD any, M any](
	variableHeuristic VariableSelectionHeuristic[V, CD, M],
	valueHeuristic ValueOrderingHeuristic[V, CD, M],
) *BacktrackingSearch[V, CD, M] {
	return &BacktrackingSearch[V, CD, M]{VariableHeuristic: variableHeuristic, ValueHeuristic: valueHeuristic}
}

func (s *BacktrackingSearch[V, CD, M]) Solve(
	ctx context.Context,
	constraints []Constraint[V, CD, M],
	initial *Solution[V, CD, M],
) (*Solution[V, CD, M], *SearchStats, error) {
	stats := NewSearchStats()
	solution, err := s.search(ctx, constraints, initial, stats)
	return solution, stats, err
}

// search implements the four-step algorithm: (1) propagate, returning
// immediately on infeasibility or completeness, (2) pick a branching
// variable, (3) try each candidate value, recursing into step 1 on
// each propagated child, (4) report failure once every value has been
// tried.
func (s *BacktrackingSearch[V, CD, M]) search(
	ctx context.Context,
	constraints []Constraint[V, CD, M],
	solution *Solution[V, CD, M],
	stats *SearchStats,
) (*Solution[V, CD, M], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	propagated, err := Propagate(constraints, solution, stats)
	if err != nil {
		return nil, err
	}
	if propagated == nil {
		return nil, nil
	}
	if propagated.IsComplete() {
		return propagated, nil
	}

	variable, ok := s.VariableHeuristic.Select(propagated)
	if !ok {
		return propagated, nil
	}

	stats.NodesVisited++

	for _, val := range s.ValueHeuristic.Order(variable, propagated) {
		child := propagated.WithDomain(variable, NewHashSetDomain[V](val))

		result, err := s.search(ctx, constraints, child, stats)
		if err != nil {
			return nil, err
		}
		if result != nil {
			return result, nil
		}
		stats.Backtracks++
	}

	return nil, nil
}

func (s *BacktrackingSearch[V, CD, M]) Name() string { return "backtracking" }

func (s *BacktrackingSearch[V, CD, M]) Description() string {
	return "depth-first search: propagate, branch on one variable, try each candidate value in heuristic order"
}
