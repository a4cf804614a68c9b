package csply

import "context"

// PropagationOnlySearch runs a single propagation pass and returns its
// result without ever branching. Useful for visualising the effect of
// arc-consistency alone, independent of any search.
type PropagationOnlySearch[V Value, CD any, M any] struct{}

func (PropagationOnlySearch[V, CD, M]) Solve(
	ctx context.Context,
	constraints []Constraint[V, CD, M],
	initial *Solution[V, CD, M],
) (*Solution[V, CD, M], *SearchStats, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	stats := NewSearchStats()
	solution, err := Propagate(constraints, initial, stats)
	if err != nil {
		return nil, nil, err
	}
	return solution, stats, nil
}

func (PropagationOnlySearch[V, CD, M]) Name() string { return "propagation-only" }

func (PropagationOnlySearch[V, CD, M]) Description() string {
	return "runs a single arc-consistency pass and returns its result without branching"
}
