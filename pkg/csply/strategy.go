package csply

import "context"

// SearchStrategy is the pluggable search algorithm a SolverEngine
// delegates to.
//
// Solve returns the found Solution (nil if the problem is infeasible
// — not an error), the SearchStats accumulated during the call, and a
// non-nil error only for a solver logic error; no partial solution
// accompanies an error.
type SearchStrategy[V Value, CD any, M any] interface {
	Solve(ctx context.Context, constraints []Constraint[V, CD, M], initial *Solution[V, CD, M]) (*Solution[V, CD, M], *SearchStats, error)

	// Name and Description are diagnostics-only, mirroring the
	// per-constraint ConstraintDescriptor.
	Name() string
	Description() string
}

// SolverEngine is a thin façade owning exactly one strategy, chosen by
// the caller at construction, and delegating Solve to it.
type SolverEngine[V Value, CD any, M any] struct {
	strategy SearchStrategy[V, CD, M]
}

// NewSolverEngine builds an engine around the given strategy.
func NewSolverEngine[V Value, CD any, M any](strategy SearchStrategy[V, CD, M]) *SolverEngine[V, CD, M] {
	return &SolverEngine[V, CD, M]{strategy: strategy}
}

// Solve delegates to the engine's strategy.
func (e *SolverEngine[V, CD, M]) Solve(
	ctx context.Context,
	constraints []Constraint[V, CD, M],
	initial *Solution[V, CD, M],
) (*Solution[V, CD, M], *SearchStats, error) {
	return e.strategy.Solve(ctx, constraints, initial)
}
