package csply

import "context"

// RestartingSearch wraps an inner strategy with a restart policy: it
// reruns the inner strategy from the *original* initial Solution (not
// the post-propagation one) each attempt, accumulating statistics,
// until either the inner strategy finds a solution or the policy
// declines another attempt.
type RestartingSearch[V Value, CD any, M any] struct {
	Inner  SearchStrategy[V, CD, M]
	Policy RestartPolicy
}

// NewRestartingSearch builds a RestartingSearch around inner, guarded
// by policy.
func NewRestartingSearch[V Value, CD any, M any](
	inner SearchStrategy[V, CD, M],
	policy RestartPolicy,
) *RestartingSearch[V, CD, M] {
	return &RestartingSearch[V, CD, M]{Inner: inner, Policy: policy}
}

func (s *RestartingSearch[V, CD, M]) Solve(
	ctx context.Context,
	constraints []Constraint[V, CD, M],
	initial *Solution[V, CD, M],
) (*Solution[V, CD, M], *SearchStats, error) {
	cumulative := NewSearchStats()

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		solution, attempt, err := s.Inner.Solve(ctx, constraints, initial)
		if err != nil {
			// A solver logic error discards accumulated stats — no
			// partial result is returned alongside it.
			return nil, nil, err
		}

		cumulative.Merge(attempt)

		if solution != nil {
			return solution, cumulative, nil
		}
		if !s.Policy.ShouldRestart(attempt) {
			return nil, cumulative, nil
		}
	}
}

func (s *RestartingSearch[V, CD, M]) Name() string { return "restarting" }

func (s *RestartingSearch[V, CD, M]) Description() string {
	return "reruns an inner strategy from the initial solution until it succeeds or the restart policy declines another attempt"
}
