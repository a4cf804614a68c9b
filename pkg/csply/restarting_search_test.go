package csply_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/constraints"
	"github.com/gopropagate/csply/pkg/csply/heuristics"
)

func TestRestartingSearchReturnsOnFirstSuccess(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
	})
	cs := []csply.Constraint[csply.StandardValue, struct{}, struct{}]{
		constraints.NewAllDifferent[csply.StandardValue, struct{}, struct{}](svA, svB),
	}
	inner := csply.NewBacktrackingSearch[csply.StandardValue, struct{}, struct{}](
		heuristics.MinRemainingValues[csply.StandardValue, struct{}, struct{}]{},
		heuristics.Identity[csply.StandardValue, struct{}, struct{}]{},
	)
	strategy := csply.NewRestartingSearch[csply.StandardValue, struct{}, struct{}](inner, heuristics.Never{})

	solution, _, err := strategy.Solve(context.Background(), cs, initial)
	require.NoError(t, err)
	assert.NotNil(t, solution)
}

func TestRestartingSearchReturnsStatsWhenInfeasible(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)),
	})
	cs := []csply.Constraint[csply.StandardValue, struct{}, struct{}]{
		constraints.NewAllDifferent[csply.StandardValue, struct{}, struct{}](svA, svB),
	}
	inner := csply.NewBacktrackingSearch[csply.StandardValue, struct{}, struct{}](
		heuristics.MinRemainingValues[csply.StandardValue, struct{}, struct{}]{},
		heuristics.Identity[csply.StandardValue, struct{}, struct{}]{},
	)
	// Infeasible, and Never means exactly one attempt is made.
	strategy := csply.NewRestartingSearch[csply.StandardValue, struct{}, struct{}](inner, heuristics.Never{})

	solution, stats, err := strategy.Solve(context.Background(), cs, initial)
	require.NoError(t, err)
	assert.Nil(t, solution)
	require.NotNil(t, stats)
}
