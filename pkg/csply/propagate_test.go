package csply_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/constraints"
)

func TestPropagateReachesFixedPoint(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2), csply.Int(3)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(2)),
	})
	cs := []csply.Constraint[csply.StandardValue, struct{}, struct{}]{
		constraints.NewEqual[csply.StandardValue, struct{}, struct{}](svA, svB),
	}

	solution, err := csply.Propagate(cs, initial, csply.NewSearchStats())
	require.NoError(t, err)
	require.NotNil(t, solution)

	dA, ok := solution.Domain(svA)
	require.True(t, ok)
	val, ok := dA.SingletonValue()
	require.True(t, ok)
	assert.Equal(t, int64(2), val.IntValue())
}

func TestPropagateDetectsInfeasibility(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(2)),
	})
	cs := []csply.Constraint[csply.StandardValue, struct{}, struct{}]{
		constraints.NewEqual[csply.StandardValue, struct{}, struct{}](svA, svB),
	}

	solution, err := csply.Propagate(cs, initial, csply.NewSearchStats())
	require.NoError(t, err)
	assert.Nil(t, solution)
}

func TestPropagatePropagatesAcrossDependentConstraints(t *testing.T) {
	const svC csply.VariableId = 2
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
		svC: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
	})
	cs := []csply.Constraint[csply.StandardValue, struct{}, struct{}]{
		constraints.NewEqual[csply.StandardValue, struct{}, struct{}](svA, svB),
		constraints.NewEqual[csply.StandardValue, struct{}, struct{}](svB, svC),
	}

	solution, err := csply.Propagate(cs, initial, csply.NewSearchStats())
	require.NoError(t, err)
	require.NotNil(t, solution)

	dC, ok := solution.Domain(svC)
	require.True(t, ok)
	val, ok := dC.SingletonValue()
	require.True(t, ok)
	assert.Equal(t, int64(1), val.IntValue())
}
