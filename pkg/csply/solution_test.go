package csply_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
)

const (
	svA csply.VariableId = 0
	svB csply.VariableId = 1
)

func TestSolutionWithDomainSharesUntouchedVariables(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(3), csply.Int(4)),
	})

	narrowed := initial.WithDomain(svA, csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)))

	dA, ok := narrowed.Domain(svA)
	require.True(t, ok)
	assert.Equal(t, 1, dA.Count())

	dB, ok := narrowed.Domain(svB)
	require.True(t, ok)
	assert.Equal(t, 2, dB.Count())

	originalA, ok := initial.Domain(svA)
	require.True(t, ok)
	assert.Equal(t, 2, originalA.Count(), "parent solution must be unaffected by the child")
}

func TestSolutionIsComplete(t *testing.T) {
	incomplete := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(3)),
	})
	assert.False(t, incomplete.IsComplete())

	complete := incomplete.WithDomain(svA, csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)))
	assert.True(t, complete.IsComplete())
}

func TestSolutionAssignedValues(t *testing.T) {
	solution := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(3), csply.Int(4)),
	})

	values := solution.AssignedValues()
	assert.Len(t, values, 1)
	assert.Equal(t, int64(1), values[svA].IntValue())
}

func TestSolutionVariablesSortedAscending(t *testing.T) {
	solution := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)),
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1)),
	})

	assert.Equal(t, []csply.VariableId{svA, svB}, solution.Variables())
}
