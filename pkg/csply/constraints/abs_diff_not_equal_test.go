package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/constraints"
)

func TestAbsDiffNotEqualRevise(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		varA: intDomain([]int64{1, 2, 3, 4, 5}),
		varB: intDomain([]int64{3}),
	})
	c := constraints.NewAbsDiffNotEqual[csply.StandardValue, struct{}, struct{}](varA, varB, csply.Int(2))

	outcome, err := c.Revise(varA, initial)
	require.NoError(t, err)
	require.True(t, outcome.Changed)

	d, ok := outcome.Pruned.Domain(varA)
	require.True(t, ok)
	assertContainsExactly(t, d, []int64{2, 3, 4})
}

func TestAbsDiffNotEqualDescriptorReportsRealConstant(t *testing.T) {
	c := constraints.NewAbsDiffNotEqual[csply.StandardValue, struct{}, struct{}](varA, varB, csply.Int(7))
	assert.Contains(t, c.Descriptor().Description, "7")
}

func TestAbsDiffNotEqualReviseUnchangedWhenOtherNotSingleton(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		varA: intDomain([]int64{1, 2, 3}),
		varB: intDomain([]int64{1, 2}),
	})
	c := constraints.NewAbsDiffNotEqual[csply.StandardValue, struct{}, struct{}](varA, varB, csply.Int(1))

	outcome, err := c.Revise(varA, initial)
	require.NoError(t, err)
	assert.False(t, outcome.Changed)
}
