package heuristics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/heuristics"
)

func lessInt(a, b csply.StandardValue) bool { return a.IntValue() < b.IntValue() }

func TestDeterministicIdentityOrdersAscending(t *testing.T) {
	solution := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		hvA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(3), csply.Int(1), csply.Int(2)),
	})

	h := heuristics.DeterministicIdentity[csply.StandardValue, struct{}, struct{}]{Less: lessInt}
	values := h.Order(hvA, solution)

	require.Len(t, values, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{values[0].IntValue(), values[1].IntValue(), values[2].IntValue()})
}

func TestPreferUsedOrdersUsedValuesFirst(t *testing.T) {
	solution := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		hvA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2), csply.Int(3)),
		hvB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(2)),
	})

	h := heuristics.PreferUsed[csply.StandardValue, struct{}, struct{}]{Less: lessInt}
	values := h.Order(hvA, solution)

	require.Len(t, values, 3)
	assert.Equal(t, int64(2), values[0].IntValue())
}

func TestMetadataSwitchingFallsBackToDefault(t *testing.T) {
	solution := bench.NewSolution[csply.StandardValue, string, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		hvA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(3), csply.Int(1)),
	})

	h := heuristics.MetadataSwitching[csply.StandardValue, string, struct{}]{
		Default: heuristics.DeterministicIdentity[csply.StandardValue, string, struct{}]{Less: lessInt},
	}
	values := h.Order(hvA, solution)
	require.Len(t, values, 2)
	assert.Equal(t, int64(1), values[0].IntValue())
}
