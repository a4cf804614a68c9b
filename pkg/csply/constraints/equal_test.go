package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/constraints"
)

const (
	varA csply.VariableId = 0
	varB csply.VariableId = 1
)

func TestEqualRevise(t *testing.T) {
	tests := []struct {
		name       string
		domainA    []int64
		domainB    []int64
		target     csply.VariableId
		wantChange bool
		wantValues []int64
	}{
		{
			name:       "disjoint ranges prune target to empty",
			domainA:    []int64{1, 2},
			domainB:    []int64{3, 4},
			target:     varA,
			wantChange: true,
			wantValues: nil,
		},
		{
			name:       "singleton other narrows target",
			domainA:    []int64{1, 2, 3},
			domainB:    []int64{2},
			target:     varA,
			wantChange: true,
			wantValues: []int64{2},
		},
		{
			name:       "already equal domains are unchanged",
			domainA:    []int64{1, 2},
			domainB:    []int64{1, 2},
			target:     varA,
			wantChange: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
				varA: intDomain(tt.domainA),
				varB: intDomain(tt.domainB),
			})
			c := constraints.NewEqual[csply.StandardValue, struct{}, struct{}](varA, varB)

			outcome, err := c.Revise(tt.target, initial)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChange, outcome.Changed)
			if !tt.wantChange {
				return
			}
			d, ok := outcome.Pruned.Domain(tt.target)
			require.True(t, ok)
			assertContainsExactly(t, d, tt.wantValues)
		})
	}
}

func TestEqualReviseRejectsForeignVariable(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		varA: intDomain([]int64{1}),
		varB: intDomain([]int64{1}),
	})
	c := constraints.NewEqual[csply.StandardValue, struct{}, struct{}](varA, varB)

	_, err := c.Revise(csply.VariableId(99), initial)
	assert.Error(t, err)
}

func intDomain(values []int64) csply.Domain[csply.StandardValue] {
	vs := make([]csply.StandardValue, len(values))
	for i, v := range values {
		vs[i] = csply.Int(v)
	}
	return csply.NewHashSetDomain[csply.StandardValue](vs...)
}

func assertContainsExactly(t *testing.T, d csply.Domain[csply.StandardValue], want []int64) {
	t.Helper()
	assert.Equal(t, len(want), d.Count())
	for _, v := range want {
		assert.True(t, d.Contains(csply.Int(v)), "expected domain to contain %d", v)
	}
}
