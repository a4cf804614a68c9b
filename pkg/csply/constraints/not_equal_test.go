package constraints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/constraints"
)

func TestNotEqualRevise(t *testing.T) {
	tests := []struct {
		name       string
		domainA    []int64
		domainB    []int64
		wantChange bool
		wantValues []int64
	}{
		{
			name:       "other pinned removes value from target",
			domainA:    []int64{1, 2, 3},
			domainB:    []int64{2},
			wantChange: true,
			wantValues: []int64{1, 3},
		},
		{
			name:       "other not singleton leaves target untouched",
			domainA:    []int64{1, 2, 3},
			domainB:    []int64{1, 2},
			wantChange: false,
		},
		{
			name:       "other pinned to value target lacks is unchanged",
			domainA:    []int64{1, 3},
			domainB:    []int64{2},
			wantChange: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
				varA: intDomain(tt.domainA),
				varB: intDomain(tt.domainB),
			})
			c := constraints.NewNotEqual[csply.StandardValue, struct{}, struct{}](varA, varB)

			outcome, err := c.Revise(varA, initial)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChange, outcome.Changed)
			if !tt.wantChange {
				return
			}
			d, ok := outcome.Pruned.Domain(varA)
			require.True(t, ok)
			assertContainsExactly(t, d, tt.wantValues)
		})
	}
}
