package csply_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopropagate/csply/internal/bench"
	"github.com/gopropagate/csply/pkg/csply"
	"github.com/gopropagate/csply/pkg/csply/constraints"
)

func TestDefaultEngineConfigSolvesASimpleProblem(t *testing.T) {
	initial := bench.NewSolution[csply.StandardValue, struct{}, struct{}](map[csply.VariableId]csply.Domain[csply.StandardValue]{
		svA: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
		svB: csply.NewHashSetDomain[csply.StandardValue](csply.Int(1), csply.Int(2)),
	})
	cs := []csply.Constraint[csply.StandardValue, struct{}, struct{}]{
		constraints.NewAllDifferent[csply.StandardValue, struct{}, struct{}](svA, svB),
	}

	cfg := csply.DefaultEngineConfig[csply.StandardValue, struct{}, struct{}]()
	assert.Equal(t, int64(42), cfg.RandomSeed)

	engine := cfg.NewEngine()
	solution, _, err := engine.Solve(context.Background(), cs, initial)
	require.NoError(t, err)
	assert.NotNil(t, solution)
}
