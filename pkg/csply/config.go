package csply

// EngineConfig bundles the heuristics a SolverEngine is built from,
// with pluggable interface values in place of a fixed enum selection.
type EngineConfig[V Value, CD any, M any] struct {
	VariableHeuristic VariableSelectionHeuristic[V, CD, M]
	ValueHeuristic    ValueOrderingHeuristic[V, CD, M]
	RestartPolicy     RestartPolicy
	RandomSeed        int64
}

// DefaultEngineConfig returns a config using the simplest available
// heuristic at each decision point: first-unassigned variable
// selection, domain-order value selection, and no restarts.
func DefaultEngineConfig[V Value, CD any, M any]() *EngineConfig[V, CD, M] {
	return &EngineConfig[V, CD, M]{
		VariableHeuristic: selectFirstDefault[V, CD, M]{},
		ValueHeuristic:    identityDefault[V, CD, M]{},
		RestartPolicy:     neverRestartDefault{},
		RandomSeed:        42,
	}
}

// NewEngine builds a SolverEngine running BacktrackingSearch
// configured from cfg, always wrapped in a RestartingSearch governed
// by cfg.RestartPolicy. With a policy that never restarts, the inner
// search runs exactly once.
func (cfg *EngineConfig[V, CD, M]) NewEngine() *SolverEngine[V, CD, M] {
	backtracking := NewBacktrackingSearch[V, CD, M](cfg.VariableHeuristic, cfg.ValueHeuristic)
	restarting := NewRestartingSearch[V, CD, M](backtracking, cfg.RestartPolicy)
	return NewSolverEngine[V, CD, M](restarting)
}

// selectFirstDefault, identityDefault, and neverRestartDefault
// duplicate the behaviour of heuristics.SelectFirst, heuristics.Identity,
// and heuristics.Never without importing the heuristics package, which
// would create an import cycle (heuristics already imports csply).
type selectFirstDefault[V Value, CD any, M any] struct{}

func (selectFirstDefault[V, CD, M]) Select(solution *Solution[V, CD, M]) (VariableId, bool) {
	var found VariableId
	ok := false
	for _, v := range solution.Variables() {
		d, _ := solution.Domain(v)
		if !d.IsSingleton() {
			found = v
			ok = true
			break
		}
	}
	return found, ok
}

type identityDefault[V Value, CD any, M any] struct{}

func (identityDefault[V, CD, M]) Order(variable VariableId, solution *Solution[V, CD, M]) []V {
	d, ok := solution.Domain(variable)
	if !ok {
		return nil
	}
	values := make([]V, 0, d.Count())
	d.IterateValues(func(v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

type neverRestartDefault struct{}

func (neverRestartDefault) ShouldRestart(*SearchStats) bool { return false }
