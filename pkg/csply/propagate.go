package csply

import "time"

// Propagate runs the AC-3 worklist loop to a fixed point: it repeatedly
// revises arcs until no constraint can prune any variable further, or
// until some variable's domain empties out. It is the single canonical
// propagation engine (C7) — every search strategy calls this same
// function rather than each carrying its own copy, collapsing a
// duplication present in the retrieved Rust original between
// src/solver/engine.rs's arc_consistency and a near-identical copy
// inside src/solver/strategy.rs's BacktrackingSearch.
//
// Propagate returns the arc-consistent Solution, or nil if any domain
// became empty (infeasible — not an error). A non-nil error means a
// constraint's Revise call itself failed, which propagation treats as
// a programming error and bubbles straight out with no partial
// solution.
func Propagate[V Value, CD any, M any](
	constraints []Constraint[V, CD, M],
	solution *Solution[V, CD, M],
	stats *SearchStats,
) (*Solution[V, CD, M], error) {
	dependents := make(map[VariableId][]constraintRef)
	worklist := NewWorklist()

	for i, c := range constraints {
		ref := constraintRef(i)
		for _, v := range c.Variables() {
			dependents[v] = append(dependents[v], ref)
			worklist.Push(c.Priority(), v, ref)
		}
	}

	for {
		variable, ref, ok := worklist.Pop()
		if !ok {
			break
		}
		constraint := constraints[ref]

		start := time.Now()
		outcome, err := constraint.Revise(variable, solution)
		elapsed := time.Since(start)

		if err != nil {
			return nil, newSolverError("revise", err)
		}

		if !outcome.Changed {
			stats.recordRevision(ref, elapsed, false)
			continue
		}

		stats.recordRevision(ref, elapsed, true)
		solution = outcome.Pruned

		newDomain, ok := solution.Domain(variable)
		if !ok || newDomain.IsEmpty() {
			return nil, nil
		}

		for _, depRef := range dependents[variable] {
			dep := constraints[depRef]
			for _, other := range dep.Variables() {
				if other != variable {
					worklist.Push(dep.Priority(), other, depRef)
				}
			}
		}
	}

	return solution, nil
}
