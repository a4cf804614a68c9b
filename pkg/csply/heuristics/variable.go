// Package heuristics provides the pluggable variable-selection,
// value-ordering, and restart-policy strategies search strategies
// consult. Split into its own package because these are a distinct,
// user-facing pluggable surface rather than engine internals; the
// interfaces themselves stay in pkg/csply
// to let SearchStrategy depend on them without an import cycle.
package heuristics

import (
	"math/rand"

	"github.com/gopropagate/csply/pkg/csply"
)

// SelectFirst picks the smallest VariableId among unassigned
// variables. Deterministic.
type SelectFirst[V csply.Value, CD any, M any] struct{}

func (SelectFirst[V, CD, M]) Select(solution *csply.Solution[V, CD, M]) (csply.VariableId, bool) {
	for _, v := range solution.Variables() {
		d, ok := solution.Domain(v)
		if ok && !d.IsSingleton() {
			return v, true
		}
	}
	return 0, false
}

// MinRemainingValues picks the unassigned variable with the smallest
// domain, tiebreaking by smallest VariableId for determinism.
type MinRemainingValues[V csply.Value, CD any, M any] struct{}

func (MinRemainingValues[V, CD, M]) Select(solution *csply.Solution[V, CD, M]) (csply.VariableId, bool) {
	best := csply.VariableId(0)
	bestCount := -1
	found := false
	for _, v := range solution.Variables() {
		d, ok := solution.Domain(v)
		if !ok || d.IsSingleton() {
			continue
		}
		count := d.Count()
		if !found || count < bestCount {
			best = v
			bestCount = count
			found = true
		}
	}
	return best, found
}

// Random picks uniformly among unassigned variables. Intended for use
// alongside a restart policy, where repeated randomised attempts
// explore different parts of the search tree. A nil Rand draws from
// math/rand's package-level source.
type Random[V csply.Value, CD any, M any] struct {
	Rand *rand.Rand
}

func (h Random[V, CD, M]) Select(solution *csply.Solution[V, CD, M]) (csply.VariableId, bool) {
	var candidates []csply.VariableId
	for _, v := range solution.Variables() {
		d, ok := solution.Domain(v)
		if ok && !d.IsSingleton() {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	if h.Rand == nil {
		return candidates[rand.Intn(len(candidates))], true
	}
	return candidates[h.Rand.Intn(len(candidates))], true
}
