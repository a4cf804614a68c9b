package heuristics

import (
	"sort"

	"github.com/gopropagate/csply/pkg/csply"
)

// Identity tries values in the domain's native iteration order.
// Nondeterministic for unordered representations (HashSetDomain).
type Identity[V csply.Value, CD any, M any] struct{}

func (Identity[V, CD, M]) Order(variable csply.VariableId, solution *csply.Solution[V, CD, M]) []V {
	d, ok := solution.Domain(variable)
	if !ok {
		return nil
	}
	var values []V
	d.IterateValues(func(v V) bool {
		values = append(values, v)
		return true
	})
	return values
}

// DeterministicIdentity sorts the domain's values ascending using the
// supplied comparator, making iteration order reproducible even over
// an unordered representation.
type DeterministicIdentity[V csply.Value, CD any, M any] struct {
	Less func(a, b V) bool
}

func (h DeterministicIdentity[V, CD, M]) Order(variable csply.VariableId, solution *csply.Solution[V, CD, M]) []V {
	values := Identity[V, CD, M]{}.Order(variable, solution)
	sort.Slice(values, func(i, j int) bool { return h.Less(values[i], values[j]) })
	return values
}

// PreferUsed tries values already assigned (as a singleton) to some
// other variable first, useful for minimising the count of distinct
// resources used. Both sections — used values and unused values — are
// sorted by Less for determinism.
type PreferUsed[V csply.Value, CD any, M any] struct {
	Less func(a, b V) bool
}

func (h PreferUsed[V, CD, M]) Order(variable csply.VariableId, solution *csply.Solution[V, CD, M]) []V {
	candidates := Identity[V, CD, M]{}.Order(variable, solution)

	used := make(map[V]struct{})
	for _, v := range solution.Variables() {
		if v == variable {
			continue
		}
		d, ok := solution.Domain(v)
		if !ok {
			continue
		}
		if val, ok := d.SingletonValue(); ok {
			used[val] = struct{}{}
		}
	}

	var usedValues, unusedValues []V
	for _, v := range candidates {
		if _, ok := used[v]; ok {
			usedValues = append(usedValues, v)
		} else {
			unusedValues = append(unusedValues, v)
		}
	}
	sort.Slice(usedValues, func(i, j int) bool { return h.Less(usedValues[i], usedValues[j]) })
	sort.Slice(unusedValues, func(i, j int) bool { return h.Less(unusedValues[i], unusedValues[j]) })

	return append(usedValues, unusedValues...)
}

// MetadataSwitching dispatches to a different inner heuristic based on
// a variable's metadata tag, falling back to Default when no entry
// matches. Lets one solve apply different value-ordering strategies to
// different variable categories (e.g. "region" vs "helper boolean")
// without the engine ever inspecting metadata itself.
type MetadataSwitching[V csply.Value, CD any, M comparable] struct {
	ByMetadata map[M]csply.ValueOrderingHeuristic[V, CD, M]
	Default    csply.ValueOrderingHeuristic[V, CD, M]
}

func (h MetadataSwitching[V, CD, M]) Order(variable csply.VariableId, solution *csply.Solution[V, CD, M]) []V {
	if tag, ok := solution.Metadata(variable); ok {
		if inner, ok := h.ByMetadata[tag]; ok {
			return inner.Order(variable, solution)
		}
	}
	return h.Default.Order(variable, solution)
}
