package constraints

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gopropagate/csply/pkg/csply"
)

// AllDifferent enforces pairwise inequality across Vars via naive
// forward checking: every singleton among the other variables is
// removed from target's domain. It does not implement the stronger
// Hall-set/matching-based filtering some CSP libraries use.
type AllDifferent[V csply.Value, CD any, M any] struct {
	Vars []csply.VariableId
}

// NewAllDifferent builds an AllDifferent constraint over vars.
func NewAllDifferent[V csply.Value, CD any, M any](vars ...csply.VariableId) *AllDifferent[V, CD, M] {
	cp := make([]csply.VariableId, len(vars))
	copy(cp, vars)
	return &AllDifferent[V, CD, M]{Vars: cp}
}

func (c *AllDifferent[V, CD, M]) Variables() []csply.VariableId { return c.Vars }

func (c *AllDifferent[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityHigh }

func (c *AllDifferent[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	parts := make([]string, len(c.Vars))
	for i, v := range c.Vars {
		parts[i] = fmt.Sprintf("?%d", v)
	}
	return csply.ConstraintDescriptor{
		Name:        "AllDifferent",
		Description: "all-different(" + strings.Join(parts, ", ") + ")",
	}
}

func (c *AllDifferent[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if !slices.Contains(c.Vars, target) {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("AllDifferent: variable %d is not part of this constraint", target)
	}
	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("AllDifferent: variable %d has no domain", target)
	}

	taken := make(map[V]struct{})
	for _, v := range c.Vars {
		if v == target {
			continue
		}
		d, ok := solution.Domain(v)
		if !ok {
			return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("AllDifferent: variable %d has no domain", v)
		}
		if val, ok := d.SingletonValue(); ok {
			taken[val] = struct{}{}
		}
	}
	if len(taken) == 0 {
		return csply.Unchanged[V, CD, M](), nil
	}

	narrowed := dTarget.Filter(func(v V) bool {
		_, bad := taken[v]
		return !bad
	})
	if narrowed.Count() == dTarget.Count() {
		return csply.Unchanged[V, CD, M](), nil
	}
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
