package constraints

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gopropagate/csply/pkg/csply"
)

// BooleanOr enforces b1 OR b2 OR ... OR bn: once every variable but
// one is pinned false, the remaining variable is forced true. It
// does not force anything back down when a variable is already true
// — the disjunction is already satisfied and nothing more can be
// concluded about the rest.
//
// TrueValue and FalseValue are supplied by the caller rather than
// derived from V, since V has no built-in notion of "true"/"false" —
// the caller passes whatever two distinct values of V its Semantics
// uses to encode booleans (for StandardValue, csply.Bool(true) and
// csply.Bool(false)).
type BooleanOr[V csply.Value, CD any, M any] struct {
	Vars                 []csply.VariableId
	TrueValue, FalseValue V
}

// NewBooleanOr builds a BooleanOr constraint over vars.
func NewBooleanOr[V csply.Value, CD any, M any](trueValue, falseValue V, vars ...csply.VariableId) *BooleanOr[V, CD, M] {
	cp := make([]csply.VariableId, len(vars))
	copy(cp, vars)
	return &BooleanOr[V, CD, M]{Vars: cp, TrueValue: trueValue, FalseValue: falseValue}
}

func (c *BooleanOr[V, CD, M]) Variables() []csply.VariableId { return c.Vars }

func (c *BooleanOr[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityHigh }

func (c *BooleanOr[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	parts := make([]string, len(c.Vars))
	for i, v := range c.Vars {
		parts[i] = fmt.Sprintf("?%d", v)
	}
	return csply.ConstraintDescriptor{
		Name:        "BooleanOr",
		Description: strings.Join(parts, " OR "),
	}
}

func (c *BooleanOr[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if !slices.Contains(c.Vars, target) {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("BooleanOr: variable %d is not part of this constraint", target)
	}
	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("BooleanOr: variable %d has no domain", target)
	}
	if dTarget.IsSingleton() {
		return csply.Unchanged[V, CD, M](), nil
	}

	anyTrue := false
	allOthersFalse := true
	for _, v := range c.Vars {
		if v == target {
			continue
		}
		d, ok := solution.Domain(v)
		if !ok {
			return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("BooleanOr: variable %d has no domain", v)
		}
		val, ok := d.SingletonValue()
		if !ok {
			allOthersFalse = false
			continue
		}
		if val == c.TrueValue {
			anyTrue = true
		}
		if val != c.FalseValue {
			allOthersFalse = false
		}
	}

	if anyTrue || !allOthersFalse {
		return csply.Unchanged[V, CD, M](), nil
	}

	narrowed := dTarget.Filter(func(v V) bool { return v == c.TrueValue })
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
