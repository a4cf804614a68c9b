package constraints

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gopropagate/csply/pkg/csply"
)

// ReifiedAnd enforces B <-> (b1 AND b2 AND ... AND bn), the De Morgan
// mirror of ReifiedOr: any bi false forces B false, all bi true forces
// B true, and B true forces every bi true.
type ReifiedAnd[V csply.Value, CD any, M any] struct {
	B                     csply.VariableId
	Vars                  []csply.VariableId
	TrueValue, FalseValue V
}

// NewReifiedAnd builds a ReifiedAnd(b, vars...) constraint.
func NewReifiedAnd[V csply.Value, CD any, M any](trueValue, falseValue V, b csply.VariableId, vars ...csply.VariableId) *ReifiedAnd[V, CD, M] {
	cp := make([]csply.VariableId, len(vars))
	copy(cp, vars)
	return &ReifiedAnd[V, CD, M]{B: b, Vars: cp, TrueValue: trueValue, FalseValue: falseValue}
}

func (c *ReifiedAnd[V, CD, M]) Variables() []csply.VariableId {
	vars := make([]csply.VariableId, 0, len(c.Vars)+1)
	vars = append(vars, c.B)
	vars = append(vars, c.Vars...)
	return vars
}

func (c *ReifiedAnd[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityHigh }

func (c *ReifiedAnd[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	parts := make([]string, len(c.Vars))
	for i, v := range c.Vars {
		parts[i] = fmt.Sprintf("?%d", v)
	}
	return csply.ConstraintDescriptor{
		Name:        "ReifiedAnd",
		Description: fmt.Sprintf("?%d <-> (%s)", c.B, strings.Join(parts, " AND ")),
	}
}

func (c *ReifiedAnd[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if target == c.B {
		return c.reviseB(solution)
	}
	return c.reviseTerm(target, solution)
}

func (c *ReifiedAnd[V, CD, M]) reviseB(solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedAnd: variable %d has no domain", c.B)
	}
	if dB.IsSingleton() {
		return csply.Unchanged[V, CD, M](), nil
	}

	anyFalse := false
	allTrue := true
	for _, v := range c.Vars {
		d, ok := solution.Domain(v)
		if !ok {
			return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedAnd: variable %d has no domain", v)
		}
		val, ok := d.SingletonValue()
		if !ok {
			allTrue = false
			continue
		}
		if val == c.FalseValue {
			anyFalse = true
		}
		if val != c.TrueValue {
			allTrue = false
		}
	}

	switch {
	case anyFalse:
		narrowed := dB.Filter(func(v V) bool { return v == c.FalseValue })
		return csply.PrunedTo(solution.WithDomain(c.B, narrowed)), nil
	case allTrue:
		narrowed := dB.Filter(func(v V) bool { return v == c.TrueValue })
		return csply.PrunedTo(solution.WithDomain(c.B, narrowed)), nil
	default:
		return csply.Unchanged[V, CD, M](), nil
	}
}

func (c *ReifiedAnd[V, CD, M]) reviseTerm(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if !slices.Contains(c.Vars, target) {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedAnd: variable %d is not part of this constraint", target)
	}
	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedAnd: variable %d has no domain", c.B)
	}
	bVal, bKnown := dB.SingletonValue()
	if !bKnown || bVal != c.TrueValue {
		return csply.Unchanged[V, CD, M](), nil
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedAnd: variable %d has no domain", target)
	}
	if dTarget.IsSingleton() {
		return csply.Unchanged[V, CD, M](), nil
	}
	narrowed := dTarget.Filter(func(v V) bool { return v == c.TrueValue })
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
