package constraints

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gopropagate/csply/pkg/csply"
)

// ReifiedOr enforces B <-> (b1 OR b2 OR ... OR bn): any bi true
// forces B true, all bi false forces B false, and B false forces
// every bi false. B true alone forces nothing further (some bi must
// be true, but which one is undetermined).
type ReifiedOr[V csply.Value, CD any, M any] struct {
	B                     csply.VariableId
	Vars                  []csply.VariableId
	TrueValue, FalseValue V
}

// NewReifiedOr builds a ReifiedOr(b, vars...) constraint.
func NewReifiedOr[V csply.Value, CD any, M any](trueValue, falseValue V, b csply.VariableId, vars ...csply.VariableId) *ReifiedOr[V, CD, M] {
	cp := make([]csply.VariableId, len(vars))
	copy(cp, vars)
	return &ReifiedOr[V, CD, M]{B: b, Vars: cp, TrueValue: trueValue, FalseValue: falseValue}
}

func (c *ReifiedOr[V, CD, M]) Variables() []csply.VariableId {
	vars := make([]csply.VariableId, 0, len(c.Vars)+1)
	vars = append(vars, c.B)
	vars = append(vars, c.Vars...)
	return vars
}

func (c *ReifiedOr[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityHigh }

func (c *ReifiedOr[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	parts := make([]string, len(c.Vars))
	for i, v := range c.Vars {
		parts[i] = fmt.Sprintf("?%d", v)
	}
	return csply.ConstraintDescriptor{
		Name:        "ReifiedOr",
		Description: fmt.Sprintf("?%d <-> (%s)", c.B, strings.Join(parts, " OR ")),
	}
}

func (c *ReifiedOr[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if target == c.B {
		return c.reviseB(solution)
	}
	return c.reviseTerm(target, solution)
}

func (c *ReifiedOr[V, CD, M]) reviseB(solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedOr: variable %d has no domain", c.B)
	}
	if dB.IsSingleton() {
		return csply.Unchanged[V, CD, M](), nil
	}

	anyTrue := false
	allFalse := true
	for _, v := range c.Vars {
		d, ok := solution.Domain(v)
		if !ok {
			return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedOr: variable %d has no domain", v)
		}
		val, ok := d.SingletonValue()
		if !ok {
			allFalse = false
			continue
		}
		if val == c.TrueValue {
			anyTrue = true
		}
		if val != c.FalseValue {
			allFalse = false
		}
	}

	switch {
	case anyTrue:
		narrowed := dB.Filter(func(v V) bool { return v == c.TrueValue })
		return csply.PrunedTo(solution.WithDomain(c.B, narrowed)), nil
	case allFalse:
		narrowed := dB.Filter(func(v V) bool { return v == c.FalseValue })
		return csply.PrunedTo(solution.WithDomain(c.B, narrowed)), nil
	default:
		return csply.Unchanged[V, CD, M](), nil
	}
}

func (c *ReifiedOr[V, CD, M]) reviseTerm(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if !slices.Contains(c.Vars, target) {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedOr: variable %d is not part of this constraint", target)
	}
	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedOr: variable %d has no domain", c.B)
	}
	bVal, bKnown := dB.SingletonValue()
	if !bKnown || bVal != c.FalseValue {
		return csply.Unchanged[V, CD, M](), nil
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedOr: variable %d has no domain", target)
	}
	if dTarget.IsSingleton() {
		return csply.Unchanged[V, CD, M](), nil
	}
	narrowed := dTarget.Filter(func(v V) bool { return v == c.FalseValue })
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
