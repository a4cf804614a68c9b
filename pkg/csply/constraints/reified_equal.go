package constraints

import (
	"fmt"

	"github.com/gopropagate/csply/pkg/csply"
)

// ReifiedEqual enforces B <-> (X = Y). Its four directions (B=true
// narrows X and Y towards each other, B=false removes a pinned side
// from the other, equal singletons force B true, disjoint domains
// force B false) are split across the three variables' Revise calls
// rather than handled in one pass, matching the per-target contract
// of csply.Constraint.
type ReifiedEqual[V csply.Value, CD any, M any] struct {
	B, X, Y               csply.VariableId
	TrueValue, FalseValue V
}

// NewReifiedEqual builds a ReifiedEqual(b, x, y) constraint.
func NewReifiedEqual[V csply.Value, CD any, M any](trueValue, falseValue V, b, x, y csply.VariableId) *ReifiedEqual[V, CD, M] {
	return &ReifiedEqual[V, CD, M]{B: b, X: x, Y: y, TrueValue: trueValue, FalseValue: falseValue}
}

func (c *ReifiedEqual[V, CD, M]) Variables() []csply.VariableId {
	return []csply.VariableId{c.B, c.X, c.Y}
}

func (c *ReifiedEqual[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityHigh }

func (c *ReifiedEqual[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	return csply.ConstraintDescriptor{
		Name:        "ReifiedEqual",
		Description: fmt.Sprintf("?%d <-> (?%d = ?%d)", c.B, c.X, c.Y),
	}
}

func (c *ReifiedEqual[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	switch target {
	case c.B:
		return c.reviseB(solution)
	case c.X:
		return c.reviseSide(solution, c.X, c.Y)
	case c.Y:
		return c.reviseSide(solution, c.Y, c.X)
	default:
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedEqual: variable %d is not part of this constraint", target)
	}
}

func (c *ReifiedEqual[V, CD, M]) reviseB(solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedEqual: variable %d has no domain", c.B)
	}
	if dB.IsSingleton() {
		return csply.Unchanged[V, CD, M](), nil
	}

	dX, ok := solution.Domain(c.X)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedEqual: variable %d has no domain", c.X)
	}
	dY, ok := solution.Domain(c.Y)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedEqual: variable %d has no domain", c.Y)
	}

	if xv, xok := dX.SingletonValue(); xok {
		if yv, yok := dY.SingletonValue(); yok && xv == yv {
			narrowed := dB.Filter(func(v V) bool { return v == c.TrueValue })
			return csply.PrunedTo(solution.WithDomain(c.B, narrowed)), nil
		}
	}
	if dX.Intersect(dY).IsEmpty() {
		narrowed := dB.Filter(func(v V) bool { return v == c.FalseValue })
		return csply.PrunedTo(solution.WithDomain(c.B, narrowed)), nil
	}
	return csply.Unchanged[V, CD, M](), nil
}

func (c *ReifiedEqual[V, CD, M]) reviseSide(solution *csply.Solution[V, CD, M], target, other csply.VariableId) (csply.ReviseOutcome[V, CD, M], error) {
	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedEqual: variable %d has no domain", c.B)
	}
	bVal, bKnown := dB.SingletonValue()
	if !bKnown {
		return csply.Unchanged[V, CD, M](), nil
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedEqual: variable %d has no domain", target)
	}
	dOther, ok := solution.Domain(other)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedEqual: variable %d has no domain", other)
	}

	if bVal == c.TrueValue {
		narrowed := dTarget.Intersect(dOther)
		if narrowed.Count() == dTarget.Count() {
			return csply.Unchanged[V, CD, M](), nil
		}
		return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
	}
	if bVal == c.FalseValue {
		otherVal, ok := dOther.SingletonValue()
		if !ok {
			return csply.Unchanged[V, CD, M](), nil
		}
		if !dTarget.Contains(otherVal) {
			return csply.Unchanged[V, CD, M](), nil
		}
		narrowed := dTarget.Filter(func(v V) bool { return v != otherVal })
		return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
	}
	return csply.Unchanged[V, CD, M](), nil
}
