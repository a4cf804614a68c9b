// Package constraints is the built-in constraint catalogue: Equal,
// NotEqual, AllDifferent, AbsDiffNotEqual, SumOf, BooleanOr,
// ReifiedEqual, ReifiedOr, ReifiedAnd, and ReifiedMemberOf. Each type
// is generic over the value type V rather than tied to one concrete
// value representation.
package constraints

import (
	"fmt"

	"github.com/gopropagate/csply/pkg/csply"
)

// Equal enforces A = B.
type Equal[V csply.Value, CD any, M any] struct {
	A, B csply.VariableId
}

// NewEqual builds an Equal(a, b) constraint.
func NewEqual[V csply.Value, CD any, M any](a, b csply.VariableId) *Equal[V, CD, M] {
	return &Equal[V, CD, M]{A: a, B: b}
}

func (c *Equal[V, CD, M]) Variables() []csply.VariableId {
	return []csply.VariableId{c.A, c.B}
}

func (c *Equal[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityNormal }

func (c *Equal[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	return csply.ConstraintDescriptor{
		Name:        "Equal",
		Description: fmt.Sprintf("?%d = ?%d", c.A, c.B),
	}
}

func (c *Equal[V, CD, M]) other(target csply.VariableId) (csply.VariableId, error) {
	switch target {
	case c.A:
		return c.B, nil
	case c.B:
		return c.A, nil
	default:
		return 0, fmt.Errorf("Equal: variable %d is not part of this constraint", target)
	}
}

// Revise intersects target's domain with the other variable's domain.
// Equal is revised per-target rather than unifying both sides in a
// single call (see DESIGN.md's Open Question decisions).
func (c *Equal[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	other, err := c.other(target)
	if err != nil {
		return csply.ReviseOutcome[V, CD, M]{}, err
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("Equal: variable %d has no domain", target)
	}
	dOther, ok := solution.Domain(other)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("Equal: variable %d has no domain", other)
	}

	narrowed := dTarget.Intersect(dOther)
	if narrowed.Count() == dTarget.Count() {
		return csply.Unchanged[V, CD, M](), nil
	}
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
