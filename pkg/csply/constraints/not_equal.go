package constraints

import (
	"fmt"

	"github.com/gopropagate/csply/pkg/csply"
)

// NotEqual enforces A != B.
type NotEqual[V csply.Value, CD any, M any] struct {
	A, B csply.VariableId
}

// NewNotEqual builds a NotEqual(a, b) constraint.
func NewNotEqual[V csply.Value, CD any, M any](a, b csply.VariableId) *NotEqual[V, CD, M] {
	return &NotEqual[V, CD, M]{A: a, B: b}
}

func (c *NotEqual[V, CD, M]) Variables() []csply.VariableId {
	return []csply.VariableId{c.A, c.B}
}

func (c *NotEqual[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityNormal }

func (c *NotEqual[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	return csply.ConstraintDescriptor{
		Name:        "NotEqual",
		Description: fmt.Sprintf("?%d != ?%d", c.A, c.B),
	}
}

func (c *NotEqual[V, CD, M]) other(target csply.VariableId) (csply.VariableId, error) {
	switch target {
	case c.A:
		return c.B, nil
	case c.B:
		return c.A, nil
	default:
		return 0, fmt.Errorf("NotEqual: variable %d is not part of this constraint", target)
	}
}

// Revise removes the other variable's value from target's domain once
// the other variable has been pinned to a singleton.
func (c *NotEqual[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	other, err := c.other(target)
	if err != nil {
		return csply.ReviseOutcome[V, CD, M]{}, err
	}

	dOther, ok := solution.Domain(other)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("NotEqual: variable %d has no domain", other)
	}
	val, ok := dOther.SingletonValue()
	if !ok {
		return csply.Unchanged[V, CD, M](), nil
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("NotEqual: variable %d has no domain", target)
	}
	if !dTarget.Contains(val) {
		return csply.Unchanged[V, CD, M](), nil
	}

	narrowed := dTarget.Filter(func(v V) bool { return v != val })
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
