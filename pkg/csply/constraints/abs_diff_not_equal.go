package constraints

import (
	"fmt"

	"github.com/gopropagate/csply/pkg/csply"
)

// ArithValue is the value capability AbsDiffNotEqual and SumOf need:
// addition and subtraction on top of the base Value contract.
type ArithValue[V any] interface {
	csply.Value
	csply.Arithmetic[V]
}

// AbsDiffNotEqual enforces |X - Y| != C. Descriptor below reports the
// real C rather than a hardcoded placeholder.
type AbsDiffNotEqual[V ArithValue[V], CD any, M any] struct {
	X, Y csply.VariableId
	C    V
}

// NewAbsDiffNotEqual builds an AbsDiffNotEqual(x, y, c) constraint.
func NewAbsDiffNotEqual[V ArithValue[V], CD any, M any](x, y csply.VariableId, c V) *AbsDiffNotEqual[V, CD, M] {
	return &AbsDiffNotEqual[V, CD, M]{X: x, Y: y, C: c}
}

func (c *AbsDiffNotEqual[V, CD, M]) Variables() []csply.VariableId {
	return []csply.VariableId{c.X, c.Y}
}

func (c *AbsDiffNotEqual[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityNormal }

func (c *AbsDiffNotEqual[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	return csply.ConstraintDescriptor{
		Name:        "AbsDiffNotEqual",
		Description: fmt.Sprintf("|?%d - ?%d| != %s", c.X, c.Y, c.C.String()),
	}
}

func (c *AbsDiffNotEqual[V, CD, M]) other(target csply.VariableId) (csply.VariableId, error) {
	switch target {
	case c.X:
		return c.Y, nil
	case c.Y:
		return c.X, nil
	default:
		return 0, fmt.Errorf("AbsDiffNotEqual: variable %d is not part of this constraint", target)
	}
}

// Revise removes other+C and other-C from target's domain once the
// other variable is pinned to a singleton.
func (c *AbsDiffNotEqual[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	other, err := c.other(target)
	if err != nil {
		return csply.ReviseOutcome[V, CD, M]{}, err
	}

	dOther, ok := solution.Domain(other)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("AbsDiffNotEqual: variable %d has no domain", other)
	}
	val, ok := dOther.SingletonValue()
	if !ok {
		return csply.Unchanged[V, CD, M](), nil
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("AbsDiffNotEqual: variable %d has no domain", target)
	}

	forbiddenHigh := val.Add(c.C)
	forbiddenLow := val.Sub(c.C)
	narrowed := dTarget.Filter(func(v V) bool {
		return v != forbiddenHigh && v != forbiddenLow
	})
	if narrowed.Count() == dTarget.Count() {
		return csply.Unchanged[V, CD, M](), nil
	}
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
