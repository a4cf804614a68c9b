package constraints

import (
	"fmt"
	"strings"

	"github.com/gopropagate/csply/pkg/csply"
)

// BoundedArithValue is the value capability SumOf needs: ordering (to
// compare bounds) plus arithmetic (to add/subtract them).
type BoundedArithValue[V any] interface {
	csply.Value
	csply.Ordering[V]
	csply.Arithmetic[V]
}

// SumOf enforces Sum = Σ Terms via bounds propagation: it narrows
// whichever variable is being revised to the range implied by the
// current bounds of the others. It requires every term's domain, and
// the sum's domain whenever a term is revised, to additionally
// implement csply.MinMaxDomain (HashSetDomain does not; OrderedDomain
// and RangeDomain do) — Revise reports an error if it reads the bounds
// of one that doesn't, since that is a construction-time mismatch
// rather than a runtime condition to tolerate. Revising the sum only
// filters the sum's own domain, so that domain may be of any
// representation in that direction.
type SumOf[V BoundedArithValue[V], CD any, M any] struct {
	Terms []csply.VariableId
	Sum   csply.VariableId
}

// NewSumOf builds a SumOf(sum, terms...) constraint.
func NewSumOf[V BoundedArithValue[V], CD any, M any](sum csply.VariableId, terms ...csply.VariableId) *SumOf[V, CD, M] {
	cp := make([]csply.VariableId, len(terms))
	copy(cp, terms)
	return &SumOf[V, CD, M]{Terms: cp, Sum: sum}
}

func (c *SumOf[V, CD, M]) Variables() []csply.VariableId {
	vars := make([]csply.VariableId, 0, len(c.Terms)+1)
	vars = append(vars, c.Sum)
	vars = append(vars, c.Terms...)
	return vars
}

func (c *SumOf[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityHigh }

func (c *SumOf[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	parts := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		parts[i] = fmt.Sprintf("?%d", t)
	}
	return csply.ConstraintDescriptor{
		Name:        "SumOf",
		Description: fmt.Sprintf("?%d = %s", c.Sum, strings.Join(parts, " + ")),
	}
}

func boundsOf[V BoundedArithValue[V], CD any, M any](solution *csply.Solution[V, CD, M], variable csply.VariableId) (lo, hi V, err error) {
	d, ok := solution.Domain(variable)
	if !ok {
		err = fmt.Errorf("SumOf: variable %d has no domain", variable)
		return
	}
	mm, ok := d.(csply.MinMaxDomain[V])
	if !ok {
		err = fmt.Errorf("SumOf: variable %d's domain representation does not support Min/Max", variable)
		return
	}
	lo, hi = mm.Min(), mm.Max()
	return
}

func (c *SumOf[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if target == c.Sum {
		return c.reviseSum(solution)
	}
	return c.reviseTerm(target, solution)
}

func (c *SumOf[V, CD, M]) reviseSum(solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	var minSum, maxSum V
	for i, t := range c.Terms {
		lo, hi, err := boundsOf[V, CD, M](solution, t)
		if err != nil {
			return csply.ReviseOutcome[V, CD, M]{}, err
		}
		if i == 0 {
			minSum, maxSum = lo, hi
			continue
		}
		minSum = minSum.Add(lo)
		maxSum = maxSum.Add(hi)
	}

	dSum, ok := solution.Domain(c.Sum)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("SumOf: variable %d has no domain", c.Sum)
	}
	narrowed := dSum.Filter(func(v V) bool {
		return !v.Less(minSum) && !maxSum.Less(v)
	})
	if narrowed.Count() == dSum.Count() {
		return csply.Unchanged[V, CD, M](), nil
	}
	return csply.PrunedTo(solution.WithDomain(c.Sum, narrowed)), nil
}

func (c *SumOf[V, CD, M]) reviseTerm(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	var minOthers, maxOthers V
	first := true
	found := false
	for _, t := range c.Terms {
		if t == target {
			found = true
			continue
		}
		lo, hi, err := boundsOf[V, CD, M](solution, t)
		if err != nil {
			return csply.ReviseOutcome[V, CD, M]{}, err
		}
		if first {
			minOthers, maxOthers = lo, hi
			first = false
			continue
		}
		minOthers = minOthers.Add(lo)
		maxOthers = maxOthers.Add(hi)
	}
	if !found {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("SumOf: variable %d is not part of this constraint", target)
	}

	sumLo, sumHi, err := boundsOf[V, CD, M](solution, c.Sum)
	if err != nil {
		return csply.ReviseOutcome[V, CD, M]{}, err
	}

	var lowerBound, upperBound V
	if first {
		// target is the only term.
		lowerBound, upperBound = sumLo, sumHi
	} else {
		lowerBound = sumLo.Sub(maxOthers)
		upperBound = sumHi.Sub(minOthers)
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("SumOf: variable %d has no domain", target)
	}
	narrowed := dTarget.Filter(func(v V) bool {
		return !v.Less(lowerBound) && !upperBound.Less(v)
	})
	if narrowed.Count() == dTarget.Count() {
		return csply.Unchanged[V, CD, M](), nil
	}
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
