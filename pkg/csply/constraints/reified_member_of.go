package constraints

import (
	"fmt"

	"github.com/gopropagate/csply/pkg/csply"
)

// ReifiedMemberOf enforces B <-> (v1, ..., vk) in Table, where Table
// is a fixed list of k-tuples: when B is true, every Vars[i]'s domain
// is narrowed to the projection of the rows still compatible with the
// current domains; when no row survives, B is forced false.
type ReifiedMemberOf[V csply.Value, CD any, M any] struct {
	B                     csply.VariableId
	Vars                  []csply.VariableId
	Table                 [][]V
	TrueValue, FalseValue V
}

// NewReifiedMemberOf builds a ReifiedMemberOf(b, vars, table)
// constraint. Each row of table must have the same length as vars.
func NewReifiedMemberOf[V csply.Value, CD any, M any](trueValue, falseValue V, b csply.VariableId, vars []csply.VariableId, table [][]V) *ReifiedMemberOf[V, CD, M] {
	vc := make([]csply.VariableId, len(vars))
	copy(vc, vars)
	tc := make([][]V, len(table))
	for i, row := range table {
		rc := make([]V, len(row))
		copy(rc, row)
		tc[i] = rc
	}
	return &ReifiedMemberOf[V, CD, M]{B: b, Vars: vc, Table: tc, TrueValue: trueValue, FalseValue: falseValue}
}

func (c *ReifiedMemberOf[V, CD, M]) Variables() []csply.VariableId {
	vars := make([]csply.VariableId, 0, len(c.Vars)+1)
	vars = append(vars, c.B)
	vars = append(vars, c.Vars...)
	return vars
}

func (c *ReifiedMemberOf[V, CD, M]) Priority() csply.ConstraintPriority { return csply.PriorityLow }

func (c *ReifiedMemberOf[V, CD, M]) Descriptor() csply.ConstraintDescriptor {
	return csply.ConstraintDescriptor{
		Name:        "ReifiedMemberOf",
		Description: fmt.Sprintf("?%d <-> tuple(?...) in table of %d rows", c.B, len(c.Table)),
	}
}

// survivingRows returns the indices of c.Table's rows every one of
// whose cells is still present in the matching variable's domain.
func (c *ReifiedMemberOf[V, CD, M]) survivingRows(solution *csply.Solution[V, CD, M]) ([]int, error) {
	domains := make([]csply.Domain[V], len(c.Vars))
	for i, v := range c.Vars {
		d, ok := solution.Domain(v)
		if !ok {
			return nil, fmt.Errorf("ReifiedMemberOf: variable %d has no domain", v)
		}
		domains[i] = d
	}

	var surviving []int
	for rowIdx, row := range c.Table {
		if len(row) != len(c.Vars) {
			return nil, fmt.Errorf("ReifiedMemberOf: table row %d has %d cells, want %d", rowIdx, len(row), len(c.Vars))
		}
		ok := true
		for i, cell := range row {
			if !domains[i].Contains(cell) {
				ok = false
				break
			}
		}
		if ok {
			surviving = append(surviving, rowIdx)
		}
	}
	return surviving, nil
}

func (c *ReifiedMemberOf[V, CD, M]) Revise(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	if target == c.B {
		return c.reviseB(solution)
	}
	return c.reviseVar(target, solution)
}

func (c *ReifiedMemberOf[V, CD, M]) reviseB(solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedMemberOf: variable %d has no domain", c.B)
	}
	if dB.IsSingleton() {
		return csply.Unchanged[V, CD, M](), nil
	}

	surviving, err := c.survivingRows(solution)
	if err != nil {
		return csply.ReviseOutcome[V, CD, M]{}, err
	}
	if len(surviving) > 0 {
		return csply.Unchanged[V, CD, M](), nil
	}
	narrowed := dB.Filter(func(v V) bool { return v == c.FalseValue })
	return csply.PrunedTo(solution.WithDomain(c.B, narrowed)), nil
}

func (c *ReifiedMemberOf[V, CD, M]) reviseVar(target csply.VariableId, solution *csply.Solution[V, CD, M]) (csply.ReviseOutcome[V, CD, M], error) {
	idx := -1
	for i, v := range c.Vars {
		if v == target {
			idx = i
			break
		}
	}
	if idx == -1 {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedMemberOf: variable %d is not part of this constraint", target)
	}

	dB, ok := solution.Domain(c.B)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedMemberOf: variable %d has no domain", c.B)
	}
	bVal, bKnown := dB.SingletonValue()
	if !bKnown || bVal != c.TrueValue {
		return csply.Unchanged[V, CD, M](), nil
	}

	surviving, err := c.survivingRows(solution)
	if err != nil {
		return csply.ReviseOutcome[V, CD, M]{}, err
	}
	allowed := make(map[V]struct{}, len(surviving))
	for _, rowIdx := range surviving {
		allowed[c.Table[rowIdx][idx]] = struct{}{}
	}

	dTarget, ok := solution.Domain(target)
	if !ok {
		return csply.ReviseOutcome[V, CD, M]{}, fmt.Errorf("ReifiedMemberOf: variable %d has no domain", target)
	}
	narrowed := dTarget.Filter(func(v V) bool {
		_, ok := allowed[v]
		return ok
	})
	if narrowed.Count() == dTarget.Count() {
		return csply.Unchanged[V, CD, M](), nil
	}
	return csply.PrunedTo(solution.WithDomain(target, narrowed)), nil
}
