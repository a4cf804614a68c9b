package csply

// ReviseOutcome is the result of one constraint revision. The zero
// value (Changed == false) represents the Unchanged outcome — no
// pruning occurred and nothing needs to be re-enqueued. Pruned is
// represented by Changed == true with Pruned holding the new snapshot,
// which differs from the input solution only in target_variable's
// domain. A revision that needs to signal a programming error returns
// a non-nil error instead of a ReviseOutcome (see Constraint.Revise).
type ReviseOutcome[V Value, CD any, M any] struct {
	Changed bool
	Pruned  *Solution[V, CD, M]
}

// Unchanged is the no-op revision outcome.
func Unchanged[V Value, CD any, M any]() ReviseOutcome[V, CD, M] {
	return ReviseOutcome[V, CD, M]{}
}

// PrunedTo wraps a narrowed solution as a Pruned outcome.
func PrunedTo[V Value, CD any, M any](next *Solution[V, CD, M]) ReviseOutcome[V, CD, M] {
	return ReviseOutcome[V, CD, M]{Changed: true, Pruned: next}
}

// Constraint is the behavioural object every built-in and user-defined
// constraint implements.
//
// Revise MUST be a pure function of (target, solution): it must not
// mutate solution, must not depend on external state, and must not
// prune any variable's domain other than target's (a constraint may
// read other variables' domains to decide how to prune target, and
// reified constraints may want to prune more than one variable — that
// case is handled by the engine re-invoking Revise once per variable
// the constraint mentions, never by one call pruning several at once).
//
// Revising a variable not present in Variables() is a programming
// error and must return a non-nil error, never a panic — the engine
// has no target to attribute the panic to.
type Constraint[V Value, CD any, M any] interface {
	// Variables returns the ordered list of variable ids this
	// constraint relates. Each (variable, constraint) pair forms one
	// arc in the worklist.
	Variables() []VariableId

	// Priority governs worklist ordering; higher values are revised
	// first when multiple arcs are pending simultaneously.
	Priority() ConstraintPriority

	// Descriptor returns diagnostics-only metadata. Never consulted
	// by the engine.
	Descriptor() ConstraintDescriptor

	// Revise computes the effect of this constraint on target's
	// domain, given the current solution.
	Revise(target VariableId, solution *Solution[V, CD, M]) (ReviseOutcome[V, CD, M], error)
}
