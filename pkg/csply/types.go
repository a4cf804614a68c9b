package csply

// VariableId identifies a variable within one problem instance. It is
// stable for the lifetime of a Solution and carries no meaning beyond
// identity.
type VariableId uint32

// ConstraintPriority governs worklist ordering: higher-priority arcs
// are popped before lower-priority ones. Global constraints that prune
// more per revision (AllDifferent, SumOf) should generally run at a
// higher priority than simple binary constraints.
type ConstraintPriority int

const (
	PriorityLow      ConstraintPriority = 10
	PriorityNormal   ConstraintPriority = 50
	PriorityHigh     ConstraintPriority = 100
	PriorityVeryHigh ConstraintPriority = 200
)

// ConstraintDescriptor is diagnostics-only metadata a constraint
// exposes about itself: a short name and a human-readable rendering.
// Never consulted by the propagation engine.
type ConstraintDescriptor struct {
	Name        string
	Description string
}
