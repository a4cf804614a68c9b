package csply

// Domain is the capability interface every candidate-set
// representation implements. All methods are value-returning: none of
// them mutate the receiver. A Domain instance, once built, never
// changes; pruning always produces a new Domain.
//
// Representations may additionally implement MinMaxDomain when their
// values are orderable; the engine itself never requires Min/Max,
// SumOf's bounds reasoning does.
type Domain[V Value] interface {
	// Count returns the number of candidate values remaining.
	Count() int

	// IsEmpty reports Count() == 0. An empty domain signals that the
	// branch currently being explored is infeasible.
	IsEmpty() bool

	// IsSingleton reports Count() == 1.
	IsSingleton() bool

	// SingletonValue returns the sole remaining value and true if
	// IsSingleton(), or the zero value and false otherwise.
	SingletonValue() (V, bool)

	// Contains reports whether v is still a candidate.
	Contains(v V) bool

	// Filter returns a new Domain containing only the values for
	// which keep returns true. May change representation (a Range
	// domain that loses contiguity degrades to a discrete one).
	Filter(keep func(V) bool) Domain[V]

	// Intersect returns a new Domain containing values present in
	// both the receiver and other. Must return an equivalent result
	// regardless of which operand it is called on.
	Intersect(other Domain[V]) Domain[V]

	// Clone returns a copy of the domain. Because every
	// representation here is immutable, implementations are free to
	// return the receiver itself.
	Clone() Domain[V]

	// Equal reports whether the receiver and other contain exactly
	// the same values.
	Equal(other Domain[V]) bool

	// IterateValues calls visit for each remaining value. Iteration
	// stops early if visit returns false. Order is unspecified for
	// unordered representations.
	IterateValues(visit func(V) bool)

	// String renders the domain for diagnostics.
	String() string
}

// MinMaxDomain is implemented by representations whose values are
// orderable, giving access to the extremes without a full scan.
type MinMaxDomain[V Value] interface {
	Domain[V]
	Min() V
	Max() V
}

// domainsEqual is a representation-agnostic fallback equality check:
// same cardinality and every value in d is contained in other.
func domainsEqual[V Value](d, other Domain[V]) bool {
	if d.Count() != other.Count() {
		return false
	}
	equal := true
	d.IterateValues(func(v V) bool {
		if !other.Contains(v) {
			equal = false
			return false
		}
		return true
	})
	return equal
}
