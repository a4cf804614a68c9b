package csply

import (
	"sort"

	"github.com/gopropagate/csply/pkg/csply/pmap"
)

// Solution is an immutable snapshot of a constraint problem's current
// state: a binding from every variable to its remaining candidate
// domain, a binding from every variable to caller-supplied metadata
// (consulted only by heuristics, never by the engine), and a shared
// handle to the problem's Semantics.
//
// Every mutating-looking operation returns a new Solution; the
// receiver is never modified. Because the domain and metadata maps
// are backed by pmap.Map (a persistent Patricia trie), producing a
// child that differs in one variable's domain allocates only the
// nodes on that key's path and shares everything else with its
// parent.
type Solution[V Value, CD any, M any] struct {
	domains   pmap.Map[Domain[V]]
	metadata  pmap.Map[M]
	semantics DomainSemantics[V, CD, M]
}

// NewSolution builds the initial snapshot for a solve.
func NewSolution[V Value, CD any, M any](
	domains pmap.Map[Domain[V]],
	metadata pmap.Map[M],
	semantics DomainSemantics[V, CD, M],
) *Solution[V, CD, M] {
	return &Solution[V, CD, M]{domains: domains, metadata: metadata, semantics: semantics}
}

// Domain returns variable v's current candidate domain.
func (s *Solution[V, CD, M]) Domain(v VariableId) (Domain[V], bool) {
	return s.domains.Get(uint32(v))
}

// Metadata returns the caller-supplied metadata tag for variable v.
func (s *Solution[V, CD, M]) Metadata(v VariableId) (M, bool) {
	return s.metadata.Get(uint32(v))
}

// Semantics returns the shared Semantics handle.
func (s *Solution[V, CD, M]) Semantics() DomainSemantics[V, CD, M] {
	return s.semantics
}

// Variables returns every bound variable, sorted ascending by id so
// callers that iterate for deterministic output don't have to sort
// themselves.
func (s *Solution[V, CD, M]) Variables() []VariableId {
	vars := make([]VariableId, 0, s.domains.Len())
	s.domains.Range(func(k uint32, _ Domain[V]) bool {
		vars = append(vars, VariableId(k))
		return true
	})
	sort.Slice(vars, func(i, j int) bool { return vars[i] < vars[j] })
	return vars
}

// IsComplete reports whether every domain is a singleton.
func (s *Solution[V, CD, M]) IsComplete() bool {
	complete := true
	s.domains.Range(func(_ uint32, d Domain[V]) bool {
		if !d.IsSingleton() {
			complete = false
			return false
		}
		return true
	})
	return complete
}

// WithDomain returns a new Solution with variable v's domain replaced
// by d, sharing metadata, semantics, and every other variable's domain
// with the receiver.
func (s *Solution[V, CD, M]) WithDomain(v VariableId, d Domain[V]) *Solution[V, CD, M] {
	return &Solution[V, CD, M]{
		domains:   s.domains.Set(uint32(v), d),
		metadata:  s.metadata,
		semantics: s.semantics,
	}
}

// CloneWithDomains returns a new Solution that reuses the receiver's
// metadata and semantics handles but replaces the whole domain map.
// The search strategies in this package do not call it; they narrow
// one variable at a time with WithDomain.
func (s *Solution[V, CD, M]) CloneWithDomains(domains pmap.Map[Domain[V]]) *Solution[V, CD, M] {
	return &Solution[V, CD, M]{
		domains:   domains,
		metadata:  s.metadata,
		semantics: s.semantics,
	}
}

// AssignedValues extracts every variable's singleton value. Only
// meaningful when IsComplete() is true; variables whose domain is not
// a singleton are omitted.
func (s *Solution[V, CD, M]) AssignedValues() map[VariableId]V {
	out := make(map[VariableId]V, s.domains.Len())
	s.domains.Range(func(k uint32, d Domain[V]) bool {
		if v, ok := d.SingletonValue(); ok {
			out[VariableId(k)] = v
		}
		return true
	})
	return out
}
