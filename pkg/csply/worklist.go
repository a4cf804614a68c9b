package csply

import "container/heap"

// constraintRef identifies a constraint by its position in the slice
// the propagation engine was given; cheap to compare and hash, unlike
// the Constraint interface value itself.
type constraintRef int

type arcKey struct {
	variable   VariableId
	constraint constraintRef
}

type worklistItem struct {
	priority   ConstraintPriority
	seq        uint64
	variable   VariableId
	constraint constraintRef
}

// worklistHeap implements container/heap.Interface over pending arcs.
// Highest priority first; ties broken by insertion order (seq), giving
// a deterministic but otherwise unspecified tiebreak.
type worklistHeap []worklistItem

func (h worklistHeap) Len() int { return len(h) }

func (h worklistHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h worklistHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *worklistHeap) Push(x any) {
	*h = append(*h, x.(worklistItem))
}

func (h *worklistHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Worklist is the priority queue of pending (variable, constraint)
// arcs the propagation engine drains, with membership tracking so a
// pair already queued is never enqueued twice. No generic priority-
// heap library with a usable API was available to reach for, so this
// is built on the standard library's container/heap.
type Worklist struct {
	heap    worklistHeap
	members map[arcKey]struct{}
	nextSeq uint64
}

// NewWorklist returns an empty Worklist.
func NewWorklist() *Worklist {
	w := &Worklist{members: make(map[arcKey]struct{})}
	heap.Init(&w.heap)
	return w
}

// Push enqueues (variable, constraint) at the given priority. A
// pair already queued is a no-op; the priority used is always the one
// supplied at push time.
func (w *Worklist) Push(priority ConstraintPriority, variable VariableId, constraint constraintRef) {
	key := arcKey{variable: variable, constraint: constraint}
	if _, queued := w.members[key]; queued {
		return
	}
	w.members[key] = struct{}{}
	heap.Push(&w.heap, worklistItem{
		priority:   priority,
		seq:        w.nextSeq,
		variable:   variable,
		constraint: constraint,
	})
	w.nextSeq++
}

// Pop removes and returns the highest-priority arc, or ok == false if
// the worklist is empty.
func (w *Worklist) Pop() (variable VariableId, constraint constraintRef, ok bool) {
	if w.heap.Len() == 0 {
		return 0, 0, false
	}
	item := heap.Pop(&w.heap).(worklistItem)
	delete(w.members, arcKey{variable: item.variable, constraint: item.constraint})
	return item.variable, item.constraint, true
}

// IsEmpty reports whether any arcs remain.
func (w *Worklist) IsEmpty() bool { return w.heap.Len() == 0 }
