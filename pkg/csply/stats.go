package csply

import "time"

// PerConstraintStats accumulates per-constraint counters across one
// solve: how many times it was revised, how many of those revisions
// actually pruned a domain, and the total wall-clock time spent inside
// Revise.
type PerConstraintStats struct {
	Revisions int
	Prunings  int
	TimeSpent time.Duration
}

// SearchStats accumulates counters for one solve call. Mutated only by
// the currently active strategy invocation; no other goroutine may
// read it while a solve is in progress. Rendering these counters into
// a report is the caller's problem, not the engine's — the data lives
// here, the table does not.
type SearchStats struct {
	NodesVisited int
	Backtracks   int

	// ConstraintStats is keyed by the constraint's position in the
	// slice passed to the engine, matching constraintRef.
	ConstraintStats map[int]*PerConstraintStats
}

// NewSearchStats returns a zeroed SearchStats ready for one solve.
func NewSearchStats() *SearchStats {
	return &SearchStats{ConstraintStats: make(map[int]*PerConstraintStats)}
}

func (s *SearchStats) recordRevision(constraint constraintRef, dur time.Duration, pruned bool) {
	cs, ok := s.ConstraintStats[int(constraint)]
	if !ok {
		cs = &PerConstraintStats{}
		s.ConstraintStats[int(constraint)] = cs
	}
	cs.Revisions++
	cs.TimeSpent += dur
	if pruned {
		cs.Prunings++
	}
}

// Merge folds other's counters into s, used by RestartingSearch to
// accumulate cumulative statistics across restart attempts: the total
// across restarts is the sum of each attempt's own stats.
func (s *SearchStats) Merge(other *SearchStats) {
	if other == nil {
		return
	}
	s.NodesVisited += other.NodesVisited
	s.Backtracks += other.Backtracks
	for id, cs := range other.ConstraintStats {
		existing, ok := s.ConstraintStats[id]
		if !ok {
			existing = &PerConstraintStats{}
			s.ConstraintStats[id] = existing
		}
		existing.Revisions += cs.Revisions
		existing.Prunings += cs.Prunings
		existing.TimeSpent += cs.TimeSpent
	}
}
