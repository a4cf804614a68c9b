package heuristics

import "github.com/gopropagate/csply/pkg/csply"

// Never never restarts. Implements csply.RestartPolicy.
type Never struct{}

func (Never) ShouldRestart(*csply.SearchStats) bool { return false }

// AfterNBacktracks restarts once the attempt's backtrack count exceeds
// MaxBacktracks. Implements csply.RestartPolicy.
type AfterNBacktracks struct {
	MaxBacktracks int
}

func (p AfterNBacktracks) ShouldRestart(attempt *csply.SearchStats) bool {
	return attempt.Backtracks > p.MaxBacktracks
}
