package csply

import (
	"fmt"
	"runtime/debug"
)

// SolverError is the "solver logic error" kind from the error model: a
// constraint's Revise returned an error, or the caller misused the
// API. It is distinct from infeasibility, which is never an error —
// infeasibility is reported as a nil Solution, not a SolverError.
//
// Stack captures a backtrace at construction time via the standard
// library's runtime/debug, since no third-party backtrace-capture
// library was available to reach for.
type SolverError struct {
	Op    string
	Err   error
	Stack []byte
}

func newSolverError(op string, err error) *SolverError {
	return &SolverError{Op: op, Err: err, Stack: debug.Stack()}
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("csply: %s: %v", e.Op, e.Err)
}

func (e *SolverError) Unwrap() error { return e.Err }
