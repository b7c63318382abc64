// Package solvererr defines the sentinel error kinds shared by the move
// parser, the group-descent pipelines, and the scramble/mask collaborators.
// All four are fatal by policy: the core recovers nothing, and callers at
// the CLI/HTTP boundary are expected to report and exit/fail the request.
package solvererr

import "errors"

var (
	// ErrParse marks a malformed move token.
	ErrParse = errors.New("parse error")

	// ErrUnsolvableInput marks a sub-state that is not reachable from the
	// goal under a stage's generator: a failed parity or orientation
	// invariant on an out-of-band input.
	ErrUnsolvableInput = errors.New("unsolvable input")

	// ErrSearchBudgetExceeded marks an IDA* search that exhausted its
	// maxFuel without finding a goal state.
	ErrSearchBudgetExceeded = errors.New("search budget exceeded")

	// ErrInvariantViolated marks a failed post-condition of a stage or
	// construction step.
	ErrInvariantViolated = errors.New("invariant violated")
)
