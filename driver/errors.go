package driver

import "errors"

// ErrInvalidArgument indicates a malformed proofLength (not even, or below
// the minimum 4), rejected before enumeration starts, or a bad search
// Option, rejected by search.Run on the first annotation.
var ErrInvalidArgument = errors.New("driver: invalid argument")

// ErrInvalidAnnotation indicates the enumerator yielded an annotation that
// failed its own invariants — a bug in annotation.Enumerate, not user
// input. Fatal.
var ErrInvalidAnnotation = errors.New("driver: invalid annotation")

// ErrSolverError indicates the LP solver returned an unclassifiable status
// or failed outright. Fatal.
var ErrSolverError = errors.New("driver: solver error")
