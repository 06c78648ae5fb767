package annotation

import "errors"

// ErrInvalidAnnotation indicates a sequence violates a structural
// invariant (wrong parity, bad endpoints, negative or non-zero-terminating
// quantifier count, misplaced Speedup3).
var ErrInvalidAnnotation = errors.New("annotation: invalid annotation")

// ErrBadLength indicates the enumerator was asked for an L that is even or
// smaller than 3; both are precondition violations, not runtime failures.
var ErrBadLength = errors.New("annotation: length must be an odd integer >= 3")
