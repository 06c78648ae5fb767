package lpsolver

import "errors"

// ErrSolverFailed wraps any simplex failure that is not a clean
// Infeasible/Unbounded classification (singular basis, Bland's-rule
// cycling guard tripped, zero column, or a context cancellation).
var ErrSolverFailed = errors.New("lpsolver: solver failed")
