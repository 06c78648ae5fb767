// Package lpsolver submits an lpmodel.Program to a simplex solver and
// classifies the result.
package lpsolver

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/altproof/lpmodel"
)

// Status classifies a solve attempt.
type Status int

const (
	// Feasible means a nonnegative assignment satisfying every constraint
	// exists. An originally Unbounded region is folded into Feasible here,
	// since an unbounded feasible region is still non-empty.
	Feasible Status = iota
	// Infeasible means no assignment satisfies every constraint.
	Infeasible
	// SolverError means the solver returned an unclassifiable status or
	// failed outright; callers must treat this as fatal.
	SolverError
)

func (s Status) String() string {
	switch s {
	case Feasible:
		return "Feasible"
	case Infeasible:
		return "Infeasible"
	case SolverError:
		return "SolverError"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution holds a witness assignment, one value per lpmodel.Program
// variable index (Program.AIndex/BIndex/XIndex address into it). Values is
// nil when no witness was computed (infeasible, or an unbounded region
// whose optimum was not attained).
type Solution struct {
	Values []float64
}

// At reads the value of a variable addressed by idx, or 0 if no witness is
// available.
func (s Solution) At(idx int) float64 {
	if idx < 0 || idx >= len(s.Values) {
		return 0
	}

	return s.Values[idx]
}

// DefaultTolerance is the numerical tolerance passed to the simplex solver;
// callers must not depend on feasibility decisions at this boundary, since
// it is an implementation detail of the solver rather than a property of
// the program being solved.
const DefaultTolerance = 1e-10

// Adapter submits Programs to gonum's simplex implementation. The zero
// value is ready to use.
type Adapter struct {
	// Tolerance overrides DefaultTolerance when non-zero.
	Tolerance float64
}

// NewAdapter returns an Adapter using DefaultTolerance.
func NewAdapter() *Adapter {
	return &Adapter{Tolerance: DefaultTolerance}
}

// Solve lowers p's mixed equality/inequality rows into gonum's
// equality-plus-slack standard form (each Ge row gains one slack column)
// and classifies the result. context.Context is accepted so a caller can
// bound wall-clock time with an external deadline check between solves;
// Solve itself performs a single blocking call and no goroutines, so
// cancellation is only checked at entry, not mid-solve.
func (ad *Adapter) Solve(ctx context.Context, p *lpmodel.Program) (Status, Solution, error) {
	if err := ctx.Err(); err != nil {
		return SolverError, Solution{}, fmt.Errorf("lpsolver: %w: %w", ErrSolverFailed, err)
	}

	tol := ad.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	nVars := p.VarCount()
	nSlack := 0
	for _, c := range p.Constraints {
		if c.Kind == lpmodel.Ge {
			nSlack++
		}
	}
	cols := nVars + nSlack
	rows := len(p.Constraints)

	A := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	slack := nVars
	for r, c := range p.Constraints {
		for idx, coeff := range c.Coeffs {
			A.Set(r, idx, coeff)
		}
		b[r] = c.RHS
		if c.Kind == lpmodel.Ge {
			A.Set(r, slack, -1)
			slack++
		}
	}

	obj := p.Objective()
	cExt := make([]float64, cols)
	copy(cExt, obj)

	_, x, err := lp.Simplex(cExt, A, b, tol, nil)
	switch {
	case err == nil:
		return Feasible, Solution{Values: x[:nVars]}, nil
	case errors.Is(err, lp.ErrInfeasible):
		return Infeasible, Solution{}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return Feasible, Solution{}, nil
	default:
		return SolverError, Solution{}, fmt.Errorf("lpsolver: %w: %w", ErrSolverFailed, err)
	}
}
