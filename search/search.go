// Package search implements the per-annotation exponential-probe plus
// binary-refinement feasibility search.
package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/altproof/annotation"
	"github.com/katalvlaran/altproof/lpmodel"
	"github.com/katalvlaran/altproof/lpsolver"
)

// Option configures Run: functional options over an immutable config
// struct, never mutated after construction.
type Option func(*config)

type config struct {
	startC      float64
	searchCap   int
	searchDepth int
	alpha       float64
}

// Default knobs, matching the command-line flag defaults.
const (
	DefaultStartC      = 1.0
	DefaultSearchCap   = 3
	DefaultSearchDepth = 6
	DefaultAlpha       = 1.0
)

func newConfig(opts ...Option) config {
	cfg := config{
		startC:      DefaultStartC,
		searchCap:   DefaultSearchCap,
		searchDepth: DefaultSearchDepth,
		alpha:       DefaultAlpha,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStartC sets the initial trial exponent c_start (default 1.0).
func WithStartC(c float64) Option { return func(cfg *config) { cfg.startC = c } }

// WithSearchCap sets how many doubling steps the exponential probe takes
// before giving up (default 3).
func WithSearchCap(k int) Option { return func(cfg *config) { cfg.searchCap = k } }

// WithSearchDepth sets the binary-refinement recursion bound (default 6).
func WithSearchDepth(d int) Option { return func(cfg *config) { cfg.searchDepth = d } }

// WithAlpha sets the generic-slowdown scale alpha (default 1.0).
func WithAlpha(a float64) Option { return func(cfg *config) { cfg.alpha = a } }

// Result is the outcome of searching one annotation: the best c found, a
// witness Program/Solution pair at that c, and whether the exponential
// probe exhausted SearchCap without ever turning infeasible.
type Result struct {
	BestC      float64
	Program    *lpmodel.Program
	Witness    lpsolver.Solution
	CapReached bool
}

func (cfg config) validate() error {
	if cfg.startC <= 0 {
		return fmt.Errorf("search: StartC=%v must be positive: %w", cfg.startC, ErrInvalidArgument)
	}
	if cfg.searchCap <= 0 {
		return fmt.Errorf("search: SearchCap=%d must be positive: %w", cfg.searchCap, ErrInvalidArgument)
	}
	if cfg.searchDepth < 0 {
		return fmt.Errorf("search: SearchDepth=%d must be non-negative: %w", cfg.searchDepth, ErrInvalidArgument)
	}
	if cfg.alpha <= 0 || cfg.alpha > 1 {
		return fmt.Errorf("search: Alpha=%v must be in (0,1]: %w", cfg.alpha, ErrInvalidArgument)
	}

	return nil
}

// probe is a build+solve pair bundled with the c it was evaluated at.
type probe struct {
	c        float64
	program  *lpmodel.Program
	solution lpsolver.Solution
	feasible bool
}

func evaluate(ctx context.Context, solver *lpsolver.Adapter, a annotation.Annotation, alpha, c float64) (probe, error) {
	p, err := lpmodel.Build(a, c, alpha)
	if err != nil {
		return probe{}, err
	}
	status, sol, err := solver.Solve(ctx, p)
	if err != nil {
		return probe{}, err
	}

	return probe{c: c, program: p, solution: sol, feasible: status == lpsolver.Feasible}, nil
}

// Run searches for the supremum feasible c for annotation a: starting from
// StartC, double c up to SearchCap times; on the first c that turns
// infeasible, binary-search in (c/2, c) for SearchDepth steps.
// ok is false when a itself is infeasible at StartC — not an error, just a
// silently skipped annotation. err is non-nil only for the fatal classes
// (invalid annotation, solver failure).
func Run(ctx context.Context, solver *lpsolver.Adapter, a annotation.Annotation, opts ...Option) (result Result, ok bool, err error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return Result{}, false, err
	}

	start, err := evaluate(ctx, solver, a, cfg.alpha, cfg.startC)
	if err != nil {
		return Result{}, false, err
	}
	if !start.feasible {
		return Result{}, false, nil
	}

	best := start
	for step := 0; step < cfg.searchCap; step++ {
		next, err := evaluate(ctx, solver, a, cfg.alpha, best.c*2)
		if err != nil {
			return Result{}, false, err
		}
		if !next.feasible {
			refined, err := binaryRefine(ctx, solver, a, cfg.alpha, best, next, cfg.searchDepth)
			if err != nil {
				return Result{}, false, err
			}

			return Result{BestC: refined.c, Program: refined.program, Witness: refined.solution}, true, nil
		}
		best = next
	}

	return Result{BestC: best.c, Program: best.program, Witness: best.solution, CapReached: true}, true, nil
}

// binaryRefine holds the invariant feasible(low) ∧ ¬feasible(high); at
// depth 0 it prefers high if it turns out feasible, else returns low.
func binaryRefine(ctx context.Context, solver *lpsolver.Adapter, a annotation.Annotation, alpha float64, low, high probe, depth int) (probe, error) {
	if depth == 0 {
		if high.feasible {
			return high, nil
		}

		return low, nil
	}

	mid, err := evaluate(ctx, solver, a, alpha, (low.c+high.c)/2)
	if err != nil {
		return probe{}, err
	}
	if mid.feasible {
		return binaryRefine(ctx, solver, a, alpha, mid, high, depth-1)
	}

	return binaryRefine(ctx, solver, a, alpha, low, mid, depth-1)
}
