// Package driver iterates enumerated annotations for a requested proof
// length, runs the feasibility search on each, and tracks the tie-tolerant
// global best, the way tsp.SolveWithMatrix drives a single algorithm over
// a fixed problem instance and collects its result.
package driver

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/altproof/annotation"
	"github.com/katalvlaran/altproof/internal/xlog"
	"github.com/katalvlaran/altproof/lpmodel"
	"github.com/katalvlaran/altproof/lpsolver"
	"github.com/katalvlaran/altproof/search"
)

// Option configures FindBestProof and Tabulate.
type Option func(*config)

type config struct {
	regime       annotation.Regime
	searchOpts   []search.Option
	logger       *zerolog.Logger
	tieTolerance float64
}

// DefaultTieTolerance is how close two candidate c values must be to count
// as tied rather than one strictly beating the other.
const DefaultTieTolerance = 1e-9

func newConfig(opts ...Option) config {
	cfg := config{
		regime:       annotation.Binary,
		logger:       xlog.Default(),
		tieTolerance: DefaultTieTolerance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRegime selects the Binary (default) or Randomized annotation regime.
func WithRegime(r annotation.Regime) Option { return func(cfg *config) { cfg.regime = r } }

// WithStartC forwards to search.WithStartC for every annotation searched.
func WithStartC(c float64) Option {
	return func(cfg *config) { cfg.searchOpts = append(cfg.searchOpts, search.WithStartC(c)) }
}

// WithSearchCap forwards to search.WithSearchCap.
func WithSearchCap(k int) Option {
	return func(cfg *config) { cfg.searchOpts = append(cfg.searchOpts, search.WithSearchCap(k)) }
}

// WithSearchDepth forwards to search.WithSearchDepth.
func WithSearchDepth(d int) Option {
	return func(cfg *config) { cfg.searchOpts = append(cfg.searchOpts, search.WithSearchDepth(d)) }
}

// WithAlpha forwards to search.WithAlpha.
func WithAlpha(a float64) Option {
	return func(cfg *config) { cfg.searchOpts = append(cfg.searchOpts, search.WithAlpha(a)) }
}

// WithLogger overrides the default stderr logger, e.g. with a test sink.
func WithLogger(l *zerolog.Logger) Option { return func(cfg *config) { cfg.logger = l } }

// WithTieTolerance overrides DefaultTieTolerance.
func WithTieTolerance(t float64) Option { return func(cfg *config) { cfg.tieTolerance = t } }

// Result is the tie-tolerant outcome of searching every annotation of one
// proof length: the best c found, every annotation that tied for it, the
// matching witness solutions, and the Programs the witnesses were read out
// of. BestPrograms travels alongside BestWitnesses because a witness's
// variable values are meaningless without the Program whose AIndex/BIndex/
// XIndex they are addressed by — render.Render needs both together.
type Result struct {
	BestC           float64
	BestAnnotations []annotation.Annotation
	BestWitnesses   []*lpsolver.Solution
	BestPrograms    []*lpmodel.Program
	found           bool
}

// Found reports whether any annotation of the requested length was
// feasible at all.
func (r Result) Found() bool { return r.found }

func classify(err error) error {
	switch {
	case errors.Is(err, lpmodel.ErrInvalidAnnotation), errors.Is(err, annotation.ErrInvalidAnnotation):
		return fmt.Errorf("%w: %w", ErrInvalidAnnotation, err)
	case errors.Is(err, lpsolver.ErrSolverFailed):
		return fmt.Errorf("%w: %w", ErrSolverError, err)
	case errors.Is(err, lpmodel.ErrInvalidArgument), errors.Is(err, search.ErrInvalidArgument):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	default:
		return err
	}
}

// FindBestProof converts the user-facing even proofLength to the odd
// internal annotation length L = proofLength-1, enumerates every
// annotation of that length under cfg.regime, runs search.Run on each, and
// maintains the tie-tolerant global best per annotation-decision event,
// logged via internal/xlog.
func FindBestProof(ctx context.Context, proofLength int, opts ...Option) (Result, error) {
	if proofLength < 4 || proofLength%2 != 0 {
		return Result{}, fmt.Errorf("driver: proofLength=%d must be even and >= 4: %w", proofLength, ErrInvalidArgument)
	}
	cfg := newConfig(opts...)
	l := proofLength - 1

	enum, err := annotation.Enumerate(l, cfg.regime)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	solver := lpsolver.NewAdapter()
	var best Result

	for {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("driver: %w", err)
		}
		a, more := enum.Next()
		if !more {
			break
		}

		res, ok, err := search.Run(ctx, solver, a, cfg.searchOpts...)
		if err != nil {
			return Result{}, classify(err)
		}
		if !ok {
			cfg.logger.Debug().Str("event", "annotation_skipped").Ints("annotation", symbolInts(a)).Msg("infeasible at search start")
			continue
		}
		if res.CapReached {
			cfg.logger.Warn().Str("event", "cap_reached").Ints("annotation", symbolInts(a)).Float64("best_c", res.BestC).Msg("exponential probe exhausted search cap")
		}

		witness := res.Witness
		switch {
		case !best.found, res.BestC > best.BestC+cfg.tieTolerance:
			best = Result{
				BestC:           res.BestC,
				BestAnnotations: []annotation.Annotation{a},
				BestWitnesses:   []*lpsolver.Solution{&witness},
				BestPrograms:    []*lpmodel.Program{res.Program},
				found:           true,
			}
			cfg.logger.Info().Str("event", "new_best").Ints("annotation", symbolInts(a)).Float64("best_c", res.BestC).Msg("global best replaced")
		case res.BestC >= best.BestC-cfg.tieTolerance:
			best.BestAnnotations = append(best.BestAnnotations, a)
			best.BestWitnesses = append(best.BestWitnesses, &witness)
			best.BestPrograms = append(best.BestPrograms, res.Program)
			cfg.logger.Info().Str("event", "tied_best").Ints("annotation", symbolInts(a)).Float64("best_c", res.BestC).Msg("annotation tied the global best")
		}
	}

	return best, nil
}

func symbolInts(a annotation.Annotation) []int {
	out := make([]int, len(a))
	for i, s := range a {
		out[i] = int(s)
	}

	return out
}
