// Command altproof searches for the best alternation-trading lower bound
// of a requested proof length and prints the resulting proof.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/altproof/driver"
	"github.com/katalvlaran/altproof/internal/xlog"
	"github.com/katalvlaran/altproof/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("altproof", flag.ContinueOnError)
	proofLength := fs.Int("proof_length", 0, "even number of proof lines (required)")
	searchStart := fs.Float64("search_start", 1.0, "initial trial exponent c")
	searchCap := fs.Int("search_cap", 3, "exponential-probe doubling budget")
	searchDepth := fs.Int("search_depth", 6, "binary-refinement recursion depth")
	alpha := fs.Float64("alpha", 1.0, "generic-slowdown scale in (0,1]")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *proofLength == 0 {
		fmt.Fprintln(os.Stderr, "altproof: --proof_length is required")

		return 2
	}

	log := xlog.Default()
	opts := []driver.Option{
		driver.WithStartC(*searchStart),
		driver.WithSearchCap(*searchCap),
		driver.WithSearchDepth(*searchDepth),
		driver.WithAlpha(*alpha),
		driver.WithLogger(log),
	}

	res, err := driver.FindBestProof(context.Background(), *proofLength, opts...)
	if err != nil {
		log.Error().Err(err).Msg("search failed")
		switch {
		case errors.Is(err, driver.ErrInvalidArgument), errors.Is(err, driver.ErrInvalidAnnotation):
			return 2
		case errors.Is(err, driver.ErrSolverError):
			return 1
		default:
			return 1
		}
	}
	if !res.Found() {
		fmt.Fprintln(stdout, "no feasible annotation found at the starting exponent")

		return 0
	}

	fmt.Fprintf(stdout, "best c = %g, %d tied annotation(s)\n\n", res.BestC, len(res.BestAnnotations))
	for i, p := range res.BestPrograms {
		fmt.Fprintf(stdout, "--- annotation %d ---\n", i)
		fmt.Fprint(stdout, render.Render(p, *res.BestWitnesses[i], 6))
		fmt.Fprintln(stdout)
	}

	return 0
}
