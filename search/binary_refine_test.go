package search

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/altproof/annotation"
	"github.com/katalvlaran/altproof/lpsolver"
)

// TestBinaryRefine_LowOneHighFourDepthSix drives binaryRefine with the
// exact bounds and depth spec scenario 5 names: low=1.0, high=4.0,
// depth=6 on annotation [Speedup2,Speedup2,Slowdown,Slowdown,Slowdown].
// It asserts the returned c is feasible and that stepping past it by
// 2^-5 * (high-low) turns infeasible, exactly the property the scenario
// requires.
func TestBinaryRefine_LowOneHighFourDepthSix(t *testing.T) {
	a := annotation.Annotation{annotation.Speedup2, annotation.Speedup2, annotation.Slowdown, annotation.Slowdown, annotation.Slowdown}
	ad := lpsolver.NewAdapter()
	ctx := context.Background()

	low, err := evaluate(ctx, ad, a, 1.0, 1.0)
	require.NoError(t, err)
	require.True(t, low.feasible, "low=1.0 must be feasible for the refinement invariant to hold")

	high, err := evaluate(ctx, ad, a, 1.0, 4.0)
	require.NoError(t, err)
	require.False(t, high.feasible, "high=4.0 must be infeasible for the refinement invariant to hold")

	best, err := binaryRefine(ctx, ad, a, 1.0, low, high, 6)
	require.NoError(t, err)
	assert.True(t, best.feasible)

	step := math.Pow(2, -5) * (high.c - low.c)
	next, err := evaluate(ctx, ad, a, 1.0, best.c+step)
	require.NoError(t, err)
	assert.False(t, next.feasible)
}
