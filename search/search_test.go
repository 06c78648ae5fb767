package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/altproof/annotation"
	"github.com/katalvlaran/altproof/lpsolver"
	"github.com/katalvlaran/altproof/search"
)

func l3() annotation.Annotation {
	return annotation.Annotation{annotation.Speedup2, annotation.Slowdown, annotation.Slowdown}
}

func TestRun_FindsBetweenOneAndTwo(t *testing.T) {
	ad := lpsolver.NewAdapter()
	res, ok, err := search.Run(context.Background(), ad, l3(),
		search.WithStartC(1.0), search.WithSearchCap(2), search.WithSearchDepth(8))
	require.NoError(t, err)
	require.True(t, ok)

	assert.Greater(t, res.BestC, 1.0)
	assert.Less(t, res.BestC, 2.0)
	assert.False(t, res.CapReached)
	assert.NotNil(t, res.Program)
}

func TestRun_SkipsAnnotationInfeasibleAtStart(t *testing.T) {
	ad := lpsolver.NewAdapter()
	_, ok, err := search.Run(context.Background(), ad, l3(), search.WithStartC(2.0))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRun_CapReachedWhenNeverInfeasible(t *testing.T) {
	ad := lpsolver.NewAdapter()
	res, ok, err := search.Run(context.Background(), ad, l3(),
		search.WithStartC(0.1), search.WithSearchCap(2))
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, res.CapReached)
}

func TestRun_RejectsInvalidOptions(t *testing.T) {
	ad := lpsolver.NewAdapter()
	_, _, err := search.Run(context.Background(), ad, l3(), search.WithStartC(-1))
	require.ErrorIs(t, err, search.ErrInvalidArgument)

	_, _, err = search.Run(context.Background(), ad, l3(), search.WithSearchCap(0))
	require.ErrorIs(t, err, search.ErrInvalidArgument)

	_, _, err = search.Run(context.Background(), ad, l3(), search.WithSearchDepth(-1))
	require.ErrorIs(t, err, search.ErrInvalidArgument)

	_, _, err = search.Run(context.Background(), ad, l3(), search.WithAlpha(0))
	require.ErrorIs(t, err, search.ErrInvalidArgument)
}

func TestRun_RejectsInvalidAnnotation(t *testing.T) {
	ad := lpsolver.NewAdapter()
	bad := annotation.Annotation{annotation.Slowdown}
	_, _, err := search.Run(context.Background(), ad, bad)
	assert.Error(t, err)
}
