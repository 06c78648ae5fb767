package render_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/altproof/annotation"
	"github.com/katalvlaran/altproof/driver"
	"github.com/katalvlaran/altproof/lpmodel"
	"github.com/katalvlaran/altproof/lpsolver"
	"github.com/katalvlaran/altproof/render"
)

func annotationL3() annotation.Annotation {
	return annotation.Annotation{annotation.Speedup2, annotation.Slowdown, annotation.Slowdown}
}

func TestRender_WitnessFromSolver(t *testing.T) {
	p, err := lpmodel.Build(annotationL3(), 1.0, 1.0)
	require.NoError(t, err)

	ad := lpsolver.NewAdapter()
	status, sol, err := ad.Solve(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, lpsolver.Feasible, status)

	out := render.Render(p, sol, 6)
	assert.Equal(t, p.N, strings.Count(out, "line "))
	assert.Contains(t, out, "DTS[n^")
}

func TestWriteTable_RendersFoundAndNotFound(t *testing.T) {
	table := driver.Table{Rows: []driver.Row{
		{Alpha: 1.0, ProofLength: 4, BestC: 1.41, Found: true, Annotations: nil},
		{Alpha: 1.0, ProofLength: 6, Found: false},
	}}

	var buf bytes.Buffer
	require.NoError(t, render.WriteTable(table, &buf))

	out := buf.String()
	assert.Contains(t, out, "best_c=1.41")
	assert.Contains(t, out, "no feasible annotation")
}
