// Package render formats a solved Program/Solution pair as the
// human-readable alternation-trading proof text it represents, and
// formats a driver.Table as a plain-text tabulation report.
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/altproof/lpmodel"
	"github.com/katalvlaran/altproof/lpsolver"
)

func round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))

	return math.Round(v*scale) / scale
}

// Render walks witness w line by line, rounding every a[i,j]/b[i,j] to
// precision decimal places, and for each line walks j from m-1 down to 0,
// emitting `(Q n^a[i,j])^b[i,j]` for j>=1 (Q alternating ∃/∀ starting from
// the outermost non-zero block) and `DTS[n^a[i,0]]` for j=0. Blocks with
// b[i,j]=0 are skipped as absent.
func Render(p *lpmodel.Program, w lpsolver.Solution, precision int) string {
	var sb strings.Builder
	for i := 0; i < p.N; i++ {
		renderLine(&sb, p, w, i, precision)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func renderLine(sb *strings.Builder, p *lpmodel.Program, w lpsolver.Solution, i, precision int) {
	fmt.Fprintf(sb, "line %d: ", i)

	// Quantifiers alternate starting from ∃ at the first (outermost)
	// non-zero block this loop hits, walking j from m-1 down to 1.
	exists := true
	for j := p.M - 1; j >= 1; j-- {
		b := round(w.At(p.BIndex(i, j)), precision)
		if b == 0 {
			continue
		}
		a := round(w.At(p.AIndex(i, j)), precision)
		q := "∀"
		if exists {
			q = "∃"
		}
		fmt.Fprintf(sb, "(%s n^%g)^%g ", q, a, b)
		exists = !exists
	}

	a0 := round(w.At(p.AIndex(i, 0)), precision)
	fmt.Fprintf(sb, "DTS[n^%g]", a0)
}
