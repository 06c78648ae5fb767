package driver

import (
	"context"

	"github.com/katalvlaran/altproof/annotation"
)

// Row is one (alpha, proofLength) cell of a Table: the best c found for
// that combination and every annotation that achieved it.
type Row struct {
	Alpha       float64
	ProofLength int
	BestC       float64
	Found       bool
	Annotations []annotation.Annotation
}

// Table is the result of sweeping FindBestProof over every (alpha, length)
// pair in a Tabulate call. Rendering it to text is render.WriteTable's
// concern, not this package's — driver stays I/O-free.
type Table struct {
	Rows []Row
}

// Tabulate runs FindBestProof once per (alpha, length) pair in the
// cross-product of alphas and lengths, recording one Row per pair. The
// original single-length CLI loop has no analog of this sweep. cmd/altproof
// runs a single proof length and does not call Tabulate; render.WriteTable
// formats the Table it returns.
func Tabulate(ctx context.Context, lengths []int, alphas []float64, opts ...Option) (Table, error) {
	var t Table
	for _, alpha := range alphas {
		for _, length := range lengths {
			rowOpts := append(append([]Option{}, opts...), WithAlpha(alpha))
			res, err := FindBestProof(ctx, length, rowOpts...)
			if err != nil {
				return Table{}, err
			}
			t.Rows = append(t.Rows, Row{
				Alpha:       alpha,
				ProofLength: length,
				BestC:       res.BestC,
				Found:       res.Found(),
				Annotations: res.BestAnnotations,
			})
		}
	}

	return t, nil
}
