package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/altproof/annotation"
	"github.com/katalvlaran/altproof/driver"
)

// WriteTable writes t as plain text, one line per (alpha, proof length)
// row: the best c found and every annotation that achieved it, or a
// "no feasible annotation" note when the row's search turned up nothing.
func WriteTable(t driver.Table, w io.Writer) error {
	for _, row := range t.Rows {
		if !row.Found {
			if _, err := fmt.Fprintf(w, "alpha=%g length=%d: no feasible annotation\n", row.Alpha, row.ProofLength); err != nil {
				return err
			}

			continue
		}
		if _, err := fmt.Fprintf(w, "alpha=%g length=%d: best_c=%g annotations=%d\n", row.Alpha, row.ProofLength, row.BestC, len(row.Annotations)); err != nil {
			return err
		}
		for _, a := range row.Annotations {
			if _, err := fmt.Fprintf(w, "  %s\n", formatAnnotation(a)); err != nil {
				return err
			}
		}
	}

	return nil
}

func formatAnnotation(a annotation.Annotation) string {
	parts := make([]string, len(a))
	for i, s := range a {
		parts[i] = s.String()
	}

	return strings.Join(parts, " ")
}
