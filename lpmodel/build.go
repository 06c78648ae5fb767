package lpmodel

import (
	"fmt"

	"github.com/katalvlaran/altproof/annotation"
)

// Build translates annotation a, trial exponent c, and generic-slowdown
// scale alpha into a Program by emitting one constraint family per line:
// boundary, first-speedup (two- or three-quantifier opening, gated on
// a[0] == annotation.Speedup3), speedup code 1/2 at every later speedup
// line, and slowdown (alpha applied only to the first of its four lower
// bounds on a[i,0]) at every slowdown line. Build performs no rounding and
// returns ErrInvalidAnnotation rather than panicking on a malformed
// annotation.
func Build(a annotation.Annotation, c, alpha float64, opts ...Option) (*Program, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("lpmodel: %w: %w", ErrInvalidAnnotation, err)
	}
	if c <= 0 {
		return nil, fmt.Errorf("lpmodel: c=%v must be positive: %w", c, ErrInvalidArgument)
	}
	if alpha <= 0 || alpha > 1 {
		return nil, fmt.Errorf("lpmodel: alpha=%v must be in (0,1]: %w", alpha, ErrInvalidArgument)
	}

	cfg := newConfig(opts...)
	_, m := annotation.QuantifierProfile(a)
	n := len(a) + 1

	p := &Program{N: n, M: m, zeroObjective: cfg.zeroObjective}

	p.addBoundary(0)
	p.addBoundary(n - 1)
	p.addGe(0, v(p.AIndex(0, 0)), scaled(p.AIndex(n-1, 0), -1))

	p.addFirstSpeedup(a[0] == annotation.Speedup3)

	for idx := 1; idx < len(a); idx++ {
		line := idx + 1
		switch a[idx] {
		case annotation.Slowdown:
			p.addSlowdown(line, c, alpha)
		case annotation.Speedup2:
			p.addSpeedupCode1(line)
		case annotation.Speedup3:
			p.addSpeedupCode2(line)
		}
	}

	return p, nil
}

// addBoundary pins line (0 or n-1): a[line,0] >= 1, b[line,0] = 1, and
// everything at index >= 1 zeroed out.
func (p *Program) addBoundary(line int) {
	p.addGe(1, v(p.AIndex(line, 0)))
	p.addEq(1, v(p.BIndex(line, 0)))
	for k := 1; k < p.M; k++ {
		p.addEq(0, v(p.AIndex(line, k)))
		p.addEq(0, v(p.BIndex(line, k)))
	}
}

// addFirstSpeedup encodes line 1's fixed two-quantifier opening, optionally
// widened to three quantifiers when the annotation opens with Speedup3.
func (p *Program) addFirstSpeedup(threeQuantifier bool) {
	// a[1,0] = a[0,0] - x[1]
	p.addEq(0, v(p.AIndex(1, 0)), scaled(p.AIndex(0, 0), -1), v(p.XIndex(1)))
	p.addEq(1, v(p.BIndex(1, 0)))

	p.addEq(0, v(p.AIndex(1, 1)))
	p.addGe(0, v(p.BIndex(1, 1)), scaled(p.XIndex(1), -1))
	p.addGe(1, v(p.BIndex(1, 1)))

	p.addEq(0, v(p.AIndex(1, 2)), scaled(p.XIndex(1), -1))
	p.addEq(1, v(p.BIndex(1, 2)))

	for k := 3; k < p.M; k++ {
		p.addEq(0, v(p.AIndex(1, k)))
		if k == 3 && threeQuantifier {
			p.addEq(1, v(p.BIndex(1, 3)))
			continue
		}
		p.addEq(0, v(p.BIndex(1, k)))
	}
}

// addSpeedupCode1 encodes a two-quantifier speedup at line i > 1: a fresh
// opening at indices 0-2, and a right-shift-by-one of the previous line's
// tail into indices 3..m-1.
func (p *Program) addSpeedupCode1(i int) {
	p.addGe(1, v(p.AIndex(i, 0)))
	p.addGe(0, v(p.AIndex(i, 0)), scaled(p.AIndex(i-1, 0), -1), v(p.XIndex(i)))
	p.addGe(0, v(p.BIndex(i, 0)), scaled(p.BIndex(i-1, 0), -1))

	p.addEq(0, v(p.AIndex(i, 1)))
	p.addGe(0, v(p.BIndex(i, 1)), scaled(p.XIndex(i), -1))
	p.addGe(0, v(p.BIndex(i, 1)), scaled(p.BIndex(i-1, 0), -1))

	p.addGe(0, v(p.AIndex(i, 2)), scaled(p.AIndex(i-1, 1), -1))
	p.addGe(0, v(p.AIndex(i, 2)), scaled(p.XIndex(i), -1))
	p.addGe(0, v(p.BIndex(i, 2)), scaled(p.BIndex(i-1, 1), -1))

	for k := 3; k < p.M; k++ {
		p.addEq(0, v(p.AIndex(i, k)), scaled(p.AIndex(i-1, k-1), -1))
		p.addEq(0, v(p.BIndex(i, k)), scaled(p.BIndex(i-1, k-1), -1))
	}
}

// addSpeedupCode2 encodes a three-quantifier speedup at line i: the same
// opening as code 1 through index 2, a fresh repetition at index 3 carried
// from the previous line's b[·,1], and a right-shift-by-two thereafter.
func (p *Program) addSpeedupCode2(i int) {
	p.addGe(1, v(p.AIndex(i, 0)))
	p.addGe(0, v(p.AIndex(i, 0)), scaled(p.AIndex(i-1, 0), -1), v(p.XIndex(i)))
	p.addGe(0, v(p.BIndex(i, 0)), scaled(p.BIndex(i-1, 0), -1))

	p.addEq(0, v(p.AIndex(i, 1)))
	p.addGe(0, v(p.BIndex(i, 1)), scaled(p.XIndex(i), -1))
	p.addGe(0, v(p.BIndex(i, 1)), scaled(p.BIndex(i-1, 0), -1))

	p.addGe(0, v(p.AIndex(i, 2)), scaled(p.AIndex(i-1, 1), -1))
	p.addGe(0, v(p.AIndex(i, 2)), scaled(p.XIndex(i), -1))
	p.addGe(0, v(p.BIndex(i, 2)), scaled(p.BIndex(i-1, 1), -1))

	if 3 < p.M {
		// a[i,3] is pinned to 0, mirroring the first speedup's own
		// three-quantifier slot (a[1,3]=0); only b[i,3] carries the
		// fresh repetition forward.
		p.addEq(0, v(p.AIndex(i, 3)))
		p.addEq(0, v(p.BIndex(i, 3)), scaled(p.BIndex(i-1, 1), -1))
	}
	for k := 4; k < p.M; k++ {
		p.addEq(0, v(p.AIndex(i, k)), scaled(p.AIndex(i-1, k-2), -1))
		p.addEq(0, v(p.BIndex(i, k)), scaled(p.BIndex(i-1, k-2), -1))
	}
}

// addSlowdown encodes a slowdown at line i: four lower bounds on a[i,0]
// (alpha scales only the first), a left-shift-by-one of the previous
// line's tail, and the trailing slot zeroed.
func (p *Program) addSlowdown(i int, c, alpha float64) {
	p.addGe(0, v(p.AIndex(i, 0)), scaled(p.AIndex(i-1, 0), -c*alpha))
	p.addGe(0, v(p.AIndex(i, 0)), scaled(p.AIndex(i-1, 1), -c))
	p.addGe(0, v(p.AIndex(i, 0)), scaled(p.BIndex(i-1, 0), -c))
	p.addGe(0, v(p.AIndex(i, 0)), scaled(p.BIndex(i-1, 1), -c))
	p.addGe(1, v(p.AIndex(i, 0)))

	p.addEq(0, v(p.BIndex(i, 0)), scaled(p.BIndex(i-1, 1), -1))

	for k := 1; k <= p.M-2; k++ {
		p.addEq(0, v(p.AIndex(i, k)), scaled(p.AIndex(i-1, k+1), -1))
		p.addEq(0, v(p.BIndex(i, k)), scaled(p.BIndex(i-1, k+1), -1))
	}
	p.addEq(0, v(p.AIndex(i, p.M-1)))
	p.addEq(0, v(p.BIndex(i, p.M-1)))
}
