// Package lpmodel translates a validated annotation, a trial exponent c,
// and a generic-slowdown scale alpha into a linear program whose
// feasibility is equivalent to the existence of an alternation-trading
// proof of that shape.
package lpmodel

// Kind distinguishes an equality constraint from a greater-or-equal one;
// the builder never needs a plain less-or-equal row.
type Kind int

const (
	// Eq is a linear equality: Σ coeff·var = RHS.
	Eq Kind = iota
	// Ge is a linear inequality: Σ coeff·var ≥ RHS.
	Ge
)

// Constraint is one row of the generated LP, a flat coefficient map keyed
// by dense variable index (see Program.AIndex/BIndex/XIndex) rather than a
// string-keyed "a_i_j" mapping, so rows can be built and consumed without
// any string allocation or parsing.
type Constraint struct {
	Kind   Kind
	Coeffs map[int]float64
	RHS    float64
}

// Program is a complete LP instance: dimensions, derived variable layout,
// and the constraint list. Variables are laid out as n*m a-slots, then n*m
// b-slots, then n x-slots, each block internally row-major by (i,j).
type Program struct {
	N int // number of proof lines, L+1
	M int // variable width per line

	Constraints []Constraint

	zeroObjective bool
}

// AIndex returns the dense variable index of a[i,j].
func (p *Program) AIndex(i, j int) int { return i*p.M + j }

// BIndex returns the dense variable index of b[i,j].
func (p *Program) BIndex(i, j int) int { return p.N*p.M + i*p.M + j }

// XIndex returns the dense variable index of x[i].
func (p *Program) XIndex(i int) int { return 2*p.N*p.M + i }

// VarCount returns the total number of LP variables, n*(2m+1).
func (p *Program) VarCount() int { return 2*p.N*p.M + p.N }

// Objective returns the dense minimize-coefficient vector: the mild
// original-rule objective sums every b and x variable; WithZeroObjective
// makes it the all-zero vector (pure feasibility). Either is valid per the
// feasibility-preserving contract: only the chosen witness can differ.
func (p *Program) Objective() []float64 {
	c := make([]float64, p.VarCount())
	if p.zeroObjective {
		return c
	}
	for i := 0; i < p.N; i++ {
		for j := 0; j < p.M; j++ {
			c[p.BIndex(i, j)] = 1
		}
		c[p.XIndex(i)] = 1
	}

	return c
}

func (p *Program) addEq(rhs float64, terms ...term) {
	p.Constraints = append(p.Constraints, buildConstraint(Eq, rhs, terms))
}

func (p *Program) addGe(rhs float64, terms ...term) {
	p.Constraints = append(p.Constraints, buildConstraint(Ge, rhs, terms))
}

// term is one coefficient·variable pair used while assembling a Constraint;
// it never escapes this package.
type term struct {
	idx   int
	coeff float64
}

func v(idx int) term                     { return term{idx: idx, coeff: 1} }
func scaled(idx int, coeff float64) term { return term{idx: idx, coeff: coeff} }

func buildConstraint(kind Kind, rhs float64, terms []term) Constraint {
	coeffs := make(map[int]float64, len(terms))
	for _, t := range terms {
		coeffs[t.idx] += t.coeff
	}

	return Constraint{Kind: kind, Coeffs: coeffs, RHS: rhs}
}
