// Package annotation defines the canonical rule-sequence alphabet for
// alternation-trading proofs and the invariants a sequence must satisfy to
// describe a valid proof shape.
package annotation

import "fmt"

// Symbol is one proof-line rule. The zero value is Slowdown.
type Symbol int

const (
	// Slowdown closes quantifiers under the assumed containment.
	Slowdown Symbol = iota
	// Speedup2 opens a two-quantifier speedup block.
	Speedup2
	// Speedup3 opens a three-quantifier speedup block (randomized regime only).
	Speedup3
)

// String renders a Symbol the way proof dumps and test failures want to see it.
func (s Symbol) String() string {
	switch s {
	case Slowdown:
		return "Slowdown"
	case Speedup2:
		return "Speedup2"
	case Speedup3:
		return "Speedup3"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Regime selects which alphabet the enumerator draws annotations from.
type Regime int

const (
	// Binary restricts the alphabet to {Slowdown, Speedup2}.
	Binary Regime = iota
	// Randomized additionally admits Speedup3, but only as the opening
	// symbol or immediately after a Slowdown.
	Randomized
)

// Annotation is a finite ordered rule sequence of length L, encoding an
// (L+1)-line proof.
type Annotation []Symbol

// weight is the running-quantifier-count delta a symbol contributes when it
// does not occupy position 0; position 0 always contributes 2 regardless of
// its own symbol value (it is the forced two-quantifier opening).
func weight(s Symbol) int {
	switch s {
	case Slowdown:
		return -1
	case Speedup2:
		return 1
	case Speedup3:
		return 2
	default:
		return 0
	}
}

// QuantifierProfile returns the running quantifier count after each line of
// a (assumed valid) annotation, plus m = max(counts) + 2, the LP variable
// width the builder needs. counts[i] is the count after processing a[i].
func QuantifierProfile(a Annotation) (counts []int, m int) {
	counts = make([]int, len(a))
	running := 0
	max := 0
	for i, s := range a {
		if i == 0 {
			running += 2
		} else {
			running += weight(s)
		}
		counts[i] = running
		if running > max {
			max = running
		}
	}
	m = max + 2

	return counts, m
}

// Validate checks every structural invariant an annotation must satisfy:
// non-empty odd length, a speedup opening and a Slowdown closing, a
// non-negative running quantifier count that returns to zero, and Speedup3
// appearing only directly after a Slowdown (or as the opening symbol).
func (a Annotation) Validate() error {
	if len(a) == 0 || len(a)%2 == 0 {
		return fmt.Errorf("annotation: length %d must be odd and positive: %w", len(a), ErrInvalidAnnotation)
	}
	if a[0] == Slowdown {
		return fmt.Errorf("annotation: must start with a speedup: %w", ErrInvalidAnnotation)
	}
	if a[len(a)-1] != Slowdown {
		return fmt.Errorf("annotation: must end with Slowdown: %w", ErrInvalidAnnotation)
	}

	running := 0
	for i, s := range a {
		if s == Speedup3 && i != 0 && a[i-1] != Slowdown {
			return fmt.Errorf("annotation: Speedup3 at index %d must follow a Slowdown or be first: %w", i, ErrInvalidAnnotation)
		}
		if i == 0 {
			running += 2
		} else {
			running += weight(s)
		}
		if running < 0 {
			return fmt.Errorf("annotation: quantifier count went negative at index %d: %w", i, ErrInvalidAnnotation)
		}
	}
	if running != 0 {
		return fmt.Errorf("annotation: quantifier count ended at %d, want 0: %w", running, ErrInvalidAnnotation)
	}

	return nil
}

// Clone returns an independent copy, mirroring the defensive-copy discipline
// the surrounding packages use whenever an Annotation crosses an API boundary.
func (a Annotation) Clone() Annotation {
	out := make(Annotation, len(a))
	copy(out, a)

	return out
}
