package annotation

// Enumerator is a lazy, pull-style generator of canonical annotations of a
// fixed length L, holding O(L) state between calls to Next — the same
// generator-as-state-machine shape the traversal iterators in this corpus
// use instead of building the whole sequence up front.
type Enumerator struct {
	l      int
	regime Regime

	// binary-regime (Semba) state, valid once l > 5.
	curr []int
	m    int
	done bool
	init bool

	// small-case state for l == 3 or l == 5.
	small   []Annotation
	smallAt int

	// randomized-regime state: a queue of fully materialized annotations,
	// computed up front from the binary enumerator's output. The queue is
	// bounded by a small multiple of the Catalan number for L, so holding
	// it in memory does not violate the O(L)-state spirit of the contract
	// in any way that matters at the sizes this search is run at.
	randomized []Annotation
	randomAt   int
}

// Enumerate returns a new Enumerator for annotations of length L (odd, >=3)
// drawn from the given regime. In the Binary regime it performs no work
// until Next is called; in the Randomized regime it builds the whole
// sequence here, before returning.
func Enumerate(l int, regime Regime) (*Enumerator, error) {
	if l < 3 || l%2 == 0 {
		return nil, ErrBadLength
	}
	e := &Enumerator{l: l, regime: regime}

	switch {
	case l == 3:
		e.small = []Annotation{{Speedup2, Slowdown, Slowdown}}
	case l == 5:
		e.small = []Annotation{
			{Speedup2, Speedup2, Slowdown, Slowdown, Slowdown},
			{Speedup2, Slowdown, Speedup2, Slowdown, Slowdown},
		}
	default:
		e.curr = make([]int, l)
		for i := 1; i < l; i += 2 {
			e.curr[i] = 1
		}
		e.m = l - 2
	}

	if regime == Randomized {
		randomized, err := buildRandomized(l)
		if err != nil {
			return nil, err
		}
		e.randomized = randomized
	}

	return e, nil
}

// Next yields the next annotation, or (nil, false) once the sequence is
// exhausted. The returned Annotation is owned by the caller.
func (e *Enumerator) Next() (Annotation, bool) {
	if e.regime == Randomized {
		if e.randomAt >= len(e.randomized) {
			return nil, false
		}
		out := e.randomized[e.randomAt]
		e.randomAt++

		return out.Clone(), true
	}

	if e.small != nil {
		if e.smallAt >= len(e.small) {
			return nil, false
		}
		out := e.small[e.smallAt]
		e.smallAt++

		return out.Clone(), true
	}

	return e.nextSemba()
}

// nextSemba advances Semba's well-balanced-parenthesis walk by one step:
// emit the shifted-and-suffixed current working sequence, then either
// decrement the cursor m or walk leftward resetting pairs until a free
// slot is found (termination when that walk reaches position 0).
func (e *Enumerator) nextSemba() (Annotation, bool) {
	if e.done {
		return nil, false
	}

	n := e.l
	out := make(Annotation, n)
	// output = curr[1:] ++ [0]: shift everything one left and append a
	// trailing Slowdown; position 0 of the working array is a sentinel that
	// never appears in the emitted annotation.
	for i := 1; i < n; i++ {
		out[i-1] = symbolOf(e.curr[i])
	}
	out[n-1] = Slowdown

	// advance curr for the next call
	e.curr[e.m] = 0
	if e.curr[e.m-1] == 0 {
		e.curr[e.m-1] = 1
		e.m--
	} else {
		j := e.m - 1
		k := n - 2
		for e.curr[j] == 1 {
			e.curr[j] = 0
			e.curr[k] = 1
			j--
			k -= 2
		}
		if j == 0 {
			e.done = true
		} else {
			e.curr[j] = 1
			e.m = n - 2
		}
	}

	return out, true
}

func symbolOf(v int) Symbol {
	if v == 1 {
		return Speedup2
	}

	return Slowdown
}

// collectBinary drains a fresh Binary-regime Enumerator for length l into a
// slice; used internally to build the Randomized regime's base set.
func collectBinary(l int) ([]Annotation, error) {
	e, err := Enumerate(l, Binary)
	if err != nil {
		return nil, err
	}
	var out []Annotation
	for {
		a, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, a)
	}

	return out, nil
}

// buildRandomized assembles the Randomized-regime output for target length
// l: every plain binary annotation of length l, each followed by a copy with
// its opening symbol alone promoted to Speedup3 (no length change — the first line's quantifier
// delta is fixed at 2 regardless of which speedup symbol occupies it), plus
// every length-(l-2) binary annotation with one pair of non-opening
// promotable positions each promoted to Speedup3 and each given a
// compensating Slowdown inserted right after it (restoring the quantifier-
// count balance the promotions disturbed).
//
// A single non-opening promotion adds exactly one Slowdown, which would
// flip L's parity from odd to even; promotions therefore have to come in
// pairs to land back on an odd target length. This builds the k=0 and k=2
// promotion layers. Deeper layers (k=4, 6, ...) follow the same
// construction and are not enumerated here — see DESIGN.md for the scope
// decision.
func buildRandomized(l int) ([]Annotation, error) {
	base, err := collectBinary(l)
	if err != nil {
		return nil, err
	}

	out := make([]Annotation, 0, len(base)*2)
	for _, a := range base {
		out = append(out, a.Clone())
		if a[0] == Speedup2 {
			opened := a.Clone()
			opened[0] = Speedup3
			out = append(out, opened)
		}
	}

	if l-2 >= 3 {
		smaller, err := collectBinary(l - 2)
		if err != nil {
			return nil, err
		}
		for _, a := range smaller {
			positions := nonOpeningPromotablePositions(a)
			for i := 0; i < len(positions); i++ {
				for j := i + 1; j < len(positions); j++ {
					out = append(out, promoteWithInsertion(a, positions[i], positions[j]))
				}
			}
		}
	}

	return out, nil
}

// nonOpeningPromotablePositions returns indices i>0 where a[i] is Speedup2
// and a[i-1] is Slowdown — the only positions a non-opening Speedup3 is
// allowed to occupy.
func nonOpeningPromotablePositions(a Annotation) []int {
	var positions []int
	for i := 1; i < len(a); i++ {
		if a[i] == Speedup2 && a[i-1] == Slowdown {
			positions = append(positions, i)
		}
	}

	return positions
}

// promoteWithInsertion swaps a[p] to Speedup3 for each p in positions and
// inserts one Slowdown immediately after each, in a single left-to-right
// pass.
func promoteWithInsertion(a Annotation, positions ...int) Annotation {
	promoted := make(map[int]bool, len(positions))
	for _, p := range positions {
		promoted[p] = true
	}

	out := make(Annotation, 0, len(a)+len(positions))
	for i, s := range a {
		if promoted[i] {
			out = append(out, Speedup3, Slowdown)
			continue
		}
		out = append(out, s)
	}

	return out
}
