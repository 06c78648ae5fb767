// Package altproof automates the search for alternation-trading lower
// bounds against deterministic time-space bounded machines, following
// Williams' proof framework.
//
// A proof of a given length is an annotation: a sequence of speedup and
// slowdown steps. annotation enumerates every structurally valid
// annotation of a requested length; lpmodel translates one annotation, a
// trial exponent, and a generic-slowdown scale into a linear program;
// lpsolver submits that program to a simplex solver and classifies the
// result; search runs the per-annotation exponential-probe-then-binary-
// refinement feasibility search; driver iterates every annotation of a
// requested proof length and tracks the tie-tolerant global best; render
// formats a witness solution as readable proof text.
//
//	go get github.com/katalvlaran/altproof
package altproof
