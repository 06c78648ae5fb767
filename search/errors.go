package search

import "errors"

// ErrInvalidArgument indicates a non-positive StartC or SearchCap, a
// negative SearchDepth, or an Alpha outside (0,1] passed via Option.
var ErrInvalidArgument = errors.New("search: invalid argument")
