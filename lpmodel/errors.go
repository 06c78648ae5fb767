package lpmodel

import "errors"

// ErrInvalidAnnotation is returned when Build is given an annotation that
// fails its own structural validation; wraps the originating
// annotation.ErrInvalidAnnotation at the call site.
var ErrInvalidAnnotation = errors.New("lpmodel: invalid annotation")

// ErrInvalidArgument is returned for a non-positive trial exponent or an
// alpha outside (0,1].
var ErrInvalidArgument = errors.New("lpmodel: invalid argument")
