// Package xlog wraps zerolog for the driver and CLI layers. The core
// solving packages (annotation, lpmodel, lpsolver, search) stay silent and
// take no logger dependency; only the driver and cmd/altproof import this
// package.
package xlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console-writer logger at the given level, writing to w.
// Default calls it with os.Stderr.
func New(w io.Writer, level zerolog.Level) *zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	log := zerolog.New(cw).Level(level).With().Timestamp().Logger()

	return &log
}

// Default returns a logger writing to stderr at InfoLevel; cmd/altproof
// uses it, and the driver falls back to it when no WithLogger is given.
func Default() *zerolog.Logger {
	return New(os.Stderr, zerolog.InfoLevel)
}
