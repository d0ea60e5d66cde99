// Package logger builds the leveled stderr logger used by the CLI.
// Diagnostics go to stderr so that command output on stdout stays parseable.
package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const prefix = "fuelup-components"

// Options controls logger construction.
type Options struct {
	// Writer defaults to os.Stderr.
	Writer io.Writer
	// Verbose enables debug output.
	Verbose bool
}

// New returns a logger configured from opts.
func New(opts Options) *log.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	level := log.InfoLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}
