// Package termwidth discovers the column count of the terminal a progress
// line is written to.
package termwidth

import (
	"io"

	"golang.org/x/term"
)

// DefaultWidth is used whenever the width cannot be queried.
const DefaultWidth = 80

// fder is implemented by *os.File and anything else backed by a descriptor.
type fder interface {
	Fd() uintptr
}

var getSize = term.GetSize

// Query returns the column count of the terminal behind w. Writers without
// a file descriptor, non-terminals and failed queries yield DefaultWidth.
func Query(w io.Writer) int {
	f, ok := w.(fder)
	if !ok {
		return DefaultWidth
	}
	width, _, err := getSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// Func returns a width query bound to w.
func Func(w io.Writer) func() int {
	return func() int {
		return Query(w)
	}
}

// IsTerminal reports whether w is attached to a TTY.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(fder); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
