// Package terminal answers questions about the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height of stdout.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	return SizeOf(os.Stdout)
}

// SizeOf returns the size of the terminal behind f, or the defaults when f is
// not a terminal (a pipe or a file, for example).
func SizeOf(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal. Colour escapes are
// only written when it is.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
