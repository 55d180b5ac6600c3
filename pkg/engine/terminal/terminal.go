// Package terminal wraps the few terminal queries the text backend needs.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsInteractive reports whether stdout is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetSize returns the current terminal width and height in cells, falling
// back to defaults when the size cannot be determined (pipes, CI).
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
