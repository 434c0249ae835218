// ABOUTME: One-shot terminal width detection for default output sizing
// ABOUTME: Queried once at startup and injected as plain configuration

package terminal

import (
	"os"

	"golang.org/x/term"
)

// Width returns the current terminal column count, or 0 when stdout is not a
// terminal (piped or redirected output) or its size cannot be read.
func Width() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 1 {
		return 0
	}
	return w
}
