package wrap

import (
	"errors"
	"fmt"

	"golang.org/x/term"

	"github.com/jallum/lexwrap/internal/logging"
)

// DefaultFallbackWidth is used when no display width can be determined.
// Output going to a file or pipe has no natural width, so it is generous.
const DefaultFallbackWidth = 500

// WidthFunc reports the column count of the display text will be shown on.
type WidthFunc func() (int, error)

var errNoWidth = errors.New("display reported zero width")

// Terminal returns a WidthFunc that asks the terminal on fd for its size.
// The last column is left free so a full line doesn't make the terminal
// wrap on its own.
func Terminal(fd int) WidthFunc {
	return func() (int, error) {
		if !term.IsTerminal(fd) {
			return 0, fmt.Errorf("fd %d is not a terminal", fd)
		}
		cols, _, err := term.GetSize(fd)
		if err != nil {
			return 0, fmt.Errorf("terminal size: %w", err)
		}
		if cols <= 0 {
			return 0, errNoWidth
		}
		return cols - 1, nil
	}
}

// Fixed returns a WidthFunc that always reports n.
func Fixed(n int) WidthFunc {
	return func() (int, error) { return n, nil }
}

// ResolveWidth asks query once and returns its answer, or fallback if query
// is nil, fails, or reports a non-positive width. Results are not cached;
// terminals can be resized between calls.
func ResolveWidth(query WidthFunc, fallback int) int {
	if query == nil {
		return fallback
	}
	w, err := query()
	if err == nil && w <= 0 {
		err = errNoWidth
	}
	if err != nil {
		logging.Debug("width fallback", "width", fallback, "error", err)
		return fallback
	}
	return w
}
