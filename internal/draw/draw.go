// Package draw renders game frames to a terminal using half-block characters.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point represents a 2D coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// TermSizeFunc returns the current terminal dimensions. Front ends supply
// their own implementation (local ioctl, SSH window-change events).
type TermSizeFunc func() (width, height int, err error)

// TerminalSizeRaw returns the terminal size of stdout.
func TerminalSizeRaw() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and moves the cursor to the top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves the cursor to a specific position (1-based).
func MoveCursor(w io.Writer, col, row int) {
	fmt.Fprintf(w, "\033[%d;%dH", row, col)
}
