// Package render provides the raw terminal renderer: particles drawn as
// truecolor background cells with cursor-addressed escape sequences. It
// implements core.Renderer over any io.Writer, so tests can capture the
// exact byte stream.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mkallin/driftwalk/internal/core"
)

// ANSI writes particles straight to a terminal as colored cells. Output is
// buffered; the engine flushes once per frame via the Flusher seam.
type ANSI struct {
	w *bufio.Writer
}

// NewANSI creates a renderer writing to w.
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriter(w)}
}

// Clear wipes the terminal. Called once before the first frame.
func (a *ANSI) Clear() error {
	if _, err := a.w.WriteString("\x1b[2J"); err != nil {
		return fmt.Errorf("render: clear: %w", err)
	}
	return a.w.Flush()
}

// Draw paints one cell: move the cursor to the particle's cell (terminal
// rows/columns are 1-based) and emit a space with a truecolor background.
func (a *ANSI) Draw(pos core.Coord, c core.Color) error {
	_, err := fmt.Fprintf(a.w, "\x1b[%d;%dH\x1b[48;2;%d;%d;%dm ", pos.Y+1, pos.X+1, c.R, c.G, c.B)
	if err != nil {
		return fmt.Errorf("render: draw: %w", err)
	}
	return nil
}

// Flush pushes the buffered frame to the terminal.
func (a *ANSI) Flush() error {
	return a.w.Flush()
}

// Reset restores default colors after the run. Best called via defer so an
// aborted run does not leave the terminal painted.
func (a *ANSI) Reset() error {
	if _, err := a.w.WriteString("\x1b[0m"); err != nil {
		return fmt.Errorf("render: reset: %w", err)
	}
	return a.w.Flush()
}
