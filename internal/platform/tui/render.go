package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkallin/driftwalk/internal/core"
)

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same paint state to minimize ANSI escape
// sequences; particle cells get a truecolor background.
func RenderCanvas(c *Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := 0; y < c.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			start := c.Get(x, y)

			// Collect consecutive cells with the same paint state
			var run strings.Builder
			for x < c.Width() {
				cell := c.Get(x, y)
				if cell.Painted != start.Painted || cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start.Painted {
				sb.WriteString(cellStyle(start.Color).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}

// cellStyle returns the lipgloss style for a particle cell.
func cellStyle(c core.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
}
