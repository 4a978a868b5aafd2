package tui

import "github.com/mkallin/driftwalk/internal/core"

// Cell is one canvas position: a rune plus an optional particle color painted
// behind it.
type Cell struct {
	Rune    rune
	Color   core.Color
	Painted bool // Whether Color is a particle cell or terminal default
}

// Canvas is a 2D cell buffer the simulation frame is composed into before
// display. It decouples the engine's per-particle draws from the terminal:
// the engine paints cells, the platform turns the buffer into a styled frame.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
	}
	c.allocate()
	c.Clear()
	return c
}

// allocate creates the underlying cell storage.
func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions. Content is discarded; the next frame
// repaints every particle anyway.
func (c *Canvas) Resize(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width = width
	c.height = height
	c.allocate()
	c.Clear()
}

// Clear resets every cell to an unpainted space.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = Cell{Rune: ' '}
		}
	}
}

// Paint marks the cell at (x, y) as a particle cell with the given color.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Paint(x, y int, color core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: ' ', Color: color, Painted: true}
}

// Get returns the cell at (x, y), or an unpainted space for out-of-bounds
// coordinates.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), in the terminal's
// default colors. Characters beyond the canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string) {
	for i, r := range text {
		if x+i < 0 || x+i >= c.width || y < 0 || y >= c.height {
			continue
		}
		c.cells[y][x+i] = Cell{Rune: r}
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (c *Canvas) DrawTextCentered(y int, text string) {
	x := (c.width - len(text)) / 2
	c.DrawText(x, y, text)
}

// canvasSink implements core.Renderer so the canvas can sit directly behind
// the engine's draw phase.
type canvasSink struct {
	canvas *Canvas
}

// Draw paints one particle cell.
func (s canvasSink) Draw(pos core.Coord, color core.Color) error {
	s.canvas.Paint(pos.X, pos.Y, color)
	return nil
}
