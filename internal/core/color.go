package core

import (
	"fmt"
	"math/rand"
)

// Color is a 24-bit RGB color assigned to a particle at creation.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string, the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RandomColor draws a color with independently uniform channels.
func RandomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}
