package core

import "math/rand"

// Direction is one of the eight cardinal/diagonal headings a particle can walk in.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	DirCount // Sentinel value for uniform draws
)

// String returns the compass abbreviation for the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "?"
	}
}

// Delta returns the (dx, dy) unit step for this direction.
// North decreases Y, South increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}

// RandomDirection draws a uniform direction from the given RNG.
// The draw may repeat a particle's current heading; there is no exclusion rule.
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(int(DirCount)))
}
