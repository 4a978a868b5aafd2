package core

// Particle is a single walker on the plane. Position and direction mutate
// every frame; color is fixed at birth. A particle whose move would leave the
// plane is flagged dead in place and removed at the next cull.
type Particle struct {
	Pos   Coord
	Color Color
	Dir   Direction
	Alive bool
}
