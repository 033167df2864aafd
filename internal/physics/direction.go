// Package physics holds the geometry and collision primitives of the
// simulation: boxes with pending displacement, hitbox projections onto a parent
// box, swept AABB resolution against static tiles and the corridor nudge that
// lets entities slip between diagonal obstacles.
package physics

import "github.com/vovakirdan/tui-legend/internal/core"

// Direction is one of the four facing directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// noDirection is returned where no edge or facing applies.
const noDirection Direction = -1

// Directions lists every direction in declaration order.
var Directions = []Direction{Up, Right, Down, Left}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the direction facing the other way.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}
	return (d + 2) % 4
}

// IsOpposite reports whether d and o face each other exactly.
func (d Direction) IsOpposite(o Direction) bool {
	return d.Valid() && o.Valid() && d.Opposite() == o
}

// IsVertical reports Up or Down.
func (d Direction) IsVertical() bool {
	return d == Up || d == Down
}

// IsHorizontal reports Left or Right.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// Unit returns the unit vector of the direction in screen space (y grows down).
func (d Direction) Unit() (float64, float64) {
	switch d {
	case Up:
		return 0, -1
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// ParseDirection converts a lowercase name into a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return Up, false
}

// RandomDirection picks uniformly among the candidates, or among all four
// directions when none are given.
func RandomDirection(r core.Random, candidates ...Direction) Direction {
	if len(candidates) == 0 {
		candidates = Directions
	}
	return core.Pick(r, candidates...)
}
