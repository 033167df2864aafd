package physics

import "math"

// precision is the number of decimal digits positions are snapped to, so
// fractional dt steps cannot accumulate float drift into visible jitter.
const precision = 1e7

// Snap rounds a coordinate to the fixed position precision.
func Snap(v float64) float64 {
	return math.Round(v*precision) / precision
}

// Box is an axis-aligned rectangle in world pixels; X, Y is the top-left corner.
type Box struct {
	X, Y, W, H float64
}

// NewBox creates a box with snapped position.
func NewBox(x, y, w, h float64) Box {
	return Box{X: Snap(x), Y: Snap(y), W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Mover is anything collision resolution can act on: a rectangle with a
// pending displacement that can be repositioned.
type Mover interface {
	Bounds() Box
	Delta() (dx, dy float64)
	PlaceX(x float64)
	PlaceY(y float64)
	SetDX(dx float64)
	SetDY(dy float64)
}

// MovingBox is a Box with a pending displacement for the current frame and a
// facing direction. DX and DY are velocity already multiplied by dt; Integrate
// applies and resets them.
type MovingBox struct {
	Box
	DX, DY    float64
	Direction Direction
}

// NewMovingBox creates a moving box at rest.
func NewMovingBox(x, y, w, h float64, dir Direction) *MovingBox {
	return &MovingBox{Box: NewBox(x, y, w, h), Direction: dir}
}

// Bounds returns the current rectangle.
func (m *MovingBox) Bounds() Box { return m.Box }

// Delta returns the pending displacement.
func (m *MovingBox) Delta() (float64, float64) { return m.DX, m.DY }

// PlaceX sets the left edge.
func (m *MovingBox) PlaceX(x float64) { m.X = Snap(x) }

// PlaceY sets the top edge.
func (m *MovingBox) PlaceY(y float64) { m.Y = Snap(y) }

// SetDX sets the pending horizontal displacement.
func (m *MovingBox) SetDX(dx float64) { m.DX = dx }

// SetDY sets the pending vertical displacement.
func (m *MovingBox) SetDY(dy float64) { m.DY = dy }

// Stop clears the pending displacement.
func (m *MovingBox) Stop() {
	m.DX, m.DY = 0, 0
}

// Translate moves the box without touching the pending displacement.
func (m *MovingBox) Translate(dx, dy float64) {
	m.PlaceX(m.X + dx)
	m.PlaceY(m.Y + dy)
}

// Integrate applies the pending displacement and resets it.
func (m *MovingBox) Integrate() {
	m.Translate(m.DX, m.DY)
	m.Stop()
}

// Swept returns the rectangle the box would occupy after its displacement.
func Swept(m Mover) Box {
	dx, dy := m.Delta()
	return m.Bounds().Translate(dx, dy)
}
