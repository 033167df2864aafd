// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cell.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Scale maps a rectangle in world pixels to screen cells, given how many pixels
// one cell covers on each axis. Any non-empty source covers at least one cell.
func Scale(x, y, w, h, pxPerCol, pxPerRow float64) Rect {
	left := int(math.Floor(x / pxPerCol))
	top := int(math.Floor(y / pxPerRow))
	right := int(math.Ceil((x + w) / pxPerCol))
	bottom := int(math.Ceil((y + h) / pxPerRow))
	if w > 0 && right <= left {
		right = left + 1
	}
	if h > 0 && bottom <= top {
		bottom = top + 1
	}
	return Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
