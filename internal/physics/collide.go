package physics

import "math"

// Overlaps is the strict AABB test on current positions. Touching edges do
// not overlap.
func Overlaps(a, b Box) bool {
	return a.X < b.Right() && a.Right() > b.X && a.Y < b.Bottom() && a.Bottom() > b.Y
}

// SweptOverlaps reports whether the path of m from its current position to
// position+delta passes through b. The test is continuous, so a displacement
// longer than b plus m cannot skip over it. It does not mutate m.
func SweptOverlaps(m Mover, b Box) bool {
	r := m.Bounds()
	dx, dy := m.Delta()
	return sweep(r, dx, dy, b)
}

// sweep intersects the segment (r.X, r.Y) → (r.X+dx, r.Y+dy) with b expanded
// by the size of r. Bounds are open so grazing contact is not a hit.
func sweep(r Box, dx, dy float64, b Box) bool {
	tmin, tmax := 0.0, 1.0
	axes := [2][4]float64{
		{r.X, dx, b.X - r.W, b.Right()},
		{r.Y, dy, b.Y - r.H, b.Bottom()},
	}
	for _, a := range axes {
		p, d, lo, hi := a[0], a[1], a[2], a[3]
		if d == 0 {
			if p <= lo || p >= hi {
				return false
			}
			continue
		}
		t1, t2 := (lo-p)/d, (hi-p)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin >= tmax {
			return false
		}
	}
	return true
}

// ResolveAxis stops m against b. When the swept path hits b, each axis is
// handled independently: an axis resolves only on the transition into contact,
// snapping to b's edge and zeroing that axis' displacement. An axis the box
// already overlaps is left alone. If the box had already sunk partway into b
// on every moving axis, the moving axis with the least penetration is pushed
// back to the side it came from. Returns whether the path hit b.
func ResolveAxis(m Mover, b Box) bool {
	if !SweptOverlaps(m, b) {
		return false
	}
	r := m.Bounds()
	dx, dy := m.Delta()
	resolved := false

	if dx > 0 && r.Right() <= b.X && r.Right()+dx > b.X {
		m.PlaceX(b.X - r.W)
		m.SetDX(0)
		resolved = true
	}
	if dx < 0 && r.X >= b.Right() && r.X+dx < b.Right() {
		m.PlaceX(b.Right())
		m.SetDX(0)
		resolved = true
	}
	if dy > 0 && r.Bottom() <= b.Y && r.Bottom()+dy > b.Y {
		m.PlaceY(b.Y - r.H)
		m.SetDY(0)
		resolved = true
	}
	if dy < 0 && r.Y >= b.Bottom() && r.Y+dy < b.Bottom() {
		m.PlaceY(b.Bottom())
		m.SetDY(0)
		resolved = true
	}
	if !resolved {
		pushBack(m, r, dx, dy, b)
	}
	return true
}

// pushBack handles a box that is already partly inside b and still moving
// deeper. Only the axis of least overlap after the move may resolve, and only
// if the box moves into b on it with its trailing edge still outside b.
func pushBack(m Mover, r Box, dx, dy float64, b Box) {
	n := r.Translate(dx, dy)
	overlapX := math.Min(n.Right(), b.Right()) - math.Max(n.X, b.X)
	overlapY := math.Min(n.Bottom(), b.Bottom()) - math.Max(n.Y, b.Y)

	if overlapX <= overlapY {
		switch {
		case dx > 0 && r.X < b.X:
			m.PlaceX(b.X - r.W)
			m.SetDX(0)
		case dx < 0 && r.Right() > b.Right():
			m.PlaceX(b.Right())
			m.SetDX(0)
		}
		return
	}
	switch {
	case dy > 0 && r.Y < b.Y:
		m.PlaceY(b.Y - r.H)
		m.SetDY(0)
	case dy < 0 && r.Bottom() > b.Bottom():
		m.PlaceY(b.Bottom())
		m.SetDY(0)
	}
}

// LeavesCanvas reports whether the post-move box leaves [0, w] × [0, h].
func LeavesCanvas(m Mover, w, h float64) bool {
	n := Swept(m)
	return n.X < 0 || n.Y < 0 || n.Right() > w || n.Bottom() > h
}

// ClampToCanvas keeps the post-move box inside [0, w-m.W] × [0, h-m.H],
// zeroing displacement on every clamped axis. Returns whether clamping
// occurred.
func ClampToCanvas(m Mover, w, h float64) bool {
	_, ok := ClampEdge(m, w, h, Up)
	return ok
}

// ClampEdge clamps like ClampToCanvas and returns the canvas edge the box
// was stopped at. When a corner clamps both axes, prefer wins if it is one of
// the two edges; otherwise the horizontal edge does.
func ClampEdge(m Mover, w, h float64, prefer Direction) (Direction, bool) {
	if !LeavesCanvas(m, w, h) {
		return noDirection, false
	}
	r := m.Bounds()
	dx, dy := m.Delta()
	horiz, vert := noDirection, noDirection
	if r.Right()+dx > w {
		m.SetDX(0)
		m.PlaceX(w - r.W)
		horiz = Right
	} else if r.X+dx < 0 {
		m.SetDX(0)
		m.PlaceX(0)
		horiz = Left
	}
	if r.Bottom()+dy > h {
		m.SetDY(0)
		m.PlaceY(h - r.H)
		vert = Down
	} else if r.Y+dy < 0 {
		m.SetDY(0)
		m.PlaceY(0)
		vert = Up
	}

	switch {
	case vert.Valid() && (prefer == vert || !horiz.Valid()):
		return vert, true
	case horiz.Valid():
		return horiz, true
	}
	return prefer, true
}

// CrossesLine is the one-sided line test: Up reports the top edge going above
// coord, Down the bottom edge going below it, Left and Right likewise for x.
func CrossesLine(m Mover, coord float64, dir Direction) bool {
	n := Swept(m)
	switch dir {
	case Up:
		return n.Y < coord
	case Down:
		return n.Bottom() > coord
	case Left:
		return n.X < coord
	case Right:
		return n.Right() > coord
	}
	return false
}

// ResolveLine stops m at the line when CrossesLine holds.
func ResolveLine(m Mover, coord float64, dir Direction) bool {
	if !CrossesLine(m, coord, dir) {
		return false
	}
	r := m.Bounds()
	switch dir {
	case Up:
		m.PlaceY(coord + 1)
		m.SetDY(0)
	case Down:
		m.PlaceY(coord - r.H)
		m.SetDY(0)
	case Left:
		m.PlaceX(coord + 1)
		m.SetDX(0)
	case Right:
		m.PlaceX(coord - r.W)
		m.SetDX(0)
	}
	return true
}
