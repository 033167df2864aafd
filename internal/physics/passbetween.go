package physics

// PassBetween nudges an entity into a corridor opening. Each half is swept
// against the solids; when exactly one of the two halves across the direction
// of travel is blocked, the perpendicular displacement is set to speed toward
// the free half. Returns whether a nudge was applied.
func PassBetween(h Halves, solids []Box, speed float64) bool {
	var left, right, up, down bool
	for _, s := range solids {
		left = left || SweptOverlaps(h.Left, s)
		right = right || SweptOverlaps(h.Right, s)
		up = up || SweptOverlaps(h.Up, s)
		down = down || SweptOverlaps(h.Down, s)
	}

	dir := h.Left.Direction()
	switch {
	case dir.IsVertical():
		if left && !right {
			h.Left.SetDX(speed)
			return true
		}
		if right && !left {
			h.Left.SetDX(-speed)
			return true
		}
	case dir.IsHorizontal():
		if up && !down {
			h.Up.SetDY(speed)
			return true
		}
		if down && !up {
			h.Up.SetDY(-speed)
			return true
		}
	}
	return false
}
