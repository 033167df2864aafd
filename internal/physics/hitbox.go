package physics

// HitBox is a sub-rectangle bound to a parent MovingBox. Its position is always
// derived from the parent; placing the hitbox moves the parent. Displacement and
// direction are the parent's.
type HitBox struct {
	parent     *MovingBox
	OffX, OffY float64
	W, H       float64
}

// NewHitBox binds a hitbox at (offX, offY) of size w×h to parent.
func NewHitBox(parent *MovingBox, offX, offY, w, h float64) *HitBox {
	return &HitBox{parent: parent, OffX: offX, OffY: offY, W: w, H: h}
}

// Bounds returns the hitbox rectangle in world space.
func (h *HitBox) Bounds() Box {
	return Box{X: h.parent.X + h.OffX, Y: h.parent.Y + h.OffY, W: h.W, H: h.H}
}

// Delta returns the parent's pending displacement.
func (h *HitBox) Delta() (float64, float64) { return h.parent.Delta() }

// PlaceX moves the parent so the hitbox's left edge lands on x.
func (h *HitBox) PlaceX(x float64) { h.parent.PlaceX(x - h.OffX) }

// PlaceY moves the parent so the hitbox's top edge lands on y.
func (h *HitBox) PlaceY(y float64) { h.parent.PlaceY(y - h.OffY) }

// SetDX sets the parent's horizontal displacement.
func (h *HitBox) SetDX(dx float64) { h.parent.SetDX(dx) }

// SetDY sets the parent's vertical displacement.
func (h *HitBox) SetDY(dy float64) { h.parent.SetDY(dy) }

// Direction returns the parent's facing.
func (h *HitBox) Direction() Direction { return h.parent.Direction }

// Halves are the four half hitboxes used by PassBetween.
type Halves struct {
	Left, Right, Up, Down *HitBox
}

// FullHalves splits the parent's whole footprint into halves.
func FullHalves(parent *MovingBox) Halves {
	w, h := parent.W, parent.H
	return Halves{
		Left:  NewHitBox(parent, 0, 0, w/2, h),
		Right: NewHitBox(parent, w/2, 0, w/2, h),
		Up:    NewHitBox(parent, 0, 0, w, h/2),
		Down:  NewHitBox(parent, 0, h/2, w, h/2),
	}
}

// HalvesOf splits an existing hitbox region (in parent offsets) into halves.
func HalvesOf(parent *MovingBox, offX, offY, w, h float64) Halves {
	return Halves{
		Left:  NewHitBox(parent, offX, offY, w/2, h),
		Right: NewHitBox(parent, offX+w/2, offY, w/2, h),
		Up:    NewHitBox(parent, offX, offY, w, h/2),
		Down:  NewHitBox(parent, offX, offY+h/2, w, h/2),
	}
}
