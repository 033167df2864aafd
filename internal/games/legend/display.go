package legend

import (
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/physics"
)

// OpKind identifies a display operation.
type OpKind int

const (
	OpSprite OpKind = iota // draw a sprite stretched over Box
	OpFill                 // fill Box with Color
	OpShade                // darken Box
	OpText                 // draw Text anchored at Box.X, Box.Y
)

// Align is the horizontal anchor of a text operation.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// DrawOp is one display operation in canvas pixels.
type DrawOp struct {
	Kind   OpKind
	Sprite Sprite
	Box    physics.Box
	Color  core.Color
	Text   string
	Align  Align
}

// DisplayList collects the operations of one frame in paint order.
type DisplayList struct {
	Ops []DrawOp
}

// Reset empties the list, keeping its capacity.
func (d *DisplayList) Reset() {
	d.Ops = d.Ops[:0]
}

// Sprite appends a sprite operation. Empty sprites are skipped.
func (d *DisplayList) Sprite(s Sprite, x, y, w, h float64) {
	if s == "" {
		return
	}
	d.Ops = append(d.Ops, DrawOp{Kind: OpSprite, Sprite: s, Box: physics.Box{X: x, Y: y, W: w, H: h}})
}

// Fill appends a solid rectangle.
func (d *DisplayList) Fill(x, y, w, h float64, c core.Color) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpFill, Box: physics.Box{X: x, Y: y, W: w, H: h}, Color: c})
}

// Shade appends a translucent dark rectangle.
func (d *DisplayList) Shade(x, y, w, h float64) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpShade, Box: physics.Box{X: x, Y: y, W: w, H: h}})
}

// Text appends a line of text.
func (d *DisplayList) Text(text string, x, y float64, c core.Color, align Align) {
	d.Ops = append(d.Ops, DrawOp{Kind: OpText, Text: text, Box: physics.Box{X: x, Y: y}, Color: c, Align: align})
}

// Count returns how many operations draw the given sprite.
func (d *DisplayList) Count(s Sprite) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == OpSprite && op.Sprite == s {
			n++
		}
	}
	return n
}

// HasText reports whether any text operation shows text.
func (d *DisplayList) HasText(text string) bool {
	for _, op := range d.Ops {
		if op.Kind == OpText && op.Text == text {
			return true
		}
	}
	return false
}
