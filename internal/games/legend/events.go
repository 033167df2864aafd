package legend

import "github.com/vovakirdan/tui-legend/internal/core"

// Events is the per-frame control state derived from the host's input.
// Directions and Enter mirror the held keys; Attack is latched on the press
// and released after a fixed number of frames.
type Events struct {
	Up, Down, Left, Right bool
	Enter                 bool
	Attack                bool

	attackHeld     bool
	attackFrame    float64
	attackDuration float64
}

// NewEvents creates the control state with the attack latch length.
func NewEvents(attackDuration float64) *Events {
	return &Events{attackDuration: attackDuration}
}

// Read samples the input frame. Attack latches only on the press, so holding
// the key does not re-trigger it.
func (e *Events) Read(in core.InputFrame) {
	e.Up = in.Has(core.ActionUp)
	e.Down = in.Has(core.ActionDown)
	e.Left = in.Has(core.ActionLeft)
	e.Right = in.Has(core.ActionRight)
	e.Enter = in.Has(core.ActionConfirm)

	held := in.Has(core.ActionAttack)
	if held && !e.attackHeld {
		e.Attack = true
	}
	e.attackHeld = held
}

// NewFrame advances the attack latch by dt.
func (e *Events) NewFrame(dt float64) {
	if !e.Attack {
		e.attackFrame = 0
		return
	}
	e.attackFrame += dt
	if e.attackFrame >= e.attackDuration {
		e.Attack = false
	}
}
