package tui

import (
	"time"

	"github.com/vovakirdan/tui-legend/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A key
// counts as held for a window after each report: the first window covers the
// auto-repeat delay, later ones the repeat interval.
const (
	firstHold  = 550 * time.Millisecond
	repeatHold = 120 * time.Millisecond
)

var opposites = map[core.Action]core.Action{
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// edgeActions fire once per press instead of being held.
var edgeActions = map[core.Action]bool{
	core.ActionAttack: true,
	core.ActionPause:  true,
}

// HeldKeys turns key reports into held actions. Attack and Pause are edges:
// each press sets them on the next frame only, and reports closer together
// than the repeat interval count as the same press.
type HeldKeys struct {
	until    map[core.Action]time.Time
	reported map[core.Action]time.Time
	edges    []core.Action
}

// NewHeldKeys creates an empty tracker.
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{
		until:    make(map[core.Action]time.Time),
		reported: make(map[core.Action]time.Time),
	}
}

// Press records a report of a's key at now. Pressing a direction releases
// its opposite.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch {
	case a == core.ActionNone || a == core.ActionQuit:
		return
	case edgeActions[a]:
		last, seen := h.reported[a]
		h.reported[a] = now
		if !seen || now.Sub(last) >= repeatHold {
			h.edges = append(h.edges, a)
		}
		return
	}

	if o, ok := opposites[a]; ok {
		delete(h.until, o)
	}
	hold := firstHold
	if t, ok := h.until[a]; ok && now.Before(t) {
		hold = repeatHold
	}
	h.until[a] = now.Add(hold)
}

// Held reports whether a is held at now.
func (h *HeldKeys) Held(a core.Action, now time.Time) bool {
	t, ok := h.until[a]
	return ok && now.Before(t)
}

// Frame builds the input of the frame at now and drops expired keys.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, t := range h.until {
		if now.Before(t) {
			in.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for _, a := range h.edges {
		in.Set(a)
	}
	h.edges = h.edges[:0]
	return in
}

// Release forgets every held key.
func (h *HeldKeys) Release() {
	clear(h.until)
	clear(h.reported)
	h.edges = h.edges[:0]
}
