// Package observer provides per-entity frame counters: a state tracker that
// commits staged transitions once per frame, and a bounded animation step
// counter built on the same accumulated-frame clock.
package observer

// State tracks a discrete state S and how many frames were spent in it.
// SetNextState only stages a transition; Update is the single commit point.
type State[S comparable] struct {
	state     S
	next      S
	last      S
	lastFrame S
	restart   bool

	// CurrentFrame is the number of accumulated frames (sum of dt) spent in
	// the current state.
	CurrentFrame float64

	// IsFirstFrame is true for exactly one Update after a transition.
	IsFirstFrame bool
}

// NewState creates an observer in initial. IsFirstFrame holds until the first
// Update.
func NewState[S comparable](initial S) *State[S] {
	return &State[S]{
		state:        initial,
		next:         initial,
		last:         initial,
		lastFrame:    initial,
		IsFirstFrame: true,
	}
}

// Get returns the committed state.
func (o *State[S]) Get() S { return o.state }

// Is reports whether the committed state equals s.
func (o *State[S]) Is(s S) bool { return o.state == s }

// IsIn reports whether the committed state is any of states.
func (o *State[S]) IsIn(states ...S) bool {
	for _, s := range states {
		if o.state == s {
			return true
		}
	}
	return false
}

// Next returns the staged state.
func (o *State[S]) Next() S { return o.next }

// Last returns the state before the most recent transition.
func (o *State[S]) Last() S { return o.last }

// Was reports whether the state before the most recent transition was s.
func (o *State[S]) Was(s S) bool { return o.last == s }

// WasLastFrame reports whether the committed state one Update ago was s.
func (o *State[S]) WasLastFrame(s S) bool { return o.lastFrame == s }

// SetNextState stages s. The last call before Update wins; staging the current
// state cancels a pending transition.
func (o *State[S]) SetNextState(s S) {
	o.next = s
	o.restart = false
}

// Restart stages s and forces a transition even when s is already the
// current state, resetting the frame counter.
func (o *State[S]) Restart(s S) {
	o.next = s
	o.restart = true
}

// Update commits the staged state and advances the frame counter by dt.
func (o *State[S]) Update(dt float64) {
	o.lastFrame = o.state
	if o.next != o.state || o.restart {
		o.last = o.state
		o.state = o.next
		o.CurrentFrame = 0
		o.IsFirstFrame = true
		o.restart = false
	} else {
		o.IsFirstFrame = false
	}
	o.CurrentFrame += dt
}
