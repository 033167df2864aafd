package observer

// Animation cycles Current through [1, Steps], advancing one step every
// StepDuration accumulated frames.
type Animation struct {
	StepDuration float64
	Steps        int

	Current      int
	CurrentFrame float64
}

// NewAnimation creates an animation at step 1.
func NewAnimation(stepDuration float64, steps int) *Animation {
	if steps < 1 {
		steps = 1
	}
	return &Animation{StepDuration: stepDuration, Steps: steps, Current: 1}
}

// Update accumulates dt and advances the step once the duration is reached.
func (a *Animation) Update(dt float64) {
	if a.CurrentFrame >= a.StepDuration {
		a.CurrentFrame = 0
		a.Current++
		if a.Current > a.Steps {
			a.Current = 1
		}
	}
	a.CurrentFrame += dt
}

// Reset returns to step 1.
func (a *Animation) Reset() {
	a.Current = 1
	a.CurrentFrame = 0
}

// Is reports whether the current step is step.
func (a *Animation) Is(step int) bool { return a.Current == step }

// Pick returns the value for the current step; values are indexed from step 1.
func Pick[T any](a *Animation, values ...T) T {
	i := a.Current - 1
	if i < 0 || i >= len(values) {
		var zero T
		return zero
	}
	return values[i]
}
