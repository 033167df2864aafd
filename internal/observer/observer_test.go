package observer

import "testing"

type phase int

const (
	idle phase = iota
	walking
	attacking
)

func TestStateCommitLastCallWins(t *testing.T) {
	o := NewState(idle)
	o.Update(1)

	o.SetNextState(walking)
	o.SetNextState(attacking)
	if !o.Is(idle) {
		t.Fatalf("Get() = %v before Update, staging must not commit", o.Get())
	}

	o.Update(1)
	if o.Get() != attacking {
		t.Errorf("Get() = %v, expected %v", o.Get(), attacking)
	}
	if !o.Was(idle) {
		t.Errorf("Last() = %v, expected %v", o.Last(), idle)
	}
}

func TestStateCancelPending(t *testing.T) {
	o := NewState(idle)
	o.Update(1)

	o.SetNextState(walking)
	o.SetNextState(idle)
	o.Update(1)

	if !o.Is(idle) || o.IsFirstFrame {
		t.Error("staging the current state should cancel the transition")
	}
	if o.CurrentFrame != 2 {
		t.Errorf("CurrentFrame = %v, expected 2", o.CurrentFrame)
	}
}

func TestStateFirstFrame(t *testing.T) {
	o := NewState(idle)
	o.Update(1)
	o.Update(1)

	o.SetNextState(walking)
	o.Update(1)
	if !o.IsFirstFrame {
		t.Error("IsFirstFrame = false right after a transition")
	}
	if o.CurrentFrame != 1 {
		t.Errorf("CurrentFrame = %v, expected 1", o.CurrentFrame)
	}

	for i := 0; i < 3; i++ {
		o.Update(0.5)
		if o.IsFirstFrame {
			t.Errorf("IsFirstFrame = true on update %d after the transition", i+2)
		}
	}
	if o.CurrentFrame != 2.5 {
		t.Errorf("CurrentFrame = %v, expected 2.5", o.CurrentFrame)
	}
}

func TestStateWasLastFrame(t *testing.T) {
	o := NewState(false)
	o.SetNextState(true)
	o.Update(1)
	o.SetNextState(false)
	o.Update(1)

	if !o.WasLastFrame(true) {
		t.Error("WasLastFrame(true) = false, expected the falling edge to be visible")
	}
	o.Update(1)
	if o.WasLastFrame(true) {
		t.Error("WasLastFrame(true) should clear after another update")
	}
}

func TestStateRestart(t *testing.T) {
	o := NewState(true)
	o.Update(1)
	o.Update(40)

	o.Restart(true)
	o.Update(1)
	if !o.IsFirstFrame || o.CurrentFrame != 1 {
		t.Errorf("Restart() did not re-enter: first=%v frame=%v", o.IsFirstFrame, o.CurrentFrame)
	}

	o.Restart(true)
	o.SetNextState(true)
	o.Update(1)
	if o.IsFirstFrame {
		t.Error("SetNextState after Restart should drop the forced re-entry")
	}
}

func TestStateIsIn(t *testing.T) {
	o := NewState(walking)
	if !o.IsIn(idle, walking) {
		t.Error("IsIn(idle, walking) = false")
	}
	if o.IsIn(attacking) {
		t.Error("IsIn(attacking) = true")
	}
}

func TestAnimationCycles(t *testing.T) {
	a := NewAnimation(2, 3)
	var steps []int
	for i := 0; i < 8; i++ {
		a.Update(1)
		steps = append(steps, a.Current)
	}

	expected := []int{1, 1, 2, 2, 3, 3, 1, 1}
	for i := range expected {
		if steps[i] != expected[i] {
			t.Fatalf("steps = %v, expected %v", steps, expected)
		}
	}
}

func TestAnimationPick(t *testing.T) {
	a := NewAnimation(1, 2)
	if got := Pick(a, "on", "off"); got != "on" {
		t.Errorf("Pick() = %q, expected on", got)
	}
	a.Update(1)
	a.Update(1)
	if got := Pick(a, "on", "off"); got != "off" {
		t.Errorf("Pick() = %q, expected off", got)
	}
	a.Reset()
	if !a.Is(1) {
		t.Error("Reset() should return to step 1")
	}
}
