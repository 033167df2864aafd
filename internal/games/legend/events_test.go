package legend

import (
	"testing"

	"github.com/vovakirdan/tui-legend/internal/core"
)

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestEventsDirections(t *testing.T) {
	e := NewEvents(10)
	e.Read(input(core.ActionUp, core.ActionLeft, core.ActionConfirm))

	if !e.Up || !e.Left || e.Down || e.Right {
		t.Errorf("directions = %+v, expected up and left", e)
	}
	if !e.Enter {
		t.Error("Enter = false, expected true")
	}

	e.Read(input())
	if e.Up || e.Left || e.Enter {
		t.Error("released keys should clear")
	}
}

func TestEventsAttackLatch(t *testing.T) {
	e := NewEvents(10)

	e.Read(input(core.ActionAttack))
	if !e.Attack {
		t.Fatal("Attack = false after the press")
	}

	for i := 1; i < 10; i++ {
		e.NewFrame(1)
		e.Read(input())
		if !e.Attack {
			t.Fatalf("Attack released after %d frames, expected 10", i)
		}
	}
	e.NewFrame(1)
	if e.Attack {
		t.Error("Attack = true after 10 frames")
	}
}

func TestEventsHeldAttackDoesNotRetrigger(t *testing.T) {
	e := NewEvents(10)

	for range 30 {
		e.Read(input(core.ActionAttack))
		e.NewFrame(1)
	}
	e.Read(input(core.ActionAttack))
	if e.Attack {
		t.Error("holding the key re-triggered the attack")
	}

	e.Read(input())
	e.NewFrame(1)
	e.Read(input(core.ActionAttack))
	if !e.Attack {
		t.Error("a new press should attack again")
	}
}
