package legend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-legend/internal/core"
)

// withSettings restores the package settings after the test.
func withSettings(t *testing.T) {
	t.Helper()
	cfgPath, wPath, preset, fixed := configPath, worldPath, difficultyPreset, fixedStep
	t.Cleanup(func() {
		configPath, worldPath, difficultyPreset, fixedStep = cfgPath, wPath, preset, fixed
	})
}

func TestNewGame(t *testing.T) {
	g := New()
	if g.ID() != "legend" {
		t.Errorf("ID() = %q, expected legend", g.ID())
	}
	if g.Title() != "TLOZ-JS" {
		t.Errorf("Title() = %q, expected TLOZ-JS", g.Title())
	}
}

func TestGameStepBeforeReset(t *testing.T) {
	g := New()
	if res := g.Step(core.NewInputFrame()); !res.State.GameOver {
		t.Error("Step() on an unstarted game should report game over")
	}

	scr := core.NewScreen(40, 5)
	g.Render(scr)
	if !strings.Contains(scr.Row(2), "no world loaded") {
		t.Errorf("Row(2) = %q, expected the no world message", scr.Row(2))
	}
}

func TestGameFixedStep(t *testing.T) {
	withSettings(t)
	SetFixedStep(true)
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 42})
	if g.Err() != nil {
		t.Fatalf("Reset() error = %v", g.Err())
	}
	if g.cfg.Difficulty.Preset != "hard" {
		t.Errorf("Preset = %q, expected hard", g.cfg.Difficulty.Preset)
	}

	var res core.StepResult
	for range 10 {
		res = g.Step(core.NewInputFrame())
	}
	if g.Sim().Frames() != 10 {
		t.Errorf("Frames() = %d, expected 10", g.Sim().Frames())
	}
	if res.State.Phase != "splash" {
		t.Errorf("Phase = %q, expected splash", res.State.Phase)
	}

	w, h := CanvasCells(g.Sim().Canvas())
	scr := core.NewScreen(w, h)
	g.Render(scr)
	if !strings.Contains(scr.String(), "TLOZ-JS GAME") {
		t.Error("splash title missing from the rendered frame")
	}
}

func TestGameHiddenRestartsClock(t *testing.T) {
	withSettings(t)
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})
	clk := &fakeNow{t: time.Unix(100, 0)}
	g.clock = NewClock(60, 4, clk.now)

	g.Step(core.NewInputFrame())
	hidden := core.NewInputFrame()
	hidden.Hidden = true
	g.Step(hidden)

	clk.advance(600)
	if dt := g.clock.Tick(); dt != 1 {
		t.Errorf("Tick() after a hidden step = %v, expected 1", dt)
	}
}

func TestGameFallsBackToDefaultWorld(t *testing.T) {
	withSettings(t)
	path := filepath.Join(t.TempDir(), "world.yaml")
	if err := os.WriteFile(path, []byte("cols: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetWorldPath(path)

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1})

	if g.Sim() == nil {
		t.Fatal("Sim() = nil, expected the default world")
	}
	if g.State().Target != 8 {
		t.Errorf("Target = %d, expected the default world's 8", g.State().Target)
	}
}
