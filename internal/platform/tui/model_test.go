package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/games/legend"
)

type fakeGame struct {
	resets int
	inputs []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	g.state.Score = len(g.inputs)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "FAKE", core.ColorWhite)
}

func (g *fakeGame) State() core.GameState { return g.state }

var _ Game = (*legend.Game)(nil)

func newTestModel(g *fakeGame) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1}, nil)
	m.now = func() time.Time { return time.Unix(100, 0) }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return model, cmd
}

func TestModelInitResets(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init() returned no tick command")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelTickSteps(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runes("d"))
	m, cmd := update(t, m, TickMsg(time.Unix(100, 0)))
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if len(g.inputs) != 1 {
		t.Fatalf("steps = %d, expected 1", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionRight) {
		t.Error("held Right missing from the step input")
	}
	if m.State().Score != 1 {
		t.Errorf("State().Score = %d, expected 1", m.State().Score)
	}
}

func TestModelBlurHides(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, runes("w"))
	m, _ = update(t, m, tea.BlurMsg{})
	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))

	in := g.inputs[0]
	if !in.Hidden {
		t.Error("Hidden = false after blur, expected true")
	}
	if in.Has(core.ActionUp) {
		t.Error("held key survived blur")
	}

	m, _ = update(t, m, tea.FocusMsg{})
	update(t, m, TickMsg(time.Unix(100, 0)))
	if g.inputs[1].Hidden {
		t.Error("Hidden = true after focus, expected false")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Errorf("View() after quit = %q, expected empty", m.View())
	}
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(&fakeGame{})
	if h := m.screen.Height(); h != 9 {
		t.Errorf("screen height = %d, expected 9", h)
	}

	m, _ = update(t, m, runes("?"))
	if !m.help.ShowAll {
		t.Error("ShowAll = false after ?, expected true")
	}
	if h := m.screen.Height(); h != 6 {
		t.Errorf("screen height with full help = %d, expected 6", h)
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	if m.screen.Width() != 80 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 80x29", m.screen.Width(), m.screen.Height())
	}
	if g.resets != 0 {
		t.Errorf("resize reset the game %d times", g.resets)
	}
	if !strings.Contains(m.View(), "FAKE") {
		t.Error("View() does not contain the game frame")
	}
}
