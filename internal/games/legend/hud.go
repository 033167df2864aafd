package legend

import (
	"fmt"

	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/observer"
)

const heartSize = 24

// Hud is the status bar above the viewport: hearts, the world minimap and
// the score.
type Hud struct {
	Width, Height float64
	sceneAnim     *observer.Animation
}

// NewHud creates a HUD of the given size.
func NewHud(w, h float64) *Hud {
	return &Hud{Width: w, Height: h, sceneAnim: observer.NewAnimation(25, 2)}
}

func (h *Hud) draw(s *Sim) {
	s.display.Fill(0, 0, h.Width, h.Height, core.ColorBlack)
	h.drawHearts(s)
	h.drawMap(s)
	h.drawScore(s)
}

// drawHearts shows one heart per two hit points; an odd hp adds a half heart.
func (h *Hud) drawHearts(s *Sim) {
	p := s.player
	y := h.Height/2 - heartSize/2
	for i := 1; i <= p.MaxHP/2; i++ {
		s.display.Sprite("empty-heart", float64(32*i), y, heartSize, heartSize)
	}
	full := p.HP / 2
	for i := 1; i <= full; i++ {
		s.display.Sprite("full-heart", float64(32*i), y, heartSize, heartSize)
	}
	if p.HP%2 == 1 {
		s.display.Sprite("half-heart", float64(32*(full+1)), y, heartSize, heartSize)
	}
}

// drawMap shows every scene: red while enemies remain, green once cleared.
// The current scene blinks.
func (h *Hud) drawMap(s *Sim) {
	w := s.world
	cellH := (h.Height - float64(w.Rows) - 1) / float64(w.Rows)
	cellW := cellH * s.view.Width() / s.view.Height()
	x0 := h.Width/2 - (cellW*float64(w.Cols)+float64(w.Cols)-1)/2

	at := func(sc *Scene) (float64, float64) {
		return x0 + cellW*float64(sc.Col) + 2*float64(sc.Col), cellH*float64(sc.Row) + 2*float64(sc.Row)
	}
	for _, sc := range w.Scenes() {
		color := core.ColorGreen
		if sc.HasEnemies() {
			color = core.ColorRed
		}
		x, y := at(sc)
		s.display.Fill(x, y, cellW, cellH, color)
	}
	if h.sceneAnim.Is(1) {
		x, y := at(s.view.Current)
		s.display.Shade(x, y, cellW, cellH)
	}
	if s.state.IsIn(PhaseRun, PhaseSlideScene) {
		h.sceneAnim.Update(s.dt)
	}
}

func (h *Hud) drawScore(s *Sim) {
	text := fmt.Sprintf(" SCORE: %d/%d", s.player.Score, s.player.TargetScore)
	s.display.Text(text, h.Width-h.Height/2, h.Height/2, core.ColorWhite, AlignRight)
}
