package legend

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/physics"
)

// Sword is the player's blade. Its box is derived from the player each frame.
// Flying is set while the thrown sword is in the air.
type Sword struct {
	cfg    config.SwordConfig
	logger *log.Logger
	Flying bool
}

// NewSword creates a sword with the given geometry. A nil logger discards.
func NewSword(cfg config.SwordConfig, logger *log.Logger) *Sword {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Sword{cfg: cfg, logger: logger}
}

// Bounds returns the blade box for the player's position and facing. The
// handle overlaps the player by cfg.Handle pixels. An invalid facing yields an
// empty box and a debug record.
func (w *Sword) Bounds(p *Player) physics.Box {
	b := p.Body.Box
	length, thick, handle := w.cfg.Length, w.cfg.Thickness, w.cfg.Handle
	switch p.Body.Direction {
	case physics.Up:
		return physics.Box{X: b.X + (b.W-thick)/2, Y: b.Y - length + handle, W: thick, H: length}
	case physics.Down:
		return physics.Box{X: b.X + (b.W-thick)/2, Y: b.Y + b.H - handle, W: thick, H: length}
	case physics.Left:
		return physics.Box{X: b.X - length + handle, Y: b.Y + (b.H-thick)/2, W: length, H: thick}
	case physics.Right:
		return physics.Box{X: b.X + b.W - handle, Y: b.Y + (b.H-thick)/2, W: length, H: thick}
	}
	w.logger.Debug("sword bounds: invalid direction", "direction", int(p.Body.Direction))
	return physics.Box{}
}

func swordSprite(dir physics.Direction) Sprite {
	return Sprite("sword-" + dir.String())
}

// listenEvents plays the slash and throws the sword when an attack ends at
// full health.
func (w *Sword) listenEvents(s *Sim) {
	p := s.player
	if p.Attack.Is(true) && p.Attack.IsFirstFrame {
		s.snd.play(SoundSwordSlash)
	}

	if !w.Flying && p.Attack.WasLastFrame(true) && !p.Attack.Is(true) && p.FullLife() {
		s.snd.play(SoundSwordShoot)
		w.Flying = true

		b := w.Bounds(p)
		dir := p.Body.Direction
		proj := NewProjectile(b.X, b.Y, b.W, b.H, p.Speed*w.cfg.SpeedFactor, dir, swordSprite(dir))
		proj.HitsEnemies = true
		proj.OnHit = HitEffect{Kind: DamageEnemy, Amount: w.cfg.Damage}
		proj.OnDelete = DeleteEffect{Kind: ClearSwordFlying}
		s.projectiles.Add(proj)
	}
}

// collisions damages every enemy the blade sweeps through while attacking.
func (w *Sword) collisions(s *Sim) {
	if !s.player.Attack.Is(true) {
		return
	}
	blade := w.Bounds(s.player)
	for _, e := range s.enemies.All() {
		if physics.SweptOverlaps(e.Body, blade) {
			e.TakeDamage(s, w.cfg.Damage)
		}
	}
}

func (w *Sword) draw(s *Sim) {
	if s.player.Attack.Is(true) {
		s.view.Draw(swordSprite(s.player.Body.Direction), w.Bounds(s.player))
	}
}

// drawWin raises the sword above the player's head.
func (w *Sword) drawWin(s *Sim) {
	b := s.player.Body.Box
	s.view.Draw(swordSprite(physics.Up), physics.Box{X: b.X, Y: b.Y - w.cfg.Length, W: w.cfg.Thickness, H: w.cfg.Length})
}
