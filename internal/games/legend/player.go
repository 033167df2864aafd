package legend

import (
	"strconv"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/observer"
	"github.com/vovakirdan/tui-legend/internal/physics"
)

// Player is the hero. Only the lower half of the sprite collides with tiles,
// enemies and projectiles.
type Player struct {
	Body   *physics.MovingBox
	HitBox *physics.HitBox
	halves physics.Halves

	Speed       float64
	HP, MaxHP   int
	Score       int
	TargetScore int

	Moving     *observer.State[bool]
	Attack     *observer.State[bool]
	Invincible *observer.State[bool]
	Knockback  *observer.State[bool]
	Died       *observer.State[bool]

	cfg                config.PlayerConfig
	defaultInvincible  float64
	invincibleDuration float64

	spriteAnim     *observer.Animation
	invincibleAnim *observer.Animation
	diedAnim       *observer.Animation
}

// NewPlayer creates a player at (x, y) facing up with full health.
func NewPlayer(x, y float64, cfg config.LegendConfig) *Player {
	pc := cfg.Player
	size := pc.Size
	p := &Player{
		Body:  physics.NewMovingBox(x, y, size, size, physics.Up),
		Speed: pc.Speed,
		HP:    pc.MaxHP,
		MaxHP: pc.MaxHP,

		Moving:     observer.NewState(false),
		Attack:     observer.NewState(false),
		Invincible: observer.NewState(false),
		Knockback:  observer.NewState(false),
		Died:       observer.NewState(false),

		cfg:               pc,
		defaultInvincible: cfg.Difficulty.Invincibility(pc.InvincibleFrames),

		spriteAnim:     observer.NewAnimation(6, 2),
		invincibleAnim: observer.NewAnimation(7, 2),
		diedAnim:       observer.NewAnimation(8, 4),
	}
	p.HitBox = physics.NewHitBox(p.Body, 0, size/2, size, size/2)
	p.halves = physics.HalvesOf(p.Body, 0, size/2, size, size/2)
	return p
}

// FullLife reports whether hp is at its maximum.
func (p *Player) FullLife() bool { return p.HP == p.MaxHP }

// Dead reports whether hp reached zero.
func (p *Player) Dead() bool { return p.HP <= 0 }

// Shields reports whether a projectile traveling along dir is deflected: the
// player stands still, does not attack and faces it.
func (p *Player) Shields(dir physics.Direction) bool {
	return !p.Moving.Is(true) && !p.Attack.Is(true) && p.Body.Direction.IsOpposite(dir)
}

// listenEvents turns the controls into this frame's displacement. Knockback
// overrides the controls.
func (p *Player) listenEvents(s *Sim) {
	ev := s.events
	if p.Knockback.Is(true) {
		p.Moving.SetNextState(false)
		p.Attack.SetNextState(false)
		ux, uy := p.Body.Direction.Unit()
		p.Body.DX = -ux * p.cfg.KnockbackSpeed * s.dt
		p.Body.DY = -uy * p.cfg.KnockbackSpeed * s.dt
		physics.ClampToCanvas(p.Body, s.view.Width(), s.view.Height())
		return
	}

	p.Attack.SetNextState(ev.Attack)
	step := p.Speed * s.dt
	idle := p.Attack.Is(false)

	switch {
	case ev.Up != ev.Down:
		if ev.Down {
			p.Body.Direction = physics.Down
			if idle {
				p.Body.DY = step
			}
		} else {
			p.Body.Direction = physics.Up
			if idle {
				p.Body.DY = -step
			}
		}
	case ev.Left != ev.Right:
		if ev.Right {
			p.Body.Direction = physics.Right
			if idle {
				p.Body.DX = step
			}
		} else {
			p.Body.Direction = physics.Left
			if idle {
				p.Body.DX = -step
			}
		}
	}

	p.Moving.SetNextState(p.Body.DX != 0 || p.Body.DY != 0)
}

// collisions clamps the player to the viewport, where leaving it starts a
// scene slide toward the edge crossed, then slips it between tiles and stops
// it against them. The corridor nudge never carries the player off the
// viewport.
func (p *Player) collisions(s *Sim) {
	w, h := s.view.Width(), s.view.Height()
	if edge, ok := physics.ClampEdge(p.Body, w, h, p.Body.Direction); ok {
		s.view.SlideScene(s, edge)
	}

	solids := s.view.Current.Solids()
	if physics.PassBetween(p.halves, solids, p.Speed*s.dt) {
		physics.ClampToCanvas(p.Body, w, h)
	}
	for _, b := range solids {
		physics.ResolveAxis(p.HitBox, b)
	}
}

func (p *Player) move() {
	p.Body.Integrate()
}

// slideMove carries the player across the edge while the scenes slide.
func (p *Player) slideMove(s *Sim) {
	step := s.view.slideSpeed * s.dt
	p.Body.DX = -float64(s.view.dc) * step
	p.Body.DY = -float64(s.view.dr) * step
	physics.ClampToCanvas(p.Body, s.view.Width(), s.view.Height())
	p.move()
}

func (p *Player) sprite() Sprite {
	dir := p.Body.Direction.String()
	if p.Attack.Is(true) {
		return Sprite("link-" + dir + "-attack")
	}
	return Sprite("link-" + dir + strconv.Itoa(p.spriteAnim.Current))
}

func (p *Player) draw(s *Sim) {
	sprite := p.sprite()
	if p.Invincible.Is(true) {
		p.invincibleAnim.Update(s.dt)
		if p.invincibleAnim.Is(2) {
			sprite = ""
		}
	}
	s.view.Draw(sprite, p.Body.Box)

	if p.Moving.Is(true) && !s.state.Is(PhaseStopped) {
		p.spriteAnim.Update(s.dt)
	}
}

func (p *Player) drawWin(s *Sim) {
	s.view.Draw("link-win", p.Body.Box)
}

// drawGameOver spins the player around, then shows the death puff. It owns
// the died observer's clock.
func (p *Player) drawGameOver(s *Sim) {
	switch cf := p.Died.CurrentFrame; {
	case cf <= 125:
		p.Body.Direction = observer.Pick(p.diedAnim, physics.Down, physics.Left, physics.Up, physics.Right)
		p.draw(s)
		p.diedAnim.Update(s.dt)
	case cf <= 135:
		s.view.DrawInScene(s.view.Current, "killed1", p.Body.Box)
	case cf <= 145:
		s.view.DrawInScene(s.view.Current, "killed2", p.Body.Box)
	}
	p.Died.Update(s.dt)
}

// IncreaseScore counts a cleared scene. Clearing the last one wins the game.
func (p *Player) IncreaseScore(s *Sim) {
	p.Score++
	if p.Score < p.TargetScore || p.Dead() {
		return
	}
	p.Invincible.SetNextState(false)
	p.Attack.SetNextState(false)
	p.Moving.SetNextState(false)

	s.view.music.Pause()
	s.snd.get(SoundLowHealth).Pause()
	s.snd.play(SoundFanfare)
	s.state.SetNextState(PhaseWin)
}

// TakeDamage hurts the player and knocks it back against its facing.
func (p *Player) TakeDamage(s *Sim, n int) {
	p.TakeDamageFrom(s, n, p.Body.Direction)
}

// TakeDamageFrom hurts the player, turning it to face toward before the
// knockback. Invincible players are immune. Reaching zero hp ends the game on
// the same frame.
func (p *Player) TakeDamageFrom(s *Sim, n int, toward physics.Direction) {
	if p.Invincible.Is(true) {
		return
	}

	s.snd.play(SoundLinkHurt)
	if toward.Valid() {
		p.Body.Direction = toward
	}
	p.Knockback.Restart(true)

	if p.HP-n >= 0 {
		p.HP -= n
		p.Invincibility(p.defaultInvincible)
	} else {
		p.HP = 0
	}

	switch {
	case p.HP <= 0:
		p.Died.Restart(true)
		p.Invincible.SetNextState(false)
		p.Moving.SetNextState(false)
		p.Attack.SetNextState(false)

		s.view.music.Pause()
		s.snd.get(SoundLowHealth).Pause()
		s.snd.play(SoundLinkDie)
		s.state.SetNextState(PhaseGameOver)
	case p.HP <= p.cfg.LowHealth:
		s.snd.play(SoundLowHealth)
	}
}

// RecoverHealth heals up to max hp and silences the alarm once out of danger.
func (p *Player) RecoverHealth(s *Sim, n int) {
	p.HP = min(p.HP+n, p.MaxHP)
	if p.HP > p.cfg.LowHealth {
		alarm := s.snd.get(SoundLowHealth)
		alarm.Pause()
		alarm.Rewind()
	}
}

// Invincibility restarts the invincible timer for frames frames.
func (p *Player) Invincibility(frames float64) {
	p.invincibleDuration = frames
	p.Invincible.Restart(true)
}

func (p *Player) updateObservers(dt float64) {
	p.Moving.Update(dt)
	p.Attack.Update(dt)
	p.Invincible.Update(dt)
	p.Knockback.Update(dt)

	if p.Knockback.Is(true) && p.Knockback.CurrentFrame > p.cfg.KnockbackFrames {
		p.Knockback.SetNextState(false)
	}
	if p.Invincible.Is(true) && p.Invincible.CurrentFrame > p.invincibleDuration {
		p.Invincible.SetNextState(false)
	}
}
