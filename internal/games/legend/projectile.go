package legend

import (
	"slices"

	"github.com/vovakirdan/tui-legend/internal/observer"
	"github.com/vovakirdan/tui-legend/internal/physics"
)

// ProjectileState is the flight state of a projectile.
type ProjectileState int

const (
	ProjectileMoving ProjectileState = iota
	ProjectileShieldBlocked
)

// Projectile is anything thrown: fireballs, arrows and the flying sword.
// Its velocity (VX, VY) is constant in pixels per frame.
type Projectile struct {
	Body   *physics.MovingBox
	VX, VY float64
	Sprite Sprite
	State  *observer.State[ProjectileState]

	HitsPlayer  bool
	Blockable   bool // the player's shield deflects it
	HitsEnemies bool

	OnHit    HitEffect
	OnDelete DeleteEffect
}

// NewProjectile creates a projectile flying along dir at speed.
func NewProjectile(x, y, w, h, speed float64, dir physics.Direction, sprite Sprite) *Projectile {
	ux, uy := dir.Unit()
	return &Projectile{
		Body:   physics.NewMovingBox(x, y, w, h, dir),
		VX:     ux * speed,
		VY:     uy * speed,
		Sprite: sprite,
		State:  observer.NewState(ProjectileMoving),
	}
}

// ProjectileManager owns the live projectiles.
type ProjectileManager struct {
	list []*Projectile
}

// NewProjectileManager creates an empty manager.
func NewProjectileManager() *ProjectileManager {
	return &ProjectileManager{}
}

// Add registers a projectile.
func (m *ProjectileManager) Add(p *Projectile) {
	m.list = append(m.list, p)
}

// All returns a snapshot of the live projectiles.
func (m *ProjectileManager) All() []*Projectile {
	return slices.Clone(m.list)
}

// Len returns the number of live projectiles.
func (m *ProjectileManager) Len() int { return len(m.list) }

// Contains reports whether p is still live.
func (m *ProjectileManager) Contains(p *Projectile) bool {
	return slices.Contains(m.list, p)
}

// Remove deletes p and resolves its delete effect. Removing a projectile that
// is not live does nothing and returns false.
func (m *ProjectileManager) Remove(s *Sim, p *Projectile) bool {
	i := slices.Index(m.list, p)
	if i < 0 {
		return false
	}
	m.list = slices.Delete(m.list, i, i+1)
	s.applyDelete(p.OnDelete)
	return true
}

// RemoveAll deletes every projectile, resolving each delete effect once.
func (m *ProjectileManager) RemoveAll(s *Sim) {
	list := m.list
	m.list = nil
	for _, p := range list {
		s.applyDelete(p.OnDelete)
	}
}

// Collisions aims every projectile for this frame and resolves hits.
// Shield-blocked projectiles never hit anything.
func (m *ProjectileManager) Collisions(s *Sim) {
	for _, p := range m.All() {
		if !m.Contains(p) {
			continue
		}
		p.Body.DX = p.VX * s.dt
		p.Body.DY = p.VY * s.dt
		if p.State.Is(ProjectileShieldBlocked) {
			continue
		}

		if p.HitsEnemies && m.hitEnemy(s, p) {
			continue
		}

		if p.HitsPlayer && physics.Overlaps(s.player.HitBox.Bounds(), p.Body.Box) {
			if p.Blockable && s.player.Shields(p.Body.Direction) {
				s.snd.play(SoundShield)
				p.State.SetNextState(ProjectileShieldBlocked)
				continue
			}
			s.applyHit(p.OnHit, nil, p.Body.Direction)
			m.Remove(s, p)
			continue
		}

		if physics.LeavesCanvas(p.Body, s.view.Width(), s.view.Height()) {
			m.Remove(s, p)
		}
	}
}

// hitEnemy resolves p against the first live enemy it touches.
func (m *ProjectileManager) hitEnemy(s *Sim, p *Projectile) bool {
	for _, e := range s.enemies.All() {
		if physics.Overlaps(e.Body.Box, p.Body.Box) {
			s.applyHit(p.OnHit, e, p.Body.Direction)
			m.Remove(s, p)
			return true
		}
	}
	return false
}

// Move advances every projectile. A blocked projectile drifts sideways away
// from the shield at half speed.
func (m *ProjectileManager) Move(dt float64) {
	for _, p := range m.list {
		switch p.State.Get() {
		case ProjectileMoving:
			p.Body.Integrate()
		case ProjectileShieldBlocked:
			if p.Body.Direction.IsVertical() {
				p.Body.Translate(p.VY/2*dt, -p.VY/2*dt)
			} else {
				p.Body.Translate(-p.VX/2*dt, p.VX/2*dt)
			}
			p.Body.Stop()
		}
	}
}

// Draw paints the projectiles over the current scene.
func (m *ProjectileManager) Draw(s *Sim) {
	for _, p := range m.list {
		s.view.DrawInScene(s.view.Current, p.Sprite, p.Body.Box)
	}
}

// UpdateObservers commits projectile states and expires blocked projectiles.
func (m *ProjectileManager) UpdateObservers(s *Sim) {
	for _, p := range m.All() {
		p.State.Update(s.dt)
		if p.State.Is(ProjectileShieldBlocked) && p.State.CurrentFrame > s.cfg.Projectiles.ShieldFrames {
			m.Remove(s, p)
		}
	}
}
