package legend

import "slices"

// EnemyManager runs the enemies of the active scene. It works on the scene's
// own list, so removals persist when the player comes back.
type EnemyManager struct {
	scene *Scene
}

// NewEnemyManager binds a manager to scene.
func NewEnemyManager(scene *Scene) *EnemyManager {
	return &EnemyManager{scene: scene}
}

// All returns a snapshot of the live enemies.
func (m *EnemyManager) All() []*Enemy {
	return slices.Clone(m.scene.Enemies)
}

// Len returns the number of live enemies.
func (m *EnemyManager) Len() int { return len(m.scene.Enemies) }

// Contains reports whether e is still listed.
func (m *EnemyManager) Contains(e *Enemy) bool {
	return slices.Contains(m.scene.Enemies, e)
}

// Remove unlists e, scores the scene when it was the last enemy and rolls its
// drop. Removing an enemy that is not listed does nothing.
func (m *EnemyManager) Remove(s *Sim, e *Enemy) bool {
	i := slices.Index(m.scene.Enemies, e)
	if i < 0 {
		return false
	}
	m.scene.Enemies = slices.Delete(m.scene.Enemies, i, i+1)
	if len(m.scene.Enemies) == 0 {
		s.player.IncreaseScore(s)
	}
	e.dropItem(s)
	return true
}

// PurgeKilled removes every enemy in the Killed state.
func (m *EnemyManager) PurgeKilled(s *Sim) {
	for _, e := range m.All() {
		if e.State.Is(EnemyKilled) {
			m.Remove(s, e)
		}
	}
}

// Think runs every enemy's behavior.
func (m *EnemyManager) Think(s *Sim) {
	for _, e := range m.All() {
		e.think(s)
	}
}

// Collisions resolves every enemy against the player, viewport and tiles.
func (m *EnemyManager) Collisions(s *Sim) {
	for _, e := range m.All() {
		e.collide(s)
	}
}

// Move applies every enemy's displacement.
func (m *EnemyManager) Move() {
	for _, e := range m.All() {
		e.move()
	}
}

// Draw paints the enemies. Killed enemies show the death puff and are
// removed once it has played.
func (m *EnemyManager) Draw(s *Sim) {
	for _, e := range m.All() {
		if e.State.Is(EnemyKilled) {
			switch cf := e.State.CurrentFrame; {
			case cf <= e.cfg.KilledPhaseFrames:
				s.view.DrawInScene(m.scene, "killed1", e.Body.Box)
			case cf <= e.cfg.KilledFrames:
				s.view.DrawInScene(m.scene, "killed2", e.Body.Box)
			default:
				m.Remove(s, e)
			}
			continue
		}

		if e.Invincible.Is(true) {
			e.invincibleAnim.Update(s.dt)
			if e.invincibleAnim.Is(2) {
				continue
			}
		}

		s.view.DrawInScene(m.scene, e.sprite(), e.Body.Box)
		if s.state.Is(PhaseRun) {
			e.spriteAnim.Update(s.dt)
		}
	}
}

// UpdateObservers commits every enemy's observers.
func (m *EnemyManager) UpdateObservers(dt float64) {
	for _, e := range m.All() {
		e.updateObservers(dt)
	}
}
