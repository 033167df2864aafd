package legend

import "github.com/vovakirdan/tui-legend/internal/physics"

// HitKind selects what a projectile does to what it hits.
type HitKind int

const (
	HitNone HitKind = iota
	DamagePlayer
	DamageEnemy
)

// HitEffect is resolved by the simulation when a projectile hits.
type HitEffect struct {
	Kind   HitKind
	Amount int
}

// DeleteKind selects what happens when a projectile is removed.
type DeleteKind int

const (
	DeleteNone DeleteKind = iota
	ClearSwordFlying
)

// DeleteEffect is resolved exactly once when a projectile leaves the manager.
type DeleteEffect struct {
	Kind DeleteKind
}

// ItemKind selects what a picked up item grants.
type ItemKind int

const (
	Heal ItemKind = iota
	Invincibility
)

// ItemEffect is resolved when the player picks an item up. Amount is hit
// points for Heal and frames for Invincibility.
type ItemEffect struct {
	Kind   ItemKind
	Amount int
}

// applyHit resolves a projectile hit. target is the enemy hit, or nil when
// the player was hit; from is the projectile's travel direction.
func (s *Sim) applyHit(e HitEffect, target *Enemy, from physics.Direction) {
	switch e.Kind {
	case DamagePlayer:
		s.player.TakeDamageFrom(s, e.Amount, from.Opposite())
	case DamageEnemy:
		if target != nil {
			target.TakeDamage(s, e.Amount)
		}
	}
}

func (s *Sim) applyDelete(e DeleteEffect) {
	switch e.Kind {
	case ClearSwordFlying:
		s.sword.Flying = false
	}
}

func (s *Sim) applyItem(e ItemEffect) {
	switch e.Kind {
	case Heal:
		s.player.RecoverHealth(s, e.Amount)
	case Invincibility:
		s.player.Invincibility(float64(e.Amount))
	}
}
