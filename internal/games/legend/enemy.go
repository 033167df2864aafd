package legend

import (
	"strconv"

	"github.com/vovakirdan/tui-legend/internal/config"
	"github.com/vovakirdan/tui-legend/internal/core"
	"github.com/vovakirdan/tui-legend/internal/observer"
	"github.com/vovakirdan/tui-legend/internal/physics"
)

// Variant is an enemy kind.
type Variant int

const (
	Octorok Variant = iota
	BlueOctorok
	Moblin
	BlueMoblin
	Tektite
	BlueTektite
)

var variantNames = [...]string{"octorok", "blue_octorok", "moblin", "blue_moblin", "tektite", "blue_tektite"}

func (v Variant) String() string {
	if v < Octorok || v > BlueTektite {
		return "unknown"
	}
	return variantNames[v]
}

// ParseVariant converts a level data name into a Variant.
func ParseVariant(s string) (Variant, bool) {
	for i, name := range variantNames {
		if name == s {
			return Variant(i), true
		}
	}
	return Octorok, false
}

type behavior int

const (
	walker behavior = iota // moves along its facing, turns on obstacles
	hopper                 // jumps over everything under gravity
)

type weapon int

const (
	noWeapon weapon = iota
	fireball
	arrow
)

// variantSpec is the fixed part of a variant; hp, damage and animation
// timing come from the tuning config.
type variantSpec struct {
	behavior  behavior
	weapon    weapon
	sprite    string
	bonusDrop bool // may drop a clock when no heart dropped
}

var variantSpecs = map[Variant]variantSpec{
	Octorok:     {behavior: walker, weapon: fireball, sprite: "octorok"},
	BlueOctorok: {behavior: walker, weapon: fireball, sprite: "blue-octorok", bonusDrop: true},
	Moblin:      {behavior: walker, weapon: arrow, sprite: "moblin"},
	BlueMoblin:  {behavior: walker, weapon: arrow, sprite: "blue-moblin", bonusDrop: true},
	Tektite:     {behavior: hopper, weapon: noWeapon, sprite: "tektite"},
	BlueTektite: {behavior: hopper, weapon: noWeapon, sprite: "blue-tektite", bonusDrop: true},
}

const enemySize = 64

// Projectile geometry.
const (
	fireballW, fireballH = 24, 30
	arrowLong, arrowWide = 64, 20
)

// EnemyState is the behavior state of an enemy.
type EnemyState int

const (
	EnemyMoving EnemyState = iota
	EnemyChangeDirection
	EnemyWait
	EnemyAttack
	EnemyKilled
)

func (s EnemyState) String() string {
	switch s {
	case EnemyMoving:
		return "moving"
	case EnemyChangeDirection:
		return "change_direction"
	case EnemyWait:
		return "wait"
	case EnemyAttack:
		return "attack"
	case EnemyKilled:
		return "killed"
	}
	return "unknown"
}

// Enemy is any hostile creature. Walkers hold their displacement for one
// frame only; hoppers keep a velocity (VX, VY) across frames.
type Enemy struct {
	Body    *physics.MovingBox
	Variant Variant
	HP      int
	Damage  int
	Speed   float64
	VX, VY  float64

	State      *observer.State[EnemyState]
	Invincible *observer.State[bool]

	spec           variantSpec
	cfg            config.EnemiesConfig
	hop            config.TektiteConfig
	shotSpeed      float64
	halves         physics.Halves
	spriteAnim     *observer.Animation
	invincibleAnim *observer.Animation
}

// NewEnemy creates an enemy of variant v at (x, y). speed is the spawn speed
// of walkers; hoppers use the tuned hop speed.
func NewEnemy(v Variant, x, y, speed float64, dir physics.Direction, cfg config.LegendConfig) *Enemy {
	spec := variantSpecs[v]
	stats := cfg.Enemies.Variants[v.String()]

	e := &Enemy{
		Body:       physics.NewMovingBox(x, y, enemySize, enemySize, dir),
		Variant:    v,
		HP:         stats.HP,
		Damage:     cfg.Difficulty.EnemyDamage(stats.Damage),
		Invincible: observer.NewState(false),

		spec:           spec,
		cfg:            cfg.Enemies,
		hop:            cfg.Tektite,
		shotSpeed:      cfg.Projectiles.Speed,
		invincibleAnim: observer.NewAnimation(7, 2),
	}
	e.halves = physics.FullHalves(e.Body)

	switch spec.behavior {
	case hopper:
		e.Speed = cfg.Difficulty.EnemySpeed(cfg.Tektite.Speed)
		e.Body.Direction = physics.Down
		e.State = observer.NewState(EnemyWait)
		e.spriteAnim = observer.NewAnimation(stats.Animation, 2)
	default:
		e.Speed = cfg.Difficulty.EnemySpeed(speed)
		e.State = observer.NewState(EnemyChangeDirection)
		step := stats.Animation
		if e.Speed > 0 {
			step = stats.Animation / e.Speed
		}
		e.spriteAnim = observer.NewAnimation(step, 2)
	}
	return e
}

// Killed reports whether the enemy is dead or dies this frame.
func (e *Enemy) Killed() bool {
	return e.State.Is(EnemyKilled) || e.State.Next() == EnemyKilled
}

// IsHopper reports whether the enemy ignores tiles and the viewport edge.
func (e *Enemy) IsHopper() bool { return e.spec.behavior == hopper }

// think runs the behavior state machine and sets this frame's displacement.
func (e *Enemy) think(s *Sim) {
	if e.spec.behavior == hopper {
		e.thinkHop(s)
		return
	}

	switch e.State.Get() {
	case EnemyMoving:
		if !e.Invincible.Is(true) {
			ux, uy := e.Body.Direction.Unit()
			e.Body.DX = ux * e.Speed * s.dt
			e.Body.DY = uy * e.Speed * s.dt
		}
		if e.State.CurrentFrame > e.cfg.RoamFrames {
			if core.OneIn(s.rng, e.cfg.AttackOdds) {
				e.State.SetNextState(EnemyAttack)
			}
			if core.OneIn(s.rng, e.cfg.ChangeDirectionOdds) {
				e.State.SetNextState(EnemyChangeDirection)
			}
		}
	case EnemyChangeDirection:
		if e.State.IsFirstFrame {
			e.Body.Direction = physics.RandomDirection(s.rng)
		}
		if e.State.CurrentFrame > e.cfg.ChangeDirectionFrames {
			e.State.SetNextState(EnemyMoving)
		}
	case EnemyAttack:
		if e.State.IsFirstFrame {
			e.attack(s)
		}
		if e.State.CurrentFrame > e.cfg.AttackFrames {
			e.State.SetNextState(EnemyMoving)
		}
	}
}

func (e *Enemy) thinkHop(s *Sim) {
	cf := e.State.CurrentFrame
	switch e.State.Get() {
	case EnemyMoving:
		if e.State.IsFirstFrame {
			e.VY = -e.hop.JumpSpeed
			if core.OneIn(s.rng, 2) {
				e.VX = e.Speed
			} else {
				e.VX = -e.Speed
			}
		} else {
			e.VY += e.hop.Gravity * s.dt
		}
		if (cf > e.hop.JumpMin && core.OneIn(s.rng, e.hop.Odds)) || cf > e.hop.JumpMax {
			e.State.SetNextState(EnemyWait)
		}
	case EnemyWait:
		e.VX, e.VY = 0, 0
		if (cf > e.hop.WaitMin && core.OneIn(s.rng, e.hop.Odds)) || cf > e.hop.WaitMax {
			e.State.SetNextState(EnemyMoving)
		}
	}
	e.Body.DX = e.VX * s.dt
	e.Body.DY = e.VY * s.dt
}

// attack fires the variant's projectile from the enemy's center.
func (e *Enemy) attack(s *Sim) {
	dir := e.Body.Direction
	x := e.Body.X + e.Body.W/2 - fireballW/2
	y := e.Body.Y + e.Body.H/2 - fireballH/2

	var p *Projectile
	switch e.spec.weapon {
	case fireball:
		p = NewProjectile(x, y, fireballW, fireballH, e.shotSpeed, dir, "fireball")
	case arrow:
		w, h := float64(arrowLong), float64(arrowWide)
		if dir.IsVertical() {
			w, h = h, w
		}
		p = NewProjectile(x, y, w, h, e.shotSpeed, dir, Sprite("arrow-"+dir.String()))
	default:
		return
	}
	p.HitsPlayer = true
	p.Blockable = true
	p.OnHit = HitEffect{Kind: DamagePlayer, Amount: e.Damage}
	s.projectiles.Add(p)
}

// collide resolves the enemy against the player, the viewport edge and tiles.
func (e *Enemy) collide(s *Sim) {
	if !e.State.Is(EnemyKilled) && physics.Overlaps(s.player.HitBox.Bounds(), e.Body.Box) {
		s.player.TakeDamage(s, e.Damage)
	}
	if e.State.Is(EnemyKilled) {
		return
	}

	if e.spec.behavior == hopper {
		e.hopCollide(s)
		return
	}

	if physics.ClampToCanvas(e.Body, s.view.Width(), s.view.Height()) {
		e.State.SetNextState(EnemyChangeDirection)
	}
	solids := s.view.Current.Solids()
	nudged := physics.PassBetween(e.halves, solids, e.Speed*s.dt)
	for _, b := range solids {
		if physics.ResolveAxis(e.Body, b) && !nudged {
			e.State.SetNextState(EnemyChangeDirection)
		}
	}
}

// hopCollide keeps a hopper inside the viewport: the ceiling stops the rise,
// the floor ends the jump and the sides bounce it back.
func (e *Enemy) hopCollide(s *Sim) {
	w, h := s.view.Width(), s.view.Height()
	if physics.ResolveLine(e.Body, 0, physics.Up) {
		e.VY = 0
	}
	if physics.ResolveLine(e.Body, h, physics.Down) {
		e.VY = 0
		e.State.SetNextState(EnemyWait)
	}
	if physics.CrossesLine(e.Body, 0, physics.Left) || physics.CrossesLine(e.Body, w, physics.Right) {
		e.VX = -e.VX
		e.Body.DX = e.VX * s.dt
	}
}

// move applies the displacement. Killed enemies stay where they fell.
func (e *Enemy) move() {
	if e.State.Is(EnemyKilled) {
		e.Body.Stop()
		return
	}
	e.Body.Integrate()
}

// sprite returns the sprite for the current state, or "" when nothing is drawn.
func (e *Enemy) sprite() Sprite {
	step := strconv.Itoa(e.spriteAnim.Current)
	if e.spec.behavior == hopper {
		switch e.State.Get() {
		case EnemyMoving:
			return Sprite(e.spec.sprite + "1")
		case EnemyWait:
			return Sprite(e.spec.sprite + step)
		}
		return ""
	}
	return Sprite(e.spec.sprite + "-" + e.Body.Direction.String() + step)
}

// TakeDamage removes n hit points. Invincible and killed enemies are immune.
func (e *Enemy) TakeDamage(s *Sim, n int) {
	if e.Invincible.Is(true) || e.Invincible.Next() || e.Killed() {
		return
	}
	e.HP -= n
	if e.HP <= 0 {
		s.snd.play(SoundEnemyDie)
		e.State.SetNextState(EnemyKilled)
		return
	}
	e.Invincible.SetNextState(true)
	s.snd.play(SoundEnemyHit)
}

// dropItem rolls the drop table: a heart if the player is hurt, otherwise a
// clock for blue variants.
func (e *Enemy) dropItem(s *Sim) bool {
	cx, cy := e.Body.Center()
	if s.player.HP < s.player.MaxHP && core.OneIn(s.rng, s.cfg.Items.DropOdds) {
		s.items.Add(&Item{
			Box:    physics.NewBox(cx-12, cy-12, 24, 24),
			Sprite: "full-heart",
			Sound:  SoundGetHeart,
			Effect: ItemEffect{Kind: Heal, Amount: s.cfg.Items.HeartHeal},
		})
		return true
	}
	if e.spec.bonusDrop && core.OneIn(s.rng, s.cfg.Items.DropOdds) {
		s.items.Add(&Item{
			Box:    physics.NewBox(cx-16, cy-16, 32, 32),
			Sprite: "clock",
			Sound:  SoundGetItem,
			Effect: ItemEffect{Kind: Invincibility, Amount: int(s.cfg.Items.ClockFrames)},
		})
		return true
	}
	return false
}

func (e *Enemy) updateObservers(dt float64) {
	e.State.Update(dt)
	e.Invincible.Update(dt)
	if e.Invincible.Is(true) && e.Invincible.CurrentFrame > e.cfg.InvincibleFrames {
		e.Invincible.SetNextState(false)
	}
}
