// Package config provides YAML-based configuration loading for the game:
// tuning constants, level data with validation, and difficulty presets.
package config

// LegendConfig contains every tuning constant of the simulation.
type LegendConfig struct {
	Player      PlayerConfig     `yaml:"player"`
	Sword       SwordConfig      `yaml:"sword"`
	Input       InputConfig      `yaml:"input"`
	Enemies     EnemiesConfig    `yaml:"enemies"`
	Tektite     TektiteConfig    `yaml:"tektite"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Items       ItemsConfig      `yaml:"items"`
	Viewport    ViewportConfig   `yaml:"viewport"`
	Screens     ScreensConfig    `yaml:"screens"`
	Timing      TimingConfig     `yaml:"timing"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's movement and health.
type PlayerConfig struct {
	Size             float64 `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	MaxHP            int     `yaml:"max_hp"`
	LowHealth        int     `yaml:"low_health"`        // hp at or below which the alarm loops
	InvincibleFrames float64 `yaml:"invincible_frames"` // after taking damage
	KnockbackFrames  float64 `yaml:"knockback_frames"`
	KnockbackSpeed   float64 `yaml:"knockback_speed"`
}

// SwordConfig defines the sword geometry and its flying projectile.
type SwordConfig struct {
	Length      float64 `yaml:"length"`
	Thickness   float64 `yaml:"thickness"`
	Handle      float64 `yaml:"handle"` // overlap with the player box
	Damage      int     `yaml:"damage"`
	SpeedFactor float64 `yaml:"speed_factor"` // flying speed = player speed * factor
}

// InputConfig defines input latching.
type InputConfig struct {
	AttackFrames float64 `yaml:"attack_frames"` // how long one press keeps attack held
}

// EnemiesConfig defines behavior shared by every enemy and per-variant stats.
type EnemiesConfig struct {
	InvincibleFrames      float64                  `yaml:"invincible_frames"`
	KilledPhaseFrames     float64                  `yaml:"killed_phase_frames"`
	KilledFrames          float64                  `yaml:"killed_frames"`
	RoamFrames            float64                  `yaml:"roam_frames"` // frames in Moving before random transitions
	AttackOdds            int                      `yaml:"attack_odds"`
	ChangeDirectionOdds   int                      `yaml:"change_direction_odds"`
	ChangeDirectionFrames float64                  `yaml:"change_direction_frames"`
	AttackFrames          float64                  `yaml:"attack_frames"`
	Variants              map[string]VariantConfig `yaml:"variants"`
}

// VariantConfig defines the stats of one enemy variant.
type VariantConfig struct {
	HP        int     `yaml:"hp"`
	Damage    int     `yaml:"damage"`
	Animation float64 `yaml:"animation"` // sprite step duration, divided by speed for walkers
}

// TektiteConfig defines the hopping enemy's motion.
type TektiteConfig struct {
	Speed     float64 `yaml:"speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Gravity   float64 `yaml:"gravity"`
	Odds      int     `yaml:"odds"`
	WaitMin   float64 `yaml:"wait_min"`
	WaitMax   float64 `yaml:"wait_max"`
	JumpMin   float64 `yaml:"jump_min"`
	JumpMax   float64 `yaml:"jump_max"`
}

// ProjectileConfig defines enemy projectiles.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`
	ShieldFrames float64 `yaml:"shield_frames"` // lifetime after a shield block
}

// ItemsConfig defines drops.
type ItemsConfig struct {
	DropOdds    int     `yaml:"drop_odds"`
	HeartHeal   int     `yaml:"heart_heal"`
	ClockFrames float64 `yaml:"clock_frames"`
}

// ViewportConfig defines the scene slide.
type ViewportConfig struct {
	SlideSpeed float64 `yaml:"slide_speed"`
	HUDHeight  float64 `yaml:"hud_height"`
}

// ScreensConfig defines splash, pause, game over and win timings.
type ScreensConfig struct {
	PaneSpeed     float64 `yaml:"pane_speed"`
	MessageAfter  float64 `yaml:"message_after"`
	MessageBlink  float64 `yaml:"message_blink"`
	WinPoseFrames float64 `yaml:"win_pose_frames"`
	DiedFrames    float64 `yaml:"died_frames"`
}

// TimingConfig defines the frame clock.
type TimingConfig struct {
	FPS           int     `yaml:"fps"`
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // upper bound on dt
}

// DifficultyConfig scales enemies and the player's grace period.
type DifficultyConfig struct {
	Preset           string  `yaml:"preset"`
	EnemySpeedScale  float64 `yaml:"enemy_speed_scale"`
	EnemyDamageBonus int     `yaml:"enemy_damage_bonus"`
	InvincibleScale  float64 `yaml:"invincible_scale"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	}
	return DifficultyNormal, false
}
