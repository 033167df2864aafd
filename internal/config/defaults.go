package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/legend.yaml
var defaultLegendYAML []byte

//go:embed defaults/world.yaml
var defaultWorldYAML []byte

// DefaultLegendConfig returns the default tuning.
func DefaultLegendConfig() LegendConfig {
	return LegendConfig{
		Player: PlayerConfig{
			Size:             64,
			Speed:            5,
			MaxHP:            6,
			LowHealth:        2,
			InvincibleFrames: 150,
			KnockbackFrames:  10,
			KnockbackSpeed:   15,
		},
		Sword: SwordConfig{
			Length:      64,
			Thickness:   28,
			Handle:      16,
			Damage:      1,
			SpeedFactor: 3,
		},
		Input: InputConfig{
			AttackFrames: 10,
		},
		Enemies: EnemiesConfig{
			InvincibleFrames:      25,
			KilledPhaseFrames:     10,
			KilledFrames:          20,
			RoamFrames:            50,
			AttackOdds:            50,
			ChangeDirectionOdds:   50,
			ChangeDirectionFrames: 30,
			AttackFrames:          30,
			Variants: map[string]VariantConfig{
				"octorok":      {HP: 1, Damage: 1, Animation: 20},
				"blue_octorok": {HP: 2, Damage: 2, Animation: 20},
				"moblin":       {HP: 1, Damage: 1, Animation: 25},
				"blue_moblin":  {HP: 2, Damage: 2, Animation: 25},
				"tektite":      {HP: 1, Damage: 1, Animation: 20},
				"blue_tektite": {HP: 1, Damage: 2, Animation: 20},
			},
		},
		Tektite: TektiteConfig{
			Speed:     3,
			JumpSpeed: 6,
			Gravity:   0.1,
			Odds:      50,
			WaitMin:   30,
			WaitMax:   60,
			JumpMin:   60,
			JumpMax:   100,
		},
		Projectiles: ProjectileConfig{
			Speed:        8,
			ShieldFrames: 20,
		},
		Items: ItemsConfig{
			DropOdds:    3,
			HeartHeal:   2,
			ClockFrames: 400,
		},
		Viewport: ViewportConfig{
			SlideSpeed: 10,
			HUDHeight:  64,
		},
		Screens: ScreensConfig{
			PaneSpeed:     8,
			MessageAfter:  150,
			MessageBlink:  50,
			WinPoseFrames: 120,
			DiedFrames:    145,
		},
		Timing: TimingConfig{
			FPS:           60,
			MaxFrameDelta: 4,
		},
		Difficulty: DifficultyConfig{
			Preset:          string(DifficultyNormal),
			EnemySpeedScale: 1,
			InvincibleScale: 1,
		},
	}
}

// DefaultWorld returns the embedded level data.
func DefaultWorld() WorldData {
	var w WorldData
	if err := yaml.Unmarshal(defaultWorldYAML, &w); err != nil {
		return WorldData{}
	}
	return w
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "legend":
		return defaultLegendYAML
	case "world":
		return defaultWorldYAML
	default:
		return nil
	}
}
