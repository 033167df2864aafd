package config

import "math"

// ApplyLegendPreset modifies the config based on a difficulty preset.
func ApplyLegendPreset(cfg *LegendConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.EnemySpeedScale = 0.75
		cfg.Difficulty.EnemyDamageBonus = 0
		cfg.Difficulty.InvincibleScale = 1.5
	case DifficultyHard:
		cfg.Difficulty.EnemySpeedScale = 1.25
		cfg.Difficulty.EnemyDamageBonus = 1
		cfg.Difficulty.InvincibleScale = 0.6
	default:
		cfg.Difficulty.Preset = string(DifficultyNormal)
		cfg.Difficulty.EnemySpeedScale = 1
		cfg.Difficulty.EnemyDamageBonus = 0
		cfg.Difficulty.InvincibleScale = 1
	}
}

// EnemySpeed scales a spawn speed by the difficulty.
func (d DifficultyConfig) EnemySpeed(base float64) float64 {
	if d.EnemySpeedScale <= 0 {
		return base
	}
	return base * d.EnemySpeedScale
}

// EnemyDamage adds the difficulty bonus to a variant's damage.
func (d DifficultyConfig) EnemyDamage(base int) int {
	return base + d.EnemyDamageBonus
}

// Invincibility scales the player's post-hit grace period.
func (d DifficultyConfig) Invincibility(base float64) float64 {
	if d.InvincibleScale <= 0 {
		return base
	}
	return math.Round(base * d.InvincibleScale)
}
