package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		input    string
		expected DifficultyPreset
		ok       bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"", DifficultyNormal, false},
		{"HARD", DifficultyNormal, false},
		{"fixed", DifficultyNormal, false},
	}

	for _, tt := range tests {
		got, ok := ParsePreset(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v, expected %q, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestApplyLegendPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		name   string
		speed  float64
		bonus  int
		invinc float64
	}{
		{DifficultyEasy, "easy", 0.75, 0, 1.5},
		{DifficultyNormal, "normal", 1, 0, 1},
		{DifficultyHard, "hard", 1.25, 1, 0.6},
		{"", "normal", 1, 0, 1},
	}

	for _, tt := range tests {
		cfg := DefaultLegendConfig()
		ApplyLegendPreset(&cfg, tt.preset)
		d := cfg.Difficulty
		if d.Preset != tt.name {
			t.Errorf("ApplyLegendPreset(%q) Preset = %q, expected %q", tt.preset, d.Preset, tt.name)
		}
		if d.EnemySpeedScale != tt.speed || d.EnemyDamageBonus != tt.bonus || d.InvincibleScale != tt.invinc {
			t.Errorf("ApplyLegendPreset(%q) = %+v, expected scale %v bonus %d invincible %v",
				tt.preset, d, tt.speed, tt.bonus, tt.invinc)
		}
	}
}

func TestDifficultyScaling(t *testing.T) {
	hard := DifficultyConfig{EnemySpeedScale: 1.25, EnemyDamageBonus: 1, InvincibleScale: 0.6}

	if got := hard.EnemySpeed(4); got != 5 {
		t.Errorf("EnemySpeed(4) = %v, expected 5", got)
	}
	if got := hard.EnemyDamage(2); got != 3 {
		t.Errorf("EnemyDamage(2) = %d, expected 3", got)
	}
	if got := hard.Invincibility(150); got != 90 {
		t.Errorf("Invincibility(150) = %v, expected 90", got)
	}

	var zero DifficultyConfig
	if got := zero.EnemySpeed(4); got != 4 {
		t.Errorf("zero EnemySpeed(4) = %v, expected 4", got)
	}
	if got := zero.Invincibility(150); got != 150 {
		t.Errorf("zero Invincibility(150) = %v, expected 150", got)
	}
}
