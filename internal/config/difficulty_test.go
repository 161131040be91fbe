package config

import (
	"math"
	"testing"
)

func TestScaleDamage(t *testing.T) {
	tests := []struct {
		name string
		base int
		cfg  DifficultyConfig
		want int
	}{
		{"normal", 10, DifficultyConfig{Preset: DifficultyNormal}, 10},
		{"empty preset is normal", 10, DifficultyConfig{}, 10},
		{"easy halves", 10, DifficultyConfig{Preset: DifficultyEasy}, 5},
		{"hard", 10, DifficultyConfig{Preset: DifficultyHard}, 15},
		{"fixed ignores multiplier", 10, DifficultyConfig{Preset: DifficultyFixed, Multiplier: 3}, 10},
		{"custom multiplier", 10, DifficultyConfig{Preset: DifficultyNormal, Multiplier: 2}, 20},
		{"rounding", 15, DifficultyConfig{Preset: DifficultyEasy}, 8},
		{"zero base", 0, DifficultyConfig{Preset: DifficultyHard}, 0},
		{"negative base", -4, DifficultyConfig{Preset: DifficultyHard}, 0},
		{"max int hard saturates", math.MaxInt, DifficultyConfig{Preset: DifficultyHard}, math.MaxInt},
		{"max int custom saturates", math.MaxInt, DifficultyConfig{Multiplier: 10}, math.MaxInt},
		{"max int normal saturates", math.MaxInt, DifficultyConfig{Preset: DifficultyNormal}, math.MaxInt},
		{"max int fixed", math.MaxInt, DifficultyConfig{Preset: DifficultyFixed}, math.MaxInt},
		{"max int easy stays positive", math.MaxInt, DifficultyConfig{Preset: DifficultyEasy}, int(math.Round(float64(math.MaxInt) * 0.5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScaleDamage(tt.base, tt.cfg); got != tt.want {
				t.Errorf("ScaleDamage(%d) = %d, want %d", tt.base, got, tt.want)
			}
		})
	}
}

func TestApplyPresetFixedClearsMultiplier(t *testing.T) {
	cfg := DefaultBattleConfig()
	cfg.Difficulty.Multiplier = 2

	ApplyPreset(&cfg, DifficultyFixed)

	if cfg.Difficulty.Multiplier != 0 {
		t.Errorf("Expected multiplier cleared, got %v", cfg.Difficulty.Multiplier)
	}
	if cfg.Difficulty.Preset != DifficultyFixed {
		t.Errorf("Expected fixed preset, got %q", cfg.Difficulty.Preset)
	}
}

func TestHugeDamageStillKills(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		cfg := DefaultBattleConfig()
		cfg.Enemy.Damage = IntPtr(math.MaxInt)
		ApplyPreset(&cfg, preset)

		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s: Validate() failed: %v", preset, err)
		}
		e, err := cfg.NewEnemy()
		if err != nil {
			t.Fatalf("%s: NewEnemy() failed: %v", preset, err)
		}

		p := cfg.NewPlayer()
		e.Attack(p)
		if p.Health() != 0 {
			t.Errorf("%s: expected health 0 after damage %d, got %d", preset, e.Damage(), p.Health())
		}
	}
}
