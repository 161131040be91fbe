package config

import "math"

// MultiplierForPreset returns the damage multiplier for a difficulty preset.
func MultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.5
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true when damage is used exactly as configured.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ScaleDamage applies the difficulty to a base damage value.
// Results are rounded to the nearest integer and never negative.
func ScaleDamage(base int, cfg DifficultyConfig) int {
	if base <= 0 || IsFixedPreset(cfg.Preset) {
		return max(base, 0)
	}

	mult := MultiplierForPreset(cfg.Preset)
	if cfg.Multiplier > 0 {
		mult = cfg.Multiplier
	}

	scaled := math.Round(float64(base) * mult)
	if scaled >= math.MaxInt {
		return math.MaxInt
	}
	return int(scaled)
}
