package config

import (
	_ "embed"

	"github.com/LilyAvelis/battle-arena/internal/battle"
)

//go:embed defaults/battle.yaml
var defaultBattleYAML []byte

// DefaultBattleConfig returns the default encounter configuration.
func DefaultBattleConfig() BattleConfig {
	return BattleConfig{
		Player: PlayerConfig{
			Name:   "Lily",
			Health: battle.MaxHealth,
			Items: []ItemConfig{
				{ID: 1, Name: "Wooden Sword"},
				{ID: 2, Name: "Health Potion"},
			},
		},
		Enemy: EnemyConfig{
			Kind:   "goblin",
			Damage: IntPtr(10),
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// IntPtr returns a pointer to v, for optional config fields.
func IntPtr(v int) *int {
	return &v
}
