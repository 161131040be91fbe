package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBattle loads the encounter configuration.
// Search order: customPath -> ~/.arena/configs/battle.yaml -> ./configs/battle.yaml -> embedded default
func LoadBattle(customPath string) (BattleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BattleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBattle(data)
		if err != nil {
			return BattleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("battle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBattle(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/battle.yaml"); err == nil {
		if cfg, err := parseBattle(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBattle(defaultBattleYAML)
	if err != nil {
		return BattleConfig{}, fmt.Errorf("failed to parse embedded default config: %w", err)
	}
	return cfg, nil
}

// parseBattle decodes YAML on top of the defaults so omitted fields keep
// their default values. Enemy damage is the exception: when omitted it
// follows the configured kind.
func parseBattle(data []byte) (BattleConfig, error) {
	cfg := DefaultBattleConfig()
	cfg.Enemy.Damage = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BattleConfig{}, err
	}

	// Store the canonical preset so lookups match regardless of case.
	// Unknown names are left as written for Validate to report.
	if preset, err := ParseDifficulty(string(cfg.Difficulty.Preset)); err == nil {
		cfg.Difficulty.Preset = preset
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", "configs", filename)
}

// ApplyPreset sets the difficulty preset on the config.
// A fixed preset also clears any custom multiplier.
func ApplyPreset(cfg *BattleConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if IsFixedPreset(preset) {
		cfg.Difficulty.Multiplier = 0
	}
}
