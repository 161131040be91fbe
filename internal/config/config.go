// Package config provides YAML-based battle configuration loading and
// difficulty handling for the arena.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LilyAvelis/battle-arena/internal/battle"
	"github.com/LilyAvelis/battle-arena/internal/enemy"
	"github.com/LilyAvelis/battle-arena/internal/registry"
)

// ErrUnknownDifficulty is returned for preset names outside the known set.
var ErrUnknownDifficulty = errors.New("config: unknown difficulty")

// BattleConfig contains everything needed to set up one encounter.
type BattleConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player at the start of the encounter.
type PlayerConfig struct {
	Name   string       `yaml:"name"`
	Health int          `yaml:"health"`
	Items  []ItemConfig `yaml:"items"`
}

// ItemConfig defines one inventory item.
type ItemConfig struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// EnemyConfig defines the attacker. A nil Damage means the kind's default.
type EnemyConfig struct {
	Kind   string `yaml:"kind"`
	Damage *int   `yaml:"damage"`
}

// DifficultyConfig selects how enemy damage is scaled.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
	// Multiplier overrides the preset's multiplier when positive.
	Multiplier float64 `yaml:"multiplier"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty converts a preset name to a DifficultyPreset.
// An empty name means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownDifficulty, s)
	}
}

// Validate checks the config and reports every problem found.
func (c BattleConfig) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Player.Name) == "" {
		errs = append(errs, errors.New("player.name must not be empty"))
	}
	if c.Player.Health < 0 || c.Player.Health > battle.MaxHealth {
		errs = append(errs, fmt.Errorf("player.health %d out of range [0, %d]", c.Player.Health, battle.MaxHealth))
	}

	seen := make(map[int]bool, len(c.Player.Items))
	for _, it := range c.Player.Items {
		if seen[it.ID] {
			errs = append(errs, fmt.Errorf("player.items: duplicate id %d", it.ID))
		}
		seen[it.ID] = true
	}

	if kind, err := enemy.ParseKind(c.Enemy.Kind); err != nil {
		errs = append(errs, err)
	} else if !registry.Exists(kind.String()) {
		errs = append(errs, fmt.Errorf("%w: %q", registry.ErrNotRegistered, kind))
	}
	if c.Enemy.Damage != nil && *c.Enemy.Damage < 0 {
		errs = append(errs, fmt.Errorf("enemy.damage %d must not be negative", *c.Enemy.Damage))
	}

	if c.Difficulty.Preset != "" {
		if _, err := ParseDifficulty(string(c.Difficulty.Preset)); err != nil {
			errs = append(errs, err)
		}
	}
	if c.Difficulty.Multiplier < 0 {
		errs = append(errs, fmt.Errorf("difficulty.multiplier %v must not be negative", c.Difficulty.Multiplier))
	}

	return errors.Join(errs...)
}

// NewPlayer builds the player described by the config.
func (c BattleConfig) NewPlayer() *battle.Player {
	p := battle.NewPlayerAt(c.Player.Name, c.Player.Health)
	for _, it := range c.Player.Items {
		p.AddItem(battle.Item{ID: it.ID, Name: it.Name})
	}
	return p
}

// NewEnemy builds the enemy described by the config with difficulty applied.
func (c BattleConfig) NewEnemy() (enemy.Enemy, error) {
	kind, err := enemy.ParseKind(c.Enemy.Kind)
	if err != nil {
		return enemy.Enemy{}, err
	}

	var damage int
	if c.Enemy.Damage != nil {
		damage = *c.Enemy.Damage
	} else {
		// Default stats come from the registered factory
		base, err := registry.Create(kind.String())
		if err != nil {
			return enemy.Enemy{}, err
		}
		damage = base.Damage()
	}

	diff := c.Difficulty
	if preset, err := ParseDifficulty(string(diff.Preset)); err == nil {
		diff.Preset = preset
	}

	return enemy.New(kind, ScaleDamage(damage, diff)), nil
}
