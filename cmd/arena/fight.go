package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LilyAvelis/battle-arena/internal/battle"
	"github.com/LilyAvelis/battle-arena/internal/config"
	"github.com/LilyAvelis/battle-arena/internal/report"
	"github.com/LilyAvelis/battle-arena/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEnemy      string
	flagDamage     int
	flagPlayer     string
	flagHeal       int
	flagNoSave     bool
)

var fightCmd = &cobra.Command{
	Use:   "fight",
	Short: "Resolve one enemy attack against the player",
	Long: `Load the encounter, let the enemy attack once and print the
player's remaining health.

Difficulty options:
  easy   - Enemy damage x0.5
  normal - Enemy damage as configured
  hard   - Enemy damage x1.5
  fixed  - Damage exactly as configured, ignoring any multiplier

Examples:
  arena fight
  arena fight --enemy dragon
  arena fight --damage 30 --heal 20
  arena fight --config ./my-battle.yaml --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runFight,
}

func init() {
	fightCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom battle config YAML")
	fightCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	fightCmd.Flags().StringVar(&flagEnemy, "enemy", "", "Enemy kind (overrides config)")
	fightCmd.Flags().IntVar(&flagDamage, "damage", 0, "Enemy damage (overrides config)")
	fightCmd.Flags().StringVar(&flagPlayer, "player", "", "Player name (overrides config)")
	fightCmd.Flags().IntVar(&flagHeal, "heal", 0, "Heal the player by this amount after the attack")
	fightCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the outcome")
}

// fightOptions are the resolved command-line overrides for a fight.
type fightOptions struct {
	ConfigPath string
	Difficulty string
	Enemy      string
	Damage     int
	DamageSet  bool
	Player     string
	Heal       int
	Styled     bool
}

func runFight(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	opts := fightOptions{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
		Enemy:      flagEnemy,
		Damage:     flagDamage,
		DamageSet:  cmd.Flags().Changed("damage"),
		Player:     flagPlayer,
		Heal:       flagHeal,
		Styled:     term.IsTerminal(int(os.Stdout.Fd())),
	}

	outcome, err := fight(cmd.OutOrStdout(), logger, opts)
	if err != nil {
		return err
	}

	if flagNoSave {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// Continue without storage - the fight already happened
		logger.Warn("could not open battles database", "error", err)
		return nil
	}
	defer store.Close()

	id, err := store.SaveOutcome(outcome)
	if err != nil {
		logger.Warn("could not record outcome", "error", err)
		return nil
	}
	logger.Debug("outcome recorded", "id", id)

	return nil
}

// fight builds the encounter, resolves it and writes the result line to out.
func fight(out io.Writer, logger *log.Logger, opts fightOptions) (battle.Outcome, error) {
	cfg, err := config.LoadBattle(opts.ConfigPath)
	if err != nil {
		return battle.Outcome{}, err
	}

	if opts.Difficulty != "" {
		preset, err := config.ParseDifficulty(opts.Difficulty)
		if err != nil {
			return battle.Outcome{}, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if opts.Enemy != "" {
		cfg.Enemy.Kind = opts.Enemy
		// Use the new kind's default damage unless overridden below
		cfg.Enemy.Damage = nil
	}
	if opts.DamageSet {
		cfg.Enemy.Damage = config.IntPtr(opts.Damage)
	}
	if opts.Player != "" {
		cfg.Player.Name = opts.Player
	}

	if err := cfg.Validate(); err != nil {
		return battle.Outcome{}, fmt.Errorf("invalid battle config: %w", err)
	}

	player := cfg.NewPlayer()
	foe, err := cfg.NewEnemy()
	if err != nil {
		return battle.Outcome{}, err
	}

	logger.Debug("battle start",
		"player", player.Name(),
		"health", player.Health(),
		"items", len(player.Items()),
		"enemy", foe.Kind(),
		"damage", foe.Damage(),
		"difficulty", cfg.Difficulty.Preset,
	)

	outcome := battle.ResolveWithHeal(foe, foe.Kind().String(), player, opts.Heal)

	logger.Debug("battle resolved",
		"before", outcome.HealthBefore,
		"after", outcome.HealthAfter,
		"healed", outcome.Healed,
		"defeated", outcome.Defeated(),
	)

	line := report.Line(outcome)
	if opts.Styled {
		line = report.Styled(outcome)
	}
	fmt.Fprintln(out, line)

	return outcome, nil
}
