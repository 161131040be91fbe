// arena runs one-shot battles between a player and an enemy in the terminal.
//
// Usage:
//
//	arena fight              - Resolve one enemy attack against the player
//	arena enemies            - List available enemy kinds
//	arena history [player]   - Show recorded battle outcomes
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.arena/battles.db)
//	--verbose       - Enable debug logging on stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import enemies to register them
	_ "github.com/LilyAvelis/battle-arena/internal/enemy"
)

var (
	// Global flags
	flagDBPath  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Battle Arena - resolve a fight in your terminal",
	Long: `Battle Arena pits a player against an enemy and reports the
player's remaining health.

Available commands:
  fight    - Resolve one attack
  enemies  - Show all enemy kinds
  history  - View recorded outcomes

Examples:
  arena fight
  arena fight --enemy skeleton --difficulty hard
  arena enemies
  arena history Lily`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arena/battles.db", "Path to battles database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(fightCmd)
	rootCmd.AddCommand(enemiesCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger returns the stderr logger used by all commands.
// Stdout is reserved for command output.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arena",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
