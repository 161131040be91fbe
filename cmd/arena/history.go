package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/LilyAvelis/battle-arena/internal/report"
	"github.com/LilyAvelis/battle-arena/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [player]",
	Short: "Show recorded battle outcomes",
	Long: `Display the most recent battle outcomes, optionally for one player.
When a player is given, a summary of all their battles is shown too.
With --clear, the player's recorded battles are deleted instead.

Examples:
  arena history
  arena history Lily --limit 5
  arena history Lily --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of outcomes to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the given player's outcomes")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	player := ""
	if len(args) == 1 {
		player = args[0]
	}

	if flagHistoryClear {
		return clearHistory(cmd.OutOrStdout(), store, player)
	}

	return showHistory(cmd.OutOrStdout(), store, player, flagHistoryLimit)
}

func clearHistory(out io.Writer, store *storage.Store, player string) error {
	if player == "" {
		return errors.New("--clear requires a player name")
	}

	if err := store.ClearOutcomes(player); err != nil {
		return err
	}

	fmt.Fprintf(out, "Cleared battle history for %s.\n", player)
	return nil
}

func showHistory(out io.Writer, store *storage.Store, player string, limit int) error {
	var (
		entries []storage.OutcomeEntry
		err     error
	)
	if player == "" {
		entries, err = store.RecentOutcomes(limit)
	} else {
		entries, err = store.OutcomesForPlayer(player, limit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(out, "No battles recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'arena fight' to record the first one!")
		return nil
	}

	fmt.Fprint(out, report.Table(entries))

	if player != "" {
		stats, err := store.Stats(player)
		if err != nil {
			return err
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, report.Stats(stats))
	}

	return nil
}
