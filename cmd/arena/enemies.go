package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/LilyAvelis/battle-arena/internal/registry"
)

var enemiesCmd = &cobra.Command{
	Use:   "enemies",
	Short: "List all enemy kinds",
	Long:  `Shows every enemy kind with its default damage.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		listEnemies(cmd.OutOrStdout())
	},
}

func listEnemies(out io.Writer) {
	enemies := registry.List()

	if len(enemies) == 0 {
		fmt.Fprintln(out, "No enemies available.")
		return
	}

	fmt.Fprintln(out, "Available enemies:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxKindLen := 4 // "Kind" header
	for _, e := range enemies {
		if len(e.Kind) > maxKindLen {
			maxKindLen = len(e.Kind)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-8s  %s\n", maxKindLen, "Kind", "Title", "Damage")
	fmt.Fprintf(out, "  %-*s  %-8s  %s\n", maxKindLen, "----", "-----", "------")

	for _, e := range enemies {
		fmt.Fprintf(out, "  %-*s  %-8s  %d\n", maxKindLen, e.Kind, e.Title, e.Damage)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arena fight --enemy <kind>' to fight one.")
}
