// Package report renders battle outcomes for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LilyAvelis/battle-arena/internal/battle"
	"github.com/LilyAvelis/battle-arena/internal/storage"
)

const barWidth = 20

var (
	healthyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	woundedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	criticalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
)

// Line returns the plain single-line result.
func Line(o battle.Outcome) string {
	return o.String()
}

// Styled returns the result line followed by a colored health bar.
func Styled(o battle.Outcome) string {
	return Line(o) + " " + HealthBar(o.HealthAfter)
}

// HealthBar draws health as a fixed-width bar colored by how much is left.
func HealthBar(health int) string {
	health = max(0, min(health, battle.MaxHealth))
	filled := health * barWidth / battle.MaxHealth

	return "[" +
		styleFor(health).Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barWidth-filled)) +
		"]"
}

func styleFor(health int) lipgloss.Style {
	switch {
	case health > 50:
		return healthyStyle
	case health > 20:
		return woundedStyle
	default:
		return criticalStyle
	}
}

// Table renders stored outcomes as a history listing.
func Table(entries []storage.OutcomeEntry) string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("  %-4s  %-12s  %-8s  %-6s  %-9s  %s",
		"#", "Player", "Enemy", "Damage", "Health", "Date")))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-4s  %-12s  %-8s  %-6s  %-9s  %s\n",
		"-", "------", "-----", "------", "------", "----"))

	for i, e := range entries {
		dateStr := ""
		if !e.CreatedAt.IsZero() {
			dateStr = e.CreatedAt.Format("2006-01-02 15:04")
		}
		health := fmt.Sprintf("%d->%d", e.HealthBefore, e.HealthAfter)
		sb.WriteString(fmt.Sprintf("  %-4d  %-12s  %-8s  %-6d  %-9s  %s\n",
			i+1, e.Player, e.EnemyKind, e.Damage, health, dateStr))
	}

	return sb.String()
}

// Stats renders a player's summary line.
func Stats(s storage.PlayerStats) string {
	return fmt.Sprintf("%s: %d battles, %d damage taken, %d defeats",
		s.Player, s.Battles, s.DamageTaken, s.Defeats)
}
