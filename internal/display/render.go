// Package display renders cards and score breakdowns for the console
package display

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/cribbage-cli/internal/deck"
	"github.com/lox/cribbage-cli/internal/scoring"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	ScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Card renders a single card with suit coloring
func Card(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

// Cards renders a card collection separated by spaces
func Cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = Card(c)
	}
	return strings.Join(parts, " ")
}

// IndexedCards renders cards with their 1-based selection indices,
// matching the indices the discard prompt accepts
func IndexedCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = fmt.Sprintf("%d:%s", i+1, Card(c))
	}
	return strings.Join(parts, "  ")
}

// Breakdown formats an itemized score as an aligned table. Zero-point
// categories are skipped; the total always prints.
func Breakdown(label string, cards []deck.Card, b scoring.Breakdown) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", HeaderStyle.Render(label), Cards(cards))

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	rows := []struct {
		name   string
		points int
	}{
		{"Fifteens", b.Fifteens},
		{"Pairs", b.Pairs},
		{"Runs", b.Runs},
		{"Flush", b.Flush},
		{"Nobs", b.Nobs},
	}
	for _, row := range rows {
		if row.points > 0 {
			fmt.Fprintf(w, "  %s\t%d\n", row.name, row.points)
		}
	}
	fmt.Fprintf(w, "  Total\t%s\n", ScoreStyle.Render(fmt.Sprintf("%d", b.Total)))
	w.Flush()
	return sb.String()
}
