package report

import (
	"fmt"
	"strconv"

	"co2-twin/internal/capture"
	"co2-twin/internal/emission"
	"co2-twin/internal/twin"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func newTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Foreground(ColorTitle).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// Sweep renders ranked placements for kind.
func Sweep(cands []twin.Candidate, kind capture.Kind) string {
	t := newTable("#", "Cell", "Attributed", "Captured", "Efficiency", "Investment", "Cost/unit")
	for i, c := range cands {
		t.Row(
			strconv.Itoa(i+1),
			fmt.Sprintf("(%d,%d)", c.X, c.Y),
			Units(c.Attributed),
			Units(c.Stats.TotalCaptured),
			Percent(c.Stats.EfficiencyPct),
			Money(c.Stats.TotalInvestment),
			UnitCost(c.UnitCost()),
		)
	}
	title := Styles.Title.Render(fmt.Sprintf("Best placements for %s", kind))
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String())
}

// Sources renders the emission inventory.
func Sources(sources []emission.Source) string {
	t := newTable("ID", "Category", "Cell", "Rate")
	for _, s := range sources {
		t.Row(s.ID, string(s.Category), fmt.Sprintf("(%d,%d)", s.X, s.Y), fmt.Sprintf("%.1f", s.Rate))
	}
	total := Styles.Muted.Render("Total emission rate: " + printer.Sprintf("%.1f", emission.Total(sources)))
	return lipgloss.JoinVertical(lipgloss.Left, Styles.Title.Render("Emission sources"), t.String(), total)
}
