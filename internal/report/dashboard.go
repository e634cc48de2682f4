package report

import (
	"fmt"
	"strings"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/render"
	"co2-twin/internal/twin"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

// Dashboard renders the live statistics panel. The financial and breakdown
// sections only appear once a device is placed.
func Dashboard(stats twin.Stats, wind core.Wind) string {
	var sections []string

	head := []string{
		Styles.Title.Render("Dashboard"),
		Styles.Muted.Render("Wind: " + wind.String()),
		"",
		Styles.Label.Render("Total CO2 emitted (baseline)"),
		Styles.Baseline.Render(Units(stats.TotalBaseline)),
		Styles.Label.Render("Total CO2 captured"),
		Styles.Captured.Render(Units(stats.TotalCaptured)),
		Styles.Label.Render("Overall capture efficiency"),
		Bar(stats.EfficiencyPct, barWidth, ColorTitle) + " " + Percent(stats.EfficiencyPct),
	}
	sections = append(sections, Styles.Box.Render(strings.Join(head, "\n")))

	if len(stats.Breakdown) > 0 {
		money := []string{
			Styles.Title.Render("Financial analysis"),
			Styles.Label.Render("Total investment"),
			Styles.Money.Render(Money(stats.TotalInvestment)),
			Styles.Label.Render("Cost per unit of CO2 captured"),
			Styles.Money.Render(UnitCost(stats.CostPerUnitCaptured)),
		}
		sections = append(sections, Styles.Box.Render(strings.Join(money, "\n")))
		sections = append(sections, Styles.Box.Render(Breakdown(stats.Breakdown)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Breakdown renders one row per device kind with its share of the capture.
func Breakdown(rows []twin.KindStats) string {
	lines := []string{Styles.Title.Render("Capture breakdown")}
	for _, row := range rows {
		label := fmt.Sprintf("%s (%d)", row.Name, row.Count)
		lines = append(lines,
			lipgloss.JoinHorizontal(lipgloss.Top,
				lipgloss.NewStyle().Width(barWidth+2).Render(Styles.Label.Render(label)),
				Styles.Captured.Render(Percent(row.SharePct)),
			),
			Bar(row.SharePct, barWidth, hexColor(render.DeviceColor(row.Kind)))+" "+Styles.Muted.Render(Units(row.Captured)),
		)
	}
	return strings.Join(lines, "\n")
}

// Catalog lists the available device kinds in dashboard order.
func Catalog(catalog capture.Catalog) string {
	lines := []string{Styles.Title.Render("Interventions")}
	for i, k := range twin.KindOrder(catalog) {
		spec := catalog[k]
		swatch := lipgloss.NewStyle().Foreground(hexColor(render.DeviceColor(k))).Render("■")
		lines = append(lines,
			fmt.Sprintf("%s [%d] %s (%s)", swatch, i+1, Styles.Label.Bold(true).Render(spec.Name), k),
			Styles.Muted.Render(fmt.Sprintf("    Capture: %g units | Radius: %d cells | Cost: %s",
				spec.CaptureRate, spec.Radius, Money(spec.Cost))),
		)
	}
	return Styles.Box.Render(strings.Join(lines, "\n"))
}
