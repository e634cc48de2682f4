// Package report renders twin results for the terminal.
package report

import (
	"fmt"
	"image/color"
	"strings"

	"co2-twin/internal/render"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Dashboard palette, dark slate with the signal colours of the live view.
var (
	ColorTitle    = lipgloss.Color("#22D3EE")
	ColorBaseline = lipgloss.Color("#EF4444")
	ColorCaptured = lipgloss.Color("#22C55E")
	ColorMoney    = lipgloss.Color("#4ADE80")
	ColorMuted    = lipgloss.Color("#9CA3AF")
	ColorBorder   = lipgloss.Color("#374151")
	ColorTrack    = lipgloss.Color("#4B5563")

	// Background is the map colour clear cells take.
	Background = color.RGBA{R: 17, G: 24, B: 39, A: 255}
)

// Styles holds the pre-configured lipgloss styles.
var Styles = struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Baseline lipgloss.Style
	Captured lipgloss.Style
	Money    lipgloss.Style
	Muted    lipgloss.Style
	Box      lipgloss.Style
}{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(ColorTitle),
	Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("#D1D5DB")),
	Baseline: lipgloss.NewStyle().Bold(true).Foreground(ColorBaseline),
	Captured: lipgloss.NewStyle().Bold(true).Foreground(ColorCaptured),
	Money:    lipgloss.NewStyle().Bold(true).Foreground(ColorMoney),
	Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1),
}

var printer = message.NewPrinter(language.English)

// Units formats a concentration total.
func Units(v float64) string { return printer.Sprintf("%.0f units", v) }

// Money formats a whole-dollar amount with thousands separators.
func Money(v float64) string { return printer.Sprintf("$%.0f", v) }

// UnitCost formats a cost per unit with cents.
func UnitCost(v float64) string { return printer.Sprintf("$%.2f", v) }

// Percent formats a percentage with one decimal.
func Percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

// Bar draws a proportional bar of width cells filled to pct percent.
func Bar(pct float64, width int, fill lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	n := int(pct/100*float64(width) + 0.5)
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	on := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat("█", n))
	off := lipgloss.NewStyle().Foreground(ColorTrack).Render(strings.Repeat("░", width-n))
	return on + off
}

func hexColor(c color.Color) lipgloss.Color {
	return lipgloss.Color(render.Hex(c))
}
