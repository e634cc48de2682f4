package report

import (
	"fmt"
	"strings"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/emission"
	"co2-twin/internal/render"

	"github.com/charmbracelet/lipgloss"
)

// Heatmap draws the field two characters per cell, marking buildings with
// their category initial and devices with their kind initial.
func Heatmap(field *core.Grid, sources []emission.Source, devices []capture.Device) string {
	if field == nil {
		return ""
	}
	marks := map[[2]int]string{}
	fg := map[[2]int]lipgloss.Color{}
	for _, s := range sources {
		if !s.Blocking() {
			continue
		}
		key := [2]int{s.X, s.Y}
		marks[key] = initial(string(s.Category))
		fg[key] = hexColor(render.SourceColor(s.Category))
	}
	for _, d := range devices {
		key := [2]int{d.X, d.Y}
		marks[key] = initial(string(d.Kind))
		fg[key] = hexColor(render.DeviceColor(d.Kind))
	}

	var b strings.Builder
	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			bg := render.Over(render.CO2Color(field.At(x, y)), Background)
			style := lipgloss.NewStyle().Background(hexColor(bg))
			cell := "  "
			if m, ok := marks[[2]int{x, y}]; ok {
				cell = m + " "
				style = style.Bold(true).Foreground(fg[[2]int{x, y}])
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteByte('\n')
	}
	b.WriteString(Legend(8))
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("  peak %.0f", field.Max())))
	return b.String()
}

// Legend renders the colour ramp from the clear floor up to saturation.
func Legend(steps int) string {
	if steps < 2 {
		steps = 2
	}
	var b strings.Builder
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%.0f ", render.RampFloor)))
	for i := 0; i < steps; i++ {
		v := render.RampFloor + (render.RampMax-render.RampFloor)*float64(i+1)/float64(steps)
		bg := render.Over(render.CO2Color(v), Background)
		b.WriteString(lipgloss.NewStyle().Background(hexColor(bg)).Render("  "))
	}
	b.WriteString(Styles.Muted.Render(fmt.Sprintf(" %.0f+", render.RampMax)))
	return b.String()
}

func initial(s string) string {
	if s == "" {
		return "?"
	}
	return strings.ToUpper(s[:1])
}
