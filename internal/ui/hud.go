//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/render"
	"co2-twin/internal/report"
	"co2-twin/internal/twin"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the dashboard panel to the right of the map.
type HUD struct {
	scenario *twin.Scenario
	setter   core.FloatParameterSetter
	width    int

	panel  *ebiten.Image
	pixel  *ebiten.Image
	rows   []controlRow
	kinds  []kindButton
	offset int
}

type kindButton struct {
	kind capture.Kind
	rect image.Rectangle
}

// NewHUD constructs a HUD for the scenario and panel width.
func NewHUD(s *twin.Scenario, width int) *HUD {
	h := &HUD{scenario: s, setter: s, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.rows = newControlRows(s.ParameterControls())
	for i := range h.rows {
		h.rows[i].place(controlsTop+i*lineHeight, h.width)
	}
	h.layoutKinds()
	return h
}

// Reload rebuilds the device picker after the scenario catalog changed.
func (h *HUD) Reload() {
	if h == nil {
		return
	}
	h.layoutKinds()
}

// Update refreshes the control values and handles clicks inside the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offset = panelOffsetX
	snapshot := h.scenario.Parameters()
	for i := range h.rows {
		h.rows[i].refresh(snapshot)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if mx >= h.offset {
			h.click(mx-h.offset, my)
		}
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.scenario.Config().Dispersion.Size * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(colorPanel)
	h.drawControls()
	h.drawDashboard(h.drawKinds() + sectionGap)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) click(x, y int) {
	for i := range h.rows {
		r := &h.rows[i]
		dir := 0
		switch {
		case pointInRect(x, y, r.minus):
			dir = -1
		case pointInRect(x, y, r.plus):
			dir = 1
		default:
			continue
		}
		if next, ok := r.step(dir); ok && h.setter.SetFloatParameter(r.ctrl.Key, next) {
			r.set(next)
		}
		return
	}
	for _, b := range h.kinds {
		if pointInRect(x, y, b.rect) {
			_ = h.scenario.Select(b.kind)
			return
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "CO2 Twin Controls", face, panelPadding, panelPadding+headerBaseline, colorTitle)
	for i := range h.rows {
		r := &h.rows[i]
		baseline := r.top + labelBaseline
		text.Draw(h.panel, r.ctrl.Label, face, panelPadding, baseline, colorText)
		valueColor := colorMuted
		if r.known {
			valueColor = colorText
		}
		w := text.BoundString(face, r.text).Dx()
		text.Draw(h.panel, r.text, face, r.minus.Min.X-buttonGap-w, baseline, valueColor)

		_, canDec := r.step(-1)
		_, canInc := r.step(1)
		h.drawButton(r.minus, "-", canDec)
		h.drawButton(r.plus, "+", canInc)
	}
}

// drawKinds paints the device picker and returns the y below it.
func (h *HUD) drawKinds() int {
	face := basicfont.Face7x13
	catalog := h.scenario.Config().Devices
	selected, hasSelection := h.scenario.Selected()
	bottom := kindsTop(len(h.rows))
	for i, b := range h.kinds {
		spec := catalog[b.kind]
		bg := colorButton
		if hasSelection && selected == b.kind {
			bg = render.DeviceColor(b.kind)
		}
		h.fillRect(b.rect, bg)
		swatch := image.Rect(b.rect.Min.X+4, b.rect.Min.Y+4, b.rect.Min.X+16, b.rect.Min.Y+16)
		h.fillRect(swatch, render.DeviceColor(b.kind))
		text.Draw(h.panel, fmt.Sprintf("[%d] %s", i+1, spec.Name), face, b.rect.Min.X+22, b.rect.Min.Y+14, colorText)
		detail := fmt.Sprintf("%g u  r%d  %s", spec.CaptureRate, spec.Radius, report.Money(spec.Cost))
		text.Draw(h.panel, detail, face, b.rect.Min.X+22, b.rect.Min.Y+28, colorMuted)
		bottom = b.rect.Max.Y
	}
	return bottom
}

func (h *HUD) drawDashboard(top int) {
	face := basicfont.Face7x13
	res := h.scenario.Evaluate()
	stats := res.Stats
	y := top + lineStep
	line := func(label, value string, col color.Color) {
		text.Draw(h.panel, label, face, panelPadding, y, colorText)
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), y, col)
		y += lineStep
	}

	text.Draw(h.panel, "Dashboard", face, panelPadding, y, colorTitle)
	y += lineStep
	line("Wind", h.scenario.Wind().String(), colorText)
	line("Baseline", report.Units(stats.TotalBaseline), colorBaseline)
	line("Captured", report.Units(stats.TotalCaptured), colorCaptured)
	line("Efficiency", report.Percent(stats.EfficiencyPct), colorTitle)
	h.drawBar(y-lineStep+4, stats.EfficiencyPct, colorTitle)
	y += barHeight

	if len(stats.Breakdown) == 0 {
		text.Draw(h.panel, "Select a unit and click the map.", face, panelPadding, y, colorMuted)
		return
	}
	line("Investment", report.Money(stats.TotalInvestment), colorMoney)
	line("Cost / unit", report.UnitCost(stats.CostPerUnitCaptured), colorMoney)
	y += 4
	for _, row := range stats.Breakdown {
		line(fmt.Sprintf("%s (%d)", row.Name, row.Count), report.Percent(row.SharePct), colorCaptured)
		h.drawBar(y-lineStep+4, row.SharePct, render.DeviceColor(row.Kind))
		y += barHeight
	}
}

func (h *HUD) drawBar(top int, pct float64, fill color.RGBA) {
	width := h.width - 2*panelPadding
	track := image.Rect(panelPadding, top, panelPadding+width, top+barHeight-2)
	h.fillRect(track, color.RGBA{R: 75, G: 85, B: 99, A: 255})
	n := int(math.Round(clamp01(pct/100) * float64(width)))
	if n > 0 {
		h.fillRect(image.Rect(panelPadding, top, panelPadding+n, top+barHeight-2), fill)
	}
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := colorButton, colorText
	if !enabled {
		bg, fg = colorButtonOff, colorMuted
	}
	h.fillRect(rect, bg)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	text.Draw(h.panel, label, face, rect.Min.X+(rect.Dx()-b.Dx())/2, rect.Min.Y+(rect.Dy()+b.Dy())/2, fg)
}

func (h *HUD) layoutKinds() {
	h.kinds = h.kinds[:0]
	top := kindsTop(len(h.rows))
	for _, k := range twin.KindOrder(h.scenario.Config().Devices) {
		h.kinds = append(h.kinds, kindButton{kind: k, rect: image.Rect(panelPadding, top, h.width-panelPadding, top+kindHeight-4)})
		top += kindHeight
	}
}

func kindsTop(rows int) int {
	return controlsTop + rows*lineHeight + sectionGap
}

var (
	colorPanel     = color.RGBA{R: 17, G: 24, B: 39, A: 255}
	colorTitle     = color.RGBA{R: 34, G: 211, B: 238, A: 255}
	colorText      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colorMuted     = color.RGBA{R: 156, G: 163, B: 175, A: 255}
	colorBaseline  = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	colorCaptured  = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	colorMoney     = color.RGBA{R: 74, G: 222, B: 128, A: 255}
	colorButton    = color.RGBA{R: 55, G: 65, B: 81, A: 255}
	colorButtonOff = color.RGBA{R: 31, G: 41, B: 55, A: 255}
)
