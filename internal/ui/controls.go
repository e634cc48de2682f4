// Package ui draws the interactive panels around the map.
package ui

import (
	"image"
	"math"
	"strconv"

	"co2-twin/internal/core"
)

const defaultStep = 0.05

// controlRow is one adjustable tunable on the HUD with its button geometry.
type controlRow struct {
	ctrl  core.ParameterControl
	text  string
	value float64
	known bool

	top         int
	minus, plus image.Rectangle
}

func newControlRows(ctrls []core.ParameterControl) []controlRow {
	rows := make([]controlRow, len(ctrls))
	for i, c := range ctrls {
		rows[i] = controlRow{ctrl: c, text: "--"}
	}
	return rows
}

// refresh pulls the current value for the row out of snapshot.
func (r *controlRow) refresh(snapshot core.ParameterSnapshot) {
	r.known = false
	r.text = "--"
	p, ok := snapshot.Lookup(r.ctrl.Key)
	if !ok {
		return
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	r.set(v)
}

func (r *controlRow) set(v float64) {
	r.value = v
	r.text = formatFloat(r.ctrl, v)
	r.known = true
}

// place lays the row out at top inside a panel of width, with the +/- buttons
// right-aligned.
func (r *controlRow) place(top, width int) {
	y := top + (lineHeight-buttonSize)/2
	right := width - panelPadding
	r.top = top
	r.plus = image.Rect(right-buttonSize, y, right, y+buttonSize)
	right = r.plus.Min.X - buttonGap
	r.minus = image.Rect(right-buttonSize, y, right, y+buttonSize)
}

// step returns the value one step in dir and whether that changes anything
// within the control bounds.
func (r *controlRow) step(dir int) (float64, bool) {
	if r == nil || dir == 0 || !r.known || r.ctrl.Type != core.ParamTypeFloat {
		return 0, false
	}
	size := r.ctrl.Step
	if size <= 0 {
		size = defaultStep
	}
	next := r.value + float64(dir)*size
	if r.ctrl.HasMin {
		next = math.Max(next, r.ctrl.Min)
	}
	if r.ctrl.HasMax {
		next = math.Min(next, r.ctrl.Max)
	}
	if math.Abs(next-r.value) < 1e-9 {
		return 0, false
	}
	return next, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultStep
	}
	digits := 1
	for _, limit := range []float64{0.1, 0.01, 0.001} {
		if step < limit {
			digits++
		}
	}
	return strconv.FormatFloat(value, 'f', digits, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Panel geometry shared by the HUD and its control rows.
const (
	panelPadding   = 12
	lineHeight     = 36
	lineStep       = 16
	barHeight      = 8
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	sectionGap     = 10
	kindHeight     = 40
	controlsTop    = panelPadding + headerBaseline + 14
)
