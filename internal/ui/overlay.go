//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"co2-twin/internal/core"
	"co2-twin/internal/render"
	"co2-twin/internal/twin"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws buildings, devices, the placement preview and the wind
// indicator on top of the concentration map.
type Overlay struct {
	scenario *twin.Scenario
	scale    int
	showGrid bool

	hoverX, hoverY int
	hovering       bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(s *twin.Scenario, scale int) *Overlay {
	o := &Overlay{scenario: s, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell and the grid toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
	mx, my := ebiten.CursorPosition()
	scale := o.cellScale()
	n := o.scenario.Config().Dispersion.Size
	o.hoverX, o.hoverY = mx/scale, my/scale
	o.hovering = mx >= 0 && my >= 0 && o.hoverX < n && o.hoverY < n
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := float64(o.cellScale())
	n := o.scenario.Config().Dispersion.Size
	if n <= 0 {
		return
	}

	if o.showGrid {
		line := color.RGBA{R: 31, G: 41, B: 55, A: 90}
		extent := float64(n) * scale
		for i := 0; i <= n; i++ {
			p := float64(i) * scale
			o.drawLine(screen, p, 0, p, extent, 1, line)
			o.drawLine(screen, 0, p, extent, p, 1, line)
		}
	}

	o.drawPreview(screen, scale)

	for _, s := range o.scenario.Sources() {
		if !s.Blocking() {
			continue
		}
		cx, cy := (float64(s.X)+0.5)*scale, (float64(s.Y)+0.5)*scale
		o.drawPoint(screen, cx, cy, scale*0.7, color.RGBA{R: 24, G: 24, B: 27, A: 220})
		o.drawPoint(screen, cx, cy, scale*0.5, render.SourceColor(s.Category))
	}
	for _, d := range o.scenario.Devices() {
		cx, cy := (float64(d.X)+0.5)*scale, (float64(d.Y)+0.5)*scale
		o.drawPoint(screen, cx, cy, scale*0.8, color.RGBA{R: 226, G: 232, B: 240, A: 255})
		o.drawPoint(screen, cx, cy, scale*0.6, render.DeviceColor(d.Kind))
	}

	o.drawWind(screen, scale)
}

// drawPreview tints the reach of the selected kind around the hovered cell.
func (o *Overlay) drawPreview(screen *ebiten.Image, scale float64) {
	kind, ok := o.scenario.Selected()
	if !ok || !o.hovering {
		return
	}
	spec, ok := o.scenario.Config().Devices.Lookup(kind)
	if !ok {
		return
	}
	if o.scenario.Occupied(o.hoverX, o.hoverY) {
		o.drawCell(screen, o.hoverX, o.hoverY, scale, color.RGBA{R: 239, G: 68, B: 68, A: 110})
		return
	}
	tint := render.DeviceColor(kind)
	n := o.scenario.Config().Dispersion.Size
	r := spec.Radius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			x, y := o.hoverX+dx, o.hoverY+dy
			if x < 0 || y < 0 || x >= n || y >= n {
				continue
			}
			d := math.Hypot(float64(dx), float64(dy))
			if d > float64(r) {
				continue
			}
			alpha := uint8(40 + 100*(1-d/float64(r)))
			o.drawCell(screen, x, y, scale, color.RGBA{R: tint.R, G: tint.G, B: tint.B, A: alpha})
		}
	}
}

// drawWind paints an arrow in the top-left corner pointing downwind, or a dot
// when calm.
func (o *Overlay) drawWind(screen *ebiten.Image, scale float64) {
	const span = 36.0
	cx, cy := span*0.75, span*0.75
	o.drawPoint(screen, cx, cy, span, color.RGBA{R: 17, G: 24, B: 39, A: 180})
	col := color.RGBA{R: 125, G: 211, B: 252, A: 240}
	wind := o.scenario.Wind()
	if wind == core.Calm {
		o.drawPoint(screen, cx, cy, 6, col)
		return
	}
	dx, dy := wind.Offset()
	nx, ny := float64(dx), float64(dy)
	length := span * 0.7
	tipX, tipY := cx+nx*length/2, cy+ny*length/2
	tailX, tailY := cx-nx*length/2, cy-ny*length/2
	head := length * 0.35
	thickness := math.Max(2, scale*0.12)
	o.drawLine(screen, tailX, tailY, tipX, tipY, thickness, col)

	const headAngle = math.Pi / 6
	angle := math.Atan2(ny, nx)
	o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle+headAngle)*head, tipY-math.Sin(angle+headAngle)*head, thickness, col)
	o.drawLine(screen, tipX, tipY, tipX-math.Cos(angle-headAngle)*head, tipY-math.Sin(angle-headAngle)*head, thickness, col)
}

func (o *Overlay) cellScale() int {
	if o.scale <= 0 {
		return 1
	}
	return o.scale
}

func (o *Overlay) drawCell(screen *ebiten.Image, x, y int, scale float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x)*scale, float64(y)*scale)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
