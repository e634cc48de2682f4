// Package render turns concentration fields into pixels.
package render

import (
	"image/color"

	"co2-twin/internal/capture"
	"co2-twin/internal/emission"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// RampFloor is the concentration at or below which a cell stays clear.
	RampFloor = 5.0
	// RampMax is the concentration that saturates the ramp.
	RampMax = emission.BaseRate * 2.5
)

// Intensity maps a concentration onto [0, 1] against RampMax.
func Intensity(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return clamp01(v / RampMax)
}

// CO2Color returns the non-premultiplied colour for a concentration: clear
// up to RampFloor, then yellow to red with rising saturation and opacity.
func CO2Color(v float64) color.NRGBA {
	if v <= RampFloor {
		return color.NRGBA{}
	}
	p := Intensity(v)
	hue := (1 - p) * 60
	sat := p
	light := 0.40 + p*0.10
	alpha := 0.2 + p*0.6
	r, g, b := colorful.Hsl(hue, sat, light).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

// Over composites c onto an opaque background and returns the opaque result.
func Over(c color.NRGBA, bg color.Color) color.RGBA {
	base, _ := colorful.MakeColor(bg)
	top := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := base.BlendRgb(top, float64(c.A)/255).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex renders an opaque colour as #rrggbb.
func Hex(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

var (
	deviceColors = map[capture.Kind]color.RGBA{
		capture.Scrubber:  {R: 8, G: 145, B: 178, A: 255},
		capture.Garden:    {R: 22, G: 163, B: 74, A: 255},
		capture.Biofilter: {R: 79, G: 70, B: 229, A: 255},
	}
	otherDevice = color.RGBA{R: 148, G: 163, B: 184, A: 255}

	sourceColors = map[emission.Category]color.RGBA{
		emission.Factory:    {R: 252, G: 211, B: 77, A: 255},
		emission.Commercial: {R: 147, G: 197, B: 253, A: 255},
		emission.Traffic:    {R: 100, G: 100, B: 110, A: 255},
	}
)

// DeviceColor returns the marker colour of a device kind.
func DeviceColor(k capture.Kind) color.RGBA {
	if c, ok := deviceColors[k]; ok {
		return c
	}
	return otherDevice
}

// SourceColor returns the marker colour of an emission category.
func SourceColor(c emission.Category) color.RGBA {
	return sourceColors[c]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
