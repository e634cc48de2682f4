// Package capture subtracts device attenuation from a propagated field and
// attributes the removed concentration to device kinds.
package capture

import (
	"math"

	"co2-twin/internal/core"
)

// Device is a placed capture unit.
type Device struct {
	X    int  `json:"x" yaml:"x" toml:"x"`
	Y    int  `json:"y" yaml:"y" toml:"y"`
	Kind Kind `json:"kind" yaml:"kind" toml:"kind"`
}

// KindTally accumulates the capture attributed to one kind.
type KindTally struct {
	Count    int
	Captured float64
}

// Tally maps each kind to its attributed capture.
type Tally map[Kind]KindTally

// Total sums the captured amount across kinds.
func (t Tally) Total() float64 {
	var sum float64
	for _, k := range t {
		sum += k.Captured
	}
	return sum
}

// Apply returns a copy of grid with every device's attenuation subtracted.
// Devices are applied in order against the same output grid so overlaps
// compound, and no cell drops below zero.
func Apply(grid *core.Grid, devices []Device, catalog Catalog) *core.Grid {
	out := grid.Clone()
	values := out.Values()
	for _, d := range devices {
		spec, ok := catalog.Lookup(d.Kind)
		if !ok {
			continue
		}
		forEachInRadius(out, d, spec, func(idx int, reduction float64) {
			values[idx] = math.Max(0, values[idx]-reduction)
		})
	}
	return out
}

// Breakdown attributes capture to device kinds against a working copy of
// grid. Each device can only claim what earlier devices left behind, so the
// result depends on placement order.
func Breakdown(grid *core.Grid, devices []Device, catalog Catalog) Tally {
	work := grid.Clone()
	values := work.Values()
	tally := Tally{}
	for _, d := range devices {
		spec, ok := catalog.Lookup(d.Kind)
		if !ok {
			continue
		}
		entry := tally[d.Kind]
		entry.Count++
		forEachInRadius(work, d, spec, func(idx int, potential float64) {
			actual := math.Min(potential, values[idx])
			if actual <= 0 {
				return
			}
			entry.Captured += actual
			values[idx] -= actual
		})
		tally[d.Kind] = entry
	}
	return tally
}

// Investment sums the cost of every recognised device.
func Investment(devices []Device, catalog Catalog) float64 {
	var sum float64
	for _, d := range devices {
		if spec, ok := catalog.Lookup(d.Kind); ok {
			sum += spec.Cost
		}
	}
	return sum
}

// Reduction returns the attenuation a device of spec applies at distance.
func Reduction(spec Spec, distance float64) float64 {
	if spec.Radius <= 0 || distance > float64(spec.Radius) {
		return 0
	}
	return spec.CaptureRate * (1 - distance/float64(spec.Radius))
}

// forEachInRadius visits every in-bounds cell within the device radius
// (Euclidean, inclusive) with the linear-falloff reduction for that cell.
func forEachInRadius(g *core.Grid, d Device, spec Spec, fn func(idx int, reduction float64)) {
	r := spec.Radius
	for dx := -r; dx <= r; dx++ {
		x := d.X + dx
		for dy := -r; dy <= r; dy++ {
			y := d.Y + dy
			if !g.In(x, y) {
				continue
			}
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > float64(r) {
				continue
			}
			fn(g.Index(x, y), Reduction(spec, dist))
		}
	}
}
