// Package dispersion spreads point emissions across the grid with a
// wind-biased decaying flood fill.
package dispersion

import (
	"co2-twin/internal/core"
	"co2-twin/internal/emission"
)

// neighbours is the fixed visiting order; changing it changes tie resolution.
var neighbours = [4]core.Wind{core.East, core.West, core.South, core.North}

type front struct {
	x, y  int
	value float64
}

// Propagate computes the unmitigated concentration field. Each cell keeps the
// best value any source can deliver to it; a cell is re-expanded whenever it
// is reached with a strictly higher value. Sources outside the grid are
// ignored.
func Propagate(cfg Config, sources []emission.Source, wind core.Wind) *core.Grid {
	grid := core.NewSquareGrid(cfg.Size)
	if cfg.Size <= 0 {
		return grid
	}

	var factors [4]float64
	for i, dir := range neighbours {
		factors[i] = cfg.factorToward(dir, wind)
	}

	queue := make([]front, 0, len(sources)*4)
	for _, s := range sources {
		if !grid.In(s.X, s.Y) {
			continue
		}
		if s.Rate > grid.At(s.X, s.Y) {
			grid.Set(s.X, s.Y, s.Rate)
		}
		queue = append(queue, front{x: s.X, y: s.Y, value: s.Rate})
	}

	values := grid.Values()
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.value*cfg.DecayFactor <= cfg.Cutoff {
			continue
		}
		for i, dir := range neighbours {
			next := cur.value * factors[i]
			if next <= cfg.Cutoff {
				continue
			}
			dx, dy := dir.Offset()
			nx, ny := cur.x+dx, cur.y+dy
			if !grid.In(nx, ny) {
				continue
			}
			idx := grid.Index(nx, ny)
			if values[idx] >= next {
				continue
			}
			values[idx] = next
			queue = append(queue, front{x: nx, y: ny, value: next})
		}
	}
	return grid
}

// factorToward returns the decay applied when spreading toward dir.
func (c Config) factorToward(dir, wind core.Wind) float64 {
	f := c.DecayFactor
	if wind == core.Calm {
		return f
	}
	switch dir {
	case wind:
		f *= 1 + c.WindStrength
	case wind.Opposite():
		f *= 1 - c.WindStrength
	}
	return f
}
