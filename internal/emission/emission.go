// Package emission holds the static inventory of point sources that seed every
// propagation run.
package emission

import (
	"fmt"

	"co2-twin/pkg/core"
)

// Category classifies an emitter.
type Category string

const (
	Factory    Category = "factory"
	Commercial Category = "commercial"
	Traffic    Category = "traffic"
)

// BaseRate is the reference emission rate the catalog scales from.
const BaseRate = 100.0

// Source is an immutable point emitter.
type Source struct {
	ID       string   `json:"id" yaml:"id" toml:"id" validate:"required"`
	X        int      `json:"x" yaml:"x" toml:"x" validate:"gte=0"`
	Y        int      `json:"y" yaml:"y" toml:"y" validate:"gte=0"`
	Category Category `json:"category" yaml:"category" toml:"category" validate:"oneof=factory commercial traffic"`
	Rate     float64  `json:"rate" yaml:"rate" toml:"rate" validate:"gt=0"`
}

// Blocking reports whether the source occupies its cell for device placement.
// Roads can host roadside devices; buildings cannot.
func (s Source) Blocking() bool {
	return s.Category == Factory || s.Category == Commercial
}

// DefaultCatalog returns the city inventory. Traffic rates are jittered with a
// deterministic RNG so the same seed always yields the same field.
func DefaultCatalog(seed int64) []Source {
	rng := core.NewRNG(seed)
	out := []Source{
		{ID: "factory-1", X: 4, Y: 5, Category: Factory, Rate: BaseRate * 2.5},
		{ID: "factory-2", X: 20, Y: 21, Category: Factory, Rate: BaseRate * 2.2},
		{ID: "commercial-1", X: 18, Y: 6, Category: Commercial, Rate: BaseRate * 1.8},
	}
	for i := 0; i < 25; i++ {
		out = append(out, Source{
			ID:       fmt.Sprintf("traffic-h-main-%d", i),
			X:        i,
			Y:        12,
			Category: Traffic,
			Rate:     rng.Jitter(BaseRate, 0.8, 1.2),
		})
	}
	for i := 0; i < 25; i++ {
		out = append(out, Source{
			ID:       fmt.Sprintf("traffic-v-main-%d", i),
			X:        10,
			Y:        i,
			Category: Traffic,
			Rate:     rng.Jitter(BaseRate, 0.9, 1.4),
		})
	}
	for i := 0; i < 10; i++ {
		out = append(out, Source{
			ID:       fmt.Sprintf("traffic-h-secondary-%d", i),
			X:        15 + i,
			Y:        3,
			Category: Traffic,
			Rate:     BaseRate * 0.6,
		})
	}
	return out
}

// BlockingAt reports whether any building-type source sits on (x, y).
func BlockingAt(sources []Source, x, y int) (Source, bool) {
	for _, s := range sources {
		if s.X == x && s.Y == y && s.Blocking() {
			return s, true
		}
	}
	return Source{}, false
}

// Total sums the raw emission rates.
func Total(sources []Source) float64 {
	var sum float64
	for _, s := range sources {
		sum += s.Rate
	}
	return sum
}
