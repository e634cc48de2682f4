package twin

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/emission"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SweepOptions tunes a placement sweep.
type SweepOptions struct {
	// Workers bounds concurrent evaluations; <= 0 uses GOMAXPROCS.
	Workers int
	// Limit truncates the ranking when > 0.
	Limit int
	// ByCost ranks by investment per attributed unit instead of attributed
	// capture.
	ByCost bool

	Log logrus.FieldLogger
}

// Candidate is one evaluated placement.
type Candidate struct {
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Stats Stats `json:"stats"`
	// Attributed is the capture credited to all devices against the
	// current-wind field. Unlike Stats.TotalCaptured it stays meaningful when
	// the wind is not calm, so placements are ranked by it.
	Attributed float64 `json:"attributed"`
}

// UnitCost is the investment per attributed unit, or 0 when nothing is
// attributed.
func (c Candidate) UnitCost() float64 {
	if c.Attributed <= 0 {
		return 0
	}
	return c.Stats.TotalInvestment / c.Attributed
}

// Sweep tries one additional device of kind on every free cell and ranks the
// outcomes. The propagated fields are computed once and shared read-only
// between workers.
func Sweep(ctx context.Context, cfg Config, sources []emission.Source, devices []capture.Device, wind core.Wind, kind capture.Kind, opts SweepOptions) ([]Candidate, error) {
	if _, ok := cfg.Devices.Lookup(kind); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	baseline, windField := fields(cfg, sources, wind)
	cells := freeCells(cfg, sources, devices)
	log.WithFields(logrus.Fields{
		"kind":    kind,
		"wind":    wind,
		"cells":   len(cells),
		"workers": workers,
	}).Info("starting placement sweep")

	var (
		mu  sync.Mutex
		out = make([]Candidate, 0, len(cells))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, cell := range cells {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			trial := make([]capture.Device, len(devices), len(devices)+1)
			copy(trial, devices)
			trial = append(trial, capture.Device{X: cell[0], Y: cell[1], Kind: kind})
			res := summarize(cfg, baseline, windField, trial)

			mu.Lock()
			out = append(out, Candidate{X: cell[0], Y: cell[1], Stats: res.Stats, Attributed: attributed(res.Stats)})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may stop early without any worker observing the cancellation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rank(out, opts.ByCost)
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	if len(out) > 0 {
		log.WithFields(logrus.Fields{
			"x":          out[0].X,
			"y":          out[0].Y,
			"attributed": out[0].Attributed,
		}).Info("placement sweep finished")
	}
	return out, nil
}

func freeCells(cfg Config, sources []emission.Source, devices []capture.Device) [][2]int {
	taken := map[[2]int]bool{}
	for _, d := range devices {
		taken[[2]int{d.X, d.Y}] = true
	}
	for _, s := range sources {
		if s.Blocking() {
			taken[[2]int{s.X, s.Y}] = true
		}
	}
	n := cfg.Dispersion.Size
	cells := make([][2]int, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !taken[[2]int{x, y}] {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

func rank(cands []Candidate, byCost bool) {
	sort.Slice(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if byCost {
			// Placements that capture nothing have no meaningful cost and sink.
			az, bz := a.Attributed <= 0, b.Attributed <= 0
			if az != bz {
				return bz
			}
			if ac, bc := a.UnitCost(), b.UnitCost(); ac != bc {
				return ac < bc
			}
		} else if a.Attributed != b.Attributed {
			return a.Attributed > b.Attributed
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

func attributed(s Stats) float64 {
	var sum float64
	for _, row := range s.Breakdown {
		sum += row.Captured
	}
	return sum
}
