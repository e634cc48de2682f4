package twin

import (
	"context"
	"testing"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/dispersion"
	"co2-twin/internal/emission"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() (Config, []emission.Source) {
	cfg := DefaultConfig()
	cfg.Dispersion = dispersion.Config{Size: 7, DecayFactor: 0.85, WindStrength: 0.5, Cutoff: 1}
	sources := []emission.Source{{ID: "factory-1", X: 3, Y: 3, Category: emission.Factory, Rate: 30}}
	return cfg, sources
}

func TestSweepRanksEveryFreeCell(t *testing.T) {
	cfg, sources := smallConfig()
	log, _ := test.NewNullLogger()
	placed := []capture.Device{{X: 0, Y: 0, Kind: capture.Garden}}

	cands, err := Sweep(context.Background(), cfg, sources, placed, core.Calm, capture.Scrubber, SweepOptions{Workers: 3, Log: log})
	require.NoError(t, err)
	assert.Len(t, cands, 7*7-2, "factory and existing device cells are skipped")

	for i := 1; i < len(cands); i++ {
		prev, cur := cands[i-1], cands[i]
		require.GreaterOrEqual(t, prev.Attributed, cur.Attributed)
		if prev.Attributed == cur.Attributed {
			assert.True(t, prev.Y < cur.Y || (prev.Y == cur.Y && prev.X < cur.X), "tie order at %d", i)
		}
	}
	for _, c := range cands {
		assert.False(t, c.X == 3 && c.Y == 3)
		assert.False(t, c.X == 0 && c.Y == 0)
	}

	best := cands[0]
	trial := append(append([]capture.Device(nil), placed...), capture.Device{X: best.X, Y: best.Y, Kind: capture.Scrubber})
	assert.Equal(t, Aggregate(cfg, sources, trial, core.Calm), best.Stats)
	assert.InDelta(t, best.Stats.TotalCaptured, best.Attributed, 1e-6, "calm attribution matches the capture")
	assert.Equal(t, 1, manhattan(best.X, best.Y, 3, 3), "best spot hugs the source")
}

func TestSweepDeterministicAcrossWorkers(t *testing.T) {
	cfg, sources := smallConfig()
	log, _ := test.NewNullLogger()

	one, err := Sweep(context.Background(), cfg, sources, nil, core.East, capture.Biofilter, SweepOptions{Workers: 1, Log: log})
	require.NoError(t, err)
	many, err := Sweep(context.Background(), cfg, sources, nil, core.East, capture.Biofilter, SweepOptions{Workers: 8, Log: log})
	require.NoError(t, err)
	assert.Equal(t, one, many)
}

func TestSweepLimit(t *testing.T) {
	cfg, sources := smallConfig()
	log, hook := test.NewNullLogger()

	cands, err := Sweep(context.Background(), cfg, sources, nil, core.Calm, capture.Garden, SweepOptions{Limit: 5, Log: log})
	require.NoError(t, err)
	assert.Len(t, cands, 5)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "placement sweep finished", hook.LastEntry().Message)
}

func TestSweepByCost(t *testing.T) {
	cfg, sources := smallConfig()
	log, _ := test.NewNullLogger()

	cands, err := Sweep(context.Background(), cfg, sources, nil, core.Calm, capture.Scrubber, SweepOptions{ByCost: true, Log: log})
	require.NoError(t, err)
	require.NotEmpty(t, cands)
	seenZero := false
	for i, c := range cands {
		if c.Attributed == 0 {
			assert.Zero(t, c.UnitCost())
			seenZero = true
			continue
		}
		assert.False(t, seenZero, "capturing placement %d ranked after a zero one", i)
		assert.InDelta(t, c.Stats.TotalInvestment/c.Attributed, c.UnitCost(), 1e-9)
		if i > 0 && cands[i-1].Attributed > 0 {
			assert.LessOrEqual(t, cands[i-1].UnitCost(), c.UnitCost())
		}
	}
}

func TestSweepRanksByAttributionUnderWind(t *testing.T) {
	cfg := DefaultConfig()
	sources := cfg.SourceList()
	log, _ := test.NewNullLogger()

	cands, err := Sweep(context.Background(), cfg, sources, nil, core.East, capture.Scrubber, SweepOptions{Log: log})
	require.NoError(t, err)
	require.NotEmpty(t, cands)

	// Against the calm baseline a downwind-boosted field leaves nothing to
	// capture, so every candidate ties on TotalCaptured.
	for _, c := range cands {
		require.Zero(t, c.Stats.TotalCaptured)
	}
	best := cands[0]
	assert.Greater(t, best.Attributed, 0.0)
	assert.False(t, best.X == 0 && best.Y == 0, "ranking is not just the cell order")
	for i := 1; i < len(cands); i++ {
		require.GreaterOrEqual(t, cands[i-1].Attributed, cands[i].Attributed)
	}
}

func TestSweepCancelled(t *testing.T) {
	cfg, sources := smallConfig()
	log, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cands, err := Sweep(ctx, cfg, sources, nil, core.Calm, capture.Scrubber, SweepOptions{Log: log})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, cands)
}

func TestSweepUnknownKind(t *testing.T) {
	cfg, sources := smallConfig()
	_, err := Sweep(context.Background(), cfg, sources, nil, core.Calm, "tree", SweepOptions{})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func manhattan(x0, y0, x1, y1 int) int {
	dx, dy := x0-x1, y0-y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
