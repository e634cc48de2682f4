package twin

import (
	"testing"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScenario(t *testing.T) (*Scenario, *test.Hook) {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	return NewScenario(DefaultConfig(), log), hook
}

func TestPlaceRequiresSelection(t *testing.T) {
	s, _ := newTestScenario(t)
	assert.ErrorIs(t, s.Place(1, 1), ErrNoSelection)
	assert.Empty(t, s.Devices())
}

func TestPlaceRules(t *testing.T) {
	s, hook := newTestScenario(t)
	require.NoError(t, s.Select(capture.Scrubber))

	err := s.Place(4, 5)
	assert.ErrorIs(t, err, ErrOccupied, "factory cell")
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, 4, hook.LastEntry().Data["x"])

	require.NoError(t, s.Place(3, 12), "road cells accept devices")
	assert.ErrorIs(t, s.Place(3, 12), ErrOccupied, "second device on the same cell")
	assert.ErrorIs(t, s.Place(25, 0), ErrOutOfBounds)
	assert.ErrorIs(t, s.Place(0, -1), ErrOutOfBounds)

	require.NoError(t, s.Select(capture.Garden))
	require.NoError(t, s.Place(0, 0))

	assert.Equal(t, []capture.Device{
		{X: 3, Y: 12, Kind: capture.Scrubber},
		{X: 0, Y: 0, Kind: capture.Garden},
	}, s.Devices())
}

func TestSelectToggleAndUnknown(t *testing.T) {
	s, _ := newTestScenario(t)
	assert.ErrorIs(t, s.Select("tree"), ErrUnknownKind)

	require.NoError(t, s.Select(capture.Biofilter))
	k, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, capture.Biofilter, k)

	require.NoError(t, s.Select(capture.Biofilter))
	_, ok = s.Selected()
	assert.False(t, ok, "selecting the active kind clears it")
}

func TestUndoAndReset(t *testing.T) {
	s, _ := newTestScenario(t)
	assert.False(t, s.Undo())

	require.NoError(t, s.Select(capture.Scrubber))
	require.NoError(t, s.Place(1, 1))
	require.NoError(t, s.Place(2, 2))
	s.SetWind(core.East)

	assert.True(t, s.Undo())
	assert.Len(t, s.Devices(), 1)

	s.Reset()
	assert.Empty(t, s.Devices())
	assert.Equal(t, core.Calm, s.Wind())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestEvaluateTracksChanges(t *testing.T) {
	s, _ := newTestScenario(t)
	before := s.Evaluate().Stats
	assert.Zero(t, before.TotalCaptured)

	require.NoError(t, s.Select(capture.Biofilter))
	require.NoError(t, s.Place(5, 5))
	after := s.Evaluate().Stats
	assert.Greater(t, after.TotalCaptured, 0.0)
	assert.InDelta(t, before.TotalBaseline, after.TotalBaseline, 1e-9)

	want := Aggregate(s.Config(), s.Sources(), s.Devices(), s.Wind())
	assert.Equal(t, want, after)

	s.SetWind(core.West)
	assert.Equal(t, Aggregate(s.Config(), s.Sources(), s.Devices(), core.West), s.Evaluate().Stats)
}

func TestDevicesReturnsCopy(t *testing.T) {
	s, _ := newTestScenario(t)
	require.NoError(t, s.Select(capture.Garden))
	require.NoError(t, s.Place(0, 0))
	d := s.Devices()
	d[0].X = 9
	got, ok := s.DeviceAt(0, 0)
	assert.True(t, ok)
	assert.Equal(t, capture.Garden, got.Kind)
}

func TestNewScenarioDropsInvalidLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = Layout{
		Wind: core.South,
		Devices: []capture.Device{
			{X: 1, Y: 1, Kind: capture.Scrubber},
			{X: 1, Y: 1, Kind: capture.Garden},
			{X: 4, Y: 5, Kind: capture.Garden},
			{X: 2, Y: 2, Kind: "tree"},
		},
	}
	log, hook := test.NewNullLogger()
	s := NewScenario(cfg, log)

	assert.Equal(t, core.South, s.Wind())
	assert.Equal(t, []capture.Device{{X: 1, Y: 1, Kind: capture.Scrubber}}, s.Devices())
	assert.Len(t, hook.AllEntries(), 3)
}

func TestSetFloatParameter(t *testing.T) {
	s, _ := newTestScenario(t)
	before := s.Evaluate().Stats.TotalBaseline

	assert.True(t, s.SetFloatParameter("decay_factor", 0.7))
	assert.InDelta(t, 0.7, s.Config().Dispersion.DecayFactor, 1e-12)
	assert.Less(t, s.Evaluate().Stats.TotalBaseline, before)

	assert.True(t, s.SetFloatParameter("wind_strength", 5))
	assert.InDelta(t, 0.9, s.Config().Dispersion.WindStrength, 1e-12)

	assert.False(t, s.SetFloatParameter("cutoff", 2))
}

func TestParametersSnapshot(t *testing.T) {
	s, _ := newTestScenario(t)
	s.SetWind(core.North)
	snap := s.Parameters()

	p, ok := snap.Lookup("wind")
	require.True(t, ok)
	assert.Equal(t, "north", p.Value)

	p, ok = snap.Lookup("size")
	require.True(t, ok)
	assert.Equal(t, "25", p.Value)

	_, ok = snap.Lookup("missing")
	assert.False(t, ok)
}

func TestReconfigureKeepsFittingDevices(t *testing.T) {
	s, hook := newTestScenario(t)
	require.NoError(t, s.Select(capture.Garden))
	require.NoError(t, s.Place(2, 2))
	require.NoError(t, s.Place(20, 20))
	s.SetWind(core.East)

	cfg := DefaultConfig()
	cfg.Dispersion.Size = 10
	s.Reconfigure(cfg)

	assert.Equal(t, []capture.Device{{X: 2, Y: 2, Kind: capture.Garden}}, s.Devices())
	assert.Equal(t, core.East, s.Wind())
	k, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, capture.Garden, k)
	assert.Equal(t, 10, s.Evaluate().Field.W)

	var dropped int
	for _, e := range hook.AllEntries() {
		if e.Message == "dropping device after reconfigure" {
			dropped++
		}
	}
	assert.Equal(t, 1, dropped)

	cfg = DefaultConfig()
	delete(cfg.Devices, capture.Garden)
	s.Reconfigure(cfg)
	assert.Empty(t, s.Devices())
	_, ok = s.Selected()
	assert.False(t, ok)
}
