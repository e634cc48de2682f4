package app

import (
	"testing"

	"co2-twin/internal/capture"
	"co2-twin/internal/twin"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellAt(t *testing.T) {
	x, y, ok := CellAt(50, 73, 24, 25)
	require.True(t, ok)
	assert.Equal(t, 2, x)
	assert.Equal(t, 3, y)

	_, _, ok = CellAt(25*24, 0, 24, 25)
	assert.False(t, ok, "the HUD starts right of the map")
	_, _, ok = CellAt(-1, 5, 24, 25)
	assert.False(t, ok)
	_, _, ok = CellAt(5, 5, 0, 25)
	assert.False(t, ok)
}

func TestKindForSlot(t *testing.T) {
	log, _ := test.NewNullLogger()
	s := twin.NewScenario(twin.DefaultConfig(), log)

	k, ok := KindForSlot(s, 1)
	assert.True(t, ok)
	assert.Equal(t, capture.Scrubber, k)
	k, ok = KindForSlot(s, 3)
	assert.True(t, ok)
	assert.Equal(t, capture.Biofilter, k)
	_, ok = KindForSlot(s, 4)
	assert.False(t, ok)
	_, ok = KindForSlot(s, 0)
	assert.False(t, ok)
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("twin-gui", pflag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"--scale", "16", "-c", "city.yaml", "--hud-width=0", "--watch"}))

	assert.Equal(t, 16, cfg.Scale)
	assert.Equal(t, "city.yaml", cfg.File)
	assert.Zero(t, cfg.HUDWidth)
	assert.Equal(t, 30, cfg.TPS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Watch)
}
