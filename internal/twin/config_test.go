package twin

import (
	"os"
	"path/filepath"
	"testing"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverrides(t *testing.T) {
	path := writeConfig(t, `
dispersion:
  size: 30
  decay_factor: 0.8
source_seed: 7
devices:
  garden:
    name: Green Wall
    capture_rate: 30
    radius: 2
    cost: 20000
layout:
  wind: east
  devices:
    - {x: 1, y: 2, kind: scrubber}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Dispersion.Size)
	assert.InDelta(t, 0.8, cfg.Dispersion.DecayFactor, 1e-12)
	assert.InDelta(t, 0.5, cfg.Dispersion.WindStrength, 1e-12, "unset keys keep defaults")
	assert.EqualValues(t, 7, cfg.SourceSeed)
	assert.Equal(t, capture.Spec{Name: "Green Wall", CaptureRate: 30, Radius: 2, Cost: 20000}, cfg.Devices[capture.Garden])
	assert.Equal(t, capture.DefaultCatalog()[capture.Biofilter], cfg.Devices[capture.Biofilter])
	assert.Equal(t, core.East, cfg.Layout.Wind)
	assert.Equal(t, []capture.Device{{X: 1, Y: 2, Kind: capture.Scrubber}}, cfg.Layout.Devices)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"decay out of range":  "dispersion:\n  decay_factor: 1.5\n",
		"zero radius":         "devices:\n  scrubber: {name: S, capture_rate: 10, radius: 0, cost: 1}\n",
		"unknown layout kind": "layout:\n  devices:\n    - {x: 0, y: 0, kind: tree}\n",
		"bad wind":            "layout:\n  wind: sideways\n",
		"bad source":          "sources:\n  - {id: s, x: 1, y: 1, category: volcano, rate: 5}\n",
		"not yaml":            "dispersion: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigMarshalLoads(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout = Layout{Wind: core.West, Devices: []capture.Device{{X: 3, Y: 3, Kind: capture.Garden}}}
	b, err := cfg.Marshal()
	require.NoError(t, err)

	loaded, err := LoadConfig(writeConfig(t, string(b)))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigSources(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, cfg.SourceList(), DefaultConfig().SourceList(), "default inventory is seeded")

	cfg.Sources = singleFactory
	assert.Equal(t, singleFactory, cfg.SourceList())
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{"size": "10", "seed": "42", "wind": "south", "decay_factor": "x"})
	assert.Equal(t, 10, cfg.Dispersion.Size)
	assert.EqualValues(t, 42, cfg.SourceSeed)
	assert.Equal(t, core.South, cfg.Layout.Wind)
	assert.InDelta(t, 0.85, cfg.Dispersion.DecayFactor, 1e-12)
	assert.NotEmpty(t, cfg.Devices)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestLoadLayout(t *testing.T) {
	path := writeConfig(t, "wind: north\ndevices:\n  - {x: 4, y: 7, kind: biofilter}\n")
	l, err := LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, Layout{Wind: core.North, Devices: []capture.Device{{X: 4, Y: 7, Kind: capture.Biofilter}}}, l)

	_, err = LoadLayout(writeConfig(t, "wind: gale\n"))
	assert.Error(t, err)
}

func TestOverrideOnLoadedConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SourceSeed = 99
	cfg.Dispersion.Size = 30
	out := cfg.Override(map[string]string{"wind": "west", "wind_strength": "0.25"})
	assert.Equal(t, 30, out.Dispersion.Size)
	assert.EqualValues(t, 99, out.SourceSeed)
	assert.Equal(t, core.West, out.Layout.Wind)
	assert.InDelta(t, 0.25, out.Dispersion.WindStrength, 1e-12)
}

func TestLoadConfigTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twin.toml")
	body := `
source_seed = 5

[dispersion]
wind_strength = 0.3

[devices.biofilter]
name = "Big Filter"
capture_rate = 120.0
radius = 5
cost = 150000.0

[layout]
wind = "south"

[[layout.devices]]
x = 2
y = 3
kind = "garden"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.EqualValues(t, 5, cfg.SourceSeed)
	assert.InDelta(t, 0.3, cfg.Dispersion.WindStrength, 1e-12)
	assert.Equal(t, 25, cfg.Dispersion.Size)
	assert.Equal(t, capture.Spec{Name: "Big Filter", CaptureRate: 120, Radius: 5, Cost: 150000}, cfg.Devices[capture.Biofilter])
	assert.Equal(t, core.South, cfg.Layout.Wind)
	assert.Equal(t, []capture.Device{{X: 2, Y: 3, Kind: capture.Garden}}, cfg.Layout.Devices)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[dispersion]\ndecay_factor = 2.0\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}
