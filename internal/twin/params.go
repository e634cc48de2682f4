package twin

import (
	"strconv"

	"co2-twin/internal/core"
)

var (
	_ core.ParameterProvider         = (*Scenario)(nil)
	_ core.ParameterControlsProvider = (*Scenario)(nil)
	_ core.FloatParameterSetter      = (*Scenario)(nil)
)

// Parameters returns the engine constants and live dashboard readings.
func (s *Scenario) Parameters() core.ParameterSnapshot {
	d := s.cfg.Dispersion
	stats := s.Evaluate().Stats
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("size", "Size", d.Size),
				int64Param("seed", "Source seed", s.cfg.SourceSeed),
			},
		},
		{
			Name: "Dispersion",
			Params: []core.Parameter{
				floatParam("decay_factor", "Decay factor", d.DecayFactor),
				floatParam("wind_strength", "Wind strength", d.WindStrength),
				floatParam("cutoff", "Cutoff", d.Cutoff),
				textParam("wind", "Wind", s.wind.String()),
			},
		},
		{
			Name: "Dashboard",
			Params: []core.Parameter{
				intParam("devices", "Devices", len(s.devices)),
				floatParam("total_baseline", "Baseline", stats.TotalBaseline),
				floatParam("total_captured", "Captured", stats.TotalCaptured),
				floatParam("efficiency_pct", "Efficiency %", stats.EfficiencyPct),
				floatParam("total_investment", "Investment", stats.TotalInvestment),
				floatParam("cost_per_unit", "Cost per unit", stats.CostPerUnitCaptured),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the constants the HUD may adjust.
func (s *Scenario) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "decay_factor", Label: "Decay", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.5, Max: 0.95, HasMin: true, HasMax: true},
		{Key: "wind_strength", Label: "Wind strength", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 0.9, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a dispersion constant and reports whether the
// key was recognised. Values are clamped to the control bounds.
func (s *Scenario) SetFloatParameter(key string, value float64) bool {
	for _, ctrl := range s.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		if ctrl.HasMin && value < ctrl.Min {
			value = ctrl.Min
		}
		if ctrl.HasMax && value > ctrl.Max {
			value = ctrl.Max
		}
		switch key {
		case "decay_factor":
			s.cfg.Dispersion.DecayFactor = value
		case "wind_strength":
			s.cfg.Dispersion.WindStrength = value
		}
		s.invalidate()
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeText, Value: value}
}
