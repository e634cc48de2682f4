// Package twin ties propagation and mitigation together into dashboard
// statistics, and holds the caller-side scenario state.
package twin

import (
	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/dispersion"
	"co2-twin/internal/emission"
)

// KindStats is the dashboard row for one device kind.
type KindStats struct {
	Kind     capture.Kind `json:"kind"`
	Name     string       `json:"name"`
	Count    int          `json:"count"`
	Captured float64      `json:"captured"`
	SharePct float64      `json:"share_pct"`
}

// Stats summarises one configuration of sources, devices and wind.
type Stats struct {
	TotalBaseline       float64     `json:"total_baseline"`
	TotalCaptured       float64     `json:"total_captured"`
	EfficiencyPct       float64     `json:"efficiency_pct"`
	TotalInvestment     float64     `json:"total_investment"`
	CostPerUnitCaptured float64     `json:"cost_per_unit_captured"`
	Breakdown           []KindStats `json:"breakdown"`
}

// Result pairs the mitigated field with its statistics.
type Result struct {
	Field *core.Grid
	Stats Stats
}

// Aggregate computes the dashboard statistics.
func Aggregate(cfg Config, sources []emission.Source, devices []capture.Device, wind core.Wind) Stats {
	return Evaluate(cfg, sources, devices, wind).Stats
}

// Evaluate runs the engine for the given inputs.
//
// TotalBaseline is always measured against the calm-wind field, so efficiency
// stays comparable when the wind changes. The per-kind breakdown is measured
// against the current-wind field instead; the two references differ whenever
// the wind is not calm.
func Evaluate(cfg Config, sources []emission.Source, devices []capture.Device, wind core.Wind) Result {
	baseline, windField := fields(cfg, sources, wind)
	return summarize(cfg, baseline, windField, devices)
}

// fields returns the calm baseline and the current-wind field. They share a
// grid when the wind is calm; neither is mutated downstream.
func fields(cfg Config, sources []emission.Source, wind core.Wind) (baseline, windField *core.Grid) {
	baseline = dispersion.Propagate(cfg.Dispersion, sources, core.Calm)
	windField = baseline
	if wind != core.Calm {
		windField = dispersion.Propagate(cfg.Dispersion, sources, wind)
	}
	return baseline, windField
}

func summarize(cfg Config, baseline, windField *core.Grid, devices []capture.Device) Result {
	mitigated := capture.Apply(windField, devices, cfg.Devices)

	var s Stats
	s.TotalBaseline = baseline.Sum()
	if captured := s.TotalBaseline - mitigated.Sum(); captured > 0 {
		s.TotalCaptured = captured
	}
	if s.TotalBaseline > 0 {
		s.EfficiencyPct = 100 * s.TotalCaptured / s.TotalBaseline
	}
	s.TotalInvestment = capture.Investment(devices, cfg.Devices)
	if s.TotalCaptured > 0 {
		s.CostPerUnitCaptured = s.TotalInvestment / s.TotalCaptured
	}
	s.Breakdown = breakdownRows(capture.Breakdown(windField, devices, cfg.Devices), cfg.Devices, s.TotalCaptured)
	return Result{Field: mitigated, Stats: s}
}

// breakdownRows orders the tally by the stock kinds first, then any extra
// catalog kinds in name order, skipping kinds with no devices.
func breakdownRows(tally capture.Tally, catalog capture.Catalog, totalCaptured float64) []KindStats {
	rows := make([]KindStats, 0, len(tally))
	for _, kind := range KindOrder(catalog) {
		entry, ok := tally[kind]
		if !ok || entry.Count == 0 {
			continue
		}
		row := KindStats{
			Kind:     kind,
			Name:     catalog[kind].Name,
			Count:    entry.Count,
			Captured: entry.Captured,
		}
		if totalCaptured > 0 {
			row.SharePct = 100 * entry.Captured / totalCaptured
		}
		rows = append(rows, row)
	}
	return rows
}
