package main

import (
	"fmt"
	"strconv"
	"strings"

	"co2-twin/internal/capture"
	"co2-twin/internal/core"
	"co2-twin/internal/twin"
)

// parseDevice reads a device written as kind@x,y.
func parseDevice(s string) (capture.Device, error) {
	kindPart, pos, ok := strings.Cut(s, "@")
	if !ok {
		return capture.Device{}, fmt.Errorf("device %q: want kind@x,y", s)
	}
	kind, err := capture.ParseKind(kindPart)
	if err != nil {
		// Catalog extras are accepted verbatim and checked on placement.
		kind = capture.Kind(strings.TrimSpace(kindPart))
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return capture.Device{}, fmt.Errorf("device %q: want kind@x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return capture.Device{}, fmt.Errorf("device %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return capture.Device{}, fmt.Errorf("device %q: bad y: %w", s, err)
	}
	return capture.Device{X: x, Y: y, Kind: kind}, nil
}

// buildScenario creates a scenario from the config layout, an optional
// layout file, the wind flag and extra devices, in that order.
func (c *cli) buildScenario(layoutPath, wind string, devices []string) (*twin.Scenario, error) {
	cfg := c.cfg
	if layoutPath != "" {
		layout, err := twin.LoadLayout(layoutPath)
		if err != nil {
			return nil, err
		}
		cfg.Layout = layout
	}
	s := twin.NewScenario(cfg, c.log)
	if wind != "" {
		w, err := core.ParseWind(wind)
		if err != nil {
			return nil, err
		}
		s.SetWind(w)
	}
	for _, raw := range devices {
		d, err := parseDevice(raw)
		if err != nil {
			return nil, err
		}
		if err := placeAs(s, d); err != nil {
			return nil, fmt.Errorf("device %q: %w", raw, err)
		}
	}
	return s, nil
}

func placeAs(s *twin.Scenario, d capture.Device) error {
	if k, ok := s.Selected(); !ok || k != d.Kind {
		if err := s.Select(d.Kind); err != nil {
			return err
		}
	}
	return s.Place(d.X, d.Y)
}
