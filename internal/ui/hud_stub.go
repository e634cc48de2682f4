//go:build !ebiten

package ui

import "co2-twin/internal/twin"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(*twin.Scenario, int) *HUD { return nil }

// Reload is a no-op in the headless build.
func (h *HUD) Reload() {}

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
