package app

import (
	"co2-twin/internal/capture"
	"co2-twin/internal/twin"
)

// CellAt converts a cursor position on the map into grid coordinates.
func CellAt(mx, my, scale, size int) (x, y int, ok bool) {
	if scale <= 0 || mx < 0 || my < 0 {
		return 0, 0, false
	}
	x, y = mx/scale, my/scale
	if x >= size || y >= size {
		return 0, 0, false
	}
	return x, y, true
}

// KindForSlot returns the kind bound to number key slot (1-based).
func KindForSlot(s *twin.Scenario, slot int) (capture.Kind, bool) {
	order := twin.KindOrder(s.Config().Devices)
	if slot < 1 || slot > len(order) {
		return "", false
	}
	return order[slot-1], true
}
