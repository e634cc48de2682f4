package core

import "gonum.org/v1/gonum/floats"

// Grid stores a 2D field of concentration values in row-major order.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// NewSquareGrid allocates an n*n grid.
func NewSquareGrid(n int) *Grid { return NewGrid(n, n) }

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Values exposes the backing slice so callers can read values directly.
func (g *Grid) Values() []float64 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y), or 0 outside the grid.
func (g *Grid) At(x, y int) float64 {
	if !g.In(x, y) {
		return 0
	}
	return g.data[y*g.W+x]
}

// Set stores v at (x, y). Out-of-bounds writes are dropped.
func (g *Grid) Set(x, y int, v float64) {
	if !g.In(x, y) {
		return
	}
	g.data[y*g.W+x] = v
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]float64, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Sum totals every cell.
func (g *Grid) Sum() float64 {
	if len(g.data) == 0 {
		return 0
	}
	return floats.Sum(g.data)
}

// Max returns the largest cell value, or 0 for an empty grid.
func (g *Grid) Max() float64 {
	if len(g.data) == 0 {
		return 0
	}
	return floats.Max(g.data)
}
