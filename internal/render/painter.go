//go:build ebiten

package render

import (
	"co2-twin/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// FieldPainter uploads a concentration grid into a single image.
type FieldPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFieldPainter allocates a painter for a grid of size w*h.
func NewFieldPainter(w, h int) *FieldPainter {
	return &FieldPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit paints the field scaled up onto dst.
func (fp *FieldPainter) Blit(dst *ebiten.Image, field *core.Grid, scale int) {
	if field == nil || field.W != fp.w || field.H != fp.h {
		return
	}
	fillFieldRGBA(fp.buf, field.Values())
	fp.img.WritePixels(fp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FieldPainter) Size() (int, int) { return fp.w, fp.h }
