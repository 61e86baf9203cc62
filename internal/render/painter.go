//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a packed RGBA canvas into a texture and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a canvas of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads frame into the painter image and draws it onto dst scaled by
// (sx, sy).
func (gp *GridPainter) Blit(dst *ebiten.Image, frame *image.RGBA, sx, sy float64) {
	if frame == nil || len(frame.Pix) != 4*gp.w*gp.h {
		return
	}
	gp.img.WritePixels(frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
