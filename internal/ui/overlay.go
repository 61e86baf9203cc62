//go:build ebiten

package ui

import (
	"image/color"

	"fire-effect/internal/core"
	"fire-effect/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sourceMaskProvider interface {
	SourceMask() []bool
}

// sourceTint is premultiplied.
var sourceTint = color.RGBA{R: 30, G: 90, B: 120, A: 120}

// Overlay draws optional debugging visuals on top of the fire.
type Overlay struct {
	sim         core.Sim
	showSources bool
	maskImg     *ebiten.Image
	maskBuf     []byte
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim}
}

// Update toggles the source mask with the 1 key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSources = !o.showSources
	}
}

// Draw renders the enabled overlays scaled by (sx, sy).
func (o *Overlay) Draw(screen *ebiten.Image, sx, sy float64) {
	if !o.showSources {
		return
	}
	provider, ok := o.sim.(sourceMaskProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	total := size.W * size.H
	mask := provider.SourceMask()
	if total == 0 || len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	render.MaskRGBA(o.maskBuf, mask, sourceTint)
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(o.maskImg, op)
}
