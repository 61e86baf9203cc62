package fire

import "fire-effect/internal/render"

// Render maps the heat grid into the frame. The left half uses the 256-entry
// ramp directly; the right half is dithered onto the reduced ramp.
func (f *Fire) Render() {
	cells := f.grid.Cells()
	pix := f.frame.Pix
	render.FillPaletteRGBA(pix, cells, f.palettes.P256)

	w, h := f.grid.W, f.grid.H
	for y := 0; y < h; y++ {
		for x := w / 2; x < w; x++ {
			i := y*w + x
			c := f.ditherer.Apply(f.palettes.P256[cells[i]], x, y)
			render.SetRGBA(pix, i, c)
		}
	}
}
