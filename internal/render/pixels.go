// Package render converts simulation state into packed RGBA pixels and
// persists frames.
package render

import "image/color"

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. Cell
// values beyond the palette are clamped to its last entry. When the palette
// is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		SetRGBA(buf, i, palette[idx])
	}
}

// SetRGBA writes col into pixel i of a packed RGBA buffer.
func SetRGBA(buf []byte, i int, col color.RGBA) {
	base := i * 4
	buf[base+0] = col.R
	buf[base+1] = col.G
	buf[base+2] = col.B
	buf[base+3] = col.A
}

// MaskRGBA writes tint into every pixel whose mask entry is set and clears
// the rest to transparent.
func MaskRGBA(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		if on {
			SetRGBA(buf, i, tint)
			continue
		}
		SetRGBA(buf, i, color.RGBA{})
	}
}
