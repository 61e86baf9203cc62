package palette

import "image/color"

// energy is the sum of squared RGB channels.
func energy(c color.RGBA) int {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return r*r + g*g + b*b
}

// NearestIndex returns the index of the entry whose squared-channel sum is
// closest to that of c. Ties keep the earliest index. An empty palette
// yields 0.
func (p Palette) NearestIndex(c color.RGBA) int {
	if len(p) == 0 {
		return 0
	}
	target := energy(c)
	best, bestDiff := 0, absInt(energy(p[0])-target)
	for i := 1; i < len(p); i++ {
		if d := absInt(energy(p[i]) - target); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}

// Nearest returns the entry selected by NearestIndex, or the zero color for
// an empty palette.
func (p Palette) Nearest(c color.RGBA) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	return p[p.NearestIndex(c)]
}

// At returns p[i] with i clamped into the palette range.
func (p Palette) At(i int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
