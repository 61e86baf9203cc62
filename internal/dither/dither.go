package dither

import (
	"image/color"
	"math"

	"fire-effect/internal/palette"
)

// DefaultDepth is the number of quantization steps per channel.
const DefaultDepth = 4

// Quantize biases each RGB channel of c by (255/depth)*t, clamps it to
// [0,255] and snaps it to the nearest of depth+1 evenly spaced levels.
// Alpha is preserved.
func Quantize(c color.RGBA, t, depth float64) color.RGBA {
	if depth <= 0 {
		depth = DefaultDepth
	}
	step := 255 / depth
	q := func(v uint8) uint8 {
		adj := int(float64(v) + step*t)
		if adj < 0 {
			adj = 0
		} else if adj > 255 {
			adj = 255
		}
		level := math.Round(depth*float64(adj)/255) * step
		if level > 255 {
			level = 255
		}
		return uint8(level)
	}
	return color.RGBA{R: q(c.R), G: q(c.G), B: q(c.B), A: c.A}
}

// Ditherer applies ordered dithering and snaps the result onto a target
// palette.
type Ditherer struct {
	tm     *ThresholdMap
	depth  float64
	target palette.Palette
}

// New builds a Ditherer. A nil map falls back to Bayer8 and a non-positive
// depth to DefaultDepth.
func New(tm *ThresholdMap, depth float64, target palette.Palette) *Ditherer {
	if tm == nil {
		tm = MustThresholdMap(Bayer8)
	}
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Ditherer{tm: tm, depth: depth, target: target}
}

// Apply dithers c as seen at pixel (x, y).
func (d *Ditherer) Apply(c color.RGBA, x, y int) color.RGBA {
	attempt := Quantize(c, d.tm.At(x, y), d.depth)
	if len(d.target) == 0 {
		return attempt
	}
	return d.target.Nearest(attempt)
}

// Depth returns the per-channel quantization depth.
func (d *Ditherer) Depth() float64 { return d.depth }

// Map returns the threshold map in use.
func (d *Ditherer) Map() *ThresholdMap { return d.tm }

// Target returns the palette results are snapped to.
func (d *Ditherer) Target() palette.Palette { return d.target }
