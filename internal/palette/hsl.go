// Package palette generates the fire color ramps and maps colors onto them.
package palette

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL is a hue/saturation/lightness triple. H is in degrees and may be any
// real value; S and L are nominally in [0,1] but are not clamped here.
type HSL struct {
	H, S, L float64
}

// RGBA converts the triple to an opaque 8-bit color.
func (c HSL) RGBA() color.RGBA {
	return HSLToRGB(c.H, c.S, c.L)
}

// HSLToRGB converts hue (degrees), saturation and lightness to an opaque
// color. The hue is wrapped into [0,360); channels outside the RGB gamut are
// clamped before rounding to 8 bits.
func HSLToRGB(h, s, l float64) color.RGBA {
	r, g, b := colorful.Hsl(WrapHue(h), s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// WrapHue maps any hue in degrees into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
