package palette

import (
	"image/color"
	"sync"
)

// Palette is an ordered, read-only sequence of colors.
type Palette []color.RGBA

// Generate builds an n-entry palette by sweeping f over the indices.
func Generate(n int, f func(i int) HSL) Palette {
	if n <= 0 {
		return nil
	}
	p := make(Palette, n)
	for i := range p {
		p[i] = f(i).RGBA()
	}
	return p
}

// Fire256 is the full-resolution ramp indexed directly by heat value.
func Fire256() Palette {
	return Generate(256, func(i int) HSL {
		return HSL{H: float64(12 + float32(i)/5.3), S: 1, L: float64(float32(i) / 240)}
	})
}

// Fire16 is the reduced ramp the dithered half is quantized to.
func Fire16() Palette {
	return Generate(16, func(i int) HSL {
		return HSL{H: float64(12 + i*3), S: 1, L: float64(float32(i) / 16)}
	})
}

// Fire8 is an eight entry ramp.
func Fire8() Palette {
	return Generate(8, func(i int) HSL {
		return HSL{H: float64(13 + i*6), S: 1, L: float64(float32(i) / 7.5)}
	})
}

// Fire4 is a four entry ramp.
func Fire4() Palette {
	return Generate(4, func(i int) HSL {
		return HSL{H: float64(13 + i*12), S: 1, L: float64(float32(i) / 4)}
	})
}

// Set groups the four fire ramps.
type Set struct {
	P256 Palette
	P16  Palette
	P8   Palette
	P4   Palette
}

// NewSet generates all four ramps.
func NewSet() Set {
	return Set{P256: Fire256(), P16: Fire16(), P8: Fire8(), P4: Fire4()}
}

// BySize returns the ramp with n entries.
func (s Set) BySize(n int) (Palette, bool) {
	switch n {
	case 256:
		return s.P256, true
	case 16:
		return s.P16, true
	case 8:
		return s.P8, true
	case 4:
		return s.P4, true
	}
	return nil, false
}

var defaultSet = sync.OnceValue(NewSet)

// Default returns the process-wide set, generated on first use. Callers must
// not modify the returned palettes.
func Default() Set { return defaultSet() }

// Sizes lists the supported ramp sizes in ascending order.
func Sizes() []int { return []int{4, 8, 16, 256} }
