// Package input maps platform pointer state onto canvas coordinates.
package input

import "fire-effect/internal/core"

// Viewport describes a window of WinW x WinH pixels showing a canvas scaled
// up by Zoom.
type Viewport struct {
	WinW, WinH int
	Zoom       int
	Canvas     core.Size
}

// Map converts a window-space pointer position into canvas coordinates.
// Positions outside the window are replaced by the window centre; the result
// is divided by the zoom factor and clamped to the canvas.
func (v Viewport) Map(wx, wy int, left, right bool) core.Pointer {
	if !v.Inside(wx, wy) {
		wx, wy = v.WinW/2, v.WinH/2
	}
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return core.Pointer{
		X:     clamp(wx/zoom, 0, v.Canvas.W-1),
		Y:     clamp(wy/zoom, 0, v.Canvas.H-1),
		Left:  left,
		Right: right,
	}
}

// Inside reports whether (wx, wy) lies within the window.
func (v Viewport) Inside(wx, wy int) bool {
	return wx >= 0 && wy >= 0 && wx < v.WinW && wy < v.WinH
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
