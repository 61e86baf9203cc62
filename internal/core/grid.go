package core

// ByteGrid stores a toroidal 2D grid of intensity values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Get returns the value at (x, y) after wrapping the coordinates.
func (g *ByteGrid) Get(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x]
}

// Set stores value at (x, y) after wrapping the coordinates. Values outside
// [0,255] are clamped.
func (g *ByteGrid) Set(x, y, value int) {
	x, y = g.Wrap(x, y)
	g.data[y*g.W+x] = ClampByte(value)
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// ClampByte clamps v into [0,255].
func ClampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
