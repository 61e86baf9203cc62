// Package fire implements the heat-diffusion fire effect.
package fire

import (
	"image"
	"math"

	"fire-effect/internal/core"
	"fire-effect/internal/dither"
	"fire-effect/internal/palette"
)

const (
	// sourceMin and sourceMax bound the heat stamped onto burning cells.
	sourceMin = 128
	sourceMax = 255
	// decay is the divisor applied to the four sampled neighbours. Being
	// larger than the number of samples makes the flame cool as it rises.
	decay = 5.0
)

// Fire owns the heat grid, the source set and the rendered frame.
type Fire struct {
	cfg Config

	grid    *core.ByteGrid
	sources *Sources
	pointer core.Pointer
	disc    []core.Point
	animate bool

	rng      *core.RNG
	palettes palette.Set
	ditherer *dither.Ditherer
	frame    *image.RGBA
}

// New returns a fire simulation with the provided dimensions using defaults.
func New(w, h int) *Fire {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a fire simulation configured from the provided options.
func NewWithConfig(cfg Config) *Fire {
	grid := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H

	pals := palette.Default()
	target, ok := pals.BySize(cfg.Params.DitherPalette)
	if !ok {
		target = pals.P16
	}
	matrix, err := dither.MatrixBySize(cfg.Params.MatrixSize)
	if err != nil {
		matrix = dither.Bayer8
	}

	f := &Fire{
		cfg:      cfg,
		grid:     grid,
		sources:  newSources(grid),
		pointer:  core.Pointer{X: grid.W / 2, Y: grid.H / 2},
		disc:     DiscOffsets(cfg.Params.Radius),
		rng:      core.NewRNG(cfg.Seed),
		palettes: pals,
		ditherer: dither.New(dither.MustThresholdMap(matrix), cfg.Params.DitherDepth, target),
		frame:    image.NewRGBA(image.Rect(0, 0, grid.W, grid.H)),
	}
	f.Render()
	return f
}

// Name returns the simulation identifier.
func (f *Fire) Name() string { return "fire" }

// Size reports the grid dimensions.
func (f *Fire) Size() core.Size { return core.Size{W: f.grid.W, H: f.grid.H} }

// Cells exposes the heat values in row-major order.
func (f *Fire) Cells() []uint8 { return f.grid.Cells() }

// Grid exposes the heat grid.
func (f *Fire) Grid() *core.ByteGrid { return f.grid }

// Sources exposes the persistent source set.
func (f *Fire) Sources() *Sources { return f.sources }

// Frame returns the most recently rendered RGBA frame.
func (f *Fire) Frame() *image.RGBA { return f.frame }

// Reset clears heat and sources and reseeds the RNG. A zero seed falls back
// to the configured seed.
func (f *Fire) Reset(seed int64) {
	if seed == 0 {
		seed = f.cfg.Seed
	}
	f.rng.Seed(seed)
	f.grid.Clear()
	f.sources.Clear()
	f.Render()
}

// SetPointer records the pointer state consumed by the next Step. The
// position is expected in canvas coordinates.
func (f *Fire) SetPointer(p core.Pointer) { f.pointer = p }

// Pointer returns the last recorded pointer state.
func (f *Fire) Pointer() core.Pointer { return f.pointer }

// ToggleAnimate flips the animate flag. The flag is tracked but no
// simulation branch reads it yet.
func (f *Fire) ToggleAnimate() { f.animate = !f.animate }

// Animating reports the animate flag.
func (f *Fire) Animating() bool { return f.animate }

// Step advances one frame: pointer edits to the source set, the random
// bottom row, source and pointer stamping, diffusion, and rendering.
func (f *Fire) Step() {
	f.ApplyPointer()
	f.SeedBottomRow()
	f.StampSources()
	f.StampPointer()
	f.Diffuse()
	f.Render()
}

// ApplyPointer adds the pointer disc to the source set while the left button
// is held and erases it while the right button is held.
func (f *Fire) ApplyPointer() {
	p := f.pointer
	if p.Left {
		f.AddDisc(p.X, p.Y)
	}
	if p.Right {
		f.EraseDisc(p.X, p.Y)
	}
}

// AddDisc marks every cell of the configured disc around (cx, cy) as burning.
func (f *Fire) AddDisc(cx, cy int) {
	for _, o := range f.disc {
		f.sources.Add(core.Point{X: cx + o.X, Y: cy + o.Y})
	}
}

// EraseDisc removes every cell of the configured disc around (cx, cy) from
// the source set.
func (f *Fire) EraseDisc(cx, cy int) {
	for _, o := range f.disc {
		f.sources.Remove(core.Point{X: cx + o.X, Y: cy + o.Y})
	}
}

// SeedBottomRow fills the last row with uniform random heat in [0,255].
func (f *Fire) SeedBottomRow() {
	y := f.grid.H - 1
	for x := 0; x < f.grid.W; x++ {
		f.grid.Set(x, y, f.rng.Between(0, 255))
	}
}

// StampSources sets every burning cell to random heat in [128,255].
func (f *Fire) StampSources() {
	for _, p := range f.sources.Points() {
		f.grid.Set(p.X, p.Y, f.rng.Between(sourceMin, sourceMax))
	}
}

// StampPointer sets the disc following the pointer to random heat in
// [128,255].
func (f *Fire) StampPointer() {
	for _, o := range f.disc {
		f.grid.Set(f.pointer.X+o.X, f.pointer.Y+o.Y, f.rng.Between(sourceMin, sourceMax))
	}
}

// Diffuse propagates heat upward in place. Rows 0..H-2 are visited in
// increasing order; each cell becomes the rounded average of the three cells
// below it and the one two rows down, divided by decay instead of four.
// Rows y+1 and y+2 have not been rewritten yet when row y is computed,
// except where y+2 wraps to the top of the grid.
func (f *Fire) Diffuse() {
	g := f.grid
	for y := 0; y < g.H-1; y++ {
		for x := 0; x < g.W; x++ {
			sum := int(g.Get(x, y+1)) +
				int(g.Get(x+1, y+1)) +
				int(g.Get(x-1, y+1)) +
				int(g.Get(x, y+2))
			g.Set(x, y, int(math.Round(float64(sum)/decay)))
		}
	}
}

// SourceMask reports, per cell, whether it belongs to the source set.
func (f *Fire) SourceMask() []bool {
	mask := make([]bool, f.grid.W*f.grid.H)
	for _, p := range f.sources.Points() {
		mask[f.grid.Index(p.X, p.Y)] = true
	}
	return mask
}

func init() {
	core.Register("fire", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
