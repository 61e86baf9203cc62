package core

import (
	"image"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Pointer is the per-frame pointer device state in canvas coordinates.
type Pointer struct {
	X, Y  int
	Left  bool
	Right bool
}

// Sim defines the minimal contract a grid simulation must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PointerSink is implemented by simulations that react to pointer input.
type PointerSink interface {
	SetPointer(p Pointer)
}

// Framer is implemented by simulations that render their own RGBA frame.
type Framer interface {
	Frame() *image.RGBA
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in sorted order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
