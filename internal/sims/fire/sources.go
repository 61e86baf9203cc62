package fire

import (
	"cmp"
	"maps"
	"slices"

	"fire-effect/internal/core"
)

// Sources is the persistent set of burning cells. Members are stored in
// wrapped grid coordinates, so equivalent points collapse to one entry.
type Sources struct {
	grid *core.ByteGrid
	set  map[core.Point]struct{}
}

func newSources(grid *core.ByteGrid) *Sources {
	return &Sources{grid: grid, set: make(map[core.Point]struct{})}
}

func (s *Sources) canon(p core.Point) core.Point {
	x, y := s.grid.Wrap(p.X, p.Y)
	return core.Point{X: x, Y: y}
}

// Add inserts p and reports whether it was new.
func (s *Sources) Add(p core.Point) bool {
	p = s.canon(p)
	if _, ok := s.set[p]; ok {
		return false
	}
	s.set[p] = struct{}{}
	return true
}

// Remove deletes p and reports whether it was present.
func (s *Sources) Remove(p core.Point) bool {
	p = s.canon(p)
	if _, ok := s.set[p]; !ok {
		return false
	}
	delete(s.set, p)
	return true
}

// Has reports whether p is burning.
func (s *Sources) Has(p core.Point) bool {
	_, ok := s.set[s.canon(p)]
	return ok
}

// Len returns the number of burning cells.
func (s *Sources) Len() int { return len(s.set) }

// Clear removes every source.
func (s *Sources) Clear() { clear(s.set) }

// Points returns the members ordered by row, then column.
func (s *Sources) Points() []core.Point {
	return slices.SortedFunc(maps.Keys(s.set), comparePoints)
}

func comparePoints(a, b core.Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

// DiscOffsets lists the offsets (dx, dy) with dx*dx+dy*dy < r*r, row by row.
// A non-positive radius yields no offsets.
func DiscOffsets(r int) []core.Point {
	if r <= 0 {
		return nil
	}
	var out []core.Point
	for dy := -r; dy < r; dy++ {
		for dx := -r; dx < r; dx++ {
			if dx*dx+dy*dy < r*r {
				out = append(out, core.Point{X: dx, Y: dy})
			}
		}
	}
	return out
}
