package fire

// Stats summarises the heat grid.
type Stats struct {
	Mean float64
	Max  uint8
	// Hot counts cells at or above the threshold passed to Measure.
	Hot int
	// FlameTop is the smallest row whose mean heat reaches the threshold,
	// or the grid height when no row does.
	FlameTop int
}

// Measure collects Stats with hot as the heat threshold.
func (f *Fire) Measure(hot uint8) Stats {
	g := f.grid
	s := Stats{FlameTop: g.H}
	total := 0
	for y := 0; y < g.H; y++ {
		row := 0
		for x := 0; x < g.W; x++ {
			v := g.Get(x, y)
			row += int(v)
			if v > s.Max {
				s.Max = v
			}
			if v >= hot {
				s.Hot++
			}
		}
		total += row
		if s.FlameTop == g.H && row >= int(hot)*g.W {
			s.FlameTop = y
		}
	}
	s.Mean = float64(total) / float64(len(g.Cells()))
	return s
}
