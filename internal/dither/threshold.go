package dither

import "fmt"

// ThresholdMap holds per-cell bias values in (-0.5, 0.5] derived from a
// Matrix. It is immutable after construction.
type ThresholdMap struct {
	n int
	t []float64
}

// NewThresholdMap precomputes (m[i][j]+1)/(N*N) - 0.5 for every cell.
func NewThresholdMap(m Matrix) (*ThresholdMap, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("build threshold map: %w", err)
	}
	n := len(m)
	tm := &ThresholdMap{n: n, t: make([]float64, n*n)}
	cells := float64(n * n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			tm.t[i*n+j] = float64(m[i][j]+1)/cells - 0.5
		}
	}
	return tm, nil
}

// MustThresholdMap is like NewThresholdMap but panics on an invalid matrix.
// It is intended for the built-in matrices.
func MustThresholdMap(m Matrix) *ThresholdMap {
	tm, err := NewThresholdMap(m)
	if err != nil {
		panic(err)
	}
	return tm
}

// Size returns the side length N.
func (tm *ThresholdMap) Size() int { return tm.n }

// At returns the bias for pixel (x, y). The first matrix index is x mod N,
// the second y mod N; negative coordinates wrap.
func (tm *ThresholdMap) At(x, y int) float64 {
	i := (x%tm.n + tm.n) % tm.n
	j := (y%tm.n + tm.n) % tm.n
	return tm.t[i*tm.n+j]
}
