// Package dither implements ordered dithering against a fixed threshold map.
package dither

import (
	"errors"
	"fmt"
)

// Matrix is a square ordered-dither index matrix holding a permutation of
// 0..N*N-1.
type Matrix [][]int

// Bayer8 is the 8x8 recursive Bayer index pattern.
var Bayer8 = Matrix{
	{0, 48, 12, 60, 3, 51, 15, 63},
	{32, 16, 44, 28, 35, 19, 47, 31},
	{8, 56, 4, 52, 11, 59, 7, 55},
	{40, 24, 36, 20, 43, 27, 39, 23},
	{2, 50, 14, 62, 1, 49, 13, 61},
	{34, 18, 46, 30, 33, 17, 45, 29},
	{10, 58, 6, 54, 9, 57, 5, 53},
	{42, 26, 38, 22, 41, 25, 37, 21},
}

// Bayer4 is the 4x4 Bayer index pattern.
var Bayer4 = Matrix{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

var (
	// ErrNotSquare is returned for empty or ragged matrices.
	ErrNotSquare = errors.New("dither matrix is not square")
	// ErrNotPermutation is returned when the entries are not 0..N*N-1.
	ErrNotPermutation = errors.New("dither matrix is not a permutation")
)

// MatrixBySize returns the built-in Bayer matrix of side n.
func MatrixBySize(n int) (Matrix, error) {
	switch n {
	case 8:
		return Bayer8, nil
	case 4:
		return Bayer4, nil
	}
	return nil, fmt.Errorf("unsupported dither matrix size %d", n)
}

// Validate checks that m is square and holds each of 0..N*N-1 exactly once.
func (m Matrix) Validate() error {
	n := len(m)
	if n == 0 {
		return ErrNotSquare
	}
	seen := make([]bool, n*n)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
		for j, v := range row {
			if v < 0 || v >= n*n || seen[v] {
				return fmt.Errorf("entry [%d][%d]=%d: %w", i, j, v, ErrNotPermutation)
			}
			seen[v] = true
		}
	}
	return nil
}
