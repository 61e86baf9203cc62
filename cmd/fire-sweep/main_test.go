package main

import (
	"math"
	"slices"
	"testing"

	"fire-effect/internal/sims/fire"
)

func TestCompareResultsOrdersExtremeSeeds(t *testing.T) {
	mk := func(top, radius int, seed int64) result {
		return result{scenario: scenario{radius: radius, seed: seed}, peak: fire.Stats{FlameTop: top}}
	}
	all := []result{
		mk(10, 2, math.MaxInt64),
		mk(10, 2, math.MinInt64),
		mk(10, 2, -1),
		mk(10, 1, 5),
		mk(3, 4, 0),
	}
	slices.SortFunc(all, compareResults)

	want := []result{
		mk(3, 4, 0),
		mk(10, 1, 5),
		mk(10, 2, math.MinInt64),
		mk(10, 2, -1),
		mk(10, 2, math.MaxInt64),
	}
	if !slices.Equal(all, want) {
		t.Fatalf("sorted = %+v, want %+v", all, want)
	}
	if compareResults(mk(0, 0, math.MaxInt64), mk(0, 0, -1)) <= 0 {
		t.Fatal("MaxInt64 seed should sort after -1")
	}
}
