package core

import "testing"

func TestRNGBetweenStaysInRange(t *testing.T) {
	r := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		v := r.Between(128, 255)
		if v < 128 || v > 255 {
			t.Fatalf("Between(128,255) = %d", v)
		}
		seen[v] = true
	}
	if !seen[128] || !seen[255] {
		t.Fatalf("expected both range endpoints to be drawn")
	}
	if v := r.Between(5, 5); v != 5 {
		t.Fatalf("Between(5,5) = %d", v)
	}
	if v := r.Between(9, 3); v < 3 || v > 9 {
		t.Fatalf("reversed Between = %d", v)
	}
}

func TestRNGSeedRepeats(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(1)
	b.Seed(42)
	for i := 0; i < 32; i++ {
		if x, y := a.Between(0, 255), b.Between(0, 255); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}
