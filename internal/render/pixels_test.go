package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	pal := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}, {R: 9, G: 8, B: 7, A: 255}}
	cells := []uint8{0, 1, 200}
	buf := make([]byte, 4*len(cells))

	FillPaletteRGBA(buf, cells, pal)

	want := []byte{1, 2, 3, 255, 9, 8, 7, 255, 9, 8, 7, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}

	FillPaletteRGBA(buf, cells, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette left byte %d = %d", i, b)
		}
	}
}

func TestMaskRGBA(t *testing.T) {
	buf := []byte{7, 7, 7, 7, 7, 7, 7, 7}
	MaskRGBA(buf, []bool{false, true}, color.RGBA{R: 200, A: 90})
	want := []byte{0, 0, 0, 0, 200, 0, 0, 90}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestSwatchStretchesRows(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	img := Swatch([][]color.RGBA{{red, blue}, nil}, 4, 3)

	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Fatalf("bounds = %v, want 4x6", b)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := red
			if x >= 2 {
				want = blue
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := img.RGBAAt(1, 4); got != (color.RGBA{A: 255}) {
		t.Fatalf("empty row pixel = %v, want opaque black", got)
	}
}
