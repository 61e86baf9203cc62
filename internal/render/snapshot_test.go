package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSavePNGRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(2, 1, color.RGBA{R: 250, G: 120, B: 10, A: 255})

	path := filepath.Join(t.TempDir(), DefaultSnapshotPath)
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	r, g, b, a := decoded.At(2, 1).RGBA()
	if r>>8 != 250 || g>>8 != 120 || b>>8 != 10 || a>>8 != 255 {
		t.Fatalf("pixel = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestSavePNGErrors(t *testing.T) {
	if err := SavePNG(filepath.Join(t.TempDir(), "x.png"), nil); err == nil {
		t.Fatal("expected error for nil image")
	}
	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "x.png")
	if err := SavePNG(missing, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
