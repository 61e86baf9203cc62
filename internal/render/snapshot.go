package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
)

// DefaultSnapshotPath is where the final frame is written on exit.
const DefaultSnapshotPath = "fireEffect.png"

// SavePNG encodes img as PNG into path, replacing any existing file.
func SavePNG(path string, img image.Image) (err error) {
	if img == nil {
		return errors.New("save snapshot: no frame")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save snapshot %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close snapshot %q: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode snapshot %q: %w", path, err)
	}
	return nil
}
