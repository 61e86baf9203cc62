package render

import (
	"image"
	"image/color"
)

// Swatch lays out one band per row, each band rowH pixels tall and width
// pixels wide. Entries of a row are stretched evenly across the band; an
// empty row stays black.
func Swatch(rows [][]color.RGBA, width, rowH int) *image.RGBA {
	if width <= 0 {
		width = 1
	}
	if rowH <= 0 {
		rowH = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, rowH*len(rows)))
	for r, row := range rows {
		for x := 0; x < width; x++ {
			col := color.RGBA{A: 255}
			if len(row) > 0 {
				col = row[x*len(row)/width]
			}
			for y := r * rowH; y < (r+1)*rowH; y++ {
				img.SetRGBA(x, y, col)
			}
		}
	}
	return img
}
