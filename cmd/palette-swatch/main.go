// Command palette-swatch writes the fire palettes to a PNG, one band per
// ramp, followed by the 256 ramp as the dithered half renders it.
package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/alecthomas/kong"

	"fire-effect/internal/app"
	"fire-effect/internal/dither"
	"fire-effect/internal/palette"
	"fire-effect/internal/render"
)

type options struct {
	Out           string `arg:"" optional:"" default:"palettes.png" help:"Output PNG path."`
	Width         int    `default:"512" help:"Swatch width in pixels."`
	BandHeight    int    `name:"band-height" default:"24" help:"Height of each band in pixels."`
	Matrix        int    `default:"8" help:"Bayer matrix size for the dithered band (4 or 8)."`
	DitherPalette int    `name:"dither-palette" default:"16" help:"Target palette for the dithered band (4, 8 or 16)."`
	LogLevel      string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log verbosity."`
}

func (o *options) Validate() error {
	if o.Width <= 0 || o.BandHeight <= 0 {
		return fmt.Errorf("invalid swatch size: %dx%d", o.Width, o.BandHeight)
	}
	return nil
}

func main() {
	var opts options
	kong.Parse(&opts, kong.Name("palette-swatch"), kong.UsageOnError())
	logger := app.NewLogger(os.Stderr, app.ParseLevel(opts.LogLevel))

	set := palette.Default()
	rows := make([][]color.RGBA, 0, len(palette.Sizes())+1)
	for _, n := range palette.Sizes() {
		p, _ := set.BySize(n)
		rows = append(rows, p)
	}

	m, err := dither.MatrixBySize(opts.Matrix)
	if err != nil {
		logger.Error("bad matrix", "size", opts.Matrix, "error", err)
		os.Exit(1)
	}
	target, ok := set.BySize(opts.DitherPalette)
	if !ok || opts.DitherPalette == 256 {
		logger.Error("bad dither palette", "size", opts.DitherPalette)
		os.Exit(1)
	}
	d := dither.New(dither.MustThresholdMap(m), dither.DefaultDepth, target)

	// The last band is left empty by Swatch and filled with the dithered ramp.
	rows = append(rows, nil)
	img := render.Swatch(rows, opts.Width, opts.BandHeight)
	b := img.Bounds()
	for y := b.Max.Y - opts.BandHeight; y < b.Max.Y; y++ {
		for x := 0; x < b.Dx(); x++ {
			img.SetRGBA(x, y, d.Apply(set.P256[x*len(set.P256)/b.Dx()], x, y))
		}
	}

	if err := render.SavePNG(opts.Out, img); err != nil {
		logger.Error("could not write swatch", "error", err)
		os.Exit(1)
	}
	logger.Info("swatch written", "path", opts.Out, "matrix", opts.Matrix, "target", opts.DitherPalette)
}
