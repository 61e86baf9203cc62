package app

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/alecthomas/kong"

	"fire-effect/internal/render"
)

// Config represents the command-line parameters for the windowed program.
type Config struct {
	Zoom          int    `arg:"" optional:"" default:"6" help:"Window pixels per canvas cell."`
	Width         int    `default:"800" help:"Window width in pixels."`
	Height        int    `default:"600" help:"Window height in pixels."`
	TPS           int    `name:"tps" default:"60" help:"Simulation ticks per second."`
	Seed          int64  `default:"0" help:"Random seed; 0 derives one from the clock."`
	Sim           string `default:"fire" help:"Simulation to run."`
	Radius        int    `default:"2" help:"Fireball radius in cells."`
	Matrix        int    `default:"8" help:"Bayer matrix size (4 or 8)."`
	DitherPalette int    `name:"dither-palette" default:"16" help:"Palette size for the dithered half (4, 8 or 16)."`
	Snapshot      string `default:"fireEffect.png" help:"PNG written with the final frame on exit; empty disables."`
	LogLevel      string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log verbosity."`
}

// NewConfig returns a Config populated with the same defaults kong applies.
func NewConfig() *Config {
	return &Config{
		Zoom:          6,
		Width:         800,
		Height:        600,
		TPS:           60,
		Sim:           "fire",
		Radius:        2,
		Matrix:        8,
		DitherPalette: 16,
		Snapshot:      render.DefaultSnapshotPath,
		LogLevel:      "info",
	}
}

// Validate checks option ranges after parsing.
func (c *Config) Validate(kctx *kong.Context) error {
	switch {
	case c.Zoom <= 0:
		return fmt.Errorf("invalid zoom: %d", c.Zoom)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid window size: %dx%d", c.Width, c.Height)
	case c.Width < c.Zoom || c.Height < c.Zoom:
		return fmt.Errorf("zoom %d leaves an empty canvas for a %dx%d window", c.Zoom, c.Width, c.Height)
	case c.TPS <= 0:
		return fmt.Errorf("invalid tps: %d", c.TPS)
	case c.Radius < 0:
		return fmt.Errorf("invalid radius: %d", c.Radius)
	case c.Matrix != 4 && c.Matrix != 8:
		return fmt.Errorf("unsupported matrix size: %d", c.Matrix)
	case c.DitherPalette != 4 && c.DitherPalette != 8 && c.DitherPalette != 16:
		return fmt.Errorf("unsupported dither palette: %d", c.DitherPalette)
	}
	return nil
}

// CanvasSize returns the simulation grid dimensions implied by the window
// size and zoom.
func (c *Config) CanvasSize() (int, int) {
	return c.Width / c.Zoom, c.Height / c.Zoom
}

// SimOptions renders the config as the key/value map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	w, h := c.CanvasSize()
	return FireOptions{
		Width:         w,
		Height:        h,
		Seed:          c.Seed,
		Radius:        c.Radius,
		Matrix:        c.Matrix,
		DitherPalette: c.DitherPalette,
	}.Map()
}

// FireOptions are the fire settings shared by the windowed and terminal
// programs.
type FireOptions struct {
	Width, Height int
	Seed          int64
	Radius        int
	Matrix        int
	DitherPalette int
}

// Map renders the options with the keys fire.FromMap reads.
func (o FireOptions) Map() map[string]string {
	return map[string]string{
		"w":              strconv.Itoa(o.Width),
		"h":              strconv.Itoa(o.Height),
		"seed":           strconv.FormatInt(o.Seed, 10),
		"radius":         strconv.Itoa(o.Radius),
		"matrix":         strconv.Itoa(o.Matrix),
		"dither_palette": strconv.Itoa(o.DitherPalette),
	}
}

// Level parses LogLevel, defaulting to info.
func (c *Config) Level() slog.Level {
	return ParseLevel(c.LogLevel)
}
