package fire

import (
	"strconv"

	"fire-effect/internal/dither"
)

// Params holds the tunables of the fire simulation.
type Params struct {
	// Radius of the pointer disc used for stamping and for editing the
	// source set.
	Radius int
	// DitherDepth is the number of quantization steps per channel.
	DitherDepth float64
	// MatrixSize selects the Bayer matrix (4 or 8).
	MatrixSize int
	// DitherPalette selects the ramp the dithered half snaps to (4, 8 or 16).
	DitherPalette int
}

// Config controls the fire simulation dimensions.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig matches an 800x600 window at zoom 6.
func DefaultConfig() Config {
	return Config{
		Width:  800 / 6,
		Height: 600 / 6,
		Seed:   1,
		Params: Params{
			Radius:        2,
			DitherDepth:   dither.DefaultDepth,
			MatrixSize:    8,
			DitherPalette: 16,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable or out-of-range values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.Radius = parsed
		}
	}
	if v, ok := cfg["depth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.DitherDepth = parsed
		}
	}
	if v, ok := cfg["matrix"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && (parsed == 4 || parsed == 8) {
			c.Params.MatrixSize = parsed
		}
	}
	if v, ok := cfg["dither_palette"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && (parsed == 4 || parsed == 8 || parsed == 16) {
			c.Params.DitherPalette = parsed
		}
	}
	return c
}
