package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gdamore/tcell/v2"

	"fire-effect/internal/app"
	"fire-effect/internal/core"
	"fire-effect/internal/sims/fire"
	"fire-effect/internal/term"
)

type options struct {
	TPS           int    `name:"tps" default:"30" help:"Simulation ticks per second."`
	Seed          int64  `default:"0" help:"Random seed; 0 derives one from the clock."`
	Radius        int    `default:"2" help:"Fireball radius in cells."`
	Matrix        int    `default:"8" help:"Bayer matrix size (4 or 8)."`
	DitherPalette int    `name:"dither-palette" default:"16" help:"Palette size for the dithered half."`
	Snapshot      string `default:"fireEffect.png" help:"PNG written with the final frame on exit; empty disables."`
	LogLevel      string `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log verbosity."`
}

func (o *options) Validate() error {
	if o.TPS <= 0 {
		return errors.New("tps must be positive")
	}
	if o.Radius < 0 {
		return errors.New("radius must not be negative")
	}
	if o.Matrix != 4 && o.Matrix != 8 {
		return fmt.Errorf("unsupported matrix size: %d", o.Matrix)
	}
	if o.DitherPalette != 4 && o.DitherPalette != 8 && o.DitherPalette != 16 {
		return fmt.Errorf("unsupported dither palette: %d", o.DitherPalette)
	}
	return nil
}

func main() {
	var opts options
	kong.Parse(&opts,
		kong.Name("fire-term"),
		kong.Description("Fire effect in the terminal. Left drag adds fire, right drag erases it, q quits."),
		kong.UsageOnError(),
	)
	logger := app.NewLogger(os.Stderr, app.ParseLevel(opts.LogLevel))

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err == nil {
		err = screen.Init()
	}
	if err != nil {
		logger.Error("could not open terminal", "error", err)
		os.Exit(1)
	}

	fireOpts := app.FireOptions{
		Seed:          opts.Seed,
		Radius:        opts.Radius,
		Matrix:        opts.Matrix,
		DitherPalette: opts.DitherPalette,
	}
	build := func(size core.Size) core.Sim {
		fireOpts.Width, fireOpts.Height = size.W, size.H
		return fire.NewWithConfig(fire.FromMap(fireOpts.Map()))
	}
	size := term.CanvasSize(screen.Size())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runner := term.NewRunner(screen, build(size), opts.TPS)
	runner.OnResize(build)
	runErr := runner.Run(ctx)
	stop()
	screen.Fini()

	// The screen owns the terminal until Fini, so logging waits until here.
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("terminal loop failed", "error", runErr)
	}
	sim := runner.Sim()
	logger.Info("stopped", "canvas", sim.Size(), "seed", opts.Seed, "frames", runner.Frames())
	_ = app.SaveSnapshot(logger, sim, opts.Snapshot)
}
