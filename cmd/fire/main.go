//go:build ebiten

package main

import (
	"errors"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"fire-effect/internal/app"
	"fire-effect/internal/core"
	_ "fire-effect/internal/sims/fire"
)

func main() {
	cfg := app.NewConfig()
	kong.Parse(cfg,
		kong.Name("fire"),
		kong.Description("Interactive fire effect. Left drag adds fire, right drag erases it."),
		kong.UsageOnError(),
	)
	logger := app.NewLogger(os.Stderr, cfg.Level())

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Error("unknown sim", "sim", cfg.Sim, "available", core.SimNames())
		os.Exit(1)
	}
	sim := factory(cfg.SimOptions())
	size := sim.Size()
	logger.Info("starting", "sim", sim.Name(), "canvas", size, "zoom", cfg.Zoom, "seed", cfg.Seed)

	game := app.New(sim, cfg, logger)

	ebiten.SetWindowTitle("fire effect")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("window loop failed", "error", err)
		os.Exit(1)
	}

	// Snapshot failures are already logged and do not change the exit status.
	_ = app.SaveSnapshot(logger, sim, cfg.Snapshot)
}
