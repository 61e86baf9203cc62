//go:build ebiten

package app

import (
	"log/slog"

	"fire-effect/internal/core"
	"fire-effect/internal/input"
	"fire-effect/internal/render"
	"fire-effect/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type animator interface {
	ToggleAnimate()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	view    input.Viewport
	log     *slog.Logger

	seed int64
}

// New constructs a Game showing sim in a window of cfg.Width x cfg.Height.
func New(sim core.Sim, cfg *Config, logger *slog.Logger) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
		hud:     ui.NewHUD(sim),
		view: input.Viewport{
			WinW:   cfg.Width,
			WinH:   cfg.Height,
			Zoom:   cfg.Zoom,
			Canvas: size,
		},
		log:  logger,
		seed: cfg.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.log.Debug("sim reset", "seed", seed)
}

// Update polls input and advances the simulation by one frame.
func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if a, ok := g.sim.(animator); ok {
			a.ToggleAnimate()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}

	g.overlay.Update()
	g.hud.Update()

	if sink, ok := g.sim.(core.PointerSink); ok {
		sink.SetPointer(g.pointer())
	}
	g.sim.Step()
	return nil
}

func (g *Game) pointer() core.Pointer {
	x, y := ebiten.CursorPosition()
	if !ebiten.IsFocused() {
		x, y = -1, -1
	}
	return g.view.Map(x, y,
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
}

// Draw renders the current simulation frame stretched over the window.
func (g *Game) Draw(screen *ebiten.Image) {
	sx, sy := g.scale()
	if framer, ok := g.sim.(core.Framer); ok {
		g.painter.Blit(screen, framer.Frame(), sx, sy)
	}
	g.overlay.Draw(screen, sx, sy)
	g.hud.Draw(screen)
}

func (g *Game) scale() (float64, float64) {
	w, h := g.painter.Size()
	return float64(g.view.WinW) / float64(w), float64(g.view.WinH) / float64(h)
}

// Layout returns the logical screen size, which matches the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.WinW, g.view.WinH
}
