//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"fire-effect/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 6
	lineHeight   = 15
	panelWidth   = 190
)

// HUD renders a parameter panel over the top-left corner of the window.
// It starts hidden and is toggled with H.
type HUD struct {
	sim      core.Sim
	visible  bool
	snapshot core.ParameterSnapshot
	lines    []string
	pixel    *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update handles the visibility toggle and refreshes the cached snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
	} else {
		h.snapshot = provider.Parameters()
	}
	h.lines = formatSnapshot(h.sim.Name(), h.snapshot)
	h.lines = append(h.lines, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw paints the panel when visible.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || len(h.lines) == 0 {
		return
	}
	height := 2*panelPadding + len(h.lines)*lineHeight

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(panelWidth, float64(height))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 12, G: 12, B: 16, A: 200})
	screen.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := panelPadding + (i+1)*lineHeight - 3
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if strings.HasPrefix(line, "[") {
			clr = color.RGBA{R: 255, G: 170, B: 60, A: 255}
		}
		text.Draw(screen, line, face, panelPadding, y, clr)
	}
}
