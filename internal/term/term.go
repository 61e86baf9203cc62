// Package term runs a simulation inside a terminal using half-block cells,
// two canvas rows per terminal row.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"fire-effect/internal/core"
	"fire-effect/internal/input"
)

// halfBlock paints the foreground over the top half of a cell.
const halfBlock = '▀'

type animator interface {
	ToggleAnimate()
}

// CanvasSize returns the canvas that fills a terminal of cols x rows cells.
func CanvasSize(cols, rows int) core.Size {
	return core.Size{W: cols, H: rows * 2}
}

// Runner owns the frame loop for one simulation on one screen.
type Runner struct {
	screen tcell.Screen
	sim    core.Sim
	pacer  *core.FixedStep
	view   input.Viewport
	resize func(core.Size) core.Sim

	mouseX, mouseY int
	buttons        tcell.ButtonMask
	focused        bool
	frames         int
}

// NewRunner prepares a runner. The screen must already be initialised.
func NewRunner(screen tcell.Screen, sim core.Sim, tps int) *Runner {
	size := sim.Size()
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	return &Runner{
		screen:  screen,
		sim:     sim,
		pacer:   core.NewFixedStep(tps),
		view:    viewport(size),
		mouseX:  -1,
		mouseY:  -1,
		focused: true,
	}
}

func viewport(size core.Size) input.Viewport {
	return input.Viewport{WinW: size.W, WinH: size.H, Zoom: 1, Canvas: size}
}

// OnResize installs a constructor used to replace the sim when the terminal
// changes size. Without one the canvas keeps its startup size.
func (r *Runner) OnResize(build func(core.Size) core.Sim) { r.resize = build }

// Sim returns the simulation currently on screen.
func (r *Runner) Sim() core.Sim { return r.sim }

// Frames reports how many simulation steps have run.
func (r *Runner) Frames() int { return r.frames }

// Run drives the loop until the user quits or ctx is cancelled. Terminal
// events are read on a separate goroutine and handled here, so the
// simulation is only touched from this goroutine.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.pacer.Interval())
	defer ticker.Stop()

	r.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !r.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			r.Tick(now)
		}
	}
}

// HandleEvent applies one terminal event and reports whether the loop
// should continue.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				if a, ok := r.sim.(animator); ok {
					a.ToggleAnimate()
				}
			case 'r', 'R':
				r.sim.Reset(0)
			}
		}
	case *tcell.EventMouse:
		r.mouseX, r.mouseY = ev.Position()
		r.buttons = ev.Buttons()
	case *tcell.EventFocus:
		r.focused = ev.Focused
		if !ev.Focused {
			r.buttons = tcell.ButtonNone
		}
	case *tcell.EventResize:
		r.applyResize(CanvasSize(ev.Size()))
		r.screen.Sync()
	}
	return true
}

// applyResize swaps in a sim sized for the new terminal. Fire sources do not
// carry over.
func (r *Runner) applyResize(size core.Size) {
	if r.resize == nil || size == r.sim.Size() || size.W <= 0 || size.H <= 0 {
		return
	}
	r.sim = r.resize(size)
	r.view = viewport(r.sim.Size())
	r.screen.Clear()
	r.Draw()
}

// Pointer converts the last mouse state into canvas coordinates. Without a
// mouse position, or while unfocused, the pointer sits at the centre.
func (r *Runner) Pointer() core.Pointer {
	x, y := r.mouseX, r.mouseY*2
	if !r.focused || r.mouseX < 0 || r.mouseY < 0 {
		x, y = -1, -1
	}
	return r.view.Map(x, y, r.buttons&tcell.Button1 != 0, r.buttons&tcell.Button2 != 0)
}

// Tick runs the simulation steps due at now and redraws when any ran.
func (r *Runner) Tick(now time.Time) {
	steps := r.pacer.Advance(now)
	if steps == 0 {
		return
	}
	sink, hasSink := r.sim.(core.PointerSink)
	for i := 0; i < steps; i++ {
		if hasSink {
			sink.SetPointer(r.Pointer())
		}
		r.sim.Step()
		r.frames++
	}
	r.Draw()
}

// Draw paints the current frame. Canvas rows 2k and 2k+1 share terminal
// row k; cells beyond the screen are skipped.
func (r *Runner) Draw() {
	framer, ok := r.sim.(core.Framer)
	if !ok {
		return
	}
	img := framer.Frame()
	cols, rows := r.screen.Size()
	size := r.sim.Size()
	for ty := 0; ty < rows && 2*ty < size.H; ty++ {
		for x := 0; x < cols && x < size.W; x++ {
			top := img.RGBAAt(x, 2*ty)
			bottom := color.RGBA{A: 255}
			if 2*ty+1 < size.H {
				bottom = img.RGBAAt(x, 2*ty+1)
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			r.screen.SetContent(x, ty, halfBlock, nil, style)
		}
	}
	r.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
