package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"fire-effect/internal/core"
	"fire-effect/internal/sims/fire"
)

func newTestRunner(t *testing.T, cols, rows int) (*Runner, *fire.Fire, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)

	size := CanvasSize(cols, rows)
	sim := fire.New(size.W, size.H)
	return NewRunner(screen, sim, 30), sim, screen
}

func TestCanvasSize(t *testing.T) {
	if got := CanvasSize(80, 24); got != (core.Size{W: 80, H: 48}) {
		t.Fatalf("CanvasSize = %+v", got)
	}
}

func TestPointerMapping(t *testing.T) {
	r, _, _ := newTestRunner(t, 20, 10)

	if got := r.Pointer(); got.X != 10 || got.Y != 10 {
		t.Fatalf("pointer without mouse = %+v, want centre", got)
	}

	r.HandleEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	got := r.Pointer()
	if got.X != 4 || got.Y != 6 || !got.Left || got.Right {
		t.Fatalf("pointer = %+v, want (4,6) left", got)
	}

	r.HandleEvent(tcell.NewEventMouse(5, 2, tcell.Button2, tcell.ModNone))
	if got := r.Pointer(); !got.Right || got.Left {
		t.Fatalf("right button not mapped: %+v", got)
	}

	r.HandleEvent(tcell.NewEventFocus(false))
	if got := r.Pointer(); got.X != 10 || got.Y != 10 || got.Right {
		t.Fatalf("unfocused pointer = %+v, want centre without buttons", got)
	}
}

func TestHandleEventKeys(t *testing.T) {
	r, sim, _ := newTestRunner(t, 8, 4)

	if !r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Fatal("space should not quit")
	}
	if !sim.Animating() {
		t.Fatal("space should toggle animate")
	}
	if r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if r.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}

	sim.AddDisc(2, 2)
	r.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if sim.Sources().Len() != 0 {
		t.Fatal("r should reset the sim")
	}
}

func TestTickStepsAndDraws(t *testing.T) {
	r, sim, screen := newTestRunner(t, 12, 6)

	r.HandleEvent(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	start := time.Unix(50, 0)
	r.Tick(start)
	if r.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", r.Frames())
	}
	if !sim.Sources().Has(core.Point{X: 3, Y: 2}) {
		t.Fatal("left drag should add sources under the pointer")
	}

	r.Tick(start.Add(time.Millisecond))
	if r.Frames() != 1 {
		t.Fatalf("tick before interval stepped: frames = %d", r.Frames())
	}

	img := sim.Frame()
	for ty := 0; ty < 6; ty++ {
		for x := 0; x < 12; x++ {
			mainc, _, style, _ := screen.GetContent(x, ty)
			if mainc != halfBlock {
				t.Fatalf("cell (%d,%d) rune %q", x, ty, mainc)
			}
			fg, bg, _ := style.Decompose()
			if want := rgb(img.RGBAAt(x, 2*ty)); fg != want {
				t.Fatalf("cell (%d,%d) fg %v, want %v", x, ty, fg, want)
			}
			if want := rgb(img.RGBAAt(x, 2*ty+1)); bg != want {
				t.Fatalf("cell (%d,%d) bg %v, want %v", x, ty, bg, want)
			}
		}
	}
}

func TestResizeRebuildsCanvas(t *testing.T) {
	r, sim, screen := newTestRunner(t, 10, 5)

	r.HandleEvent(tcell.NewEventResize(16, 7))
	if r.Sim() != core.Sim(sim) {
		t.Fatal("resize without a constructor replaced the sim")
	}

	var built []core.Size
	r.OnResize(func(size core.Size) core.Sim {
		built = append(built, size)
		return fire.New(size.W, size.H)
	})

	r.HandleEvent(tcell.NewEventResize(10, 5))
	if len(built) != 0 {
		t.Fatalf("same-size resize rebuilt the sim: %v", built)
	}

	screen.SetSize(16, 7)
	r.HandleEvent(tcell.NewEventResize(16, 7))
	if len(built) != 1 || built[0] != (core.Size{W: 16, H: 14}) {
		t.Fatalf("built = %v, want one 16x14 canvas", built)
	}
	if got := r.Sim().Size(); got != (core.Size{W: 16, H: 14}) {
		t.Fatalf("sim size = %+v", got)
	}
	if got := r.Pointer(); got.X != 8 || got.Y != 7 {
		t.Fatalf("pointer after resize = %+v, want centre of new canvas", got)
	}
	if mainc, _, _, _ := screen.GetContent(15, 6); mainc != halfBlock {
		t.Fatalf("new corner cell not drawn: %q", mainc)
	}
}
