package app

import (
	"bytes"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"fire-effect/internal/core"
	"fire-effect/internal/sims/fire"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	var cfg Config
	parser, err := kong.New(&cfg, kong.Name("fire"))
	if err != nil {
		t.Fatalf("kong.New: %v", err)
	}
	_, err = parser.Parse(args)
	return &cfg, err
}

func TestKongDefaultsMatchNewConfig(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if *cfg != *NewConfig() {
		t.Fatalf("kong defaults %+v differ from NewConfig %+v", *cfg, *NewConfig())
	}
}

func TestKongPositionalZoomAndFlags(t *testing.T) {
	cfg, err := parse(t, "4", "--matrix", "4", "--dither-palette", "8", "--radius", "3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Zoom != 4 || cfg.Matrix != 4 || cfg.DitherPalette != 8 || cfg.Radius != 3 {
		t.Fatalf("unexpected config %+v", *cfg)
	}
	if w, h := cfg.CanvasSize(); w != 200 || h != 150 {
		t.Fatalf("canvas = %dx%d, want 200x150", w, h)
	}
}

func TestKongRejectsInvalidOptions(t *testing.T) {
	for _, args := range [][]string{
		{"0"},
		{"--matrix", "3"},
		{"--dither-palette", "256"},
		{"--tps", "0"},
		{"--radius", "-1"},
		{"--log-level", "loud"},
		{"--width", "4", "6"},
	} {
		if _, err := parse(t, args...); err == nil {
			t.Fatalf("expected %v to be rejected", args)
		}
	}
}

func TestSimOptionsBuildFire(t *testing.T) {
	cfg := NewConfig()
	cfg.Seed = 17
	cfg.Matrix = 4
	opts := cfg.SimOptions()
	if opts["w"] != "133" || opts["h"] != "100" || opts["seed"] != "17" || opts["matrix"] != "4" {
		t.Fatalf("unexpected options %v", opts)
	}

	sim := core.Sims()[cfg.Sim](opts)
	if sim.Size() != (core.Size{W: 133, H: 100}) {
		t.Fatalf("sim size = %+v", sim.Size())
	}
}

func TestFireOptionsRoundTripThroughFromMap(t *testing.T) {
	opts := FireOptions{Width: 40, Height: 30, Seed: -9, Radius: 5, Matrix: 4, DitherPalette: 8}
	got := fire.FromMap(opts.Map())
	if got.Width != 40 || got.Height != 30 || got.Seed != -9 {
		t.Fatalf("canvas/seed not carried: %+v", got)
	}
	if got.Params.Radius != 5 || got.Params.MatrixSize != 4 || got.Params.DitherPalette != 8 {
		t.Fatalf("params not carried: %+v", got.Params)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for name, want := range cases {
		if got := ParseLevel(name); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLevel(t *testing.T) {
	cfg := NewConfig()
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("default level = %v", cfg.Level())
	}
	cfg.LogLevel = "debug"
	if cfg.Level() != slog.LevelDebug {
		t.Fatalf("debug level = %v", cfg.Level())
	}
	cfg.LogLevel = "nonsense"
	if cfg.Level() != slog.LevelInfo {
		t.Fatalf("fallback level = %v", cfg.Level())
	}
}

type frameless struct{}

func (frameless) Name() string { return "frameless" }
func (frameless) Size() core.Size { return core.Size{W: 1, H: 1} }
func (frameless) Reset(int64) {}
func (frameless) Step() {}
func (frameless) Cells() []uint8 { return []uint8{0} }

func TestSaveSnapshot(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	sim := core.Sims()["fire"](map[string]string{"w": "8", "h": "6"})
	sim.Step()
	path := filepath.Join(t.TempDir(), "snap.png")
	if err := SaveSnapshot(logger, sim, path); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	conf, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if conf.Width != 8 || conf.Height != 6 {
		t.Fatalf("snapshot is %dx%d", conf.Width, conf.Height)
	}

	if err := SaveSnapshot(logger, sim, ""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
	if err := SaveSnapshot(logger, frameless{}, path); err != nil {
		t.Fatalf("frameless sim should be skipped: %v", err)
	}

	bad := filepath.Join(t.TempDir(), "missing", "snap.png")
	if err := SaveSnapshot(logger, sim, bad); err == nil {
		t.Fatal("expected error for unwritable path")
	}
	if !strings.Contains(logs.String(), "could not save snapshot") {
		t.Fatalf("failure not logged: %s", logs.String())
	}
}
