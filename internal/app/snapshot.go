package app

import (
	"log/slog"

	"fire-effect/internal/core"
	"fire-effect/internal/render"
)

// SaveSnapshot writes the sim's final frame to path. Failures are logged and
// returned; an empty path or a sim without frames is a no-op.
func SaveSnapshot(logger *slog.Logger, sim core.Sim, path string) error {
	if path == "" {
		return nil
	}
	framer, ok := sim.(core.Framer)
	if !ok {
		logger.Warn("sim does not render frames, skipping snapshot", "sim", sim.Name())
		return nil
	}
	if err := render.SavePNG(path, framer.Frame()); err != nil {
		logger.Error("could not save snapshot", "path", path, "error", err)
		return err
	}
	logger.Info("snapshot saved", "path", path)
	return nil
}
