package ui

import (
	"fmt"

	"fire-effect/internal/core"
)

// formatSnapshot lays the snapshot out as one header line per group
// followed by "label: value" rows.
func formatSnapshot(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	if len(snap.Groups) == 0 {
		return append(lines, "no parameters")
	}
	for _, g := range snap.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
