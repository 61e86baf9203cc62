package fire

import (
	"strconv"

	"fire-effect/internal/core"
)

// Parameters publishes the current configuration and live counters.
func (f *Fire) Parameters() core.ParameterSnapshot {
	p := f.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				intParam("w", "Width", f.grid.W),
				intParam("h", "Height", f.grid.H),
				int64Param("seed", "Seed", f.cfg.Seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				intParam("radius", "Radius", p.Radius),
				intParam("sources", "Sources", f.sources.Len()),
				intParam("pointer_x", "Pointer X", f.pointer.X),
				intParam("pointer_y", "Pointer Y", f.pointer.Y),
				boolParam("animate", "Animate", f.animate),
			},
		},
		{
			Name: "Dither",
			Params: []core.Parameter{
				floatParam("depth", "Depth", f.ditherer.Depth()),
				intParam("matrix", "Matrix", f.ditherer.Map().Size()),
				intParam("dither_palette", "Palette", len(f.ditherer.Target())),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
