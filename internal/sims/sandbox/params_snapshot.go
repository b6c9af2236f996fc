package sandbox

import (
	"strconv"

	"sandfall/internal/core"
)

type paramSpec struct {
	control  core.ParameterControl
	group    string
	getFloat func(*Params) float64
	setFloat func(*Params, float64)
	getInt   func(*Params) int
	setInt   func(*Params, int)
}

func probability(key, label, group string, get func(*Params) float64, set func(*Params, float64)) paramSpec {
	return paramSpec{
		control: core.ParameterControl{
			Key: key, Label: label, Type: core.ParamTypeFloat,
			Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
		group:    group,
		getFloat: get,
		setFloat: set,
	}
}

var paramOrder = []string{
	"fire_spread_chance",
	"fire_quench_chance",
	"fire_rise_chance",
	"fire_smoke_chance",
	"plant_grow_chance",
	"plant_branch_chance",
	"water_flow_distance",
	"brush_density",
}

var paramSpecs = map[string]paramSpec{
	"fire_spread_chance": probability("fire_spread_chance", "Fire spread chance", "Fire",
		func(p *Params) float64 { return p.FireSpreadChance },
		func(p *Params, v float64) { p.FireSpreadChance = v }),
	"fire_quench_chance": probability("fire_quench_chance", "Fire quench chance", "Fire",
		func(p *Params) float64 { return p.FireQuenchChance },
		func(p *Params, v float64) { p.FireQuenchChance = v }),
	"fire_rise_chance": probability("fire_rise_chance", "Fire rise chance", "Fire",
		func(p *Params) float64 { return p.FireRiseChance },
		func(p *Params, v float64) { p.FireRiseChance = v }),
	"fire_smoke_chance": probability("fire_smoke_chance", "Burnout smoke chance", "Fire",
		func(p *Params) float64 { return p.FireSmokeChance },
		func(p *Params, v float64) { p.FireSmokeChance = v }),
	"plant_grow_chance": probability("plant_grow_chance", "Plant grow chance", "Plant",
		func(p *Params) float64 { return p.PlantGrowChance },
		func(p *Params, v float64) { p.PlantGrowChance = v }),
	"plant_branch_chance": probability("plant_branch_chance", "Plant branch chance", "Plant",
		func(p *Params) float64 { return p.PlantBranchChance },
		func(p *Params, v float64) { p.PlantBranchChance = v }),
	"water_flow_distance": {
		control: core.ParameterControl{
			Key: "water_flow_distance", Label: "Water flow distance", Type: core.ParamTypeInt,
			Step: 1, Min: 1, Max: 8, HasMin: true, HasMax: true,
		},
		group:  "Water",
		getInt: func(p *Params) int { return p.WaterFlowDistance },
		setInt: func(p *Params, v int) { p.WaterFlowDistance = v },
	},
	"brush_density": probability("brush_density", "Brush density", "Brush",
		func(p *Params) float64 { return p.BrushDensity },
		func(p *Params, v float64) { p.BrushDensity = v }),
}

// Parameters returns the current tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			intParam("w", "Width", w.cfg.Width),
			intParam("h", "Height", w.cfg.Height),
			int64Param("seed", "Seed", w.cfg.Seed),
		},
	}}
	index := map[string]int{}
	for _, key := range paramOrder {
		spec := paramSpecs[key]
		i, ok := index[spec.group]
		if !ok {
			i = len(groups)
			index[spec.group] = i
			groups = append(groups, core.ParameterGroup{Name: spec.group})
		}
		var param core.Parameter
		if spec.control.Type == core.ParamTypeInt {
			param = intParam(key, spec.control.Label, spec.getInt(&w.cfg.Params))
		} else {
			param = floatParam(key, spec.control.Label, spec.getFloat(&w.cfg.Params))
		}
		groups[i].Params = append(groups[i].Params, param)
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the rule parameters that can be tuned live.
func (w *World) ParameterControls() []core.ParameterControl {
	controls := make([]core.ParameterControl, 0, len(paramOrder))
	for _, key := range paramOrder {
		controls = append(controls, paramSpecs[key].control)
	}
	return controls
}

// SetFloatParameter updates a probability, clamping it to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	spec, ok := paramSpecs[key]
	if !ok || spec.setFloat == nil {
		return false
	}
	spec.setFloat(&w.cfg.Params, spec.control.Clamp(value))
	w.engine.params = w.cfg.Params
	return true
}

// SetIntParameter updates an integer parameter, clamping it to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	spec, ok := paramSpecs[key]
	if !ok || spec.setInt == nil {
		return false
	}
	spec.setInt(&w.cfg.Params, int(spec.control.Clamp(float64(value))))
	w.engine.params = w.cfg.Params
	return true
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
