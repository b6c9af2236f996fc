package ui

import (
	"math"
	"strconv"

	"sandfall/internal/core"
)

// Control is a live-tunable parameter together with its last known value.
type Control struct {
	core.ParameterControl

	value    float64
	hasValue bool
}

// NewControls builds one Control per parameter the sim exposes. Sims without
// controls yield nil.
func NewControls(sim any) []Control {
	provider, ok := sim.(core.ParameterControlsProvider)
	if !ok {
		return nil
	}
	defs := provider.ParameterControls()
	out := make([]Control, len(defs))
	for i, def := range defs {
		out[i] = Control{ParameterControl: def}
	}
	return out
}

// Refresh reloads control values from a parameter snapshot.
func Refresh(controls []Control, snap core.ParameterSnapshot) {
	for i := range controls {
		c := &controls[i]
		c.hasValue = false
		p, ok := snap.Lookup(c.Key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(p.Value, 64)
		if err != nil {
			continue
		}
		c.value = v
		c.hasValue = true
	}
}

// Value returns the current value and whether one is known.
func (c Control) Value() (float64, bool) { return c.value, c.hasValue }

func (c Control) step() float64 {
	if c.Type == core.ParamTypeInt {
		return math.Max(1, math.Round(c.Step))
	}
	if c.Step <= 0 {
		return 0.05
	}
	return c.Step
}

// Target returns the clamped value one step in direction dir and whether it
// differs from the current value.
func (c Control) Target(dir int) (float64, bool) {
	if !c.hasValue || dir == 0 {
		return c.value, false
	}
	next := c.Clamp(c.value + float64(dir)*c.step())
	if c.Type == core.ParamTypeInt {
		next = math.Round(next)
	}
	return next, math.Abs(next-c.value) > 1e-9
}

// Adjust moves the control one step through the sim's setters.
func (c *Control) Adjust(sim any, dir int) bool {
	next, ok := c.Target(dir)
	if !ok {
		return false
	}
	switch c.Type {
	case core.ParamTypeInt:
		setter, ok := sim.(core.IntParameterSetter)
		if !ok || !setter.SetIntParameter(c.Key, int(next)) {
			return false
		}
	default:
		setter, ok := sim.(core.FloatParameterSetter)
		if !ok || !setter.SetFloatParameter(c.Key, next) {
			return false
		}
	}
	c.value = next
	return true
}

// Text formats the value with a precision matching the step size.
func (c Control) Text() string {
	if !c.hasValue {
		return "--"
	}
	if c.Type == core.ParamTypeInt {
		return strconv.Itoa(int(c.value))
	}
	precision := 1
	switch step := c.step(); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(c.value, 'f', precision, 64)
}
