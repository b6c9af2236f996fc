package sandbox

import (
	"strconv"

	"sandfall/internal/core"
)

// Params holds the probabilities and distances used by the particle rules.
type Params struct {
	FireSpreadChance  float64
	FireQuenchChance  float64
	FireRiseChance    float64
	FireSmokeChance   float64
	PlantGrowChance   float64
	PlantBranchChance float64
	WaterFlowDistance int

	BrushDensity float64
}

// Config controls the sandbox dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	InitialScene bool

	Params Params
}

// DefaultParams returns the standard rule tuning.
func DefaultParams() Params {
	return Params{
		FireSpreadChance:  0.05,
		FireQuenchChance:  0.3,
		FireRiseChance:    0.3,
		FireSmokeChance:   0.5,
		PlantGrowChance:   0.02,
		PlantBranchChance: 0.3,
		WaterFlowDistance: 2,
		BrushDensity:      0.7,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        80,
		Height:       21,
		Seed:         42,
		InitialScene: true,
		Params:       DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["initial_scene"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.InitialScene = parsed
		}
	}
	for key, v := range cfg {
		spec, ok := paramSpecs[key]
		if !ok {
			continue
		}
		switch spec.control.Type {
		case core.ParamTypeInt:
			if parsed, err := strconv.Atoi(v); err == nil {
				spec.setInt(&c.Params, int(spec.control.Clamp(float64(parsed))))
			}
		default:
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				spec.setFloat(&c.Params, spec.control.Clamp(parsed))
			}
		}
	}
	return c
}
