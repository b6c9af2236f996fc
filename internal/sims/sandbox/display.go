package sandbox

import (
	"image/color"
	"strings"
)

type appearance struct {
	name  string
	glyph rune
	color color.RGBA
}

var appearances = [typeCount]appearance{
	TypeEmpty: {name: "Eraser", glyph: ' ', color: color.RGBA{R: 0, G: 0, B: 0, A: 255}},
	TypeSand:  {name: "Sand", glyph: '░', color: color.RGBA{R: 238, G: 214, B: 96, A: 255}},
	TypeWater: {name: "Water", glyph: '▒', color: color.RGBA{R: 70, G: 110, B: 240, A: 255}},
	TypeStone: {name: "Stone", glyph: '█', color: color.RGBA{R: 120, G: 120, B: 120, A: 255}},
	TypeFire:  {name: "Fire", glyph: '▓', color: color.RGBA{R: 240, G: 60, B: 40, A: 255}},
	TypeSmoke: {name: "Smoke", glyph: '░', color: color.RGBA{R: 190, G: 190, B: 190, A: 255}},
	TypeWood:  {name: "Wood", glyph: '▓', color: color.RGBA{R: 150, G: 100, B: 40, A: 255}},
	TypePlant: {name: "Plant", glyph: '♣', color: color.RGBA{R: 80, G: 220, B: 90, A: 255}},
}

var (
	fireFlicker  = color.RGBA{R: 250, G: 170, B: 40, A: 255}
	waterFlicker = color.RGBA{R: 80, G: 210, B: 230, A: 255}
)

// String returns the display name. The eraser is reported for TypeEmpty.
func (t Type) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return appearances[t].name
}

// Glyph returns the character drawn for t.
func (t Type) Glyph() rune {
	if !t.Valid() {
		return '?'
	}
	return appearances[t].glyph
}

// Color returns the base color for t.
func (t Type) Color() color.RGBA {
	if !t.Valid() {
		return color.RGBA{A: 255}
	}
	return appearances[t].color
}

// Shade returns the color to draw for t given a uniform roll in [0, 1).
// Fire flickers between red and orange and water occasionally glints cyan.
func (t Type) Shade(roll float64) color.RGBA {
	switch t {
	case TypeFire:
		if roll < 0.5 {
			return fireFlicker
		}
	case TypeWater:
		if roll < 0.1 {
			return waterFlicker
		}
	}
	return t.Color()
}

// ParseType maps a material name to its Type, ignoring case. Both "empty"
// and "eraser" name TypeEmpty.
func ParseType(name string) (Type, bool) {
	if strings.EqualFold(name, "empty") {
		return TypeEmpty, true
	}
	for t := TypeEmpty; t < typeCount; t++ {
		if strings.EqualFold(name, appearances[t].name) {
			return t, true
		}
	}
	return TypeEmpty, false
}

var sandboxPalette = buildPalette()

// Palette exposes the color palette indexed by the values returned from Cells.
func (w *World) Palette() []color.RGBA {
	return sandboxPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, typeCount)
	for i := range palette {
		palette[i] = Type(i).Color()
	}
	return palette
}
