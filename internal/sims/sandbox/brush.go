package sandbox

import (
	"image"

	"sandfall/internal/core"
)

const (
	// MinBrush and MaxBrush bound the brush size.
	MinBrush = 1
	MaxBrush = 10
)

// BrushOffsets lists the cells a brush of the given size covers, relative to
// its center. The shape is a disc with radius size/2, widened slightly so
// small brushes are not diamonds.
func BrushOffsets(size int) []image.Point {
	size = max(MinBrush, min(MaxBrush, size))
	half := size / 2
	limit := half*half + half
	var out []image.Point
	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			if dx*dx+dy*dy <= limit {
				out = append(out, image.Pt(dx, dy))
			}
		}
	}
	return out
}

// Paint stamps a brush of type t centered at (cx, cy). Each covered cell is
// filled with probability Params.BrushDensity, which gives freshly painted
// material a loose texture. TypeEmpty erases.
func (w *World) Paint(cx, cy int, t Type, size int) {
	for _, off := range BrushOffsets(size) {
		if !core.Chance(w.rng, w.cfg.Params.BrushDensity) {
			continue
		}
		w.Spawn(cx+off.X, cy+off.Y, t)
	}
}
