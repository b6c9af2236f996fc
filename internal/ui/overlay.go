//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"sandfall/internal/sims/sandbox"
)

// Overlay previews the brush footprint under the mouse.
type Overlay struct {
	scale int
	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for a view drawn at scale.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: max(1, scale)}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw outlines the cells a brush of size would touch around cell (cx, cy),
// tinted with the selected material.
func (o *Overlay) Draw(screen *ebiten.Image, cx, cy, size int, t sandbox.Type) {
	tint := t.Color()
	tint.A = 90
	if t == sandbox.TypeEmpty {
		tint = color.RGBA{R: 255, G: 255, B: 255, A: 60}
	}
	s := float64(o.scale)
	for _, off := range sandbox.BrushOffsets(size) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(float64(cx+off.X)*s, float64(cy+off.Y)*s)
		op.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(o.pixel, op)
	}
}
