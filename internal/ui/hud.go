//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"sandfall/internal/sims/sandbox"
)

var (
	panelBg     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	textBright  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	textDim     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBg    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	selectedRim = color.RGBA{R: 250, G: 250, B: 250, A: 255}
)

// Status is the per-frame state shown above the parameter controls.
type Status struct {
	Selected sandbox.Type
	Brush    int
	Tick     int
	Paused   bool
}

// HUD renders the material picker and parameter panel to the right of the
// sandbox view.
type HUD struct {
	world    *sandbox.World
	layout   Layout
	controls []Control
	offsetX  int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for world with the given panel width.
func NewHUD(world *sandbox.World, width int) *HUD {
	h := &HUD{world: world, controls: NewControls(world)}
	h.layout = NewLayout(width, len(sandbox.Types), len(h.controls))
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Height is the minimum window height that shows the whole panel.
func (h *HUD) Height() int { return h.layout.Height() }

// Update refreshes control values and handles clicks on the panel. It
// reports a material the user picked, if any.
func (h *HUD) Update(offsetX int) (sandbox.Type, bool) {
	h.offsetX = offsetX
	Refresh(h.controls, h.world.Parameters())
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return sandbox.TypeEmpty, false
	}
	mx, my := ebiten.CursorPosition()
	if mx < offsetX {
		return sandbox.TypeEmpty, false
	}
	hit := h.layout.Hit(mx-offsetX, my)
	switch hit.Kind {
	case HitSwatch:
		return sandbox.Types[hit.Index], true
	case HitControl:
		h.controls[hit.Index].Adjust(h.world, hit.Dir)
	}
	return sandbox.TypeEmpty, false
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, status Status) {
	height := max(h.layout.Height(), screen.Bounds().Dy())
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.layout.Width, height)
	}
	h.panel.Fill(panelBg)

	face := basicfont.Face7x13
	text.Draw(h.panel, "Sandbox", face, panelPadding, panelPadding+headerBaseline, textBright)

	for i, t := range sandbox.Types {
		r := h.layout.Swatches[i]
		if t == status.Selected {
			h.fill(r.Inset(-2), selectedRim)
		}
		h.fill(r, t.Color())
		if t == sandbox.TypeEmpty {
			text.Draw(h.panel, "x", face, r.Min.X+9, r.Min.Y+16, textDim)
		}
	}

	y := h.layout.StatusTop + statusSpacing - 4
	state := "running"
	if status.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  brush %d", status.Selected, status.Brush),
		fmt.Sprintf("tick %d  %s", status.Tick, state),
		"1-8 pick  +/- brush  C clear",
	}
	for _, line := range lines {
		text.Draw(h.panel, line, face, panelPadding, y, textDim)
		y += statusSpacing
	}

	for i := range h.controls {
		c := h.controls[i]
		top := h.layout.ControlTop[i]
		text.Draw(h.panel, c.Label, face, panelPadding, top+labelBaseline, textBright)

		value := c.Text()
		width := text.BoundString(face, value).Dx()
		minus, plus := h.layout.Minus[i], h.layout.Plus[i]
		text.Draw(h.panel, value, face, minus.Min.X-buttonGap-width, top+labelBaseline, textBright)

		_, canDown := c.Target(-1)
		_, canUp := c.Target(1)
		h.button(minus, "-", canDown)
		h.button(plus, "+", canUp)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) fill(r image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) button(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBg, textBright
	if !enabled {
		bg, fg = buttonOff, textDim
	}
	h.fill(r, bg)
	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
