// Package term draws the sandbox on a character terminal and drives it
// from keyboard and mouse events.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/core"
	"sandfall/internal/sims/sandbox"
)

// HUD is the status information shown under the grid.
type HUD struct {
	Selected sandbox.Type
	Brush    int
	TPS      int
	Tick     int
	Paused   bool
	Script   string

	ShowCursor bool
	CursorX    int
	CursorY    int

	Param string
}

// View paints a grid onto a tcell screen. It only reads the grid.
type View struct {
	screen  tcell.Screen
	flicker core.Source
}

// NewView returns a view drawing on screen. flicker picks color variants for
// fire and water and is independent of the simulation's random source.
func NewView(screen tcell.Screen, flicker core.Source) *View {
	return &View{screen: screen, flicker: flicker}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// StyleFor returns the glyph and style used for a cell of type t.
func (v *View) StyleFor(t sandbox.Type) (rune, tcell.Style) {
	if t == sandbox.TypeEmpty {
		return ' ', tcell.StyleDefault
	}
	return t.Glyph(), tcell.StyleDefault.Foreground(rgb(t.Shade(v.flicker.Float64())))
}

// Draw renders g and the HUD, then flushes the screen.
func (v *View) Draw(g *sandbox.Grid, hud HUD) {
	v.screen.Clear()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			t := sandbox.TypeEmpty
			if p, ok := g.Get(x, y); ok {
				t = p.Type
			}
			r, style := v.StyleFor(t)
			v.screen.SetContent(x, y, r, nil, style)
		}
	}

	if hud.ShowCursor && g.InBounds(hud.CursorX, hud.CursorY) {
		r, _, style, _ := v.screen.GetContent(hud.CursorX, hud.CursorY)
		if r == ' ' {
			r = '+'
		}
		v.screen.SetContent(hud.CursorX, hud.CursorY, r, nil, style.Reverse(true))
	}

	row := g.Height() + 1
	glyph, style := v.StyleFor(hud.Selected)
	if hud.Selected == sandbox.TypeEmpty {
		glyph = '·'
	}
	v.screen.SetContent(0, row, glyph, nil, style)
	v.text(2, row, statusLine(hud))
	if hud.Param != "" {
		v.text(0, row+1, hud.Param)
	}
	v.screen.Show()
}

func statusLine(hud HUD) string {
	state := ""
	if hud.Paused {
		state = " | PAUSED"
	}
	if hud.Script != "" {
		return fmt.Sprintf("%s | TPS: %d | Tick: %d%s | any key quits", hud.Script, hud.TPS, hud.Tick, state)
	}
	return fmt.Sprintf("%s | Brush: %d | TPS: %d | Tick: %d%s | [1-8] Select | [+/-] Brush | [Space] Spawn | [C] Clear | [P] Pause | [Q] Quit",
		hud.Selected, hud.Brush, hud.TPS, hud.Tick, state)
}

func (v *View) text(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}
