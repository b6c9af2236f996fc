//go:build ebiten

package app

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sandfall/internal/core"
	"sandfall/internal/input"
	"sandfall/internal/render"
	"sandfall/internal/scenario"
	"sandfall/internal/sims/sandbox"
	"sandfall/internal/ui"
)

const panelWidth = 240

var arrowKeys = map[ebiten.Key]input.Key{
	ebiten.KeyArrowUp:    input.KeyUp,
	ebiten.KeyArrowDown:  input.KeyDown,
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
}

// Game adapts a sandbox world to the ebiten.Game interface.
type Game struct {
	world   *sandbox.World
	player  *scenario.Player
	ctrl    *input.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	flicker *core.RNG

	scale  int
	seed   int64
	paused bool
	mouse  bool
	chars  []rune
}

// New constructs a Game for world. A non-nil player drives the world from a
// script and mouse painting is disabled.
func New(world *sandbox.World, player *scenario.Player, scale int, seed int64) *Game {
	size := world.Size()
	return &Game{
		world:   world,
		player:  player,
		ctrl:    input.NewController(size.W, size.H),
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(world, panelWidth),
		overlay: ui.NewOverlay(scale),
		flicker: core.NewRNG(seed),
		scale:   max(1, scale),
		seed:    seed,
	}
}

// Reset reinitializes the world with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	log.Printf("app: reset with seed %d", seed)
}

// Update handles per-frame input and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	for k, ik := range arrowKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.ctrl.HandleKey(ik)
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		if r == 'r' || r == 'R' {
			continue
		}
		g.ctrl.HandleRune(r)
	}

	size := g.world.Size()
	if t, ok := g.hud.Update(size.W * g.scale); ok {
		g.ctrl.Select(t)
	}
	mx, my := ebiten.CursorPosition()
	cx, cy := mx/g.scale, my/g.scale
	g.mouse = g.world.Grid().InBounds(cx, cy)
	if g.mouse && g.player == nil && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.ctrl.SpawnAt(cx, cy)
	}

	in := g.ctrl.Intent()
	if in.Quit {
		return ebiten.Termination
	}
	g.paused = in.Pause
	if g.player != nil {
		if !g.paused || in.Step {
			g.player.Advance(g.world)
			g.world.Step()
		}
		return nil
	}
	input.Apply(g.world, in)
	return nil
}

func (g *Game) shade(v uint8) (color.RGBA, bool) {
	t := sandbox.Type(v)
	if t != sandbox.TypeFire && t != sandbox.TypeWater {
		return color.RGBA{}, false
	}
	return t.Shade(g.flicker.Float64()), true
}

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world.Cells(), g.world.Palette(), g.shade, g.scale)
	if g.mouse && g.player == nil {
		mx, my := ebiten.CursorPosition()
		g.overlay.Draw(screen, mx/g.scale, my/g.scale, g.ctrl.Brush(), g.ctrl.Selected())
	}
	g.hud.Draw(screen, ui.Status{
		Selected: g.ctrl.Selected(),
		Brush:    g.ctrl.Brush(),
		Tick:     g.world.Ticks(),
		Paused:   g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + panelWidth, max(s.H*g.scale, g.hud.Height())
}
