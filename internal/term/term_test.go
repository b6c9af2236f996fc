package term

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/scenario"
	"sandfall/internal/sims/sandbox"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func emptyWorld() *sandbox.World {
	cfg := sandbox.DefaultConfig()
	cfg.Width, cfg.Height = 20, 6
	cfg.InitialScene = false
	return sandbox.NewWithConfig(cfg)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestViewDrawsGlyphsAndStatus(t *testing.T) {
	screen := newScreen(t)
	world := emptyWorld()
	world.Spawn(2, 3, sandbox.TypeSand)
	world.Spawn(5, 5, sandbox.TypeStone)

	view := NewView(screen, world.Rand())
	view.Draw(world.Grid(), HUD{Selected: sandbox.TypeWater, Brush: 3, TPS: 30, Tick: 7})

	if r, _, _, _ := screen.GetContent(2, 3); r != sandbox.TypeSand.Glyph() {
		t.Fatalf("sand cell drew %q", r)
	}
	if r, _, _, _ := screen.GetContent(5, 5); r != sandbox.TypeStone.Glyph() {
		t.Fatalf("stone cell drew %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Fatalf("empty cell drew %q", r)
	}

	row := world.Size().H + 1
	if r, _, _, _ := screen.GetContent(0, row); r != sandbox.TypeWater.Glyph() {
		t.Fatalf("status swatch drew %q", r)
	}
	want := "Water | Brush: 3 | TPS: 30 | Tick: 7"
	for i, w := range want {
		if r, _, _, _ := screen.GetContent(2+i, row); r != w {
			t.Fatalf("status col %d: got %q want %q", i, r, w)
		}
	}
}

func TestViewCursorIsReversed(t *testing.T) {
	screen := newScreen(t)
	world := emptyWorld()
	view := NewView(screen, world.Rand())
	view.Draw(world.Grid(), HUD{Selected: sandbox.TypeSand, ShowCursor: true, CursorX: 4, CursorY: 2})

	r, _, style, _ := screen.GetContent(4, 2)
	if r != '+' {
		t.Fatalf("cursor on empty cell drew %q", r)
	}
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Fatalf("cursor cell is not reversed")
	}
}

func TestTickPaintsSelectedMaterial(t *testing.T) {
	world := emptyWorld()
	world.SetFloatParameter("brush_density", 1)
	s := NewSession(newScreen(t), world, Options{TPS: 30})

	s.handle(key('2'))
	s.handle(key(' '))
	s.tick()

	if got := world.Census()[sandbox.TypeWater]; got != 9 {
		t.Fatalf("expected a full 3x3 water stamp, got %d cells", got)
	}
	if world.Ticks() != 1 {
		t.Fatalf("expected one step, got %d", world.Ticks())
	}

	s.handle(key('c'))
	s.tick()
	if got := world.Census()[sandbox.TypeWater]; got != 0 {
		t.Fatalf("clear left %d water cells", got)
	}
}

func TestPauseAndSingleStep(t *testing.T) {
	world := emptyWorld()
	s := NewSession(newScreen(t), world, Options{TPS: 30})

	s.handle(key('p'))
	s.tick()
	s.tick()
	if world.Ticks() != 0 {
		t.Fatalf("paused session stepped %d times", world.Ticks())
	}
	s.handle(key('n'))
	s.tick()
	if world.Ticks() != 1 {
		t.Fatalf("single step gave %d ticks", world.Ticks())
	}
	s.handle(key('p'))
	s.tick()
	if world.Ticks() != 2 {
		t.Fatalf("resumed session gave %d ticks", world.Ticks())
	}
}

func TestTuneSelectedParameter(t *testing.T) {
	world := emptyWorld()
	s := NewSession(newScreen(t), world, Options{TPS: 30})

	// Wrap backwards from the first control to brush density.
	s.handle(key('['))
	s.handle(key(','))
	s.tick()
	if got := world.Config().Params.BrushDensity; math.Abs(got-0.69) > 1e-9 {
		t.Fatalf("brush density after tune: %v", got)
	}

	s.handle(key('['))
	for range 20 {
		s.handle(key('>'))
	}
	s.tick()
	if got := world.Config().Params.WaterFlowDistance; got != 8 {
		t.Fatalf("water flow distance after tune: %d", got)
	}
}

func TestMouseClickSpawns(t *testing.T) {
	world := emptyWorld()
	world.SetFloatParameter("brush_density", 1)
	s := NewSession(newScreen(t), world, Options{TPS: 30})
	s.handle(key('3'))
	s.handle(key('-'))
	s.handle(key('-'))
	s.handle(tcell.NewEventMouse(7, 4, tcell.Button1, tcell.ModNone))
	s.tick()

	if p, ok := world.Grid().Get(7, 4); !ok || p.Type != sandbox.TypeStone {
		t.Fatalf("expected stone under the click, got %+v %v", p, ok)
	}
	s.handle(tcell.NewEventMouse(70, 20, tcell.Button1, tcell.ModNone))
	if in := s.ctrl.Intent(); in.Spawning {
		t.Fatalf("click outside the grid requested a spawn")
	}
}

func runSession(t *testing.T, s *Session, ctx context.Context) {
	t.Helper()
	errc := make(chan error, 1)
	go func() { errc <- s.Run(ctx) }()
	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("session did not stop")
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := newScreen(t)
	world := emptyWorld()
	s := NewSession(screen, world, Options{TPS: 60})
	if err := screen.PostEvent(key('q')); err != nil {
		t.Fatalf("post: %v", err)
	}
	runSession(t, s, context.Background())
}

func TestRunStopsOnCancel(t *testing.T) {
	s := NewSession(newScreen(t), emptyWorld(), Options{TPS: 60})
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	runSession(t, s, ctx)
}

func TestScriptedSessionAnyKeyQuits(t *testing.T) {
	script, err := scenario.Builtin("demo")
	if err != nil {
		t.Fatalf("builtin: %v", err)
	}
	screen := newScreen(t)
	world := emptyWorld()
	player := scenario.NewPlayer(script, world.Rand())
	s := NewSession(screen, world, Options{TPS: 60, Player: player})

	s.tick()
	if player.Frame() != 1 || world.Ticks() != 1 {
		t.Fatalf("scripted tick: frame %d ticks %d", player.Frame(), world.Ticks())
	}
	if err := screen.PostEvent(key('x')); err != nil {
		t.Fatalf("post: %v", err)
	}
	runSession(t, s, context.Background())
}
