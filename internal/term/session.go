package term

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/core"
	"sandfall/internal/input"
	"sandfall/internal/scenario"
	"sandfall/internal/sims/sandbox"
)

// Options configures a Session.
type Options struct {
	TPS int
	// Player switches the session into scripted mode: the script drives the
	// world and any key quits.
	Player *scenario.Player
	// Flicker drives color variation. Nil uses a fixed-seed RNG.
	Flicker core.Source
}

// Session runs a world on a terminal screen until the user quits or the
// context ends. The caller owns the screen's Init and Fini.
type Session struct {
	screen tcell.Screen
	world  *sandbox.World
	view   *View
	ctrl   *input.Controller
	step   *core.FixedStep
	player *scenario.Player

	paused   bool
	quit     bool
	paramIdx int
}

// NewSession wires a world to screen.
func NewSession(screen tcell.Screen, world *sandbox.World, opts Options) *Session {
	flicker := opts.Flicker
	if flicker == nil {
		flicker = core.NewRNG(1)
	}
	size := world.Size()
	return &Session{
		screen: screen,
		world:  world,
		view:   NewView(screen, flicker),
		ctrl:   input.NewController(size.W, size.H),
		step:   core.NewFixedStep(opts.TPS),
		player: opts.Player,
	}
}

// Run processes events and ticks until quit or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(s.step.Interval())
	defer ticker.Stop()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			log.Printf("session: stopped at tick %d", s.world.Ticks())
			return nil
		case ev := <-events:
			s.handle(ev)
		case <-ticker.C:
			if s.step.ShouldStep() {
				s.tick()
				s.draw()
			}
		}
		if s.quit {
			log.Printf("session: quit at tick %d", s.world.Ticks())
			return nil
		}
	}
}

func (s *Session) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		if s.player != nil {
			s.quit = true
			return
		}
		translate(s.ctrl, ev)
	case *tcell.EventMouse:
		if s.player != nil || ev.Buttons()&tcell.Button1 == 0 {
			return
		}
		x, y := ev.Position()
		if s.world.Grid().InBounds(x, y) {
			s.ctrl.SpawnAt(x, y)
		}
	}
}

// tick applies pending input and advances the world by at most one step.
func (s *Session) tick() {
	if s.player != nil {
		s.player.Advance(s.world)
		s.world.Step()
		return
	}

	in := s.ctrl.Intent()
	if in.Quit {
		s.quit = true
		return
	}
	s.paused = in.Pause
	if in.NextParam != 0 {
		n := len(s.world.ParameterControls())
		s.paramIdx = ((s.paramIdx+in.NextParam)%n + n) % n
	}
	if in.Tune != 0 {
		s.tune(in.Tune)
	}
	input.Apply(s.world, in)
}

func (s *Session) currentControl() core.ParameterControl {
	controls := s.world.ParameterControls()
	return controls[s.paramIdx%len(controls)]
}

func (s *Session) paramValue(key string) float64 {
	p, ok := s.world.Parameters().Lookup(key)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return 0
	}
	return v
}

func (s *Session) tune(dir int) {
	ctl := s.currentControl()
	next := ctl.Clamp(s.paramValue(ctl.Key) + float64(dir)*ctl.Step)
	if ctl.Type == core.ParamTypeInt {
		s.world.SetIntParameter(ctl.Key, int(math.Round(next)))
	} else {
		s.world.SetFloatParameter(ctl.Key, next)
	}
	log.Printf("session: %s = %s", ctl.Key, s.paramText(ctl))
}

func (s *Session) paramText(ctl core.ParameterControl) string {
	p, _ := s.world.Parameters().Lookup(ctl.Key)
	return p.Value
}

func (s *Session) draw() {
	hud := HUD{
		Selected: s.ctrl.Selected(),
		Brush:    s.ctrl.Brush(),
		TPS:      s.step.TPS(),
		Tick:     s.world.Ticks(),
		Paused:   s.paused,
	}
	if s.player != nil {
		hud.Script = fmt.Sprintf("%s frame %d", s.player.Name(), s.player.Frame())
	} else {
		hud.ShowCursor = true
		hud.CursorX, hud.CursorY = s.ctrl.Cursor()
		ctl := s.currentControl()
		hud.Param = fmt.Sprintf("[ ] %s: %s  [, .] tune", ctl.Label, s.paramText(ctl))
	}
	s.view.Draw(s.world.Grid(), hud)
}
