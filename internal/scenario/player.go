package scenario

import (
	"math"
	"sort"

	"github.com/aquilax/go-perlin"

	"sandfall/internal/core"
	"sandfall/internal/sims/sandbox"
)

// Target is the world a script edits.
type Target interface {
	Spawn(x, y int, t sandbox.Type)
	Clear()
	Size() core.Size
}

type event struct {
	frame  int
	action int
}

// Player replays a Script one frame at a time.
type Player struct {
	script Script
	events []event
	next   int
	frame  int
	rng    core.Source
}

// NewPlayer schedules every action of s. Rain actions expand into one event
// per shot.
func NewPlayer(s Script, rng core.Source) *Player {
	p := &Player{script: s, rng: rng}
	for i, a := range s.Actions {
		if a.Op != OpRain {
			p.events = append(p.events, event{frame: a.Frame, action: i})
			continue
		}
		repeat := a.Repeat
		if repeat == 0 {
			repeat = 1
		}
		for shot := 0; shot < repeat; shot++ {
			p.events = append(p.events, event{frame: a.Frame + shot*a.Every, action: i})
		}
	}
	sort.SliceStable(p.events, func(i, j int) bool {
		return p.events[i].frame < p.events[j].frame
	})
	return p
}

// Name returns the script name.
func (p *Player) Name() string { return p.script.Name }

// Frame returns the frame the next Advance will play.
func (p *Player) Frame() int { return p.frame }

// Done reports whether a non-looping script has played every action.
func (p *Player) Done() bool {
	return p.script.LoopAt == 0 && p.next >= len(p.events)
}

// Advance applies every action due at the current frame and moves to the
// next frame. Reaching LoopAt clears the target and restarts the script.
func (p *Player) Advance(t Target) {
	if p.script.LoopAt > 0 && p.frame >= p.script.LoopAt {
		t.Clear()
		p.frame = 0
		p.next = 0
	}
	for p.next < len(p.events) && p.events[p.next].frame <= p.frame {
		p.apply(t, &p.script.Actions[p.events[p.next].action])
		p.next++
	}
	p.frame++
}

func (p *Player) material(a *Action) sandbox.Type {
	switch len(a.palette) {
	case 0:
		return sandbox.TypeEmpty
	case 1:
		return a.palette[0]
	}
	return a.palette[core.IntRange(p.rng, 0, len(a.palette))]
}

func (p *Player) apply(t Target, a *Action) {
	size := t.Size()
	x, y := a.X.Resolve(size.W), a.Y.Resolve(size.H)
	x2, y2 := a.X2.Resolve(size.W), a.Y2.Resolve(size.H)

	switch a.Op {
	case OpClear:
		t.Clear()
	case OpSpawn:
		t.Spawn(x, y, p.material(a))
	case OpLine:
		step := a.Step
		if step <= 0 {
			step = 1
		}
		i := 0
		walkLine(x, y, x2, y2, func(cx, cy int) {
			if i%step == 0 {
				t.Spawn(cx, cy, p.material(a))
			}
			i++
		})
	case OpRect, OpFill:
		x0, x1 := order(x, x2)
		y0, y1 := order(y, y2)
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				edge := cx == x0 || cx == x1 || cy == y0 || cy == y1
				if a.Op == OpFill || edge {
					t.Spawn(cx, cy, p.material(a))
				}
			}
		}
	case OpRain:
		x0, x1 := order(x, x2)
		count := a.Count
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			t.Spawn(core.IntRange(p.rng, x0, x1+1), y, p.material(a))
		}
	case OpTerrain:
		p.terrain(t, a, x, x2, y)
	}
}

// terrain raises a noisy ridge whose base sits on row base, filling every
// column in [x0, x1] from the ridge down to the base.
func (p *Player) terrain(t Target, a *Action, x0, x1, base int) {
	x0, x1 = order(x0, x1)
	amp := a.Amplitude
	if amp <= 0 {
		amp = 4
	}
	scale := a.Scale
	if scale <= 0 {
		scale = 0.08
	}
	seed := a.Seed
	if seed == 0 {
		seed = int64(p.rng.Float64() * math.MaxInt32)
	}
	noise := perlin.NewPerlin(2, 2, 3, seed)
	for x := x0; x <= x1; x++ {
		n := (noise.Noise1D(float64(x)*scale) + 1) / 2
		if n < 0 {
			n = 0
		}
		if n > 1 {
			n = 1
		}
		top := base - int(math.Round(n*float64(amp)))
		for y := top; y <= base; y++ {
			t.Spawn(x, y, p.material(a))
		}
	}
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// walkLine visits every cell on the Bresenham line from (x0, y0) to
// (x1, y1), endpoints included.
func walkLine(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
