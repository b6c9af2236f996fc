// Package input turns key presses into an Intent the driver applies between
// ticks. It knows nothing about the terminal or window library delivering
// the keys.
package input

import "sandfall/internal/sims/sandbox"

// Key names the non-rune keys the controller reacts to.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyQuit
)

const (
	defaultBrush = 3
	cursorStep   = 2
)

var materialKeys = map[rune]sandbox.Type{
	'1': sandbox.TypeSand,
	'2': sandbox.TypeWater,
	'3': sandbox.TypeStone,
	'4': sandbox.TypeFire,
	'5': sandbox.TypeSmoke,
	'6': sandbox.TypeWood,
	'7': sandbox.TypePlant,
	'8': sandbox.TypeEmpty,
}

// Intent is the coalesced input since the previous tick.
type Intent struct {
	Selected sandbox.Type
	Brush    int

	Spawning bool
	SpawnX   int
	SpawnY   int

	Clear bool
	Quit  bool
	Pause bool
	Step  bool

	// Tune is -1, 0 or +1 to nudge the selected parameter.
	Tune      int
	NextParam int
}

// Controller tracks the cursor and accumulates one-shot requests.
type Controller struct {
	w, h    int
	cursorX int
	cursorY int
	state   Intent
}

// NewController returns a controller for a w×h world with the cursor
// centered, sand selected and a brush of 3.
func NewController(w, h int) *Controller {
	return &Controller{
		w:       w,
		h:       h,
		cursorX: w / 2,
		cursorY: h / 2,
		state:   Intent{Selected: sandbox.TypeSand, Brush: defaultBrush},
	}
}

// Cursor returns the current cursor position.
func (c *Controller) Cursor() (int, int) { return c.cursorX, c.cursorY }

// Selected returns the material that will be spawned.
func (c *Controller) Selected() sandbox.Type { return c.state.Selected }

// Brush returns the current brush size.
func (c *Controller) Brush() int { return c.state.Brush }

// Select picks the material to spawn. Invalid types are ignored.
func (c *Controller) Select(t sandbox.Type) {
	if t.Valid() {
		c.state.Selected = t
	}
}

// HandleRune reacts to a printable key.
func (c *Controller) HandleRune(r rune) {
	if t, ok := materialKeys[r]; ok {
		c.state.Selected = t
		return
	}
	switch r {
	case '+', '=':
		c.state.Brush = min(sandbox.MaxBrush, c.state.Brush+1)
	case '-', '_':
		c.state.Brush = max(sandbox.MinBrush, c.state.Brush-1)
	case 'w', 'W':
		c.HandleKey(KeyUp)
	case 's', 'S':
		c.HandleKey(KeyDown)
	case 'a', 'A':
		c.HandleKey(KeyLeft)
	case 'd', 'D':
		c.HandleKey(KeyRight)
	case ' ':
		c.HandleKey(KeySpace)
	case 'c', 'C':
		c.state.Clear = true
	case 'p', 'P':
		c.state.Pause = !c.state.Pause
	case 'n', 'N':
		c.state.Step = true
	case 'q', 'Q':
		c.state.Quit = true
	case ']':
		c.state.NextParam++
	case '[':
		c.state.NextParam--
	case '.', '>':
		c.state.Tune++
	case ',', '<':
		c.state.Tune--
	}
}

// HandleKey reacts to a named key.
func (c *Controller) HandleKey(k Key) {
	switch k {
	case KeyUp:
		c.cursorY = max(0, c.cursorY-cursorStep)
	case KeyDown:
		c.cursorY = min(c.h-1, c.cursorY+cursorStep)
	case KeyLeft:
		c.cursorX = max(0, c.cursorX-cursorStep)
	case KeyRight:
		c.cursorX = min(c.w-1, c.cursorX+cursorStep)
	case KeySpace:
		c.SpawnAt(c.cursorX, c.cursorY)
	case KeyQuit:
		c.state.Quit = true
	}
}

// SpawnAt requests a brush stroke at (x, y) and moves the cursor there.
// Pointer-driven frontends call it directly.
func (c *Controller) SpawnAt(x, y int) {
	c.cursorX = clamp(x, 0, c.w-1)
	c.cursorY = clamp(y, 0, c.h-1)
	c.state.Spawning = true
	c.state.SpawnX = c.cursorX
	c.state.SpawnY = c.cursorY
}

// Intent returns the accumulated input and resets the one-shot requests.
// Selection, brush size and pause carry over.
func (c *Controller) Intent() Intent {
	out := c.state
	c.state.Spawning = false
	c.state.Clear = false
	c.state.Step = false
	c.state.Tune = 0
	c.state.NextParam = 0
	return out
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(hi, v))
}

// Target is the world an Intent acts on.
type Target interface {
	Clear()
	Paint(cx, cy int, t sandbox.Type, size int)
	Step()
}

// Apply performs the clear and spawn requests of in, then steps t unless
// paused. A single-step request steps even while paused. It reports whether
// t advanced. Quit is left to the caller.
func Apply(t Target, in Intent) bool {
	if in.Clear {
		t.Clear()
	}
	if in.Spawning {
		t.Paint(in.SpawnX, in.SpawnY, in.Selected, in.Brush)
	}
	if in.Pause && !in.Step {
		return false
	}
	t.Step()
	return true
}
