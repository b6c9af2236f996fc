package sandbox

import "sandfall/internal/core"

// World wraps a Grid and its Engine behind the core.Sim contract so the
// frontends can drive and display it.
type World struct {
	cfg Config

	w, h int

	grid    *Grid
	engine  *Engine
	display *core.ByteGrid
	rng     *core.RNG
	ticks   int
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
func NewWithConfig(cfg Config) *World {
	rng := core.NewRNG(cfg.Seed)
	w := &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		grid:    NewGrid(cfg.Width, cfg.Height, rng),
		engine:  NewEngine(cfg.Params, rng),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		rng:     rng,
	}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sandbox" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the particle type of every cell in row-major order.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Grid exposes the particle grid.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Ticks returns the number of steps since the last reset.
func (w *World) Ticks() int { return w.ticks }

// Rand exposes the world's random source for callers that spawn on its behalf.
func (w *World) Rand() core.Source { return w.rng }

// Reset empties the grid and reseeds the random source. A zero seed keeps
// the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.grid.Clear()
	w.ticks = 0
	if w.cfg.InitialScene {
		w.buildInitialScene()
	}
	w.rebuildDisplay()
}

// Step advances the sandbox by one tick.
func (w *World) Step() {
	w.engine.Update(w.grid)
	w.ticks++
	w.rebuildDisplay()
}

// Spawn places a particle of type t at (x, y).
func (w *World) Spawn(x, y int, t Type) {
	w.grid.Spawn(x, y, t)
	w.display.Set(x, y, uint8(w.typeAt(x, y)))
}

// Clear empties the grid.
func (w *World) Clear() {
	w.grid.Clear()
	w.display.Clear()
}

// Census counts particles per type. TypeEmpty counts empty cells.
func (w *World) Census() map[Type]int {
	counts := w.grid.Count()
	out := make(map[Type]int, len(counts))
	for i, n := range counts {
		if n > 0 {
			out[Type(i)] = n
		}
	}
	return out
}

func (w *World) typeAt(x, y int) Type {
	p, ok := w.grid.Get(x, y)
	if !ok {
		return TypeEmpty
	}
	return p.Type
}

func (w *World) rebuildDisplay() {
	cells := w.display.Cells()
	for i, p := range w.grid.cells {
		if p == nil {
			cells[i] = uint8(TypeEmpty)
			continue
		}
		cells[i] = uint8(p.Type)
	}
}

// buildInitialScene lays out a stone basin with a heap of sand above a
// wooden plank.
func (w *World) buildInitialScene() {
	midX, midY := w.w/2, w.h/2
	floor := midY + 10
	if floor >= w.h {
		floor = w.h - 1
	}
	top := floor - 10

	for x := midX - 15; x <= midX+15; x++ {
		w.grid.Spawn(x, floor, TypeStone)
	}
	for y := top; y <= floor; y++ {
		w.grid.Spawn(midX-15, y, TypeStone)
		w.grid.Spawn(midX+15, y, TypeStone)
	}
	for i := 0; i < 50; i++ {
		x := midX - 10 + core.IntRange(w.rng, 0, 20)
		y := top - 5 + core.IntRange(w.rng, 0, 5)
		w.grid.Spawn(x, y, TypeSand)
	}
	for x := midX - 5; x <= midX+5; x++ {
		w.grid.Spawn(x, floor-1, TypeWood)
	}
}

func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
