package sandbox

import "sandfall/internal/core"

// Engine advances a Grid by one tick per Update call.
type Engine struct {
	params Params
	rng    core.Source
}

// NewEngine returns an engine drawing every random decision from rng.
func NewEngine(params Params, rng core.Source) *Engine {
	return &Engine{params: params, rng: rng}
}

// Params returns the rule tuning in use.
func (e *Engine) Params() Params { return e.params }

// neighbor offsets scanned by fire, in order.
var mooreOffsets = [8][2]int{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Update runs one full pass over g. Rows are visited bottom to top so a
// falling particle lands in a row that was already processed; the column
// direction is picked at random per tick.
func (e *Engine) Update(g *Grid) {
	g.ResetUpdated()

	startX, endX, stepX := 0, g.w, 1
	if e.rng.Float64() >= 0.5 {
		startX, endX, stepX = g.w-1, -1, -1
	}

	for y := g.h - 1; y >= 0; y-- {
		for x := startX; x != endX; x += stepX {
			p := g.cells[y*g.w+x]
			if p == nil || p.Updated {
				continue
			}
			p.Updated = true

			switch p.Type {
			case TypeSand:
				e.updateSand(g, x, y)
			case TypeWater:
				e.updateWater(g, x, y)
			case TypeFire:
				e.updateFire(g, x, y, p)
			case TypeSmoke:
				e.updateSmoke(g, x, y, p)
			case TypePlant:
				e.updatePlant(g, x, y)
			}
		}
	}
}

// canSink reports whether sand may move into (x, y).
func canSink(g *Grid, x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	p := g.at(x, y)
	return p == nil || p.Type == TypeWater
}

func (e *Engine) updateSand(g *Grid, x, y int) {
	if canSink(g, x, y+1) {
		g.Swap(x, y, x, y+1)
		return
	}
	dir := core.Bias(e.rng)
	if canSink(g, x+dir, y+1) {
		g.Swap(x, y, x+dir, y+1)
		return
	}
	if canSink(g, x-dir, y+1) {
		g.Swap(x, y, x-dir, y+1)
	}
}

func (e *Engine) updateWater(g *Grid, x, y int) {
	if g.IsEmpty(x, y+1) {
		g.Swap(x, y, x, y+1)
		return
	}
	dir := core.Bias(e.rng)
	if g.IsEmpty(x+dir, y+1) {
		g.Swap(x, y, x+dir, y+1)
		return
	}
	if g.IsEmpty(x-dir, y+1) {
		g.Swap(x, y, x-dir, y+1)
		return
	}

	reach := 1 + core.IntRange(e.rng, 0, e.params.WaterFlowDistance)
	for _, side := range [2]int{dir, -dir} {
		for d := 1; d <= reach; d++ {
			if g.IsEmpty(x+side*d, y) {
				g.Swap(x, y, x+side*d, y)
				return
			}
		}
	}
}

func (e *Engine) updateFire(g *Grid, x, y int, p *Particle) {
	if p.Life.tick() {
		if core.Chance(e.rng, e.params.FireSmokeChance) {
			g.Set(x, y, NewParticle(TypeSmoke, e.rng))
		} else {
			g.Set(x, y, nil)
		}
		return
	}

	for _, off := range mooreOffsets {
		nx, ny := x+off[0], y+off[1]
		if g.IsType(nx, ny, TypeWood) && core.Chance(e.rng, e.params.FireSpreadChance) {
			g.Set(nx, ny, NewParticle(TypeFire, e.rng))
		}
		if g.IsType(nx, ny, TypeWater) && core.Chance(e.rng, e.params.FireQuenchChance) {
			g.Set(nx, ny, NewParticle(TypeSmoke, e.rng))
			g.Set(x, y, nil)
			return
		}
	}

	if core.Chance(e.rng, e.params.FireRiseChance) && g.IsEmpty(x, y-1) {
		g.Swap(x, y, x, y-1)
	}
}

func (e *Engine) updateSmoke(g *Grid, x, y int, p *Particle) {
	if p.Life.tick() {
		g.Set(x, y, nil)
		return
	}

	dir := core.Bias(e.rng)
	switch {
	case g.IsEmpty(x, y-1):
		g.Swap(x, y, x, y-1)
	case g.IsEmpty(x+dir, y-1):
		g.Swap(x, y, x+dir, y-1)
	case g.IsEmpty(x-dir, y-1):
		g.Swap(x, y, x-dir, y-1)
	case g.IsEmpty(x+dir, y):
		g.Swap(x, y, x+dir, y)
	}
}

func (e *Engine) updatePlant(g *Grid, x, y int) {
	wet := g.IsType(x-1, y, TypeWater) ||
		g.IsType(x+1, y, TypeWater) ||
		g.IsType(x, y-1, TypeWater) ||
		g.IsType(x, y+1, TypeWater)
	if !wet || !core.Chance(e.rng, e.params.PlantGrowChance) {
		return
	}

	if g.IsEmpty(x, y-1) {
		g.Spawn(x, y-1, TypePlant)
	}
	dir := core.Bias(e.rng)
	if core.Chance(e.rng, e.params.PlantBranchChance) && g.IsEmpty(x+dir, y-1) {
		g.Spawn(x+dir, y-1, TypePlant)
	}
}
