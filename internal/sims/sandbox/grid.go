package sandbox

import "sandfall/internal/core"

// Grid is a fixed-size store of optional particles. A nil cell is empty.
// Every accessor tolerates out-of-range coordinates: reads report nothing
// and writes are dropped.
type Grid struct {
	w, h  int
	cells []*Particle
	rng   core.Source
}

// NewGrid allocates an empty grid. rng rolls lifetimes for spawned particles.
func NewGrid(w, h int, rng core.Source) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{w: w, h: h, cells: make([]*Particle, w*h), rng: rng}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

func (g *Grid) at(x, y int) *Particle {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.cells[y*g.w+x]
}

// Get returns a copy of the particle at (x, y).
func (g *Grid) Get(x, y int) (Particle, bool) {
	p := g.at(x, y)
	if p == nil {
		return Particle{}, false
	}
	return *p, true
}

// Set stores p at (x, y), replacing the previous occupant. A nil p empties
// the cell. The grid takes ownership of p.
func (g *Grid) Set(x, y int, p *Particle) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.w+x] = p
}

// IsEmpty reports whether (x, y) is in bounds and unoccupied.
func (g *Grid) IsEmpty(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y*g.w+x] == nil
}

// IsType reports whether (x, y) holds a particle of type t.
func (g *Grid) IsType(x, y int, t Type) bool {
	p := g.at(x, y)
	return p != nil && p.Type == t
}

// Spawn places a fresh particle of type t at (x, y), overwriting the current
// occupant. TypeEmpty erases the cell.
func (g *Grid) Spawn(x, y int, t Type) {
	if !g.InBounds(x, y) || !t.Valid() {
		return
	}
	if t == TypeEmpty {
		g.cells[y*g.w+x] = nil
		return
	}
	g.cells[y*g.w+x] = NewParticle(t, g.rng)
}

// Swap exchanges the contents of two cells. Nothing happens unless both
// cells are in bounds.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	if !g.InBounds(x1, y1) || !g.InBounds(x2, y2) {
		return
	}
	i, j := y1*g.w+x1, y2*g.w+x2
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// ResetUpdated clears the per-tick processed flag on every particle.
func (g *Grid) ResetUpdated() {
	for _, p := range g.cells {
		if p != nil {
			p.Updated = false
		}
	}
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = nil
	}
}

// Count returns the number of particles of each type.
func (g *Grid) Count() [typeCount]int {
	var counts [typeCount]int
	for _, p := range g.cells {
		if p == nil {
			counts[TypeEmpty]++
			continue
		}
		counts[p.Type]++
	}
	return counts
}
