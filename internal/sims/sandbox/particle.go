package sandbox

import "sandfall/internal/core"

// Type enumerates the particle materials.
type Type uint8

const (
	// TypeEmpty is never stored in a cell. Spawning it erases.
	TypeEmpty Type = iota
	TypeSand
	TypeWater
	TypeStone
	TypeFire
	TypeSmoke
	TypeWood
	TypePlant

	typeCount
)

// Types lists every material in display order, eraser last.
var Types = []Type{TypeSand, TypeWater, TypeStone, TypeFire, TypeSmoke, TypeWood, TypePlant, TypeEmpty}

// Span is a half-open integer range [Min, Max).
type Span struct {
	Min, Max int
}

var lifespans = [typeCount]Span{
	TypeFire:  {Min: 20, Max: 50},
	TypeSmoke: {Min: 40, Max: 80},
}

// Lifespan reports the lifetime range rolled for new particles of type t.
// Types without timed decay return false.
func (t Type) Lifespan() (Span, bool) {
	if t >= typeCount {
		return Span{}, false
	}
	s := lifespans[t]
	return s, s.Max > 0
}

// Valid reports whether t is a known material.
func (t Type) Valid() bool { return t < typeCount }

// Lifetime is the optional decay counter of a particle. The zero value
// carries no lifetime.
type Lifetime struct {
	ticks int
	set   bool
}

// Remaining returns the ticks left and whether the particle decays at all.
func (l Lifetime) Remaining() (int, bool) { return l.ticks, l.set }

// tick decrements the counter and reports whether it expired.
func (l *Lifetime) tick() bool {
	if !l.set {
		return false
	}
	l.ticks--
	return l.ticks <= 0
}

// Particle is the state stored in an occupied cell.
type Particle struct {
	Type    Type
	Updated bool
	Life    Lifetime
}

// NewParticle creates a particle of type t, rolling its lifetime from rng
// when the type decays.
func NewParticle(t Type, rng core.Source) *Particle {
	p := &Particle{Type: t}
	if span, ok := t.Lifespan(); ok {
		p.Life = Lifetime{ticks: core.IntRange(rng, span.Min, span.Max), set: true}
	}
	return p
}

// WithLifetime overrides the remaining lifetime. It is ignored for types
// that do not decay.
func (p *Particle) WithLifetime(ticks int) *Particle {
	if _, ok := p.Type.Lifespan(); ok {
		p.Life = Lifetime{ticks: ticks, set: true}
	}
	return p
}
