package scenario

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"sandfall/internal/sims/sandbox"
)

var (
	// ErrUnknownOp reports an action whose op is not recognised.
	ErrUnknownOp = errors.New("unknown op")
	// ErrBadCoord reports an unparsable coordinate expression.
	ErrBadCoord = errors.New("bad coordinate")
	// ErrBadMaterial reports an unknown material name.
	ErrBadMaterial = errors.New("unknown material")
	// ErrBadAction reports an action with invalid timing or counts.
	ErrBadAction = errors.New("invalid action")
	// ErrNoScript reports a missing built-in script.
	ErrNoScript = errors.New("no such script")
)

// Op names an action kind.
type Op string

const (
	OpSpawn   Op = "spawn"
	OpLine    Op = "line"
	OpRect    Op = "rect"
	OpFill    Op = "fill"
	OpRain    Op = "rain"
	OpTerrain Op = "terrain"
	OpClear   Op = "clear"
)

// Script is a timed list of world edits.
type Script struct {
	Name string `yaml:"name"`
	// LoopAt clears the world and restarts the script once this frame is
	// reached. Zero plays the script once.
	LoopAt  int      `yaml:"loop_at,omitempty"`
	Actions []Action `yaml:"actions"`
}

// Action is one scripted edit. Which fields apply depends on Op.
type Action struct {
	Frame     int      `yaml:"frame"`
	Op        Op       `yaml:"op"`
	Material  string   `yaml:"material,omitempty"`
	Materials []string `yaml:"materials,omitempty"`

	X  Coord `yaml:"x"`
	Y  Coord `yaml:"y"`
	X2 Coord `yaml:"x2"`
	Y2 Coord `yaml:"y2"`

	// Step spaces cells along a line.
	Step int `yaml:"step,omitempty"`

	// Rain: Repeat shots, Every frames apart, Count random cells per shot.
	Count  int `yaml:"count,omitempty"`
	Repeat int `yaml:"repeat,omitempty"`
	Every  int `yaml:"every,omitempty"`

	// Terrain: ridge height above Y and horizontal noise frequency.
	Amplitude int     `yaml:"amplitude,omitempty"`
	Scale     float64 `yaml:"scale,omitempty"`
	Seed      int64   `yaml:"seed,omitempty"`

	palette []sandbox.Type
}

// Parse decodes and validates a YAML script.
func Parse(raw []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Script{}, fmt.Errorf("decode script: %w", err)
	}
	if err := s.validate(); err != nil {
		if s.Name != "" {
			return Script{}, fmt.Errorf("script %q: %w", s.Name, err)
		}
		return Script{}, err
	}
	return s, nil
}

// Load reads a script from disk.
func Load(file string) (Script, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return Script{}, err
	}
	s, err := Parse(raw)
	if err != nil {
		return Script{}, fmt.Errorf("%s: %w", file, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}
	return s, nil
}

func (s *Script) validate() error {
	if s.LoopAt < 0 {
		return fmt.Errorf("%w: negative loop_at", ErrBadAction)
	}
	for i := range s.Actions {
		if err := s.Actions[i].validate(); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}

func (a *Action) validate() error {
	if a.Frame < 0 {
		return fmt.Errorf("%w: negative frame %d", ErrBadAction, a.Frame)
	}
	switch a.Op {
	case OpClear:
		return nil
	case OpSpawn, OpLine, OpRect, OpFill, OpTerrain:
	case OpRain:
		if a.Repeat < 0 || a.Every < 0 || a.Count < 0 {
			return fmt.Errorf("%w: negative rain timing", ErrBadAction)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, a.Op)
	}
	if a.Step < 0 {
		return fmt.Errorf("%w: negative step", ErrBadAction)
	}

	names := a.Materials
	if a.Material != "" {
		names = append([]string{a.Material}, names...)
	}
	if a.Op == OpTerrain && len(names) == 0 {
		names = []string{"stone"}
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: %s needs a material", ErrBadMaterial, a.Op)
	}
	a.palette = a.palette[:0]
	for _, name := range names {
		t, ok := sandbox.ParseType(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadMaterial, name)
		}
		a.palette = append(a.palette, t)
	}
	return nil
}

//go:embed scripts/*.yaml
var builtin embed.FS

// Builtin returns an embedded script by name.
func Builtin(name string) (Script, error) {
	raw, err := builtin.ReadFile("scripts/" + name + ".yaml")
	if err != nil {
		return Script{}, fmt.Errorf("%w: %q", ErrNoScript, name)
	}
	return Parse(raw)
}

// Builtins lists the embedded script names.
func Builtins() []string {
	entries, err := builtin.ReadDir("scripts")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Resolve loads name as a built-in script, or from disk when it looks like
// a path.
func Resolve(name string) (Script, error) {
	if strings.ContainsAny(name, `/\.`) {
		return Load(name)
	}
	return Builtin(name)
}
