package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"sandfall/internal/core"
	"sandfall/internal/scenario"
	"sandfall/internal/sims/sandbox"
)

// ErrBadOverride reports a -set value that is not key=value.
var ErrBadOverride = errors.New("override must be key=value")

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set validates and appends one key=value pair.
func (l *KVList) Set(value string) error {
	key, _, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("%q: %w", value, ErrBadOverride)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map. Later pairs win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Scene    bool
	Scenario string
	LogFile  string
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "sandbox",
		Width:   80,
		Height:  21,
		Scale:   6,
		TPS:     30,
		Seed:    42,
		Scene:   true,
		LogFile: "sandfall.log",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (window mode)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Scene, "scene", c.Scene, "start with the stone basin scene")
	fs.StringVar(&c.Scenario, "scenario", c.Scenario, "built-in scenario name or YAML file to play ("+strings.Join(scenario.Builtins(), ", ")+")")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file (terminal mode)")
	fs.Var(&c.Set, "set", "parameter override in key=value form (repeatable)")
}

// SimOptions merges the sizing flags and -set overrides into the map handed
// to the sim factory. Overrides win.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":             strconv.Itoa(c.Width),
		"h":             strconv.Itoa(c.Height),
		"seed":          strconv.FormatInt(c.Seed, 10),
		"initial_scene": strconv.FormatBool(c.Scene && c.Scenario == ""),
	}
	for k, v := range c.Set.Map() {
		opts[k] = v
	}
	return opts
}

// NewWorld builds the configured sim from the registry. Only the sandbox
// has a frontend, so other registered names are rejected.
func (c *Config) NewWorld() (*sandbox.World, error) {
	factory, ok := core.Sims()[c.Sim]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (have %s)", c.Sim, strings.Join(core.Names(), ", "))
	}
	world, ok := factory(c.SimOptions()).(*sandbox.World)
	if !ok {
		return nil, fmt.Errorf("sim %q has no sandbox frontend", c.Sim)
	}
	return world, nil
}

// NewPlayer loads the configured scenario for world. It returns nil when no
// scenario was requested.
func (c *Config) NewPlayer(world *sandbox.World) (*scenario.Player, error) {
	if c.Scenario == "" {
		return nil, nil
	}
	script, err := scenario.Resolve(c.Scenario)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}
	return scenario.NewPlayer(script, world.Rand()), nil
}
