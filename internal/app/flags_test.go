package app

import (
	"errors"
	"flag"
	"testing"

	"sandfall/internal/scenario"
	"sandfall/internal/sims/sandbox"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestConfigBuildsWorld(t *testing.T) {
	cfg := parse(t, "-w", "40", "-h", "12", "-seed", "7",
		"-set", "fire_spread_chance=0.25", "-set", "water_flow_distance=4")
	world, err := cfg.NewWorld()
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	if s := world.Size(); s.W != 40 || s.H != 12 {
		t.Fatalf("size %+v", s)
	}
	got := world.Config()
	if got.Seed != 7 || !got.InitialScene {
		t.Fatalf("config %+v", got)
	}
	if got.Params.FireSpreadChance != 0.25 || got.Params.WaterFlowDistance != 4 {
		t.Fatalf("overrides not applied: %+v", got.Params)
	}
}

func TestScenarioDisablesInitialScene(t *testing.T) {
	cfg := parse(t, "-scenario", "demo")
	world, err := cfg.NewWorld()
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	if world.Config().InitialScene {
		t.Fatalf("scripted run should start empty")
	}
	if n := world.Census()[sandbox.TypeEmpty]; n != 80*21 {
		t.Fatalf("expected an empty grid, %d empty cells", n)
	}
	player, err := cfg.NewPlayer(world)
	if err != nil || player == nil {
		t.Fatalf("player: %v %v", player, err)
	}
	if player.Name() != "demo" {
		t.Fatalf("player name %q", player.Name())
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := parse(t, "-sim", "nope").NewWorld(); err == nil {
		t.Fatalf("unknown sim accepted")
	}
	if _, err := parse(t, "-scenario", "missing.yaml").NewPlayer(sandbox.New(10, 10)); err == nil {
		t.Fatalf("missing scenario file accepted")
	}
	if p, err := parse(t).NewPlayer(sandbox.New(10, 10)); p != nil || err != nil {
		t.Fatalf("no scenario should give no player, got %v %v", p, err)
	}

	var l KVList
	if err := l.Set("novalue"); !errors.Is(err, ErrBadOverride) {
		t.Fatalf("expected ErrBadOverride, got %v", err)
	}
	if err := l.Set("=3"); !errors.Is(err, ErrBadOverride) {
		t.Fatalf("expected ErrBadOverride for empty key, got %v", err)
	}
}

func TestBuiltinsListed(t *testing.T) {
	if len(scenario.Builtins()) == 0 {
		t.Fatalf("no builtin scenarios")
	}
}
