package sandbox

import (
	"math"
	"slices"
	"testing"

	"sandfall/internal/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 60
	cfg.Height = 30
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	for i := 0; i < 20; i++ {
		world.Step()
	}
	stepped := append([]uint8(nil), world.Cells()...)

	world.Reset(0)
	initial := append([]uint8(nil), world.Cells()...)
	if world.Ticks() != 0 {
		t.Fatalf("reset should zero the tick counter, got %d", world.Ticks())
	}
	for i := 0; i < 20; i++ {
		world.Step()
	}
	if !slices.Equal(stepped, world.Cells()) {
		t.Fatal("same seed should replay the same evolution")
	}

	world.Reset(0)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	world.Reset(777)
	other := append([]uint8(nil), world.Cells()...)
	if slices.Equal(initial, other) {
		t.Fatal("different seeds should scatter the starter sand differently")
	}
}

func TestInitialSceneMaterials(t *testing.T) {
	world := New(80, 30)
	census := world.Census()
	if census[TypeStone] == 0 || census[TypeWood] != 11 || census[TypeSand] == 0 {
		t.Fatalf("unexpected starter scene census %v", census)
	}

	cfg := DefaultConfig()
	cfg.InitialScene = false
	empty := NewWithConfig(cfg)
	if got := empty.Census(); len(got) != 1 || got[TypeEmpty] != cfg.Width*cfg.Height {
		t.Fatalf("expected an empty world, got %v", got)
	}
}

func TestCellsTrackSpawnAndClear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	cfg.InitialScene = false
	world := NewWithConfig(cfg)

	world.Spawn(2, 1, TypeWater)
	if got := world.Cells()[1*4+2]; got != uint8(TypeWater) {
		t.Fatalf("display not updated after spawn, got %d", got)
	}
	world.Spawn(-1, 0, TypeWater)

	world.Clear()
	for i, v := range world.Cells() {
		if v != uint8(TypeEmpty) {
			t.Fatalf("cell %d not cleared", i)
		}
	}
	if _, ok := world.Grid().Get(2, 1); ok {
		t.Fatal("grid not cleared")
	}
}

func TestPaintRespectsDensityAndEraser(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.InitialScene = false
	cfg.Params.BrushDensity = 1
	world := NewWithConfig(cfg)

	world.Paint(10, 10, TypeSand, 3)
	if got := world.Census()[TypeSand]; got != 9 {
		t.Fatalf("size 3 brush should cover a 3x3 block, got %d", got)
	}

	world.Paint(10, 10, TypeEmpty, 5)
	if got := world.Census()[TypeSand]; got != 0 {
		t.Fatalf("eraser should remove the sand, %d left", got)
	}

	world.SetFloatParameter("brush_density", 0)
	world.Paint(10, 10, TypeStone, 9)
	if got := world.Census()[TypeStone]; got != 0 {
		t.Fatalf("zero density should paint nothing, got %d", got)
	}

	world.SetFloatParameter("brush_density", 1)
	world.Paint(0, 0, TypeStone, 0)
	if !world.Grid().IsType(0, 0, TypeStone) {
		t.Fatal("brush size below minimum should still paint one cell")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	world := New(10, 10)

	if !world.SetFloatParameter("fire_spread_chance", 0.5) {
		t.Fatal("expected fire spread chance to be adjustable")
	}
	if got := world.engine.Params().FireSpreadChance; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("engine did not pick up new value, got %f", got)
	}
	world.SetFloatParameter("fire_spread_chance", 4)
	if got := world.Config().Params.FireSpreadChance; got != 1 {
		t.Fatalf("expected clamp to 1, got %f", got)
	}
	if world.SetFloatParameter("water_flow_distance", 3) {
		t.Fatal("integer parameter must not accept float setter")
	}
	if world.SetFloatParameter("nope", 1) {
		t.Fatal("unknown key should be rejected")
	}

	if !world.SetIntParameter("water_flow_distance", 20) {
		t.Fatal("expected water flow distance to be adjustable")
	}
	if got := world.engine.Params().WaterFlowDistance; got != 8 {
		t.Fatalf("expected clamp to 8, got %d", got)
	}
}

func TestParametersSnapshot(t *testing.T) {
	world := New(12, 9)
	snap := world.Parameters()

	w, ok := snap.Lookup("w")
	if !ok || w.Value != "12" {
		t.Fatalf("expected width 12, got %+v", w)
	}
	p, ok := snap.Lookup("plant_grow_chance")
	if !ok || p.Value != "0.02" || p.Type != core.ParamTypeFloat {
		t.Fatalf("unexpected plant grow param %+v", p)
	}
	if len(world.ParameterControls()) != len(paramOrder) {
		t.Fatal("every rule parameter should have a control")
	}
	names := []string{}
	for _, g := range snap.Groups {
		names = append(names, g.Name)
	}
	if !slices.Equal(names, []string{"World", "Fire", "Plant", "Water", "Brush"}) {
		t.Fatalf("unexpected groups %v", names)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                   "30",
		"h":                   "-4",
		"seed":                "5",
		"initial_scene":       "false",
		"fire_quench_chance":  "0.9",
		"plant_grow_chance":   "7",
		"water_flow_distance": "4",
		"brush_density":       "junk",
	})
	if cfg.Width != 30 || cfg.Height != DefaultConfig().Height || cfg.Seed != 5 || cfg.InitialScene {
		t.Fatalf("unexpected world config %+v", cfg)
	}
	if cfg.Params.FireQuenchChance != 0.9 {
		t.Fatalf("expected quench 0.9, got %f", cfg.Params.FireQuenchChance)
	}
	if cfg.Params.PlantGrowChance != 1 {
		t.Fatalf("expected clamped grow chance 1, got %f", cfg.Params.PlantGrowChance)
	}
	if cfg.Params.WaterFlowDistance != 4 {
		t.Fatalf("expected flow distance 4, got %d", cfg.Params.WaterFlowDistance)
	}
	if cfg.Params.BrushDensity != DefaultParams().BrushDensity {
		t.Fatal("unparsable value should keep the default")
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["sandbox"]
	if !ok {
		t.Fatal("sandbox not registered")
	}
	sim := factory(map[string]string{"w": "16", "h": "8"})
	if sim.Size() != (core.Size{W: 16, H: 8}) || len(sim.Cells()) != 16*8 {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
}

func TestTypeNamesAndShades(t *testing.T) {
	for _, typ := range Types {
		got, ok := ParseType(typ.String())
		if !ok || got != typ {
			t.Fatalf("round trip of %v failed", typ)
		}
	}
	if got, ok := ParseType("EMPTY"); !ok || got != TypeEmpty {
		t.Fatal("empty alias not recognised")
	}
	if _, ok := ParseType("lava"); ok {
		t.Fatal("unknown material accepted")
	}
	if TypeFire.Shade(0.1) == TypeFire.Shade(0.9) {
		t.Fatal("fire should flicker")
	}
	if TypeStone.Shade(0.1) != TypeStone.Color() {
		t.Fatal("stone should not flicker")
	}
	if len(New(4, 4).Palette()) != int(typeCount) {
		t.Fatal("palette should cover every type")
	}
}

func TestBrushOffsets(t *testing.T) {
	cases := []struct{ size, want int }{
		{0, 1}, {1, 1}, {2, 9}, {3, 9}, {5, 21}, {99, 97},
	}
	for _, tc := range cases {
		if got := len(BrushOffsets(tc.size)); got != tc.want {
			t.Fatalf("size %d: got %d cells want %d", tc.size, got, tc.want)
		}
	}
}
