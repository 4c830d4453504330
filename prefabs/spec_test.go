package prefabs

import (
	"errors"
	"testing"

	"github.com/milk9111/starfall/procgen"
)

func TestLoadWorldSpec(t *testing.T) {
	spec, err := LoadWorldSpec()
	if err != nil {
		t.Fatalf("load world spec: %v", err)
	}

	if spec.Simulation.TickRate != 60 {
		t.Fatalf("tick rate: got %v", spec.Simulation.TickRate)
	}
	if spec.Camera.HalfExtent != (Vec2Spec{X: 320, Y: 180}) {
		t.Fatalf("half extent: got %+v", spec.Camera.HalfExtent)
	}
	if spec.Starfield.CellSize != 20 || spec.Starfield.Density != 0.1 {
		t.Fatalf("starfield: got %+v", spec.Starfield)
	}
	if spec.Projectile.Damage != 25 || spec.Enemy.Health != 100 || spec.Enemy.Radius != 16 {
		t.Fatalf("combat tunables: got %+v %+v", spec.Projectile, spec.Enemy)
	}
	if spec.Enemy.FormationScript == "" {
		t.Fatalf("formation script should be set")
	}
}

func TestWorldSpecValidate(t *testing.T) {
	base, err := LoadWorldSpec()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		mutate func(*WorldSpec)
		want   error
	}{
		{"valid", func(*WorldSpec) {}, nil},
		{"zero_tick_rate", func(s *WorldSpec) { s.Simulation.TickRate = 0 }, ErrInvalidTickRate},
		{"zero_min_zoom", func(s *WorldSpec) { s.Camera.MinZoom = 0 }, ErrInvalidZoom},
		{"inverted_zoom", func(s *WorldSpec) { s.Camera.MaxZoom = s.Camera.MinZoom / 2 }, ErrInvalidZoom},
		{"star_cell_size", func(s *WorldSpec) { s.Starfield.CellSize = -1 }, ErrInvalidCellSize},
		{"drifter_cell_size", func(s *WorldSpec) { s.Drifters.CellSize = 0 }, ErrInvalidCellSize},
		{"density_above_one", func(s *WorldSpec) { s.Starfield.Density = 1.5 }, ErrInvalidDensity},
		{"negative_density", func(s *WorldSpec) { s.Drifters.Density = -0.1 }, ErrInvalidDensity},
		{"density_bounds", func(s *WorldSpec) { s.Starfield.Density, s.Drifters.Density = 0, 1 }, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			spec := *base
			tc.mutate(&spec)
			err := spec.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFieldSpecGeneratorSaltsSeed(t *testing.T) {
	f := FieldSpec{CellSize: 20, Density: 0.1, MaxOffset: 20, MaxScale: 2, Seed: 1}

	cfg := f.Generator(1337)
	if cfg.CellSize != 20 || cfg.Density != 0.1 || cfg.MaxOffset != 20 || cfg.MaxScale != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Seed != procgen.Mix64(1337)^1 {
		t.Fatalf("unexpected seed %x", cfg.Seed)
	}

	g := FieldSpec{Seed: 2}.Generator(1337)
	if cfg.Seed == g.Seed {
		t.Fatalf("layers must not share a seed")
	}
	if f.Generator(1).Seed == cfg.Seed {
		t.Fatalf("world seed must change the layer seed")
	}
}

func TestLoadPaths(t *testing.T) {
	for _, name := range []string{"world.yaml", "prefabs/world.yaml"} {
		if _, err := Load(name); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	if _, err := Load("missing.yaml"); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}

func TestLoadScriptPaths(t *testing.T) {
	for _, name := range []string{"formation.tengo", "scripts/formation.tengo", "prefabs/scripts/formation.tengo"} {
		data, err := LoadScript(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("%s: empty script", name)
		}
	}
}
