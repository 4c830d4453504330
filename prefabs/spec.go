package prefabs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/procgen"
	"gopkg.in/yaml.v3"
)

// WorldFile is the tuning prefab loaded at startup and on hot reload.
const WorldFile = "world.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type Vec2Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2Spec) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type SimulationSpec struct {
	TickRate        float64 `yaml:"tick_rate"`
	MaxFrameSeconds float64 `yaml:"max_frame_seconds"`
	Seed            uint64  `yaml:"seed"`
}

type CameraSpec struct {
	HalfExtent    Vec2Spec `yaml:"half_extent"`
	MinZoom       float64  `yaml:"min_zoom"`
	MaxZoom       float64  `yaml:"max_zoom"`
	ZoomSpeed     float64  `yaml:"zoom_speed"`
	FollowRate    float64  `yaml:"follow_rate"`
	Lead          Vec2Spec `yaml:"lead"`
	ShakeInterval float64  `yaml:"shake_interval"`
	Shake         Vec2Spec `yaml:"shake"`
}

type ShipSpec struct {
	Acceleration   float64  `yaml:"acceleration"`
	MaxVelocity    float64  `yaml:"max_velocity"`
	IdleBrake      float64  `yaml:"idle_brake"`
	GunCooldown    float64  `yaml:"gun_cooldown"`
	Muzzle         Vec2Spec `yaml:"muzzle"`
	ThrusterOffset Vec2Spec `yaml:"thruster_offset"`
}

type ProjectileSpec struct {
	Speed    float64 `yaml:"speed"`
	Spread   float64 `yaml:"spread"`
	Lifetime float64 `yaml:"lifetime"`
	Damage   float64 `yaml:"damage"`
}

type EnemySpec struct {
	Health          float64 `yaml:"health"`
	Radius          float64 `yaml:"radius"`
	FormationScript string  `yaml:"formation_script"`
}

// FieldSpec configures one procedurally streamed layer.
type FieldSpec struct {
	CellSize  float64 `yaml:"cell_size"`
	Margin    float64 `yaml:"margin"`
	Density   float64 `yaml:"density"`
	MaxOffset float64 `yaml:"max_offset"`
	MaxScale  float64 `yaml:"max_scale"`
	Seed      uint64  `yaml:"seed"`
}

// Generator derives the layer's generator config, salting the layer seed
// with the world seed so layers never share a hash stream.
func (f FieldSpec) Generator(worldSeed uint64) procgen.Config {
	return procgen.Config{
		CellSize:  f.CellSize,
		Density:   f.Density,
		MaxOffset: f.MaxOffset,
		MaxScale:  f.MaxScale,
		Seed:      procgen.Mix64(worldSeed) ^ f.Seed,
	}
}

type ExplosionSpec struct {
	FrameSeconds float64 `yaml:"frame_seconds"`
	FirstFrame   int     `yaml:"first_frame"`
	LastFrame    int     `yaml:"last_frame"`
	Scale        float64 `yaml:"scale"`
}

type WorldSpec struct {
	Simulation SimulationSpec `yaml:"simulation"`
	Camera     CameraSpec     `yaml:"camera"`
	Ship       ShipSpec       `yaml:"ship"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Enemy      EnemySpec      `yaml:"enemy"`
	Starfield  FieldSpec      `yaml:"starfield"`
	Drifters   FieldSpec      `yaml:"drifters"`
	Explosion  ExplosionSpec  `yaml:"explosion"`
}

var (
	ErrInvalidTickRate = errors.New("prefabs: tick_rate must be positive")
	ErrInvalidCellSize = errors.New("prefabs: cell_size must be positive")
	ErrInvalidZoom     = errors.New("prefabs: zoom bounds must be positive and ordered")
	ErrInvalidDensity  = errors.New("prefabs: density must be within [0,1]")
)

// LoadWorldSpec loads and validates world.yaml.
func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WorldFile, err)
	}
	return &spec, nil
}

// Validate rejects tunables the simulation cannot run with.
func (s *WorldSpec) Validate() error {
	if s.Simulation.TickRate <= 0 {
		return ErrInvalidTickRate
	}
	if s.Camera.MinZoom <= 0 || s.Camera.MaxZoom < s.Camera.MinZoom {
		return ErrInvalidZoom
	}
	fields := []struct {
		name string
		spec FieldSpec
	}{
		{"starfield", s.Starfield},
		{"drifters", s.Drifters},
	}
	for _, f := range fields {
		if f.spec.CellSize <= 0 {
			return fmt.Errorf("%s: %w", f.name, ErrInvalidCellSize)
		}
		if f.spec.Density < 0 || f.spec.Density > 1 {
			return fmt.Errorf("%s: %w", f.name, ErrInvalidDensity)
		}
	}
	return nil
}
