package system

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
)

// CameraSystem makes the camera lag behind the ship, zooms out while
// boosting and shakes the view on a fixed interval during boost. The camera
// has no velocity, so this system maintains its Previous itself.
type CameraSystem struct {
	input *InputState
	spec  *prefabs.WorldSpec
	rng   *rand.Rand
	guard singletonGuard
}

func NewCameraSystem(input *InputState, spec *prefabs.WorldSpec, rng *rand.Rand) *CameraSystem {
	if rng == nil {
		rng = rand.New(rand.NewPCG(0, 0))
	}
	return &CameraSystem{input: input, spec: spec, rng: rng}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil || !cs.guard.require("camera", "tuning", cs.spec != nil) {
		return
	}
	cam, ok := w.First(component.CameraTagComponent.Kind())
	if !cs.guard.require("camera", "camera", ok) {
		return
	}
	ship, ok := w.First(component.PlayerTagComponent.Kind())
	if !cs.guard.require("camera", "ship", ok) {
		return
	}

	camPos, ok := ecs.Get(w, cam, component.PositionComponent.Kind())
	if !ok {
		return
	}
	camera, ok := ecs.Get(w, cam, component.CameraComponent.Kind())
	if !ok {
		return
	}
	shipPos, ok := ecs.Get(w, ship, component.PositionComponent.Kind())
	if !ok {
		return
	}

	dt := w.Clock().StepSeconds()
	tuning := cs.spec.Camera
	intent := cs.input.Intent()

	camPos.Previous = camPos.Current
	target := shipPos.Current.Add(tuning.Lead.Vector())
	camPos.Current = camPos.Current.Lerp(target, math.Min(tuning.FollowRate*dt, 1))

	camera.TargetZoom = tuning.MinZoom
	if intent.Boost {
		camera.TargetZoom = tuning.MaxZoom
	}
	camera.Zoom = common.MoveToward(camera.Zoom, camera.TargetZoom, tuning.ZoomSpeed*dt)

	camera.Shake = intent.Boost
	if !camera.Shake || tuning.ShakeInterval <= 0 {
		camera.ShakeElapsed = 0
		return
	}
	camera.ShakeElapsed += dt
	if camera.ShakeElapsed < tuning.ShakeInterval {
		return
	}
	camera.ShakeElapsed -= tuning.ShakeInterval
	camPos.Current = camPos.Current.Add(cp.Vector{
		X: (cs.rng.Float64()*2 - 1) * tuning.Shake.X,
		Y: (cs.rng.Float64()*2 - 1) * tuning.Shake.Y,
	})
}
