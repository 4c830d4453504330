package system

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/ecs/entity"
)

func TestCameraFollowsShipWithLead(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	if _, err := entity.NewShip(w, spec.Ship, cp.Vector{X: 60}); err != nil {
		t.Fatal(err)
	}
	cam, err := entity.NewCamera(w, spec.Camera, cp.Vector{})
	if err != nil {
		t.Fatal(err)
	}

	sys := NewCameraSystem(inputWith(component.InputIntent{}), spec, rand.New(rand.NewPCG(1, 2)))
	sys.Update(w)

	pos := position(t, w, cam)
	rate := spec.Camera.FollowRate * w.Clock().StepSeconds()
	want := cp.Vector{X: 60 * rate, Y: spec.Camera.Lead.Y * rate}
	if !near(pos.Current, want, eps) {
		t.Fatalf("expected %v, got %v", want, pos.Current)
	}
	if pos.Previous != (cp.Vector{}) {
		t.Fatalf("previous should hold the last position, got %v", pos.Previous)
	}

	for i := 0; i < 600; i++ {
		sys.Update(w)
	}
	pos = position(t, w, cam)
	if !near(pos.Current, cp.Vector{X: 60, Y: spec.Camera.Lead.Y}, 1e-3) {
		t.Fatalf("camera should settle on the lead target, got %v", pos.Current)
	}
}

func TestCameraZoomFollowsBoost(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	if _, err := entity.NewShip(w, spec.Ship, cp.Vector{}); err != nil {
		t.Fatal(err)
	}
	cam, err := entity.NewCamera(w, spec.Camera, cp.Vector{})
	if err != nil {
		t.Fatal(err)
	}
	input := inputWith(component.InputIntent{Up: true, Boost: true})
	sys := NewCameraSystem(input, spec, rand.New(rand.NewPCG(1, 2)))

	sys.Update(w)
	camera, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	step := spec.Camera.ZoomSpeed * w.Clock().StepSeconds()
	if !camera.Shake || camera.TargetZoom != spec.Camera.MaxZoom {
		t.Fatalf("boost should target max zoom and shake, got %+v", camera)
	}
	if d := camera.Zoom - (spec.Camera.MinZoom + step); d > eps || d < -eps {
		t.Fatalf("zoom should move one step, got %v", camera.Zoom)
	}

	for i := 0; i < 600; i++ {
		sys.Update(w)
	}
	if camera.Zoom != spec.Camera.MaxZoom {
		t.Fatalf("zoom should reach max, got %v", camera.Zoom)
	}

	input.Refresh(component.InputIntent{})
	sys.Update(w)
	if camera.Shake || camera.ShakeElapsed != 0 {
		t.Fatalf("releasing boost should stop the shake, got %+v", camera)
	}
	for i := 0; i < 600; i++ {
		sys.Update(w)
	}
	if camera.Zoom != spec.Camera.MinZoom {
		t.Fatalf("zoom should return to min, got %v", camera.Zoom)
	}
}

func TestCameraWithoutShipIsNoop(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	cam, err := entity.NewCamera(w, spec.Camera, cp.Vector{X: 7, Y: 7})
	if err != nil {
		t.Fatal(err)
	}
	NewCameraSystem(nil, spec, nil).Update(w)
	if pos := position(t, w, cam); pos.Current != (cp.Vector{X: 7, Y: 7}) {
		t.Fatalf("camera moved without a ship: %v", pos.Current)
	}
}
