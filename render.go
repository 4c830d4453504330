package main

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/system"
	"golang.org/x/image/colornames"
)

// view maps world space (y up) to screen pixels (y down) around the
// camera's interpolated transform.
type view struct {
	center cp.Vector
	scale  float64
}

func cameraView(w *system.World) view {
	v := view{scale: 1}
	t, ok := ecs.Get(w.ECS, w.Camera, component.TransformComponent.Kind())
	if !ok {
		return v
	}
	v.center = cp.Vector{X: t.X, Y: t.Y}
	zoom := 1.0
	if c, ok := ecs.Get(w.ECS, w.Camera, component.CameraComponent.Kind()); ok && c.Zoom > 0 {
		zoom = c.Zoom
	}
	half := w.Viewport.HalfExtent.X * zoom
	if half > 0 {
		v.scale = (common.BaseWidth / 2) / half
	}
	return v
}

func (v view) project(p cp.Vector) (float32, float32) {
	x := (p.X-v.center.X)*v.scale + common.BaseWidth/2
	y := common.BaseHeight/2 - (p.Y-v.center.Y)*v.scale
	return float32(x), float32(y)
}

var layerOf = map[component.Archetype]int{
	component.ArchetypeStar:       0,
	component.ArchetypeDrifter:    1,
	component.ArchetypeEnemy:      1,
	component.ArchetypeProjectile: 2,
	component.ArchetypeThruster:   3,
	component.ArchetypeShip:       4,
	component.ArchetypeExplosion:  5,
}

// drawWorld renders every archetyped entity with a Transform, sorted by
// layer then entity so draw order is stable frame to frame.
func drawWorld(screen *ebiten.Image, w *system.World, debug bool) {
	screen.Fill(colornames.Black)
	v := cameraView(w)

	type item struct {
		e     ecs.Entity
		layer int
	}
	entities := w.ECS.Query(component.ArchetypeComponent.Kind(), component.TransformComponent.Kind())
	items := make([]item, 0, len(entities))
	for _, e := range entities {
		a, _ := ecs.Get(w.ECS, e, component.ArchetypeComponent.Kind())
		layer, ok := layerOf[*a]
		if !ok {
			continue
		}
		items = append(items, item{e: e, layer: layer})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].layer < items[j].layer
	})

	for _, it := range items {
		a, _ := ecs.Get(w.ECS, it.e, component.ArchetypeComponent.Kind())
		t, _ := ecs.Get(w.ECS, it.e, component.TransformComponent.Kind())
		x, y := v.project(cp.Vector{X: t.X, Y: t.Y})
		s := float32(v.scale)
		scale := float32(t.ScaleX)
		if scale <= 0 {
			scale = 1
		}

		switch *a {
		case component.ArchetypeStar:
			vector.DrawFilledRect(screen, x, y, s*scale, s*scale, colornames.White, false)
		case component.ArchetypeEnemy, component.ArchetypeDrifter:
			r := float32(16)
			if c, ok := ecs.Get(w.ECS, it.e, component.ColliderComponent.Kind()); ok {
				r = float32(c.Radius)
			}
			clr := color.Color(colornames.Crimson)
			if *a == component.ArchetypeDrifter {
				clr = colornames.Darkorange
			}
			vector.DrawFilledCircle(screen, x, y, r*s, clr, true)
			drawHealth(screen, w, it.e, x, y-(r+4)*s, s)
		case component.ArchetypeProjectile:
			vector.DrawFilledRect(screen, x-s, y-3*s, 2*s, 6*s, colornames.Yellow, false)
		case component.ArchetypeThruster:
			th, ok := ecs.Get(w.ECS, it.e, component.ThrusterComponent.Kind())
			if !ok || !th.Visible {
				continue
			}
			clr := colornames.Orange
			length := float32(10)
			if th.Boost {
				clr = colornames.Deepskyblue
				length = 18
			}
			vector.StrokeLine(screen, x, y, x, y+length*s, 4*s, clr, true)
		case component.ArchetypeShip:
			vector.DrawFilledRect(screen, x-12*s, y-16*s, 24*s, 32*s, colornames.Lightsteelblue, true)
		case component.ArchetypeExplosion:
			boom, ok := ecs.Get(w.ECS, it.e, component.ExplosionComponent.Kind())
			if !ok {
				continue
			}
			r := float32(boom.Frame) * 2 * scale
			vector.StrokeCircle(screen, x, y, r*s, 2*s, colornames.Orangered, true)
		}
	}

	if debug {
		drawStreamingWindow(screen, w, v)
	}
}

func drawHealth(screen *ebiten.Image, w *system.World, e ecs.Entity, x, y, s float32) {
	h, ok := ecs.Get(w.ECS, e, component.HealthComponent.Kind())
	if !ok || h.Max <= 0 || h.Current >= h.Max {
		return
	}
	width := 24 * s
	vector.DrawFilledRect(screen, x-width/2, y, width, 2*s, colornames.Dimgray, false)
	vector.DrawFilledRect(screen, x-width/2, y, width*float32(h.Current/h.Max), 2*s, colornames.Limegreen, false)
}

func drawStreamingWindow(screen *ebiten.Image, w *system.World, v view) {
	region, ok := w.VisibleRegion()
	if !ok {
		return
	}
	bb := region.BB()
	x0, y0 := v.project(cp.Vector{X: bb.L, Y: bb.T})
	x1, y1 := v.project(cp.Vector{X: bb.R, Y: bb.B})
	vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, color.RGBA{R: 255, G: 0, B: 0, A: 200}, false)
}
