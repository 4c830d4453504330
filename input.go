package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/ecs/component"
)

// pollIntent reads the keyboard into an intent snapshot. WASD or arrows
// steer, space fires, shift boosts while thrusting up.
func pollIntent() component.InputIntent {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	intent := component.InputIntent{
		Up:       pressed(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:     pressed(ebiten.KeyS, ebiten.KeyArrowDown),
		Left:     pressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:    pressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Shooting: pressed(ebiten.KeySpace),
		Boost:    pressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight),
	}
	return intent.Resolve()
}
