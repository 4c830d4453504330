package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// flashFrames is how long a HUD notice stays up.
const flashFrames = 90

type hud struct {
	face     ebtext.Face
	notice   string
	ttl      int
	lastKill string
}

func newHUD() *hud {
	return &hud{face: ebtext.NewGoXFace(basicfont.Face7x13)}
}

func (h *hud) flash(msg string) {
	h.notice = msg
	h.ttl = flashFrames
}

func (h *hud) observe(ev ecs.Event) {
	if boom, ok := ev.(ecs.ExplosionEvent); ok {
		h.lastKill = fmt.Sprintf("kill at (%.0f, %.0f)", boom.Position.X, boom.Position.Y)
	}
}

func (h *hud) draw(screen *ebiten.Image, w *system.World) {
	combat := w.Combat()
	lines := []string{
		fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()),
		fmt.Sprintf("shots %d  hits %d  kills %d", combat.Shots, combat.Hits, combat.Kills),
		fmt.Sprintf("stars %d  drifters %d", w.Stars.LedgerSize(), w.Drifters.LedgerSize()),
	}
	if pos, ok := w.ShipPosition(); ok {
		lines = append(lines, fmt.Sprintf("ship (%.0f, %.0f)  seed %d", pos.X, pos.Y, w.Spec.Simulation.Seed))
	}
	if h.lastKill != "" {
		lines = append(lines, h.lastKill)
	}
	if h.ttl > 0 {
		h.ttl--
		lines = append(lines, h.notice)
	}

	for i, line := range lines {
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(8, float64(8+i*16))
		op.ColorScale.ScaleWithColor(colornames.White)
		ebtext.Draw(screen, line, h.face, op)
	}
}
