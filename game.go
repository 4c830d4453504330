package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/starfall/common"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/system"
	"golang.design/x/clipboard"
)

type Game struct {
	world   *system.World
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	hud     *hud

	debug     bool
	paused    bool
	quit      bool
	clipboard bool
	last      time.Time
	frames    int
}

func NewGame(world *system.World, debug bool) *Game {
	g := &Game{
		world: world,
		debug: debug,
		hud:   newHUD(),
	}
	g.pauseUI = NewPauseUI(g)
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboard = true
	}
	return g
}

func (g *Game) watchPrefabs(dir string) {
	w, err := prefabs.NewWatcher(dir, filepath.Join(dir, "scripts"))
	if err != nil {
		log.Printf("prefab watcher disabled: %v", err)
		return
	}
	g.watcher = w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.reloadChanged()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		g.last = time.Time{}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.shareLocation()
	}

	now := time.Now()
	var elapsed time.Duration
	if !g.last.IsZero() {
		elapsed = now.Sub(g.last)
	}
	g.last = now

	g.world.Advance(elapsed, pollIntent())
	for _, ev := range g.world.DrainEvents() {
		g.hud.observe(ev)
	}
	return nil
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for _, name := range g.watcher.Poll() {
		if filepath.Base(name) != prefabs.WorldFile {
			continue
		}
		spec, err := prefabs.LoadWorldSpec()
		if err != nil {
			log.Printf("reload %s: %v", name, err)
			continue
		}
		if err := g.world.Reload(spec); err != nil {
			log.Printf("reload %s: %v", name, err)
			continue
		}
		log.Printf("reloaded %s", name)
	}
}

// shareLocation copies the ship position and seed so another player can
// fly to the same spot of the same universe.
func (g *Game) shareLocation() {
	pos, ok := g.world.ShipPosition()
	if !ok {
		return
	}
	msg := fmt.Sprintf("starfall seed=%d x=%.0f y=%.0f", g.world.Spec.Simulation.Seed, pos.X, pos.Y)
	if !g.clipboard {
		log.Print(msg)
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(msg))
	g.hud.flash("location copied")
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world, g.debug)
	g.hud.draw(screen, g.world)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
