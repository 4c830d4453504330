package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/system"
)

func main() {
	debug := flag.Bool("debug", false, "draw the streaming window and colliders")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 0, "world seed (0 keeps the seed from world.yaml)")
	watch := flag.Bool("watch", true, "hot reload prefabs/ from disk")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Simulation.Seed = *seed
	}

	world, err := system.NewWorld(spec)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("starfall")

	game := NewGame(world, *debug)
	if *watch {
		game.watchPrefabs(prefabs.Dir)
		defer game.Close()
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
