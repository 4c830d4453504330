// Command starfall-tui runs the simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/prefabs"
	"github.com/milk9111/starfall/system"
)

func main() {
	seed := flag.Uint64("seed", 0, "world seed (0 keeps the seed from world.yaml)")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "starfall-tui.log", "log file (the terminal is owned by the renderer)")
	flag.Parse()

	if f, err := os.Create(*logPath); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	spec, err := prefabs.LoadWorldSpec()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		spec.Simulation.Seed = *seed
	}

	world, err := system.NewWorld(spec)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	audio := newSounds()
	if !*mute {
		if err := audio.Init(); err != nil {
			log.Printf("audio unavailable: %v", err)
		}
	}
	world.Combat().On(ecs.EventExplosion, func(ecs.Event) { audio.Explosion() })
	world.Combat().On(ecs.EventSpawn, func(ev ecs.Event) {
		if sp, ok := ev.(ecs.SpawnEvent); ok && sp.Archetype == component.ArchetypeProjectile {
			audio.Fire()
		}
	})

	t := newTerminal(screen, world)
	t.run()

	audio.Close()
	screen.Fini()
}

// frameInterval paces the terminal loop at roughly 60 frames per second.
const frameInterval = 16 * time.Millisecond
