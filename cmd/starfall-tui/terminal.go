package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/ecs/component"
	"github.com/milk9111/starfall/system"
)

// holdWindow is how long a key counts as held after its last press event.
// Terminals report repeats, not releases.
const holdWindow = 150 * time.Millisecond

type action int

const (
	actUp action = iota
	actDown
	actLeft
	actRight
	actShoot
	actBoost
	actCount
)

type terminal struct {
	screen tcell.Screen
	world  *system.World
	held   [actCount]time.Time
	last   time.Time
}

func newTerminal(screen tcell.Screen, world *system.World) *terminal {
	return &terminal{screen: screen, world: world}
}

func (t *terminal) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handle(ev) {
				return
			}
		case now := <-ticker.C:
			t.step(now)
			t.draw()
		}
	}
}

func (t *terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := time.Now()
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.held[actUp] = now
		case tcell.KeyDown:
			t.held[actDown] = now
		case tcell.KeyLeft:
			t.held[actLeft] = now
		case tcell.KeyRight:
			t.held[actRight] = now
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'w':
				t.held[actUp] = now
			case 'W':
				t.held[actUp] = now
				t.held[actBoost] = now
			case 's':
				t.held[actDown] = now
			case 'a':
				t.held[actLeft] = now
			case 'd':
				t.held[actRight] = now
			case ' ':
				t.held[actShoot] = now
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) intent(now time.Time) component.InputIntent {
	on := func(a action) bool {
		return now.Sub(t.held[a]) < holdWindow
	}
	intent := component.InputIntent{
		Up:       on(actUp),
		Down:     on(actDown),
		Left:     on(actLeft),
		Right:    on(actRight),
		Shooting: on(actShoot),
		Boost:    on(actBoost),
	}
	return intent.Resolve()
}

func (t *terminal) step(now time.Time) {
	var elapsed time.Duration
	if !t.last.IsZero() {
		elapsed = now.Sub(t.last)
	}
	t.last = now
	t.world.Advance(elapsed, t.intent(now))
	t.world.DrainEvents()
}

var glyphs = map[component.Archetype]rune{
	component.ArchetypeStar:       '.',
	component.ArchetypeEnemy:      'M',
	component.ArchetypeDrifter:    'O',
	component.ArchetypeProjectile: '|',
	component.ArchetypeThruster:   '^',
	component.ArchetypeShip:       'A',
	component.ArchetypeExplosion:  '*',
}

var styles = map[component.Archetype]tcell.Style{
	component.ArchetypeStar:       tcell.StyleDefault.Foreground(tcell.ColorGray),
	component.ArchetypeEnemy:      tcell.StyleDefault.Foreground(tcell.ColorRed),
	component.ArchetypeDrifter:    tcell.StyleDefault.Foreground(tcell.ColorOrange),
	component.ArchetypeProjectile: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	component.ArchetypeThruster:   tcell.StyleDefault.Foreground(tcell.ColorOrangeRed),
	component.ArchetypeShip:       tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
	component.ArchetypeExplosion:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
}

var drawOrder = []component.Archetype{
	component.ArchetypeStar,
	component.ArchetypeDrifter,
	component.ArchetypeEnemy,
	component.ArchetypeProjectile,
	component.ArchetypeThruster,
	component.ArchetypeShip,
	component.ArchetypeExplosion,
}

// draw maps the visible region onto the terminal grid. Later layers
// overwrite earlier ones in the same cell.
func (t *terminal) draw() {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	region, ok := t.world.VisibleRegion()
	if !ok || cols == 0 || rows < 2 {
		t.screen.Show()
		return
	}
	bb := region.BB()
	width, height := bb.R-bb.L, bb.T-bb.B
	toCell := func(p cp.Vector) (int, int, bool) {
		x := int(math.Floor((p.X - bb.L) / width * float64(cols)))
		y := int(math.Floor((bb.T - p.Y) / height * float64(rows-1)))
		return x, y + 1, x >= 0 && x < cols && y >= 0 && y < rows-1
	}

	buckets := make(map[component.Archetype][]ecs.Entity)
	for _, e := range t.world.ECS.Query(component.ArchetypeComponent.Kind(), component.TransformComponent.Kind()) {
		a, _ := ecs.Get(t.world.ECS, e, component.ArchetypeComponent.Kind())
		buckets[*a] = append(buckets[*a], e)
	}

	for _, archetype := range drawOrder {
		for _, e := range buckets[archetype] {
			if th, ok := ecs.Get(t.world.ECS, e, component.ThrusterComponent.Kind()); ok && !th.Visible {
				continue
			}
			tr, _ := ecs.Get(t.world.ECS, e, component.TransformComponent.Kind())
			x, y, inside := toCell(cp.Vector{X: tr.X, Y: tr.Y})
			if !inside {
				continue
			}
			t.screen.SetContent(x, y, glyphs[archetype], nil, styles[archetype])
		}
	}

	combat := t.world.Combat()
	status := fmt.Sprintf(" shots %d  hits %d  kills %d  seed %d  [wasd move, W boost, space fire, q quit]",
		combat.Shots, combat.Hits, combat.Kills, t.world.Spec.Simulation.Seed)
	for i, r := range status {
		if i >= cols {
			break
		}
		t.screen.SetContent(i, 0, r, nil, tcell.StyleDefault.Reverse(true))
	}
	t.screen.Show()
}
