package entity

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/starfall/ecs"
	"github.com/milk9111/starfall/prefabs"
)

var errNoFormationSlots = errors.New("formation: script does not define 'slots'")

// LoadFormation runs a formation script and returns its `slots` global as
// offsets. Each slot is a map with numeric x and y.
func LoadFormation(scriptName string) ([]cp.Vector, error) {
	scriptBytes, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return nil, fmt.Errorf("formation: load %s: %w", scriptName, err)
	}

	script := tengo.NewScript(scriptBytes)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("formation: run %s: %w", scriptName, err)
	}

	return extractSlots(compiled)
}

func extractSlots(compiled *tengo.Compiled) ([]cp.Vector, error) {
	if compiled == nil || !compiled.IsDefined("slots") {
		return nil, errNoFormationSlots
	}

	raw, ok := compiled.Get("slots").Value().([]any)
	if !ok {
		return nil, fmt.Errorf("formation: 'slots' must be an array")
	}

	out := make([]cp.Vector, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("formation: slot %d must be a map", i)
		}
		x, okX := toFloat(m["x"])
		y, okY := toFloat(m["y"])
		if !okX || !okY {
			return nil, fmt.Errorf("formation: slot %d needs numeric x and y", i)
		}
		out = append(out, cp.Vector{X: x, Y: y})
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// SpawnFormation places one enemy per formation slot, offset from origin.
func SpawnFormation(w *ecs.World, spec prefabs.EnemySpec, origin cp.Vector) ([]ecs.Entity, error) {
	slots, err := LoadFormation(spec.FormationScript)
	if err != nil {
		return nil, err
	}

	enemies := make([]ecs.Entity, 0, len(slots))
	for _, slot := range slots {
		e, err := NewEnemy(w, spec, origin.Add(slot))
		if err != nil {
			return enemies, err
		}
		enemies = append(enemies, e)
	}
	return enemies, nil
}
