package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestQueueDrainsInEmissionOrder(t *testing.T) {
	var q EventQueue
	q.Push(DamageEvent{Target: 1, Amount: 10})
	q.Push(ExplosionEvent{Source: 1, Position: cp.Vector{X: 3}})
	q.Push(DespawnEvent{Entity: 1})

	want := []EventKind{EventDamage, EventExplosion, EventDespawn}
	got := q.Drain()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(got))
	}
	for i, ev := range got {
		if ev.Kind() != want[i] {
			t.Fatalf("event %d: expected %v, got %v", i, want[i], ev.Kind())
		}
	}
	if q.Drain() != nil {
		t.Fatalf("second drain should be empty")
	}
}

func TestEventKindString(t *testing.T) {
	tests := []struct {
		kind EventKind
		want string
	}{
		{EventSpawn, "spawn"},
		{EventDespawn, "despawn"},
		{EventDamage, "damage"},
		{EventExplosion, "explosion"},
		{EventKind(0), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Fatalf("%d: expected %q, got %q", tc.kind, tc.want, got)
		}
	}
}

func TestNilQueueIsSafe(t *testing.T) {
	var q *Queue[DamageEvent]
	q.Push(DamageEvent{})
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("nil queue should stay empty")
	}
}
