package system

import "github.com/milk9111/starfall/ecs/component"

// InputState holds the latest input snapshot. A frontend refreshes it once
// per frame; systems only read it.
type InputState struct {
	intent component.InputIntent
	frames uint64
}

func NewInputState() *InputState {
	return &InputState{intent: component.InputIntent{Idle: true}}
}

// Refresh replaces the snapshot. Idle is derived from the directional flags
// and boost only counts while thrusting up.
func (s *InputState) Refresh(intent component.InputIntent) {
	if s == nil {
		return
	}
	intent = intent.Resolve()
	intent.Boost = intent.Boost && intent.Up
	s.intent = intent
	s.frames++
}

func (s *InputState) Intent() component.InputIntent {
	if s == nil {
		return component.InputIntent{Idle: true}
	}
	return s.intent
}

// Frames counts refreshes so far.
func (s *InputState) Frames() uint64 {
	if s == nil {
		return 0
	}
	return s.frames
}
