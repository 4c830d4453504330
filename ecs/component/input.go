package component

// InputIntent is the per-frame snapshot of directional and action flags.
type InputIntent struct {
	Up       bool
	Down     bool
	Left     bool
	Right    bool
	Idle     bool
	Shooting bool
	Boost    bool
}

// Resolve fills Idle from the directional flags.
func (i InputIntent) Resolve() InputIntent {
	i.Idle = !i.Up && !i.Down && !i.Left && !i.Right
	return i
}
