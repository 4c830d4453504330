package ecs

// Phase names one of the two system lists a world drives.
type Phase uint8

const (
	// PhaseFixed runs once per fixed simulation step.
	PhaseFixed Phase = iota
	// PhaseFrame runs once per Advance, after the due fixed steps.
	PhaseFrame
)

func (p Phase) String() string {
	switch p {
	case PhaseFixed:
		return "fixed"
	case PhaseFrame:
		return "frame"
	}
	return "unknown"
}

// Scheduler runs one phase's systems in registration order and counts
// completed passes.
type Scheduler struct {
	phase   Phase
	systems []System
	passes  uint64
}

func newScheduler(phase Phase) Scheduler {
	return Scheduler{phase: phase}
}

func (s *Scheduler) add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) run(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
	s.passes++
}

// Len is the number of registered systems.
func (s *Scheduler) Len() int {
	return len(s.systems)
}

// Passes counts completed runs of the whole list.
func (s *Scheduler) Passes() uint64 {
	return s.passes
}

func (s *Scheduler) Phase() Phase {
	return s.phase
}
