package main

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// sounds mixes short synthesized cues into one speaker stream. All methods
// are no-ops until Init succeeds.
type sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func newSounds() *sounds {
	return &sounds{mixer: &beep.Mixer{}}
}

func (s *sounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

func (s *sounds) play(d time.Duration, gen beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(beep.Take(sampleRate.N(d), gen))
	speaker.Unlock()
}

// Explosion is a falling low rumble.
func (s *sounds) Explosion() {
	s.play(300*time.Millisecond, &sweep{sr: sampleRate, from: 160, to: 40, length: sampleRate.N(300 * time.Millisecond), gain: 0.25})
}

// Fire is a short high blip.
func (s *sounds) Fire() {
	s.play(40*time.Millisecond, &sweep{sr: sampleRate, from: 1200, to: 900, length: sampleRate.N(40 * time.Millisecond), gain: 0.05})
}

// sweep is a sine whose pitch slides from one frequency to another over
// length samples with a linear fade out.
type sweep struct {
	sr     beep.SampleRate
	from   float64
	to     float64
	length int
	gain   float64
	pos    int
	phase  float64
}

func (g *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := 1.0
		if g.length > 0 {
			progress = math.Min(float64(g.pos)/float64(g.length), 1)
		}
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		v := math.Sin(g.phase) * g.gain * (1 - progress)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweep) Err() error {
	return nil
}
