// Package audio synthesizes short sounds for engine cues and plays them through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/vmath"
)

// Options configures a Player
type Options struct {
	Enabled    bool
	SampleRate int
	// Volume is a base-2 exponent applied to every cue, 0 is unity, -1 halves
	Volume float64
}

// Player turns cues into sound, a disabled or uninitialized player is a no-op
type Player struct {
	opts  Options
	rate  beep.SampleRate
	log   zerolog.Logger
	mixer *beep.Mixer

	// rng is only touched under mu
	rng *vmath.FastRand

	mu          sync.Mutex
	initialized bool
	muted       atomic.Bool
}

// NewPlayer builds a player without touching the audio device
func NewPlayer(opts Options, log zerolog.Logger) *Player {
	if opts.SampleRate <= 0 {
		opts.SampleRate = 44100
	}
	return &Player{
		opts:  opts,
		rate:  beep.SampleRate(opts.SampleRate),
		log:   log,
		mixer: &beep.Mixer{},
		rng:   vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

// Init opens the speaker and starts the mixer, disabled players skip the device
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.opts.Enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Info().Int("sample_rate", int(p.rate)).Msg("audio initialized")
	return nil
}

// Stream renders the sound for c, nil for cues without a sound
func (p *Player) Stream(c engine.Cue) beep.Streamer {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stream(c)
}

func (p *Player) stream(c engine.Cue) beep.Streamer {
	s, ok := sounds[c]
	if !ok {
		return nil
	}
	return &effects.Volume{Streamer: s.build(p.rate, p.rng), Base: 2, Volume: p.opts.Volume}
}

// Play mixes the sound for c into the speaker output
func (p *Player) Play(c engine.Cue) {
	if p.muted.Load() {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := p.stream(c)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// PlayAll plays each cue in order, repeated cues of one frame collapse into one sound
func (p *Player) PlayAll(cues []engine.Cue) {
	var seen [16]bool
	for _, c := range cues {
		if int(c) < len(seen) {
			if seen[c] {
				continue
			}
			seen[c] = true
		}
		p.Play(c)
	}
}

// ToggleMute flips muting and returns the new state
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return muted
}

// Close stops playback and releases the device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
