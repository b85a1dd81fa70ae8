package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/vmath"
)

// drain pulls every sample out of s
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

func peak(samples [][2]float64) float64 {
	var p float64
	for _, s := range samples {
		p = math.Max(p, math.Abs(s[0]))
	}
	return p
}

func allCues() []engine.Cue {
	var cues []engine.Cue
	for c := engine.CueBuild; c <= engine.CueBlocked; c++ {
		cues = append(cues, c)
	}
	return cues
}

// ==================================================
// Synth
// ==================================================

func TestOscillator_Length(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := newSweep(440, 440, 100*time.Millisecond, WaveSine, rate, vmath.NewFastRand(1))

	samples := drain(osc)
	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	if p := peak(samples); p > 1.0 || p < 0.9 {
		t.Errorf("Expected sine peak near 1, got %f", p)
	}
}

func TestEnvelope_StartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(8000)
	d := 200 * time.Millisecond
	osc := newSweep(200, 200, d, WaveSquare, rate, vmath.NewFastRand(1))
	env := newEnvelope(osc, d, 20*time.Millisecond, 50*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) == 0 {
		t.Fatal("Expected samples")
	}
	if math.Abs(samples[0][0]) != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.05 {
		t.Errorf("Expected released tail, got %f", last)
	}
	mid := samples[len(samples)/2][0]
	if math.Abs(mid) != 1 {
		t.Errorf("Expected full square amplitude mid-sustain, got %f", mid)
	}
}

func TestGain_Silent(t *testing.T) {
	rate := beep.SampleRate(8000)
	osc := newSweep(440, 440, 50*time.Millisecond, WaveSine, rate, vmath.NewFastRand(1))
	if p := peak(drain(gain(osc, 0))); p != 0 {
		t.Errorf("Expected silence at zero gain, got peak %f", p)
	}
}

// ==================================================
// Player
// ==================================================

func TestPlayer_EveryCueHasFiniteSound(t *testing.T) {
	p := NewPlayer(Options{SampleRate: 8000}, zerolog.Nop())

	for _, c := range allCues() {
		s := p.Stream(c)
		if s == nil {
			t.Errorf("Expected sound for cue %s", c)
			continue
		}
		samples := drain(s)
		if len(samples) == 0 {
			t.Errorf("Expected samples for cue %s", c)
		}
		if len(samples) > 8000*2 {
			t.Errorf("Expected cue %s shorter than 2s, got %d samples", c, len(samples))
		}
		if peak(samples) == 0 {
			t.Errorf("Expected audible cue %s", c)
		}
	}
}

func TestPlayer_VolumeExponent(t *testing.T) {
	loud := NewPlayer(Options{SampleRate: 8000}, zerolog.Nop())
	quiet := NewPlayer(Options{SampleRate: 8000, Volume: -2}, zerolog.Nop())

	lp := peak(drain(loud.Stream(engine.CueBlocked)))
	qp := peak(drain(quiet.Stream(engine.CueBlocked)))
	if math.Abs(qp-lp/4) > 1e-9 {
		t.Errorf("Expected quarter amplitude %f, got %f", lp/4, qp)
	}
}

func TestPlayer_UnknownCue(t *testing.T) {
	p := NewPlayer(Options{}, zerolog.Nop())
	if s := p.Stream(engine.Cue(200)); s != nil {
		t.Error("Expected nil streamer for unknown cue")
	}
}

func TestPlayer_DisabledIsNoop(t *testing.T) {
	p := NewPlayer(Options{Enabled: false}, zerolog.Nop())
	if err := p.Init(); err != nil {
		t.Fatalf("Expected disabled init to succeed, got %v", err)
	}

	// Nothing is initialized so these must not reach the speaker
	p.Play(engine.CueKill)
	p.PlayAll(allCues())
	p.Close()
}

func TestPlayer_ToggleMute(t *testing.T) {
	p := NewPlayer(Options{}, zerolog.Nop())
	if !p.ToggleMute() {
		t.Error("Expected muted after first toggle")
	}
	if p.ToggleMute() {
		t.Error("Expected unmuted after second toggle")
	}
}
