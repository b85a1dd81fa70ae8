package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/vmath"
)

// tone is one enveloped voice of a cue sound
type tone struct {
	wave     WaveType
	freq     float64
	endFreq  float64
	duration time.Duration
	attack   time.Duration
	release  time.Duration
	level    float64
}

// sound is a cue recipe, chords play together and steps play in sequence
type sound struct {
	steps [][]tone
}

func note(wave WaveType, freq float64, d time.Duration, level float64) tone {
	return tone{wave: wave, freq: freq, endFreq: freq, duration: d, attack: 5 * time.Millisecond, release: d / 2, level: level}
}

func glide(wave WaveType, from, to float64, d time.Duration, level float64) tone {
	t := note(wave, from, d, level)
	t.endFreq = to
	return t
}

var sounds = map[engine.Cue]sound{
	engine.CueBuild: {steps: [][]tone{
		{note(WaveSquare, 523.25, 60*time.Millisecond, 0.3)},
		{note(WaveSquare, 783.99, 90*time.Millisecond, 0.3)},
	}},
	engine.CueUpgrade: {steps: [][]tone{
		{note(WaveSine, 659.25, 70*time.Millisecond, 0.5)},
		{note(WaveSine, 880, 70*time.Millisecond, 0.5)},
		{note(WaveSine, 1318.51, 120*time.Millisecond, 0.5), note(WaveSine, 2637.02, 120*time.Millisecond, 0.15)},
	}},
	engine.CueSell: {steps: [][]tone{
		{note(WaveSquare, 987.77, 60*time.Millisecond, 0.25)},
		{note(WaveSquare, 1318.51, 140*time.Millisecond, 0.25)},
	}},
	engine.CueKill: {steps: [][]tone{
		{glide(WaveNoise, 0, 0, 80*time.Millisecond, 0.2), glide(WaveSine, 220, 90, 80*time.Millisecond, 0.3)},
	}},
	engine.CueLifeLost: {steps: [][]tone{
		{glide(WaveSaw, 180, 80, 250*time.Millisecond, 0.4)},
	}},
	engine.CueEffect: {steps: [][]tone{
		{note(WaveSine, 880, 120*time.Millisecond, 0.35), note(WaveSine, 1760, 120*time.Millisecond, 0.1)},
	}},
	engine.CueWaveStart: {steps: [][]tone{
		{glide(WaveSaw, 110, 220, 300*time.Millisecond, 0.3)},
	}},
	engine.CueWaveComplete: {steps: [][]tone{
		{note(WaveSine, 523.25, 100*time.Millisecond, 0.4)},
		{note(WaveSine, 659.25, 100*time.Millisecond, 0.4)},
		{note(WaveSine, 783.99, 200*time.Millisecond, 0.4)},
	}},
	engine.CueMapRegenerated: {steps: [][]tone{
		{glide(WaveNoise, 0, 0, 400*time.Millisecond, 0.15), glide(WaveSine, 80, 400, 400*time.Millisecond, 0.3)},
	}},
	engine.CueGameOver: {steps: [][]tone{
		{note(WaveSaw, 392, 200*time.Millisecond, 0.35)},
		{note(WaveSaw, 311.13, 200*time.Millisecond, 0.35)},
		{glide(WaveSaw, 261.63, 130.81, 600*time.Millisecond, 0.35)},
	}},
	engine.CueBlocked: {steps: [][]tone{
		{note(WaveSaw, 100, 150*time.Millisecond, 0.3)},
	}},
}

// build renders a recipe into a finite streamer
func (s sound) build(rate beep.SampleRate, rng *vmath.FastRand) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(s.steps))
	for _, chord := range s.steps {
		voices := make([]beep.Streamer, 0, len(chord))
		for _, t := range chord {
			osc := newSweep(t.freq, t.endFreq, t.duration, t.wave, rate, rng)
			voices = append(voices, gain(newEnvelope(osc, t.duration, t.attack, t.release, rate), t.level))
		}
		if len(voices) == 1 {
			seq = append(seq, voices[0])
			continue
		}
		// Mix pads to the longest voice, Take bounds it to the chord length
		seq = append(seq, beep.Take(rate.N(chordLength(chord)), beep.Mix(voices...)))
	}
	return beep.Seq(seq...)
}

func chordLength(chord []tone) time.Duration {
	var d time.Duration
	for _, t := range chord {
		d = max(d, t.duration)
	}
	return d
}
