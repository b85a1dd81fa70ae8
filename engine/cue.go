package engine

// Cue is a host feedback hint raised by the simulation
type Cue uint8

const (
	CueBuild Cue = iota
	CueUpgrade
	CueSell
	CueKill
	CueLifeLost
	CueEffect
	CueWaveStart
	CueWaveComplete
	CueMapRegenerated
	CueGameOver
	CueBlocked
)

var cueNames = [...]string{
	"build", "upgrade", "sell", "kill", "life_lost", "effect",
	"wave_start", "wave_complete", "map_regenerated", "game_over", "blocked",
}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// maxPendingCues drops the oldest cues when a host stops draining
const maxPendingCues = 256

func (e *Engine) emit(c Cue) {
	if len(e.cues) >= maxPendingCues {
		e.cues = e.cues[1:]
	}
	e.cues = append(e.cues, c)
}

// DrainCues returns and clears cues raised since the last call
func (e *Engine) DrainCues() []Cue {
	out := e.cues
	e.cues = nil
	return out
}
