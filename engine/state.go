package engine

import (
	"slices"

	"github.com/lixenwraith/tower-siege/buff"
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/maze"
)

// State is a detached copy of everything a host renders
type State struct {
	Tick  uint64
	Speed float64

	Money int
	Lives int
	Wave  int

	Paused         bool
	GameOver       bool
	WaveInProgress bool
	Countdown      int
	RemainingSpawn int

	Enemies     []Enemy
	Towers      []Tower
	Projectiles []Projectile
	Particles   []Particle

	Grid  [][]maze.Cell
	Path  []core.Point
	Start core.Point
	Base  core.Point

	Theme        catalog.Theme
	Modifiers    buff.Modifiers
	Notification Notification
	HitFlash     int

	Pending    Action
	HasPending bool

	Result Result
}

// Snapshot deep-copies the public state
func (e *Engine) Snapshot() State {
	s := State{
		Tick:           e.tick,
		Speed:          e.speed,
		Money:          e.money,
		Lives:          e.lives,
		Wave:           e.wave,
		Paused:         e.paused,
		GameOver:       e.gameOver,
		WaveInProgress: e.waveInProgress,
		Countdown:      e.countdown,
		RemainingSpawn: e.remainingToSpawn,
		Grid:           maze.Clone(e.grid),
		Path:           slices.Clone(e.path),
		Start:          e.start,
		Base:           e.base,
		Theme:          e.theme,
		Modifiers:      e.runMods,
		Notification:   e.notification,
		HitFlash:       e.hitFlash,
		Result:         e.Result(),
	}
	s.Pending, s.HasPending = e.PendingAction()

	s.Enemies = make([]Enemy, 0, len(e.enemies))
	for _, en := range e.enemies {
		c := *en
		c.Abilities = slices.Clone(en.Abilities)
		c.Effects = en.Effects.Clone()
		s.Enemies = append(s.Enemies, c)
	}
	s.Towers = make([]Tower, 0, len(e.towers))
	for _, t := range e.towers {
		c := *t
		c.Effects = t.Effects.Clone()
		s.Towers = append(s.Towers, c)
	}
	s.Projectiles = make([]Projectile, 0, len(e.projectiles))
	for _, p := range e.projectiles {
		s.Projectiles = append(s.Projectiles, *p)
	}
	s.Particles = make([]Particle, 0, len(e.particles))
	for _, p := range e.particles {
		s.Particles = append(s.Particles, *p)
	}
	return s
}

// TowerAt returns the tower occupying p in the snapshot
func (s *State) TowerAt(p core.Point) (Tower, bool) {
	for _, t := range s.Towers {
		if t.Pos == p {
			return t, true
		}
	}
	return Tower{}, false
}
