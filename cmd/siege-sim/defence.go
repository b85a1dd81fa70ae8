package main

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-siege/buff"
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/maze"
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/status"
)

// Plan is a scripted defence: build order cycled over path-adjacent cells, upgrades once the board is full
type Plan struct {
	Order []catalog.TowerKind
	// Reserve is money kept back when building
	Reserve int
	// EarnBetweenWaves uses the earn-money action once per countdown
	EarnBetweenWaves bool
}

// DefaultPlan mixes direct damage with control towers
func DefaultPlan() Plan {
	return Plan{
		Order: []catalog.TowerKind{
			catalog.Archer, catalog.Cannon, catalog.Frost, catalog.Archer,
			catalog.Venom, catalog.Tesla, catalog.Sniper, catalog.Beacon,
		},
		EarnBetweenWaves: true,
	}
}

// Options is one headless run
type Options struct {
	Seed     uint64
	Frames   int
	Speed    float64
	MaxSteps int
	Plan     Plan
}

// Outcome summarises a finished run
type Outcome struct {
	Seed     uint64
	Result   engine.Result
	Lives    int
	GameOver bool
	Frames   int
	Buffs    []string
}

// buildSites lists empty cells adjacent to the path, in path order from the start
func buildSites(s *engine.State) []core.Point {
	seen := make(map[core.Point]bool)
	var out []core.Point
	for _, p := range s.Path {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				q := core.Point{Row: p.Row + dr, Col: p.Col + dc}
				if q.Row < 0 || q.Row >= len(s.Grid) || q.Col < 0 || q.Col >= len(s.Grid[q.Row]) {
					continue
				}
				if s.Grid[q.Row][q.Col] != maze.Empty || seen[q] {
					continue
				}
				seen[q] = true
				out = append(out, q)
			}
		}
	}
	return out
}

// defender applies a Plan to one engine
type defender struct {
	e    *engine.Engine
	plan Plan
	next int
	log  zerolog.Logger

	// earnedWave is the last wave whose countdown used the earn action
	earnedWave int
}

// act spends money per the plan, returns the number of committed actions
func (d *defender) act() int {
	if d.e.IsGameOver() || len(d.plan.Order) == 0 {
		return 0
	}
	acted := 0
	if d.plan.EarnBetweenWaves && !d.e.WaveInProgress() && d.earnedWave != d.e.Wave() {
		if d.e.RequestEarnMoney() && d.e.ConfirmAction() {
			d.earnedWave = d.e.Wave()
			acted++
		}
	}
	for d.buildOne() {
		acted++
	}
	for d.upgradeOne() {
		acted++
	}
	return acted
}

func (d *defender) buildOne() bool {
	kind := d.plan.Order[d.next%len(d.plan.Order)]
	stats, ok := d.e.Catalog().Tower(kind)
	if !ok || d.e.Money()-d.plan.Reserve < stats.Cost {
		return false
	}
	s := d.e.Snapshot()
	for _, p := range buildSites(&s) {
		if _, taken := s.TowerAt(p); taken {
			continue
		}
		if d.e.RequestBuild(p.Row, p.Col, kind) && d.e.ConfirmAction() {
			d.next++
			d.log.Debug().Stringer("kind", kind).Int("row", p.Row).Int("col", p.Col).Msg("built")
			return true
		}
	}
	return false
}

// upgradeOne upgrades the cheapest upgradable tower when no build site remains
func (d *defender) upgradeOne() bool {
	s := d.e.Snapshot()
	for _, p := range buildSites(&s) {
		if _, taken := s.TowerAt(p); !taken {
			return false
		}
	}

	var best *engine.Tower
	bestCost := 0
	for i := range s.Towers {
		t := &s.Towers[i]
		if t.Level >= parameter.TowerMaxLevel {
			continue
		}
		stats, ok := d.e.Catalog().Tower(t.Kind)
		if !ok {
			continue
		}
		cost := stats.UpgradeCost(t.Level)
		if best == nil || cost < bestCost {
			best, bestCost = t, cost
		}
	}
	if best == nil || d.e.Money()-d.plan.Reserve < bestCost {
		return false
	}
	return d.e.RequestUpgrade(best.ID) && d.e.ConfirmAction()
}

// Run plays one seeded game for at most opts.Frames host frames
func Run(opts Options, log zerolog.Logger) Outcome {
	cfg := engine.DefaultConfig()
	if opts.Speed > 0 {
		cfg.Speed = opts.Speed
	}
	if opts.MaxSteps > 0 {
		cfg.MaxStepsPerCall = opts.MaxSteps
	}
	reg := status.NewRegistry()
	e := engine.New(cfg, engine.WithSeed(opts.Seed), engine.WithLogger(log), engine.WithStatus(reg))
	d := &defender{e: e, plan: opts.Plan, log: log}

	out := Outcome{Seed: opts.Seed}
	for out.Frames < opts.Frames && !e.IsGameOver() {
		d.act()
		e.Tick()
		out.Frames++

		for _, c := range e.DrainCues() {
			if c != engine.CueWaveComplete {
				continue
			}
			completed := e.Wave() - 1
			if completed > 0 && completed%parameter.BuffChoiceInterval == 0 {
				choices := buff.GenerateChoices(e.Rand(), buff.OddsForWave(completed))
				if pick, ok := pickBuff(choices); ok {
					e.ApplyBuff(pick)
					out.Buffs = append(out.Buffs, pick.ID)
				}
			}
		}
	}

	out.Result = e.Result()
	out.Lives = e.Lives()
	out.GameOver = e.IsGameOver()

	ev := log.Debug()
	for _, m := range reg.Snapshot() {
		ev = ev.Str(m.Key, m.Value)
	}
	ev.Msg("final telemetry")
	return out
}

// pickBuff prefers the rarest offered buff that does not cost lives
func pickBuff(choices []buff.Definition) (buff.Definition, bool) {
	var best buff.Definition
	found := false
	for _, c := range choices {
		if c.Lives < 0 && found {
			continue
		}
		if !found || c.Rarity > best.Rarity || (best.Lives < 0 && c.Lives >= 0) {
			best, found = c, true
		}
	}
	return best, found
}
