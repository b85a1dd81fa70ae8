package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-siege/buff"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/maze"
)

func TestBuildSites_AdjacentToPath(t *testing.T) {
	e := engine.New(engine.DefaultConfig(), engine.WithSeed(3))
	s := e.Snapshot()

	sites := buildSites(&s)
	require.NotEmpty(t, sites)

	seen := map[core.Point]bool{}
	for _, p := range sites {
		assert.Equal(t, maze.Empty, s.Grid[p.Row][p.Col], "site %v must be empty ground", p)
		assert.False(t, seen[p], "site %v listed twice", p)
		seen[p] = true

		near := false
		for _, q := range s.Path {
			if abs(q.Row-p.Row) <= 1 && abs(q.Col-p.Col) <= 1 {
				near = true
				break
			}
		}
		assert.True(t, near, "site %v must touch the path", p)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestDefender_SpendsStartingMoney(t *testing.T) {
	e := engine.New(engine.DefaultConfig(), engine.WithSeed(5))
	d := &defender{e: e, plan: DefaultPlan(), log: zerolog.Nop()}

	acted := d.act()
	assert.Positive(t, acted)
	assert.NotEmpty(t, e.Snapshot().Towers)
	assert.Equal(t, e.Wave(), d.earnedWave)

	// Nothing left to afford after the plan spent down
	nextKind, ok := e.Catalog().Tower(DefaultPlan().Order[d.next%len(DefaultPlan().Order)])
	require.True(t, ok)
	assert.Less(t, e.Money(), nextKind.Cost)
	_, pending := e.PendingAction()
	assert.False(t, pending)
}

func TestRun_Reproducible(t *testing.T) {
	opts := Options{Seed: 9, Frames: 3000, Speed: 2, Plan: DefaultPlan()}

	a := Run(opts, zerolog.Nop())
	b := Run(opts, zerolog.Nop())

	assert.Equal(t, a, b)
	assert.Equal(t, 3000, a.Frames)
	assert.Positive(t, a.Result.TowersBuilt)
	assert.GreaterOrEqual(t, a.Result.Wave, 2)
}

func TestRun_DefenceOutlastsEmptyBoard(t *testing.T) {
	defended := Run(Options{Seed: 4, Frames: 6000, Speed: 4, Plan: DefaultPlan()}, zerolog.Nop())
	empty := Run(Options{Seed: 4, Frames: 6000, Speed: 4}, zerolog.Nop())

	assert.Greater(t, defended.Result.EnemiesKilled, empty.Result.EnemiesKilled)
	assert.GreaterOrEqual(t, defended.Lives, empty.Lives)
}

func TestPickBuff(t *testing.T) {
	choices := []buff.Definition{
		{ID: "common", Rarity: buff.Common},
		{ID: "pact", Rarity: buff.Epic, Lives: -3},
		{ID: "rare", Rarity: buff.Rare},
	}
	got, ok := pickBuff(choices)
	require.True(t, ok)
	assert.Equal(t, "rare", got.ID)

	_, ok = pickBuff(nil)
	assert.False(t, ok)
}
