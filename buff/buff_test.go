package buff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-siege/vmath"
)

func TestTableCoversRarities(t *testing.T) {
	require.GreaterOrEqual(t, len(DefaultTable), 12)

	seen := map[Rarity]int{}
	ids := map[string]bool{}
	for _, d := range DefaultTable {
		seen[d.Rarity]++
		assert.False(t, ids[d.ID], "duplicate id %s", d.ID)
		ids[d.ID] = true
		assert.NotZero(t, d.Waves, d.ID)
	}
	for _, r := range []Rarity{Common, Rare, Epic, Legendary} {
		assert.Positive(t, seen[r], r.String())
	}
}

func TestGenerateChoicesDistinct(t *testing.T) {
	rng := vmath.NewFastRand(42)
	for wave := 1; wave <= 40; wave++ {
		choices := GenerateChoices(rng, OddsForWave(wave))
		require.Len(t, choices, ChoiceCount)
		assert.NotEqual(t, choices[0].ID, choices[1].ID)
		assert.NotEqual(t, choices[0].ID, choices[2].ID)
		assert.NotEqual(t, choices[1].ID, choices[2].ID)
	}
}

func TestGenerateChoicesDeterministic(t *testing.T) {
	a := GenerateChoices(vmath.NewFastRand(9), OddsForWave(15))
	b := GenerateChoices(vmath.NewFastRand(9), OddsForWave(15))
	assert.Equal(t, a, b)
}

func TestGenerateChoicesSmallTable(t *testing.T) {
	table := DefaultTable[:2]
	choices := GenerateChoicesFrom(table, vmath.NewFastRand(1), Odds{Legendary: 1})
	require.Len(t, choices, 2)
	assert.NotEqual(t, choices[0].ID, choices[1].ID)
}

func TestLegendaryOnlyOdds(t *testing.T) {
	rng := vmath.NewFastRand(5)
	for i := 0; i < 20; i++ {
		for _, d := range GenerateChoices(rng, Odds{Legendary: 1}) {
			assert.Equal(t, Legendary, d.Rarity)
		}
	}
}

func TestOddsEscalate(t *testing.T) {
	prev := OddsForWave(1).Legendary
	for _, wave := range []int{10, 20, 30} {
		o := OddsForWave(wave)
		assert.Greater(t, o.Legendary+o.Epic, prev, "wave %d", wave)
		prev = o.Legendary + o.Epic
	}
	assert.Equal(t, OddsForWave(10), OddsForWave(19))
}

func TestTrackerExpiry(t *testing.T) {
	var tr Tracker
	short, _ := Lookup("mudslide")
	forever, _ := Lookup("arsenal")
	tr.Add(short)
	tr.Add(forever)
	require.Equal(t, 2, tr.Len())

	assert.Empty(t, tr.AdvanceWave())
	expired := tr.AdvanceWave()
	require.Len(t, expired, 1)
	assert.Equal(t, "mudslide", expired[0].ID)

	for i := 0; i < 50; i++ {
		tr.AdvanceWave()
	}
	require.Equal(t, 1, tr.Len())
	assert.True(t, tr.Active()[0].Permanent())
}

func TestTrackerModifiers(t *testing.T) {
	var tr Tracker
	assert.Equal(t, Neutral(), tr.Modifiers())

	tr.Add(Definition{ID: "a", Waves: 1, TowerDamage: 0.5})
	tr.Add(Definition{ID: "b", Waves: 1, TowerDamage: 0.2, EnemySpeed: -0.5})
	m := tr.Modifiers()
	assert.InDelta(t, 1.8, m.TowerDamage, 1e-9)
	assert.InDelta(t, 0.5, m.EnemySpeed, 1e-9)

	tr.Add(Definition{ID: "c", Waves: 1, EnemySpeed: -0.9})
	assert.InDelta(t, modifierFloor, tr.Modifiers().EnemySpeed, 1e-9)

	tr.Reset()
	assert.Zero(t, tr.Len())
}
