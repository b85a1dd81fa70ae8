package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/effect"
)

// ============================================================================
// Damage primitive and kill routine
// ============================================================================

func TestScenarioKillPaysOnce(t *testing.T) {
	e := newTestEngine(t, 1)
	en := addEnemy(t, e, "grunt", 2)
	before := e.Money()
	reward := en.Reward

	e.damageEnemy(en, en.HP)
	assert.Equal(t, before+reward, e.Money())
	assert.Equal(t, 1, e.Result().EnemiesKilled)

	e.damageEnemy(en, 100)
	e.killEnemy(en)
	assert.Equal(t, before+reward, e.Money(), "second kill is a no-op")
	assert.Equal(t, 1, e.Result().EnemiesKilled)
	assert.Equal(t, reward, e.Result().MoneyEarned)

	e.Tick()
	assert.Nil(t, e.enemyByID(en.ID))
	assert.Equal(t, 1, countCue(e.DrainCues(), CueKill))
}

func TestKillAddsThemeBonus(t *testing.T) {
	e := newTestEngine(t, 1)
	e.theme = e.catalog.ThemeForWave(41)
	require.Equal(t, 5, e.theme.MoneyBonus)

	en := addEnemy(t, e, "runner", 0)
	before := e.Money()
	e.damageEnemy(en, en.HP*10)
	assert.Equal(t, before+en.Reward+5, e.Money())
}

func TestShieldAbsorbsFirst(t *testing.T) {
	e := newTestEngine(t, 1)
	en := addEnemy(t, e, "grunt", 0)
	en.HP, en.MaxHP = 100, 100
	en.ShieldHP = 30

	e.damageEnemy(en, 20)
	assert.Equal(t, 10.0, en.ShieldHP)
	assert.Equal(t, 100.0, en.HP)

	e.damageEnemy(en, 25)
	assert.Equal(t, 0.0, en.ShieldHP)
	assert.Equal(t, 85.0, en.HP)
}

func TestShieldInvariant(t *testing.T) {
	e := newTestEngine(t, 4)
	e.wave = 10
	warlord, _ := e.catalog.Enemy("warlord")

	for trial := 0; trial < 50; trial++ {
		boss := e.newEnemy(warlord, BossBig)
		e.enemies = append(e.enemies, boss)
		for boss.Alive() {
			d := e.rng.Float64() * 200
			shield, hp := boss.ShieldHP, boss.HP
			e.damageEnemy(boss, d)

			assert.GreaterOrEqual(t, boss.ShieldHP, 0.0)
			assert.LessOrEqual(t, hp-boss.HP, math.Max(0, d-shield)+1e-9)
		}
	}
}

func TestFortifyReducesDamageTaken(t *testing.T) {
	e := newTestEngine(t, 1)
	en := addEnemy(t, e, "brute", 0)
	en.HP, en.MaxHP = 100, 100
	require.True(t, e.effects.Apply(&en.Effects, effect.Fortify, 0))

	e.damageEnemy(en, 10)
	assert.InDelta(t, 93.0, en.HP, 1e-9)
}

func TestPoisonTicksThroughDamagePath(t *testing.T) {
	e := newTestEngine(t, 1)
	en := addEnemy(t, e, "grunt", 0)
	en.HP = 0.05
	en.ShieldHP = 0
	e.effects.Apply(&en.Effects, effect.Poison, 0)

	before := e.Money()
	e.Tick()
	assert.Greater(t, e.Money(), before, "poison kill pays reward")
	assert.Empty(t, e.enemies)
}

// ============================================================================
// Targeting and firing
// ============================================================================

func TestTargetNearestWithStableTieBreak(t *testing.T) {
	e := newTestEngine(t, 1)
	tw := &Tower{Pos: core.Point{Row: 5, Col: 5}, Range: 3}

	far := &Enemy{ID: 1, HP: 1, MaxHP: 1, Vec: core.Vec{Row: 5, Col: 7.5}}
	tieA := &Enemy{ID: 2, HP: 1, MaxHP: 1, Vec: core.Vec{Row: 4, Col: 5}}
	tieB := &Enemy{ID: 3, HP: 1, MaxHP: 1, Vec: core.Vec{Row: 6, Col: 5}}
	outside := &Enemy{ID: 4, HP: 1, MaxHP: 1, Vec: core.Vec{Row: 5, Col: 9}}
	e.enemies = []*Enemy{far, tieA, tieB, outside}

	assert.Equal(t, tieA, e.acquireTarget(tw))

	e.enemies = []*Enemy{far, tieB, tieA}
	assert.Equal(t, tieB, e.acquireTarget(tw))

	e.enemies = []*Enemy{outside}
	assert.Nil(t, e.acquireTarget(tw))
}

func TestInstantShotDamagesImmediately(t *testing.T) {
	e := newTestEngine(t, 1)
	stats, _ := e.catalog.Tower(catalog.Sniper)
	tw := &Tower{Kind: catalog.Sniper, Pos: core.Point{Row: 0, Col: 0}, Damage: 45}
	en := addEnemy(t, e, "brute", 0)
	en.HP, en.MaxHP = 100, 100

	e.fire(tw, stats, en)
	assert.Equal(t, 55.0, en.HP)
	require.Len(t, e.projectiles, 1)
	p := e.projectiles[0]
	assert.Equal(t, catalog.StyleSniper, p.Style)
	assert.Equal(t, 8, p.Life)

	for range 8 {
		e.updateProjectiles()
	}
	assert.Empty(t, e.projectiles)
	assert.Equal(t, 55.0, en.HP, "cosmetic record deals no damage")
}

func TestTravelingProjectileHitsOnArrival(t *testing.T) {
	e := newTestEngine(t, 1)
	stats, _ := e.catalog.Tower(catalog.Archer)
	en := addEnemy(t, e, "brute", 0)
	en.HP, en.MaxHP = 100, 100
	tw := &Tower{Kind: catalog.Archer, Pos: en.Pos.Add(0, 2), Damage: 10}

	e.fire(tw, stats, en)
	require.Len(t, e.projectiles, 1)
	assert.Equal(t, 100.0, en.HP, "damage deferred to impact")

	for i := 0; i < 20 && len(e.projectiles) > 0; i++ {
		e.updateProjectiles()
	}
	assert.Empty(t, e.projectiles)
	assert.Equal(t, 90.0, en.HP)
}

func TestProjectileWithDespawnedTarget(t *testing.T) {
	e := newTestEngine(t, 1)
	stats, _ := e.catalog.Tower(catalog.Archer)
	target := addEnemy(t, e, "grunt", 0)
	bystander := addEnemy(t, e, "grunt", 0)
	hp := bystander.HP
	tw := &Tower{Kind: catalog.Archer, Pos: target.Pos.Add(0, 2), Damage: 10}

	e.fire(tw, stats, target)
	e.enemies = []*Enemy{bystander}

	for i := 0; i < 20 && len(e.projectiles) > 0; i++ {
		e.updateProjectiles()
	}
	assert.Empty(t, e.projectiles)
	assert.Equal(t, hp, bystander.HP)
}

func TestSplashHitsEveryEnemyInRadius(t *testing.T) {
	e := newTestEngine(t, 1)
	stats, _ := e.catalog.Tower(catalog.Cannon)
	a := addEnemy(t, e, "brute", 0)
	b := addEnemy(t, e, "brute", 0)
	far := addEnemy(t, e, "brute", len(e.path)-2)
	for _, en := range []*Enemy{a, b, far} {
		en.HP, en.MaxHP = 100, 100
	}
	tw := &Tower{Kind: catalog.Cannon, Pos: a.Pos.Add(0, 1), Damage: 22}

	e.fire(tw, stats, a)
	for i := 0; i < 40 && len(e.projectiles) > 0; i++ {
		e.updateProjectiles()
	}
	assert.Equal(t, 78.0, a.HP)
	assert.Equal(t, 78.0, b.HP)
	assert.Equal(t, 100.0, far.HP)
}

func TestBeamDealsContinuousDamage(t *testing.T) {
	e := newTestEngine(t, 1)
	p := cellsNearPath(e, 1)[0]
	tw := placeTower(t, e, p, catalog.Laser)

	en := addEnemy(t, e, "brute", 0)
	en.HP, en.MaxHP = 1000, 1000
	en.BaseSpeed = 0
	en.Vec = p.ToVec()

	e.updateTowers()
	assert.InDelta(t, 1000-12*0.04, en.HP, 1e-9)
	e.updateTowers()
	assert.InDelta(t, 1000-2*12*0.04, en.HP, 1e-9)
	assert.Equal(t, en.ID, tw.TargetID)

	e.updateProjectiles()
	e.updateTowers()
	e.updateProjectiles()
	assert.LessOrEqual(t, len(e.projectiles), 2, "beam records expire")
}

func TestTowerFacesTarget(t *testing.T) {
	e := newTestEngine(t, 1)
	p := cellsNearPath(e, 1)[0]
	tw := placeTower(t, e, p, catalog.Archer)
	en := addEnemy(t, e, "brute", 0)
	en.Vec = core.Vec{Row: float64(p.Row), Col: float64(p.Col) + 1}

	e.updateTowers()
	assert.InDelta(t, 0.0, tw.Angle, 1e-9)
	assert.Len(t, e.projectiles, 1)
	assert.InDelta(t, 40.0, tw.Cooldown, 1e-9)

	e.updateTowers()
	assert.Len(t, e.projectiles, 1, "cooldown gates the next shot")
}

func TestDisabledTowerHoldsFire(t *testing.T) {
	e := newTestEngine(t, 1)
	p := cellsNearPath(e, 1)[0]
	tw := placeTower(t, e, p, catalog.Archer)
	e.effects.Apply(&tw.Effects, effect.Disabled, 0)
	en := addEnemy(t, e, "brute", 0)
	en.Vec = p.ToVec()

	e.updateTowers()
	assert.Empty(t, e.projectiles)
	assert.Zero(t, tw.TargetID)
}

func TestSpecials(t *testing.T) {
	e := newTestEngine(t, 1)

	frost, _ := e.catalog.Tower(catalog.Frost)
	en := addEnemy(t, e, "brute", 4)
	e.applySpecial(frost, en)
	assert.True(t, en.Effects.Has(effect.Slow))

	venom, _ := e.catalog.Tower(catalog.Venom)
	near := addEnemy(t, e, "brute", 4)
	e.applySpecial(venom, en)
	assert.True(t, en.Effects.Has(effect.Poison))
	assert.True(t, near.Effects.Has(effect.Poison))

	vortex, _ := e.catalog.Tower(catalog.Vortex)
	en.Progress = 0.3
	e.applySpecial(vortex, en)
	assert.Equal(t, 3, en.PathIndex)
	assert.InDelta(t, 0.7, en.Progress, 1e-9)

	start := addEnemy(t, e, "grunt", 0)
	e.applySpecial(vortex, start)
	assert.Equal(t, 0, start.PathIndex)
	assert.Equal(t, 0.0, start.Progress)
}

func TestStunStopsMovement(t *testing.T) {
	e := newTestEngine(t, 1)
	en := addEnemy(t, e, "runner", 1)
	e.effects.Apply(&en.Effects, effect.Stun, 0)

	e.updateEnemies()
	assert.Equal(t, 1, en.PathIndex)
	assert.Equal(t, 0.0, en.Progress)
}

func TestBeaconEmpowersNeighbours(t *testing.T) {
	e := newTestEngine(t, 1)
	e.money = 10000
	cells := cellsNearPath(e, 30)
	beaconCell := cells[0]
	var neighbour core.Point
	found := false
	for _, c := range cells[1:] {
		if math.Hypot(float64(c.Row-beaconCell.Row), float64(c.Col-beaconCell.Col)) <= 2 {
			neighbour, found = c, true
			break
		}
	}
	require.True(t, found)

	placeTower(t, e, beaconCell, catalog.Beacon)
	archer := placeTower(t, e, neighbour, catalog.Archer)

	e.updateTowers()
	assert.True(t, archer.Effects.Has(effect.Empower))

	e.updateTowers()
	assert.InDelta(t, 12.5, archer.Damage, 1e-9)
}
