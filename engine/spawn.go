package engine

import (
	"math"
	"slices"

	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/parameter"
)

// bossClassFor grades the spawn about to happen; only the last spawn of a wave can be a boss
func (e *Engine) bossClassFor(last bool) BossClass {
	switch {
	case !last:
		return BossNone
	case e.wave%parameter.BigBossWaveInterval == 0:
		return BossBig
	case e.wave%parameter.MiniBossWaveInterval == 0:
		return BossMini
	default:
		return BossNone
	}
}

func (e *Engine) spawnEnemy() {
	if len(e.path) < 2 {
		return
	}
	boss := e.bossClassFor(e.remainingToSpawn == 1)
	t, ok := e.pickEnemyType(boss != BossNone)
	if !ok {
		e.log.Warn().Int("wave", e.wave).Msg("no enemy type available for spawn")
		return
	}
	e.enemies = append(e.enemies, e.newEnemy(t, boss))
}

// pickEnemyType filters the type table for the current wave and draws one entry
func (e *Engine) pickEnemyType(bossWave bool) (catalog.EnemyType, bool) {
	types := e.catalog.Enemies
	if len(types) == 0 {
		return catalog.EnemyType{}, false
	}

	lateBoss := !bossWave && e.wave > parameter.BossLateWaveThreshold && e.rng.Chance(parameter.BossChanceLateWave)
	hardBlocked := e.wave <= parameter.HardAbilityWaveThreshold

	pool := make([]catalog.EnemyType, 0, len(types))
	for _, t := range types {
		if t.MinWave > e.wave {
			continue
		}
		if bossWave && !t.Boss {
			continue
		}
		if !bossWave && t.Boss && !lateBoss {
			continue
		}
		if hardBlocked && t.HasAny(catalog.HardAbilities) {
			continue
		}
		pool = append(pool, t)
	}

	if len(pool) == 0 {
		for _, t := range types {
			if t.MinWave <= e.wave {
				pool = append(pool, t)
			}
		}
	}
	if len(pool) == 0 {
		return catalog.EnemyType{}, false
	}
	return pool[e.rng.Intn(len(pool))], true
}

// newEnemy scales a type for the current wave and boss class and places it on the start node
func (e *Engine) newEnemy(t catalog.EnemyType, boss BossClass) *Enemy {
	growth := WaveGrowth(e.wave)
	hp := t.HP * growth * e.theme.EnemyHP * e.runMods.EnemyHP
	en := &Enemy{
		ID:             e.ids.Next(),
		Type:           t.Key,
		Name:           t.Name,
		Icon:           t.Icon,
		Color:          t.Color,
		Pos:            e.path[0],
		Vec:            e.path[0].ToVec(),
		HP:             hp,
		MaxHP:          hp,
		BaseSpeed:      t.Speed,
		Reward:         int(math.Round(float64(t.Reward) * growth)),
		Scale:          t.Scale,
		Abilities:      slices.Clone(t.Abilities),
		LastAbilityUse: e.tick,
		Boss:           boss,
		LivesCost:      parameter.EscapeLivesNormal,
	}

	var extra int
	switch boss {
	case BossMini:
		en.scaleBoss(parameter.MiniBossHPMultiplier, parameter.MiniBossScale, parameter.MiniBossShieldRatio)
		en.LivesCost = parameter.EscapeLivesMiniBoss
		en.Reward *= int(parameter.MiniBossHPMultiplier)
		extra = e.rng.IntRange(1, 2)
	case BossBig:
		en.scaleBoss(parameter.BigBossHPMultiplier, parameter.BigBossScale, parameter.BigBossShieldRatio)
		en.LivesCost = parameter.EscapeLivesBigBoss
		en.Reward *= int(parameter.BigBossHPMultiplier)
		extra = e.rng.IntRange(2, 3)
	}
	for range extra {
		a, ok := e.drawBossAbility(en.Abilities)
		if !ok {
			break
		}
		en.Abilities = append(en.Abilities, a)
	}
	if boss != BossNone {
		e.log.Info().Str("type", t.Key).Stringer("class", boss).Float64("hp", en.MaxHP).
			Int("abilities", len(en.Abilities)).Msg("boss spawned")
	}
	return en
}

func (en *Enemy) scaleBoss(hpMul, scale, shieldRatio float64) {
	en.MaxHP *= hpMul
	en.HP = en.MaxHP
	en.Scale *= scale
	en.BaseSpeed *= scale
	en.MaxShieldHP = en.MaxHP * shieldRatio
	en.ShieldHP = en.MaxShieldHP
}

// drawBossAbility picks a pool ability not yet owned
func (e *Engine) drawBossAbility(owned []catalog.Ability) (catalog.Ability, bool) {
	var candidates []catalog.Ability
	for _, a := range catalog.BossAbilityPool {
		if !slices.Contains(owned, a) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[e.rng.Intn(len(candidates))], true
}
