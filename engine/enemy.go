package engine

import (
	"fmt"
	"math"

	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/effect"
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/vmath"
)

// enemyVitals routes effect ticks through the shared damage path
type enemyVitals struct {
	e  *Engine
	en *Enemy
}

func (v enemyVitals) TakeDamage(amount float64) { v.e.damageEnemy(v.en, amount) }

func (v enemyVitals) Heal(amount float64) {
	if v.en.Alive() {
		v.en.HP = min(v.en.MaxHP, v.en.HP+amount)
	}
}

// updateEnemies runs effects, abilities and movement, then drops dead and escaped enemies
func (e *Engine) updateEnemies() {
	// Enemies added by abilities during the pass start moving next step
	count := len(e.enemies)
	for i := 0; i < count; i++ {
		en := e.enemies[i]
		if !en.Alive() {
			continue
		}

		e.effects.Update(&en.Effects, enemyVitals{e, en})
		if !en.Alive() {
			continue
		}

		e.useAbilities(en)
		if !en.Alive() {
			continue
		}

		speed := e.effects.Effective(&en.Effects, effect.StatSpeed, en.BaseSpeed) *
			e.theme.EnemySpeed * e.runMods.EnemySpeed
		e.moveEnemy(en, speed)
	}

	e.checkGameOver()

	kept := e.enemies[:0]
	for _, en := range e.enemies {
		if en.Alive() {
			kept = append(kept, en)
		}
	}
	clear(e.enemies[len(kept):])
	e.enemies = kept
}

// moveEnemy advances progress along the path, crossing nodes as needed
func (e *Engine) moveEnemy(en *Enemy, distance float64) {
	en.Progress += distance
	last := len(e.path) - 1
	for en.Progress >= 1 {
		en.Progress--
		en.PathIndex++
		if en.PathIndex >= last {
			en.PathIndex = last
			en.Progress = 0
			e.syncEnemyPosition(en)
			e.escape(en)
			return
		}
	}
	e.syncEnemyPosition(en)
}

// pullEnemy moves an enemy back along the path, never behind the start node
func (e *Engine) pullEnemy(en *Enemy, distance float64) {
	en.Progress -= distance
	for en.Progress < 0 && en.PathIndex > 0 {
		en.Progress++
		en.PathIndex--
	}
	if en.Progress < 0 {
		en.Progress = 0
	}
	e.syncEnemyPosition(en)
}

func (e *Engine) syncEnemyPosition(en *Enemy) {
	en.Pos = e.path[en.PathIndex]
	if en.PathIndex+1 < len(e.path) {
		en.Vec = vmath.Lerp(en.Pos.ToVec(), e.path[en.PathIndex+1].ToVec(), en.Progress)
	} else {
		en.Vec = en.Pos.ToVec()
	}
}

func (e *Engine) escape(en *Enemy) {
	en.Escaped = true
	e.lives -= en.LivesCost
	e.hitFlash = parameter.HitFlashTicks
	e.emit(CueLifeLost)
	e.log.Debug().Str("type", en.Type).Int("lives", e.lives).Msg("enemy reached base")
}

// damageEnemy is the only path through which enemies lose HP
// Shield absorbs first and overflow spills into HP
func (e *Engine) damageEnemy(en *Enemy, amount float64) {
	if !en.Alive() || amount <= 0 {
		return
	}
	amount = e.effects.Effective(&en.Effects, effect.StatDamageTaken, amount)

	if en.ShieldHP > 0 {
		absorbed := min(en.ShieldHP, amount)
		en.ShieldHP -= absorbed
		amount -= absorbed
	}
	en.HP -= amount
	if en.HP <= 0 {
		e.killEnemy(en)
	}
}

// killEnemy pays out once per enemy
func (e *Engine) killEnemy(en *Enemy) {
	if en.dead {
		return
	}
	en.dead = true

	reward := int(math.Round(float64(en.Reward+e.theme.MoneyBonus) * e.runMods.Money))
	e.money += reward
	e.moneyEarned += reward
	e.enemiesKilled++

	e.emit(CueKill)
	e.addParticle(Particle{Kind: ParticleExplosion, Pos: en.Vec, Color: en.Color,
		Life: parameter.ExplosionLife, MaxLife: parameter.ExplosionLife})
	if reward > 0 {
		e.addParticle(Particle{Kind: ParticleText, Pos: en.Vec, Text: fmt.Sprintf("+%d", reward), Color: "#ffd700",
			Life: parameter.FloatingTextLife, MaxLife: parameter.FloatingTextLife})
	}
}

// discardEnemy removes an enemy without payout, used by self-consuming abilities
func (e *Engine) discardEnemy(en *Enemy) {
	en.dead = true
}

func (e *Engine) enemyByID(id core.ID) *Enemy {
	for _, en := range e.enemies {
		if en.ID == id {
			return en
		}
	}
	return nil
}

// enemiesWithin returns living enemies within radius of center in collection order
func (e *Engine) enemiesWithin(center core.Vec, radius float64) []*Enemy {
	var out []*Enemy
	for _, en := range e.enemies {
		if en.Alive() && vmath.Distance(center, en.Vec) <= radius {
			out = append(out, en)
		}
	}
	return out
}

// towersWithin returns towers within radius of center
func (e *Engine) towersWithin(center core.Vec, radius float64) []*Tower {
	var out []*Tower
	for _, t := range e.towers {
		if vmath.Distance(center, t.Pos.ToVec()) <= radius {
			out = append(out, t)
		}
	}
	return out
}
