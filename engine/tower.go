package engine

import (
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/effect"
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/vmath"
)

// towerVitals lets tower effects wear destructible towers down
type towerVitals struct {
	e *Engine
	t *Tower
}

func (v towerVitals) TakeDamage(amount float64) { v.e.damageTower(v.t, amount) }

func (v towerVitals) Heal(amount float64) {
	if v.t.Destructible() {
		v.t.HP = min(v.t.MaxHP, v.t.HP+amount)
	}
}

// updateTowers recomputes effective stats, acquires targets and fires
func (e *Engine) updateTowers() {
	// Iterate a copy: tower effects can destroy towers mid-pass
	towers := append([]*Tower(nil), e.towers...)
	for _, t := range towers {
		stats, ok := e.catalog.Tower(t.Kind)
		if !ok {
			e.log.Warn().Stringer("kind", t.Kind).Msg("tower kind missing from catalog")
			continue
		}
		if !t.baseReady {
			t.BaseDamage, t.BaseRange, t.BaseCooldown = stats.AtLevel(t.Level)
			t.baseReady = true
		}

		e.effects.Update(&t.Effects, towerVitals{e, t})
		if t.Destructible() && t.HP <= 0 {
			continue
		}
		e.recomputeTower(t)

		if t.Cooldown > 0 {
			t.Cooldown--
		}
		if e.effects.IsDisabled(&t.Effects) {
			t.TargetID = 0
			continue
		}

		if stats.Special == catalog.SpecialEmpower {
			if t.Cooldown <= 0 {
				e.empower(t, stats)
				t.Cooldown = t.CooldownTicks
			}
			continue
		}

		target := e.acquireTarget(t)
		if target == nil {
			t.TargetID = 0
			continue
		}
		t.TargetID = target.ID
		t.Angle = vmath.BearingDegrees(t.Pos.ToVec(), target.Vec)

		if stats.Style.Continuous() {
			e.fireBeam(t, stats, target)
			continue
		}
		if t.Cooldown <= 0 {
			e.fire(t, stats, target)
			t.Cooldown = t.CooldownTicks
		}
	}
}

// recomputeTower derives effective stats from base, effects, theme and run buffs
func (e *Engine) recomputeTower(t *Tower) {
	t.Damage = e.effects.Effective(&t.Effects, effect.StatDamage, t.BaseDamage) *
		e.theme.TowerDamage * e.runMods.TowerDamage
	t.Range = e.effects.Effective(&t.Effects, effect.StatRange, t.BaseRange) *
		e.theme.TowerRange * e.runMods.TowerRange
	t.CooldownTicks = e.effects.Effective(&t.Effects, effect.StatCooldown, t.BaseCooldown) *
		e.theme.TowerCooldown / e.runMods.TowerFireRate
}

// acquireTarget picks the nearest living enemy in range, first found wins ties
func (e *Engine) acquireTarget(t *Tower) *Enemy {
	origin := t.Pos.ToVec()
	var best *Enemy
	bestDist := t.Range
	for _, en := range e.enemies {
		if !en.Alive() {
			continue
		}
		d := vmath.Distance(origin, en.Vec)
		if d > t.Range {
			continue
		}
		if best == nil || d < bestDist {
			best, bestDist = en, d
		}
	}
	return best
}

// fireBeam deals a fraction of damage every step and leaves a short-lived beam record
func (e *Engine) fireBeam(t *Tower, stats catalog.TowerStats, target *Enemy) {
	e.damageEnemy(target, t.Damage*parameter.BeamTickFraction)
	origin := t.Pos.ToVec()
	e.projectiles = append(e.projectiles, &Projectile{
		ID:       e.ids.Next(),
		Style:    stats.Style,
		Pos:      origin,
		Start:    origin,
		Target:   target.Vec,
		TargetID: target.ID,
		Life:     parameter.BeamLife,
		MaxLife:  parameter.BeamLife,
	})
}

// fire applies the tower special, then either resolves an instant hit or launches a projectile
func (e *Engine) fire(t *Tower, stats catalog.TowerStats, target *Enemy) {
	e.applySpecial(stats, target)

	origin := t.Pos.ToVec()
	if stats.Style.Instant() {
		aim := target.Vec
		e.damageEnemy(target, t.Damage)
		e.projectiles = append(e.projectiles, &Projectile{
			ID:       e.ids.Next(),
			Style:    stats.Style,
			Pos:      aim,
			Start:    origin,
			Target:   aim,
			TargetID: target.ID,
			Damage:   t.Damage,
			Life:     parameter.InstantShotLife,
			MaxLife:  parameter.InstantShotLife,
		})
		return
	}

	dist := max(vmath.Distance(origin, target.Vec), parameter.ProjectileMinDistance)
	e.projectiles = append(e.projectiles, &Projectile{
		ID:       e.ids.Next(),
		Style:    stats.Style,
		Pos:      origin,
		Start:    origin,
		Target:   target.Vec,
		TargetID: target.ID,
		Damage:   t.Damage,
		Splash:   stats.SplashRadius,
		Speed:    stats.ProjectileSpeed / dist,
	})
}

// applySpecial resolves stun, slow, pull and area specials at fire time
func (e *Engine) applySpecial(stats catalog.TowerStats, target *Enemy) {
	switch stats.Special {
	case catalog.SpecialStun, catalog.SpecialSlow:
		if e.rng.Chance(stats.SpecialChance) && e.effects.Apply(&target.Effects, stats.SpecialEffect, e.tick) {
			e.emit(CueEffect)
		}
	case catalog.SpecialArea:
		for _, en := range e.enemiesWithin(target.Vec, stats.AreaRadius) {
			e.effects.Apply(&en.Effects, stats.SpecialEffect, e.tick)
		}
	case catalog.SpecialPull:
		e.pullEnemy(target, stats.PullDistance)
	}
}

// empower buffs every other tower within the support tower's range
func (e *Engine) empower(src *Tower, stats catalog.TowerStats) {
	for _, t := range e.towersWithin(src.Pos.ToVec(), src.Range) {
		if t == src {
			continue
		}
		e.effects.Apply(&t.Effects, stats.SpecialEffect, e.tick)
	}
}
