package engine

import (
	"slices"

	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/effect"
	"github.com/lixenwraith/tower-siege/parameter"
)

// useAbilities tries each ability once the shared cooldown window has elapsed
// An eligible ability still needs its random roll; the first success stamps the window
func (e *Engine) useAbilities(en *Enemy) {
	if len(en.Abilities) == 0 || e.effects.IsDisabled(&en.Effects) {
		return
	}
	if e.tick-en.LastAbilityUse <= uint64(en.AbilityCooldown) {
		return
	}
	for _, a := range en.Abilities {
		if !e.tryAbility(en, a) {
			continue
		}
		en.LastAbilityUse = e.tick
		en.AbilityCooldown = abilityCooldown(a)
		e.log.Debug().Str("type", en.Type).Stringer("ability", a).Uint64("tick", e.tick).Msg("ability used")
		return
	}
}

func abilityCooldown(a catalog.Ability) int {
	switch a {
	case catalog.AbilityTeleport:
		return parameter.TeleportCooldown
	case catalog.AbilityDeactivateTowers:
		return parameter.DeactivateCooldown
	case catalog.AbilityHealAllies:
		return parameter.HealAlliesCooldown
	case catalog.AbilityRegenerate:
		return parameter.RegenerateCooldown
	case catalog.AbilityCharge:
		return parameter.ChargeCooldown
	case catalog.AbilitySlowTowers:
		return parameter.SlowTowersCooldown
	case catalog.AbilitySpawnMinions:
		return parameter.SpawnMinionsCooldown
	case catalog.AbilityFortify:
		return parameter.FortifyCooldown
	default:
		return 0
	}
}

// tryAbility checks the ability precondition and roll, performing it on success
func (e *Engine) tryAbility(en *Enemy, a catalog.Ability) bool {
	hpRatio := en.HP / en.MaxHP

	switch a {
	case catalog.AbilityTeleport:
		if len(e.path)-1-en.PathIndex <= 2 || !e.rng.Exceeds(parameter.TeleportRoll) {
			return false
		}
		e.teleport(en)

	case catalog.AbilityDeactivateTowers:
		towers := e.towersWithin(en.Vec, parameter.DeactivateRadius)
		if len(towers) == 0 || !e.rng.Exceeds(parameter.DeactivateRoll) {
			return false
		}
		e.applyToTowers(towers, effect.Disabled)

	case catalog.AbilityHealAllies:
		var wounded []*Enemy
		for _, ally := range e.enemiesWithin(en.Vec, parameter.HealAlliesRadius) {
			if ally != en && ally.HP < ally.MaxHP {
				wounded = append(wounded, ally)
			}
		}
		if len(wounded) == 0 || !e.rng.Exceeds(parameter.HealAlliesRoll) {
			return false
		}
		for _, ally := range wounded {
			ally.HP = min(ally.MaxHP, ally.HP+ally.MaxHP*parameter.HealAlliesRatio)
			e.addParticle(Particle{Kind: ParticleHeal, Pos: ally.Vec, Color: "#33ff99",
				Life: parameter.HealLife, MaxLife: parameter.HealLife})
		}

	case catalog.AbilityRegenerate:
		if hpRatio >= parameter.RegenerateBelow || en.Effects.Has(effect.Regeneration) ||
			!e.rng.Exceeds(parameter.RegenerateRoll) {
			return false
		}
		e.effects.Apply(&en.Effects, effect.Regeneration, e.tick)

	case catalog.AbilitySelfDestruct:
		if hpRatio >= parameter.SelfDestructBelow || !e.rng.Exceeds(parameter.SelfDestructRoll) {
			return false
		}
		for _, t := range e.towersWithin(en.Vec, parameter.SelfDestructRadius) {
			e.damageTower(t, parameter.SelfDestructDamage)
		}
		e.addParticle(Particle{Kind: ParticleExplosion, Pos: en.Vec, Color: "#ff5050",
			Life: parameter.ExplosionLife, MaxLife: parameter.ExplosionLife})
		e.discardEnemy(en)

	case catalog.AbilitySplit:
		if hpRatio >= parameter.SplitBelow || !e.rng.Exceeds(parameter.SplitRoll) {
			return false
		}
		e.split(en)

	case catalog.AbilityCharge:
		if !e.rng.Exceeds(parameter.ChargeRoll) {
			return false
		}
		e.moveEnemy(en, parameter.ChargeDistance)

	case catalog.AbilitySlowTowers:
		towers := e.towersWithin(en.Vec, parameter.SlowTowersRadius)
		if len(towers) == 0 || !e.rng.Exceeds(parameter.SlowTowersRoll) {
			return false
		}
		e.applyToTowers(towers, effect.Chilled)

	case catalog.AbilitySpawnMinions:
		if !e.rng.Exceeds(parameter.SpawnMinionsRoll) {
			return false
		}
		for range parameter.MinionCount {
			e.enemies = append(e.enemies, e.offspring(en, parameter.MinionHPRatio, parameter.MinionScale, parameter.MinionReward))
		}

	case catalog.AbilityFortify:
		if en.Effects.Has(effect.Fortify) || !e.rng.Exceeds(parameter.FortifyRoll) {
			return false
		}
		e.effects.Apply(&en.Effects, effect.Fortify, e.tick)

	default:
		return false
	}
	return true
}

// teleport jumps forward a few nodes, never onto the base
func (e *Engine) teleport(en *Enemy) {
	from := en.Vec
	hop := e.rng.IntRange(parameter.TeleportMinNodes, parameter.TeleportMaxNodes)
	en.PathIndex = min(en.PathIndex+hop, len(e.path)-2)
	e.syncEnemyPosition(en)
	for _, pos := range []core.Vec{from, en.Vec} {
		e.addParticle(Particle{Kind: ParticleTeleport, Pos: pos, Color: "#a070ff",
			Life: parameter.TeleportLife, MaxLife: parameter.TeleportLife})
	}
}

// split replaces the enemy by two weaker copies without paying its reward
func (e *Engine) split(en *Enemy) {
	childReward := en.Reward / 2
	for range 2 {
		child := e.offspring(en, parameter.SplitChildRatio, parameter.SplitChildScale, childReward)
		e.enemies = append(e.enemies, child)
	}
	e.discardEnemy(en)
}

// offspring creates an ability-less enemy at the parent's position
func (e *Engine) offspring(parent *Enemy, hpRatio, scale float64, reward int) *Enemy {
	hp := parent.MaxHP * hpRatio
	return &Enemy{
		ID:             e.ids.Next(),
		Type:           parent.Type,
		Name:           parent.Name,
		Icon:           parent.Icon,
		Color:          parent.Color,
		Pos:            parent.Pos,
		PathIndex:      parent.PathIndex,
		Progress:       parent.Progress,
		Vec:            parent.Vec,
		HP:             hp,
		MaxHP:          hp,
		BaseSpeed:      parent.BaseSpeed,
		Reward:         reward,
		Scale:          parent.Scale * scale,
		LastAbilityUse: e.tick,
		LivesCost:      parameter.EscapeLivesNormal,
	}
}

func (e *Engine) applyToTowers(towers []*Tower, id effect.ID) {
	for _, t := range towers {
		if e.effects.Apply(&t.Effects, id, e.tick) {
			e.emit(CueEffect)
		}
	}
}

// damageTower hurts destructible towers and removes them at zero HP
func (e *Engine) damageTower(t *Tower, amount float64) {
	if !t.Destructible() || t.HP <= 0 {
		return
	}
	t.HP -= amount
	if t.HP > 0 {
		return
	}
	idx := slices.Index(e.towers, t)
	if idx >= 0 {
		e.towers = slices.Delete(e.towers, idx, idx+1)
	}
	e.addParticle(Particle{Kind: ParticleExplosion, Pos: t.Pos.ToVec(), Color: "#ffaa00",
		Life: parameter.ExplosionLife, MaxLife: parameter.ExplosionLife})
	e.notify(t.Kind.String() + " destroyed")
	e.log.Info().Stringer("kind", t.Kind).Int("row", t.Pos.Row).Int("col", t.Pos.Col).Msg("tower destroyed")
}
