package engine

import (
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/vmath"
)

// updateProjectiles ages cosmetic records and moves homing shots to impact
func (e *Engine) updateProjectiles() {
	for _, p := range e.projectiles {
		if p.Style.LifeBased() {
			p.Life--
			if p.Life <= 0 {
				p.done = true
			}
			continue
		}

		if tgt := e.enemyByID(p.TargetID); tgt != nil && tgt.Alive() {
			p.Target = tgt.Vec
		}
		p.Pos = vmath.Lerp(p.Start, p.Target, p.Progress)
		p.Progress += p.Speed
		if p.Progress >= 1 {
			p.Pos = p.Target
			e.impact(p)
			p.done = true
		}
	}

	kept := e.projectiles[:0]
	for _, p := range e.projectiles {
		if !p.done {
			kept = append(kept, p)
		}
	}
	clear(e.projectiles[len(kept):])
	e.projectiles = kept
}

// impact applies damage at the projectile's target point
// A despawned target leaves single-target shots with nothing to hit
func (e *Engine) impact(p *Projectile) {
	if p.Splash > 0 {
		for _, en := range e.enemiesWithin(p.Target, p.Splash) {
			e.damageEnemy(en, p.Damage)
		}
	} else if tgt := e.enemyByID(p.TargetID); tgt != nil {
		e.damageEnemy(tgt, p.Damage)
	}
	e.addParticle(Particle{Kind: ParticleExplosion, Pos: p.Target, Style: p.Style,
		Life: parameter.ExplosionLife, MaxLife: parameter.ExplosionLife})
}
