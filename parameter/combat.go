package parameter

// Effective Stat Floors (fraction of base)
const (
	FloorSpeed       = 0.0
	FloorDamageTaken = 0.1
	FloorDamage      = 0.1
	FloorRange       = 0.1
	FloorCooldown    = 0.01
)

// Projectiles
const (
	// BeamTickFraction is the fraction of effective damage a beam deals every tick
	BeamTickFraction = 0.04

	// BeamLife keeps one beam record visible between consecutive tower steps
	BeamLife = 2

	// InstantShotLife is the cosmetic lifetime of sniper and lightning records
	InstantShotLife = 8

	// ProjectileMinDistance avoids oversized progress steps on point-blank shots
	ProjectileMinDistance = 0.5
)

// Particles
const (
	ExplosionLife    = 20
	FloatingTextLife = 40
	NoticeLife       = 45
	TeleportLife     = 15
	HealLife         = 20
)
