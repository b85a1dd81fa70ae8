package parameter

// Ability roll thresholds: an eligible ability fires when a uniform roll exceeds the threshold
const (
	TeleportRoll     = 0.98
	DeactivateRoll   = 0.985
	HealAlliesRoll   = 0.97
	RegenerateRoll   = 0.5
	SelfDestructRoll = 0.9
	SplitRoll        = 0.5
	ChargeRoll       = 0.98
	SlowTowersRoll   = 0.3
	SpawnMinionsRoll = 0.985
	FortifyRoll      = 0.97
)

// Ability cooldown windows (ticks) stamped after a successful use
const (
	TeleportCooldown     = 240
	DeactivateCooldown   = 300
	HealAlliesCooldown   = 180
	RegenerateCooldown   = 300
	ChargeCooldown       = 200
	SlowTowersCooldown   = 60
	SpawnMinionsCooldown = 360
	FortifyCooldown      = 400
)

// Ability tuning
const (
	TeleportMinNodes = 2
	TeleportMaxNodes = 3

	DeactivateRadius = 2.5
	SlowTowersRadius = 2.5

	HealAlliesRadius = 2.0
	HealAlliesRatio  = 0.15

	// RegenerateBelow is the HP ratio under which regeneration may trigger
	RegenerateBelow = 0.5

	// SelfDestructBelow is the HP ratio under which self-destruct may trigger
	SelfDestructBelow  = 0.2
	SelfDestructRadius = 2.0
	SelfDestructDamage = 40.0

	// SplitBelow is the HP ratio under which split may trigger
	SplitBelow      = 0.3
	SplitChildRatio = 0.3
	SplitChildScale = 0.7

	// ChargeDistance is progress added in tiles by a charge
	ChargeDistance = 1.5

	MinionCount   = 2
	MinionHPRatio = 0.2
	MinionReward  = 2
	MinionScale   = 0.6
)
