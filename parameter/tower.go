package parameter

// Tower Levels
const (
	// TowerMaxLevel is the highest reachable upgrade level
	TowerMaxLevel = 5

	// TowerDamagePerLevel is the additive damage factor per level above 1
	TowerDamagePerLevel = 0.5

	// TowerRangePerLevel is the flat range bonus (tiles) per level above 1
	TowerRangePerLevel = 0.25

	// TowerCooldownPerLevel is the multiplicative cooldown factor per level above 1
	TowerCooldownPerLevel = 0.9
)
