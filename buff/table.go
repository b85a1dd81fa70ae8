package buff

// DefaultTable is the built-in buff pool
var DefaultTable = []Definition{
	// Common
	{ID: "war_chest", Name: "War Chest", Description: "+15% kill money", Rarity: Common, Waves: 3, Money: 0.15},
	{ID: "sharpened_tips", Name: "Sharpened Tips", Description: "+10% tower damage", Rarity: Common, Waves: 3, TowerDamage: 0.10},
	{ID: "oiled_gears", Name: "Oiled Gears", Description: "+10% fire rate", Rarity: Common, Waves: 3, TowerFireRate: 0.10},
	{ID: "spyglass", Name: "Spyglass", Description: "+10% tower range", Rarity: Common, Waves: 3, TowerRange: 0.10},
	{ID: "mudslide", Name: "Mudslide", Description: "-10% enemy speed", Rarity: Common, Waves: 2, EnemySpeed: -0.10},
	{ID: "fog", Name: "Fog", Description: "-10% range, +20% kill money", Rarity: Common, Kind: KindDebuff, Waves: 3,
		TowerRange: -0.10, Money: 0.20},

	// Rare
	{ID: "veteran_crews", Name: "Veteran Crews", Description: "+20% tower damage", Rarity: Rare, Waves: 5, TowerDamage: 0.20},
	{ID: "overtime", Name: "Overtime", Description: "+20% fire rate", Rarity: Rare, Waves: 5, TowerFireRate: 0.20},
	{ID: "brittle_armor", Name: "Brittle Armor", Description: "-15% enemy HP", Rarity: Rare, Waves: 4, EnemyHP: -0.15},
	{ID: "reinforced_gate", Name: "Reinforced Gate", Description: "+3 lives", Rarity: Rare, Waves: Permanent, Lives: 3},
	{ID: "frenzy", Name: "Frenzy", Description: "+25% fire rate, +15% enemy speed", Rarity: Rare, Kind: KindDebuff, Waves: 4,
		TowerFireRate: 0.25, EnemySpeed: 0.15},

	// Epic
	{ID: "arsenal", Name: "Arsenal", Description: "+25% tower damage", Rarity: Epic, Waves: Permanent, TowerDamage: 0.25},
	{ID: "time_warp", Name: "Time Warp", Description: "-20% enemy speed", Rarity: Epic, Waves: 5, EnemySpeed: -0.20},
	{ID: "bounty", Name: "Bounty", Description: "+50% kill money", Rarity: Epic, Waves: 5, Money: 0.50},
	{ID: "blood_pact", Name: "Blood Pact", Description: "+30% tower damage, -3 lives", Rarity: Epic, Kind: KindDebuff,
		Waves: Permanent, TowerDamage: 0.30, Lives: -3},

	// Legendary
	{ID: "dragonfire", Name: "Dragonfire", Description: "+50% damage, +25% fire rate", Rarity: Legendary, Waves: Permanent,
		TowerDamage: 0.50, TowerFireRate: 0.25},
	{ID: "golden_age", Name: "Golden Age", Description: "+100% kill money", Rarity: Legendary, Waves: Permanent, Money: 1.0},
	{ID: "last_stand", Name: "Last Stand", Description: "+10 lives", Rarity: Legendary, Waves: Permanent, Lives: 10},
	{ID: "hubris", Name: "Hubris", Description: "+40% range, +30% enemy HP", Rarity: Legendary, Kind: KindDebuff, Waves: 10,
		TowerRange: 0.40, EnemyHP: 0.30},
}
