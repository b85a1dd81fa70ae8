package catalog

import "slices"

// Ability is a named enemy special behavior
type Ability uint8

const (
	AbilityTeleport Ability = iota
	AbilityDeactivateTowers
	AbilityHealAllies
	AbilityRegenerate
	AbilitySelfDestruct
	AbilitySplit
	AbilityCharge
	AbilitySlowTowers
	AbilitySpawnMinions
	AbilityFortify
)

var abilityNames = [...]string{
	"teleport", "deactivate_towers", "heal_allies", "regenerate", "self_destruct",
	"split", "charge", "slow_towers", "spawn_minions", "fortify",
}

func (a Ability) String() string {
	if int(a) < len(abilityNames) {
		return abilityNames[a]
	}
	return "unknown"
}

// HardAbilities are withheld from regular spawns on early waves
var HardAbilities = []Ability{
	AbilityTeleport,
	AbilityDeactivateTowers,
	AbilitySlowTowers,
	AbilityHealAllies,
	AbilitySpawnMinions,
	AbilitySplit,
}

// BossAbilityPool is drawn from to augment boss ability lists
var BossAbilityPool = []Ability{
	AbilityTeleport,
	AbilityDeactivateTowers,
	AbilityHealAllies,
	AbilityRegenerate,
	AbilityCharge,
	AbilitySlowTowers,
	AbilitySpawnMinions,
	AbilityFortify,
}

// EnemyType is the static stat block of one enemy kind before wave scaling
type EnemyType struct {
	Key   string
	Name  string
	Icon  rune
	Color string

	HP     float64
	Speed  float64 // tiles per tick
	Reward int
	Scale  float64

	Abilities []Ability
	Boss      bool
	MinWave   int
}

// Has reports whether the type carries ability a
func (t EnemyType) Has(a Ability) bool {
	return slices.Contains(t.Abilities, a)
}

// HasAny reports whether any of the abilities is innate to the type
func (t EnemyType) HasAny(abilities []Ability) bool {
	for _, a := range abilities {
		if t.Has(a) {
			return true
		}
	}
	return false
}

// DefaultEnemies is the enemy type table
var DefaultEnemies = []EnemyType{
	{Key: "grunt", Name: "Grunt", Icon: 'g', Color: "#c8c8c8", HP: 30, Speed: 0.035, Reward: 8, Scale: 1, MinWave: 1},
	{Key: "runner", Name: "Runner", Icon: 'r', Color: "#f0e060", HP: 18, Speed: 0.05, Reward: 8, Scale: 0.8, MinWave: 1},
	{Key: "brute", Name: "Brute", Icon: 'b', Color: "#b07040", HP: 90, Speed: 0.022, Reward: 18, Scale: 1.3, MinWave: 3},
	{Key: "troll", Name: "Troll", Icon: 't', Color: "#60a060", HP: 70, Speed: 0.025, Reward: 18, Scale: 1.2, MinWave: 4,
		Abilities: []Ability{AbilityRegenerate}},
	{Key: "charger", Name: "Charger", Icon: 'c', Color: "#e07030", HP: 50, Speed: 0.035, Reward: 14, Scale: 1, MinWave: 4,
		Abilities: []Ability{AbilityCharge}},
	{Key: "bomber", Name: "Bomber", Icon: 'o', Color: "#ff5050", HP: 40, Speed: 0.04, Reward: 12, Scale: 0.9, MinWave: 5,
		Abilities: []Ability{AbilitySelfDestruct}},
	{Key: "medic", Name: "Medic", Icon: 'm', Color: "#ffffff", HP: 40, Speed: 0.03, Reward: 14, Scale: 0.9, MinWave: 6,
		Abilities: []Ability{AbilityHealAllies}},
	{Key: "phantom", Name: "Phantom", Icon: 'p', Color: "#a070ff", HP: 35, Speed: 0.035, Reward: 14, Scale: 0.9, MinWave: 6,
		Abilities: []Ability{AbilityTeleport}},
	{Key: "splitter", Name: "Splitter", Icon: 's', Color: "#40d0d0", HP: 60, Speed: 0.03, Reward: 15, Scale: 1.1, MinWave: 7,
		Abilities: []Ability{AbilitySplit}},
	{Key: "saboteur", Name: "Saboteur", Icon: 'x', Color: "#ff80c0", HP: 45, Speed: 0.03, Reward: 16, Scale: 1, MinWave: 8,
		Abilities: []Ability{AbilityDeactivateTowers}},
	{Key: "frostbearer", Name: "Frostbearer", Icon: 'f', Color: "#80c0ff", HP: 55, Speed: 0.028, Reward: 16, Scale: 1.1, MinWave: 9,
		Abilities: []Ability{AbilitySlowTowers}},
	{Key: "summoner", Name: "Summoner", Icon: 'u', Color: "#d0a0ff", HP: 80, Speed: 0.025, Reward: 22, Scale: 1.2, MinWave: 12,
		Abilities: []Ability{AbilitySpawnMinions}},
	{Key: "warlord", Name: "Warlord", Icon: 'W', Color: "#ff3030", HP: 150, Speed: 0.03, Reward: 60, Scale: 1.6, MinWave: 1,
		Boss: true},
	{Key: "colossus", Name: "Colossus", Icon: 'K', Color: "#ffb000", HP: 250, Speed: 0.02, Reward: 100, Scale: 2, MinWave: 10,
		Boss: true, Abilities: []Ability{AbilityFortify}},
}
