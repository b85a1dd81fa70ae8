// Package buff implements run-level roguelike modifiers drawn between waves.
// Buffs scale engine-wide multipliers and are independent of per-entity status effects.
package buff

import "github.com/lixenwraith/tower-siege/vmath"

// Rarity orders buffs by draw odds
type Rarity uint8

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

var rarityNames = [...]string{"common", "rare", "epic", "legendary"}

func (r Rarity) String() string {
	if int(r) < len(rarityNames) {
		return rarityNames[r]
	}
	return "unknown"
}

// Kind separates pure upsides from trade-offs
type Kind uint8

const (
	KindBuff Kind = iota
	KindDebuff
)

// Permanent marks a definition that never expires
const Permanent = -1

// ChoiceCount is the number of entries offered per draw
const ChoiceCount = 3

// Definition is one entry of the buff table
// Multiplier fields are deltas added to 1.0; Lives is a one-off flat change applied on pick
type Definition struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Kind        Kind
	Waves       int

	Money         float64
	TowerDamage   float64
	TowerFireRate float64
	TowerRange    float64
	EnemySpeed    float64
	EnemyHP       float64

	Lives int
}

// Modifiers is the aggregate multiplier set applied by the engine
type Modifiers struct {
	Money         float64
	TowerDamage   float64
	TowerFireRate float64
	TowerRange    float64
	EnemySpeed    float64
	EnemyHP       float64
}

// modifierFloor keeps stacked debuffs from zeroing a multiplier
const modifierFloor = 0.1

// Neutral returns the identity modifier set
func Neutral() Modifiers {
	return Modifiers{Money: 1, TowerDamage: 1, TowerFireRate: 1, TowerRange: 1, EnemySpeed: 1, EnemyHP: 1}
}

// Combine multiplies d into m
func (m Modifiers) Combine(d Definition) Modifiers {
	m.Money *= 1 + d.Money
	m.TowerDamage *= 1 + d.TowerDamage
	m.TowerFireRate *= 1 + d.TowerFireRate
	m.TowerRange *= 1 + d.TowerRange
	m.EnemySpeed *= 1 + d.EnemySpeed
	m.EnemyHP *= 1 + d.EnemyHP
	return m
}

func (m Modifiers) floored() Modifiers {
	m.Money = max(m.Money, modifierFloor)
	m.TowerDamage = max(m.TowerDamage, modifierFloor)
	m.TowerFireRate = max(m.TowerFireRate, modifierFloor)
	m.TowerRange = max(m.TowerRange, modifierFloor)
	m.EnemySpeed = max(m.EnemySpeed, modifierFloor)
	m.EnemyHP = max(m.EnemyHP, modifierFloor)
	return m
}

// Odds are rarity weights, not required to sum to 1
type Odds struct {
	Common    float64
	Rare      float64
	Epic      float64
	Legendary float64
}

func (o Odds) total() float64 {
	return o.Common + o.Rare + o.Epic + o.Legendary
}

func (o Odds) roll(rng *vmath.FastRand) Rarity {
	r := rng.Float64() * o.total()
	switch {
	case r < o.Common:
		return Common
	case r < o.Common+o.Rare:
		return Rare
	case r < o.Common+o.Rare+o.Epic:
		return Epic
	default:
		return Legendary
	}
}

// OddsForWave is the milestone odds table
func OddsForWave(wave int) Odds {
	switch {
	case wave < 10:
		return Odds{Common: 0.70, Rare: 0.25, Epic: 0.05}
	case wave < 20:
		return Odds{Common: 0.55, Rare: 0.30, Epic: 0.12, Legendary: 0.03}
	case wave < 30:
		return Odds{Common: 0.40, Rare: 0.33, Epic: 0.20, Legendary: 0.07}
	default:
		return Odds{Common: 0.30, Rare: 0.33, Epic: 0.25, Legendary: 0.12}
	}
}

// GenerateChoices draws from the default table
func GenerateChoices(rng *vmath.FastRand, odds Odds) []Definition {
	return GenerateChoicesFrom(DefaultTable, rng, odds)
}

// GenerateChoicesFrom draws up to ChoiceCount distinct entries from table
// A rolled rarity with no remaining entries falls back to any remaining entry
func GenerateChoicesFrom(table []Definition, rng *vmath.FastRand, odds Odds) []Definition {
	if odds.total() <= 0 {
		odds = OddsForWave(1)
	}

	taken := make([]bool, len(table))
	choices := make([]Definition, 0, ChoiceCount)

	for len(choices) < ChoiceCount && len(choices) < len(table) {
		rarity := odds.roll(rng)

		pool := candidates(table, taken, func(d Definition) bool { return d.Rarity == rarity })
		if len(pool) == 0 {
			pool = candidates(table, taken, func(Definition) bool { return true })
		}

		idx := pool[rng.Intn(len(pool))]
		taken[idx] = true
		choices = append(choices, table[idx])
	}
	return choices
}

func candidates(table []Definition, taken []bool, keep func(Definition) bool) []int {
	var out []int
	for i, d := range table {
		if !taken[i] && keep(d) {
			out = append(out, i)
		}
	}
	return out
}

// Lookup finds a default table entry by id
func Lookup(id string) (Definition, bool) {
	for _, d := range DefaultTable {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}
