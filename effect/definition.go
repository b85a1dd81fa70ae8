// Package effect holds the status-effect catalog and the manager that applies, ages and folds
// active effects into effective stats for enemies and towers.
package effect

// ID keys a definition in the registry
type ID string

// Kind is the closed set of behaviors the manager dispatches on every tick
type Kind uint8

const (
	// KindModifier only contributes stat modifiers
	KindModifier Kind = iota
	// KindDamageOverTime deals TickDamage per stack every tick
	KindDamageOverTime
	// KindHealOverTime restores TickHeal per stack every tick
	KindHealOverTime
	// KindDisable prevents the carrier from acting while present
	KindDisable
)

func (k Kind) String() string {
	switch k {
	case KindModifier:
		return "modifier"
	case KindDamageOverTime:
		return "damage_over_time"
	case KindHealOverTime:
		return "heal_over_time"
	case KindDisable:
		return "disable"
	default:
		return "unknown"
	}
}

// Stat is a modifiable attribute
type Stat uint8

const (
	StatSpeed Stat = iota
	StatDamageTaken
	StatDamage
	StatRange
	StatCooldown
)

func (s Stat) String() string {
	switch s {
	case StatSpeed:
		return "speed"
	case StatDamageTaken:
		return "damage_taken"
	case StatDamage:
		return "damage"
	case StatRange:
		return "range"
	case StatCooldown:
		return "cooldown"
	default:
		return "unknown"
	}
}

// Carrier restricts a definition to one entity class
type Carrier uint8

const (
	CarrierEnemy Carrier = iota
	CarrierTower
)

// Permanent is the duration sentinel for effects that never expire by aging
const Permanent = -1

// Definition is declarative effect data, the manager is its only interpreter
type Definition struct {
	ID      ID
	Name    string
	Carrier Carrier
	Kind    Kind

	// Duration in ticks, Permanent for no expiry
	Duration  int
	MaxStacks int

	// Priority orders processing, higher first
	Priority int

	// Modifiers are fractional deltas per stack added to a 1.0 multiplier
	Modifiers map[Stat]float64

	TickDamage float64
	TickHeal   float64

	// ExclusiveWith lists ids removed before this effect is inserted
	ExclusiveWith []ID

	// RefreshOnStack resets remaining duration when a stack is added below the cap
	RefreshOnStack bool

	// VisualAura is a rendering hint, no gameplay effect
	VisualAura string
}

// Active is one applied effect on an entity
type Active struct {
	ID        ID
	Stacks    int
	Remaining int
	AppliedAt uint64
}

// Permanent reports whether the record is exempt from aging
func (a Active) Permanent() bool {
	return a.Remaining < 0
}
