package effect

import (
	"errors"
	"fmt"
	"sort"
)

// Enemy effect ids
const (
	Slow         ID = "slow"
	Poison       ID = "poison"
	Burn         ID = "burn"
	Stun         ID = "stun"
	Fortify      ID = "fortify"
	Regeneration ID = "regeneration"
	Haste        ID = "haste"
)

// Tower effect ids
const (
	Disabled  ID = "disabled"
	Chilled   ID = "chilled"
	Corroded  ID = "corroded"
	Empower   ID = "empower"
	Overclock ID = "overclock"
	Focus     ID = "focus"
)

// ErrInvalidDefinition is wrapped by registry validation failures
var ErrInvalidDefinition = errors.New("invalid effect definition")

// EnemyEffects is the enemy-targeted table
var EnemyEffects = []Definition{
	{
		ID: Slow, Name: "Slowed", Carrier: CarrierEnemy, Kind: KindModifier,
		Duration: 120, MaxStacks: 3, Priority: 1, RefreshOnStack: true,
		Modifiers:  map[Stat]float64{StatSpeed: -0.2},
		VisualAura: "#66ccff",
	},
	{
		ID: Poison, Name: "Poisoned", Carrier: CarrierEnemy, Kind: KindDamageOverTime,
		Duration: 240, MaxStacks: 5, Priority: 2, RefreshOnStack: true,
		Modifiers:  map[Stat]float64{StatSpeed: -0.05},
		TickDamage: 0.1,
		VisualAura: "#55dd55",
	},
	{
		ID: Burn, Name: "Burning", Carrier: CarrierEnemy, Kind: KindDamageOverTime,
		Duration: 180, MaxStacks: 3, Priority: 3,
		TickDamage: 0.2,
		VisualAura: "#ff7733",
	},
	{
		ID: Stun, Name: "Stunned", Carrier: CarrierEnemy, Kind: KindDisable,
		Duration: 45, MaxStacks: 1, Priority: 100,
		Modifiers:  map[Stat]float64{StatSpeed: -1.0},
		VisualAura: "#ffff66",
	},
	{
		ID: Fortify, Name: "Fortified", Carrier: CarrierEnemy, Kind: KindModifier,
		Duration: 300, MaxStacks: 1, Priority: 5,
		Modifiers:     map[Stat]float64{StatDamageTaken: -0.3, StatSpeed: -0.1},
		ExclusiveWith: []ID{Regeneration},
		VisualAura:    "#aaaaaa",
	},
	{
		ID: Regeneration, Name: "Regenerating", Carrier: CarrierEnemy, Kind: KindHealOverTime,
		Duration: 240, MaxStacks: 1, Priority: 4,
		TickHeal:      0.25,
		ExclusiveWith: []ID{Fortify},
		VisualAura:    "#33ff99",
	},
	{
		ID: Haste, Name: "Hasted", Carrier: CarrierEnemy, Kind: KindModifier,
		Duration: 90, MaxStacks: 2, Priority: 2,
		Modifiers:  map[Stat]float64{StatSpeed: 0.5},
		VisualAura: "#ff66cc",
	},
}

// TowerEffects is the tower-targeted table
var TowerEffects = []Definition{
	{
		ID: Disabled, Name: "Disabled", Carrier: CarrierTower, Kind: KindDisable,
		Duration: 180, MaxStacks: 1, Priority: 100,
		VisualAura: "#666666",
	},
	{
		ID: Chilled, Name: "Chilled", Carrier: CarrierTower, Kind: KindModifier,
		Duration: 120, MaxStacks: 3, Priority: 2, RefreshOnStack: true,
		Modifiers:  map[Stat]float64{StatCooldown: 0.5},
		VisualAura: "#99ddff",
	},
	{
		ID: Corroded, Name: "Corroded", Carrier: CarrierTower, Kind: KindModifier,
		Duration: 240, MaxStacks: 2, Priority: 3,
		Modifiers:  map[Stat]float64{StatDamage: -0.2, StatRange: -0.1, StatCooldown: 0.2},
		VisualAura: "#886633",
	},
	{
		ID: Empower, Name: "Empowered", Carrier: CarrierTower, Kind: KindModifier,
		Duration: 240, MaxStacks: 3, Priority: 1, RefreshOnStack: true,
		Modifiers:  map[Stat]float64{StatDamage: 0.25},
		VisualAura: "#ffcc00",
	},
	{
		ID: Overclock, Name: "Overclocked", Carrier: CarrierTower, Kind: KindModifier,
		Duration: 300, MaxStacks: 3, Priority: 1, RefreshOnStack: true,
		Modifiers:  map[Stat]float64{StatCooldown: -0.2},
		VisualAura: "#ff3333",
	},
	{
		ID: Focus, Name: "Focused", Carrier: CarrierTower, Kind: KindModifier,
		Duration: 300, MaxStacks: 2, Priority: 1, RefreshOnStack: true,
		Modifiers:  map[Stat]float64{StatRange: 0.15},
		VisualAura: "#3399ff",
	},
}

// Registry maps ids to definitions
type Registry struct {
	defs map[ID]Definition
}

// NewRegistry builds a registry from definitions, later duplicates replace earlier ones
func NewRegistry(defs ...Definition) *Registry {
	r := &Registry{defs: make(map[ID]Definition, len(defs))}
	for _, def := range defs {
		r.Register(def)
	}
	return r
}

// DefaultRegistry returns the enemy and tower tables
func DefaultRegistry() *Registry {
	all := make([]Definition, 0, len(EnemyEffects)+len(TowerEffects))
	all = append(all, EnemyEffects...)
	all = append(all, TowerEffects...)
	return NewRegistry(all...)
}

// Register adds or replaces a definition
func (r *Registry) Register(def Definition) {
	r.defs[def.ID] = def
}

// Unregister removes a definition, active records of it are dropped on the next update
func (r *Registry) Unregister(id ID) {
	delete(r.defs, id)
}

// Lookup returns the definition for id
func (r *Registry) Lookup(id ID) (Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// IDs returns registered ids in lexical order
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Validate checks every definition for internally inconsistent data
func (r *Registry) Validate() error {
	var errs []error
	for _, id := range r.IDs() {
		def := r.defs[id]
		if def.MaxStacks < 1 {
			errs = append(errs, fmt.Errorf("%w: %s: max stacks %d", ErrInvalidDefinition, id, def.MaxStacks))
		}
		if def.Duration == 0 || def.Duration < Permanent {
			errs = append(errs, fmt.Errorf("%w: %s: duration %d", ErrInvalidDefinition, id, def.Duration))
		}
		switch def.Kind {
		case KindDamageOverTime:
			if def.TickDamage <= 0 {
				errs = append(errs, fmt.Errorf("%w: %s: damage over time without tick damage", ErrInvalidDefinition, id))
			}
		case KindHealOverTime:
			if def.TickHeal <= 0 {
				errs = append(errs, fmt.Errorf("%w: %s: heal over time without tick heal", ErrInvalidDefinition, id))
			}
		}
		for _, other := range def.ExclusiveWith {
			if other == id {
				errs = append(errs, fmt.Errorf("%w: %s: excludes itself", ErrInvalidDefinition, id))
			}
			if _, ok := r.defs[other]; !ok {
				errs = append(errs, fmt.Errorf("%w: %s: excludes unknown %s", ErrInvalidDefinition, id, other))
			}
		}
		for stat := range def.Modifiers {
			enemyStat := stat == StatSpeed || stat == StatDamageTaken
			if enemyStat != (def.Carrier == CarrierEnemy) {
				errs = append(errs, fmt.Errorf("%w: %s: stat %s not carried by this entity", ErrInvalidDefinition, id, stat))
			}
		}
	}
	return errors.Join(errs...)
}
