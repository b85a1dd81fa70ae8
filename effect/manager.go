package effect

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-siege/parameter"
)

// Vitals receives per-tick damage and healing from effects
type Vitals interface {
	TakeDamage(amount float64)
	Heal(amount float64)
}

// statFloors keeps effective stats physical regardless of stacked debuffs
var statFloors = map[Stat]float64{
	StatSpeed:       parameter.FloorSpeed,
	StatDamageTaken: parameter.FloorDamageTaken,
	StatDamage:      parameter.FloorDamage,
	StatRange:       parameter.FloorRange,
	StatCooldown:    parameter.FloorCooldown,
}

// Manager applies, ages and folds active effects using a shared registry
type Manager struct {
	registry *Registry
	log      zerolog.Logger
}

// NewManager creates a manager over registry
func NewManager(registry *Registry, log zerolog.Logger) *Manager {
	return &Manager{registry: registry, log: log}
}

// Registry returns the backing registry
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Apply adds id with its default duration, see ApplyFor
func (m *Manager) Apply(set *Set, id ID, tick uint64) bool {
	def, ok := m.lookup(id)
	if !ok {
		return false
	}
	return m.apply(set, def, def.Duration, tick)
}

// ApplyFor adds id with an explicit duration override
// Returns true when a new record or stack was added, false when only the duration was refreshed
func (m *Manager) ApplyFor(set *Set, id ID, duration int, tick uint64) bool {
	def, ok := m.lookup(id)
	if !ok {
		return false
	}
	return m.apply(set, def, duration, tick)
}

func (m *Manager) apply(set *Set, def Definition, duration int, tick uint64) bool {
	if i := set.index(def.ID); i >= 0 {
		rec := &set.active[i]
		if rec.Stacks < def.MaxStacks {
			rec.Stacks++
			if def.RefreshOnStack {
				rec.Remaining = duration
			}
			return true
		}
		rec.Remaining = duration
		return false
	}

	for _, other := range def.ExclusiveWith {
		set.remove(other)
	}

	set.active = append(set.active, Active{
		ID:        def.ID,
		Stacks:    1,
		Remaining: duration,
		AppliedAt: tick,
	})
	return true
}

// Remove drops id, reports whether it was present
func (m *Manager) Remove(set *Set, id ID) bool {
	return set.remove(id)
}

// Update ages every record by one tick in descending priority order and applies tick damage and healing
// Returns the ids that expired this tick
func (m *Manager) Update(set *Set, vitals Vitals) []ID {
	if len(set.active) == 0 {
		return nil
	}

	sort.SliceStable(set.active, func(i, j int) bool {
		return m.priority(set.active[i].ID) > m.priority(set.active[j].ID)
	})

	var expired []ID
	for i := range set.active {
		rec := &set.active[i]
		def, ok := m.registry.Lookup(rec.ID)
		if !ok {
			continue
		}

		if rec.Remaining > 0 {
			rec.Remaining--
			if rec.Remaining == 0 {
				expired = append(expired, rec.ID)
				continue
			}
		}

		if vitals == nil {
			continue
		}
		switch def.Kind {
		case KindDamageOverTime:
			vitals.TakeDamage(def.TickDamage * float64(rec.Stacks))
		case KindHealOverTime:
			vitals.Heal(def.TickHeal * float64(rec.Stacks))
		}
	}

	kept := set.active[:0]
	for _, rec := range set.active {
		if _, ok := m.registry.Lookup(rec.ID); !ok {
			continue
		}
		if rec.Remaining == 0 {
			continue
		}
		kept = append(kept, rec)
	}
	set.active = kept

	return expired
}

// Multiplier returns 1 plus the stacked modifiers for stat, unclamped
func (m *Manager) Multiplier(set *Set, stat Stat) float64 {
	mult := 1.0
	for _, rec := range set.active {
		def, ok := m.registry.Lookup(rec.ID)
		if !ok {
			continue
		}
		if mod, ok := def.Modifiers[stat]; ok {
			mult += mod * float64(rec.Stacks)
		}
	}
	return mult
}

// Effective returns base scaled by the clamped multiplier for stat
func (m *Manager) Effective(set *Set, stat Stat, base float64) float64 {
	return base * max(statFloors[stat], m.Multiplier(set, stat))
}

// IsDisabled reports whether any active record is of the disable kind
func (m *Manager) IsDisabled(set *Set) bool {
	for _, rec := range set.active {
		if def, ok := m.registry.Lookup(rec.ID); ok && def.Kind == KindDisable {
			return true
		}
	}
	return false
}

// Aura returns the visual aura of the highest-priority active effect
func (m *Manager) Aura(set *Set) (string, bool) {
	found := false
	var top Definition
	for _, rec := range set.active {
		def, ok := m.registry.Lookup(rec.ID)
		if !ok {
			continue
		}
		if !found || def.Priority > top.Priority {
			top = def
			found = true
		}
	}
	if !found || top.VisualAura == "" {
		return "", false
	}
	return top.VisualAura, true
}

func (m *Manager) priority(id ID) int {
	if def, ok := m.registry.Lookup(id); ok {
		return def.Priority
	}
	return 0
}

func (m *Manager) lookup(id ID) (Definition, bool) {
	def, ok := m.registry.Lookup(id)
	if !ok {
		m.log.Warn().Str("effect", string(id)).Msg("unknown status effect, ignored")
	}
	return def, ok
}
