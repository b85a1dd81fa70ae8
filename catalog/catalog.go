package catalog

import (
	"errors"
	"fmt"
)

// Catalog bundles the static tables read by the engine
type Catalog struct {
	towers  map[TowerKind]TowerStats
	kinds   []TowerKind
	Enemies []EnemyType
	Themes  []Theme
}

// New builds a catalog from explicit tables, later tower entries replace earlier ones of the same kind
func New(towers []TowerStats, enemies []EnemyType, themes []Theme) *Catalog {
	c := &Catalog{
		towers:  make(map[TowerKind]TowerStats, len(towers)),
		Enemies: enemies,
		Themes:  themes,
	}
	for _, t := range towers {
		if _, ok := c.towers[t.Kind]; !ok {
			c.kinds = append(c.kinds, t.Kind)
		}
		c.towers[t.Kind] = t
	}
	return c
}

// Default returns the built-in tables
func Default() *Catalog {
	return New(DefaultTowers, DefaultEnemies, DefaultThemes)
}

// Tower returns the stat block for kind
func (c *Catalog) Tower(kind TowerKind) (TowerStats, bool) {
	s, ok := c.towers[kind]
	return s, ok
}

// TowerKinds returns the registered kinds in table order
func (c *Catalog) TowerKinds() []TowerKind {
	out := make([]TowerKind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// Enemy returns the type registered under key
func (c *Catalog) Enemy(key string) (EnemyType, bool) {
	for _, e := range c.Enemies {
		if e.Key == key {
			return e, true
		}
	}
	return EnemyType{}, false
}

// ThemeForWave selects the sector theme, a neutral theme if none are configured
func (c *Catalog) ThemeForWave(wave int) Theme {
	if len(c.Themes) == 0 {
		return Theme{Key: "neutral", Name: "Neutral", TowerDamage: 1, TowerRange: 1, TowerCooldown: 1, EnemySpeed: 1, EnemyHP: 1}
	}
	return c.Themes[SectorIndex(wave, len(c.Themes))]
}

// Validate checks every tower and enemy entry
func (c *Catalog) Validate() error {
	var errs []error
	for _, k := range c.kinds {
		if err := c.towers[k].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.Enemies) == 0 {
		errs = append(errs, errors.New("catalog has no enemy types"))
	}
	seen := make(map[string]bool, len(c.Enemies))
	for _, e := range c.Enemies {
		if seen[e.Key] {
			errs = append(errs, fmt.Errorf("duplicate enemy type %q", e.Key))
		}
		seen[e.Key] = true
		if e.HP <= 0 || e.Speed <= 0 {
			errs = append(errs, fmt.Errorf("enemy %q: hp %.1f speed %.3f", e.Key, e.HP, e.Speed))
		}
	}
	return errors.Join(errs...)
}
