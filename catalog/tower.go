// Package catalog holds the static tower, enemy and theme tables the engine reads stats from.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/tower-siege/effect"
	"github.com/lixenwraith/tower-siege/parameter"
)

// TowerKind selects a tower stat block
type TowerKind uint8

const (
	Archer TowerKind = iota
	Cannon
	Sniper
	Frost
	Tesla
	Laser
	Venom
	Vortex
	Beacon
)

var towerKindNames = [...]string{"archer", "cannon", "sniper", "frost", "tesla", "laser", "venom", "vortex", "beacon"}

func (k TowerKind) String() string {
	if int(k) < len(towerKindNames) {
		return towerKindNames[k]
	}
	return "unknown"
}

// ParseTowerKind resolves a tower key
func ParseTowerKind(s string) (TowerKind, bool) {
	for i, name := range towerKindNames {
		if name == s {
			return TowerKind(i), true
		}
	}
	return 0, false
}

// Style is the shot behavior and visual tag shared by towers and projectiles
type Style uint8

const (
	StyleNone Style = iota
	StyleArrow
	StyleShell
	StyleSniper
	StyleLightning
	StyleBeam
	StyleFrost
	StyleOrb
)

var styleNames = [...]string{"none", "arrow", "shell", "sniper", "lightning", "beam", "frost", "orb"}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown"
}

// Instant styles apply damage on fire and push a cosmetic record
func (s Style) Instant() bool {
	return s == StyleSniper || s == StyleLightning
}

// Continuous styles deal fractional damage every tick
func (s Style) Continuous() bool {
	return s == StyleBeam
}

// Traveling styles defer damage to impact
func (s Style) Traveling() bool {
	return s == StyleArrow || s == StyleShell || s == StyleFrost || s == StyleOrb
}

// LifeBased styles are aged by life counter instead of progress
func (s Style) LifeBased() bool {
	return s.Instant() || s.Continuous()
}

// Special is a tower ability applied at the moment of firing
type Special uint8

const (
	SpecialNone Special = iota
	SpecialStun
	SpecialSlow
	SpecialPull
	SpecialArea
	SpecialEmpower
)

var specialNames = [...]string{"none", "stun", "slow", "pull", "area", "empower"}

func (s Special) String() string {
	if int(s) < len(specialNames) {
		return specialNames[s]
	}
	return "unknown"
}

// ErrInvalidTower is wrapped by tower stat validation failures
var ErrInvalidTower = errors.New("invalid tower stats")

// TowerStats is the static stat block of one tower kind at level 1
type TowerStats struct {
	Kind  TowerKind
	Name  string
	Glyph rune
	Cost  int

	Damage   float64
	Range    float64
	Cooldown float64

	Style           Style
	SplashRadius    float64
	ProjectileSpeed float64

	Special       Special
	SpecialChance float64
	SpecialEffect effect.ID
	AreaRadius    float64
	PullDistance  float64

	// MaxHP zero means indestructible
	MaxHP float64
}

// Validate rejects stat combinations the engine cannot express
func (s TowerStats) Validate() error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalidTower, s.Kind, fmt.Sprintf(format, args...))
	}

	if s.Cost <= 0 {
		return fail("cost %d", s.Cost)
	}
	if s.Range <= 0 || s.Cooldown <= 0 {
		return fail("range %.2f cooldown %.2f", s.Range, s.Cooldown)
	}

	switch {
	case s.Style.Continuous(), s.Style.Instant():
		if s.SplashRadius != 0 {
			return fail("%s style cannot splash", s.Style)
		}
		if s.ProjectileSpeed != 0 {
			return fail("%s style has no projectile speed", s.Style)
		}
	case s.Style.Traveling():
		if s.ProjectileSpeed <= 0 {
			return fail("%s style needs projectile speed", s.Style)
		}
	case s.Style == StyleNone:
		if s.Special != SpecialEmpower || s.Damage != 0 {
			return fail("support tower must empower and deal no damage")
		}
	}

	switch s.Special {
	case SpecialEmpower:
		if s.Style != StyleNone {
			return fail("empower is support only")
		}
		if s.SpecialEffect == "" {
			return fail("empower without effect")
		}
	case SpecialStun, SpecialSlow:
		if s.SpecialEffect == "" || s.SpecialChance <= 0 {
			return fail("%s without effect or chance", s.Special)
		}
	case SpecialArea:
		if s.AreaRadius <= 0 || s.SpecialEffect == "" {
			return fail("area without radius or effect")
		}
	case SpecialPull:
		if s.PullDistance <= 0 {
			return fail("pull without distance")
		}
	}
	return nil
}

// AtLevel returns damage, range and cooldown for level
func (s TowerStats) AtLevel(level int) (damage, rng, cooldown float64) {
	steps := float64(max(level, 1) - 1)
	damage = s.Damage * (1 + parameter.TowerDamagePerLevel*steps)
	rng = s.Range + parameter.TowerRangePerLevel*steps
	cooldown = s.Cooldown * math.Pow(parameter.TowerCooldownPerLevel, steps)
	return damage, rng, cooldown
}

// UpgradeCost returns the price to go from level to level+1
func (s TowerStats) UpgradeCost(level int) int {
	return s.Cost * level * parameter.UpgradeCostPercent / 100
}

// Refund returns the money paid back for a tower at level
func (s TowerStats) Refund(level int) int {
	return s.Cost * level * parameter.RefundPercent / 100
}

// DefaultTowers is the level-1 tower table
var DefaultTowers = []TowerStats{
	{
		Kind: Archer, Name: "Archer", Glyph: 'A', Cost: 50,
		Damage: 10, Range: 3.0, Cooldown: 40,
		Style: StyleArrow, ProjectileSpeed: 0.25,
		MaxHP: 100,
	},
	{
		Kind: Cannon, Name: "Cannon", Glyph: 'C', Cost: 120,
		Damage: 22, Range: 2.5, Cooldown: 80,
		Style: StyleShell, ProjectileSpeed: 0.15, SplashRadius: 1.2,
		MaxHP: 150,
	},
	{
		Kind: Sniper, Name: "Sniper", Glyph: 'S', Cost: 150,
		Damage: 45, Range: 6.0, Cooldown: 120,
		Style: StyleSniper,
	},
	{
		Kind: Frost, Name: "Frost", Glyph: 'F', Cost: 90,
		Damage: 4, Range: 2.5, Cooldown: 50,
		Style: StyleFrost, ProjectileSpeed: 0.2,
		Special: SpecialSlow, SpecialChance: 1, SpecialEffect: effect.Slow,
	},
	{
		Kind: Tesla, Name: "Tesla", Glyph: 'T', Cost: 175,
		Damage: 16, Range: 3.0, Cooldown: 60,
		Style:   StyleLightning,
		Special: SpecialStun, SpecialChance: 0.2, SpecialEffect: effect.Stun,
	},
	{
		Kind: Laser, Name: "Laser", Glyph: 'L', Cost: 200,
		Damage: 12, Range: 3.0, Cooldown: 1,
		Style: StyleBeam,
	},
	{
		Kind: Venom, Name: "Venom", Glyph: 'V', Cost: 110,
		Damage: 6, Range: 3.0, Cooldown: 45,
		Style: StyleOrb, ProjectileSpeed: 0.2,
		Special: SpecialArea, SpecialEffect: effect.Poison, AreaRadius: 1.0,
		MaxHP: 80,
	},
	{
		Kind: Vortex, Name: "Vortex", Glyph: 'X', Cost: 160,
		Damage: 8, Range: 3.0, Cooldown: 90,
		Style: StyleOrb, ProjectileSpeed: 0.2,
		Special: SpecialPull, PullDistance: 0.6,
	},
	{
		Kind: Beacon, Name: "Beacon", Glyph: 'B', Cost: 130,
		Damage: 0, Range: 2.0, Cooldown: 180,
		Style:   StyleNone,
		Special: SpecialEmpower, SpecialEffect: effect.Empower,
		MaxHP: 120,
	},
}
