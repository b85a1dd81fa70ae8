package engine

import (
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/effect"
)

// BossClass grades spawned enemies
type BossClass uint8

const (
	BossNone BossClass = iota
	BossMini
	BossBig
)

func (b BossClass) String() string {
	switch b {
	case BossMini:
		return "mini"
	case BossBig:
		return "big"
	default:
		return "none"
	}
}

// Enemy travels the path toward the base
// Pos and PathIndex are the last reached node, Progress is the fraction toward the next one
type Enemy struct {
	ID    core.ID
	Type  string
	Name  string
	Icon  rune
	Color string

	Pos       core.Point
	PathIndex int
	Progress  float64
	Vec       core.Vec

	HP        float64
	MaxHP     float64
	BaseSpeed float64
	Reward    int
	Scale     float64

	Abilities       []catalog.Ability
	AbilityCooldown int
	LastAbilityUse  uint64

	Boss        BossClass
	ShieldHP    float64
	MaxShieldHP float64
	LivesCost   int

	Effects effect.Set
	Escaped bool

	dead bool
}

// Alive reports whether the enemy still takes part in the simulation
func (en *Enemy) Alive() bool {
	return !en.dead && !en.Escaped && en.HP > 0
}

// Tower is a placed defence
// Base stats are captured lazily after placement or upgrade; effective stats are rebuilt every step
type Tower struct {
	ID    core.ID
	Kind  catalog.TowerKind
	Pos   core.Point
	Level int

	Cooldown float64

	BaseDamage   float64
	BaseRange    float64
	BaseCooldown float64
	baseReady    bool

	Damage        float64
	Range         float64
	CooldownTicks float64

	TargetID core.ID
	Angle    float64

	HP    float64
	MaxHP float64

	Effects effect.Set
}

// Destructible reports whether the tower can be damaged
func (t *Tower) Destructible() bool {
	return t.MaxHP > 0
}

// Projectile is a shot in flight or a cosmetic shot record
type Projectile struct {
	ID       core.ID
	Style    catalog.Style
	Pos      core.Vec
	Start    core.Vec
	Target   core.Vec
	TargetID core.ID

	Damage   float64
	Splash   float64
	Speed    float64
	Progress float64

	Life    int
	MaxLife int

	done bool
}

// ParticleKind selects particle presentation
type ParticleKind uint8

const (
	ParticleExplosion ParticleKind = iota
	ParticleText
	ParticleNotice
	ParticleTeleport
	ParticleHeal
)

// Particle is a purely visual entity aged by the logic step
type Particle struct {
	Kind    ParticleKind
	Pos     core.Vec
	Style   catalog.Style
	Text    string
	Color   string
	Life    int
	MaxLife int
}

// Notification is the transient banner line
type Notification struct {
	Text  string
	Ticks int
}
