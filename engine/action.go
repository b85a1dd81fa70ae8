package engine

import (
	"fmt"
	"slices"

	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/maze"
	"github.com/lixenwraith/tower-siege/parameter"
)

// ActionKind selects the staged player action
type ActionKind uint8

const (
	ActionBuild ActionKind = iota
	ActionUpgrade
	ActionEarnMoney
)

func (k ActionKind) String() string {
	switch k {
	case ActionBuild:
		return "build"
	case ActionUpgrade:
		return "upgrade"
	case ActionEarnMoney:
		return "earn"
	default:
		return "unknown"
	}
}

// Action is a staged request awaiting confirmation
type Action struct {
	Kind    ActionKind
	Pos     core.Point
	Tower   catalog.TowerKind
	TowerID core.ID
	Cost    int
	Amount  int
}

// RequestBuild stages a build if the cell is free and the tower affordable
func (e *Engine) RequestBuild(row, col int, kind catalog.TowerKind) bool {
	if !e.acceptsActions() {
		return false
	}
	stats, ok := e.catalog.Tower(kind)
	if !ok {
		e.log.Warn().Stringer("kind", kind).Msg("build requested for unknown tower kind")
		return false
	}

	pos := core.Point{Row: row, Col: col}
	if !e.buildable(pos) {
		e.reject(pos, "Blocked")
		return false
	}
	if e.money < stats.Cost {
		e.reject(pos, "Insufficient funds")
		return false
	}

	e.pending = &Action{Kind: ActionBuild, Pos: pos, Tower: kind, Cost: stats.Cost}
	return true
}

// RequestUpgrade stages an upgrade of tower id
func (e *Engine) RequestUpgrade(id core.ID) bool {
	if !e.acceptsActions() {
		return false
	}
	t := e.towerByID(id)
	if t == nil {
		return false
	}
	stats, ok := e.catalog.Tower(t.Kind)
	if !ok {
		e.log.Warn().Stringer("kind", t.Kind).Msg("upgrade requested for unknown tower kind")
		return false
	}
	if t.Level >= parameter.TowerMaxLevel {
		e.reject(t.Pos, "Max level")
		return false
	}
	cost := stats.UpgradeCost(t.Level)
	if e.money < cost {
		e.reject(t.Pos, "Insufficient funds")
		return false
	}

	e.pending = &Action{Kind: ActionUpgrade, Pos: t.Pos, Tower: t.Kind, TowerID: t.ID, Cost: cost}
	return true
}

// RequestEarnMoney stages the flat money credit for the current wave
func (e *Engine) RequestEarnMoney() bool {
	if !e.acceptsActions() {
		return false
	}
	e.pending = &Action{
		Kind:   ActionEarnMoney,
		Amount: parameter.EarnMoneyBase + parameter.EarnMoneyPerWave*e.wave,
	}
	return true
}

// PendingAction returns the staged action, if any
func (e *Engine) PendingAction() (Action, bool) {
	if e.pending == nil {
		return Action{}, false
	}
	return *e.pending, true
}

// ConfirmAction commits the staged action, re-validating it against current state
func (e *Engine) ConfirmAction() bool {
	a := e.pending
	if a == nil {
		return false
	}
	e.pending = nil

	switch a.Kind {
	case ActionBuild:
		stats, ok := e.catalog.Tower(a.Tower)
		if !ok || !e.buildable(a.Pos) || e.money < stats.Cost {
			e.reject(a.Pos, "Blocked")
			return false
		}
		e.money -= stats.Cost
		e.towers = append(e.towers, &Tower{
			ID:    e.ids.Next(),
			Kind:  a.Tower,
			Pos:   a.Pos,
			Level: 1,
			HP:    stats.MaxHP,
			MaxHP: stats.MaxHP,
		})
		e.towersBuilt++
		e.emit(CueBuild)

	case ActionUpgrade:
		t := e.towerByID(a.TowerID)
		if t == nil || t.Level >= parameter.TowerMaxLevel || e.money < a.Cost {
			e.reject(a.Pos, "Blocked")
			return false
		}
		e.money -= a.Cost
		t.Level++
		t.baseReady = false
		if t.Destructible() {
			t.HP = t.MaxHP
		}
		e.emit(CueUpgrade)
		e.notify(fmt.Sprintf("%s upgraded to level %d", t.Kind, t.Level))

	case ActionEarnMoney:
		e.money += a.Amount
		e.moneyEarned += a.Amount
		e.addParticle(Particle{Kind: ParticleText, Pos: e.base.ToVec(), Text: fmt.Sprintf("+%d", a.Amount),
			Color: "#ffd700", Life: parameter.FloatingTextLife, MaxLife: parameter.FloatingTextLife})
	}
	return true
}

// CancelAction discards the staged action
func (e *Engine) CancelAction() {
	e.pending = nil
}

// SellTower refunds and removes tower id
// A tower referenced by the staged action cannot be sold
func (e *Engine) SellTower(id core.ID) bool {
	if e.gameOver {
		return false
	}
	if e.pending != nil && e.pending.Kind == ActionUpgrade && e.pending.TowerID == id {
		return false
	}
	idx := slices.IndexFunc(e.towers, func(t *Tower) bool { return t.ID == id })
	if idx < 0 {
		return false
	}
	t := e.towers[idx]

	refund := 0
	if stats, ok := e.catalog.Tower(t.Kind); ok {
		refund = stats.Refund(t.Level)
	}
	e.money += refund
	e.towers = slices.Delete(e.towers, idx, idx+1)
	e.emit(CueSell)
	e.addParticle(Particle{Kind: ParticleText, Pos: t.Pos.ToVec(), Text: fmt.Sprintf("+%d", refund),
		Color: "#ffd700", Life: parameter.FloatingTextLife, MaxLife: parameter.FloatingTextLife})
	return true
}

// ToggleTacticalMode flips the pause flag, ignored after game over
func (e *Engine) ToggleTacticalMode() {
	if e.gameOver {
		return
	}
	e.paused = !e.paused
}

func (e *Engine) acceptsActions() bool {
	return !e.gameOver && e.pending == nil
}

// buildable reports whether a tower may be placed at p
func (e *Engine) buildable(p core.Point) bool {
	if p.Row < 0 || p.Row >= len(e.grid) || p.Col < 0 || p.Col >= len(e.grid[p.Row]) {
		return false
	}
	if e.grid[p.Row][p.Col] != maze.Empty {
		return false
	}
	return e.towerAt(p) == nil
}

func (e *Engine) reject(p core.Point, text string) {
	e.emit(CueBlocked)
	e.addParticle(Particle{Kind: ParticleNotice, Pos: p.ToVec(), Text: text, Color: "#ff4040",
		Life: parameter.NoticeLife, MaxLife: parameter.NoticeLife})
}

func (e *Engine) towerAt(p core.Point) *Tower {
	for _, t := range e.towers {
		if t.Pos == p {
			return t
		}
	}
	return nil
}

func (e *Engine) towerByID(id core.ID) *Tower {
	for _, t := range e.towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}
