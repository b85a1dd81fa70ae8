// Package render draws engine snapshots onto a tcell screen.
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tower-siege/buff"
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/effect"
	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/maze"
)

// CellWidth is the screen columns per board cell
const CellWidth = 2

// Screen rows around the board
const (
	statusRow = 0
	boardTop  = 1
)

// View carries host-side presentation state that the engine does not own
type View struct {
	Cursor   core.Point
	Selected catalog.TowerKind
	Choices  []buff.Definition
	Muted    bool
	Message  string
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen  tcell.Screen
	catalog *catalog.Catalog
}

// NewTerminalRenderer creates a renderer that resolves tower glyphs through cat
func NewTerminalRenderer(screen tcell.Screen, cat *catalog.Catalog) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, catalog: cat}
}

// Size returns the screen area a board of rows x cols needs
func Size(rows, cols int) (width, height int) {
	return cols * CellWidth, rows + 4
}

// ToScreen maps a board cell to its left screen column and row
func ToScreen(p core.Point) (x, y int) {
	return p.Col * CellWidth, boardTop + p.Row
}

// FromScreen maps a screen position back to a board cell
func FromScreen(x, y int) core.Point {
	return core.Point{Row: y - boardTop, Col: x / CellWidth}
}

// Draw renders one full frame
func (r *TerminalRenderer) Draw(s *engine.State, v View) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	rows := len(s.Grid)
	r.drawStatusBar(s, v, defaultStyle)
	r.drawBoard(s, defaultStyle)
	r.drawTowers(s, defaultStyle)
	r.drawEnemies(s, defaultStyle)
	r.drawProjectiles(s, defaultStyle)
	r.drawParticles(s, defaultStyle)
	r.drawCursor(s, v)

	footer := boardTop + rows
	switch {
	case len(v.Choices) > 0:
		r.drawChoices(v.Choices, footer, defaultStyle)
	case s.HasPending:
		r.drawModal(s, footer)
	default:
		r.drawFooter(s, v, footer, defaultStyle)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *TerminalRenderer) setCell(p core.Point, ch rune, style tcell.Style) {
	x, y := ToScreen(p)
	r.screen.SetContent(x, y, ch, nil, style)
	r.screen.SetContent(x+1, y, ' ', nil, style)
}

// vecCell rounds a fractional position to the nearest cell
func vecCell(v core.Vec) core.Point {
	return core.Point{Row: int(math.Round(v.Row)), Col: int(math.Round(v.Col))}
}

func inBounds(s *engine.State, p core.Point) bool {
	return p.Row >= 0 && p.Row < len(s.Grid) && p.Col >= 0 && len(s.Grid) > 0 && p.Col < len(s.Grid[0])
}

func (r *TerminalRenderer) drawStatusBar(s *engine.State, v View, defaultStyle tcell.Style) {
	bg := RgbStatusBar
	if s.HitFlash > 0 {
		bg = RgbHitFlash
	}
	style := defaultStyle.Foreground(RgbStatusText).Background(bg)

	width, _ := r.screen.Size()
	for x := 0; x < width; x++ {
		r.screen.SetContent(x, statusRow, ' ', nil, style)
	}

	text := fmt.Sprintf(" Wave %d  $%d  Lives %d  x%g  %s", s.Wave, s.Money, s.Lives, s.Speed, s.Theme.Name)
	if !s.WaveInProgress && !s.GameOver {
		text += fmt.Sprintf("  next in %ds", (s.Countdown+59)/60)
	}
	if v.Muted {
		text += "  muted"
	}
	x := r.drawText(0, statusRow, text, style)

	switch {
	case s.GameOver:
		r.drawText(x+2, statusRow, "GAME OVER", style.Foreground(RgbGameOver).Bold(true))
	case s.Paused:
		r.drawText(x+2, statusRow, "PAUSED", style.Foreground(RgbPaused).Bold(true))
	}
}

func (r *TerminalRenderer) drawBoard(s *engine.State, defaultStyle tcell.Style) {
	ground := hexColor(s.Theme.Ground, RgbBackground)
	path := hexColor(s.Theme.Path, RgbObstacle)

	for row, line := range s.Grid {
		for col, cell := range line {
			p := core.Point{Row: row, Col: col}
			switch cell {
			case maze.Path:
				r.setCell(p, ' ', defaultStyle.Background(path))
			case maze.Obstacle:
				r.setCell(p, '▓', defaultStyle.Background(ground).Foreground(RgbObstacle))
			case maze.Start:
				r.setCell(p, 'S', defaultStyle.Background(path).Foreground(RgbStart).Bold(true))
			case maze.Base:
				r.setCell(p, 'H', defaultStyle.Background(path).Foreground(RgbBase).Bold(true))
			default:
				r.setCell(p, ' ', defaultStyle.Background(ground))
			}
		}
	}
}

func (r *TerminalRenderer) drawTowers(s *engine.State, defaultStyle tcell.Style) {
	ground := hexColor(s.Theme.Ground, RgbBackground)
	for i := range s.Towers {
		t := &s.Towers[i]
		glyph := '?'
		if stats, ok := r.catalog.Tower(t.Kind); ok {
			glyph = stats.Glyph
		}

		fg := RgbTower
		if t.Level > 1 {
			fg = RgbTowerUpgraded
		}
		if t.Effects.Has(effect.Disabled) || t.Effects.Has(effect.Stun) {
			fg = RgbTowerDisabled
		}
		style := defaultStyle.Background(ground).Foreground(fg).Bold(true)

		x, y := ToScreen(t.Pos)
		r.screen.SetContent(x, y, glyph, nil, style)
		lvl := ' '
		if t.Level > 1 {
			lvl = rune('0' + min(t.Level, 9))
		}
		r.screen.SetContent(x+1, y, lvl, nil, style.Bold(false))
	}
}

func (r *TerminalRenderer) drawEnemies(s *engine.State, defaultStyle tcell.Style) {
	path := hexColor(s.Theme.Path, RgbObstacle)
	for i := range s.Enemies {
		en := &s.Enemies[i]
		p := vecCell(en.Vec)
		if !inBounds(s, p) {
			continue
		}
		style := defaultStyle.Background(path).Foreground(hexColor(en.Color, RgbTower))
		if en.Boss != engine.BossNone {
			style = style.Bold(true).Reverse(true)
		}

		x, y := ToScreen(p)
		r.screen.SetContent(x, y, en.Icon, nil, style)
		if en.ShieldHP > 0 {
			r.screen.SetContent(x+1, y, ')', nil, style.Foreground(RgbShield))
		}
	}
}

func projectileGlyph(st catalog.Style) (rune, tcell.Color) {
	switch st {
	case catalog.StyleShell:
		return 'o', RgbProjectile
	case catalog.StyleSniper:
		return '-', RgbProjectile
	case catalog.StyleLightning:
		return '~', RgbLightning
	case catalog.StyleBeam:
		return '=', RgbBeam
	case catalog.StyleFrost:
		return '*', RgbFrost
	case catalog.StyleOrb:
		return '@', RgbProjectile
	default:
		return '.', RgbProjectile
	}
}

func (r *TerminalRenderer) drawProjectiles(s *engine.State, defaultStyle tcell.Style) {
	for i := range s.Projectiles {
		pr := &s.Projectiles[i]
		p := vecCell(pr.Pos)
		if !inBounds(s, p) {
			continue
		}
		ch, fg := projectileGlyph(pr.Style)
		x, y := ToScreen(p)
		_, _, under, _ := r.screen.GetContent(x, y)
		_, bg, _ := under.Decompose()
		r.screen.SetContent(x+1, y, ch, nil, defaultStyle.Background(bg).Foreground(fg))
	}
}

func (r *TerminalRenderer) drawParticles(s *engine.State, defaultStyle tcell.Style) {
	for i := range s.Particles {
		pt := &s.Particles[i]
		p := vecCell(pt.Pos)
		if !inBounds(s, p) {
			continue
		}
		fg := hexColor(pt.Color, RgbNotification)
		x, y := ToScreen(p)
		switch pt.Kind {
		case engine.ParticleText, engine.ParticleNotice:
			// Floating text rises as it ages
			rise := 0
			if pt.MaxLife > 0 {
				rise = (pt.MaxLife - pt.Life) * 2 / pt.MaxLife
			}
			r.drawText(x, max(boardTop, y-rise), pt.Text, defaultStyle.Foreground(fg).Bold(true))
		case engine.ParticleExplosion:
			r.screen.SetContent(x+1, y, '*', nil, defaultStyle.Foreground(fg))
		case engine.ParticleTeleport:
			r.screen.SetContent(x+1, y, '%', nil, defaultStyle.Foreground(fg))
		case engine.ParticleHeal:
			r.screen.SetContent(x+1, y, '+', nil, defaultStyle.Foreground(fg))
		}
	}
}

func (r *TerminalRenderer) drawCursor(s *engine.State, v View) {
	if !inBounds(s, v.Cursor) {
		return
	}
	x, y := ToScreen(v.Cursor)
	for dx := 0; dx < CellWidth; dx++ {
		ch, comb, style, _ := r.screen.GetContent(x+dx, y)
		r.screen.SetContent(x+dx, y, ch, comb, style.Reverse(true))
	}
}

func (r *TerminalRenderer) drawFooter(s *engine.State, v View, y int, defaultStyle tcell.Style) {
	if s.Notification.Ticks > 0 {
		r.drawText(0, y, s.Notification.Text, defaultStyle.Foreground(RgbNotification).Bold(true))
	} else if v.Message != "" {
		r.drawText(0, y, v.Message, defaultStyle.Foreground(RgbNotification))
	}

	info := "Selected: -"
	if stats, ok := r.catalog.Tower(v.Selected); ok {
		info = fmt.Sprintf("Selected: %s ($%d)", stats.Name, stats.Cost)
	}
	if t, ok := s.TowerAt(v.Cursor); ok {
		name := t.Kind.String()
		if stats, ok := r.catalog.Tower(t.Kind); ok {
			name = stats.Name
		}
		info = fmt.Sprintf("%s L%d  dmg %.0f  rng %.1f", name, t.Level, t.Damage, t.Range)
		if t.Destructible() {
			info += fmt.Sprintf("  hp %.0f/%.0f", t.HP, t.MaxHP)
		}
	}
	r.drawText(0, y+1, info, defaultStyle.Foreground(RgbHelp))
	r.drawText(0, y+2, "1-9 tower  b build  u upgrade  s sell  e earn  space pause  +/- speed  m mute  r new  q quit",
		defaultStyle.Foreground(RgbHelp))
}

func (r *TerminalRenderer) drawModal(s *engine.State, y int) {
	style := tcell.StyleDefault.Background(RgbModalBg).Foreground(RgbNotification).Bold(true)
	a := s.Pending

	var text string
	switch a.Kind {
	case engine.ActionBuild:
		name := a.Tower.String()
		if stats, ok := r.catalog.Tower(a.Tower); ok {
			name = stats.Name
		}
		text = fmt.Sprintf(" Build %s at %d,%d for $%d? [y/n] ", name, a.Pos.Row, a.Pos.Col, a.Cost)
	case engine.ActionUpgrade:
		text = fmt.Sprintf(" Upgrade tower for $%d? [y/n] ", a.Cost)
	case engine.ActionEarnMoney:
		text = fmt.Sprintf(" Earn $%d? [y/n] ", a.Amount)
	default:
		text = " Confirm? [y/n] "
	}
	r.drawText(0, y, text, style)
}

func rarityColor(r buff.Rarity) tcell.Color {
	switch r {
	case buff.Rare:
		return RgbRare
	case buff.Epic:
		return RgbEpic
	case buff.Legendary:
		return RgbLegendary
	default:
		return RgbCommon
	}
}

func (r *TerminalRenderer) drawChoices(choices []buff.Definition, y int, defaultStyle tcell.Style) {
	r.drawText(0, y, "Choose a boon:", defaultStyle.Foreground(RgbNotification).Bold(true))
	for i, d := range choices {
		line := fmt.Sprintf("%d) %s [%s] %s", i+1, d.Name, d.Rarity, d.Description)
		r.drawText(0, y+1+i, line, defaultStyle.Foreground(rarityColor(d.Rarity)))
	}
}
