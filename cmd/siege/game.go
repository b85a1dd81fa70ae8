package main

import (
	"context"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-siege/audio"
	"github.com/lixenwraith/tower-siege/buff"
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/render"
	"github.com/lixenwraith/tower-siege/store"
)

// Game binds the engine to a terminal screen and keyboard
type Game struct {
	screen   tcell.Screen
	engine   *engine.Engine
	renderer *render.TerminalRenderer
	player   *audio.Player
	results  *store.Store
	log      zerolog.Logger

	frameInterval time.Duration

	cursor   core.Point
	selected catalog.TowerKind
	choices  []buff.Definition
	muted    bool
	message  string

	// saved marks the current session result as persisted
	saved bool
}

// NewGame wires collaborators, results and player may be nil
func NewGame(screen tcell.Screen, e *engine.Engine, player *audio.Player, results *store.Store, fps int, log zerolog.Logger) *Game {
	g := &Game{
		screen:        screen,
		engine:        e,
		renderer:      render.NewTerminalRenderer(screen, e.Catalog()),
		player:        player,
		results:       results,
		log:           log,
		frameInterval: time.Second / time.Duration(max(fps, 1)),
	}
	if kinds := e.Catalog().TowerKinds(); len(kinds) > 0 {
		g.selected = kinds[0]
	}
	g.resetCursor()
	return g
}

func (g *Game) resetCursor() {
	s := g.engine.Snapshot()
	if len(s.Grid) > 0 {
		g.cursor = core.Point{Row: len(s.Grid) / 2, Col: len(s.Grid[0]) / 2}
	}
}

func (g *Game) moveCursor(dRow, dCol int) {
	s := g.engine.Snapshot()
	if len(s.Grid) == 0 {
		return
	}
	g.cursor.Row = min(max(g.cursor.Row+dRow, 0), len(s.Grid)-1)
	g.cursor.Col = min(max(g.cursor.Col+dCol, 0), len(s.Grid[0])-1)
}

// towerUnderCursor returns the id of the tower at the cursor
func (g *Game) towerUnderCursor() (core.ID, bool) {
	s := g.engine.Snapshot()
	t, ok := s.TowerAt(g.cursor)
	return t.ID, ok
}

// stepSpeed moves dir positions through the allowed speed list
func (g *Game) stepSpeed(dir int) {
	idx := slices.Index(parameter.AllowedSpeeds, g.engine.Speed())
	if idx < 0 {
		return
	}
	idx = min(max(idx+dir, 0), len(parameter.AllowedSpeeds)-1)
	if err := g.engine.SetSpeed(parameter.AllowedSpeeds[idx]); err != nil {
		g.log.Warn().Err(err).Msg("speed change rejected")
	}
}

// handleInput applies one terminal event, false requests exit
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if len(g.choices) > 0 {
			return g.handleChoice(ev)
		}

		switch ev.Key() {
		case tcell.KeyUp:
			g.moveCursor(-1, 0)
		case tcell.KeyDown:
			g.moveCursor(1, 0)
		case tcell.KeyLeft:
			g.moveCursor(0, -1)
		case tcell.KeyRight:
			g.moveCursor(0, 1)
		case tcell.KeyEnter:
			g.engine.ConfirmAction()
		case tcell.KeyEscape:
			g.engine.CancelAction()
		case tcell.KeyRune:
			return g.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) handleRune(r rune) bool {
	switch {
	case r >= '1' && r <= '9':
		kinds := g.engine.Catalog().TowerKinds()
		if i := int(r - '1'); i < len(kinds) {
			g.selected = kinds[i]
		}
		return true
	}

	switch r {
	case 'q':
		return false
	case 'k':
		g.moveCursor(-1, 0)
	case 'j':
		g.moveCursor(1, 0)
	case 'h':
		g.moveCursor(0, -1)
	case 'l':
		g.moveCursor(0, 1)
	case 'b':
		g.engine.RequestBuild(g.cursor.Row, g.cursor.Col, g.selected)
	case 'u':
		if id, ok := g.towerUnderCursor(); ok {
			g.engine.RequestUpgrade(id)
		}
	case 's':
		if id, ok := g.towerUnderCursor(); ok {
			g.engine.SellTower(id)
		}
	case 'e':
		g.engine.RequestEarnMoney()
	case 'y':
		g.engine.ConfirmAction()
	case 'n':
		g.engine.CancelAction()
	case ' ':
		g.engine.ToggleTacticalMode()
	case '+', '=':
		g.stepSpeed(1)
	case '-':
		g.stepSpeed(-1)
	case 'm':
		if g.player != nil {
			g.muted = g.player.ToggleMute()
		}
	case 'r':
		g.saveResult()
		g.engine.StartNewGame()
		g.choices = nil
		g.saved = false
		g.message = ""
		g.resetCursor()
	}
	return true
}

// handleChoice resolves the buff offer, the simulation is held until a pick
func (g *Game) handleChoice(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return true
	}
	r := ev.Rune()
	if r == 'q' {
		return false
	}
	if i := int(r - '1'); i >= 0 && i < len(g.choices) {
		picked := g.choices[i]
		g.choices = nil
		g.engine.ApplyBuff(picked)
		g.message = "Boon: " + picked.Name
	}
	return true
}

// offerDue reports whether completing wave earns a buff offer
func offerDue(completed int) bool {
	return completed > 0 && completed%parameter.BuffChoiceInterval == 0
}

// update advances the simulation by elapsed host time and reacts to cues
func (g *Game) update(elapsed time.Duration) {
	if len(g.choices) > 0 {
		return
	}
	frames := float64(elapsed) / float64(parameter.FrameUpdateInterval)
	g.engine.Advance(frames)
	g.handleCues(g.engine.DrainCues())
}

func (g *Game) handleCues(cues []engine.Cue) {
	if g.player != nil {
		g.player.PlayAll(cues)
	}
	for _, c := range cues {
		switch c {
		case engine.CueWaveComplete:
			completed := g.engine.Wave() - 1
			if offerDue(completed) && !g.engine.IsGameOver() {
				g.choices = buff.GenerateChoices(g.engine.Rand(), buff.OddsForWave(completed))
				g.log.Info().Int("wave", completed).Int("choices", len(g.choices)).Msg("buff offer")
			}
		case engine.CueGameOver:
			g.choices = nil
			g.saveResult()
		}
	}
}

// saveResult persists the session outcome once
func (g *Game) saveResult() {
	if g.results == nil || g.saved {
		return
	}
	r := g.engine.Result()
	if r.Wave <= 1 && r.EnemiesKilled == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := g.results.Save(ctx, r); err != nil {
		g.log.Error().Err(err).Msg("failed to save result")
		return
	}
	g.saved = true
	if top, err := g.results.Top(ctx, 1); err == nil && len(top) > 0 && top[0].Wave <= r.Wave {
		g.message = "New best run!"
	}
}

func (g *Game) draw() {
	s := g.engine.Snapshot()
	g.renderer.Draw(&s, render.View{
		Cursor:   g.cursor,
		Selected: g.selected,
		Choices:  g.choices,
		Muted:    g.muted,
		Message:  g.message,
	})
}

// run drives frames until quit
func (g *Game) run() {
	ticker := time.NewTicker(g.frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	g.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				g.saveResult()
				return
			}
			g.draw()

		case now := <-ticker.C:
			g.update(now.Sub(last))
			last = now
			g.draw()
		}
	}
}
