package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/tower-siege/audio"
	"github.com/lixenwraith/tower-siege/buff"
	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/engine"
	"github.com/lixenwraith/tower-siege/maze"
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/store"
)

func newTestGame(t *testing.T, results *store.Store) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	e := engine.New(engine.DefaultConfig(), engine.WithSeed(11))
	player := audio.NewPlayer(audio.Options{Enabled: false}, zerolog.Nop())
	return NewGame(screen, e, player, results, 60, zerolog.Nop())
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func special(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// moveTo places the cursor on the first empty cell
func moveTo(t *testing.T, g *Game) core.Point {
	t.Helper()
	s := g.engine.Snapshot()
	for r, line := range s.Grid {
		for c, cell := range line {
			if cell == maze.Empty {
				g.cursor = core.Point{Row: r, Col: c}
				return g.cursor
			}
		}
	}
	t.Fatal("No empty cell on board")
	return core.Point{}
}

func TestQuitKeys(t *testing.T) {
	g := newTestGame(t, nil)
	if g.handleInput(key('q')) {
		t.Error("Expected q to request exit")
	}
	if g.handleInput(special(tcell.KeyCtrlC)) {
		t.Error("Expected Ctrl-C to request exit")
	}
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(t, nil)
	g.cursor = core.Point{}

	g.handleInput(special(tcell.KeyUp))
	g.handleInput(key('h'))
	if g.cursor != (core.Point{}) {
		t.Errorf("Expected cursor clamped at origin, got %v", g.cursor)
	}

	g.handleInput(special(tcell.KeyDown))
	g.handleInput(key('l'))
	if g.cursor != (core.Point{Row: 1, Col: 1}) {
		t.Errorf("Expected cursor at 1,1, got %v", g.cursor)
	}
}

func TestSelectTowerKind(t *testing.T) {
	g := newTestGame(t, nil)
	kinds := g.engine.Catalog().TowerKinds()

	g.handleInput(key('2'))
	if g.selected != kinds[1] {
		t.Errorf("Expected %v selected, got %v", kinds[1], g.selected)
	}
	g.handleInput(key('9'))
	if len(kinds) >= 9 && g.selected != kinds[8] {
		t.Errorf("Expected %v selected, got %v", kinds[8], g.selected)
	}
}

func TestBuildConfirmFlow(t *testing.T) {
	g := newTestGame(t, nil)
	p := moveTo(t, g)

	g.handleInput(key('1'))
	g.handleInput(key('b'))
	if _, ok := g.engine.PendingAction(); !ok {
		t.Fatal("Expected pending build after b")
	}

	g.handleInput(key('y'))
	s := g.engine.Snapshot()
	tw, ok := s.TowerAt(p)
	if !ok {
		t.Fatal("Expected tower at cursor after confirm")
	}
	if tw.Kind != catalog.Archer {
		t.Errorf("Expected archer, got %v", tw.Kind)
	}

	g.handleInput(key('u'))
	if a, ok := g.engine.PendingAction(); !ok || a.Kind != engine.ActionUpgrade {
		t.Fatal("Expected pending upgrade after u")
	}
	g.handleInput(special(tcell.KeyEscape))
	if _, ok := g.engine.PendingAction(); ok {
		t.Error("Expected escape to cancel the pending action")
	}

	money := g.engine.Money()
	g.handleInput(key('s'))
	if g.engine.Money() <= money {
		t.Errorf("Expected refund on sell, money %d -> %d", money, g.engine.Money())
	}
}

func TestEarnCancelled(t *testing.T) {
	g := newTestGame(t, nil)
	money := g.engine.Money()

	g.handleInput(key('e'))
	g.handleInput(key('n'))
	if g.engine.Money() != money {
		t.Errorf("Expected money unchanged after cancel, got %d", g.engine.Money())
	}

	g.handleInput(key('e'))
	g.handleInput(special(tcell.KeyEnter))
	if g.engine.Money() != money+30 {
		t.Errorf("Expected %d after earn, got %d", money+30, g.engine.Money())
	}
}

func TestSpeedKeys(t *testing.T) {
	g := newTestGame(t, nil)

	g.handleInput(key('+'))
	if g.engine.Speed() != 1.5 {
		t.Errorf("Expected speed 1.5, got %v", g.engine.Speed())
	}
	for i := 0; i < 10; i++ {
		g.handleInput(key('+'))
	}
	if g.engine.Speed() != 4 {
		t.Errorf("Expected speed capped at 4, got %v", g.engine.Speed())
	}
	for i := 0; i < 10; i++ {
		g.handleInput(key('-'))
	}
	if g.engine.Speed() != 0.5 {
		t.Errorf("Expected speed floored at 0.5, got %v", g.engine.Speed())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, nil)
	g.handleInput(key(' '))
	if !g.engine.IsPaused() {
		t.Error("Expected paused after space")
	}
	ticks := g.engine.Ticks()
	g.update(time.Second)
	if g.engine.Ticks() != ticks {
		t.Error("Expected no logic steps while paused")
	}
	g.handleInput(key(' '))
	g.update(160 * time.Millisecond)
	if g.engine.Ticks() != ticks+10 {
		t.Errorf("Expected 10 steps after resume, got %d", g.engine.Ticks()-ticks)
	}
}

func TestOfferDue(t *testing.T) {
	cases := map[int]bool{0: false, 1: false, 4: false, 5: true, 10: true, 12: false}
	for wave, want := range cases {
		if got := offerDue(wave); got != want {
			t.Errorf("offerDue(%d): expected %v, got %v", wave, want, got)
		}
	}
}

func TestBuffChoiceHoldsSimulation(t *testing.T) {
	g := newTestGame(t, nil)
	g.choices = buff.GenerateChoices(g.engine.Rand(), buff.OddsForWave(5))
	if len(g.choices) != buff.ChoiceCount {
		t.Fatalf("Expected %d choices, got %d", buff.ChoiceCount, len(g.choices))
	}
	picked := g.choices[1]

	ticks := g.engine.Ticks()
	g.update(time.Second)
	if g.engine.Ticks() != ticks {
		t.Error("Expected simulation held during buff choice")
	}

	// Build keys are swallowed while choosing
	g.handleInput(key('b'))
	if _, ok := g.engine.PendingAction(); ok {
		t.Error("Expected no pending action while choosing")
	}

	g.handleInput(key('2'))
	if len(g.choices) != 0 {
		t.Error("Expected choices cleared after pick")
	}
	active := g.engine.Buffs()
	if len(active) != 1 || active[0].Definition.ID != picked.ID {
		t.Errorf("Expected %s active, got %+v", picked.ID, active)
	}
}

func TestResultSavedOnce(t *testing.T) {
	results, err := store.Open(filepath.Join(t.TempDir(), "results.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer results.Close()

	g := newTestGame(t, results)

	// A fresh session has nothing worth recording
	g.saveResult()
	n, _ := results.Count(context.Background())
	if n != 0 {
		t.Errorf("Expected no record for an empty session, got %d", n)
	}

	// Run until the first wave resolves
	for i := 0; i < 20000 && g.engine.Wave() == 1 && !g.engine.IsGameOver(); i++ {
		g.update(parameter.FrameUpdateInterval)
	}
	g.handleCues([]engine.Cue{engine.CueGameOver})
	g.handleCues([]engine.Cue{engine.CueGameOver})

	n, _ = results.Count(context.Background())
	if n != 1 {
		t.Errorf("Expected exactly one saved record, got %d", n)
	}

	g.handleInput(key('r'))
	if g.saved {
		t.Error("Expected saved flag reset on new game")
	}
	if g.engine.Wave() != 1 {
		t.Errorf("Expected wave 1 after restart, got %d", g.engine.Wave())
	}
}

func TestDrawDoesNotPanic(t *testing.T) {
	g := newTestGame(t, nil)
	g.draw()
	g.choices = buff.GenerateChoices(g.engine.Rand(), buff.OddsForWave(1))
	g.draw()
}
