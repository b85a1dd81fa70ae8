package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-siege/catalog"
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/maze"
)

func newTestEngine(t *testing.T, seed uint64) *Engine {
	t.Helper()
	e := New(DefaultConfig(), WithSeed(seed))
	require.GreaterOrEqual(t, len(e.path), 2, "generated path")
	return e
}

func tickN(e *Engine, n int) {
	for range n {
		e.Tick()
	}
}

// cellsNearPath lists free buildable cells orthogonally adjacent to the path, in path order
func cellsNearPath(e *Engine, n int) []core.Point {
	seen := map[core.Point]bool{}
	var out []core.Point
	for _, node := range e.path {
		for _, d := range []core.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			p := node.Add(d.Row, d.Col)
			if seen[p] || !e.buildable(p) {
				continue
			}
			seen[p] = true
			out = append(out, p)
			if len(out) == n {
				return out
			}
		}
	}
	return out
}

// placeTower builds through the request/confirm gate
func placeTower(t *testing.T, e *Engine, p core.Point, kind catalog.TowerKind) *Tower {
	t.Helper()
	require.True(t, e.RequestBuild(p.Row, p.Col, kind), "request build %s at %v", kind, p)
	require.True(t, e.ConfirmAction(), "confirm build")
	tw := e.towerAt(p)
	require.NotNil(t, tw)
	return tw
}

// addEnemy spawns an unscaled enemy of type key at path index idx
func addEnemy(t *testing.T, e *Engine, key string, idx int) *Enemy {
	t.Helper()
	typ, ok := e.catalog.Enemy(key)
	require.True(t, ok, key)
	en := e.newEnemy(typ, BossNone)
	en.PathIndex = idx
	e.syncEnemyPosition(en)
	e.enemies = append(e.enemies, en)
	return en
}

func countCue(cues []Cue, c Cue) int {
	n := 0
	for _, x := range cues {
		if x == c {
			n++
		}
	}
	return n
}

func firstEmptyCell(e *Engine) core.Point {
	for r, row := range e.grid {
		for c, cell := range row {
			p := core.Point{Row: r, Col: c}
			if cell == maze.Empty && e.towerAt(p) == nil {
				return p
			}
		}
	}
	return core.Point{Row: -1, Col: -1}
}
