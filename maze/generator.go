package maze

import (
	"github.com/lixenwraith/tower-siege/core"
	"github.com/lixenwraith/tower-siege/parameter"
	"github.com/lixenwraith/tower-siege/vmath"
)

// Cell is the terrain of one grid tile
type Cell uint8

const (
	Empty Cell = iota
	Path
	Obstacle
	Start
	Base
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Path:
		return "path"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Base:
		return "base"
	default:
		return "unknown"
	}
}

// Walkable reports whether enemies may traverse the cell
func (c Cell) Walkable() bool {
	return c == Path || c == Start || c == Base
}

// Config selects board size and difficulty level
type Config struct {
	Rows, Cols int

	// Level raises obstacle density
	Level int

	// Rand drives every random choice, Seed is used when Rand is nil
	Rand *vmath.FastRand
	Seed uint64
}

// Result is a generated board
type Result struct {
	Grid  [][]Cell
	Start core.Point
	Base  core.Point
}

// Generate builds a board with one start, one base, a single connected path and scattered obstacles
func Generate(cfg Config) Result {
	// 1. Setup
	rows, cols := cfg.Rows, cfg.Cols
	if rows < 3 {
		rows = 3
	}
	if cols < 3 {
		cols = 3
	}
	rng := cfg.Rand
	if rng == nil {
		rng = vmath.NewFastRand(cfg.Seed)
	}

	grid := make([][]Cell, rows)
	for r := range grid {
		grid[r] = make([]Cell, cols)
	}

	// 2. Endpoints on opposite edges, kept off the border rows
	start := core.Point{Row: rng.IntRange(1, rows-2), Col: 0}
	base := core.Point{Row: rng.IntRange(1, rows-2), Col: cols - 1}

	// 3. Biased walk toward the base
	walk(grid, start, base, rng)

	// 4. Endpoints last so the walk cannot overwrite them
	grid[start.Row][start.Col] = Start
	grid[base.Row][base.Col] = Base
	connectBase(grid, base)

	// 5. Obstacles on remaining empty tiles
	scatterObstacles(grid, obstacleDensity(cfg.Level), rng)

	return Result{Grid: grid, Start: start, Base: base}
}

// walk marks a monotone staircase from start to target, right-biased, vertical steps only toward the target row
func walk(grid [][]Cell, start, target core.Point, rng *vmath.FastRand) {
	rows, cols := len(grid), len(grid[0])
	r, c := start.Row, start.Col
	grid[r][c] = Path

	for r != target.Row || c != target.Col {
		switch {
		case c < target.Col && (r == target.Row || rng.Chance(parameter.WalkRightChance)):
			c++
		case r < target.Row:
			r++
		case r > target.Row:
			r--
		default:
			c++
		}
		r = clampInt(r, 0, rows-1)
		c = clampInt(c, 0, cols-1)
		grid[r][c] = Path
	}
}

// connectBase opens the cell before the base when no walkable neighbor reaches it
func connectBase(grid [][]Cell, base core.Point) {
	for _, n := range neighbors(grid, base) {
		if grid[n.Row][n.Col] == Path || grid[n.Row][n.Col] == Start {
			return
		}
	}
	if base.Col > 0 {
		grid[base.Row][base.Col-1] = Path
	}
}

func scatterObstacles(grid [][]Cell, density float64, rng *vmath.FastRand) {
	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == Empty && rng.Chance(density) {
				grid[r][c] = Obstacle
			}
		}
	}
}

func obstacleDensity(level int) float64 {
	d := parameter.ObstacleDensityBase + float64(max(level, 0))*parameter.ObstacleDensityPerLevel
	return min(d, parameter.ObstacleDensityMax)
}

// --- Helpers ---

var orthogonal = []core.Point{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}}

func neighbors(grid [][]Cell, p core.Point) []core.Point {
	rows, cols := len(grid), len(grid[0])
	out := make([]core.Point, 0, 4)
	for _, d := range orthogonal {
		n := p.Add(d.Row, d.Col)
		if n.Row >= 0 && n.Row < rows && n.Col >= 0 && n.Col < cols {
			out = append(out, n)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
