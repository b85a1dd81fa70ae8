package maze

import "github.com/lixenwraith/tower-siege/core"

// Find locates the start and base cells of a grid
func Find(grid [][]Cell) (start, base core.Point, ok bool) {
	foundStart, foundBase := false, false
	for r := range grid {
		for c := range grid[r] {
			switch grid[r][c] {
			case Start:
				start, foundStart = core.Point{Row: r, Col: c}, true
			case Base:
				base, foundBase = core.Point{Row: r, Col: c}, true
			}
		}
	}
	return start, base, foundStart && foundBase
}

// Trace derives the ordered node list from start to base over walkable cells, nil if unreachable
// Independent of how the grid was drawn
func Trace(grid [][]Cell) []core.Point {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil
	}
	start, base, ok := Find(grid)
	if !ok {
		return nil
	}

	queue := []core.Point{start}
	cameFrom := make(map[core.Point]core.Point)
	visited := map[core.Point]bool{start: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == base {
			path := []core.Point{}
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, next := range neighbors(grid, curr) {
			if grid[next.Row][next.Col].Walkable() && !visited[next] {
				visited[next] = true
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// Clone returns a deep copy of grid
func Clone(grid [][]Cell) [][]Cell {
	out := make([][]Cell, len(grid))
	for r := range grid {
		out[r] = append([]Cell(nil), grid[r]...)
	}
	return out
}
