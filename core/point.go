package core

// Point is an integer grid cell, row-major
type Point struct {
	Row, Col int
}

// Vec is a fractional grid position used for movement, ranges and projectiles
type Vec struct {
	Row, Col float64
}

// ToVec returns the cell position as a fractional vector
func (p Point) ToVec() Vec {
	return Vec{Row: float64(p.Row), Col: float64(p.Col)}
}

// Add returns the cell offset by dr, dc
func (p Point) Add(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}
