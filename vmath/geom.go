package vmath

import (
	"math"

	"github.com/lixenwraith/tower-siege/core"
)

// Distance returns the euclidean distance between two grid positions
func Distance(a, b core.Vec) float64 {
	return math.Hypot(a.Row-b.Row, a.Col-b.Col)
}

// Lerp interpolates from a to b by t, t is not clamped
func Lerp(a, b core.Vec, t float64) core.Vec {
	return core.Vec{
		Row: a.Row + (b.Row-a.Row)*t,
		Col: a.Col + (b.Col-a.Col)*t,
	}
}

// BearingDegrees returns the angle from origin to target in degrees, columns are x and rows are y
func BearingDegrees(origin, target core.Vec) float64 {
	return math.Atan2(target.Row-origin.Row, target.Col-origin.Col) * 180 / math.Pi
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
