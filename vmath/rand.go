package vmath

// FastRand is a xorshift64 generator, seedable for reproducible simulation runs
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is remapped since xorshift stalls on zero state
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [lo, hi]
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Chance reports whether a roll in [0, 1) falls under p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// Exceeds reports whether a roll in [0, 1) is above threshold
func (r *FastRand) Exceeds(threshold float64) bool {
	return r.Float64() > threshold
}

// Seed returns the current internal state, a generator built from it continues the same sequence
func (r *FastRand) Seed() uint64 {
	return r.state
}
