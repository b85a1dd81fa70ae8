package vmath

import (
	"math"
	"testing"

	"github.com/lixenwraith/tower-siege/core"
)

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Sequences diverged at draw %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("Expected non-zero output for zero seed")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		if n := r.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn out of range: %d", n)
		}
		if n := r.IntRange(2, 3); n < 2 || n > 3 {
			t.Fatalf("IntRange out of range: %d", n)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
}

func TestGeometry(t *testing.T) {
	a := core.Vec{Row: 0, Col: 0}
	b := core.Vec{Row: 3, Col: 4}
	if d := Distance(a, b); d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
	mid := Lerp(a, b, 0.5)
	if mid.Row != 1.5 || mid.Col != 2 {
		t.Errorf("Expected midpoint (1.5, 2), got %+v", mid)
	}
	if deg := BearingDegrees(a, core.Vec{Row: 1, Col: 0}); math.Abs(deg-90) > 1e-9 {
		t.Errorf("Expected bearing 90, got %f", deg)
	}
}
