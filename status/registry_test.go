package status

import (
	"sync"
	"testing"
)

func TestGetReturnsCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("enemy.count")
	b := r.Ints.Get("enemy.count")
	if a != b {
		t.Errorf("Expected same pointer for repeated Get")
	}
	a.Store(7)
	if got := b.Load(); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if !r.Ints.Has("enemy.count") || r.Ints.Has("tower.count") {
		t.Errorf("Has reports wrong membership")
	}
}

func TestConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("engine.ticks").Add(1)
		}()
	}
	wg.Wait()
	if got := r.Ints.Get("engine.ticks").Load(); got != 16 {
		t.Errorf("Expected 16, got %d", got)
	}
	if r.Ints.Len() != 1 {
		t.Errorf("Expected 1 key, got %d", r.Ints.Len())
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("wave.current").Store(3)
	r.Floats.Get("engine.speed").Store(1.5)
	r.Texts.Get("theme.name").Store("Desert")

	snap := r.Snapshot()
	want := []Entry{
		{"engine.speed", "1.50"},
		{"theme.name", "Desert"},
		{"wave.current", "3"},
	}
	if len(snap) != len(want) {
		t.Fatalf("Expected %d entries, got %d", len(want), len(snap))
	}
	for i := range want {
		if snap[i] != want[i] {
			t.Errorf("Entry %d: expected %v, got %v", i, want[i], snap[i])
		}
	}
}

func TestZeroValues(t *testing.T) {
	var f Float
	var s Text
	if f.Load() != 0 || s.Load() != "" {
		t.Errorf("Expected zero values to read empty")
	}
}
