package dice

import (
	"testing"
)

func TestRandRoller_Range(t *testing.T) {
	r, err := NewRandRoller(42)
	if err != nil {
		t.Fatalf("NewRandRoller failed: %v", err)
	}

	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		face := r.RollFace()
		if face < 1 || face > 6 {
			t.Fatalf("Expected face in 1..6, got %d", face)
		}
		seen[face] = true
	}
	if len(seen) != 6 {
		t.Errorf("Expected every face to appear in 1000 rolls, saw %v", seen)
	}
}

func TestRandRoller_Deterministic(t *testing.T) {
	a, _ := NewRandRoller(7)
	b, _ := NewRandRoller(7)

	for i := 0; i < 50; i++ {
		if x, y := a.RollFace(), b.RollFace(); x != y {
			t.Fatalf("Roll %d differs for the same seed: %d vs %d", i, x, y)
		}
	}
}

func TestNewRandRoller_ZeroSeed(t *testing.T) {
	r, err := NewRandRoller(0)
	if err != nil {
		t.Fatalf("NewRandRoller failed: %v", err)
	}
	if r.Seed() == 0 {
		t.Error("Expected a drawn seed to replace 0")
	}
}

func TestRollerFunc(t *testing.T) {
	var r Roller = RollerFunc(func() int { return 4 })
	if got := r.RollFace(); got != 4 {
		t.Errorf("Expected 4, got %d", got)
	}
}
