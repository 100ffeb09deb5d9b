// Package dice provides the randomness behind every throw.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/wfunc/yahtzee/models"
)

// Roller draws a single die face.
type Roller interface {
	// RollFace returns a uniform value in 1..6.
	RollFace() int
}

// RandRoller rolls from a seeded math/rand source. Not safe for concurrent use.
type RandRoller struct {
	rng  *rand.Rand
	seed int64
}

// NewRandRoller seeds a roller. A zero seed draws one from crypto/rand.
func NewRandRoller(seed int64) (*RandRoller, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, err
		}
		seed = s
	}
	return &RandRoller{rng: rand.New(rand.NewSource(seed)), seed: seed}, nil
}

func (r *RandRoller) RollFace() int {
	return r.rng.Intn(models.Faces) + 1
}

// Seed returns the seed in use, so a game can be replayed.
func (r *RandRoller) Seed() int64 {
	return r.seed
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}

// RollerFunc adapts a plain function to Roller.
type RollerFunc func() int

func (f RollerFunc) RollFace() int { return f() }
