// Package random provides seed helpers for the game's pseudo-random generator.
//
// Gem placement draws from a single *rand.Rand that is created here and
// passed explicitly into board setup, so a game can be replayed from its seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// New returns a generator for seed. A zero seed is replaced with a fresh one
// from NewSeed; the seed actually used is returned alongside.
func New(seed int64) (*rand.Rand, int64, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, 0, err
		}
	}
	return rand.New(rand.NewSource(seed)), seed, nil
}
