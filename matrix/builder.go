// SPDX-License-Identifier: MIT
// Package matrix - deterministic fixtures and demo inputs.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.

package matrix

import (
	"fmt"
	"math/rand"
)

// DefaultRandomSeed is the fixed seed used when callers pass seed==0.
const DefaultRandomSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultRandomSeed; otherwise the provided seed verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultRandomSeed
	}

	return rand.New(rand.NewSource(seed))
}

// NewRandom builds an n×n matrix with entries drawn uniformly from [0, maxValue).
// A nil rng is replaced by RNGFromSeed(0). Cells are filled in row-major order,
// so a given stream always yields the same matrix.
//
// Errors:
//   - ErrInvalidDimensions if n <= 0.
//   - ErrBadShape if maxValue <= 0.
func NewRandom(n int, maxValue int64, rng *rand.Rand) (*Dense, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("NewRandom: %w", err)
	}
	if maxValue <= 0 {
		return nil, fmt.Errorf("NewRandom: maxValue %d: %w", maxValue, ErrBadShape)
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}
	for i := range m.data {
		m.data[i] = rng.Int63n(maxValue)
	}

	return m, nil
}

// NewRandomPair builds two independent n×n random operands from one seed.
// The first matrix consumes the stream before the second, so (A, B) is stable per seed.
func NewRandomPair(n int, maxValue, seed int64) (a, b *Dense, err error) {
	rng := RNGFromSeed(seed)
	if a, err = NewRandom(n, maxValue, rng); err != nil {
		return nil, nil, err
	}
	if b, err = NewRandom(n, maxValue, rng); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// Ones returns an n×n matrix with every cell equal to 1.
func Ones(n int) (*Dense, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("Ones: %w", err)
	}
	for i := range m.data {
		m.data[i] = 1
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}
