// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
	"math/rand"
	"time"
)

// RandState is the shared PRNG cursor used to draw Miller-Rabin witnesses
// and Frobenius bases. It is intentionally non-cryptographic: the library
// only needs bases an innocent composite is unlikely to fool, not bases an
// adversary cannot predict.
type RandState struct {
	rnd *rand.Rand
}

var randstate *RandState

// SeedRandstate (re)builds the shared PRNG from the given seed.
func SeedRandstate(seed int64) {
	randstate = &RandState{rnd: rand.New(rand.NewSource(seed))}
}

// ClearRandstate drops the shared PRNG. A later Randstate call re-seeds
// from the wall clock.
func ClearRandstate() {
	randstate = nil
}

// Randstate returns the shared PRNG cursor, seeding it on first use.
func Randstate() *RandState {
	if randstate == nil {
		SeedRandstate(time.Now().UnixNano())
	}
	return randstate
}

// BigIntBelow returns a uniform value in [0, max). Requires max > 0.
func (s *RandState) BigIntBelow(max *big.Int) *big.Int {
	return new(big.Int).Rand(s.rnd, max)
}
