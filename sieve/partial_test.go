// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/primeutil/primes"
	"github.com/bnb-chain/primeutil/sieve"
)

func TestPartialValidation(t *testing.T) {
	_, _, err := sieve.Partial(big.NewInt(10), 100, 50)
	assert.Error(t, err, "even start")
	_, _, err = sieve.Partial(big.NewInt(11), 0, 50)
	assert.Error(t, err, "zero length")
}

// Sieve completeness: an odd position is marked iff its value has a prime
// factor at or below maxPrime.
func TestPartialCompleteness(t *testing.T) {
	const (
		length = uint64(10000)
		maxp   = uint64(997)
	)
	start := new(big.Int).SetUint64(1000000000001) // odd
	comp, base, err := sieve.Partial(start, length, maxp)
	require.NoError(t, err)
	require.Equal(t, uint64(1000000000000), base.Uint64())

	smallPrimes := primes.SieveToN(maxp)
	baseU := base.Uint64()
	for i := uint64(1); i < length; i += 2 {
		v := baseU + i
		hasSmall := false
		for _, p := range smallPrimes {
			if p > 2 && v%p == 0 {
				hasSmall = true
				break
			}
		}
		assert.Equal(t, hasSmall, sieve.IsMarked(comp, i), "value %d", v)
	}
}

// The tiling path and the direct striking path must agree.
func TestPartialSmallStart(t *testing.T) {
	start := big.NewInt(3)
	comp, base, err := sieve.Partial(start, 1000, 31)
	require.NoError(t, err)
	baseU := base.Uint64() // 2
	for i := uint64(1); i < 1000; i += 2 {
		v := baseU + i
		hasSmall := false
		for _, p := range []uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31} {
			if v%p == 0 {
				hasSmall = true
				break
			}
		}
		assert.Equal(t, hasSmall, sieve.IsMarked(comp, i), "value %d", v)
	}
}
