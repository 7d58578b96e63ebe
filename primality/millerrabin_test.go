// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality_test

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primality"
	"github.com/bnb-chain/primeutil/primes"
)

func TestMillerRabinWitnessSoundness(t *testing.T) {
	// Every base 2 <= a <= n-2 passes for prime n.
	for _, p := range []int64{5, 13, 97, 541, 7919} {
		n := big.NewInt(p)
		for a := int64(2); a <= p-2; a += 7 {
			pass, err := primality.MillerRabin(n, big.NewInt(a))
			require.NoError(t, err)
			assert.True(t, pass, "n=%d a=%d", p, a)
		}
	}
}

func TestMillerRabinComposites(t *testing.T) {
	// 341 is a Fermat pseudoprime base 2 but not a strong one.
	pass, err := primality.MillerRabinUI(big.NewInt(341), 2)
	require.NoError(t, err)
	assert.False(t, pass)

	// 2047 = 23*89 is the first strong pseudoprime base 2.
	pass, err = primality.MillerRabinUI(big.NewInt(2047), 2)
	require.NoError(t, err)
	assert.True(t, pass)

	pass, err = primality.MillerRabinUI(big.NewInt(2047), 3)
	require.NoError(t, err)
	assert.False(t, pass)
}

func TestMillerRabinBadBase(t *testing.T) {
	_, err := primality.MillerRabinUI(big.NewInt(101), 1)
	require.Error(t, err)
	assert.Equal(t, common.ErrInvalidArgument, errors.Cause(err))
}

func TestMillerRabinRandom(t *testing.T) {
	common.SeedRandstate(42)
	defer common.ClearRandstate()
	assert.True(t, primality.MillerRabinRandom(big.NewInt(1000003), 5))
	assert.False(t, primality.MillerRabinRandom(big.NewInt(1000001), 20)) // 101*9901
}

func TestIsMillerPrime(t *testing.T) {
	for _, grh := range []bool{false, true} {
		ok, err := primality.IsMillerPrime(big.NewInt(97), grh)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = primality.IsMillerPrime(big.NewInt(91), grh)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	// Above the small-n shortcut the Bach bound applies.
	ok, err := primality.IsMillerPrime(big.NewInt(15485863), true)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsProbPrimeMatchesSieve(t *testing.T) {
	isPrime := map[uint64]bool{}
	for _, p := range primes.SieveToN(20000) {
		isPrime[p] = true
	}
	n := new(big.Int)
	for v := uint64(2); v <= 20000; v++ {
		n.SetUint64(v)
		r, err := primality.IsProbPrime(n)
		require.NoError(t, err)
		assert.Equal(t, isPrime[v], r.Bool(), "n=%d", v)
		if r.Bool() {
			assert.Equal(t, primality.Prime, r, "below 2^64 the answer is exact")
		}
	}
}
