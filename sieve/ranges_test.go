// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve_test

import (
	"math/big"
	"testing"

	otiai10 "github.com/otiai10/primes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/primeutil/primality"
	"github.com/bnb-chain/primeutil/primes"
	"github.com/bnb-chain/primeutil/sieve"
)

func TestPrimesSmallRange(t *testing.T) {
	got, err := sieve.Primes(big.NewInt(1), big.NewInt(100), 0)
	require.NoError(t, err)
	var want []uint64
	for _, p := range otiai10.Until(100).List() {
		want = append(want, uint64(p-1))
	}
	assert.Equal(t, want, got)
}

func TestPrimesNarrowBigRange(t *testing.T) {
	lo := big.NewInt(1000000000000)
	hi := big.NewInt(1000000001000)
	got, err := sieve.Primes(lo, hi, 0)
	require.NoError(t, err)

	// Brute-force oracle over the same window.
	var want []uint64
	v := new(big.Int)
	for off := uint64(1); off <= 1000; off += 2 {
		v.Add(lo, new(big.Int).SetUint64(off))
		r, err := primality.IsProbPrime(v)
		require.NoError(t, err)
		if r.Bool() {
			want = append(want, off)
		}
	}
	assert.Equal(t, want, got)
}

func TestPrimesExhaustiveSieveDepth(t *testing.T) {
	// k >= sqrt(hi) makes the partial sieve exhaustive, skipping BPSW.
	// The narrow window avoids the base-sieve fast path.
	got, err := sieve.Primes(big.NewInt(2000000), big.NewInt(2100000), 1450)
	require.NoError(t, err)
	var want []uint64
	for _, p := range primes.SieveToN(2100000) {
		if p >= 2000000 {
			want = append(want, p-2000000)
		}
	}
	assert.Equal(t, want, got)
}

func TestPrimesEmptyAndDegenerate(t *testing.T) {
	got, err := sieve.Primes(big.NewInt(100), big.NewInt(10), 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = sieve.Primes(big.NewInt(24), big.NewInt(28), 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = sieve.Primes(big.NewInt(23), big.NewInt(23), 0)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0}, got)
}

func TestTwinPrimesSmall(t *testing.T) {
	got, err := sieve.TwinPrimes(big.NewInt(0), big.NewInt(100), 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 5, 11, 17, 29, 41, 59, 71}, got)

	got, err = sieve.TwinPrimes(big.NewInt(0), big.NewInt(100), 4)
	require.NoError(t, err)
	// 97 is in range even though its companion 101 is past hi.
	assert.Equal(t, []uint64{3, 7, 13, 19, 37, 43, 67, 79, 97}, got)

	_, err = sieve.TwinPrimes(big.NewInt(0), big.NewInt(100), 3)
	assert.Error(t, err, "odd twin offset")
}

func TestTwinPrimesBigWindow(t *testing.T) {
	lo := big.NewInt(1000000000000)
	hi := big.NewInt(1000000010000)
	got, err := sieve.TwinPrimes(lo, hi, 2)
	require.NoError(t, err)

	// Brute-force oracle: scan every odd offset.
	var want []uint64
	v := new(big.Int)
	w := new(big.Int)
	for off := uint64(1); off <= 10000; off += 2 {
		v.Add(lo, new(big.Int).SetUint64(off))
		r1, err := primality.IsProbPrime(v)
		require.NoError(t, err)
		if !r1.Bool() {
			continue
		}
		w.Add(v, big.NewInt(2))
		r2, err := primality.IsProbPrime(w)
		require.NoError(t, err)
		if r2.Bool() {
			want = append(want, off)
		}
	}
	assert.Equal(t, want, got)

	// Each reported pair really is a twin pair.
	for _, off := range got {
		v.Add(lo, new(big.Int).SetUint64(off))
		r, _ := primality.IsProbPrime(v)
		assert.True(t, r.Bool())
		w.Add(v, big.NewInt(2))
		r, _ = primality.IsProbPrime(w)
		assert.True(t, r.Bool())
	}
}
