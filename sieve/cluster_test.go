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

	"github.com/bnb-chain/primeutil/primality"
	"github.com/bnb-chain/primeutil/sieve"
)

func TestClusterValidation(t *testing.T) {
	_, err := sieve.Cluster(big.NewInt(0), big.NewInt(100), []uint32{2, 6})
	assert.Error(t, err, "first offset must be 0")
	_, err = sieve.Cluster(big.NewInt(0), big.NewInt(100), []uint32{0, 6, 2})
	assert.Error(t, err, "offsets must increase")
	_, err = sieve.Cluster(big.NewInt(0), big.NewInt(100), []uint32{0, 3})
	assert.Error(t, err, "offsets must be even")
}

func TestClusterQuadruplets(t *testing.T) {
	// Prime quadruplets (p, p+2, p+6, p+8) below 1000.
	got, err := sieve.Cluster(big.NewInt(0), big.NewInt(1000), []uint32{0, 2, 6, 8})
	require.NoError(t, err)
	assert.Equal(t, []uint64{5, 11, 101, 191, 821}, got)
}

func TestClusterInadmissibleTail(t *testing.T) {
	// (0,2,4) hits every residue mod 3, so only the tiny 3,5,7 survives.
	got, err := sieve.Cluster(big.NewInt(0), big.NewInt(10000), []uint32{0, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, []uint64{3}, got)
}

func TestClusterDegenerateDispatch(t *testing.T) {
	// One offset behaves exactly like Primes, two like TwinPrimes.
	viaCluster, err := sieve.Cluster(big.NewInt(10), big.NewInt(500), []uint32{0})
	require.NoError(t, err)
	direct, err := sieve.Primes(big.NewInt(10), big.NewInt(500), 0)
	require.NoError(t, err)
	assert.Equal(t, direct, viaCluster)

	viaCluster, err = sieve.Cluster(big.NewInt(10), big.NewInt(500), []uint32{0, 2})
	require.NoError(t, err)
	directTwin, err := sieve.TwinPrimes(big.NewInt(10), big.NewInt(500), 2)
	require.NoError(t, err)
	assert.Equal(t, directTwin, viaCluster)
}

func TestClusterAgainstPrimeList(t *testing.T) {
	lo := big.NewInt(1000000)
	hi := big.NewInt(1100000)
	got, err := sieve.Cluster(lo, hi, []uint32{0, 2, 6, 8})
	require.NoError(t, err)

	// Derive the quadruplets from a plain prime enumeration of the window.
	offs, err := sieve.Primes(lo, new(big.Int).Add(hi, big.NewInt(8)), 0)
	require.NoError(t, err)
	inSet := map[uint64]bool{}
	for _, o := range offs {
		inSet[o] = true
	}
	var want []uint64
	for _, o := range offs {
		if o <= 100000 && inSet[o+2] && inSet[o+6] && inSet[o+8] {
			want = append(want, o)
		}
	}
	assert.Equal(t, want, got)

	// The admissibility contract: every member of each emitted cluster is
	// a BPSW probable prime.
	v := new(big.Int)
	for _, r := range got {
		for _, c := range []uint64{0, 2, 6, 8} {
			v.Add(lo, new(big.Int).SetUint64(r+c))
			res, err := primality.BPSW(v)
			require.NoError(t, err)
			assert.True(t, res.Bool(), "lo+%d+%d", r, c)
		}
	}
}
