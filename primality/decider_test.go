// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primality"
)

func TestPretestSmall(t *testing.T) {
	assert.Equal(t, primality.Composite, primality.Pretest(big.NewInt(0)))
	assert.Equal(t, primality.Composite, primality.Pretest(big.NewInt(1)))
	assert.Equal(t, primality.Prime, primality.Pretest(big.NewInt(2)))
	assert.Equal(t, primality.Prime, primality.Pretest(big.NewInt(997)))
	assert.Equal(t, primality.Composite, primality.Pretest(big.NewInt(1000)))
	// Below 1009^2 a clean gcd against BGCD decides prime outright.
	assert.Equal(t, primality.Prime, primality.Pretest(big.NewInt(999983)))
	// At and above 1009^2 the pretest can only answer unknown: 1009^2
	// itself and 1009*1013 have no factor the cascade can see.
	assert.Equal(t, primality.ProbablyPrime, primality.Pretest(big.NewInt(1018081)))
	assert.Equal(t, primality.ProbablyPrime, primality.Pretest(big.NewInt(1022117)))
}

func TestTrialFactor(t *testing.T) {
	assert.EqualValues(t, 3, primality.TrialFactor(big.NewInt(51), 2, 997))
	assert.EqualValues(t, 11, primality.TrialFactor(big.NewInt(187), 5, 997))
	assert.EqualValues(t, 0, primality.TrialFactor(big.NewInt(101), 2, 997))
	assert.EqualValues(t, 101, primality.TrialFactor(big.NewInt(10201), 2, 997))
}

func TestIsPrimeScenarios(t *testing.T) {
	// 2^89-1 is a Mersenne prime; the LLR fast path proves it.
	m89 := new(big.Int).Lsh(big.NewInt(1), 89)
	m89.Sub(m89, big.NewInt(1))
	r, err := primality.IsPrime(m89)
	require.NoError(t, err)
	assert.Equal(t, primality.Prime, r)

	// 2^67-1 = 193707721 * 761838257287.
	m67 := new(big.Int).Lsh(big.NewInt(1), 67)
	m67.Sub(m67, big.NewInt(1))
	r, err = primality.IsPrime(m67)
	require.NoError(t, err)
	assert.Equal(t, primality.Composite, r)

	r, err = primality.IsProbPrime(m89)
	require.NoError(t, err)
	assert.Equal(t, primality.ProbablyPrime, r)

	r, err = primality.IsProbPrime(m67)
	require.NoError(t, err)
	assert.Equal(t, primality.Composite, r)
}

func TestIsPrimeMidSize(t *testing.T) {
	common.SeedRandstate(7)
	defer common.ClearRandstate()
	for _, v := range []int64{1000003, 999999937, 67280421310721} {
		r, err := primality.IsPrime(big.NewInt(v))
		require.NoError(t, err)
		assert.Equal(t, primality.Prime, r, "n=%d", v)
	}
	for _, v := range []int64{999999999, 1000000001} {
		r, err := primality.IsPrime(big.NewInt(v))
		require.NoError(t, err)
		assert.Equal(t, primality.Composite, r, "n=%d", v)
	}
}

type fakeProver struct {
	called bool
}

func (f *fakeProver) ProveNMinusOne(n *big.Int, effort int, wantCert bool) (primality.Result, string, error) {
	f.called = true
	return primality.Prime, "bls75-n-1 stub certificate", nil
}

func TestIsProvablePrimeDelegation(t *testing.T) {
	p := &fakeProver{}
	primality.RegisterNMinusOneProver(p)
	defer primality.RegisterNMinusOneProver(nil)

	// M89 is above 2^64; with a certificate wanted, the LLR shortcut is
	// skipped and the cascade must reach the registered prover.
	n := new(big.Int).Lsh(big.NewInt(1), 89)
	n.Sub(n, big.NewInt(1))
	common.SeedRandstate(11)
	defer common.ClearRandstate()
	r, cert, err := primality.IsProvablePrime(n, true)
	require.NoError(t, err)
	assert.True(t, p.called)
	assert.Equal(t, primality.Prime, r)
	assert.NotEmpty(t, cert)
}

func TestInitDestroy(t *testing.T) {
	primality.Init()
	assert.Equal(t, primality.ProbablyPrime, primality.Pretest(big.NewInt(1022117)))
	primality.Destroy()
	// Cached state rebuilds on demand after teardown.
	assert.Equal(t, primality.Prime, primality.Pretest(big.NewInt(999983)))
}
