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

	"github.com/bnb-chain/primeutil/primality"
)

func TestLucasLehmer(t *testing.T) {
	mersennePrimeExps := map[uint64]bool{
		2: true, 3: true, 5: true, 7: true, 13: true, 17: true, 19: true,
		31: true, 61: true, 89: true, 107: true, 127: true,
	}
	for p := uint64(2); p <= 130; p++ {
		assert.Equal(t, mersennePrimeExps[p], primality.LucasLehmer(p), "p=%d", p)
	}
}

func TestLLR(t *testing.T) {
	// 3*2^7 - 1 = 383 is a Riesel prime.
	r, decided := primality.LLR(big.NewInt(383))
	assert.True(t, decided)
	assert.Equal(t, primality.Prime, r)

	// 5*2^9 - 1 = 2559 = 3*853.
	r, decided = primality.LLR(big.NewInt(2559))
	assert.True(t, decided)
	assert.Equal(t, primality.Composite, r)

	// 2^89-1 routes through Lucas-Lehmer.
	m89 := new(big.Int).Lsh(big.NewInt(1), 89)
	m89.Sub(m89, big.NewInt(1))
	r, decided = primality.LLR(m89)
	assert.True(t, decided)
	assert.Equal(t, primality.Prime, r)
}

func TestProth(t *testing.T) {
	// 13*2^8 + 1 = 3329 is prime.
	r, decided := primality.Proth(big.NewInt(3329))
	assert.True(t, decided)
	assert.Equal(t, primality.Prime, r)

	// F4 = 65537.
	r, decided = primality.Proth(big.NewInt(65537))
	assert.True(t, decided)
	assert.Equal(t, primality.Prime, r)

	// 7*2^5 + 1 = 225 = 15^2; divisible by 3 so decided composite early.
	r, decided = primality.Proth(big.NewInt(225))
	assert.True(t, decided)
	assert.Equal(t, primality.Composite, r)
}

func TestIsProthForm(t *testing.T) {
	assert.True(t, primality.IsProthForm(big.NewInt(3329)))
	assert.True(t, primality.IsProthForm(big.NewInt(65537)))
	assert.False(t, primality.IsProthForm(big.NewInt(3331))) // k=1665 > 2^1
}
