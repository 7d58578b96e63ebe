// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes_test

import (
	"testing"

	otiai10 "github.com/otiai10/primes"
	"github.com/stretchr/testify/assert"

	"github.com/bnb-chain/primeutil/primes"
)

func TestSmallTable(t *testing.T) {
	assert.Equal(t, 168, len(primes.Small))
	assert.EqualValues(t, 2, primes.Small[0])
	assert.EqualValues(t, 997, primes.Small[167])
	for i := 1; i < len(primes.Small); i++ {
		assert.Less(t, primes.Small[i-1], primes.Small[i])
	}
}

func TestWheelTables(t *testing.T) {
	coprime := func(m uint64) bool {
		return m%2 != 0 && m%3 != 0 && m%5 != 0
	}
	for m := uint64(0); m < 30; m++ {
		next := primes.NextWheel[m]
		assert.True(t, coprime(next), "next_wheel[%d] = %d", m, next)
		assert.EqualValues(t, (m+primes.WheelAdvance[m])%30, next%30)
		prev := primes.PrevWheel[m]
		assert.True(t, coprime(prev), "prev_wheel[%d] = %d", m, prev)
		assert.EqualValues(t, (m+30-primes.WheelRetreat[m])%30, prev%30)
	}
}

func TestSieveToN(t *testing.T) {
	got := primes.SieveToN(100)
	exp := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}
	assert.Equal(t, len(exp), len(got))
	for i := range exp {
		assert.EqualValues(t, exp[i], got[i])
	}
}

func TestSieveToNAgainstOracle(t *testing.T) {
	want := otiai10.Until(10000).List()
	got := primes.SieveToN(10000)
	assert.Equal(t, len(want), len(got))
	for i := range want {
		assert.EqualValues(t, want[i], got[i])
	}
}

func TestIteratorMatchesSieve(t *testing.T) {
	want := primes.SieveToN(1000000)
	iter := primes.NewIterator()
	defer iter.Destroy()
	assert.EqualValues(t, 2, iter.Peek())
	last := uint64(0)
	for i, p := range want {
		var got uint64
		if i == 0 {
			got = iter.Peek()
		} else {
			got = iter.Next()
		}
		assert.Equal(t, p, got, "prime #%d", i)
		assert.Greater(t, got, last)
		last = got
	}
}

func TestIteratorHorizon(t *testing.T) {
	// The enumeration horizon must comfortably pass 40009.
	iter := primes.NewIterator()
	defer iter.Destroy()
	p := iter.Peek()
	for p < 40009 {
		p = iter.Next()
	}
	assert.EqualValues(t, 40009, p)
}
