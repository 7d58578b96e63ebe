// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"

	"github.com/bnb-chain/primeutil/primes"
)

// LCMConsecutive returns lcm(1..B): for each prime p <= B the factor
// p^floor(log_p B). Eight sub-accumulators keep the operands balanced
// until the final combine.
func LCMConsecutive(B uint64) *big.Int {
	var t [8]*big.Int
	for i := range t {
		t[i] = big.NewInt(1)
	}
	i := 0
	w := new(big.Int)

	iter := primes.NewIterator()
	defer iter.Destroy()

	if B >= 2 {
		pPower := uint64(2)
		for pPower <= B/2 {
			pPower *= 2
		}
		t[i&7].Mul(t[i&7], w.SetUint64(pPower))
		i++
	}
	p := iter.Next() // 3
	for p <= B {
		pmin := B / p
		if p > pmin {
			break
		}
		pPower := p * p
		for pPower <= pmin {
			pPower *= p
		}
		t[i&7].Mul(t[i&7], w.SetUint64(pPower))
		i++
		p = iter.Next()
	}
	for p <= B {
		t[i&7].Mul(t[i&7], w.SetUint64(p))
		i++
		p = iter.Next()
	}

	for j := 0; j < 4; j++ {
		t[j].Mul(t[2*j], t[2*j+1])
	}
	for j := 0; j < 2; j++ {
		t[j].Mul(t[2*j], t[2*j+1])
	}
	return new(big.Int).Mul(t[0], t[1])
}
