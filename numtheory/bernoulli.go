// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"
)

// Bernfrac returns the Bernoulli number B_n as a reduced fraction
// (num, den), using Luschny's version of the Brent-Harvey method.
// Odd n >= 3 give (0, 1).
func Bernfrac(n uint64) (num, den *big.Int) {
	switch {
	case n == 0:
		return big.NewInt(1), big.NewInt(1)
	case n == 1:
		return big.NewInt(1), big.NewInt(2)
	case n&1 == 1:
		return big.NewInt(0), big.NewInt(1)
	}
	half := n >> 1
	T := make([]*big.Int, half+1)
	for k := uint64(1); k <= half; k++ {
		T[k] = new(big.Int)
	}
	T[1].SetUint64(1)

	t := new(big.Int)
	for k := uint64(2); k <= half; k++ {
		T[k].Mul(T[k-1], t.SetUint64(k-1))
	}
	for k := uint64(2); k <= half; k++ {
		for j := k; j <= half; j++ {
			t.Mul(T[j], new(big.Int).SetUint64(j-k+2))
			T[j].Mul(T[j-1], new(big.Int).SetUint64(j-k))
			T[j].Add(T[j], t)
		}
	}

	num = new(big.Int).Mul(T[half], new(big.Int).SetUint64(half))
	if half&1 == 1 {
		num.Mul(num, big.NewInt(2))
	} else {
		num.Mul(num, big.NewInt(-2))
	}
	u := new(big.Int).Lsh(big.NewInt(1), uint(2*half)) // U = 1 << n
	den = new(big.Int).Mul(u, t.Sub(u, big.NewInt(1))) // den = U*(U-1)
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	num.Quo(num, g)
	den.Quo(den, g)
	return num, den
}
