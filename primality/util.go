// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

// gcdUI returns gcd(n, m) as a machine word. m must be non-zero.
func gcdUI(n *big.Int, m uint64) uint64 {
	a := new(big.Int).Mod(n, new(big.Int).SetUint64(m)).Uint64()
	b := m
	for a != 0 {
		a, b = b%a, a
	}
	return b
}

func absInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
