// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"
)

func matMulMod3x3(a, b *[9]*big.Int, n *big.Int) {
	var t [9]*big.Int
	t2 := new(big.Int)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			e := new(big.Int).Mul(a[3*row+0], b[0+col])
			e.Add(e, t2.Mul(a[3*row+1], b[3+col]))
			e.Add(e, t2.Mul(a[3*row+2], b[6+col]))
			t[3*row+col] = e
		}
	}
	for i := 0; i < 9; i++ {
		a[i].Mod(t[i], n)
	}
}

func matPowMod3x3(m *[9]*big.Int, kin, n *big.Int) {
	k := new(big.Int).Set(kin)
	var res [9]*big.Int
	for i := 0; i < 9; i++ {
		res[i] = new(big.Int)
	}
	res[0].SetUint64(1)
	res[4].SetUint64(1)
	res[8].SetUint64(1)
	for k.Sign() != 0 {
		if k.Bit(0) == 1 {
			matMulMod3x3(&res, m, n)
		}
		k.Rsh(k, 1)
		if k.Sign() != 0 {
			matMulMod3x3(m, m, n)
		}
	}
	for i := 0; i < 9; i++ {
		m[i].Set(res[i])
	}
}

// IsPerrinPseudoprime reports whether the Perrin sequence satisfies
// P(n) = 0 mod n, computed as the trace of the n-th power of the Perrin
// companion matrix.
func IsPerrinPseudoprime(n *big.Int) bool {
	if cmp := n.Cmp(two); cmp == 0 {
		return true
	} else if cmp < 0 {
		return false
	}
	seed := [9]int64{0, 1, 0, 0, 0, 1, 1, 1, 0}
	var m [9]*big.Int
	for i := 0; i < 9; i++ {
		m[i] = big.NewInt(seed[i])
	}
	matPowMod3x3(&m, n, n)
	tr := new(big.Int).Add(m[0], m[4])
	tr.Add(tr, m[8])
	tr.Mod(tr, n)
	return tr.Sign() == 0
}
