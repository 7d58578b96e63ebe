// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

// Product multiplies A[lo..hi] in a balanced pairwise tree, leaving the
// result in A[lo] and returning it. Balanced reduction keeps the operand
// sizes close, which is where big.Int multiplication is fastest.
func Product(A []*big.Int, lo, hi int) *big.Int {
	for hi > lo {
		j := lo
		for i := lo; i <= hi; i += 2 {
			if i+1 <= hi {
				A[i].Mul(A[i], A[i+1])
			}
			A[j] = A[i]
			j++
		}
		hi = j - 1
	}
	return A[lo]
}
