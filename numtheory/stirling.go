// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bnb-chain/primeutil/common"
)

// Stirling returns the Stirling number of the given kind: 1 (signed first
// kind), 2 (second kind) or 3 (Lah numbers).
func Stirling(n, m uint64, kind int) (*big.Int, error) {
	if kind < 1 || kind > 3 {
		return nil, errors.Wrapf(common.ErrInvalidArgument, "stirling kind must be 1, 2, or 3, not %d", kind)
	}
	switch {
	case n == m:
		return big.NewInt(1), nil
	case n == 0 || m == 0 || m > n:
		return big.NewInt(0), nil
	case m == 1:
		switch kind {
		case 1:
			r := factorial(n - 1)
			if n&1 == 0 {
				r.Neg(r)
			}
			return r, nil
		case 2:
			return big.NewInt(1), nil
		default:
			return factorial(n), nil
		}
	}

	r := new(big.Int)
	t := new(big.Int)
	switch kind {
	case 3:
		// Lah: C(n-1, m-1) * n! / m!
		r.Mul(Binomial(n-1, m-1), factorial(n))
		r.Quo(r, factorial(m))
	case 2:
		for j := uint64(1); j <= m; j++ {
			t.Exp(new(big.Int).SetUint64(j), new(big.Int).SetUint64(n), nil)
			t.Mul(t, Binomial(m, j))
			if (m-j)&1 == 1 {
				r.Sub(r, t)
			} else {
				r.Add(r, t)
			}
		}
		r.Quo(r, factorial(m))
	default:
		for j := uint64(1); j <= n-m; j++ {
			t.Mul(Binomial(n+j-1, n+j-m), Binomial(n+n-m, n-j-m))
			s2, _ := Stirling(n+j-m, j, 2)
			t.Mul(t, s2)
			if j&1 == 1 {
				r.Sub(r, t)
			} else {
				r.Add(r, t)
			}
		}
	}
	return r, nil
}

func factorial(n uint64) *big.Int {
	return new(big.Int).MulRange(1, int64(n))
}
