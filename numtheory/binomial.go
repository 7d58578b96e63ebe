// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primes"
)

// Binomial returns C(n, k) by Goetgheluck's method: each prime's exponent
// comes from Kummer's theorem on base-p digit carries, and the prime powers
// are multiplied with a product tree.
func Binomial(n, k uint64) *big.Int {
	if k > n {
		return big.NewInt(0)
	}
	if k == 0 || k == n {
		return big.NewInt(1)
	}
	if k > n/2 {
		k = n - k
	}

	sqrtn := isqrt64(n)
	nk := n - k
	ps := primes.SieveToN(n)

	A := make([]*big.Int, 0, len(ps)/8+1)
	j := 0
	push := func(v uint64) {
		if j%8 == 0 {
			A = append(A, new(big.Int).SetUint64(v))
		} else {
			last := A[len(A)-1]
			last.Mul(last, new(big.Int).SetUint64(v))
		}
		j++
	}

	for _, prime := range ps {
		switch {
		case prime > nk:
			push(prime)
		case prime > n/2:
			// exponent zero
		case prime > sqrtn:
			if n%prime < k%prime {
				push(prime)
			}
		default:
			N, K, p, s := n, k, uint64(1), uint64(0)
			for N > 0 {
				if N%prime < K%prime+s {
					s = 1
					p *= prime
				} else {
					s = 0
				}
				N /= prime
				K /= prime
			}
			if p > 1 {
				push(p)
			}
		}
	}
	if len(A) == 0 {
		return big.NewInt(1)
	}
	return common.Product(A, 0, len(A)-1)
}

func isqrt64(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	r := new(big.Int).Sqrt(new(big.Int).SetUint64(n))
	return r.Uint64()
}
