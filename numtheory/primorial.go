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

// Products of machine words stay cheap up to these bounds: a word at or
// below the first takes two more factors, at or below the second one more.
const (
	lastTripleProd = 2642231
	lastDoubleProd = 4294967291
)

// PnPrimorial returns the product of the first n primes, p_n#.
func PnPrimorial(n uint64) *big.Int {
	if n <= 4 {
		tiny := [5]uint64{1, 2, 6, 30, 210}
		return new(big.Int).SetUint64(tiny[n])
	}
	iter := primes.NewIterator()
	defer iter.Destroy()
	p := uint64(2)

	if n < 200 {
		// Simple linear multiply, pairing word-sized factors.
		prim := big.NewInt(1)
		t := new(big.Int)
		for n > 0 {
			n--
			if n > 0 {
				p *= iter.Next()
				n--
			}
			prim.Mul(prim, t.SetUint64(p))
			p = iter.Next()
		}
		return prim
	}

	// Tree multiply over an array whose entries each hold the product of
	// eight machine words.
	A := make([]*big.Int, 0, n/8+1)
	i := 0
	for n > 0 {
		n--
		if p <= lastTripleProd && n > 0 {
			p *= iter.Next()
			n--
		}
		if p <= lastDoubleProd && n > 0 {
			p *= iter.Next()
			n--
		}
		if i%8 == 0 {
			A = append(A, new(big.Int).SetUint64(p))
		} else {
			last := A[len(A)-1]
			last.Mul(last, new(big.Int).SetUint64(p))
		}
		i++
		p = iter.Next()
	}
	return common.Product(A, 0, len(A)-1)
}

// Primorial returns n#, the product of all primes <= n.
func Primorial(n uint64) *big.Int {
	if n <= 4 {
		tiny := [5]uint64{1, 1, 2, 6, 6}
		return new(big.Int).SetUint64(tiny[n])
	}
	ps := primes.SieveToN(n)
	// Multiply native pairs until the products no longer fit a word.
	nprimes := len(ps)
	for nprimes > 1 && ^uint64(0)/ps[0] > ps[nprimes-1] {
		i := 0
		for nprimes > i+1 && ^uint64(0)/ps[i] > ps[nprimes-1] {
			nprimes--
			ps[i] *= ps[nprimes]
			i++
		}
	}
	ps = ps[:nprimes]

	if nprimes <= 8 {
		prim := new(big.Int).SetUint64(ps[0])
		t := new(big.Int)
		for _, v := range ps[1:] {
			prim.Mul(prim, t.SetUint64(v))
		}
		return prim
	}
	// Four-way word products, then a product tree.
	A := make([]*big.Int, 0, nprimes/4+1)
	for i := 0; i < nprimes; {
		leaf := new(big.Int).SetUint64(ps[i])
		i++
		for j := 0; j < 3 && i < nprimes; j++ {
			leaf.Mul(leaf, new(big.Int).SetUint64(ps[i]))
			i++
		}
		A = append(A, leaf)
	}
	return common.Product(A, 0, len(A)-1)
}
