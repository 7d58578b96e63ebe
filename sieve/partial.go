// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primes"
)

// Partial sieves the window [start, start+length) with every prime
// p <= maxPrime. It returns an odds-only bit array comp and the even base
// start-1: bit i of comp (odd i, base+i < base+length) is set iff base+i is
// divisible by one of the sieving primes. Even positions are meaningless.
// start must be odd and positive.
func Partial(start *big.Int, length, maxPrime uint64) (comp []uint32, base *big.Int, err error) {
	if start.Sign() <= 0 || start.Bit(0) == 0 {
		return nil, nil, errors.Wrap(common.ErrInvalidArgument, "partial sieve needs an odd positive start")
	}
	if length == 0 {
		return nil, nil, errors.Wrap(common.ErrInvalidArgument, "partial sieve needs a non-zero length")
	}
	base = new(big.Int).Sub(start, one)
	if length&1 == 1 {
		length++
	}

	// One uint32 word covers 64 numbers (32 odd positions).
	wlen := (length + 63) / 64
	comp = make([]uint32, wlen)
	iter := primes.NewIterator()
	defer iter.Destroy()
	p := iter.Next() // 3

	// Strike the smallest primes into a first window, then tile it by
	// memcpy-doubling; their work is amortized over the whole segment.
	pwlen := wlen
	if pwlen > 3 {
		pwlen = 3
	}
	for p <= maxPrime {
		sievep(comp, base, p, pwlen*64)
		next := iter.Next()
		if pwlen*next >= wlen {
			p = next
			break
		}
		wordTile(comp, pwlen, pwlen*next)
		pwlen *= next
		p = next
	}
	wordTile(comp, pwlen, wlen)

	// Strike the remaining primes, two per iteration: one big-integer
	// remainder mod p1*p2 yields both starting positions.
	doubleLim := uint64(1)<<32 - 1
	if doubleLim > maxPrime {
		doubleLim = maxPrime
	}
	t := new(big.Int)
	pp := new(big.Int)
	p1 := p
	p2 := iter.Next()
	for p2 <= doubleLim {
		p1p2 := p1 * p2
		ddiv := t.Mod(base, pp.SetUint64(p1p2)).Uint64()
		sievepAt(comp, p1-ddiv%p1, p1, length)
		sievepAt(comp, p2-ddiv%p2, p2, length)
		p1 = iter.Next()
		p2 = iter.Next()
	}
	if p1 <= maxPrime {
		sievep(comp, base, p1, length)
	}
	for p = p2; p <= maxPrime; p = iter.Next() {
		sievep(comp, base, p, length)
	}
	return comp, base, nil
}

// IsMarked reports whether position i of a Partial result is known
// composite.
func IsMarked(comp []uint32, i uint64) bool {
	return comp[i>>6]&(1<<((i>>1)&0x1F)) != 0
}

func setMark(comp []uint32, i uint64) {
	comp[i>>6] |= 1 << ((i >> 1) & 0x1F)
}

// wordTile doubles comp[0:from] into comp[from:to].
func wordTile(comp []uint32, from, to uint64) {
	for from < to {
		words := from
		if 2*from > to {
			words = to - from
		}
		copy(comp[from:from+words], comp[:words])
		from += words
	}
}

// sievep strikes the odd multiples of p inside [base, base+length).
func sievep(comp []uint32, base *big.Int, p, length uint64) {
	rem := new(big.Int).Mod(base, new(big.Int).SetUint64(p)).Uint64()
	sievepAt(comp, p-rem, p, length)
}

func sievepAt(comp []uint32, pos, p, length uint64) {
	if pos&1 == 0 {
		pos += p
	}
	for ; pos < length; pos += 2 * p {
		setMark(comp, pos)
	}
}

var one = big.NewInt(1)
