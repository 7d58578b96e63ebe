// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve

import (
	"math/big"
	"math/bits"

	"github.com/bnb-chain/primeutil/primality"
	"github.com/bnb-chain/primeutil/primes"
)

// wheel23 = 2*3*5*7*11*13*17*19*23. Tracking n mod wheel23 alongside n lets
// the wheel loop reject multiples of 7..23 without touching the big integer.
const wheel23 = 223092870

// Controls how many numbers the next/prev sieve covers. Little time impact.
const npsMerit = 30.0

// npsDepth picks how many primes the next/prev sieve strikes. Big time
// impact.
func npsDepth(log2n int) uint64 {
	if log2n < 100 {
		return 1000
	}
	log2log2n := uint64(bits.Len(uint(log2n)))
	return (uint64(log2n) * (uint64(log2n) >> 5) * log2log2n) >> 1
}

func npsWidth(log2n int) uint64 {
	width := uint64(npsMerit/1.4427*float64(log2n) + 0.5)
	if width&1 == 1 {
		width++
	}
	return width
}

// NextPrime returns the smallest prime above n.
func NextPrime(n *big.Int) (*big.Int, error) {
	if n.Cmp(big.NewInt(29)) < 0 {
		m := uint64(0)
		if n.Sign() > 0 {
			m = n.Uint64()
		}
		switch {
		case m < 2:
			m = 2
		case m < 3:
			m = 3
		case m < 5:
			m = 5
		default:
			m = primes.NextWheel[m]
		}
		return new(big.Int).SetUint64(m), nil
	}
	if n.BitLen() > 120 {
		return nextPrimeWithSieve(n)
	}

	r := new(big.Int).Set(n)
	m23 := new(big.Int).Mod(r, big.NewInt(wheel23)).Uint64()
	m := m23 % 30
	for {
		skip := primes.WheelAdvance[m]
		r.Add(r, new(big.Int).SetUint64(skip))
		m23 += skip
		m = primes.NextWheel[m]
		if m23%7 == 0 || m23%11 == 0 || m23%13 == 0 || m23%17 == 0 ||
			m23%19 == 0 || m23%23 == 0 {
			continue
		}
		res, err := primality.IsProbPrime(r)
		if err != nil {
			return nil, err
		}
		if res.Bool() {
			return r, nil
		}
	}
}

// PrevPrime returns the largest prime below n, or 0 when none exists.
func PrevPrime(n *big.Int) (*big.Int, error) {
	if n.Cmp(big.NewInt(29)) <= 0 {
		m := uint64(0)
		if n.Sign() > 0 {
			m = n.Uint64()
		}
		switch {
		case m < 3:
			m = 0
		case m < 4:
			m = 2
		case m < 6:
			m = 3
		case m < 8:
			m = 5
		default:
			m = primes.PrevWheel[m]
		}
		return new(big.Int).SetUint64(m), nil
	}
	if n.BitLen() > 200 {
		return prevPrimeWithSieve(n)
	}

	r := new(big.Int).Set(n)
	m23 := new(big.Int).Mod(r, big.NewInt(wheel23)).Uint64()
	m := m23 % 30
	m23 += wheel23 // no re-mod needed inside the loop
	for {
		skip := primes.WheelRetreat[m]
		r.Sub(r, new(big.Int).SetUint64(skip))
		m23 -= skip
		m = primes.PrevWheel[m]
		if m23%7 == 0 || m23%11 == 0 || m23%13 == 0 || m23%17 == 0 ||
			m23%19 == 0 || m23%23 == 0 {
			continue
		}
		res, err := primality.IsProbPrime(r)
		if err != nil {
			return nil, err
		}
		if res.Bool() {
			return r, nil
		}
	}
}

func nextPrimeWithSieve(n *big.Int) (*big.Int, error) {
	log2n := n.BitLen()
	width := npsWidth(log2n)
	depth := npsDepth(log2n)

	start := new(big.Int).Set(n)
	if start.Bit(0) == 0 {
		start.Add(start, one)
	} else {
		start.Add(start, two)
	}
	t := new(big.Int)
	for {
		comp, base, err := Partial(start, width, depth)
		if err != nil {
			return nil, err
		}
		for i := uint64(1); i <= width; i += 2 {
			if IsMarked(comp, i) {
				continue
			}
			t.Add(base, new(big.Int).SetUint64(i))
			res, err := primality.BPSW(t)
			if err != nil {
				return nil, err
			}
			if res.Bool() {
				return new(big.Int).Set(t), nil
			}
		}
		// A huge gap, so sieve another range.
		start.Add(start, new(big.Int).SetUint64(width))
	}
}

func prevPrimeWithSieve(n *big.Int) (*big.Int, error) {
	log2n := n.BitLen()
	width := npsWidth(log2n)
	width = 64 * ((width + 63) / 64)
	depth := npsDepth(log2n)

	hi := new(big.Int).Set(n)
	if hi.Bit(0) == 0 {
		hi.Sub(hi, one)
	} else {
		hi.Sub(hi, two)
	}
	t := new(big.Int)
	start := new(big.Int)
	for {
		start.Sub(hi, new(big.Int).SetUint64(width-2))
		comp, base, err := Partial(start, width, depth)
		if err != nil {
			return nil, err
		}
		for j := uint64(1); j < width; j += 2 {
			i := width - j
			if IsMarked(comp, i) {
				continue
			}
			t.Add(base, new(big.Int).SetUint64(i))
			res, err := primality.BPSW(t)
			if err != nil {
				return nil, err
			}
			if res.Bool() {
				return new(big.Int).Set(t), nil
			}
		}
		hi.Sub(hi, new(big.Int).SetUint64(width))
	}
}

var two = big.NewInt(2)
