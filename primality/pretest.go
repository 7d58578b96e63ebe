// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"
	"time"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primes"
)

const (
	bgcdPrimes    = 168
	bgcdLastPrime = 997
	bgcdNextPrime = 1009
	bgcd2Primes   = 1229
	bgcd3Primes   = 4203
	bgcd3Next     = 40009
)

// Packed products of small primes that fit one gcd_ui each.
const (
	packedPrimes3to53   = 4127218095 * 3948078067
	packedPrimes59to101 = 4269855901 * 1673450759
)

var (
	bgcdCached  *big.Int // product of primes <= 997
	bgcd2Cached *big.Int // product of primes in (997, 10007), i.e. up to 9973
	bgcd3Cached *big.Int // product of primes in (997, 40009), i.e. up to 39989
)

// Init seeds the shared PRNG from the wall clock and constructs the BGCD
// primorial. Calling it is optional: every consumer of the cached state
// also materializes it on first demand.
func Init() {
	common.SeedRandstate(time.Now().UnixNano())
	bgcd()
}

// Destroy releases the cached primorials and the PRNG state.
func Destroy() {
	bgcdCached, bgcd2Cached, bgcd3Cached = nil, nil, nil
	common.ClearRandstate()
}

func bgcd() *big.Int {
	if bgcdCached == nil {
		bgcdCached = pnPrimorial(bgcdPrimes)
	}
	return bgcdCached
}

func bgcd2() *big.Int {
	if bgcd2Cached == nil {
		bgcd2Cached = new(big.Int).Div(pnPrimorial(bgcd2Primes), bgcd())
	}
	return bgcd2Cached
}

func bgcd3() *big.Int {
	if bgcd3Cached == nil {
		bgcd3Cached = new(big.Int).Div(pnPrimorial(bgcd3Primes), bgcd())
	}
	return bgcd3Cached
}

// pnPrimorial multiplies the first n primes, packing eight machine words
// per product-tree leaf.
func pnPrimorial(n int) *big.Int {
	iter := primes.NewIterator()
	defer iter.Destroy()
	A := make([]*big.Int, 0, n/8+1)
	p := uint64(2)
	i := 0
	for n > 0 {
		n--
		// Pre-combine factors while they fit a machine word.
		for n > 0 && p <= 1<<31 {
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
	if len(A) == 0 {
		return big.NewInt(1)
	}
	return common.Product(A, 0, len(A)-1)
}

// HasMidFactor reports whether n shares a factor with the cached product
// of the primes in (997, 10007). The cluster sieve uses it to discard
// candidates before running full probable-prime tests.
func HasMidFactor(n *big.Int) bool {
	t := new(big.Int).GCD(nil, nil, n, bgcd2())
	return t.Cmp(one) != 0
}

// TrialFactor tests n for a prime divisor p with from <= p <= to, stopping
// early once p*p exceeds n. Returns the divisor or 0.
func TrialFactor(n *big.Int, from, to uint64) uint64 {
	iter := primes.NewIterator()
	defer iter.Destroy()
	t := new(big.Int)
	pb := new(big.Int)
	sq := new(big.Int)
	for p := iter.Peek(); p <= to; p = iter.Next() {
		if p < from {
			continue
		}
		pb.SetUint64(p)
		if sq.Mul(pb, pb); sq.Cmp(n) > 0 {
			return 0
		}
		if t.Mod(n, pb).Sign() == 0 {
			return p
		}
	}
	return 0
}

// Pretest rejects composites cheaply before any modular exponentiation:
// trial division for tiny n, packed-word gcds, gcds against the cached
// primorials, then deep trial division for very large n. Returns Composite,
// Prime, or ProbablyPrime when nothing was decided.
func Pretest(n *big.Int) Result {
	if n.Cmp(big.NewInt(bgcdNextPrime)) < 0 {
		if n.Cmp(two) < 0 {
			return Composite
		}
		if TrialFactor(n, 2, bgcdLastPrime) != 0 {
			return Composite
		}
		return Prime
	}
	if n.Bit(0) == 0 {
		return Composite
	}
	if gcdUI(n, packedPrimes3to53) != 1 {
		return Composite
	}
	if gcdUI(n, packedPrimes59to101) != 1 {
		return Composite
	}

	log2n := n.BitLen()
	t := new(big.Int)

	// One gcd covers all primes < 1009.
	t.GCD(nil, nil, n, bgcd())
	if t.Cmp(one) != 0 {
		return Composite
	}
	if n.Cmp(big.NewInt(bgcdNextPrime*bgcdNextPrime)) < 0 {
		return Prime
	}

	if log2n > 700 {
		t.GCD(nil, nil, n, bgcd3())
		if t.Cmp(one) != 0 {
			return Composite
		}
	} else if log2n > 300 {
		t.GCD(nil, nil, n, bgcd2())
		if t.Cmp(one) != 0 {
			return Composite
		}
	}

	// Deeper trial division pays off once one modular exponentiation costs
	// more than millions of machine divisions (Menezes 4.45).
	if log2n > 16000 {
		b := uint64(float64(log2n) * float64(log2n) * 0.005)
		if TrialFactor(n, bgcd3Next, b) != 0 {
			return Composite
		}
	} else if log2n > 4000 {
		if TrialFactor(n, bgcd3Next, 80*uint64(log2n)) != 0 {
			return Composite
		}
	} else if log2n > 1600 {
		if TrialFactor(n, bgcd3Next, 30*uint64(log2n)) != 0 {
			return Composite
		}
	}
	return ProbablyPrime
}
