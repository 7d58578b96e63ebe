// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/bnb-chain/primeutil/common"
)

// LucasLehmer deterministically decides whether the Mersenne number 2^p-1
// is prime.
func LucasLehmer(p uint64) bool {
	if p == 2 {
		return true
	}
	if p&1 == 0 {
		return false
	}
	pz := new(big.Int).SetUint64(p)
	if r, _ := IsProbPrime(pz); !r.Bool() { // p must be prime
		return false
	}
	if p < 23 {
		return p != 11
	}
	pbits := pz.BitLen()

	mp := new(big.Int).Lsh(one, uint(p))
	mp.Sub(mp, one)

	// If p = 3 mod 4 and p, 2p+1 both prime, then 2p+1 divides 2^p-1.
	if p%4 == 3 {
		t := new(big.Int).SetUint64(2*p + 1)
		if r, _ := IsProbPrime(t); r.Bool() {
			if new(big.Int).Mod(mp, t).Sign() == 0 {
				return false
			}
		}
	}

	// Trial division over candidate factors q = 2kp+1, which must be
	// +-1 mod 8 and prime.
	var tlim uint64
	switch {
	case p < 1500:
		tlim = p / 2
	case p < 5000:
		tlim = p
	default:
		tlim = 2 * p
	}
	if max := ^uint64(0) / (2 * p); tlim > max {
		tlim = max
	}
	qb := new(big.Int)
	for k := uint64(1); k < tlim; k++ {
		q := 2*p*k + 1
		if (q%8 == 1 || q%8 == 7) &&
			q%3 != 0 && q%5 != 0 && q%7 != 0 && q%11 != 0 && q%13 != 0 {
			if q < 1<<32 {
				// 2^p mod q fits machine arithmetic
				b := uint64(1)
				for j := pbits; j > 0; {
					j--
					b = (b * b) % q
					if p&(uint64(1)<<uint(j)) != 0 {
						b *= 2
						if b >= q {
							b -= q
						}
					}
				}
				if b == 1 {
					return false
				}
			} else {
				qb.SetUint64(q)
				if new(big.Int).Mod(mp, qb).Sign() == 0 {
					return false
				}
			}
		}
	}

	V := big.NewInt(4)
	t := new(big.Int)
	for k := uint64(3); k <= p; k++ {
		V.Mul(V, V)
		V.Sub(V, two)
		// Reduce mod 2^p-1 by folding: (V >> p) + (V & mp)
		if V.Sign() < 0 {
			V.Add(V, mp)
		}
		t.And(V, mp)
		V.Rsh(V, uint(p))
		V.Add(V, t)
		for V.Cmp(mp) >= 0 {
			V.Sub(V, mp)
		}
	}
	return V.Sign() == 0
}

// LLR applies the Lucas-Lehmer-Riesel test to N = k*2^n - 1 (k odd,
// k <= 2^n). N <= 100 and N divisible by 2 or 3 are always decided,
// whatever their form. Otherwise decided is false when N is not of that
// form or no suitable seed was found.
func LLR(N *big.Int) (res Result, decided bool) {
	if N.Cmp(big.NewInt(100)) <= 0 {
		r, _ := IsProbPrime(N)
		if r.Bool() {
			return Prime, true
		}
		return Composite, true
	}
	if N.Bit(0) == 0 || new(big.Int).Mod(N, big.NewInt(3)).Sign() == 0 {
		return Composite, true
	}
	v := new(big.Int).Add(N, one)
	n := trailingZeros(v)
	k := new(big.Int).Rsh(v, n)
	// N = k * 2^n - 1
	if k.Cmp(one) == 0 {
		if LucasLehmer(uint64(n)) {
			return Prime, true
		}
		return Composite, true
	}
	if k.BitLen() > int(n) {
		return ProbablyPrime, false
	}

	V := new(big.Int)
	t := new(big.Int)
	if new(big.Int).Mod(k, big.NewInt(3)).Sign() != 0 {
		// 3 does not divide k: P=4, Q=1 works
		_, V1, _, err := LucasSeq(N, 4, 1, k)
		if err != nil {
			return ProbablyPrime, false
		}
		V = V1
	} else if (n%4 == 0 || n%4 == 3) && k.Cmp(big.NewInt(3)) == 0 {
		V.SetUint64(5778)
	} else {
		// Rodseth's seed selection
		P := int64(0)
		for p := int64(5); p < 1000; p++ {
			t.SetInt64(p - 2)
			if big.Jacobi(t, N) == 1 {
				t.SetInt64(p + 2)
				if big.Jacobi(t, N) == -1 {
					P = p
					break
				}
			}
		}
		if P == 0 {
			return ProbablyPrime, false
		}
		_, V1, _, err := LucasSeq(N, P, 1, k)
		if err != nil {
			return ProbablyPrime, false
		}
		V = V1
	}

	for i := uint(3); i <= n; i++ {
		V.Mul(V, V)
		V.Sub(V, two)
		V.Mod(V, N)
	}
	if V.Sign() == 0 {
		common.Logger.Debugf("N shown prime with LLR")
		return Prime, true
	}
	common.Logger.Debugf("N shown composite with LLR")
	return Composite, true
}

// Proth applies the Proth test to N = k*2^n + 1 (k odd, k <= 2^n).
// N <= 100 and N divisible by 2 or 3 are always decided, whatever their
// form. Otherwise decided is false when N is not of that form or no
// quadratic non-residue turned up among the first 25 small primes.
func Proth(N *big.Int) (res Result, decided bool) {
	if N.Cmp(big.NewInt(100)) <= 0 {
		r, _ := IsProbPrime(N)
		if r.Bool() {
			return Prime, true
		}
		return Composite, true
	}
	if N.Bit(0) == 0 || new(big.Int).Mod(N, big.NewInt(3)).Sign() == 0 {
		return Composite, true
	}
	v := new(big.Int).Sub(N, one)
	n := trailingZeros(v)
	k := new(big.Int).Rsh(v, n)
	// N = k * 2^n + 1
	if k.BitLen() > int(n) {
		return ProbablyPrime, false
	}
	a := new(big.Int)
	found := false
	for i := 0; i < 25; i++ {
		a.SetUint64(smallWitnessPrimes[i])
		if big.Jacobi(a, N) == -1 {
			found = true
			break
		}
	}
	if !found {
		return ProbablyPrime, false
	}
	e := new(big.Int).Rsh(v, 1) // (N-1)/2
	a.Exp(a, e, N)
	if a.Cmp(v) == 0 {
		common.Logger.Debugf("N shown prime with Proth")
		return Prime, true
	}
	common.Logger.Debugf("N shown composite with Proth")
	return Composite, true
}

// IsProthForm reports whether N = k*2^n + 1 with k odd and k <= 2^n.
// It reports false for N <= 100 and for N divisible by 2 or 3, whatever
// their form.
func IsProthForm(N *big.Int) bool {
	if N.Cmp(big.NewInt(100)) <= 0 {
		return false
	}
	if N.Bit(0) == 0 || new(big.Int).Mod(N, big.NewInt(3)).Sign() == 0 {
		return false
	}
	v := new(big.Int).Sub(N, one)
	n := trailingZeros(v)
	k := new(big.Int).Rsh(v, n)
	return k.BitLen() <= int(n)
}

// smallWitnessPrimes are the candidate bases of the Proth test.
var smallWitnessPrimes = [25]uint64{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97,
}
