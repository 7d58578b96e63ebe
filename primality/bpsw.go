// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primes"
)

// BPSW runs the Baillie-PSW test: one strong Miller-Rabin round base 2 and
// one extra-strong Lucas round. The combination has been exhaustively
// verified below 2^64, so inputs of that size get a Prime answer rather
// than ProbablyPrime.
func BPSW(n *big.Int) (Result, error) {
	if n.Cmp(big.NewInt(4)) < 0 {
		if n.Cmp(one) <= 0 {
			return Composite, nil
		}
		return Prime, nil // 2 and 3
	}
	if pass, err := MillerRabinUI(n, 2); err != nil || !pass {
		return Composite, err
	}
	if pass, err := IsLucasPseudoprime(n, LucasExtraStrong); err != nil || !pass {
		return Composite, err
	}
	if n.BitLen() <= 64 {
		return Prime, nil
	}
	return ProbablyPrime, nil
}

// sorensonWebsterBounds: below these, the first maxp small-prime MR bases
// are a deterministic test (Sorenson and Webster 2015). Only consulted for
// inputs that already passed BPSW, so anything below 2^64 is long decided.
var (
	swBound12 = mustBig("318665857834031151167461")
	swBound13 = mustBig("3317044064679887385961981")
)

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("invalid decimal literal " + s)
	}
	return v
}

// deterministicMillerRabin assumes n is a BPSW probable prime and tries to
// upgrade the answer with the Sorenson-Webster base sets. Returns
// ProbablyPrime when n is out of range.
func deterministicMillerRabin(n *big.Int) (Result, error) {
	if n.BitLen() > 82 {
		return ProbablyPrime, nil
	}
	maxp := 0
	if n.Cmp(swBound12) < 0 {
		maxp = 12
	} else if n.Cmp(swBound13) < 0 {
		maxp = 13
	}
	if maxp == 0 {
		return ProbablyPrime, nil
	}
	t := new(big.Int)
	for i := 1; i < maxp; i++ {
		t.SetUint64(primes.Small[i])
		pass, err := MillerRabin(n, t)
		if err != nil {
			return ProbablyPrime, err
		}
		if !pass {
			return Composite, nil
		}
	}
	return Prime, nil
}

// IsBPSWPrime runs BPSW and, when the input is small enough, upgrades a
// ProbablyPrime answer with the deterministic Miller-Rabin base sets. A
// composite verdict there would be the first known BPSW counterexample.
func IsBPSWPrime(n *big.Int) (Result, error) {
	r, err := BPSW(n)
	if err != nil || r != ProbablyPrime {
		return r, err
	}
	r, err = deterministicMillerRabin(n)
	if r == Composite {
		common.Logger.Errorf("**** BPSW counter-example found?  **** N = %s ****", n)
	}
	return r, err
}
