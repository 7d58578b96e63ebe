// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/bnb-chain/primeutil/common"
)

// MillerRabin runs one strong probable-prime test of n to base a.
// Bases with 2 <= a mod n <= n-2 are meaningful; anything else passes
// trivially. Bases a <= 1 are rejected.
func MillerRabin(n, a *big.Int) (bool, error) {
	if cmp := n.Cmp(two); cmp == 0 {
		return true, nil
	} else if cmp < 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}
	if a.Cmp(one) <= 0 {
		return false, errors.Wrapf(common.ErrInvalidArgument, "miller-rabin base %s", a)
	}
	nm1 := new(big.Int).Sub(n, one)
	x := new(big.Int).Set(a)
	if x.Cmp(n) >= 0 {
		x.Mod(x, n)
	}
	if x.Cmp(one) <= 0 || x.Cmp(nm1) >= 0 {
		return true, nil
	}

	d := new(big.Int).Set(nm1)
	s := trailingZeros(d)
	d.Rsh(d, s)

	x.Exp(x, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
		return true, nil
	}
	for r := uint(1); r < s; r++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(one) == 0 {
			break
		}
		if x.Cmp(nm1) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// MillerRabinUI is MillerRabin with a machine-word base.
func MillerRabinUI(n *big.Int, base uint64) (bool, error) {
	return MillerRabin(n, new(big.Int).SetUint64(base))
}

// MillerRabinRandom runs numBases strong tests with bases drawn uniformly
// from [2, n-2] using the shared randstate.
func MillerRabinRandom(n *big.Int, numBases int) bool {
	if numBases <= 0 {
		return true
	}
	if n.Cmp(big.NewInt(100)) < 0 {
		r, _ := IsProbPrime(n)
		return r.Bool()
	}
	rs := common.Randstate()
	t := new(big.Int).Sub(n, big.NewInt(3))
	for i := 0; i < numBases; i++ {
		base := rs.BigIntBelow(t) // 0 .. n-4
		base.Add(base, two)       // 2 .. n-2
		pass, err := MillerRabin(n, base)
		if err != nil || !pass {
			return false
		}
	}
	return true
}

// IsMillerPrime runs the deterministic Miller test, checking every base in
// [2, maxa]. Under GRH maxa = 2 ln^2 n (Bach 1990); unconditionally the
// Bober-Goldmakher 2015 bound is used. Only feasible for small n.
func IsMillerPrime(n *big.Int, assumeGRH bool) (bool, error) {
	if cmp := n.Cmp(two); cmp == 0 {
		return true, nil
	} else if cmp < 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	var maxa uint64
	if n.Cmp(big.NewInt(1373653)) < 0 {
		maxa = 3
	} else {
		logn := float64(n.BitLen()) * math.Ln2
		var dmaxa float64
		if assumeGRH {
			dmaxa = 2 * logn * logn
		} else {
			dmaxa = math.Exp(logn / 6.5948850828)
		}
		if dmaxa >= float64(^uint64(0)) {
			return false, errors.Wrap(common.ErrInvalidArgument, "n is too large for deterministic miller-rabin")
		}
		maxa = uint64(math.Ceil(dmaxa))
	}
	if n.IsUint64() && n.Uint64() <= maxa {
		maxa = n.Uint64() - 1
	}
	common.Logger.Debugf("deterministic miller-rabin testing bases from 2 to %d", maxa)

	a := new(big.Int)
	for base := uint64(2); base <= maxa; base++ {
		a.SetUint64(base)
		pass, err := MillerRabin(n, a)
		if err != nil {
			return false, err
		}
		if !pass {
			return false, nil
		}
	}
	return true, nil
}

func trailingZeros(z *big.Int) uint {
	if z.Sign() == 0 {
		return 0
	}
	for i := 0; ; i++ {
		if z.Bit(i) != 0 {
			return uint(i)
		}
	}
}
