// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bnb-chain/primeutil/common"
)

// IsFrobeniusPseudoprime runs the quadratic Frobenius test with parameters
// P, Q. Pass P = Q = 0 to have the parameters selected (Q = 2, P the first
// odd value with jacobi(P^2-4Q, n) != 1). Explicit parameters whose
// discriminant has a perfect-square absolute value are rejected.
func IsFrobeniusPseudoprime(n *big.Int, P, Q int64) (bool, error) {
	if cmp := n.Cmp(two); cmp == 0 {
		return true, nil
	} else if cmp < 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	t := new(big.Int)
	var D int64
	k := 0
	if P == 0 && Q == 0 {
		P, Q = 1, 2
		for {
			P += 2
			if P == 3 {
				P = 5 // P=3,Q=2 gives D=1
			}
			if P == 21 && common.IsPerfectSquare(n) {
				return false, nil
			}
			D = P*P - 4*Q
			if t.SetUint64(absInt64(P)); n.Cmp(t) <= 0 {
				break
			}
			if t.SetUint64(absInt64(D)); n.Cmp(t) <= 0 {
				break
			}
			t.SetInt64(D)
			k = big.Jacobi(t, n)
			if k != 1 {
				break
			}
		}
	} else {
		D = P*P - 4*Q
		if common.IsPerfectSquare(new(big.Int).SetUint64(absInt64(D))) {
			return false, errors.Wrapf(common.ErrInvalidArgument, "frobenius P,Q (%d,%d) has square discriminant", P, Q)
		}
		t.SetInt64(D)
		k = big.Jacobi(t, n)
	}

	Pu, Qu, Du := absInt64(P), absInt64(Q), absInt64(D)
	if t.SetUint64(Pu); n.Cmp(t) <= 0 {
		return TrialFactor(n, 2, Du+Pu+Qu) == 0, nil
	}
	if t.SetUint64(Qu); n.Cmp(t) <= 0 {
		return TrialFactor(n, 2, Du+Pu+Qu) == 0, nil
	}
	if t.SetUint64(Du); n.Cmp(t) <= 0 {
		return TrialFactor(n, 2, Du+Pu+Qu) == 0, nil
	}
	if k == 0 {
		return false, nil
	}
	if gcdUI(n, Du*Pu*Qu) > 1 {
		return false, nil
	}

	vComp := new(big.Int)
	if k == 1 {
		vComp.SetInt64(2)
	} else {
		vComp.SetInt64(Q)
		vComp.Mul(vComp, two)
		vComp.Mod(vComp, n)
	}

	d := new(big.Int)
	if k == 1 {
		d.Sub(n, one)
	} else {
		d.Add(n, one)
	}
	U, V, _, err := LucasSeq(n, P, Q, d)
	if err != nil {
		return false, err
	}
	return U.Sign() == 0 && V.Cmp(vComp) == 0, nil
}

// IsFrobeniusCPPseudoprime runs ntests rounds of the Crandall-Pomerance
// Frobenius test with random parameters (steps from Loebenberger 2008).
func IsFrobeniusCPPseudoprime(n *big.Int, ntests int) bool {
	if n.Cmp(big.NewInt(100)) < 0 {
		r, _ := IsProbPrime(n)
		return r.Bool()
	}
	if n.Bit(0) == 0 {
		return false
	}

	rs := common.Randstate()
	t := new(big.Int)
	a, b, d := new(big.Int), new(big.Int), new(big.Int)
	w1, wm, wm1, m := new(big.Int), new(big.Int), new(big.Int), new(big.Int)
	nm1 := new(big.Int).Sub(n, one)
	for tn := 0; tn < ntests; tn++ {
		// Step 1: a, b in 1..n-1 with d = a^2-4b not a square
		for {
			a.Add(rs.BigIntBelow(nm1), one)
			b.Add(rs.BigIntBelow(nm1), one)
			d.Mul(a, a)
			d.Sub(d, t.Lsh(b, 2))
			if d.Sign() < 0 || !common.IsPerfectSquare(d) {
				break
			}
		}
		t.Mul(a, b)
		t.Mul(t, d)
		t.Abs(t)
		t.GCD(nil, nil, t, n)
		if t.Cmp(one) != 0 && t.Cmp(n) != 0 {
			return false
		}
		// Step 2: w1 = a^2 b^-1 - 2 mod n
		if t.ModInverse(b, n) == nil {
			return false
		}
		w1.Mul(a, a)
		w1.Mul(w1, t)
		w1.Sub(w1, two)
		w1.Mod(w1, n)
		// Step 3: m = (n - (d|n)) / 2
		dmod := new(big.Int).Mod(d, n)
		var j int
		if dmod.Sign() == 0 {
			j = 0
		} else {
			j = big.Jacobi(dmod, n)
		}
		switch j {
		case -1:
			m.Add(n, one)
		case 0:
			m.Set(n)
		case 1:
			m.Sub(n, one)
		}
		m.Rsh(m, 1)
		// Step 8 early: B = b^((n-1)/2) mod n, with a quick Euler check
		t.Rsh(new(big.Int).Sub(n, one), 1)
		d.Exp(b, t, n)
		if d.Cmp(one) != 0 && d.Cmp(nm1) != 0 {
			return false
		}
		// Step 4: ladder for W_m, W_{m+1}
		wm.SetUint64(2)
		wm1.Set(w1)
		for bit := m.BitLen(); bit > 0; {
			bit--
			if m.Bit(bit) == 1 {
				t.Mul(wm, wm1)
				wm.Sub(t, w1)
				t.Mul(wm1, wm1)
				wm1.Sub(t, two)
			} else {
				t.Mul(wm, wm1)
				wm1.Sub(t, w1)
				t.Mul(wm, wm)
				wm.Sub(t, two)
			}
			wm.Mod(wm, n)
			wm1.Mod(wm1, n)
		}
		// Steps 5-7: w1 * wm = 2 wm1 mod n
		t.Mul(w1, wm)
		t.Mod(t, n)
		wm1.Mul(wm1, two)
		wm1.Mod(wm1, n)
		if t.Cmp(wm1) != 0 {
			return false
		}
		// Step 9: B * wm = 2 mod n
		wm.Mul(wm, d)
		wm.Mod(wm, n)
		if wm.Cmp(two) != 0 {
			return false
		}
	}
	return true
}

// underwoodSkip lists the a values the Frobenius-Underwood parameter search
// never considers.
var underwoodSkip = map[uint64]bool{
	2: true, 4: true, 7: true, 8: true, 10: true, 14: true, 16: true, 18: true,
}

// IsFrobeniusUnderwoodPseudoprime runs Paul Underwood's minimal-lambda+2
// Frobenius test.
func IsFrobeniusUnderwoodPseudoprime(n *big.Int) (bool, error) {
	if cmp := n.Cmp(two); cmp == 0 {
		return true, nil
	} else if cmp < 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	t1 := new(big.Int)
	var a uint64
	found := false
	for a = 0; a < 1000000; a++ {
		if underwoodSkip[a] {
			continue
		}
		t1.SetInt64(int64(a*a) - 4)
		j := big.Jacobi(t1, n)
		if j == -1 {
			found = true
			break
		}
		if j == 0 || (a == 20 && common.IsPerfectSquare(n)) {
			return false, nil
		}
	}
	if !found {
		return false, errors.Wrap(common.ErrParameterSearchExhausted, "frobenius-underwood found no suitable a")
	}
	if g := gcdUI(n, (a+4)*(2*a+5)); g != 1 {
		// A shared factor proves n composite unless n is that prime itself.
		return n.IsUint64() && n.Uint64() == g && TrialFactor(n, 2, g) == 0, nil
	}

	ap2 := a + 2
	np1 := new(big.Int).Add(n, one)
	bl := np1.BitLen()
	s := big.NewInt(1)
	t := big.NewInt(2)
	temp1, temp2 := new(big.Int), new(big.Int)

	for bit := bl - 2; bit >= 0; bit-- {
		temp2.Add(t, t)
		if a != 0 {
			temp1.Mul(s, new(big.Int).SetUint64(a))
			temp2.Add(temp1, temp2)
		}
		temp1.Mul(temp2, s)
		temp2.Sub(t, s)
		s.Add(s, t)
		t.Mul(s, temp2)
		t.Mod(t, n)
		s.Mod(temp1, n)
		if np1.Bit(bit) == 1 {
			if a == 0 {
				temp1.Add(s, s)
			} else {
				temp1.Mul(s, new(big.Int).SetUint64(ap2))
			}
			temp1.Add(temp1, t)
			temp2.Add(t, t)
			t.Sub(temp2, s)
			s.Set(temp1)
		}
	}
	temp1.SetUint64(2*a + 5)
	temp1.Mod(temp1, n)
	rval := s.Sign() == 0 && t.Cmp(temp1) == 0
	common.Logger.Debugf("frobenius-underwood a=%d: %v", a, rval)
	return rval, nil
}

// IsFrobeniusKhashinPseudoprime runs Sergey Khashin's Frobenius test in
// Z[sqrt(c)] for the smallest odd non-residue c.
func IsFrobeniusKhashinPseudoprime(n *big.Int) bool {
	if cmp := n.Cmp(two); cmp == 0 {
		return true
	} else if cmp < 0 {
		return false
	}
	if n.Bit(0) == 0 {
		return false
	}
	if common.IsPerfectSquare(n) {
		return false
	}

	t := new(big.Int)
	c := uint64(1)
	k := 0
	for {
		c += 2
		t.SetUint64(c)
		k = big.Jacobi(t, n)
		if k != 1 {
			break
		}
	}
	if k == 0 {
		// Every odd c' < c was a residue, so n = c means n is prime.
		return n.Cmp(t) == 0
	}

	bigC := new(big.Int).SetUint64(c)
	ra, rb := big.NewInt(1), big.NewInt(1)
	a, b := big.NewInt(1), big.NewInt(1)
	ta, tb := new(big.Int), new(big.Int)
	nm1 := new(big.Int).Sub(n, one)

	l := nm1.BitLen()
	for bit := 0; bit < l; bit++ {
		if nm1.Bit(bit) == 1 {
			ta.Mul(ra, a)
			tb.Mul(rb, b)
			t.Add(ra, rb)
			rb.Add(a, b)
			rb.Mul(rb, t)
			rb.Sub(rb, ta)
			rb.Sub(rb, tb)
			rb.Mod(rb, n)
			tb.Mul(tb, bigC)
			ra.Add(ta, tb)
			ra.Mod(ra, n)
		}
		if bit < l-1 {
			t.Mul(b, b)
			t.Mul(t, bigC)
			b.Mul(b, a)
			b.Add(b, b)
			b.Mod(b, n)
			a.Mul(a, a)
			a.Add(a, t)
			a.Mod(a, n)
		}
	}
	return ra.Cmp(one) == 0 && rb.Cmp(nm1) == 0
}
