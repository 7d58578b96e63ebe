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

// LucasStrength selects which Baillie-Wagstaff acceptance rule
// IsLucasPseudoprime applies.
type LucasStrength int

const (
	LucasStandard    LucasStrength = 0
	LucasStrong      LucasStrength = 1
	LucasExtraStrong LucasStrength = 2
)

// LucasSeq returns U_k mod n, V_k mod n and Q^k mod n of the Lucas
// sequences defined by P and Q. Requires n > 1, |P| < n, |Q| < n and a
// non-zero discriminant D = P^2-4Q.
func LucasSeq(n *big.Int, P, Q int64, k *big.Int) (U, V, Qk *big.Int, err error) {
	D := P*P - 4*Q
	switch {
	case n.Cmp(two) < 0:
		return nil, nil, nil, errors.Wrap(common.ErrInvalidArgument, "lucas sequence modulus must be > 1")
	case k.Sign() < 0:
		return nil, nil, nil, errors.Wrap(common.ErrInvalidArgument, "lucas sequence k is negative")
	case new(big.Int).SetUint64(absInt64(P)).Cmp(n) >= 0,
		new(big.Int).SetUint64(absInt64(Q)).Cmp(n) >= 0:
		return nil, nil, nil, errors.Wrap(common.ErrInvalidArgument, "lucas sequence P or Q out of range")
	case D == 0:
		return nil, nil, nil, errors.Wrap(common.ErrInvalidArgument, "lucas sequence discriminant is zero")
	}

	if k.Sign() == 0 {
		return big.NewInt(0), big.NewInt(2), big.NewInt(1), nil
	}
	if n.Bit(0) == 0 {
		U, V, Qk = altLucasSeq(n, P, Q, k)
		return U, V, Qk, nil
	}

	b := k.BitLen()
	bigP := big.NewInt(P)
	bigD := big.NewInt(D)
	U = big.NewInt(1)
	V = big.NewInt(P)
	Qk = big.NewInt(Q)
	t := new(big.Int)

	if Q == 1 {
		t.SetInt64(P*P - 4)
		inv := new(big.Int)
		if P > 2 && inv.ModInverse(t, n) != nil {
			// Compute V_k and V_{k+1} only, then recover U_k.
			V.SetInt64(P)
			W := big.NewInt(P*P - 2) // V = V_m, W = V_{m+1}
			for b > 1 {
				b--
				if k.Bit(b-1) == 1 {
					V.Mul(V, W)
					V.Sub(V, bigP)
					V.Mod(V, n)
					W.Mul(W, W)
					W.Sub(W, two)
					W.Mod(W, n)
				} else {
					W.Mul(V, W)
					W.Sub(W, bigP)
					W.Mod(W, n)
					V.Mul(V, V)
					V.Sub(V, two)
					V.Mod(V, n)
				}
			}
			U.Mul(W, two)
			U.Sub(U, t.Mul(V, bigP))
			U.Mul(U, inv)
		} else {
			// U and V together, specific to Q = 1.
			for b > 1 {
				U.Mul(U, V)
				U.Mod(U, n) // U_{2m} = U_m * V_m
				V.Mul(V, V)
				V.Sub(V, two)
				V.Mod(V, n) // V_{2m} = V_m^2 - 2
				b--
				if k.Bit(b-1) == 1 {
					t.Mul(U, bigD)
					U.Mul(U, bigP)
					U.Add(U, V)
					if U.Bit(0) == 1 {
						U.Add(U, n)
					}
					U.Rsh(U, 1)
					V.Mul(V, bigP)
					V.Add(V, t)
					if V.Bit(0) == 1 {
						V.Add(V, n)
					}
					V.Rsh(V, 1)
				}
			}
		}
	} else {
		bigQ := big.NewInt(Q)
		for b > 1 {
			U.Mul(U, V)
			U.Mod(U, n) // U_{2m} = U_m * V_m
			V.Mul(V, V)
			V.Sub(V, t.Mul(Qk, two))
			V.Mod(V, n) // V_{2m} = V_m^2 - 2 Q^m
			Qk.Mul(Qk, Qk)
			b--
			if k.Bit(b-1) == 1 {
				t.Mul(U, bigD)
				U.Mul(U, bigP)
				U.Add(U, V)
				if U.Bit(0) == 1 {
					U.Add(U, n)
				}
				U.Rsh(U, 1)
				V.Mul(V, bigP)
				V.Add(V, t)
				if V.Bit(0) == 1 {
					V.Add(V, n)
				}
				V.Rsh(V, 1)
				Qk.Mul(Qk, bigQ)
			}
			Qk.Mod(Qk, n)
		}
	}
	U.Mod(U, n)
	V.Mod(V, n)
	return U, V, Qk, nil
}

// altLucasSeq computes the sequences without dividing by 2, which an even
// modulus forbids.
func altLucasSeq(n *big.Int, P, Q int64, k *big.Int) (Uh, Vl, Ql *big.Int) {
	s := 0
	for k.Bit(s) == 0 {
		s++
	}
	b := k.BitLen()

	bigP := big.NewInt(P)
	bigQ := big.NewInt(Q)
	Uh = big.NewInt(1)
	Vl = big.NewInt(2)
	Vh := big.NewInt(P)
	Ql = big.NewInt(1)
	Qh := big.NewInt(1)
	t := new(big.Int)

	for j := b; j > s; j-- {
		Ql.Mul(Ql, Qh)
		if k.Bit(j) == 1 {
			Qh.Mul(Ql, bigQ)
			Uh.Mul(Uh, Vh)
			t.Mul(Ql, bigP)
			Vl.Mul(Vl, Vh)
			Vl.Sub(Vl, t)
			Vh.Mul(Vh, Vh)
			Vh.Sub(Vh, Qh)
			Vh.Sub(Vh, Qh)
		} else {
			Qh.Set(Ql)
			Uh.Mul(Uh, Vl)
			Uh.Sub(Uh, Ql)
			t.Mul(Ql, bigP)
			Vh.Mul(Vh, Vl)
			Vh.Sub(Vh, t)
			Vl.Mul(Vl, Vl)
			Vl.Sub(Vl, Ql)
			Vl.Sub(Vl, Ql)
		}
		Qh.Mod(Qh, n)
		Uh.Mod(Uh, n)
		Vh.Mod(Vh, n)
		Vl.Mod(Vl, n)
	}
	Ql.Mul(Ql, Qh)
	Qh.Mul(Ql, bigQ)
	Uh.Mul(Uh, Vl)
	Uh.Sub(Uh, Ql)
	t.Mul(Ql, bigP)
	Vl.Mul(Vl, Vh)
	Vl.Sub(Vl, t)
	Ql.Mul(Ql, Qh)
	Ql.Mod(Ql, n)
	Uh.Mod(Uh, n)
	Vl.Mod(Vl, n)
	for j := 0; j < s; j++ {
		Uh.Mul(Uh, Vl)
		Vl.Mul(Vl, Vl)
		Vl.Sub(Vl, Ql)
		Vl.Sub(Vl, Ql)
		Ql.Mul(Ql, Ql)
		Ql.Mod(Ql, n)
		Uh.Mod(Uh, n)
		Vl.Mod(Vl, n)
	}
	return Uh, Vl, Ql
}

// LucasUV returns the exact (non-modular) U_k and V_k for P, Q.
func LucasUV(P, Q int64, k *big.Int) (Uh, Vl *big.Int) {
	if k.Sign() <= 0 {
		return big.NewInt(0), big.NewInt(2)
	}
	s := 0
	for k.Bit(s) == 0 {
		s++
	}
	b := k.BitLen()

	bigP := big.NewInt(P)
	bigQ := big.NewInt(Q)
	Uh = big.NewInt(1)
	Vl = big.NewInt(2)
	Vh := big.NewInt(P)
	Ql := big.NewInt(1)
	Qh := big.NewInt(1)
	t := new(big.Int)

	for j := b; j > s; j-- {
		Ql.Mul(Ql, Qh)
		if k.Bit(j) == 1 {
			Qh.Mul(Ql, bigQ)
			Uh.Mul(Uh, Vh)
			t.Mul(Ql, bigP)
			Vl.Mul(Vl, Vh)
			Vl.Sub(Vl, t)
			Vh.Mul(Vh, Vh)
			Vh.Sub(Vh, Qh)
			Vh.Sub(Vh, Qh)
		} else {
			Qh.Set(Ql)
			Uh.Mul(Uh, Vl)
			Uh.Sub(Uh, Ql)
			t.Mul(Ql, bigP)
			Vh.Mul(Vh, Vl)
			Vh.Sub(Vh, t)
			Vl.Mul(Vl, Vl)
			Vl.Sub(Vl, Ql)
			Vl.Sub(Vl, Ql)
		}
	}
	Ql.Mul(Ql, Qh)
	Qh.Mul(Ql, bigQ)
	Uh.Mul(Uh, Vl)
	Uh.Sub(Uh, Ql)
	t.Mul(Ql, bigP)
	Vl.Mul(Vl, Vh)
	Vl.Sub(Vl, t)
	Ql.Mul(Ql, Qh)
	for j := 0; j < s; j++ {
		Uh.Mul(Uh, Vl)
		Vl.Mul(Vl, Vl)
		Vl.Sub(Vl, Ql)
		Vl.Sub(Vl, Ql)
		Ql.Mul(Ql, Ql)
	}
	return Uh, Vl
}

// selfridgeParams searches D = 5, -7, 9, -11, ... for jacobi(D, n) = -1,
// then P = 1, Q = (1-D)/4 (Baillie-Wagstaff method A). ok = false means the
// search itself showed n composite.
func selfridgeParams(n *big.Int) (P, Q int64, ok bool, err error) {
	d := int64(5)
	t := new(big.Int)
	for {
		du := absInt64(d)
		g := gcdUI(n, du)
		if g > 1 && n.Cmp(new(big.Int).SetUint64(g)) != 0 {
			return 0, 0, false, nil
		}
		t.SetInt64(d)
		if big.Jacobi(t, n) == -1 {
			break
		}
		if du == 21 && common.IsPerfectSquare(n) {
			return 0, 0, false, nil
		}
		du += 2
		if d > 0 {
			d = -int64(du)
		} else {
			d = int64(du)
		}
		if du > 1000000 {
			return 0, 0, false, errors.Wrap(common.ErrParameterSearchExhausted, "selfridge D exceeded 1e6")
		}
	}
	return 1, (1 - d) / 4, true, nil
}

// extraStrongParams searches P = 3, 3+inc, ... with Q = 1 until
// jacobi(P^2-4, n) = -1 (Baillie's parameters for inc = 1).
func extraStrongParams(n *big.Int, inc uint64) (P int64, ok bool, err error) {
	if inc < 1 || inc > 256 {
		return 0, false, errors.Wrapf(common.ErrInvalidArgument, "lucas parameter increment %d", inc)
	}
	tP := uint64(3)
	t := new(big.Int)
	for {
		D := tP*tP - 4
		g := gcdUI(n, D)
		if g > 1 && n.Cmp(new(big.Int).SetUint64(g)) != 0 {
			return 0, false, nil
		}
		t.SetUint64(D)
		if big.Jacobi(t, n) == -1 {
			break
		}
		if tP == 3+20*inc && common.IsPerfectSquare(n) {
			return 0, false, nil
		}
		tP += inc
		if tP > 65535 {
			return 0, false, errors.Wrap(common.ErrParameterSearchExhausted, "extra-strong P exceeded 65535")
		}
	}
	return int64(tP), true, nil
}

// IsLucasPseudoprime runs the standard, strong or extra-strong Lucas
// probable-prime test. The standard and strong variants use the Selfridge
// parameters, the extra-strong variant Baillie's parameters (OEIS A217719).
func IsLucasPseudoprime(n *big.Int, strength LucasStrength) (bool, error) {
	if cmp := n.Cmp(two); cmp == 0 {
		return true, nil
	} else if cmp < 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	var P, Q int64
	var ok bool
	var err error
	if strength < LucasExtraStrong {
		P, Q, ok, err = selfridgeParams(n)
	} else {
		P, ok, err = extraStrongParams(n, 1)
		Q = 1
	}
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	common.Logger.Debugf("lucas test D: %d  P: %d  Q: %d", P*P-4*Q, P, Q)

	d := new(big.Int).Add(n, one)
	var s uint
	if strength > LucasStandard {
		s = trailingZeros(d)
		d.Rsh(d, s)
	}

	U, V, Qk, err := LucasSeq(n, P, Q, d)
	if err != nil {
		return false, err
	}

	t := new(big.Int)
	switch strength {
	case LucasStandard:
		return U.Sign() == 0, nil
	case LucasStrong:
		if U.Sign() == 0 {
			return true, nil
		}
		for s > 0 {
			s--
			if V.Sign() == 0 {
				return true, nil
			}
			if s > 0 {
				V.Mul(V, V)
				V.Sub(V, t.Mul(Qk, two))
				V.Mod(V, n)
				Qk.Mul(Qk, Qk)
				Qk.Mod(Qk, n)
			}
		}
		return false, nil
	default:
		t.Sub(n, two)
		if U.Sign() == 0 && (V.Cmp(two) == 0 || V.Cmp(t) == 0) {
			return true, nil
		}
		// The extra-strong test checks r < s-1 instead of r < s.
		s--
		for s > 0 {
			s--
			if V.Sign() == 0 {
				return true, nil
			}
			if s > 0 {
				V.Mul(V, V)
				V.Sub(V, two)
				V.Mod(V, n)
			}
		}
		return false, nil
	}
}

// IsAlmostExtraStrongLucasPseudoprime runs the extra-strong test without
// computing U_d. Faster, somewhat weaker. increment 1 matches the Baillie
// parameters, 2 Pari's.
func IsAlmostExtraStrongLucasPseudoprime(n *big.Int, increment uint64) (bool, error) {
	if cmp := n.Cmp(two); cmp == 0 {
		return true, nil
	} else if cmp < 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	P, ok, err := extraStrongParams(n, increment)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	d := new(big.Int).Add(n, one)
	s := trailingZeros(d)
	d.Rsh(d, s)

	// Compute V_d via the paired ladder (V_m, V_{m+1}).
	bigP := big.NewInt(P)
	V := big.NewInt(P)
	W := big.NewInt(P*P - 2)
	for b := d.BitLen(); b > 1; {
		b--
		if d.Bit(b-1) == 1 {
			V.Mul(V, W)
			V.Sub(V, bigP)
			W.Mul(W, W)
			W.Sub(W, two)
		} else {
			W.Mul(V, W)
			W.Sub(W, bigP)
			V.Mul(V, V)
			V.Sub(V, two)
		}
		V.Mod(V, n)
		W.Mod(W, n)
	}

	t := new(big.Int).Sub(n, two)
	if V.Cmp(two) == 0 || V.Cmp(t) == 0 {
		return true, nil
	}
	s--
	for s > 0 {
		s--
		if V.Sign() == 0 {
			return true, nil
		}
		if s > 0 {
			V.Mul(V, V)
			V.Sub(V, two)
			V.Mod(V, n)
		}
	}
	return false, nil
}
