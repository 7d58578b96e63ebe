// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

// modInt is a *big.Int that performs all of its arithmetic with modular reduction.
type modInt big.Int

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
	two  = big.NewInt(2)
)

func ModInt(mod *big.Int) *modInt {
	return (*modInt)(mod)
}

func (mi *modInt) Add(x, y *big.Int) *big.Int {
	i := new(big.Int)
	i.Add(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Sub(x, y *big.Int) *big.Int {
	i := new(big.Int)
	i.Sub(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Mul(x, y *big.Int) *big.Int {
	i := new(big.Int)
	i.Mul(x, y)
	return i.Mod(i, mi.i())
}

func (mi *modInt) Exp(x, y *big.Int) *big.Int {
	return new(big.Int).Exp(x, y, mi.i())
}

func (mi *modInt) ModInverse(g *big.Int) *big.Int {
	return new(big.Int).ModInverse(g, mi.i())
}

func (mi *modInt) i() *big.Int {
	return (*big.Int)(mi)
}

func IsInInterval(b *big.Int, bound *big.Int) bool {
	return b.Cmp(bound) == -1 && b.Cmp(zero) >= 0
}

// IsPerfectSquare reports whether n is a square of an integer. Negative n
// never is.
func IsPerfectSquare(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	r := new(big.Int).Sqrt(n)
	r.Mul(r, r)
	return r.Cmp(n) == 0
}

// Root returns the integer a-th root of n (truncated) and reports whether
// the root is exact. Requires n >= 0 and a >= 1.
func Root(n *big.Int, a uint64) (*big.Int, bool) {
	if a == 1 {
		return new(big.Int).Set(n), true
	}
	if a == 2 {
		r := new(big.Int).Sqrt(n)
		t := new(big.Int).Mul(r, r)
		return r, t.Cmp(n) == 0
	}
	if n.Sign() == 0 || n.Cmp(one) == 0 {
		return new(big.Int).Set(n), true
	}
	// Newton iteration on r -> ((a-1)*r + n/r^(a-1)) / a, seeded from the
	// bit length so the first guess is an upper bound.
	bits := uint64(n.BitLen())
	r := new(big.Int).Lsh(one, uint((bits+a-1)/a))
	am1 := new(big.Int).SetUint64(a - 1)
	ab := new(big.Int).SetUint64(a)
	t, u := new(big.Int), new(big.Int)
	for {
		t.Exp(r, am1, nil)
		u.Quo(n, t)
		u.Add(u, t.Mul(am1, r))
		u.Quo(u, ab)
		if u.Cmp(r) >= 0 {
			break
		}
		r.Set(u)
	}
	t.Exp(r, new(big.Int).SetUint64(a), nil)
	return r, t.Cmp(n) == 0
}

// PowerFactor returns the largest a >= 2 with n = root^a, along with the
// root. Returns (0, nil) when n is not a perfect power.
func PowerFactor(n *big.Int) (uint64, *big.Int) {
	if n.Cmp(two) <= 0 {
		return 0, nil
	}
	maxA := uint64(n.BitLen())
	for a := maxA; a >= 2; a-- {
		if r, exact := Root(n, a); exact {
			return a, r
		}
	}
	return 0, nil
}
