// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"
)

// harmonic computes sum 1/i for a <= i < b by binary splitting, leaving
// the numerator in a and the denominator in b.
func harmonic(a, b, t *big.Int) {
	t.Sub(b, a)
	if t.Cmp(oneConst) == 0 {
		b.Set(a)
		a.SetUint64(1)
		return
	}
	t.Add(a, b)
	t.Rsh(t, 1)
	q := new(big.Int).Set(t)
	r := new(big.Int).Set(t)
	harmonic(a, q, t)
	harmonic(r, b, t)
	a.Mul(a, b)
	t.Mul(q, r)
	a.Add(a, t)
	b.Mul(b, q)
}

// Harmfrac returns the n-th harmonic number H_n as a reduced fraction.
func Harmfrac(n uint64) (num, den *big.Int) {
	if n == 0 {
		return big.NewInt(0), big.NewInt(1)
	}
	num = big.NewInt(1)
	den = new(big.Int).SetUint64(n + 1)
	t := new(big.Int)
	harmonic(num, den, t)
	g := new(big.Int).GCD(nil, nil, num, den)
	num.Quo(num, g)
	den.Quo(den, g)
	return num, den
}

// Harmreal returns H_n as a decimal string with prec fractional digits.
func Harmreal(n uint64, prec uint) string {
	num, den := Harmfrac(n)
	bits := uint(8 + float64(prec)*3.4)
	if b := uint(num.BitLen() + 1); b > bits {
		bits = b
	}
	fn := new(big.Float).SetPrec(bits).SetInt(num)
	fd := new(big.Float).SetPrec(bits).SetInt(den)
	res := new(big.Float).SetPrec(bits).Quo(fn, fd)
	return res.Text('f', int(prec))
}

var oneConst = big.NewInt(1)
