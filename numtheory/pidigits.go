// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"
)

// PiDigits returns pi to n digits ("3." plus n-1 fractional digits),
// computed with the Brent-Salamin arithmetic-geometric mean at a working
// precision of about 3.322 bits per requested digit.
func PiDigits(n uint64) string {
	if n == 0 {
		return ""
	}
	if n == 1 {
		return "3"
	}
	prec := uint(10 + float64(n)*3.322)

	an := newF(prec).SetInt64(1)
	bn := newF(prec).SetFloat64(0.5)
	tn := newF(prec).SetFloat64(0.25)
	bn.Sqrt(bn)

	t := newF(prec)
	prevAn := newF(prec)
	for k := uint(0); (n >> k) > 0; k++ {
		prevAn.Set(an)
		t.Add(an, bn)
		an.Quo(t, twoF)
		t.Mul(bn, prevAn)
		bn.Sqrt(t)
		prevAn.Sub(prevAn, an)
		t.Mul(prevAn, prevAn)
		t.SetMantExp(t, int(k)) // t *= 2^k
		tn.Sub(tn, t)
	}
	t.Add(an, bn)
	an.Mul(t, t)
	t.SetMantExp(tn, 2) // t = 4*tn
	bn.Quo(an, t)
	return bn.Text('f', int(n-1))
}

func newF(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec)
}

var twoF = big.NewFloat(2)
