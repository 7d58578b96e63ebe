// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve

import (
	"math/big"

	"github.com/bnb-chain/primeutil/primality"
	"github.com/bnb-chain/primeutil/primes"
)

// Primes returns the offsets, relative to lo, of every prime in [lo, hi].
// Sieving depth k is a tuning knob: candidates surviving the sieve are
// BPSW-verified unless k >= sqrt(hi) makes the sieve exhaustive. Pass k = 0
// to have a depth chosen automatically.
func Primes(lo, hi *big.Int, k uint64) ([]uint64, error) {
	loOrig := new(big.Int).Set(lo)
	inlow := new(big.Int).Set(lo)
	high := new(big.Int).Set(hi)
	if inlow.Cmp(two) < 0 {
		inlow.SetUint64(2)
	}
	if inlow.Cmp(high) > 0 {
		return nil, nil
	}

	testPrimality := true
	kPrimality := false
	t := new(big.Int).Sqrt(high)
	// If auto-setting k or k >= sqrt(hi), pick a good depth.
	if k == 0 || (t.IsUint64() && t.Uint64() <= k) {
		hbits := high.BitLen()
		if hbits < 100 {
			k = 50000000
		} else {
			k = uint64(hbits) * 500000
		}
	}
	// If k >= sqrt(hi) the sieve alone is complete.
	if t.IsUint64() && t.Uint64() <= k {
		k = t.Uint64()
		kPrimality = true
		testPrimality = false
	}

	var out []uint64

	// Small ranges come straight from the base sieve.
	if (kPrimality || testPrimality) && high.Cmp(big.NewInt(2000000000)) <= 0 {
		ulow, uhigh := inlow.Uint64(), high.Uint64()
		uloOrig := loOrig.Uint64()
		if uhigh < 1000000 || uhigh/ulow >= 4 {
			for _, p := range primes.SieveToN(uhigh) {
				if p >= ulow {
					out = append(out, p-uloOrig)
				}
			}
			return out, nil
		}
	}

	low := new(big.Int).Set(inlow)
	if k < 2 {
		k = 2
	}

	// Primes up to k would be sieved away; include them directly.
	if low.Cmp(new(big.Int).SetUint64(k)) <= 0 {
		ulow, uloOrig := low.Uint64(), loOrig.Uint64()
		for _, p := range primes.SieveToN(k) {
			if p >= ulow {
				out = append(out, p-uloOrig)
			}
		}
	}

	if low.Bit(0) == 0 {
		low.Add(low, one)
	}
	if high.Bit(0) == 0 {
		high.Sub(high, one)
	}
	if low.Cmp(high) > 0 {
		return out, nil
	}

	length := new(big.Int).Sub(high, low).Uint64() + 1
	comp, base, err := Partial(low, length, k)
	if err != nil {
		return nil, err
	}
	// Candidate base+i sits at offset i + (base - lo) from the caller's lo.
	shift := new(big.Int).Sub(base, loOrig).Int64()
	for i := uint64(1); i <= length; i += 2 {
		if IsMarked(comp, i) {
			continue
		}
		if testPrimality {
			t.Add(base, new(big.Int).SetUint64(i))
			res, err := primality.BPSW(t)
			if err != nil {
				return nil, err
			}
			if !res.Bool() {
				continue
			}
		}
		out = append(out, uint64(int64(i)+shift))
	}
	return out, nil
}
