// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package sieve

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primality"
	"github.com/bnb-chain/primeutil/primes"
)

// TwinPrimes returns the offsets r, relative to lo, of the primes lo+r in
// [lo, hi] for which lo+r+twin is also prime; the companion lo+r+twin may
// lie above hi. The twin offset must be even and positive;
// residue classes mod 6 that cannot hold a twin pair are skipped outright.
func TwinPrimes(lo, hi *big.Int, twin uint64) ([]uint64, error) {
	if twin == 0 || twin&1 == 1 {
		return nil, errors.Wrapf(common.ErrInvalidArgument, "twin prime offset %d must be even", twin)
	}
	loOrig := new(big.Int).Set(lo)
	low := new(big.Int).Set(lo)
	high := new(big.Int).Set(hi)
	if low.Cmp(big.NewInt(3)) <= 0 {
		low.SetUint64(3)
	}
	if low.Bit(0) == 0 {
		low.Add(low, one)
	}
	if high.Bit(0) == 0 {
		high.Sub(high, one)
	}

	starti, skipi := uint64(1), uint64(2)
	switch twin % 6 {
	case 2:
		starti, skipi = 5, 6
	case 4:
		starti, skipi = 1, 6
	}
	if low.Cmp(high) > 0 {
		return nil, nil
	}

	var out []uint64
	t := new(big.Int)

	// Much deeper than the plain prime sieve: a surviving pair is rare.
	k := 80000 * uint64(high.BitLen())
	if t.Sqrt(high); t.IsUint64() && t.Uint64() < k {
		k = t.Uint64()
	}

	// Small primes would be sieved away; test them directly.
	if low.Cmp(new(big.Int).SetUint64(k)) <= 0 {
		ulow := low.Uint64()
		iter := primes.NewIterator()
		for p := iter.Peek(); p <= k; p = iter.Next() {
			if p < ulow {
				continue
			}
			if high.IsUint64() && p > high.Uint64() {
				break
			}
			t.SetUint64(p + twin)
			res, err := primality.BPSW(t)
			if err != nil {
				iter.Destroy()
				return nil, err
			}
			if res.Bool() {
				out = append(out, p-loOrig.Uint64())
			}
		}
		iter.Destroy()
	}

	length := new(big.Int).Sub(high, low).Uint64() + 1
	starti = ((starti + skipi) - new(big.Int).Mod(low, new(big.Int).SetUint64(skipi)).Uint64() + 1) % skipi

	comp, base, err := Partial(low, length+twin, k)
	if err != nil {
		return nil, err
	}
	shift := new(big.Int).Sub(base, loOrig).Int64()
	for i := starti; i <= length; i += skipi {
		if IsMarked(comp, i) || IsMarked(comp, i+twin) {
			continue
		}
		t.Add(base, new(big.Int).SetUint64(i))
		res, err := primality.BPSW(t)
		if err != nil {
			return nil, err
		}
		if !res.Bool() {
			continue
		}
		t.Add(t, new(big.Int).SetUint64(twin))
		res, err = primality.BPSW(t)
		if err != nil {
			return nil, err
		}
		if res.Bool() {
			out = append(out, uint64(int64(i)+shift))
		}
	}
	return out, nil
}
