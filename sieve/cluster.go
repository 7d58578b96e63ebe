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

const (
	// clusterTargetResidues bounds how large the residue list may grow
	// while the primorial is extended.
	clusterTargetResidues = 4000000
	// clusterGrowthCap stops primorial growth at the 15th prime (47).
	clusterGrowthCap = 14
	clusterMaxPi     = 168
)

func addMod(a, b, n uint64) uint64 {
	r := a + b
	if r >= n {
		r -= n
	}
	return r
}

// Cluster returns the offsets r, relative to lo, such that lo+r+c is a
// BPSW probable prime for every offset c of the admissible tuple cl.
// cl must start with 0 and increase; all later entries must be even.
func Cluster(lo, hi *big.Int, cl []uint32) ([]uint64, error) {
	nc := len(cl)
	if nc == 0 || cl[0] != 0 {
		return nil, errors.Wrap(common.ErrInvalidArgument, "cluster offsets must start with 0")
	}
	for c := 1; c < nc; c++ {
		if cl[c] <= cl[c-1] || cl[c]&1 == 1 {
			return nil, errors.Wrap(common.ErrInvalidArgument, "cluster offsets must be increasing and even")
		}
	}
	if nc == 1 {
		return Primes(lo, hi, 0)
	}
	if nc == 2 {
		return TwinPrimes(lo, hi, uint64(cl[1]))
	}

	loOrig := new(big.Int).Set(lo)
	low := new(big.Int).Set(lo)
	high := new(big.Int).Set(hi)
	if low.Bit(0) == 0 {
		low.Add(low, one)
	}
	if high.Bit(0) == 0 {
		high.Sub(high, one)
	}
	if low.Cmp(high) > 0 {
		return nil, nil
	}

	var out []uint64
	t := new(big.Int)
	lastSmallPrime := primes.Small[clusterMaxPi-1] // 997

	// Small starts would be sieved away; test the table primes directly.
	if low.Cmp(new(big.Int).SetUint64(lastSmallPrime)) <= 0 {
		uiLow := low.Uint64()
		uiHigh := lastSmallPrime
		if high.IsUint64() && high.Uint64() < uiHigh {
			uiHigh = high.Uint64()
		}
		for pi := 0; pi < clusterMaxPi; pi++ {
			p := primes.Small[pi]
			if p > uiHigh {
				break
			}
			if p < uiLow {
				continue
			}
			all := true
			for c := 1; c < nc; c++ {
				t.SetUint64(p + uint64(cl[c]))
				res, err := primality.IsProbPrime(t)
				if err != nil {
					return nil, err
				}
				if !res.Bool() {
					all = false
					break
				}
			}
			if all {
				out = append(out, p-loOrig.Uint64())
			}
		}
	}
	if high.Cmp(new(big.Int).SetUint64(lastSmallPrime)) <= 0 {
		return out, nil
	}
	if low.Cmp(new(big.Int).SetUint64(lastSmallPrime)) <= 0 {
		// The table pass above covered everything up to 997.
		low.SetUint64(lastSmallPrime + 1)
	}
	if low.Bit(0) == 1 {
		low.Sub(low, one) // residues are odd offsets from an even base
	}

	// Residues of a small primorial that keep the whole tuple coprime.
	ppr := uint64(30) // 2*3*5
	pi := 2
	remr := new(big.Int).Mod(low, new(big.Int).SetUint64(ppr)).Uint64()
	var residues []uint64
	for i := uint64(1); i <= ppr; i += 2 {
		remi := remr + i
		ok := true
		for c := 0; c < nc; c++ {
			if gcd64(remi+uint64(cl[c]), ppr) != 1 {
				ok = false
				break
			}
		}
		if ok {
			residues = append(residues, i)
		}
	}

	// Grow the primorial while the residue list stays within budget.
	span := new(big.Int).Sub(high, low)
	maxppr := ^uint64(0)
	if span.BitLen() < 64 {
		maxppr = uint64(1) << uint(span.BitLen())
	}
	for {
		pi++
		if pi > clusterGrowthCap {
			break
		}
		p := primes.Small[pi]
		newppr := ppr * p
		if len(residues) == 0 || uint64(len(residues)) > clusterTargetResidues/(p/2) || newppr > maxppr {
			break
		}
		common.Logger.Debugf("cluster sieve found %d residues mod %d", len(residues), ppr)
		nremr := new(big.Int).Mod(low, new(big.Int).SetUint64(newppr)).Uint64()
		var res2 []uint64
		for i := uint64(0); i < p; i++ {
			for _, rr := range residues {
				r := i*ppr + rr
				ok := true
				for c := 0; c < nc; c++ {
					if (nremr+r+uint64(cl[c]))%p == 0 {
						ok = false
						break
					}
				}
				if ok {
					res2 = append(res2, r)
				}
			}
		}
		ppr = newppr
		residues = res2
	}
	startpi := pi
	common.Logger.Debugf("cluster sieve using %d residues mod %d", len(residues), ppr)

	if len(residues) == 0 {
		return out, nil
	}

	runPretests := low.BitLen() > 260

	// Three paired-prime compatibility tables: one remainder lookup per
	// pair replaces two modulo operations per residue.
	p1, p2 := primes.Small[startpi+0], primes.Small[startpi+1]
	p3, p4 := primes.Small[startpi+2], primes.Small[startpi+3]
	p5, p6 := primes.Small[startpi+4], primes.Small[startpi+5]
	pp0, pp1, pp2 := p1*p2, p3*p4, p5*p6
	crem0 := makeCrem(p1, p2, cl)
	crem1 := makeCrem(p3, p4, cl)
	crem2 := makeCrem(p5, p6, cl)
	nres := len(residues)
	resmod0 := make([]uint64, nres)
	resmod1 := make([]uint64, nres)
	resmod2 := make([]uint64, nres)
	for i, r := range residues {
		resmod0[i] = r % pp0
		resmod1[i] = r % pp1
		resmod2[i] = r % pp2
	}

	// Acceptable remainders for every later small prime.
	vprem := make([][]byte, clusterMaxPi)
	smallnc := 0
	for pi := startpi + 6; pi < clusterMaxPi; pi++ {
		p := primes.Small[pi]
		prem := make([]byte, p+1)
		for i := range prem {
			prem[i] = 1
		}
		prem[0] = 0
		for smallnc < nc && uint64(cl[smallnc]) < p {
			smallnc++
		}
		c := 1
		for ; c < smallnc; c++ {
			prem[p-uint64(cl[c])] = 0
		}
		for ; c < nc; c++ {
			prem[p-uint64(cl[c])%p] = 0
		}
		vprem[pi] = prem
	}

	cres := make([]uint64, 0, nres)
	rem0 := new(big.Int).Mod(low, new(big.Int).SetUint64(pp0)).Uint64()
	rem1 := new(big.Int).Mod(low, new(big.Int).SetUint64(pp1)).Uint64()
	rem2 := new(big.Int).Mod(low, new(big.Int).SetUint64(pp2)).Uint64()
	remadd0, remadd1, remadd2 := ppr%pp0, ppr%pp1, ppr%pp2

	nprps := 0
	pprBig := new(big.Int).SetUint64(ppr)
	rel := new(big.Int)

	// Walk the interval in chunks of ppr.
	for low.Cmp(high) <= 0 {
		// First pass: the three paired-prime tables.
		cres = cres[:0]
		for r := 0; r < nres; r++ {
			if crem0[addMod(rem0, resmod0[r], pp0)] != 0 &&
				crem1[addMod(rem1, resmod1[r], pp1)] != 0 &&
				crem2[addMod(rem2, resmod2[r], pp2)] != 0 {
				cres = append(cres, residues[r])
			}
		}
		rem0 = addMod(rem0, remadd0, pp0)
		rem1 = addMod(rem1, remadd1, pp1)
		rem2 = addMod(rem2, remadd2, pp2)

		// Second pass: one prime at a time, removing residues.
		for pi := startpi + 6; pi < clusterMaxPi && len(cres) > 0; pi++ {
			p := primes.Small[pi]
			rem := new(big.Int).Mod(low, new(big.Int).SetUint64(p)).Uint64()
			prem := vprem[pi]
			nr := 0
			for _, r := range cres {
				if prem[(rem+r)%p] != 0 {
					cres[nr] = r
					nr++
				}
			}
			cres = cres[:nr]
		}
		common.Logger.Debugf("cluster sieve chunk has %d residues left", len(cres))

		// Survivors get the full treatment.
		for _, i := range cres {
			t.Add(low, new(big.Int).SetUint64(i))
			if t.Cmp(high) > 0 {
				break
			}
			if runPretests {
				bad := false
				for c := 0; c < nc; c++ {
					t.Add(low, new(big.Int).SetUint64(i+uint64(cl[c])))
					if primality.HasMidFactor(t) {
						bad = true
						break
					}
				}
				if bad {
					continue
				}
			}
			all := true
			for c := 0; c < nc; c++ {
				t.Add(low, new(big.Int).SetUint64(i+uint64(cl[c])))
				nprps++
				res, err := primality.BPSW(t)
				if err != nil {
					return nil, err
				}
				if !res.Bool() {
					all = false
					break
				}
			}
			if !all {
				continue
			}
			rel.Add(low, new(big.Int).SetUint64(i))
			rel.Sub(rel, loOrig)
			out = append(out, rel.Uint64())
		}
		low.Add(low, pprBig)
	}

	common.Logger.Debugf("cluster sieve ran %d BPSW tests (pretests %v)", nprps, runPretests)
	return out, nil
}

// makeCrem builds the compatibility table for the prime pair (pa, pb):
// entry r is zero iff some cluster offset collides with pa or pb at that
// remainder of the pair product.
func makeCrem(pa, pb uint64, cl []uint32) []byte {
	pp := pa * pb
	crem := make([]byte, pp+1)
	for i := range crem {
		crem[i] = 1
	}
	for i := uint64(0); i < pa; i++ {
		crem[i*pa] = 0
		crem[i*pb] = 0
	}
	for i := pa; i < pb; i++ {
		crem[i*pa] = 0
	}
	for c := 1; c < len(cl); c++ {
		ca, cb := uint64(cl[c])%pa, uint64(cl[c])%pb
		for i := uint64(1); i <= pa; i++ {
			crem[i*pa-ca] = 0
			crem[i*pb-cb] = 0
		}
		for i := pa + 1; i <= pb; i++ {
			crem[i*pa-ca] = 0
		}
	}
	return crem[:pp]
}

func gcd64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
