// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primes

// segSpan is the number of integers covered by one iterator segment.
const segSpan = 1 << 18

// Iterator yields successive primes starting from 2. It sieves odds-only
// segments on demand, so the enumeration horizon is bounded only by uint64.
// An Iterator is restartable only by constructing a new one.
type Iterator struct {
	p         uint64   // current prime
	lo        uint64   // first odd value covered by comp
	comp      []uint64 // odds-only composite bits for [lo, lo+segSpan)
	off       uint64   // index of the next odd candidate to scan
	base      []uint64 // sieving primes
	baseLimit uint64
}

// NewIterator returns an iterator positioned on 2.
func NewIterator() *Iterator {
	it := &Iterator{p: 2}
	it.fill(3)
	return it
}

// Peek returns the current prime without advancing.
func (it *Iterator) Peek() uint64 {
	return it.p
}

// Next advances to and returns the next prime.
func (it *Iterator) Next() uint64 {
	for {
		nbits := uint64(len(it.comp)) * 64
		for i := it.off; i < nbits; i++ {
			if it.comp[i/64]&(1<<(i%64)) == 0 {
				it.off = i + 1
				it.p = it.lo + 2*i
				return it.p
			}
		}
		it.fill(it.lo + segSpan)
	}
}

// Destroy releases the iterator's segment storage.
func (it *Iterator) Destroy() {
	it.comp = nil
	it.base = nil
}

func (it *Iterator) fill(lo uint64) {
	it.lo = lo
	it.off = 0
	nbits := uint64(segSpan / 2)
	words := (nbits + 63) / 64
	if it.comp == nil {
		it.comp = make([]uint64, words)
	} else {
		for i := range it.comp {
			it.comp[i] = 0
		}
	}
	hi := lo + segSpan - 2
	it.ensureBase(isqrt(hi) + 1)
	for _, q := range it.base {
		if q == 2 {
			continue
		}
		if q*q > hi {
			break
		}
		start := q * q
		if start < lo {
			start = lo + (q-lo%q)%q
			if start%2 == 0 {
				start += q
			}
		}
		for v := start; v <= hi; v += 2 * q {
			i := (v - lo) / 2
			it.comp[i/64] |= 1 << (i % 64)
		}
	}
	// Mask bits beyond the segment
	for i := nbits; i < words*64; i++ {
		it.comp[i/64] |= 1 << (i % 64)
	}
}

func (it *Iterator) ensureBase(limit uint64) {
	if limit <= it.baseLimit {
		return
	}
	if limit < 1024 {
		limit = 1024
	}
	it.base = SieveToN(limit)
	it.baseLimit = limit
}
