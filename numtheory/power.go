// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package numtheory

import (
	"math/big"

	"github.com/bnb-chain/primeutil/common"
	"github.com/bnb-chain/primeutil/primality"
)

// IsPower reports on perfect powers. a = 0 returns the largest a such that
// n is an a-th power (0 when n is no perfect power); a = 1 returns 1;
// a >= 2 returns 1 when n is an a-th power and 0 otherwise.
func IsPower(n *big.Int, a uint64) uint64 {
	if n.Sign() < 0 || (a == 0 && n.Cmp(big.NewInt(3)) <= 0) {
		return 0
	}
	switch a {
	case 1:
		return 1
	case 0:
		k, _ := common.PowerFactor(n)
		return k
	case 2:
		if common.IsPerfectSquare(n) {
			return 1
		}
		return 0
	default:
		if _, exact := common.Root(n, a); exact {
			return 1
		}
		return 0
	}
}

// ExpMangoldt returns the exponential of the von Mangoldt function:
// p for n = p^k (prime p, k >= 1), and 1 otherwise.
func ExpMangoldt(n *big.Int) *big.Int {
	if n.Cmp(oneConst) <= 0 {
		return big.NewInt(1)
	}
	// Powers of two
	if k := n.TrailingZeroBits(); k > 0 {
		if int(k)+1 == n.BitLen() {
			return big.NewInt(2)
		}
		return big.NewInt(1)
	}
	if r, _ := primality.IsProbPrime(n); r.Bool() {
		return new(big.Int).Set(n)
	}
	if k, root := common.PowerFactor(n); k > 1 {
		if r, _ := primality.IsProbPrime(root); r.Bool() {
			return root
		}
	}
	return big.NewInt(1)
}
