// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnb-chain/primeutil/common"
)

func TestIsPerfectSquare(t *testing.T) {
	for _, v := range []int64{0, 1, 4, 9, 144, 1018081} {
		assert.True(t, common.IsPerfectSquare(big.NewInt(v)), "%d", v)
	}
	for _, v := range []int64{2, 3, 5, 143, 1018082, -4} {
		assert.False(t, common.IsPerfectSquare(big.NewInt(v)), "%d", v)
	}
}

func TestRoot(t *testing.T) {
	r, exact := common.Root(big.NewInt(27), 3)
	assert.True(t, exact)
	assert.EqualValues(t, 3, r.Int64())

	r, exact = common.Root(big.NewInt(28), 3)
	assert.False(t, exact)
	assert.EqualValues(t, 3, r.Int64())

	big10to30 := new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil)
	r, exact = common.Root(big10to30, 5)
	assert.True(t, exact)
	assert.EqualValues(t, 1000000, r.Int64())
}

func TestPowerFactor(t *testing.T) {
	k, root := common.PowerFactor(big.NewInt(1024))
	assert.EqualValues(t, 10, k)
	assert.EqualValues(t, 2, root.Int64())

	k, root = common.PowerFactor(big.NewInt(729))
	assert.EqualValues(t, 6, k)
	assert.EqualValues(t, 3, root.Int64())

	k, _ = common.PowerFactor(big.NewInt(12))
	assert.EqualValues(t, 0, k)
}

func TestProduct(t *testing.T) {
	A := []*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(5), big.NewInt(7), big.NewInt(11)}
	assert.EqualValues(t, 2310, common.Product(A, 0, len(A)-1).Int64())

	B := []*big.Int{big.NewInt(42)}
	assert.EqualValues(t, 42, common.Product(B, 0, 0).Int64())
}

func TestModInt(t *testing.T) {
	q := big.NewInt(97)
	mi := common.ModInt(q)
	assert.EqualValues(t, 2, mi.Add(big.NewInt(95), big.NewInt(4)).Int64())
	assert.EqualValues(t, 96, mi.Sub(big.NewInt(2), big.NewInt(3)).Int64())
}
