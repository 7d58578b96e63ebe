// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a caller supplies a value outside
	// the stated contract (bad Stirling type, MR base <= 1, ...).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrParameterSearchExhausted is returned when a Selfridge or
	// extra-strong parameter search exceeds its hard cap.
	ErrParameterSearchExhausted = errors.New("parameter search exhausted")

	// ErrResourceExhausted names allocation failure during sieve or
	// product-tree construction. No function of this module returns it.
	ErrResourceExhausted = errors.New("resource exhausted")
)
