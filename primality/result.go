// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

// Result is the uniform tri-state answer of the primality tests.
// ProbablyPrime means the tests run so far found no witness of
// compositeness; it is the honest output of a probable-prime test, not an
// error.
type Result int

const (
	Composite     Result = 0
	ProbablyPrime Result = 1
	Prime         Result = 2
)

func (r Result) String() string {
	switch r {
	case Composite:
		return "composite"
	case ProbablyPrime:
		return "probably prime"
	case Prime:
		return "prime"
	}
	return "unknown"
}

// Bool collapses the tri-state for callers that only need a yes/no.
func (r Result) Bool() bool {
	return r != Composite
}
