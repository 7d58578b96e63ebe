// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"

	"github.com/hashicorp/go-multierror"

	"github.com/bnb-chain/primeutil/common"
)

// IsProbPrime is the fast path: pretest, then BPSW. No known composite
// passes, and anything below 2^64 is decided exactly.
func IsProbPrime(n *big.Int) (Result, error) {
	if r := Pretest(n); r != ProbablyPrime {
		return r, nil
	}
	return BPSW(n)
}

// IsPrime is IsProbPrime plus a little extra: a deterministic LLR or Proth
// proof when n has the right form, the Sorenson-Webster deterministic bases
// when n is small enough, a quick N-1 proof attempt when a prover is
// registered, and finally enough random-base Miller-Rabin rounds to push
// the error bound well below 1e-5.
func IsPrime(n *big.Int) (Result, error) {
	if r := Pretest(n); r != ProbablyPrime {
		return r, nil
	}

	if r, decided := LLR(n); decided {
		return r, nil
	}
	if r, decided := Proth(n); decided {
		return r, nil
	}

	r, err := BPSW(n)
	if err != nil || r != ProbablyPrime {
		return r, err
	}
	nbits := n.BitLen()

	r, err = deterministicMillerRabin(n)
	if err != nil {
		return r, err
	}
	if r == Composite {
		common.Logger.Errorf("**** BPSW counter-example found?  **** N = %s ****", n)
		return Composite, nil
	}
	if r == Prime {
		return Prime, nil
	}

	// A quick N-1 proof is often free for Proth-form or small inputs.
	if nm1Prover != nil {
		if IsProthForm(n) {
			if pr, _, perr := nm1Prover.ProveNMinusOne(n, 2, false); perr == nil && pr != ProbablyPrime {
				return pr, nil
			}
		} else if nbits <= 150 {
			if pr, _, perr := nm1Prover.ProveNMinusOne(n, 0, false); perr == nil && pr != ProbablyPrime {
				return pr, nil
			}
		}
	}

	var ntests int
	switch {
	case nbits < 80:
		ntests = 5 // p < .00000168
	case nbits < 105:
		ntests = 4 // p < .00000156
	case nbits < 160:
		ntests = 3 // p < .00000164
	case nbits < 413:
		ntests = 2 // p < .00000156
	default:
		ntests = 1 // p < .00000159
	}
	if !MillerRabinRandom(n, ntests) {
		return Composite, nil
	}
	return ProbablyPrime, nil
}

// IsProvablePrime runs the usual cascade and then asks the registered
// provers for a certificate: first the N-1 prover, then ECPP. When both
// are exhausted the honest ProbablyPrime answer is returned, together with
// whatever errors the provers raised.
func IsProvablePrime(n *big.Int, wantCert bool) (Result, string, error) {
	if r := Pretest(n); r != ProbablyPrime {
		return r, "", nil
	}

	// LLR and Proth prove primality but produce no certificate.
	if !wantCert {
		if r, decided := LLR(n); decided {
			return r, "", nil
		}
		if r, decided := Proth(n); decided {
			return r, "", nil
		}
	}

	r, err := BPSW(n)
	if err != nil || r != ProbablyPrime {
		return r, "", err
	}

	if !wantCert {
		r, err = deterministicMillerRabin(n)
		if err != nil {
			return r, "", err
		}
		if r != ProbablyPrime {
			return r, "", nil
		}
	}

	// One more random-base round, just in case.
	if !MillerRabinRandom(n, 1) {
		return Composite, "", nil
	}

	var errs error
	effort := 1
	if IsProthForm(n) {
		effort = 3
	}
	if nm1Prover != nil {
		pr, cert, perr := nm1Prover.ProveNMinusOne(n, effort, wantCert)
		if perr != nil {
			errs = multierror.Append(errs, perr)
		} else if pr != ProbablyPrime {
			return pr, cert, nil
		}
	}
	if ecppProver != nil {
		pr, cert, perr := ecppProver.ProveECPP(n, wantCert)
		if perr != nil {
			errs = multierror.Append(errs, perr)
		} else if pr != ProbablyPrime {
			return pr, cert, nil
		}
	}
	return ProbablyPrime, "", errs
}
