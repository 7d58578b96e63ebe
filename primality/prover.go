// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primality

import (
	"math/big"
)

// NMinusOneProver is the interface of an external Brillhart-Lehmer-Selfridge
// N-1 / N+1 proving module. Returned certificates are free-form text.
type NMinusOneProver interface {
	ProveNMinusOne(n *big.Int, effort int, wantCert bool) (Result, string, error)
}

// ECPPProver is the interface of an external elliptic-curve primality
// proving module.
type ECPPProver interface {
	ProveECPP(n *big.Int, wantCert bool) (Result, string, error)
}

var (
	nm1Prover  NMinusOneProver
	ecppProver ECPPProver
)

// RegisterNMinusOneProver installs the external N-1 prover consulted by
// IsPrime and IsProvablePrime. Pass nil to uninstall.
func RegisterNMinusOneProver(p NMinusOneProver) {
	nm1Prover = p
}

// RegisterECPPProver installs the external ECPP prover consulted by
// IsProvablePrime. Pass nil to uninstall.
func RegisterECPPProver(p ECPPProver) {
	ecppProver = p
}
