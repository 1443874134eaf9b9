// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

const (
	// CentPerCoin is the number of base units in one talus cent.
	CentPerCoin = 1e6

	// SatoshiPerCoin is the number of base units in one whole coin (COIN,
	// per §6).
	SatoshiPerCoin = 1e8

	// MaxSatoshi is the maximum transaction amount allowed in base units:
	// a 21,000,000-coin cap (§6).
	MaxSatoshi = 21e6 * SatoshiPerCoin
)
