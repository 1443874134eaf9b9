// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/wire"
)

// activeNetParams is a pointer to the parameters specific to the currently
// active talus network.
var activeNetParams = &mainNetParams

// params groups the chain parameters for a network together with the
// node's default RPC port on that network.
type params struct {
	*chaincfg.Params
	rpcPort string
}

// mainNetParams contains parameters specific to the main network.
var mainNetParams = params{
	Params:  &chaincfg.MainNetParams,
	rpcPort: "15213",
}

// regressionNetParams contains parameters specific to the regression test
// network.
var regressionNetParams = params{
	Params:  &chaincfg.RegressionNetParams,
	rpcPort: "25213",
}

// testNet3Params contains parameters specific to the test network
// (version 3).
var testNet3Params = params{
	Params:  &chaincfg.TestNet3Params,
	rpcPort: "35213",
}

// simNetParams contains parameters specific to the simulation test network.
var simNetParams = params{
	Params:  &chaincfg.SimNetParams,
	rpcPort: "45213",
}

// netName returns the directory name used for a network's on-disk state.
// testnet3 keeps the legacy "testnet" directory name for compatibility
// with existing deployments.
func netName(chainParams *params) string {
	switch chainParams.Net {
	case wire.TestNet3:
		return "testnet"
	default:
		return chainParams.Name
	}
}
