// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/chainutil"
)

// ScriptClass classifies a locking script's template, restricted to the
// two forms in active use (§9 Non-goals: "No pluggable signature
// schemes").
type ScriptClass int

const (
	NonStandardTy ScriptClass = iota
	PubKeyTy
	PubKeyHashTy
)

func (c ScriptClass) String() string {
	switch c {
	case PubKeyTy:
		return "pubkey"
	case PubKeyHashTy:
		return "pubkeyhash"
	default:
		return "nonstandard"
	}
}

// payToPubKeyHashScript builds `OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY
// OP_CHECKSIG`, the standard locking script for a pay-to-pubkey-hash
// address (§4.1).
func payToPubKeyHashScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, 25)
	script = append(script, OP_DUP, OP_HASH160)
	script = append(script, byte(len(pubKeyHash)))
	script = append(script, pubKeyHash...)
	script = append(script, OP_EQUALVERIFY, OP_CHECKSIG)
	return script
}

// payToPubKeyScript builds `<pubkey> OP_CHECKSIG`, the locking script for
// a bare public key.
func payToPubKeyScript(serializedPubKey []byte) []byte {
	script := make([]byte, 0, len(serializedPubKey)+2)
	script = append(script, byte(len(serializedPubKey)))
	script = append(script, serializedPubKey...)
	script = append(script, OP_CHECKSIG)
	return script
}

// PayToAddrScript creates a locking script that pays to addr, supporting
// the p2pkh and p2pk address kinds chainutil exposes.
func PayToAddrScript(addr chainutil.Address) ([]byte, error) {
	switch a := addr.(type) {
	case *chainutil.AddressPubKeyHash:
		return payToPubKeyHashScript(a.ScriptAddress()), nil
	case *chainutil.AddressPubKey:
		return payToPubKeyScript(a.ScriptAddress()), nil
	default:
		return nil, scriptError(ErrUnsupportedAddress, "unsupported address type")
	}
}

// GetScriptClass classifies a parsed locking script as p2pkh, p2pk, or
// nonstandard.
func GetScriptClass(script []byte) ScriptClass {
	parsed, err := parseScript(script)
	if err != nil {
		return NonStandardTy
	}

	if len(parsed) == 5 &&
		parsed[0].opcode == OP_DUP &&
		parsed[1].opcode == OP_HASH160 &&
		len(parsed[2].data) == 20 &&
		parsed[3].opcode == OP_EQUALVERIFY &&
		parsed[4].opcode == OP_CHECKSIG {
		return PubKeyHashTy
	}

	if len(parsed) == 2 &&
		(len(parsed[0].data) == 33 || len(parsed[0].data) == 65) &&
		parsed[1].opcode == OP_CHECKSIG {
		return PubKeyTy
	}

	return NonStandardTy
}

// ExtractPkScriptAddr returns the single address a standard locking
// script pays to, for use by wallet balance tracking and block explorers.
func ExtractPkScriptAddr(script []byte, net *chaincfg.Params) (chainutil.Address, error) {
	parsed, err := parseScript(script)
	if err != nil {
		return nil, err
	}

	switch GetScriptClass(script) {
	case PubKeyHashTy:
		return chainutil.NewAddressPubKeyHash(parsed[2].data, net)
	case PubKeyTy:
		return chainutil.NewAddressPubKey(parsed[0].data, net)
	default:
		return nil, scriptError(ErrUnsupportedAddress, "nonstandard script has no single destination address")
	}
}
