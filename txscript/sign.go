// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/talusnet/talusd/wire"
)

// RawTxInSignature computes the DER signature for the inputIndex'th input
// of tx, spending a previous output locked by subscript, and appends the
// hashType byte CHECKSIG expects to find after the signature.
func RawTxInSignature(tx *wire.MsgTx, inputIndex int, subscript []byte, hashType uint32, key *secp256k1.PrivateKey) ([]byte, error) {
	hash := calcSignatureHash(subscript, hashType, tx, inputIndex)
	sig := ecdsa.Sign(key, hash[:])
	return append(sig.Serialize(), byte(hashType)), nil
}

// SignatureScript builds the unlocking script for a pay-to-pubkey-hash
// input: a signature followed by the spender's serialized public key.
func SignatureScript(tx *wire.MsgTx, inputIndex int, subscript []byte, hashType uint32, key *secp256k1.PrivateKey, compress bool) ([]byte, error) {
	sig, err := RawTxInSignature(tx, inputIndex, subscript, hashType, key)
	if err != nil {
		return nil, err
	}

	pub := key.PubKey()
	var pkData []byte
	if compress {
		pkData = pub.SerializeCompressed()
	} else {
		pkData = pub.SerializeUncompressed()
	}

	script := append([]byte{byte(len(sig))}, sig...)
	script = append(script, byte(len(pkData)))
	script = append(script, pkData...)
	return script, nil
}

// PubKeySignatureScript builds the unlocking script for a bare
// pay-to-pubkey input: just the signature, no public key.
func PubKeySignatureScript(tx *wire.MsgTx, inputIndex int, subscript []byte, hashType uint32, key *secp256k1.PrivateKey) ([]byte, error) {
	sig, err := RawTxInSignature(tx, inputIndex, subscript, hashType, key)
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(len(sig))}, sig...), nil
}
