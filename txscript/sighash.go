// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"

	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// Hash type codes recognized by CHECKSIG (§4.1).
const (
	SigHashOld          uint32 = 0x0
	SigHashAll          uint32 = 0x1
	SigHashNone         uint32 = 0x2
	SigHashSingle       uint32 = 0x3
	SigHashAnyOneCanPay uint32 = 0x80

	sigHashMask = 0x1f
)

// removeOpcode returns script with every instance of the given opcode
// stripped, used to drop OP_CODESEPARATOR from the subscript before it is
// hashed (§4.1).
func removeOpcode(script []byte, opcode byte) []byte {
	parsed, err := parseScript(script)
	if err != nil {
		return script
	}

	var out []byte
	for _, op := range parsed {
		if op.opcode == opcode {
			continue
		}
		out = append(out, unparseOpcode(op)...)
	}
	return out
}

// unparseOpcode reconstructs the raw bytes of a single parsed instruction,
// re-deriving a minimal push prefix for a data-carrying opcode.
func unparseOpcode(op parsedOpcode) []byte {
	if op.opcode > OP_PUSHDATA4 {
		return []byte{op.opcode}
	}

	n := len(op.data)
	switch {
	case n <= 0x4b:
		return append([]byte{byte(n)}, op.data...)
	case n <= 0xff:
		return append([]byte{OP_PUSHDATA1, byte(n)}, op.data...)
	case n <= 0xffff:
		return append([]byte{OP_PUSHDATA2, byte(n), byte(n >> 8)}, op.data...)
	default:
		return append([]byte{OP_PUSHDATA4, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}, op.data...)
	}
}

// calcSignatureHash computes the double-SHA256 digest a signature commits
// to: a serialization of tx with every input's script blanked except
// inputIndex's (set to subscript, with OP_CODESEPARATOR removed), and
// optionally blanked outputs/inputs depending on hashType, followed by the
// little-endian hash type (§4.1 SignatureHash).
func calcSignatureHash(subscript []byte, hashType uint32, tx *wire.MsgTx, inputIndex int) chainhash.Hash {
	if inputIndex >= len(tx.TxIn) {
		return chainhash.Hash{}
	}

	subscript = removeOpcode(subscript, OP_CODESEPARATOR)

	txCopy := tx.Copy()
	for i := range txCopy.TxIn {
		if i == inputIndex {
			txCopy.TxIn[i].SignatureScript = subscript
		} else {
			txCopy.TxIn[i].SignatureScript = nil
		}
	}

	switch hashType & sigHashMask {
	case SigHashNone:
		txCopy.TxOut = txCopy.TxOut[0:0]
		for i := range txCopy.TxIn {
			if i != inputIndex {
				txCopy.TxIn[i].Sequence = 0
			}
		}
	case SigHashSingle:
		if inputIndex >= len(txCopy.TxOut) {
			// Consensus quirk carried over from the original
			// implementation: signing with an out-of-range
			// SIGHASH_SINGLE index yields the fixed hash of 1.
			var one chainhash.Hash
			one[0] = 0x01
			return one
		}
		txCopy.TxOut = txCopy.TxOut[:inputIndex+1]
		for i := 0; i < inputIndex; i++ {
			txCopy.TxOut[i].Value = -1
			txCopy.TxOut[i].PkScript = nil
		}
		for i := range txCopy.TxIn {
			if i != inputIndex {
				txCopy.TxIn[i].Sequence = 0
			}
		}
	default:
		// SigHashAll (and SigHashOld, treated identically): every
		// output is committed to unchanged.
	}

	if hashType&SigHashAnyOneCanPay != 0 {
		txCopy.TxIn = []*wire.TxIn{txCopy.TxIn[inputIndex]}
	}

	var buf bytes.Buffer
	txCopy.Serialize(&buf)
	buf.Write([]byte{
		byte(hashType), byte(hashType >> 8), byte(hashType >> 16), byte(hashType >> 24),
	})

	return chainhash.DoubleHashH(buf.Bytes())
}
