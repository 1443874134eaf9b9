// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// TxIndexEntry is the in-memory form of a TxIndex record (§3): the
// transaction itself, the height of the block that contains it, and a
// parallel "spent" vector indexed by output index. An output is unspent
// iff its Spent slot is the zero hash (§3, "UTXO state ... vSpent").
type TxIndexEntry struct {
	Tx          *wire.MsgTx
	BlockHeight int32
	Spent       []chainhash.Hash
}

// newTxIndexEntry builds a fresh, fully-unspent entry for tx.
func newTxIndexEntry(tx *wire.MsgTx, height int32) *TxIndexEntry {
	return &TxIndexEntry{
		Tx:          tx,
		BlockHeight: height,
		Spent:       make([]chainhash.Hash, len(tx.TxOut)),
	}
}

// IsOutputSpent reports whether output n of the entry's transaction has
// already been claimed by another transaction.
func (e *TxIndexEntry) IsOutputSpent(n uint32) bool {
	return e.Spent[n] != (chainhash.Hash{})
}

// TxStore is the minimal key-value surface ConnectInputs needs against a
// transaction index: the persistent txdb in block context, or a
// throwaway scratch_pool when validating on behalf of a miner (§4.2).
// database.TxIndexStore and the in-memory store below both satisfy it.
type TxStore interface {
	FetchTxIndex(hash chainhash.Hash) (*TxIndexEntry, bool)
	PutTxIndex(hash chainhash.Hash, entry *TxIndexEntry)
	RemoveTxIndex(hash chainhash.Hash)
}

// MemTxStore is an in-memory TxStore, used both for tests and as the
// miner-only scratch_pool described in §4.2.
type MemTxStore map[chainhash.Hash]*TxIndexEntry

func NewMemTxStore() MemTxStore { return make(MemTxStore) }

func (s MemTxStore) FetchTxIndex(hash chainhash.Hash) (*TxIndexEntry, bool) {
	e, ok := s[hash]
	return e, ok
}

func (s MemTxStore) PutTxIndex(hash chainhash.Hash, entry *TxIndexEntry) {
	s[hash] = entry
}

func (s MemTxStore) RemoveTxIndex(hash chainhash.Hash) {
	delete(s, hash)
}

// ScriptEngine evaluates whether a transaction input's unlocking script
// satisfies the referenced output's locking script (§4.1 EvalScript).
// ConnectInputs is decoupled from any particular implementation so the
// chain package can be built and tested independently of the script
// interpreter. BlockChain uses TxScriptEngine by default; NopScriptEngine
// accepts everything and serves as a test double.
type ScriptEngine interface {
	VerifyScript(tx *wire.MsgTx, inputIndex int, prevOut *wire.TxOut) error
}

// NopScriptEngine accepts every script; it is used by tests that are
// concerned with the UTXO bookkeeping rather than script evaluation.
type NopScriptEngine struct{}

func (NopScriptEngine) VerifyScript(*wire.MsgTx, int, *wire.TxOut) error { return nil }

// ConnectInputs validates and applies the inputs of tx against store,
// falling back to fallback (the mempool, in live operation) when an
// input's previous transaction is not found in store (§4.2
// ConnectInputs). On success it marks every consumed output spent in
// store, writes tx's own TxIndexEntry into store, and returns the fee
// (sum of inputs minus sum of outputs).
func ConnectInputs(
	tx *wire.MsgTx,
	store TxStore,
	fallback TxStore,
	engine ScriptEngine,
	height int32,
	coinbaseMaturity int32,
	minFee int64,
) (int64, error) {
	if IsCoinBase(tx) {
		return 0, AssertError("ConnectInputs called on a coinbase transaction")
	}

	txHash := tx.TxHash()
	var sumIn int64
	for i, in := range tx.TxIn {
		prevHash := in.PreviousOutPoint.Hash
		entry, ok := store.FetchTxIndex(prevHash)
		if !ok && fallback != nil {
			entry, ok = fallback.FetchTxIndex(prevHash)
		}
		if !ok {
			return 0, ruleError(ErrMissingTxOut, "input references unknown previous transaction")
		}

		n := in.PreviousOutPoint.Index
		if int(n) >= len(entry.Tx.TxOut) {
			return 0, ruleError(ErrMissingTxOut, "input references out-of-range previous output")
		}

		if IsCoinBase(entry.Tx) {
			if height-entry.BlockHeight < int32(coinbaseMaturity) {
				return 0, ruleError(ErrImmatureSpend, "attempt to spend immature coinbase output")
			}
		}

		prevOut := entry.Tx.TxOut[n]
		if err := engine.VerifyScript(tx, i, prevOut); err != nil {
			return 0, ruleError(ErrScriptVerifyFailed, err.Error())
		}

		if entry.IsOutputSpent(n) {
			return 0, ruleError(ErrDoubleSpend, "input double-spends an already-spent output")
		}

		entry.Spent[n] = txHash
		store.PutTxIndex(prevHash, entry)

		sumIn += prevOut.Value
	}

	var sumOut int64
	for _, out := range tx.TxOut {
		sumOut += out.Value
	}

	fee := sumIn - sumOut
	if fee < 0 {
		return 0, ruleError(ErrSpendTooHigh, "transaction outputs exceed inputs")
	}
	if fee < minFee {
		return 0, ruleError(ErrBadFee, "transaction fee is below the required minimum")
	}

	store.PutTxIndex(txHash, newTxIndexEntry(tx, height))

	return fee, nil
}

// DisconnectInputs reverses the effect ConnectInputs had on tx's inputs:
// every consumed output's spent slot is cleared and tx's own TxIndexEntry
// is erased (§4.3.2 DisconnectBlock). For a coinbase transaction, which
// has no inputs to unspend, only its own TxIndexEntry is erased.
func DisconnectInputs(tx *wire.MsgTx, store TxStore) {
	if IsCoinBase(tx) {
		store.RemoveTxIndex(tx.TxHash())
		return
	}

	for _, in := range tx.TxIn {
		prevHash := in.PreviousOutPoint.Hash
		entry, ok := store.FetchTxIndex(prevHash)
		if !ok {
			continue
		}
		n := in.PreviousOutPoint.Index
		if int(n) < len(entry.Spent) {
			entry.Spent[n] = chainhash.Hash{}
		}
		store.PutTxIndex(prevHash, entry)
	}

	store.RemoveTxIndex(tx.TxHash())
}
