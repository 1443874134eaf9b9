// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/talusnet/talusd/wire"
)

const (
	// Coin is the number of base units (Satoshi) in one talus.
	Coin = 1e8

	// Cent is one hundredth of a talus.
	Cent = 1e6

	// MaxMoney is the total monetary supply cap: every amount and every
	// running sum of amounts must stay within [0, MaxMoney].
	MaxMoney = 21000000 * Coin

	// MaxBlockSize is the maximum serialized size of a block, per §6
	// ("MAX_SIZE = 2^25").
	MaxBlockSize = 1 << 25

	// CoinbaseMaturity is the default number of confirmations required
	// before a coinbase output may be spent; chaincfg.Params carries
	// the authoritative per-network value.
	CoinbaseMaturity = 100

	// minCoinbaseScriptLen and maxCoinbaseScriptLen bound a coinbase's
	// signature script (§4.2 CheckTransaction).
	minCoinbaseScriptLen = 2
	maxCoinbaseScriptLen = 100

	// maxTimeOffset is how far into the future, relative to the
	// network-adjusted time, a block's timestamp may be (§4.3
	// CheckBlock).
	maxTimeOffset = 2 * time.Hour
)

// unixToTime converts a unix-seconds value to a UTC time.Time.
func unixToTime(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// IsCoinBase reports whether tx is a coinbase transaction: exactly one
// input referencing the null outpoint (§3).
func IsCoinBase(tx *wire.MsgTx) bool {
	return len(tx.TxIn) == 1 && tx.TxIn[0].PreviousOutPoint.IsNull()
}

// CheckTransaction performs context-free sanity checks on a transaction
// (§4.2): non-empty inputs and outputs, non-negative output amounts
// summing to no more than MaxMoney, a coinbase script length within
// [2,100], and non-null outpoints on every non-coinbase input.
func CheckTransaction(tx *wire.MsgTx) error {
	if len(tx.TxIn) == 0 {
		return ruleError(ErrNoTxInputs, "transaction has no inputs")
	}
	if len(tx.TxOut) == 0 {
		return ruleError(ErrNoTxOutputs, "transaction has no outputs")
	}

	var total int64
	for _, out := range tx.TxOut {
		if out.Value < 0 {
			return ruleError(ErrBadTxOutValue, "transaction output has negative value")
		}
		if out.Value > MaxMoney {
			return ruleError(ErrBadTxOutValue, "transaction output value exceeds max money")
		}
		total += out.Value
		if total > MaxMoney {
			return ruleError(ErrBadTxOutValue, "total transaction output value exceeds max money")
		}
	}

	if IsCoinBase(tx) {
		slen := len(tx.TxIn[0].SignatureScript)
		if slen < minCoinbaseScriptLen || slen > maxCoinbaseScriptLen {
			return ruleError(ErrBadCoinbaseScriptLen, "coinbase script length out of range")
		}
		return nil
	}

	seen := make(map[wire.OutPoint]struct{}, len(tx.TxIn))
	for _, in := range tx.TxIn {
		if in.PreviousOutPoint.IsNull() {
			return ruleError(ErrBadTxInput, "non-coinbase transaction has null previous outpoint")
		}
		if _, ok := seen[in.PreviousOutPoint]; ok {
			return ruleError(ErrDuplicateTxInputs, "transaction spends the same outpoint twice")
		}
		seen[in.PreviousOutPoint] = struct{}{}
	}

	return nil
}

// BlockValue computes the coinbase subsidy due at height, including fees
// (§4.3.2): `(50*Coin >> (height / SubsidyHalvingInterval)) + fees`.
func BlockValue(height int32, fees int64, halvingInterval int32) int64 {
	subsidy := int64(50 * Coin)
	halvings := height / halvingInterval
	if halvings >= 64 {
		return fees
	}
	subsidy >>= uint(halvings)
	return subsidy + fees
}

// CheckBlockSanity performs the context-free half of CheckBlock (§4.3):
// serialized size, timestamp vs. the network-adjusted clock, a unique
// leading coinbase, per-transaction CheckTransaction, target bounds, the
// proof-of-work hash inequality, and the committed merkle root.
func CheckBlockSanity(block *wire.MsgBlock, powLimit *big.Int, adjustedTime time.Time) error {
	if block.SerializeSize() > MaxBlockSize {
		return ruleError(ErrBlockTooBig, "serialized block is too big")
	}

	if block.Header.Timestamp.After(adjustedTime.Add(maxTimeOffset)) {
		return ruleError(ErrTimeTooNew, "block timestamp is too far in the future")
	}

	transactions := block.Transactions
	if len(transactions) == 0 {
		return ruleError(ErrNoTransactions, "block has no transactions")
	}
	if !IsCoinBase(transactions[0]) {
		return ruleError(ErrFirstTxNotCoinbase, "first transaction in block is not a coinbase")
	}
	for _, tx := range transactions[1:] {
		if IsCoinBase(tx) {
			return ruleError(ErrMultipleCoinbases, "block contains more than one coinbase transaction")
		}
	}
	for _, tx := range transactions {
		if err := CheckTransaction(tx); err != nil {
			return err
		}
	}

	target := CompactToBig(block.Header.Bits)
	if target.Sign() <= 0 {
		return ruleError(ErrUnexpectedDifficulty, "block target difficulty is non-positive")
	}
	if target.Cmp(powLimit) > 0 {
		return ruleError(ErrUnexpectedDifficulty, "block target difficulty is higher than max of network")
	}
	hash := block.BlockHash()
	hashNum := HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		return ruleError(ErrHighHash, "block hash is higher than expected target")
	}

	calculated := CalcMerkleRoot(transactions)
	if calculated != block.Header.MerkleRoot {
		return ruleError(ErrBadMerkleRoot, "block merkle root does not match computed value")
	}

	return nil
}
