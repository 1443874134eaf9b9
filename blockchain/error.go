// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "fmt"

// AssertError identifies an error that indicates an internal code
// consistency issue and should therefore be treated as a critical and
// unrecoverable error.
type AssertError string

func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// ErrorCode identifies a kind of validation failure.
type ErrorCode int

const (
	// ErrDuplicateBlock indicates a block is already known, either on
	// the main chain, a side chain, or as an orphan.
	ErrDuplicateBlock ErrorCode = iota

	// ErrBlockTooBig indicates the serialized size of a block exceeds
	// MaxBlockSize.
	ErrBlockTooBig

	// ErrBlockVersionTooOld indicates the block version is not
	// recognized.
	ErrBlockVersionTooOld

	// ErrTimeTooNew indicates the block timestamp is too far in the
	// future relative to the network-adjusted time.
	ErrTimeTooNew

	// ErrTimeTooOld indicates the block timestamp is not greater than
	// the median of the past 11 blocks.
	ErrTimeTooOld

	// ErrNoTransactions indicates a block does not contain any
	// transactions.
	ErrNoTransactions

	// ErrFirstTxNotCoinbase indicates the first transaction in a block
	// is not a coinbase transaction.
	ErrFirstTxNotCoinbase

	// ErrMultipleCoinbases indicates a block contains more than one
	// coinbase transaction.
	ErrMultipleCoinbases

	// ErrBadMerkleRoot indicates the calculated merkle root does not
	// match the one in the block header.
	ErrBadMerkleRoot

	// ErrUnexpectedDifficulty indicates the difficulty for a block does
	// not match the expected retargeted value.
	ErrUnexpectedDifficulty

	// ErrHighHash indicates the block hash is higher than the allowed
	// target for the block.
	ErrHighHash

	// ErrNoTxInputs indicates a transaction does not have any inputs.
	ErrNoTxInputs

	// ErrNoTxOutputs indicates a transaction does not have any outputs.
	ErrNoTxOutputs

	// ErrBadTxOutValue indicates an output value is negative or the
	// total exceeds the maximum allowed.
	ErrBadTxOutValue

	// ErrDuplicateTxInputs indicates a transaction references the same
	// previous output more than once.
	ErrDuplicateTxInputs

	// ErrBadTxInput indicates a transaction contains a null previous
	// outpoint outside of a coinbase.
	ErrBadTxInput

	// ErrBadCoinbaseScriptLen indicates a coinbase's signature script
	// length is not between 2 and 100 bytes.
	ErrBadCoinbaseScriptLen

	// ErrMissingTxOut indicates a transaction input references a
	// previous output that can not be found.
	ErrMissingTxOut

	// ErrImmatureSpend indicates a transaction attempts to spend a
	// coinbase output before it has reached the required maturity.
	ErrImmatureSpend

	// ErrDoubleSpend indicates a transaction attempts to spend a
	// previous output that is already spent.
	ErrDoubleSpend

	// ErrSpendTooHigh indicates a transaction's total input amount is
	// less than the total output amount.
	ErrSpendTooHigh

	// ErrBadFee indicates a transaction's fee is less than the minimum
	// required.
	ErrBadFee

	// ErrScriptVerifyFailed indicates a transaction input's script did
	// not evaluate to true.
	ErrScriptVerifyFailed

	// ErrBadCoinbaseValue indicates a coinbase pays out more than the
	// allowed subsidy plus fees.
	ErrBadCoinbaseValue

	// ErrMissingParent indicates the previous block referenced by a
	// block is not known, so the block has been orphaned.
	ErrMissingParent
)

var errorCodeStrings = map[ErrorCode]string{
	ErrDuplicateBlock:       "ErrDuplicateBlock",
	ErrBlockTooBig:          "ErrBlockTooBig",
	ErrBlockVersionTooOld:   "ErrBlockVersionTooOld",
	ErrTimeTooNew:           "ErrTimeTooNew",
	ErrTimeTooOld:           "ErrTimeTooOld",
	ErrNoTransactions:       "ErrNoTransactions",
	ErrFirstTxNotCoinbase:   "ErrFirstTxNotCoinbase",
	ErrMultipleCoinbases:    "ErrMultipleCoinbases",
	ErrBadMerkleRoot:        "ErrBadMerkleRoot",
	ErrUnexpectedDifficulty: "ErrUnexpectedDifficulty",
	ErrHighHash:             "ErrHighHash",
	ErrNoTxInputs:           "ErrNoTxInputs",
	ErrNoTxOutputs:          "ErrNoTxOutputs",
	ErrBadTxOutValue:        "ErrBadTxOutValue",
	ErrDuplicateTxInputs:    "ErrDuplicateTxInputs",
	ErrBadTxInput:           "ErrBadTxInput",
	ErrBadCoinbaseScriptLen: "ErrBadCoinbaseScriptLen",
	ErrMissingTxOut:         "ErrMissingTxOut",
	ErrImmatureSpend:        "ErrImmatureSpend",
	ErrDoubleSpend:          "ErrDoubleSpend",
	ErrSpendTooHigh:         "ErrSpendTooHigh",
	ErrBadFee:               "ErrBadFee",
	ErrScriptVerifyFailed:   "ErrScriptVerifyFailed",
	ErrBadCoinbaseValue:     "ErrBadCoinbaseValue",
	ErrMissingParent:        "ErrMissingParent",
}

func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a rule violation encountered while validating a
// block or transaction. It always carries an ErrorCode so callers can
// switch on the failure kind without string matching.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

func (e RuleError) Error() string {
	return e.Description
}

func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
