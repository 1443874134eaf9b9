// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// ErrorCode identifies a kind of script execution or construction error.
type ErrorCode int

const (
	// ErrInternal is returned when something internal to the package
	// fails in a way that should never happen under normal use.
	ErrInternal ErrorCode = iota

	// ErrEarlyReturn is returned when OP_RETURN is executed.
	ErrEarlyReturn

	// ErrEmptyStack names a stack underflow. The engine does not return
	// it: popping or peeking past the bottom of the stack reports
	// ErrInvalidStackOperation.
	ErrEmptyStack

	// ErrInvalidStackOperation is returned when a stack operation (e.g.
	// OP_PICK) refers to an element outside the stack's bounds.
	ErrInvalidStackOperation

	// ErrStackOverflow is returned when the combined main and alt stack
	// sizes exceed maxStackSize.
	ErrStackOverflow

	// ErrElementTooBig is returned when a data push is longer than
	// maxScriptElementSize.
	ErrElementTooBig

	// ErrTooManyOperations is returned when a script contains more than
	// maxOpsPerScript non-push opcodes.
	ErrTooManyOperations

	// ErrUnbalancedConditional is returned when an OP_ELSE or OP_ENDIF is
	// encountered without a matching OP_IF/OP_NOTIF, or a script ends
	// with an open conditional.
	ErrUnbalancedConditional

	// ErrOpcodeDisabled is returned when a disabled opcode is executed.
	ErrOpcodeDisabled

	// ErrReservedOpcode is returned when a reserved opcode is executed.
	ErrReservedOpcode

	// ErrVerifyFailed is returned when OP_VERIFY finds a false value on
	// the stack.
	ErrVerifyFailed

	// ErrEqualVerify is returned when OP_EQUALVERIFY finds unequal
	// values.
	ErrEqualVerify

	// ErrNumEqualVerify is returned when OP_NUMEQUALVERIFY finds unequal
	// numbers.
	ErrNumEqualVerify

	// ErrCheckSigVerify is returned when OP_CHECKSIGVERIFY's signature
	// check fails.
	ErrCheckSigVerify

	// ErrEvalFalse is returned when a script finishes execution with a
	// false (or empty) value on top of the stack.
	ErrEvalFalse

	// ErrScriptUnfinished is returned when an opcode's data push runs
	// past the end of the script.
	ErrScriptUnfinished

	// ErrNumberTooBig is returned when a numeric opcode operand, decoded
	// minimally, is longer than the requested numLen.
	ErrNumberTooBig

	// ErrMinimalData is returned when a numeric operand is not minimally
	// encoded and minimal encoding was required.
	ErrMinimalData

	// ErrInvalidPubKeyCount is returned when CHECKMULTISIG's declared
	// public key count is out of range.
	ErrInvalidPubKeyCount

	// ErrInvalidSignatureCount is returned when CHECKMULTISIG's declared
	// signature count is out of range or exceeds the public key count.
	ErrInvalidSignatureCount

	// ErrPubKeyFormat is returned when a serialized public key can not be
	// parsed.
	ErrPubKeyFormat

	// ErrUnsupportedAddress is returned when PayToAddrScript is given an
	// address type this package has no locking-script template for.
	ErrUnsupportedAddress
)

var errorCodeStrings = map[ErrorCode]string{
	ErrInternal:               "ErrInternal",
	ErrEarlyReturn:            "ErrEarlyReturn",
	ErrEmptyStack:             "ErrEmptyStack",
	ErrInvalidStackOperation:  "ErrInvalidStackOperation",
	ErrStackOverflow:          "ErrStackOverflow",
	ErrElementTooBig:          "ErrElementTooBig",
	ErrTooManyOperations:      "ErrTooManyOperations",
	ErrUnbalancedConditional:  "ErrUnbalancedConditional",
	ErrOpcodeDisabled:         "ErrOpcodeDisabled",
	ErrReservedOpcode:         "ErrReservedOpcode",
	ErrVerifyFailed:           "ErrVerifyFailed",
	ErrEqualVerify:            "ErrEqualVerify",
	ErrNumEqualVerify:         "ErrNumEqualVerify",
	ErrCheckSigVerify:         "ErrCheckSigVerify",
	ErrEvalFalse:              "ErrEvalFalse",
	ErrScriptUnfinished:       "ErrScriptUnfinished",
	ErrNumberTooBig:           "ErrNumberTooBig",
	ErrMinimalData:            "ErrMinimalData",
	ErrInvalidPubKeyCount:     "ErrInvalidPubKeyCount",
	ErrInvalidSignatureCount:  "ErrInvalidSignatureCount",
	ErrPubKeyFormat:           "ErrPubKeyFormat",
	ErrUnsupportedAddress:     "ErrUnsupportedAddress",
}

func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("unknown ErrorCode (%d)", int(e))
}

// Error identifies an error encountered while parsing, executing, or
// constructing a script. It carries an ErrorCode so callers can switch on
// the failure kind without string matching.
type Error struct {
	ErrorCode   ErrorCode
	Description string
}

func (e Error) Error() string {
	return e.Description
}

func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether err is a txscript.Error carrying code c.
func IsErrorCode(err error, c ErrorCode) bool {
	serr, ok := err.(Error)
	return ok && serr.ErrorCode == c
}
