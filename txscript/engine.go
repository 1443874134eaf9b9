// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"bytes"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// maxOpsPerScript bounds the number of non-push opcodes a script may
// execute, guarding against pathological scripts (§4.1).
const maxOpsPerScript = 201

// Engine holds the execution state for one EvalScript run: the combined
// signature+public-key script, the spending transaction and input index it
// is evaluated against, and the stacks it operates on.
type Engine struct {
	scripts [][]parsedOpcode
	tx      *wire.MsgTx
	txIdx   int

	stack    stack
	astack   stack
	condStack []bool
	numOps    int

	scriptCode []byte // the currently executing script, for OP_CODESEPARATOR
}

// NewEngine parses sigScript and pkScript and readies an Engine to execute
// them in sequence against tx's input at txIdx (§4.1 EvalScript).
func NewEngine(sigScript, pkScript []byte, tx *wire.MsgTx, txIdx int) (*Engine, error) {
	sigParsed, err := parseScript(sigScript)
	if err != nil {
		return nil, err
	}
	pkParsed, err := parseScript(pkScript)
	if err != nil {
		return nil, err
	}

	for _, op := range sigParsed {
		if op.alwaysIllegal() {
			return nil, scriptError(ErrReservedOpcode, "signature script contains an illegal opcode")
		}
	}

	return &Engine{
		scripts: [][]parsedOpcode{sigParsed, pkParsed},
		tx:      tx,
		txIdx:   txIdx,
	}, nil
}

// Execute runs both the signature and public-key scripts in sequence and
// reports whether the script evaluated to true, per §4.1's requirement
// that the combined script "results in a true value on top of the stack".
func (e *Engine) Execute() error {
	for _, parsed := range e.scripts {
		e.scriptCode = unparseScript(parsed)
		if err := e.executeScript(parsed); err != nil {
			return err
		}
	}

	if len(e.condStack) != 0 {
		return scriptError(ErrUnbalancedConditional, "script ended with unterminated conditional")
	}
	if e.stack.Depth() < 1 {
		return scriptError(ErrEvalFalse, "script evaluated without error but finished with an empty stack")
	}
	v, err := e.stack.PeekBool(0)
	if err != nil {
		return err
	}
	if !v {
		return scriptError(ErrEvalFalse, "script evaluated to false")
	}
	return nil
}

func unparseScript(parsed []parsedOpcode) []byte {
	var out []byte
	for _, op := range parsed {
		out = append(out, unparseOpcode(op)...)
	}
	return out
}

func (e *Engine) executeScript(parsed []parsedOpcode) error {
	for i := 0; i < len(parsed); i++ {
		op := parsed[i]

		executing := e.shouldExecute()

		if op.alwaysIllegal() {
			return scriptError(ErrReservedOpcode, "attempt to execute reserved opcode")
		}

		if !executing && !op.isConditional() {
			continue
		}

		if op.isDisabled() {
			return scriptError(ErrOpcodeDisabled, "attempt to execute disabled opcode")
		}

		if op.opcode > OP_16 && op.opcode != OP_CODESEPARATOR {
			e.numOps++
			if e.numOps > maxOpsPerScript {
				return scriptError(ErrTooManyOperations, "exceeded max operation limit")
			}
		}

		if len(op.data) > maxScriptElementSize {
			return scriptError(ErrElementTooBig, "element exceeds max allowed size")
		}

		if !executing && op.isConditional() {
			if err := e.step(op); err != nil {
				return err
			}
			continue
		}

		if op.opcode == OP_CODESEPARATOR {
			e.scriptCode = unparseScript(parsed[i+1:])
		}

		if err := e.step(op); err != nil {
			return err
		}

		if e.stack.Depth()+e.astack.Depth() > maxStackSize {
			return scriptError(ErrStackOverflow, "combined stack size exceeds limit")
		}
	}
	return nil
}

func (e *Engine) shouldExecute() bool {
	for _, v := range e.condStack {
		if !v {
			return false
		}
	}
	return true
}

func (e *Engine) step(op parsedOpcode) error {
	if op.opcode >= 0x01 && op.opcode <= OP_PUSHDATA4 {
		if !e.shouldExecute() {
			return nil
		}
		e.stack.PushByteArray(op.data)
		return nil
	}

	switch op.opcode {
	case OP_0:
		if e.shouldExecute() {
			e.stack.PushByteArray(nil)
		}
	case OP_1NEGATE:
		e.pushIfExecuting(scriptNum(-1))
	case OP_1, OP_2, OP_3, OP_4, OP_5, OP_6, OP_7, OP_8,
		OP_9, OP_10, OP_11, OP_12, OP_13, OP_14, OP_15, OP_16:
		e.pushIfExecuting(scriptNum(int(op.opcode) - (OP_1 - 1)))

	case OP_NOP, OP_NOP1, OP_NOP2, OP_NOP3, OP_NOP4, OP_NOP5,
		OP_NOP6, OP_NOP7, OP_NOP8, OP_NOP9, OP_NOP10:
		// no-ops reserved for upgrades; ignored.

	case OP_IF, OP_NOTIF:
		return e.execBranch(op)
	case OP_ELSE:
		if len(e.condStack) == 0 {
			return scriptError(ErrUnbalancedConditional, "OP_ELSE without matching OP_IF")
		}
		e.condStack[len(e.condStack)-1] = !e.condStack[len(e.condStack)-1]
	case OP_ENDIF:
		if len(e.condStack) == 0 {
			return scriptError(ErrUnbalancedConditional, "OP_ENDIF without matching OP_IF")
		}
		e.condStack = e.condStack[:len(e.condStack)-1]

	case OP_VERIFY:
		if !e.shouldExecute() {
			return nil
		}
		v, err := e.stack.PopBool()
		if err != nil {
			return err
		}
		if !v {
			return scriptError(ErrVerifyFailed, "OP_VERIFY failed")
		}
	case OP_RETURN:
		if e.shouldExecute() {
			return scriptError(ErrEarlyReturn, "script called OP_RETURN")
		}

	case OP_TOALTSTACK:
		so, err := e.stack.PopByteArray()
		if err != nil {
			return err
		}
		e.astack.PushByteArray(so)
	case OP_FROMALTSTACK:
		so, err := e.astack.PopByteArray()
		if err != nil {
			return err
		}
		e.stack.PushByteArray(so)

	case OP_DROP:
		return e.stack.DropN(1)
	case OP_2DROP:
		return e.stack.DropN(2)
	case OP_DUP:
		return e.stack.DupN(1)
	case OP_2DUP:
		return e.stack.DupN(2)
	case OP_3DUP:
		return e.stack.DupN(3)
	case OP_IFDUP:
		v, err := e.stack.PeekBool(0)
		if err != nil {
			return err
		}
		if v {
			return e.stack.DupN(1)
		}
	case OP_DEPTH:
		e.stack.PushInt(scriptNum(e.stack.Depth()))
	case OP_NIP:
		_, err := e.stack.nipN(1)
		return err
	case OP_OVER:
		return e.stack.OverN(1)
	case OP_2OVER:
		return e.stack.OverN(2)
	case OP_PICK:
		n, err := e.stack.PopInt()
		if err != nil {
			return err
		}
		return e.stack.PickN(int(n.Int32()))
	case OP_ROLL:
		n, err := e.stack.PopInt()
		if err != nil {
			return err
		}
		return e.stack.RollN(int(n.Int32()))
	case OP_ROT:
		return e.stack.RotN(1)
	case OP_2ROT:
		return e.stack.RotN(2)
	case OP_SWAP:
		return e.stack.SwapN(1)
	case OP_2SWAP:
		return e.stack.SwapN(2)
	case OP_TUCK:
		return e.stack.Tuck()
	case OP_SIZE:
		so, err := e.stack.PeekByteArray(0)
		if err != nil {
			return err
		}
		e.stack.PushInt(scriptNum(len(so)))

	case OP_EQUAL, OP_EQUALVERIFY:
		a, err := e.stack.PopByteArray()
		if err != nil {
			return err
		}
		b, err := e.stack.PopByteArray()
		if err != nil {
			return err
		}
		equal := bytes.Equal(a, b)
		if op.opcode == OP_EQUALVERIFY {
			if !equal {
				return scriptError(ErrEqualVerify, "OP_EQUALVERIFY failed")
			}
			return nil
		}
		e.stack.PushBool(equal)

	case OP_1ADD, OP_1SUB, OP_NEGATE, OP_ABS, OP_NOT, OP_0NOTEQUAL:
		return e.execUnaryNum(op.opcode)
	case OP_ADD, OP_SUB, OP_BOOLAND, OP_BOOLOR, OP_NUMEQUAL, OP_NUMEQUALVERIFY,
		OP_NUMNOTEQUAL, OP_LESSTHAN, OP_GREATERTHAN, OP_LESSTHANOREQUAL,
		OP_GREATERTHANOREQUAL, OP_MIN, OP_MAX:
		return e.execBinaryNum(op.opcode)
	case OP_WITHIN:
		return e.execWithin()

	case OP_RIPEMD160:
		return e.execHash(func(b []byte) []byte { return chainhash.Ripemd160(b) })
	case OP_SHA1:
		return e.execHash(chainhash.Sha1)
	case OP_SHA256:
		return e.execHash(chainhash.HashB)
	case OP_HASH160:
		return e.execHash(chainhash.Hash160)
	case OP_HASH256:
		return e.execHash(chainhash.DoubleHashB)

	case OP_CODESEPARATOR:
		// executeScript has already narrowed scriptCode to the opcodes
		// after this separator; signature hashing then strips any
		// remaining separators via removeOpcode.

	case OP_CHECKSIG, OP_CHECKSIGVERIFY:
		return e.execCheckSig(op.opcode == OP_CHECKSIGVERIFY)
	case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return e.execCheckMultiSig(op.opcode == OP_CHECKMULTISIGVERIFY)

	case OP_RESERVED, OP_VER:
		return scriptError(ErrReservedOpcode, "attempt to execute reserved opcode")

	default:
		return scriptError(ErrInternal, "attempt to execute unknown opcode")
	}

	return nil
}

func (e *Engine) pushIfExecuting(n scriptNum) {
	if e.shouldExecute() {
		e.stack.PushInt(n)
	}
}

func (e *Engine) execBranch(op parsedOpcode) error {
	cond := false
	if e.shouldExecute() {
		v, err := e.stack.PopBool()
		if err != nil {
			return err
		}
		cond = v
		if op.opcode == OP_NOTIF {
			cond = !cond
		}
	}
	e.condStack = append(e.condStack, cond)
	return nil
}

func (e *Engine) execUnaryNum(opcode byte) error {
	n, err := e.stack.PopInt()
	if err != nil {
		return err
	}

	var result scriptNum
	switch opcode {
	case OP_1ADD:
		result = n + 1
	case OP_1SUB:
		result = n - 1
	case OP_NEGATE:
		result = -n
	case OP_ABS:
		if n < 0 {
			result = -n
		} else {
			result = n
		}
	case OP_NOT:
		if n == 0 {
			result = 1
		} else {
			result = 0
		}
	case OP_0NOTEQUAL:
		if n != 0 {
			result = 1
		} else {
			result = 0
		}
	}
	e.stack.PushInt(result)
	return nil
}

func (e *Engine) execBinaryNum(opcode byte) error {
	b, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	a, err := e.stack.PopInt()
	if err != nil {
		return err
	}

	var result scriptNum
	switch opcode {
	case OP_ADD:
		result = a + b
	case OP_SUB:
		result = a - b
	case OP_BOOLAND:
		result = boolNum(a != 0 && b != 0)
	case OP_BOOLOR:
		result = boolNum(a != 0 || b != 0)
	case OP_NUMEQUAL:
		result = boolNum(a == b)
	case OP_NUMEQUALVERIFY:
		if a != b {
			return scriptError(ErrNumEqualVerify, "OP_NUMEQUALVERIFY failed")
		}
		return nil
	case OP_NUMNOTEQUAL:
		result = boolNum(a != b)
	case OP_LESSTHAN:
		result = boolNum(a < b)
	case OP_GREATERTHAN:
		result = boolNum(a > b)
	case OP_LESSTHANOREQUAL:
		result = boolNum(a <= b)
	case OP_GREATERTHANOREQUAL:
		result = boolNum(a >= b)
	case OP_MIN:
		if a < b {
			result = a
		} else {
			result = b
		}
	case OP_MAX:
		if a > b {
			result = a
		} else {
			result = b
		}
	}
	e.stack.PushInt(result)
	return nil
}

func (e *Engine) execWithin() error {
	max, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	min, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	x, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	e.stack.PushBool(x >= min && x < max)
	return nil
}

func boolNum(v bool) scriptNum {
	if v {
		return 1
	}
	return 0
}

func (e *Engine) execHash(h func([]byte) []byte) error {
	so, err := e.stack.PopByteArray()
	if err != nil {
		return err
	}
	e.stack.PushByteArray(h(so))
	return nil
}

// execCheckSig implements OP_CHECKSIG/OP_CHECKSIGVERIFY (§4.1): pop a
// public key and a DER signature with a trailing hash-type byte, compute
// the transaction's signature hash under that hash type against the
// currently executing script, and verify.
func (e *Engine) execCheckSig(verify bool) error {
	pkBytes, err := e.stack.PopByteArray()
	if err != nil {
		return err
	}
	sigBytes, err := e.stack.PopByteArray()
	if err != nil {
		return err
	}

	valid := e.checkSig(sigBytes, pkBytes)
	if verify {
		if !valid {
			return scriptError(ErrCheckSigVerify, "OP_CHECKSIGVERIFY failed")
		}
		return nil
	}
	e.stack.PushBool(valid)
	return nil
}

func (e *Engine) checkSig(sigBytes, pkBytes []byte) bool {
	if len(sigBytes) == 0 {
		return false
	}
	hashType := uint32(sigBytes[len(sigBytes)-1])
	derSig := sigBytes[:len(sigBytes)-1]

	pubKey, err := secp256k1.ParsePubKey(pkBytes)
	if err != nil {
		return false
	}
	sig, err := ecdsa.ParseDERSignature(derSig)
	if err != nil {
		return false
	}

	hash := calcSignatureHash(e.scriptCode, hashType, e.tx, e.txIdx)
	return sig.Verify(hash[:], pubKey)
}

// execCheckMultiSig implements OP_CHECKMULTISIG/OP_CHECKMULTISIGVERIFY: m
// signatures must each match, in order, some subset (in order) of n
// public keys (§4.1). The extra stack item the original design consumes
// for an off-by-one bug is popped and discarded, matching upstream
// behavior relied on by existing multisig scripts.
func (e *Engine) execCheckMultiSig(verify bool) error {
	numKeys, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	n := int(numKeys.Int32())
	if n < 0 || n > 20 {
		return scriptError(ErrInvalidPubKeyCount, "OP_CHECKMULTISIG pubkey count out of range")
	}

	pubKeys := make([][]byte, n)
	for i := 0; i < n; i++ {
		pk, err := e.stack.PopByteArray()
		if err != nil {
			return err
		}
		pubKeys[i] = pk
	}

	numSigs, err := e.stack.PopInt()
	if err != nil {
		return err
	}
	m := int(numSigs.Int32())
	if m < 0 || m > n {
		return scriptError(ErrInvalidSignatureCount, "OP_CHECKMULTISIG signature count out of range")
	}

	sigs := make([][]byte, m)
	for i := 0; i < m; i++ {
		sig, err := e.stack.PopByteArray()
		if err != nil {
			return err
		}
		sigs[i] = sig
	}

	// Pop and discard the extra unused value the original bug requires
	// every CHECKMULTISIG invocation to supply.
	if _, err := e.stack.PopByteArray(); err != nil {
		return err
	}

	valid := true
	keyIdx := 0
	for _, sig := range sigs {
		matched := false
		for keyIdx < len(pubKeys) {
			pk := pubKeys[keyIdx]
			keyIdx++
			if e.checkSig(sig, pk) {
				matched = true
				break
			}
		}
		if !matched {
			valid = false
			break
		}
	}

	if verify {
		if !valid {
			return scriptError(ErrCheckSigVerify, "OP_CHECKMULTISIGVERIFY failed")
		}
		return nil
	}
	e.stack.PushBool(valid)
	return nil
}
