// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"

	"github.com/talusnet/talusd/chainhash"
)

const (
	// TxVersion is the current latest supported transaction version.
	TxVersion = 1

	// MaxTxInSequenceNum is the maximum sequence number a TxIn can hold.
	// A value of MaxTxInSequenceNum marks the input, and thus the
	// transaction as a whole, as "final" per §3.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index a transaction output, and
	// hence an outpoint, can reference.
	MaxPrevOutIndex uint32 = 0xffffffff

	// maxTxInPerMessage / maxTxOutPerMessage keep decode allocation bounded.
	maxTxInPerMessage  = (MaxMessagePayload / 41) + 1
	maxTxOutPerMessage = (MaxMessagePayload / 9) + 1
	// MaxScriptSize is the maximum allowed length of a raw script.
	MaxScriptSize = 10000
)

// OutPoint defines a talus data type that is used to track previous
// transaction outputs. The "null" outpoint — hash all-zero, index
// 0xFFFFFFFF — denotes a coinbase input (§3).
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new talus transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// IsNull returns whether op is the sentinel coinbase outpoint.
func (op *OutPoint) IsNull() bool {
	return op.Index == MaxPrevOutIndex && op.Hash == (chainhash.Hash{})
}

// String returns the OutPoint in the human-readable form "hash:index".
func (op OutPoint) String() string {
	return fmt.Sprintf("%s:%d", op.Hash.String(), op.Index)
}

// TxIn defines a talus transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// IsFinal reports whether this input's sequence number marks it as final
// (unreplaceable), per §3.
func (t *TxIn) IsFinal() bool {
	return t.Sequence == MaxTxInSequenceNum
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return 40 + VarIntSerializeSize(uint64(len(t.SignatureScript))) +
		len(t.SignatureScript)
}

// NewTxIn returns a new talus transaction input with the provided
// previous outpoint point and signature script with a default sequence of
// MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a talus transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// NewTxOut returns a new talus transaction output with the provided
// transaction value and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx implements the Message interface and represents a talus tx
// message, the on-the-wire and on-disk form of a Transaction (§3).
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// TxHash computes the double-SHA-256 hash of the transaction's canonical
// serialization, the `hash(T)` of §3.
func (msg *MsgTx) TxHash() chainhash.Hash {
	b := bytes.NewBuffer(make([]byte, 0, msg.SerializeSize()))
	_ = msg.Serialize(b)
	return chainhash.DoubleHashH(b.Bytes())
}

// IsCoinBase determines whether T is a coinbase transaction per §3: exactly
// one input, whose outpoint is null.
func (msg *MsgTx) IsCoinBase() bool {
	return len(msg.TxIn) == 1 && msg.TxIn[0].PreviousOutPoint.IsNull()
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction.
func (msg *MsgTx) SerializeSize() int {
	n := 8 // version(4) + locktime(4)
	n += VarIntSerializeSize(uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		n += ti.SerializeSize()
	}
	n += VarIntSerializeSize(uint64(len(msg.TxOut)))
	for _, to := range msg.TxOut {
		n += to.SerializeSize()
	}
	return n
}

// FlcDecode decodes r using the talus protocol encoding into the
// receiver. This implements the canonical §6 transaction serialization:
// version(4) ∥ varint(|vin|) ∥ vin[] ∥ varint(|vout|) ∥ vout[] ∥ locktime(4).
func (msg *MsgTx) FlcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	version, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	msg.Version = int32(version)

	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	txInCount, err := ReadVarIntBuf(r, pver, buf)
	if err != nil {
		return err
	}
	if txInCount > maxTxInPerMessage {
		return messageError("MsgTx.FlcDecode", fmt.Sprintf(
			"too many input transactions to fit into max message size "+
				"[count %d, max %d]", txInCount, maxTxInPerMessage))
	}

	txIns := make([]TxIn, txInCount)
	msg.TxIn = make([]*TxIn, txInCount)
	for i := uint64(0); i < txInCount; i++ {
		ti := &txIns[i]
		msg.TxIn[i] = ti
		if err := readTxIn(r, pver, ti); err != nil {
			return err
		}
	}

	txOutCount, err := ReadVarIntBuf(r, pver, buf)
	if err != nil {
		return err
	}
	if txOutCount > maxTxOutPerMessage {
		return messageError("MsgTx.FlcDecode", fmt.Sprintf(
			"too many output transactions to fit into max message size "+
				"[count %d, max %d]", txOutCount, maxTxOutPerMessage))
	}

	txOuts := make([]TxOut, txOutCount)
	msg.TxOut = make([]*TxOut, txOutCount)
	for i := uint64(0); i < txOutCount; i++ {
		to := &txOuts[i]
		msg.TxOut[i] = to
		if err := readTxOut(r, pver, to); err != nil {
			return err
		}
	}

	lockTime, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	msg.LockTime = lockTime

	return nil
}

// FlcEncode encodes the receiver to w using the talus protocol encoding.
func (msg *MsgTx) FlcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	if err := binarySerializer.PutUint32(w, littleEndian, uint32(msg.Version)); err != nil {
		return err
	}

	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	if err := WriteVarIntBuf(w, pver, uint64(len(msg.TxIn)), buf); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if err := writeTxIn(w, pver, ti); err != nil {
			return err
		}
	}

	if err := WriteVarIntBuf(w, pver, uint64(len(msg.TxOut)), buf); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeTxOut(w, pver, to); err != nil {
			return err
		}
	}

	return binarySerializer.PutUint32(w, littleEndian, msg.LockTime)
}

// Serialize encodes the transaction to w for long-term storage, identical
// to the wire encoding (there is no witness/segwit split in this protocol).
func (msg *MsgTx) Serialize(w io.Writer) error {
	return msg.FlcEncode(w, 0, BaseEncoding)
}

// Deserialize decodes a transaction from r into the receiver.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	return msg.FlcDecode(r, 0, BaseEncoding)
}

// Copy creates a deep copy of the transaction, used by SignatureHash which
// must mutate a scratch copy without disturbing the original (§4.1).
func (msg *MsgTx) Copy() *MsgTx {
	newTx := MsgTx{
		Version:  msg.Version,
		TxIn:     make([]*TxIn, 0, len(msg.TxIn)),
		TxOut:    make([]*TxOut, 0, len(msg.TxOut)),
		LockTime: msg.LockTime,
	}

	for _, oldTxIn := range msg.TxIn {
		sigScript := make([]byte, len(oldTxIn.SignatureScript))
		copy(sigScript, oldTxIn.SignatureScript)

		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  sigScript,
			Sequence:         oldTxIn.Sequence,
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	for _, oldTxOut := range msg.TxOut {
		pkScript := make([]byte, len(oldTxOut.PkScript))
		copy(pkScript, oldTxOut.PkScript)

		newTxOut := TxOut{
			Value:    oldTxOut.Value,
			PkScript: pkScript,
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

// Command returns the protocol command string for the message.
func (msg *MsgTx) Command() string {
	return CmdTx
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.
func (msg *MsgTx) MaxPayloadLength(pver uint32) uint32 {
	return MaxMessagePayload
}

// NewMsgTx returns a new talus tx message that conforms to the Message
// interface.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{
		Version: version,
		TxIn:    make([]*TxIn, 0, defaultTxInOutAlloc),
		TxOut:   make([]*TxOut, 0, defaultTxInOutAlloc),
	}
}

const defaultTxInOutAlloc = 4

func readTxIn(r io.Reader, pver uint32, ti *TxIn) error {
	if err := readOutPoint(r, pver, &ti.PreviousOutPoint); err != nil {
		return err
	}

	sigScript, err := ReadVarBytes(r, pver, MaxScriptSize, "transaction input signature script")
	if err != nil {
		return err
	}
	ti.SignatureScript = sigScript

	seq, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	ti.Sequence = seq
	return nil
}

func writeTxIn(w io.Writer, pver uint32, ti *TxIn) error {
	if err := writeOutPoint(w, pver, &ti.PreviousOutPoint); err != nil {
		return err
	}
	if err := WriteVarBytes(w, pver, ti.SignatureScript); err != nil {
		return err
	}
	return binarySerializer.PutUint32(w, littleEndian, ti.Sequence)
}

func readTxOut(r io.Reader, pver uint32, to *TxOut) error {
	value, err := binarySerializer.Uint64(r, littleEndian)
	if err != nil {
		return err
	}
	to.Value = int64(value)

	pkScript, err := ReadVarBytes(r, pver, MaxScriptSize, "transaction output public key script")
	if err != nil {
		return err
	}
	to.PkScript = pkScript
	return nil
}

func writeTxOut(w io.Writer, pver uint32, to *TxOut) error {
	if err := binarySerializer.PutUint64(w, littleEndian, uint64(to.Value)); err != nil {
		return err
	}
	return WriteVarBytes(w, pver, to.PkScript)
}

func readOutPoint(r io.Reader, pver uint32, op *OutPoint) error {
	if _, err := io.ReadFull(r, op.Hash[:]); err != nil {
		return err
	}
	index, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	op.Index = index
	return nil
}

func writeOutPoint(w io.Writer, pver uint32, op *OutPoint) error {
	if _, err := w.Write(op.Hash[:]); err != nil {
		return err
	}
	return binarySerializer.PutUint32(w, littleEndian, op.Index)
}
