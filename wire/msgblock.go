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

// defaultTransactionAlloc is the default size used for the backing array
// for transactions.  The transaction array will dynamically grow as needed,
// but this figure is intended to provide enough space for the number of
// transactions in the vast majority of blocks without needing to grow the
// backing array multiple times.
const defaultTransactionAlloc = 2048

// MaxBlocksPerMsg is the maximum number of blocks allowed per message.
const MaxBlocksPerMsg = 500

// MaxBlockPayload is the maximum bytes a block message can be in bytes, per
// the §6 framing bound.
const MaxBlockPayload = 32 * 1024 * 1024

// maxTxPerBlock bounds the number of transactions read out of a block
// message so decoding a corrupt length prefix can't allocate unbounded
// memory; derived from the smallest possible serialized transaction.
const maxTxPerBlock = (MaxBlockPayload / 61) + 1

// TxLoc holds locator data for the offset and length of where a transaction
// is located within a raw block so that later processing (e.g. the tx index)
// can look it up without re-serializing.
type TxLoc struct {
	TxStart int
	TxLen   int
}

// MsgBlock implements the Message interface and represents a talus block
// message, per §3/§6.  It is used to deliver block and transaction
// information in response to a getdata message (MsgGetData).
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) error {
	msg.Transactions = append(msg.Transactions, tx)
	return nil
}

// ClearTransactions removes all transactions from the message.
func (msg *MsgBlock) ClearTransactions() {
	msg.Transactions = make([]*MsgTx, 0, defaultTransactionAlloc)
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// FlcDecode decodes r using the talus protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgBlock) FlcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	if err := readBlockHeader(r, pver, &msg.Header); err != nil {
		return err
	}

	txCount, err := ReadVarInt(r, pver)
	if err != nil {
		return err
	}

	if txCount > uint64(maxTxPerBlock) {
		str := fmt.Sprintf("too many transactions to fit into a block [%v]", txCount)
		return messageError("MsgBlock.FlcDecode", str)
	}

	msg.Transactions = make([]*MsgTx, 0, txCount)
	for i := uint64(0); i < txCount; i++ {
		tx := MsgTx{}
		if err := tx.FlcDecode(r, pver, enc); err != nil {
			return err
		}
		msg.Transactions = append(msg.Transactions, &tx)
	}

	return nil
}

// FlcEncode encodes the receiver to w using the talus protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgBlock) FlcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	if err := writeBlockHeader(w, pver, &msg.Header); err != nil {
		return err
	}

	if err := WriteVarInt(w, pver, uint64(len(msg.Transactions))); err != nil {
		return err
	}

	for _, tx := range msg.Transactions {
		if err := tx.FlcEncode(w, pver, enc); err != nil {
			return err
		}
	}

	return nil
}

// Deserialize decodes a block from r into the receiver using the long-term
// storage format (identical to the wire encoding, pinned at BaseEncoding).
func (msg *MsgBlock) Deserialize(r io.Reader) error {
	return msg.FlcDecode(r, 0, BaseEncoding)
}

// Serialize encodes the receiver to w using the long-term storage format.
func (msg *MsgBlock) Serialize(w io.Writer) error {
	return msg.FlcEncode(w, 0, BaseEncoding)
}

// SerializeSize returns the number of bytes it would take to serialize the
// block.
func (msg *MsgBlock) SerializeSize() int {
	n := BlockHeaderLen + VarIntSerializeSize(uint64(len(msg.Transactions)))
	for _, tx := range msg.Transactions {
		n += tx.SerializeSize()
	}
	return n
}

// Bytes returns the serialized form of the block.
func (msg *MsgBlock) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(msg.SerializeSize())
	if err := msg.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgBlock) Command() string {
	return CmdBlock
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgBlock) MaxPayloadLength(pver uint32) uint32 {
	return MaxBlockPayload
}

// NewMsgBlock returns a new talus block message that conforms to the Message
// interface using the provided header and defaults for the remaining fields.
func NewMsgBlock(blockHeader *BlockHeader) *MsgBlock {
	return &MsgBlock{
		Header:       *blockHeader,
		Transactions: make([]*MsgTx, 0, defaultTransactionAlloc),
	}
}
