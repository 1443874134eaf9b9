// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/talusnet/talusd/chainhash"
)

// MaxBlockHeaderPayload is the number of bytes a block header occupies: the
// fixed 80-byte header of §6 (version 4 + prev 32 + merkle root 32 +
// timestamp 4 + bits 4 + nonce 4).
const MaxBlockHeaderPayload = 4 + (chainhash.HashSize * 2) + 4 + 4 + 4

// BlockHeaderLen is the exact length of the serialized block header.
const BlockHeaderLen = 80

// BlockHeader defines information about a block and is used in the block
// (MsgBlock) and headers (MsgHeaders) messages, per §3/§6.
type BlockHeader struct {
	// Version of the block. Not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created, encoded on the wire as a uint32
	// unix-seconds value.
	Timestamp time.Time

	// Compact encoding of the proof-of-work target (§6).
	Bits uint32

	// Nonce used to satisfy the proof-of-work.
	Nonce uint32
}

// BlockHash computes the block identifier hash: the double-SHA-256 of the
// fixed 80-byte header (§3, §6).
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, 0, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

// FlcDecode decodes r using the protocol encoding into the receiver.
func (h *BlockHeader) FlcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	return readBlockHeader(r, pver, h)
}

// FlcEncode encodes the receiver to w using the protocol encoding.
func (h *BlockHeader) FlcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	return writeBlockHeader(w, pver, h)
}

// Deserialize decodes a block header from r into the receiver using the
// long-term storage format (identical to the wire encoding).
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, 0, h)
}

// Serialize encodes the receiver to w using the long-term storage format.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, 0, h)
}

// Bytes returns the 80-byte serialized form of the header.
func (h *BlockHeader) Bytes() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	if err := h.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewBlockHeader returns a new BlockHeader using the provided fields. The
// caller is expected to set Timestamp separately (it is derived from
// GetMedianTimePast/AdjustedTime, not a static default).
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits uint32, nonce uint32) *BlockHeader {

	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Bits:       bits,
		Nonce:      nonce,
	}
}

func readBlockHeader(r io.Reader, pver uint32, bh *BlockHeader) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)
	return readBlockHeaderBuf(r, pver, bh, buf)
}

func readBlockHeaderBuf(r io.Reader, pver uint32, bh *BlockHeader, buf []byte) error {
	version, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	bh.Version = int32(version)

	if err := readElement(r, &bh.PrevBlock); err != nil {
		return err
	}
	if err := readElement(r, &bh.MerkleRoot); err != nil {
		return err
	}
	if err := readElement(r, &bh.Timestamp); err != nil {
		return err
	}

	bits, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	bh.Bits = bits

	nonce, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	bh.Nonce = nonce

	return nil
}

func writeBlockHeader(w io.Writer, pver uint32, bh *BlockHeader) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)
	return writeBlockHeaderBuf(w, pver, bh, buf)
}

func writeBlockHeaderBuf(w io.Writer, pver uint32, bh *BlockHeader, buf []byte) error {
	if err := binarySerializer.PutUint32(w, littleEndian, uint32(bh.Version)); err != nil {
		return err
	}
	if err := writeElement(w, bh.PrevBlock); err != nil {
		return err
	}
	if err := writeElement(w, bh.MerkleRoot); err != nil {
		return err
	}
	if err := writeElement(w, bh.Timestamp); err != nil {
		return err
	}
	if err := binarySerializer.PutUint32(w, littleEndian, bh.Bits); err != nil {
		return err
	}
	return binarySerializer.PutUint32(w, littleEndian, bh.Nonce)
}
