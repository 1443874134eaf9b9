// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"

	"github.com/talusnet/talusd/chainhash"
)

// InvType represents the allowed types of inventory vectors, per §4.8/§6.
type InvType uint32

// These constants define the possible types of inventory vectors advertised
// in an inv, getdata, or notfound message.
const (
	InvTypeError InvType = iota
	InvTypeTx
	InvTypeBlock
)

// invTypeStrings is a map of inventory vector types back to their constant
// names for pretty printing.
var invTypeStrings = map[InvType]string{
	InvTypeError: "ERROR",
	InvTypeTx:    "MSG_TX",
	InvTypeBlock: "MSG_BLOCK",
}

// String returns the InvType in human-readable form.
func (invtype InvType) String() string {
	if s, ok := invTypeStrings[invtype]; ok {
		return s
	}
	return fmt.Sprintf("Unknown InvType (%d)", uint32(invtype))
}

// InvVect defines an inventory vector which is used to describe data, as
// specified by the Type field, that a peer knows about or wants to know
// about.
type InvVect struct {
	Type InvType
	Hash chainhash.Hash
}

// NewInvVect returns a new InvVect using the provided type and hash.
func NewInvVect(typ InvType, hash *chainhash.Hash) *InvVect {
	return &InvVect{
		Type: typ,
		Hash: *hash,
	}
}

// readInvVectBuf reads an encoded InvVect from r, using buf as a scratch
// space.
func readInvVectBuf(r io.Reader, pver uint32, iv *InvVect, buf []byte) error {
	typ, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	iv.Type = InvType(typ)
	return readElement(r, &iv.Hash)
}

// writeInvVectBuf serializes iv to w, using buf as a scratch space.
func writeInvVectBuf(w io.Writer, pver uint32, iv *InvVect, buf []byte) error {
	err := binarySerializer.PutUint32(w, littleEndian, uint32(iv.Type))
	if err != nil {
		return err
	}
	_, err = w.Write(iv.Hash[:])
	return err
}
