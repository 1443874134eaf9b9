// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"
)

// MsgPong implements the Message interface and represents a talus pong
// message which is sent in response to a talus ping message.
//
// The payload for this message just consists of a nonce used to identify
// the ping that was responded to, mirroring the BIP0031Version gating of
// MsgPing.
type MsgPong struct {
	// Unique value associated with the ping message that this pong is
	// in response to.
	Nonce uint64
}

// FlcDecode decodes r using the talus protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgPong) FlcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	if pver > BIP0031Version {
		nonce, err := binarySerializer.Uint64(r, littleEndian)
		if err != nil {
			return err
		}
		msg.Nonce = nonce
	}

	return nil
}

// FlcEncode encodes the receiver to w using the talus protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgPong) FlcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	if pver > BIP0031Version {
		err := binarySerializer.PutUint64(w, littleEndian, msg.Nonce)
		if err != nil {
			return err
		}
	}

	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgPong) Command() string {
	return CmdPong
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgPong) MaxPayloadLength(pver uint32) uint32 {
	plen := uint32(0)
	if pver > BIP0031Version {
		plen += 8
	}
	return plen
}

// NewMsgPong returns a new talus pong message that conforms to the Message
// interface.  See MsgPong for details.
func NewMsgPong(nonce uint64) *MsgPong {
	return &MsgPong{
		Nonce: nonce,
	}
}
