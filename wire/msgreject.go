// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"io"

	"github.com/talusnet/talusd/chainhash"
)

// RejectCode represents a numeric value by which a remote peer indicates why
// a message was rejected, gated behind RejectVersion.
type RejectCode uint8

// These constants define the various supported reject codes.
const (
	RejectMalformed       RejectCode = 0x01
	RejectInvalid         RejectCode = 0x10
	RejectObsolete        RejectCode = 0x11
	RejectDuplicate       RejectCode = 0x12
	RejectNonStandard     RejectCode = 0x40
	RejectDust            RejectCode = 0x41
	RejectInsufficientFee RejectCode = 0x42
	RejectCheckpoint      RejectCode = 0x43
)

// rejectCodeStrings is a map of reject codes back to their constant names
// for pretty printing.
var rejectCodeStrings = map[RejectCode]string{
	RejectMalformed:       "REJECT_MALFORMED",
	RejectInvalid:         "REJECT_INVALID",
	RejectObsolete:        "REJECT_OBSOLETE",
	RejectDuplicate:       "REJECT_DUPLICATE",
	RejectNonStandard:     "REJECT_NONSTANDARD",
	RejectDust:            "REJECT_DUST",
	RejectInsufficientFee: "REJECT_INSUFFICIENTFEE",
	RejectCheckpoint:      "REJECT_CHECKPOINT",
}

// String returns the RejectCode in human-readable form.
func (code RejectCode) String() string {
	if s, ok := rejectCodeStrings[code]; ok {
		return s
	}
	return "Unknown RejectCode"
}

// MsgReject implements the Message interface and represents a talus reject
// message, sent by a peer to notify another that a message it sent was
// rejected, and why.  Only valid for RejectVersion and above.
type MsgReject struct {
	// Cmd is the command of the message that was rejected, e.g. "tx" or
	// "block".
	Cmd string

	// Code is the reason why the message was rejected.
	Code RejectCode

	// Reason is a human-readable explanation for the rejection.
	Reason string

	// Hash identifies the object (tx or block) that was rejected, and is
	// only present for rejected tx and block messages.
	Hash chainhash.Hash
}

// FlcDecode decodes r using the talus protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgReject) FlcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	if pver < RejectVersion {
		str := "reject message invalid for protocol version"
		return messageError("MsgReject.FlcDecode", str)
	}

	cmd, err := ReadVarString(r, pver)
	if err != nil {
		return err
	}
	msg.Cmd = cmd

	code, err := binarySerializer.Uint8(r)
	if err != nil {
		return err
	}
	msg.Code = RejectCode(code)

	reason, err := ReadVarString(r, pver)
	if err != nil {
		return err
	}
	msg.Reason = reason

	if msg.Cmd == CmdBlock || msg.Cmd == CmdTx {
		if err := readElement(r, &msg.Hash); err != nil {
			return err
		}
	}

	return nil
}

// FlcEncode encodes the receiver to w using the talus protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgReject) FlcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	if pver < RejectVersion {
		str := "reject message invalid for protocol version"
		return messageError("MsgReject.FlcEncode", str)
	}

	if err := WriteVarString(w, pver, msg.Cmd); err != nil {
		return err
	}
	if err := binarySerializer.PutUint8(w, uint8(msg.Code)); err != nil {
		return err
	}
	if err := WriteVarString(w, pver, msg.Reason); err != nil {
		return err
	}

	if msg.Cmd == CmdBlock || msg.Cmd == CmdTx {
		if err := writeElement(w, msg.Hash); err != nil {
			return err
		}
	}

	return nil
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgReject) Command() string {
	return CmdReject
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgReject) MaxPayloadLength(pver uint32) uint32 {
	return MaxVarIntPayload + CommandSize + 1 + MaxVarIntPayload + 256 + chainhash.HashSize
}

// NewMsgReject returns a new talus reject message that conforms to the
// Message interface.
func NewMsgReject(command string, code RejectCode, reason string) *MsgReject {
	return &MsgReject{
		Cmd:    command,
		Code:   code,
		Reason: reason,
	}
}
