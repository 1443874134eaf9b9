// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// MaxUserAgentLen is the maximum allowed length for the user agent field in
// a version message (MsgVersion).
const MaxUserAgentLen = 256

// DefaultUserAgent is the user agent string advertised by this node unless
// overridden by the caller.
const DefaultUserAgent = "/talusd:0.1.0/"

// MsgVersion implements the Message interface and represents a talus version
// message, per §4.8/§6.  It is exchanged as the first step of the
// version-verack handshake with every new peer.
type MsgVersion struct {
	// Version of the protocol the peer is using.
	ProtocolVersion int32

	// Bitfield which identifies the enabled services.
	Services ServiceFlag

	// Time the message was generated.
	Timestamp time.Time

	// Address of the remote peer.
	AddrYou NetAddress

	// Address of the local peer.
	AddrMe NetAddress

	// Unique value associated with the message that is used to detect
	// self connections.
	Nonce uint64

	// The user agent that generated the message.
	UserAgent string

	// Last block seen by the generator of the version message.
	LastBlock int32

	// Whether or not the receiving peer should relay transactions before
	// the version-verack handshake is complete (BIP0037Version+).
	DisableRelayTx bool
}

// HasService returns whether the specified service is supported by the peer
// that generated the message.
func (msg *MsgVersion) HasService(service ServiceFlag) bool {
	return msg.Services.HasFlag(service)
}

// AddService adds service as a supported service by the peer generating the
// message.
func (msg *MsgVersion) AddService(service ServiceFlag) {
	msg.Services |= service
}

// FlcDecode decodes r using the talus protocol encoding into the receiver.
// This is part of the Message interface implementation.
func (msg *MsgVersion) FlcDecode(r io.Reader, pver uint32, enc MessageEncoding) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	pv, err := binarySerializer.Uint32(r, littleEndian)
	if err != nil {
		return err
	}
	msg.ProtocolVersion = int32(pv)

	svc, err := binarySerializer.Uint64(r, littleEndian)
	if err != nil {
		return err
	}
	msg.Services = ServiceFlag(svc)

	ts, err := binarySerializer.Uint64(r, littleEndian)
	if err != nil {
		return err
	}
	msg.Timestamp = time.Unix(int64(ts), 0)

	if err := readNetAddress(r, pver, &msg.AddrYou, false); err != nil {
		return err
	}

	// Protocol versions >= 106 added the following fields, matching the
	// historical version handshake expansion documented in §4.8.
	if pv >= 106 {
		if err := readNetAddress(r, pver, &msg.AddrMe, false); err != nil {
			return err
		}

		nonce, err := binarySerializer.Uint64(r, littleEndian)
		if err != nil {
			return err
		}
		msg.Nonce = nonce

		userAgent, err := ReadVarString(r, pver)
		if err != nil {
			return err
		}
		if err := validateUserAgent(userAgent); err != nil {
			return err
		}
		msg.UserAgent = userAgent

		lastBlock, err := binarySerializer.Uint32(r, littleEndian)
		if err != nil {
			return err
		}
		msg.LastBlock = int32(lastBlock)

		if pv >= BIP0037Version {
			relayTx, err := binarySerializer.Uint8(r)
			if err != nil {
				return err
			}
			msg.DisableRelayTx = relayTx == 0
		}
	}

	return nil
}

// FlcEncode encodes the receiver to w using the talus protocol encoding.
// This is part of the Message interface implementation.
func (msg *MsgVersion) FlcEncode(w io.Writer, pver uint32, enc MessageEncoding) error {
	if err := validateUserAgent(msg.UserAgent); err != nil {
		return err
	}

	if err := binarySerializer.PutUint32(w, littleEndian, uint32(msg.ProtocolVersion)); err != nil {
		return err
	}
	if err := binarySerializer.PutUint64(w, littleEndian, uint64(msg.Services)); err != nil {
		return err
	}
	if err := binarySerializer.PutUint64(w, littleEndian, uint64(msg.Timestamp.Unix())); err != nil {
		return err
	}
	if err := writeNetAddress(w, pver, &msg.AddrYou, false); err != nil {
		return err
	}
	if err := writeNetAddress(w, pver, &msg.AddrMe, false); err != nil {
		return err
	}
	if err := binarySerializer.PutUint64(w, littleEndian, msg.Nonce); err != nil {
		return err
	}
	if err := WriteVarString(w, pver, msg.UserAgent); err != nil {
		return err
	}
	if err := binarySerializer.PutUint32(w, littleEndian, uint32(msg.LastBlock)); err != nil {
		return err
	}

	var relayTx uint8
	if !msg.DisableRelayTx {
		relayTx = 1
	}
	return binarySerializer.PutUint8(w, relayTx)
}

// Command returns the protocol command string for the message.  This is part
// of the Message interface implementation.
func (msg *MsgVersion) Command() string {
	return CmdVersion
}

// MaxPayloadLength returns the maximum length the payload can be for the
// receiver.  This is part of the Message interface implementation.
func (msg *MsgVersion) MaxPayloadLength(pver uint32) uint32 {
	return 4 + 8 + 8 + maxNetAddressPayload(pver)*2 + 8 + MaxVarIntPayload +
		MaxUserAgentLen + 4 + 1
}

// NewMsgVersion returns a new talus version message using the provided
// parameters and defaults for the remaining fields.
func NewMsgVersion(me *NetAddress, you *NetAddress, nonce uint64, lastBlock int32) *MsgVersion {
	return &MsgVersion{
		ProtocolVersion: int32(ProtocolVersion),
		Services:        0,
		Timestamp:       time.Unix(time.Now().Unix(), 0),
		AddrYou:         *you,
		AddrMe:          *me,
		Nonce:           nonce,
		UserAgent:       DefaultUserAgent,
		LastBlock:       lastBlock,
		DisableRelayTx:  false,
	}
}

func validateUserAgent(userAgent string) error {
	if len(userAgent) > MaxUserAgentLen {
		str := fmt.Sprintf("user agent too long [%v, max %v]", len(userAgent), MaxUserAgentLen)
		return messageError("MsgVersion", str)
	}
	if strings.ContainsAny(userAgent, "\x00") {
		return messageError("MsgVersion", "user agent contains a NUL byte")
	}
	return nil
}
