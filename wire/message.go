// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"fmt"
	"io"
)

// Command strings for the messages named in §4.8/§6.  Each is padded with
// trailing NUL bytes to CommandSize on the wire.
const (
	CmdVersion     = "version"
	CmdVerAck      = "verack"
	CmdAddr        = "addr"
	CmdGetAddr     = "getaddr"
	CmdInv         = "inv"
	CmdGetData     = "getdata"
	CmdNotFound    = "notfound"
	CmdGetBlocks   = "getblocks"
	CmdHeaders     = "headers"
	CmdTx          = "tx"
	CmdBlock       = "block"
	CmdPing        = "ping"
	CmdPong        = "pong"
	CmdReject      = "reject"
	CmdFilterAdd   = "filteradd"
	CmdSendAddrV2  = "sendaddrv2"
	CmdWTxIdRelay  = "wtxidrelay"
)

// Message is the interface every protocol message implements, following the
// framing of §6: magic(4) ∥ command(12) ∥ length(4) ∥ payload.
type Message interface {
	FlcDecode(io.Reader, uint32, MessageEncoding) error
	FlcEncode(io.Writer, uint32, MessageEncoding) error
	Command() string
	MaxPayloadLength(uint32) uint32
}

// makeEmptyMessage creates a Message of the appropriate concrete type based
// on the command string.
func makeEmptyMessage(command string) (Message, error) {
	switch command {
	case CmdVersion:
		return &MsgVersion{}, nil
	case CmdVerAck:
		return &MsgVerAck{}, nil
	case CmdAddr:
		return &MsgAddr{}, nil
	case CmdGetAddr:
		return &MsgGetAddr{}, nil
	case CmdInv:
		return &MsgInv{}, nil
	case CmdGetData:
		return NewMsgGetData(), nil
	case CmdNotFound:
		return NewMsgNotFound(), nil
	case CmdGetBlocks:
		return &MsgGetBlocks{}, nil
	case CmdHeaders:
		return NewMsgHeaders(), nil
	case CmdTx:
		return &MsgTx{}, nil
	case CmdBlock:
		return &MsgBlock{}, nil
	case CmdPing:
		return &MsgPing{}, nil
	case CmdPong:
		return &MsgPong{}, nil
	case CmdReject:
		return &MsgReject{}, nil
	case CmdFilterAdd:
		return &MsgFilterAdd{}, nil
	case CmdSendAddrV2:
		return &MsgSendAddrV2{}, nil
	case CmdWTxIdRelay:
		return &MsgWTxIdRelay{}, nil
	}
	return nil, messageError("makeEmptyMessage", fmt.Sprintf("unhandled command [%s]", command))
}

// messageHeader mirrors the fixed framing prefix of §6.
type messageHeader struct {
	magic   TalusNet
	command string
	length  uint32
}

// readMessageHeader reads the framing prefix of a message: magic(4) ∥
// command(12) ∥ length(4).
func readMessageHeader(r io.Reader) (int, *messageHeader, error) {
	var headerBytes [MessageHeaderSize]byte
	n, err := io.ReadFull(r, headerBytes[:])
	if err != nil {
		return n, nil, err
	}

	hdr := messageHeader{}
	hdr.magic = TalusNet(littleEndian.Uint32(headerBytes[0:4]))

	command := headerBytes[4 : 4+CommandSize]
	end := CommandSize
	for i, b := range command {
		if b == 0 {
			end = i
			break
		}
	}
	hdr.command = string(command[:end])
	hdr.length = littleEndian.Uint32(headerBytes[4+CommandSize : 4+CommandSize+4])

	return n, &hdr, nil
}

// WriteMessageN writes a talus message to w including the necessary
// header information and returns the number of bytes written.
func WriteMessageN(w io.Writer, msg Message, pver uint32, flcnet TalusNet) (int, error) {
	totalBytes := 0

	var hdrBuf [MessageHeaderSize]byte
	littleEndian.PutUint32(hdrBuf[0:4], uint32(flcnet))

	cmd := msg.Command()
	if len(cmd) > CommandSize {
		return totalBytes, messageError("WriteMessageN",
			fmt.Sprintf("command string %q too long", cmd))
	}
	copy(hdrBuf[4:4+CommandSize], cmd)

	var payload []byte
	var err error
	payload, err = serializePayload(msg, pver)
	if err != nil {
		return totalBytes, err
	}

	lenp := uint64(len(payload))
	if lenp > uint64(msg.MaxPayloadLength(pver)) {
		return totalBytes, messageError("WriteMessageN", fmt.Sprintf(
			"message payload is too large - encoded %d bytes, but maximum "+
				"message payload is %d bytes", lenp, msg.MaxPayloadLength(pver)))
	}
	littleEndian.PutUint32(hdrBuf[4+CommandSize:], uint32(lenp))

	n, err := w.Write(hdrBuf[:])
	totalBytes += n
	if err != nil {
		return totalBytes, err
	}

	n, err = w.Write(payload)
	totalBytes += n
	return totalBytes, err
}

// WriteMessage is the same as WriteMessageN except it doesn't return the
// number of bytes written.
func WriteMessage(w io.Writer, msg Message, pver uint32, flcnet TalusNet) error {
	_, err := WriteMessageN(w, msg, pver, flcnet)
	return err
}

// ReadMessageN reads, validates, and parses the next talus message from
// r for the provided protocol version and talus network, returning the
// number of bytes read in addition to the parsed Message and raw payload
// bytes.
func ReadMessageN(r io.Reader, pver uint32, flcnet TalusNet) (int, Message, []byte, error) {
	totalBytes := 0
	n, hdr, err := readMessageHeader(r)
	totalBytes += n
	if err != nil {
		return totalBytes, nil, nil, err
	}

	if hdr.magic != flcnet {
		return totalBytes, nil, nil, messageError("ReadMessageN",
			fmt.Sprintf("message from other network [%v]", hdr.magic))
	}

	if hdr.length > MaxMessagePayload {
		return totalBytes, nil, nil, messageError("ReadMessageN",
			fmt.Sprintf("message payload is too large - header "+
				"indicates %d bytes, but max message payload is %d bytes",
				hdr.length, MaxMessagePayload))
	}

	msg, err := makeEmptyMessage(hdr.command)
	if err != nil {
		return totalBytes, nil, nil, err
	}

	if hdr.length > msg.MaxPayloadLength(pver) {
		return totalBytes, nil, nil, messageError("ReadMessageN",
			fmt.Sprintf("payload exceeds max length for command [%s]", hdr.command))
	}

	payload := make([]byte, hdr.length)
	n, err = io.ReadFull(r, payload)
	totalBytes += n
	if err != nil {
		return totalBytes, nil, nil, err
	}

	if err := msg.FlcDecode(bytes.NewReader(payload), pver, BaseEncoding); err != nil {
		return totalBytes, nil, nil, err
	}

	return totalBytes, msg, payload, nil
}

// ReadMessage is the same as ReadMessageN except it discards the number of
// bytes read.
func ReadMessage(r io.Reader, pver uint32, flcnet TalusNet) (Message, []byte, error) {
	_, msg, buf, err := ReadMessageN(r, pver, flcnet)
	return msg, buf, err
}

func serializePayload(msg Message, pver uint32) ([]byte, error) {
	var w bytes.Buffer
	if err := msg.FlcEncode(&w, pver, BaseEncoding); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}
