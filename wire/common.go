// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/talusnet/talusd/chainhash"
)

// MessageEncoding represents the wire message encoding format to use.
type MessageEncoding uint32

// BaseEncoding encodes all messages in the default format specified for the
// protocol.  It is the only encoding this node speaks.
const BaseEncoding MessageEncoding = 0

// littleEndian and bigEndian are convenience variables since their names are
// easier to read than the full binary.LittleEndian / binary.BigEndian names
// at every call site below.
var (
	littleEndian = binary.LittleEndian
	bigEndian    = binary.BigEndian
)

// Maximum payload sizes, mirroring §6 / §8 of the spec: a single message
// never needs to carry more than one maximally sized block.
const (
	MaxVarIntPayload    = 9
	MaxMessagePayload   = 32 * 1024 * 1024
	MaxInvPerMsg        = 50000
	defaultInvListAlloc = 32
	maxInvVectPayload   = 4 + chainhash.HashSize
	CommandSize         = 12
	MessageHeaderSize   = 4 + CommandSize + 4
)

// messageError creates an error for the given function and description.
func messageError(fn, desc string) error {
	return fmt.Errorf("%s: %s", fn, desc)
}

// binaryFreeList houses a free list of byte slices used to provide temporary
// buffers for serializing and deserializing primitive numbers to and from
// their binary encodings so repeated decodes don't put unnecessary strain on
// the garbage collector.
type binaryFreeList chan []byte

var binarySerializer binaryFreeList = make(chan []byte, 8)

// Borrow returns a byte slice from the free list with a length of 8.
func (l binaryFreeList) Borrow() []byte {
	var buf []byte
	select {
	case buf = <-l:
	default:
		buf = make([]byte, 8)
	}
	return buf[:8]
}

// Return puts the provided byte slice back on the free list.
func (l binaryFreeList) Return(buf []byte) {
	select {
	case l <- buf:
	default:
	}
}

// Uint8 reads a single byte from r using a buffer from the free list.
func (l binaryFreeList) Uint8(r io.Reader) (uint8, error) {
	buf := l.Borrow()[:1]
	defer l.Return(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// Uint16 reads two bytes from r using the given byte order.
func (l binaryFreeList) Uint16(r io.Reader, byteOrder binary.ByteOrder) (uint16, error) {
	buf := l.Borrow()[:2]
	defer l.Return(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return byteOrder.Uint16(buf), nil
}

// Uint32 reads four bytes from r using the given byte order.
func (l binaryFreeList) Uint32(r io.Reader, byteOrder binary.ByteOrder) (uint32, error) {
	buf := l.Borrow()[:4]
	defer l.Return(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return byteOrder.Uint32(buf), nil
}

// Uint64 reads eight bytes from r using the given byte order.
func (l binaryFreeList) Uint64(r io.Reader, byteOrder binary.ByteOrder) (uint64, error) {
	buf := l.Borrow()[:8]
	defer l.Return(buf)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return byteOrder.Uint64(buf), nil
}

// PutUint8 writes a single byte to w.
func (l binaryFreeList) PutUint8(w io.Writer, val uint8) error {
	buf := l.Borrow()[:1]
	defer l.Return(buf)
	buf[0] = val
	_, err := w.Write(buf)
	return err
}

// PutUint16 writes val to w in the given byte order.
func (l binaryFreeList) PutUint16(w io.Writer, byteOrder binary.ByteOrder, val uint16) error {
	buf := l.Borrow()[:2]
	defer l.Return(buf)
	byteOrder.PutUint16(buf, val)
	_, err := w.Write(buf)
	return err
}

// PutUint32 writes val to w in the given byte order.
func (l binaryFreeList) PutUint32(w io.Writer, byteOrder binary.ByteOrder, val uint32) error {
	buf := l.Borrow()[:4]
	defer l.Return(buf)
	byteOrder.PutUint32(buf, val)
	_, err := w.Write(buf)
	return err
}

// PutUint64 writes val to w in the given byte order.
func (l binaryFreeList) PutUint64(w io.Writer, byteOrder binary.ByteOrder, val uint64) error {
	buf := l.Borrow()[:8]
	defer l.Return(buf)
	byteOrder.PutUint64(buf, val)
	_, err := w.Write(buf)
	return err
}

// ReadVarInt reads a variable-length integer using the standard
// single/3/5/9-byte form and returns it as a uint64.
func ReadVarInt(r io.Reader, pver uint32) (uint64, error) {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)
	return ReadVarIntBuf(r, pver, buf)
}

// ReadVarIntBuf is like ReadVarInt but takes a scratch buffer to avoid an
// allocation in hot paths such as message decode loops.
func ReadVarIntBuf(r io.Reader, pver uint32, buf []byte) (uint64, error) {
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}
	discriminant := buf[0]

	var rv uint64
	switch discriminant {
	case 0xff:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return 0, err
		}
		rv = littleEndian.Uint64(buf)
	case 0xfe:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint32(buf))
	case 0xfd:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return 0, err
		}
		rv = uint64(littleEndian.Uint16(buf))
	default:
		rv = uint64(discriminant)
	}
	return rv, nil
}

// WriteVarInt writes val using the minimal single/3/5/9-byte encoding.
func WriteVarInt(w io.Writer, pver uint32, val uint64) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)
	return WriteVarIntBuf(w, pver, val, buf)
}

// WriteVarIntBuf is like WriteVarInt but takes a scratch buffer.
func WriteVarIntBuf(w io.Writer, pver uint32, val uint64, buf []byte) error {
	switch {
	case val < 0xfd:
		buf[0] = uint8(val)
		_, err := w.Write(buf[:1])
		return err
	case val <= 1<<16-1:
		buf[0] = 0xfd
		littleEndian.PutUint16(buf[1:3], uint16(val))
		_, err := w.Write(buf[:3])
		return err
	case val <= 1<<32-1:
		buf[0] = 0xfe
		littleEndian.PutUint32(buf[1:5], uint32(val))
		_, err := w.Write(buf[:5])
		return err
	default:
		buf[0] = 0xff
		littleEndian.PutUint64(buf[1:9], val)
		_, err := w.Write(buf[:9])
		return err
	}
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= 1<<16-1:
		return 3
	case val <= 1<<32-1:
		return 5
	default:
		return 9
	}
}

// ReadVarString reads a varstr: varint(len) ∥ bytes.
func ReadVarString(r io.Reader, pver uint32) (string, error) {
	count, err := ReadVarInt(r, pver)
	if err != nil {
		return "", err
	}
	if count > MaxMessagePayload {
		return "", messageError("ReadVarString", fmt.Sprintf(
			"variable length string is too long [count %d, max %d]",
			count, MaxMessagePayload))
	}
	buf := make([]byte, count)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// WriteVarString writes s as a varstr.
func WriteVarString(w io.Writer, pver uint32, s string) error {
	if err := WriteVarInt(w, pver, uint64(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

// ReadVarBytes reads a varstr into a byte slice, enforcing a maxAllowed
// bound so callers (e.g. script fields) can bound allocation tightly.
func ReadVarBytes(r io.Reader, pver uint32, maxAllowed uint32, fieldName string) ([]byte, error) {
	count, err := ReadVarInt(r, pver)
	if err != nil {
		return nil, err
	}
	if count > uint64(maxAllowed) {
		return nil, messageError("ReadVarBytes", fmt.Sprintf(
			"%s is larger than the max allowed size [count %d, max %d]",
			fieldName, count, maxAllowed))
	}
	b := make([]byte, count)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// WriteVarBytes writes b as a varstr.
func WriteVarBytes(w io.Writer, pver uint32, b []byte) error {
	if err := WriteVarInt(w, pver, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// randomUint64 returns a cryptographically random uint64 read from r, used
// to generate nonce fields such as the version message's self-connect nonce.
func randomUint64(r io.Reader) (uint64, error) {
	return binarySerializer.Uint64(r, bigEndian)
}
