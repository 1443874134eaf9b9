// Copyright (c) 2015-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import "fmt"

// defaultScriptNumLen is the default number of bytes data being interpreted
// as an integer may be.
const defaultScriptNumLen = 4

// maxScriptNumLen matches defaultScriptNumLen; numeric opcodes in this
// interpreter never negotiate a wider operand.
const maxScriptNumLen = defaultScriptNumLen

// scriptNum represents a numeric value used in the scripting engine with
// special handling to deal with the subtle semantics required by consensus.
//
// All numbers are stored on the data and alt stacks as an array of bytes
// which is interpreted as a little-endian number with the high bit of the
// last byte as the sign bit. A negative zero is valid, and results in the
// data exactly matching a positive zero except for the sign bit, which is
// why equality is not defined directly in terms of the byte representation.
type scriptNum int64

// checkMinimalDataEncoding returns whether the given byte array adheres to
// the minimal encoding requirements.
func checkMinimalDataEncoding(v []byte) error {
	if len(v) == 0 {
		return nil
	}

	// If the most-significant-byte - excluding the sign bit - is zero
	// then we're not minimal. Note how this test also rejects the
	// negative-zero encoding, [0x80].
	if v[len(v)-1]&0x7f == 0 {
		// One exception: if there's more than one byte and the most
		// significant bit of the second-to-last byte is set, then the
		// last byte is required to hold the sign bit.
		if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
			return scriptError(ErrMinimalData, "numeric value encoded with superfluous bytes")
		}
	}

	return nil
}

// MakeScriptNum interprets the passed serialized bytes as an encoded script
// number, returning the result as a scriptNum. When requireMinimal is true,
// non-minimally-encoded values are rejected. scriptNumLen is the maximum
// number of bytes the encoding may occupy.
func MakeScriptNum(v []byte, requireMinimal bool, scriptNumLen int) (scriptNum, error) {
	if len(v) > scriptNumLen {
		return 0, scriptError(ErrNumberTooBig, fmt.Sprintf("numeric value encoded as %d bytes exceeds max allowed %d", len(v), scriptNumLen))
	}
	if requireMinimal {
		if err := checkMinimalDataEncoding(v); err != nil {
			return 0, err
		}
	}
	if len(v) == 0 {
		return 0, nil
	}

	var result int64
	for i, b := range v {
		result |= int64(b) << uint8(8*i)
	}

	// The most significant byte of the serialization, except the sign
	// bit, holds magnitude; the sign bit itself indicates a negative
	// value.
	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(v)-1)))
		return scriptNum(-result), nil
	}

	return scriptNum(result), nil
}

// Bytes returns the number serialized as a little-endian sign-magnitude
// byte slice.
func (n scriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	absoluteValue := n
	if isNegative {
		absoluteValue = -n
	}

	result := make([]byte, 0, 9)
	for absoluteValue > 0 {
		result = append(result, byte(absoluteValue&0xff))
		absoluteValue >>= 8
	}

	// If the most significant byte has the high bit set, push an extra
	// byte to hold the sign (or to hold a zero high bit for a positive
	// number whose magnitude otherwise would be misread as negative).
	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}

	return result
}

// Int32 returns the script number clamped to the range of an int32.
func (n scriptNum) Int32() int32 {
	if n > scriptNum(1<<31-1) {
		return 1<<31 - 1
	}
	if n < -scriptNum(1<<31) {
		return -(1 << 31)
	}
	return int32(n)
}
