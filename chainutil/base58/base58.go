// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package base58 provides an API for working with modified base58 and
Base58Check encodings.

Standard base58 encoding is similar to standard base64 encoding except, as
the name implies, it uses a 58 character alphabet which results in an
alphanumeric string and allows some characters which are problematic for
humans to be excluded. Due to this, there can be various base58 alphabets.

The modified base58 alphabet used here, and by talus addresses, omits the
0, O, I, and l characters that look the same in many fonts and are
therefore hard for humans to distinguish.

Base58Check wraps an arbitrary byte payload with a one-byte version and a
four-byte checksum (the first four bytes of a double SHA-256 of the
version-prefixed payload) before base58 encoding, so decoding can detect
transcription errors and recover the version.
*/
package base58

import "math/big"

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var decodeTable [256]byte

func init() {
	for i := range decodeTable {
		decodeTable[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		decodeTable[alphabet[i]] = byte(i)
	}
}

var bigRadix = big.NewInt(58)
var bigZero = big.NewInt(0)

// Decode decodes a modified base58 string to a byte slice.
func Decode(b string) []byte {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for i := 0; i < len(b); i++ {
		tmp := decodeTable[b[i]]
		if tmp == 0xFF {
			return []byte("")
		}
		scratch.SetInt64(int64(tmp))
		answer.Mul(answer, bigRadix)
		answer.Add(answer, scratch)
	}

	tmpval := answer.Bytes()

	var numZeros int
	for numZeros = 0; numZeros < len(b); numZeros++ {
		if b[numZeros] != alphabet[0] {
			break
		}
	}
	flen := numZeros + len(tmpval)
	val := make([]byte, flen)
	copy(val[numZeros:], tmpval)
	return val
}

// Encode encodes a byte slice to a modified base58 string.
func Encode(b []byte) string {
	x := new(big.Int)
	x.SetBytes(b)

	answer := make([]byte, 0, len(b)*136/100)
	for x.Cmp(bigZero) > 0 {
		mod := new(big.Int)
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}

	for i, j := 0, len(answer)-1; i < j; i, j = i+1, j-1 {
		answer[i], answer[j] = answer[j], answer[i]
	}

	return string(answer)
}
