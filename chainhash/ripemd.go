// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"crypto/sha1"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is required by the wire format, not a choice
)

// Hash160 computes RIPEMD160(SHA256(b)), the 20-byte digest used to build
// pay-to-pubkey-hash locking scripts and addresses.
func Hash160(b []byte) []byte {
	sha := sha256.Sum256(b)
	r := ripemd160.New()
	// ripemd160.New().Write never returns an error.
	_, _ = r.Write(sha[:])
	return r.Sum(nil)
}

// Ripemd160 computes the bare RIPEMD160 digest of b, used by the
// OP_RIPEMD160 script opcode.
func Ripemd160(b []byte) []byte {
	r := ripemd160.New()
	_, _ = r.Write(b)
	return r.Sum(nil)
}

// Sha1 computes the bare SHA1 digest of b, used by the OP_SHA1 script
// opcode.
func Sha1(b []byte) []byte {
	h := sha1.Sum(b)
	return h[:]
}
