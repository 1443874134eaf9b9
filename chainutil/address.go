// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"errors"
	"fmt"

	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/chainutil/base58"
	"golang.org/x/crypto/ripemd160"
)

// ErrChecksumMismatch describes an error where decoding failed due to a
// bad checksum.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// ErrUnknownAddressType describes an error where an address can not
// decoded as a specific address type due to the string encoding not
// matching the expected format for the address type.
var ErrUnknownAddressType = errors.New("unknown address type")

// Address is an interface type for any type of destination a transaction
// output may spend to. It is only usable from the context of a parameters
// struct since the encoding format of the string is dependent on that.
type Address interface {
	// String returns the string encoding of the transaction output
	// destination.
	String() string

	// EncodeAddress returns the string encoding of the payment address
	// associated with the Address value.
	EncodeAddress() string

	// ScriptAddress returns the raw bytes of the address to be used when
	// inserting the address into a txout's script.
	ScriptAddress() []byte

	// IsForNet returns whether the address is associated with the passed
	// talus network.
	IsForNet(*chaincfg.Params) bool
}

// encodeAddress returns a base58-encoded address with a version prefixed
// and a checksum appended according to the format specified by the
// chaincfg.Params.
func encodeAddress(hash160 []byte, netID byte) string {
	return base58.CheckEncode(hash160, netID)
}

// AddressPubKeyHash is an Address for a pay-to-pubkey-hash (p2pkh)
// transaction.
type AddressPubKeyHash struct {
	hash  [ripemd160.Size]byte
	netID byte
}

// NewAddressPubKeyHash returns a new AddressPubKeyHash. pkHash must be 20
// bytes.
func NewAddressPubKeyHash(pkHash []byte, net *chaincfg.Params) (*AddressPubKeyHash, error) {
	return newAddressPubKeyHash(pkHash, net.PubKeyHashAddrID)
}

func newAddressPubKeyHash(pkHash []byte, netID byte) (*AddressPubKeyHash, error) {
	if len(pkHash) != ripemd160.Size {
		return nil, errors.New("pkHash must be 20 bytes")
	}

	addr := &AddressPubKeyHash{netID: netID}
	copy(addr.hash[:], pkHash)
	return addr, nil
}

// EncodeAddress returns the string encoding of a pay-to-pubkey-hash
// address. Part of the Address interface.
func (a *AddressPubKeyHash) EncodeAddress() string {
	return encodeAddress(a.hash[:], a.netID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to this address. Part of the Address interface.
func (a *AddressPubKeyHash) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet returns whether the pay-to-pubkey-hash address is associated
// with the passed talus network.
func (a *AddressPubKeyHash) IsForNet(net *chaincfg.Params) bool {
	return a.netID == net.PubKeyHashAddrID
}

// String returns a human-readable string for the pay-to-pubkey-hash
// address. This is equivalent to calling EncodeAddress.
func (a *AddressPubKeyHash) String() string {
	return a.EncodeAddress()
}

// Hash160 returns the underlying array of the pubkey hash.
func (a *AddressPubKeyHash) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// PubKeyFormat describes how a raw public key should be serialized.
type PubKeyFormat int

const (
	// PKFUncompressed indicates the pay-to-pubkey address format is an
	// uncompressed public key.
	PKFUncompressed PubKeyFormat = iota

	// PKFCompressed indicates the pay-to-pubkey address format is a
	// compressed public key.
	PKFCompressed
)

// AddressPubKey is an Address for a pay-to-pubkey transaction. It holds
// the raw serialized public key so both the pubkey and the pubkey-hash
// form can be derived from it.
type AddressPubKey struct {
	pubKeyFormat PubKeyFormat
	pubKey       []byte
	pubKeyHashID byte
}

// NewAddressPubKey returns a new AddressPubKey which represents a
// pay-to-pubkey address. serializedPubKey must be a valid compressed or
// uncompressed secp256k1 public key encoding.
func NewAddressPubKey(serializedPubKey []byte, net *chaincfg.Params) (*AddressPubKey, error) {
	format := PKFUncompressed
	switch len(serializedPubKey) {
	case 33:
		format = PKFCompressed
	case 65:
		format = PKFUncompressed
	default:
		return nil, fmt.Errorf("serialized public key length %d is invalid", len(serializedPubKey))
	}

	pk := make([]byte, len(serializedPubKey))
	copy(pk, serializedPubKey)

	return &AddressPubKey{
		pubKeyFormat: format,
		pubKey:       pk,
		pubKeyHashID: net.PubKeyHashAddrID,
	}, nil
}

// serialize returns the serialization of the public key according to the
// format associated with the address.
func (a *AddressPubKey) serialize() []byte {
	return a.pubKey
}

// EncodeAddress returns the string encoding of the public key as a
// pay-to-pubkey-hash address, since that is the form talus scripts spend
// from. Part of the Address interface.
func (a *AddressPubKey) EncodeAddress() string {
	hash := chainhash.Hash160(a.serialize())
	return encodeAddress(hash, a.pubKeyHashID)
}

// ScriptAddress returns the bytes to be included in a txout script to pay
// to this address: the raw serialized public key. Part of the Address
// interface.
func (a *AddressPubKey) ScriptAddress() []byte {
	return a.serialize()
}

// IsForNet returns whether the pay-to-pubkey address is associated with
// the passed talus network.
func (a *AddressPubKey) IsForNet(net *chaincfg.Params) bool {
	return a.pubKeyHashID == net.PubKeyHashAddrID
}

// String returns the hex-encoded serialized public key.
func (a *AddressPubKey) String() string {
	return fmt.Sprintf("%x", a.pubKey)
}

// AddressPubKeyHash returns the pay-to-pubkey-hash address converted from
// the pubkey address.
func (a *AddressPubKey) AddressPubKeyHash() *AddressPubKeyHash {
	addr, _ := newAddressPubKeyHash(chainhash.Hash160(a.serialize()), a.pubKeyHashID)
	return addr
}

// Format returns the format (uncompressed or compressed) of the address's
// backing public key.
func (a *AddressPubKey) Format() PubKeyFormat {
	return a.pubKeyFormat
}

// DecodeAddress decodes the string encoding of an address and returns the
// Address if it is a valid encoding for a known address type and is for
// the network matching the passed defaultNet.
func DecodeAddress(addr string, defaultNet *chaincfg.Params) (Address, error) {
	decoded, netID, err := base58.CheckDecode(addr)
	if err != nil {
		if err == base58.ErrChecksum {
			return nil, ErrChecksumMismatch
		}
		return nil, errors.New("decoded address is of unknown format")
	}

	switch len(decoded) {
	case ripemd160.Size:
		if netID != defaultNet.PubKeyHashAddrID {
			return nil, fmt.Errorf("address %s is not for network %s", addr, defaultNet.Name)
		}
		return newAddressPubKeyHash(decoded, netID)
	default:
		return nil, ErrUnknownAddressType
	}
}
