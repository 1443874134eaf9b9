// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/chainutil"
)

func TestAddresses(t *testing.T) {
	tests := []struct {
		name    string
		valid   bool
		f       func() (chainutil.Address, error)
		net     *chaincfg.Params
	}{
		{
			name:  "mainnet p2pkh",
			valid: true,
			f: func() (chainutil.Address, error) {
				pkHash := []byte{
					0xe3, 0x4c, 0xce, 0x70, 0xc8, 0x63, 0x73, 0x27, 0x3e, 0xfc,
					0xc5, 0x4c, 0xe7, 0xd2, 0xa4, 0x91, 0xbb, 0x4a, 0x0e, 0x84}
				return chainutil.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
		{
			name:  "testnet p2pkh",
			valid: true,
			f: func() (chainutil.Address, error) {
				pkHash := []byte{
					0x78, 0xb3, 0x16, 0xa0, 0x86, 0x47, 0xd5, 0xb7, 0x72, 0x83,
					0xe5, 0x12, 0xd3, 0x60, 0x3f, 0x1f, 0x1c, 0x8d, 0xe6, 0x8f}
				return chainutil.NewAddressPubKeyHash(pkHash, &chaincfg.TestNet3Params)
			},
			net: &chaincfg.TestNet3Params,
		},
		{
			name:  "p2pkh wrong hash length",
			valid: false,
			f: func() (chainutil.Address, error) {
				pkHash := make([]byte, 21)
				return chainutil.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
		{
			name:  "mainnet p2pk compressed",
			valid: true,
			f: func() (chainutil.Address, error) {
				serializedPubKey := []byte{
					0x02, 0x19, 0x2d, 0x74, 0xd0, 0xcb, 0x94, 0x34, 0x4c, 0x95,
					0x69, 0xc2, 0xe7, 0x79, 0x01, 0x57, 0x3d, 0x8d, 0x79, 0x03,
					0xc3, 0xeb, 0xec, 0x3a, 0x95, 0x77, 0x24, 0x89, 0x5d, 0xca,
					0x52, 0xc6, 0xb4}
				return chainutil.NewAddressPubKey(serializedPubKey, &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
		{
			name:  "p2pk invalid length",
			valid: false,
			f: func() (chainutil.Address, error) {
				return chainutil.NewAddressPubKey(make([]byte, 10), &chaincfg.MainNetParams)
			},
			net: &chaincfg.MainNetParams,
		},
	}

	for _, test := range tests {
		addr, err := test.f()
		if test.valid && err != nil {
			t.Errorf("%v: unexpected error creating address: %v", test.name, err)
			continue
		}
		if !test.valid {
			if err == nil {
				t.Errorf("%v: expected error creating address, got none", test.name)
			}
			continue
		}

		if !addr.IsForNet(test.net) {
			t.Errorf("%v: address does not report the expected network", test.name)
		}

		encoded := addr.EncodeAddress()
		decoded, err := chainutil.DecodeAddress(encoded, test.net)
		if err != nil {
			// Pay-to-pubkey addresses encode to a pay-to-pubkey-hash
			// string, which decodes back to an AddressPubKeyHash, not
			// an AddressPubKey. Only round trip pure p2pkh addresses.
			if _, ok := addr.(*chainutil.AddressPubKeyHash); ok {
				t.Errorf("%v: failed to decode encoded address: %v", test.name, err)
			}
			continue
		}

		if pkh, ok := addr.(*chainutil.AddressPubKeyHash); ok {
			if !reflect.DeepEqual(decoded, pkh) {
				t.Errorf("%v: round-tripped address does not match original", test.name)
			}
			if !bytes.Equal(decoded.ScriptAddress(), pkh.ScriptAddress()) {
				t.Errorf("%v: script addresses do not match", test.name)
			}
		}
	}
}

func TestDecodeAddressWrongNet(t *testing.T) {
	pkHash := []byte{
		0xe3, 0x4c, 0xce, 0x70, 0xc8, 0x63, 0x73, 0x27, 0x3e, 0xfc,
		0xc5, 0x4c, 0xe7, 0xd2, 0xa4, 0x91, 0xbb, 0x4a, 0x0e, 0x84}
	addr, err := chainutil.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := chainutil.DecodeAddress(addr.EncodeAddress(), &chaincfg.TestNet3Params); err == nil {
		t.Error("expected error decoding a mainnet address against testnet params")
	}
}

func TestDecodeAddressBadChecksum(t *testing.T) {
	if _, err := chainutil.DecodeAddress("1MirQ9bwyQcGVJPwKUgapu5ouK2E2Ey4gY", &chaincfg.MainNetParams); err == nil {
		t.Error("expected checksum error decoding corrupt address")
	}
}
