// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"bytes"
	"testing"

	"github.com/talusnet/talusd/wire"
)

// TestGenesisBlock verifies that the main network genesis block hashes to
// the well-known value and round-trips through serialization unchanged.
func TestGenesisBlock(t *testing.T) {
	hash := MainNetParams.GenesisBlock.BlockHash()
	if !MainNetParams.GenesisHash.IsEqual(&hash) {
		t.Fatalf("TestGenesisBlock: genesis hash mismatch - got %v, want %v",
			hash, MainNetParams.GenesisHash)
	}

	var buf bytes.Buffer
	if err := MainNetParams.GenesisBlock.Serialize(&buf); err != nil {
		t.Fatalf("TestGenesisBlock: serialize failed: %v", err)
	}

	var roundTripped wire.MsgBlock
	if err := roundTripped.Deserialize(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatalf("TestGenesisBlock: deserialize failed: %v", err)
	}
	roundTrippedHash := roundTripped.BlockHash()
	if !hash.IsEqual(&roundTrippedHash) {
		t.Fatalf("TestGenesisBlock: round trip hash mismatch - got %v, want %v",
			roundTrippedHash, hash)
	}
}

// TestNetGenesisBlocks verifies that every other registered network's
// genesis block is internally consistent: its recorded hash matches what
// hashing the block itself produces.
func TestNetGenesisBlocks(t *testing.T) {
	tests := []struct {
		name   string
		params *Params
	}{
		{"regtest", &RegressionNetParams},
		{"testnet3", &TestNet3Params},
		{"simnet", &SimNetParams},
	}

	for _, test := range tests {
		hash := test.params.GenesisBlock.BlockHash()
		if !test.params.GenesisHash.IsEqual(&hash) {
			t.Errorf("%s: genesis hash mismatch - got %v, want %v",
				test.name, hash, test.params.GenesisHash)
		}
	}
}
