// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"time"

	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// genesisCoinbaseScriptSig is the hard-coded unlocking script of the
// genesis coinbase, embedding the headline of 3 January 2009 (§6).
var genesisCoinbaseScriptSig = mustHex("04ffff001d0104455468652054696d65732030332f4a616e2f32303039204368" +
	"616e63656c6c6f72206f6e206272696e6b206f66207365636f6e64206261696c6f757420666f722062616e6b73")

// genesisOutputScript pays the single 50-coin genesis output to a fixed,
// hard-coded public key, per §6.
var genesisOutputScript = mustHex("4104678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61" +
	"deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5fac")

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// generateGenesisCoinbaseTx builds the single transaction of the genesis
// block: one null-outpoint input carrying the headline, one 50-coin output
// to the fixed genesis key.
func generateGenesisCoinbaseTx() *wire.MsgTx {
	return &wire.MsgTx{
		Version: 1,
		TxIn: []*wire.TxIn{
			{
				PreviousOutPoint: wire.OutPoint{
					Hash:  chainhash.Hash{},
					Index: 0xffffffff,
				},
				SignatureScript: genesisCoinbaseScriptSig,
				Sequence:        0xffffffff,
			},
		},
		TxOut: []*wire.TxOut{
			{
				Value:    50 * 1e8,
				PkScript: genesisOutputScript,
			},
		},
		LockTime: 0,
	}
}

// mainGenesisMerkleRoot is the hash of the lone genesis transaction, which
// is also the block's merkle root since a one-leaf tree has no pairing to do.
var mainGenesisMerkleRoot = mustHashFromStr("4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b")

// mainGenesisBlock is the hard-coded genesis block of the main network,
// matching the historical block whose hash begins 000000000019d668 (§6).
var mainGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: mainGenesisMerkleRoot,
		Timestamp:  time.Unix(1231006505, 0),
		Bits:       0x1d00ffff,
		Nonce:      2083236893,
	},
	Transactions: []*wire.MsgTx{generateGenesisCoinbaseTx()},
}

var mainGenesisHash = mustHashFromStr("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f")

// regTestGenesisBlock is the genesis block used by the regression test
// network: same coinbase, trivial difficulty so blocks can be mined instantly.
var regTestGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: mainGenesisMerkleRoot,
		Timestamp:  time.Unix(1296688602, 0),
		Bits:       0x207fffff,
		Nonce:      2,
	},
	Transactions: []*wire.MsgTx{generateGenesisCoinbaseTx()},
}

var regTestGenesisHash = regTestGenesisBlock.BlockHash()

// testNet3GenesisBlock is the genesis block used by the public test network.
var testNet3GenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: mainGenesisMerkleRoot,
		Timestamp:  time.Unix(1296688602, 0),
		Bits:       0x1d00ffff,
		Nonce:      414098458,
	},
	Transactions: []*wire.MsgTx{generateGenesisCoinbaseTx()},
}

var testNet3GenesisHash = testNet3GenesisBlock.BlockHash()

// simNetGenesisBlock is the genesis block used by the simulation test
// network.
var simNetGenesisBlock = wire.MsgBlock{
	Header: wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: mainGenesisMerkleRoot,
		Timestamp:  time.Unix(1401292357, 0),
		Bits:       0x207fffff,
		Nonce:      2,
	},
	Transactions: []*wire.MsgTx{generateGenesisCoinbaseTx()},
}

var simNetGenesisHash = simNetGenesisBlock.BlockHash()

func mustHashFromStr(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *h
}
