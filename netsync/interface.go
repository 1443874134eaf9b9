// Copyright (c) 2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netsync

import (
	"github.com/talusnet/talusd/blockchain"
	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/chainutil"
	"github.com/talusnet/talusd/mempool"
	"github.com/talusnet/talusd/peer"
	"github.com/talusnet/talusd/wire"
)

// PeerNotifier exposes methods to notify peers of status changes to
// transactions, blocks, etc. No type in this repository implements it.
type PeerNotifier interface {
	AnnounceNewTransactions(newTxs []*mempool.TxDesc)

	UpdatePeerHeights(latestBlkHash *chainhash.Hash, latestHeight int32, updateSource *peer.Peer)

	RelayInventory(invVect *wire.InvVect, data interface{})

	TransactionConfirmed(tx *chainutil.Tx)
}

// Config is a configuration struct used to initialize a new SyncManager.
type Config struct {
	PeerNotifier PeerNotifier
	Chain        *blockchain.BlockChain
	TxMemPool    *mempool.TxPool
	ChainParams  *chaincfg.Params

	DisableCheckpoints bool
	MaxPeers           int

	FeeEstimator *mempool.FeeEstimator
}
