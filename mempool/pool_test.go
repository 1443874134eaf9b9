// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talusnet/talusd/blockchain"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// fakeChain is a minimal Chain satisfied entirely in memory, so pool
// tests don't need a full BlockChain.
type fakeChain struct {
	height int32
	utxos  blockchain.MemTxStore
}

func newFakeChain() *fakeChain {
	return &fakeChain{utxos: blockchain.NewMemTxStore()}
}

func (c *fakeChain) BestHeight() int32 { return c.height }
func (c *fakeChain) FetchUtxoEntry(hash chainhash.Hash) (*blockchain.TxIndexEntry, bool) {
	return c.utxos.FetchTxIndex(hash)
}
func (c *fakeChain) Engine() blockchain.ScriptEngine { return blockchain.NopScriptEngine{} }
func (c *fakeChain) CoinbaseMaturity() int32         { return 100 }

func fundedOutput(chain *fakeChain, value int64) wire.OutPoint {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, wire.MaxPrevOutIndex), nil))
	tx.AddTxOut(&wire.TxOut{Value: value, PkScript: nil})
	hash := tx.TxHash()
	chain.utxos.PutTxIndex(hash, &blockchain.TxIndexEntry{
		Tx:          tx,
		BlockHeight: 1,
		Spent:       make([]chainhash.Hash, 1),
	})
	return wire.OutPoint{Hash: hash, Index: 0}
}

func spendTx(prev wire.OutPoint, value int64) *wire.MsgTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(&prev, nil))
	tx.AddTxOut(&wire.TxOut{Value: value, PkScript: nil})
	return tx
}

func TestProcessTransactionAccepts(t *testing.T) {
	chain := newFakeChain()
	chain.height = 200
	pool := New(chain)

	prev := fundedOutput(chain, 5000)
	tx := spendTx(prev, 4000)

	accepted, isOrphan, err := pool.ProcessTransaction(tx)
	require.NoError(t, err)
	require.False(t, isOrphan)
	require.Len(t, accepted, 1)
	require.True(t, pool.HaveTransaction(tx.TxHash()))
}

func TestProcessTransactionRejectsDoubleSpendInPool(t *testing.T) {
	chain := newFakeChain()
	chain.height = 200
	pool := New(chain)

	prev := fundedOutput(chain, 5000)
	tx1 := spendTx(prev, 4000)
	tx2 := spendTx(prev, 3000)

	_, _, err := pool.ProcessTransaction(tx1)
	require.NoError(t, err)

	_, _, err = pool.ProcessTransaction(tx2)
	require.Error(t, err)
}

func TestProcessTransactionBuffersOrphan(t *testing.T) {
	chain := newFakeChain()
	pool := New(chain)

	unknown := wire.OutPoint{Hash: chainhash.HashH([]byte("not yet seen")), Index: 0}
	tx := spendTx(unknown, 1000)

	accepted, isOrphan, err := pool.ProcessTransaction(tx)
	require.NoError(t, err)
	require.True(t, isOrphan)
	require.Nil(t, accepted)
	require.True(t, pool.HaveTransaction(tx.TxHash()))
}

func TestRemoveTransactionCascadesToSpenders(t *testing.T) {
	chain := newFakeChain()
	chain.height = 200
	pool := New(chain)

	prev := fundedOutput(chain, 5000)
	parent := spendTx(prev, 4000)
	_, _, err := pool.ProcessTransaction(parent)
	require.NoError(t, err)

	parentHash := parent.TxHash()
	child := spendTx(wire.OutPoint{Hash: parentHash, Index: 0}, 3000)
	_, _, err = pool.ProcessTransaction(child)
	require.NoError(t, err)

	pool.RemoveTransaction(parentHash)
	require.False(t, pool.HaveTransaction(parentHash))
	require.False(t, pool.HaveTransaction(child.TxHash()))
}
