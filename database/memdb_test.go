// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talusnet/talusd/blockchain"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

func TestMemDBReadWriteErase(t *testing.T) {
	db := NewMemDB()

	_, err := db.Read([]byte("k"))
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, db.Write([]byte("k"), []byte("v")))
	v, err := db.Read([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)

	ok, err := db.Contains([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, db.Erase([]byte("k")))
	ok, err = db.Contains([]byte("k"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemDBTransactionCommit(t *testing.T) {
	db := NewMemDB()
	tx, err := db.Begin()
	require.NoError(t, err)

	require.NoError(t, tx.Write([]byte("a"), []byte("1")))
	_, err = db.Read([]byte("a"))
	require.ErrorIs(t, err, ErrKeyNotFound, "uncommitted writes must not be visible outside the transaction")

	require.NoError(t, tx.Commit())
	v, err := db.Read([]byte("a"))
	require.NoError(t, err)
	require.Equal(t, []byte("1"), v)
}

func TestMemDBTransactionRollback(t *testing.T) {
	db := NewMemDB()
	require.NoError(t, db.Write([]byte("a"), []byte("orig")))

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, tx.Write([]byte("a"), []byte("changed")))
	require.NoError(t, tx.Rollback())

	v, err := db.Read([]byte("a"))
	require.NoError(t, err)
	require.Equal(t, []byte("orig"), v)
}

func TestTxIndexStoreRoundTrip(t *testing.T) {
	db := NewMemDB()
	store := NewTxIndexStore(db)

	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxOut(&wire.TxOut{Value: 1000, PkScript: []byte{0x76, 0xa9}})
	hash := tx.TxHash()

	entry := &blockchain.TxIndexEntry{
		Tx:          tx,
		BlockHeight: 42,
		Spent:       make([]chainhash.Hash, 1),
	}
	store.PutTxIndex(hash, entry)

	got, ok := store.FetchTxIndex(hash)
	require.True(t, ok)
	require.Equal(t, int32(42), got.BlockHeight)
	require.Equal(t, tx.TxHash(), got.Tx.TxHash())

	store.RemoveTxIndex(hash)
	_, ok = store.FetchTxIndex(hash)
	require.False(t, ok)
}
