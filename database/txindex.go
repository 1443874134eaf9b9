// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"bytes"
	"encoding/binary"

	"github.com/talusnet/talusd/blockchain"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// txIndexPrefix namespaces transaction-index records within the shared
// key-value store, so the same DB can also hold the address book and
// wallet records (§6, "persisted state").
var txIndexPrefix = []byte("txidx:")

func txIndexKey(hash chainhash.Hash) []byte {
	return append(append([]byte{}, txIndexPrefix...), hash[:]...)
}

func encodeTxIndexEntry(e *blockchain.TxIndexEntry) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, e.BlockHeight); err != nil {
		return nil, err
	}
	if err := e.Tx.Serialize(&buf); err != nil {
		return nil, err
	}
	if err := binary.Write(&buf, binary.LittleEndian, uint32(len(e.Spent))); err != nil {
		return nil, err
	}
	for _, h := range e.Spent {
		buf.Write(h[:])
	}
	return buf.Bytes(), nil
}

func decodeTxIndexEntry(data []byte) (*blockchain.TxIndexEntry, error) {
	buf := bytes.NewReader(data)
	var height int32
	if err := binary.Read(buf, binary.LittleEndian, &height); err != nil {
		return nil, err
	}
	tx := new(wire.MsgTx)
	if err := tx.Deserialize(buf); err != nil {
		return nil, err
	}
	var n uint32
	if err := binary.Read(buf, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	spent := make([]chainhash.Hash, n)
	for i := range spent {
		if _, err := buf.Read(spent[i][:]); err != nil {
			return nil, err
		}
	}
	return &blockchain.TxIndexEntry{Tx: tx, BlockHeight: height, Spent: spent}, nil
}

// TxIndexStore persists blockchain's transaction index through a DB,
// replacing blockchain.MemTxStore once a node runs past the in-memory
// prototype stage (§3 "TxIndex ... persistent, keyed by hash").
type TxIndexStore struct {
	db DB
}

// NewTxIndexStore wraps db as a transaction-index store.
func NewTxIndexStore(db DB) *TxIndexStore {
	return &TxIndexStore{db: db}
}

// FetchTxIndex satisfies blockchain.TxStore by structural typing.
func (s *TxIndexStore) FetchTxIndex(hash chainhash.Hash) (*blockchain.TxIndexEntry, bool) {
	raw, err := s.db.Read(txIndexKey(hash))
	if err != nil {
		return nil, false
	}
	entry, err := decodeTxIndexEntry(raw)
	if err != nil {
		return nil, false
	}
	return entry, true
}

func (s *TxIndexStore) PutTxIndex(hash chainhash.Hash, entry *blockchain.TxIndexEntry) {
	raw, err := encodeTxIndexEntry(entry)
	if err != nil {
		return
	}
	_ = s.db.Write(txIndexKey(hash), raw)
}

func (s *TxIndexStore) RemoveTxIndex(hash chainhash.Hash) {
	_ = s.db.Erase(txIndexKey(hash))
}
