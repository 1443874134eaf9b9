// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// LevelDB is the production DB, a thin adapter over goleveldb.
type LevelDB struct {
	ldb *leveldb.DB
}

// Open opens (creating if absent) a leveldb database at path.
func Open(path string) (*LevelDB, error) {
	ldb, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelDB{ldb: ldb}, nil
}

func (d *LevelDB) Read(key []byte) ([]byte, error) {
	v, err := d.ldb.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	return v, err
}

func (d *LevelDB) Write(key, value []byte) error {
	return d.ldb.Put(key, value, nil)
}

func (d *LevelDB) Erase(key []byte) error {
	return d.ldb.Delete(key, nil)
}

func (d *LevelDB) Contains(key []byte) (bool, error) {
	return d.ldb.Has(key, nil)
}

func (d *LevelDB) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	iter := d.ldb.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	for iter.Next() {
		if !fn(iter.Key(), iter.Value()) {
			break
		}
	}
	return iter.Error()
}

func (d *LevelDB) Begin() (Tx, error) {
	tx, err := d.ldb.OpenTransaction()
	if err != nil {
		return nil, err
	}
	return &levelTx{tx: tx}, nil
}

func (d *LevelDB) Close() error {
	return d.ldb.Close()
}

type levelTx struct {
	tx *leveldb.Transaction
}

func (t *levelTx) Read(key []byte) ([]byte, error) {
	v, err := t.tx.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrKeyNotFound
	}
	return v, err
}

func (t *levelTx) Write(key, value []byte) error {
	return t.tx.Put(key, value, nil)
}

func (t *levelTx) Erase(key []byte) error {
	return t.tx.Delete(key, nil)
}

func (t *levelTx) Contains(key []byte) (bool, error) {
	return t.tx.Has(key, nil)
}

func (t *levelTx) Commit() error {
	return t.tx.Commit()
}

func (t *levelTx) Rollback() error {
	t.tx.Discard()
	return nil
}
