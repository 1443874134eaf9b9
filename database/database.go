// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package database defines the on-disk key-value contract spec.md treats
// as an external black box (block index, tx index, address book, and
// wallet records are all stored through it) and a driver backed by
// leveldb.
package database

import "errors"

// ErrKeyNotFound is returned by Read when the key is absent. Contains
// reports an absent key as false with a nil error.
var ErrKeyNotFound = errors.New("database: key not found")

// DB is the minimal key-value surface every persisted component
// (blockchain's TxIndex, addrmgr's address table, wallet's key/output
// records) is built against: Read/Write/Erase/Contains plus atomic
// transactions.
type DB interface {
	Read(key []byte) ([]byte, error)
	Write(key, value []byte) error
	Erase(key []byte) error
	Contains(key []byte) (bool, error)

	// Iterate calls fn for every key with the given prefix, in
	// lexicographic key order, stopping early if fn returns false.
	Iterate(prefix []byte, fn func(key, value []byte) bool) error

	// Begin starts a transaction. Writes made through it are invisible
	// to other readers until Commit.
	Begin() (Tx, error)

	Close() error
}

// Tx is an atomic batch of reads and writes against a DB.
type Tx interface {
	Read(key []byte) ([]byte, error)
	Write(key, value []byte) error
	Erase(key []byte) error
	Contains(key []byte) (bool, error)

	Commit() error
	Rollback() error
}
