// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package database

import (
	"bytes"
	"sort"
	"sync"
)

// MemDB is an in-memory DB, used by package tests that don't need actual
// persistence.
type MemDB struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemDB returns an empty in-memory database.
func NewMemDB() *MemDB {
	return &MemDB{data: make(map[string][]byte)}
}

func (d *MemDB) Read(key []byte) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, ok := d.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (d *MemDB) Write(key, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	d.data[string(key)] = v
	return nil
}

func (d *MemDB) Erase(key []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.data, string(key))
	return nil
}

func (d *MemDB) Contains(key []byte) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.data[string(key)]
	return ok, nil
}

func (d *MemDB) Iterate(prefix []byte, fn func(key, value []byte) bool) error {
	d.mu.Lock()
	keys := make([]string, 0, len(d.data))
	for k := range d.data {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	snapshot := make(map[string][]byte, len(keys))
	for _, k := range keys {
		snapshot[k] = d.data[k]
	}
	d.mu.Unlock()

	for _, k := range keys {
		if !fn([]byte(k), snapshot[k]) {
			break
		}
	}
	return nil
}

func (d *MemDB) Begin() (Tx, error) {
	return &memTx{db: d, writes: make(map[string][]byte), erased: make(map[string]bool)}, nil
}

func (d *MemDB) Close() error { return nil }

// memTx buffers writes until Commit, giving callers transaction
// all-or-nothing semantics without a second storage engine in tests.
type memTx struct {
	db     *MemDB
	writes map[string][]byte
	erased map[string]bool
}

func (t *memTx) Read(key []byte) ([]byte, error) {
	k := string(key)
	if t.erased[k] {
		return nil, ErrKeyNotFound
	}
	if v, ok := t.writes[k]; ok {
		return v, nil
	}
	return t.db.Read(key)
}

func (t *memTx) Write(key, value []byte) error {
	k := string(key)
	delete(t.erased, k)
	t.writes[k] = append([]byte(nil), value...)
	return nil
}

func (t *memTx) Erase(key []byte) error {
	k := string(key)
	delete(t.writes, k)
	t.erased[k] = true
	return nil
}

func (t *memTx) Contains(key []byte) (bool, error) {
	_, err := t.Read(key)
	if err == ErrKeyNotFound {
		return false, nil
	}
	return err == nil, err
}

func (t *memTx) Commit() error {
	for k := range t.erased {
		_ = t.db.Erase([]byte(k))
	}
	for k, v := range t.writes {
		if err := t.db.Write([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

func (t *memTx) Rollback() error {
	t.writes = nil
	t.erased = nil
	return nil
}
