// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/talusnet/talusd/addrmgr"
	"github.com/talusnet/talusd/blockchain"
	"github.com/talusnet/talusd/database"
	"github.com/talusnet/talusd/limits"
	flog "github.com/talusnet/talusd/log/v2"
	"github.com/talusnet/talusd/mempool"
)

var cfg *config

// node bundles the long-running subsystems of a running talusd process, per
// the single-Node-context shape described in spec.md section 9.
type node struct {
	db      database.DB
	store   *blockchain.BlockStore
	chain   *blockchain.BlockChain
	mempool *mempool.TxPool
	addrs   *addrmgr.AddrManager
}

func newNode(cfg *config) (*node, error) {
	blockDir := filepath.Join(cfg.DataDir, "blocks")
	store, err := blockchain.NewBlockStore(blockDir)
	if err != nil {
		return nil, fmt.Errorf("opening block store: %w", err)
	}

	var db database.DB
	switch cfg.DbType {
	case "memdb":
		db = database.NewMemDB()
	case "leveldb":
		dbPath := filepath.Join(cfg.DataDir, "index")
		ldb, err := database.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("opening leveldb index: %w", err)
		}
		db = ldb
	default:
		return nil, fmt.Errorf("unknown database backend %q", cfg.DbType)
	}

	txStore := database.NewTxIndexStore(db)

	chain, err := blockchain.New(activeNetParams.Params, store, txStore)
	if err != nil {
		return nil, fmt.Errorf("initializing chain: %w", err)
	}

	pool := mempool.New(chain)
	chain.SetMempool(pool)

	return &node{
		db:      db,
		store:   store,
		chain:   chain,
		mempool: pool,
		addrs:   addrmgr.New(),
	}, nil
}

func (n *node) shutdown() {
	if err := n.store.Close(); err != nil {
		talusdLog.Warnf("Error closing block store: %v", err)
	}
	if err := n.db.Close(); err != nil {
		talusdLog.Warnf("Error closing database: %v", err)
	}
}

var talusdLog flog.Logger

func realMain() error {
	tcfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	if err := initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename)); err != nil {
		return fmt.Errorf("initializing log rotator: %w", err)
	}
	defer func() {
		if logRotator != nil {
			logRotator.Close()
		}
	}()

	backend := newLogBackend()
	talusdLog = backend.Logger("TLSD")
	blockchain.UseLogger(backend.Logger("CHAN"))
	mempool.UseLogger(backend.Logger("MPOL"))
	addrmgr.UseLogger(backend.Logger("ADMR"))

	talusdLog.Infof("Starting talusd on %s", netName(activeNetParams))

	if err := limits.SetLimits(); err != nil {
		talusdLog.Warnf("Failed to raise file descriptor limits: %v", err)
	}

	n, err := newNode(cfg)
	if err != nil {
		return err
	}
	defer n.shutdown()

	talusdLog.Infof("Chain best height %d", n.chain.BestHeight())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt
	talusdLog.Info("Received shutdown signal")
	return nil
}

func main() {
	if os.Getenv("GOGC") == "" {
		// Block and transaction processing can cause bursty
		// allocations; cap the GC target to keep peak RSS down.
		debug.SetGCPercent(10)
	}

	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
