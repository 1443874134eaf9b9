// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"sync"
	"time"

	"github.com/decred/dcrd/lru"

	"github.com/talusnet/talusd/blockchain"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// maxOrphanTransactions bounds the orphan buffer (§4.4 policy option "max
// number of orphan transactions allowed").
const maxOrphanTransactions = 100

// TxDesc wraps a pooled transaction with the metadata the pool and miner
// need about it (§4.4 "additional metadata tracking").
type TxDesc struct {
	Tx          *wire.MsgTx
	Added       time.Time
	Height      int32
	Fee         int64
	StartingPriority float64
}

// Chain is the subset of *blockchain.BlockChain the pool validates
// candidate transactions against.
type Chain interface {
	BestHeight() int32
	FetchUtxoEntry(hash chainhash.Hash) (*blockchain.TxIndexEntry, bool)
	Engine() blockchain.ScriptEngine
	CoinbaseMaturity() int32
}

// TxPool is the pool of unmined transactions (§4.4): a byHash/byOutpoint
// index of accepted transactions and an orphan buffer for transactions
// spending not-yet-seen outputs. A transaction spending an output already
// claimed by a pooled transaction is rejected; a pooled transaction is
// never replaced by a conflicting one.
type TxPool struct {
	mu sync.Mutex

	chain Chain

	pool       map[chainhash.Hash]*TxDesc
	outpoints  map[wire.OutPoint]*wire.MsgTx
	scratch    blockchain.MemTxStore

	orphans       map[chainhash.Hash]*wire.MsgTx
	orphansByPrev map[wire.OutPoint]map[chainhash.Hash]*wire.MsgTx
	orphanSeen    *lru.Cache[chainhash.Hash]
}

// New creates an empty pool validating candidates against chain.
func New(chain Chain) *TxPool {
	return &TxPool{
		chain:         chain,
		pool:          make(map[chainhash.Hash]*TxDesc),
		outpoints:     make(map[wire.OutPoint]*wire.MsgTx),
		scratch:       blockchain.NewMemTxStore(),
		orphans:       make(map[chainhash.Hash]*wire.MsgTx),
		orphansByPrev: make(map[wire.OutPoint]map[chainhash.Hash]*wire.MsgTx),
		orphanSeen:    lru.NewCache[chainhash.Hash](maxOrphanTransactions),
	}
}

// TxRuleError identifies a mempool-only policy violation, distinct from a
// blockchain.RuleError consensus violation (§4.4 "Errors").
type TxRuleError struct {
	Description string
}

func (e TxRuleError) Error() string { return e.Description }

// RuleError wraps either a TxRuleError or a blockchain.RuleError so
// callers can type-assert Err to tell mempool policy failures from
// consensus failures apart.
type RuleError struct {
	Err error
}

func (e RuleError) Error() string { return e.Err.Error() }
func (e RuleError) Unwrap() error { return e.Err }

func txRuleError(desc string) error {
	return RuleError{Err: TxRuleError{Description: desc}}
}

// HaveTransaction reports whether hash is already pooled or buffered as an
// orphan.
func (mp *TxPool) HaveTransaction(hash chainhash.Hash) bool {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	_, pooled := mp.pool[hash]
	_, orphaned := mp.orphans[hash]
	return pooled || orphaned
}

// FetchTransaction returns a pooled transaction by hash.
func (mp *TxPool) FetchTransaction(hash chainhash.Hash) (*wire.MsgTx, bool) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	desc, ok := mp.pool[hash]
	if !ok {
		return nil, false
	}
	return desc.Tx, true
}

// TxDescs returns every pooled transaction descriptor, for the miner's
// candidate-assembly pass (§4.7) and the RPC mempool-listing commands.
func (mp *TxPool) TxDescs() []*TxDesc {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	out := make([]*TxDesc, 0, len(mp.pool))
	for _, desc := range mp.pool {
		out = append(out, desc)
	}
	return out
}

// isSpentInPool reports whether outpoint is already claimed by a
// different pooled transaction than exclude.
func (mp *TxPool) isSpentInPool(outpoint wire.OutPoint, exclude chainhash.Hash) (chainhash.Hash, bool) {
	spender, ok := mp.outpoints[outpoint]
	if !ok {
		return chainhash.Hash{}, false
	}
	h := spender.TxHash()
	if h == exclude {
		return chainhash.Hash{}, false
	}
	return h, true
}

// MaybeAccept implements blockchain.MempoolBridge: it re-admits a
// resurrected transaction on a best-effort basis, silently dropping it on
// any failure (§4.3.2's reorg step, "best-effort").
func (mp *TxPool) MaybeAccept(tx *wire.MsgTx) {
	_, _, _ = mp.ProcessTransaction(tx)
}

// RemoveTransaction implements blockchain.MempoolBridge: it drops hash and
// every transaction that spends one of its outputs.
func (mp *TxPool) RemoveTransaction(hash chainhash.Hash) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	mp.removeTransactionLocked(hash, RemovalReasonBlock)
}

func (mp *TxPool) removeTransactionLocked(hash chainhash.Hash, reason RemovalReason) {
	desc, ok := mp.pool[hash]
	if !ok {
		return
	}

	for i := range desc.Tx.TxOut {
		op := wire.OutPoint{Hash: hash, Index: uint32(i)}
		if spender, ok := mp.outpoints[op]; ok {
			mp.removeTransactionLocked(spender.TxHash(), RemovalReasonConflict)
		}
	}

	for _, in := range desc.Tx.TxIn {
		delete(mp.outpoints, in.PreviousOutPoint)
	}
	mp.scratch.RemoveTxIndex(hash)
	delete(mp.pool, hash)
}

// ProcessTransaction is the pool's entry point (§4.4 AcceptToMemoryPool):
// it validates tx against consensus rules and the current pool state,
// accepts it (and any orphans it unblocks) on success, or buffers it as
// an orphan if it spends an output the pool hasn't seen yet.
func (mp *TxPool) ProcessTransaction(tx *wire.MsgTx) (accepted []*wire.MsgTx, isOrphan bool, err error) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	hash := tx.TxHash()
	if _, ok := mp.pool[hash]; ok {
		return nil, false, txRuleError("transaction already in pool")
	}
	if blockchain.IsCoinBase(tx) {
		return nil, false, txRuleError("coinbase transaction may not be individually submitted")
	}
	if err := blockchain.CheckTransaction(tx); err != nil {
		if rerr, ok := err.(blockchain.RuleError); ok {
			err = RuleError{Err: rerr}
		}
		return nil, false, err
	}

	missingParent := false
	for _, in := range tx.TxIn {
		if _, ok := mp.chain.FetchUtxoEntry(in.PreviousOutPoint.Hash); ok {
			continue
		}
		if _, ok := mp.scratch.FetchTxIndex(in.PreviousOutPoint.Hash); ok {
			continue
		}
		missingParent = true
		break
	}
	if missingParent {
		mp.addOrphan(tx)
		return nil, true, nil
	}

	for _, in := range tx.TxIn {
		if _, ok := mp.isSpentInPool(in.PreviousOutPoint, hash); ok {
			return nil, false, txRuleError("transaction double-spends an output already claimed in the pool")
		}
	}

	fee, err := blockchain.ConnectInputs(tx, mp.scratch, chainStoreAdapter{mp.chain}, mp.chain.Engine(),
		mp.chain.BestHeight()+1, mp.chain.CoinbaseMaturity(), 0)
	if err != nil {
		if rerr, ok := err.(blockchain.RuleError); ok {
			err = RuleError{Err: rerr}
		}
		return nil, false, err
	}

	desc := &TxDesc{
		Tx:     tx,
		Added:  time.Now(),
		Height: mp.chain.BestHeight(),
		Fee:    fee,
	}
	mp.pool[hash] = desc
	for _, in := range tx.TxIn {
		mp.outpoints[in.PreviousOutPoint] = tx
	}

	accepted = append(accepted, tx)
	accepted = append(accepted, mp.acceptOrphansSpending(hash)...)
	return accepted, false, nil
}

// chainStoreAdapter exposes the chain's confirmed UTXO set as a
// blockchain.TxStore fallback for ConnectInputs, without handing the pool
// write access to it.
type chainStoreAdapter struct {
	chain Chain
}

func (a chainStoreAdapter) FetchTxIndex(hash chainhash.Hash) (*blockchain.TxIndexEntry, bool) {
	return a.chain.FetchUtxoEntry(hash)
}
func (chainStoreAdapter) PutTxIndex(chainhash.Hash, *blockchain.TxIndexEntry) {}
func (chainStoreAdapter) RemoveTxIndex(chainhash.Hash)                       {}

// addOrphan buffers tx, indexed both by its own hash and by every
// outpoint it spends, evicting an arbitrary buffered orphan if the buffer
// already holds maxOrphanTransactions. A hash still recorded in orphanSeen
// is not buffered again.
func (mp *TxPool) addOrphan(tx *wire.MsgTx) {
	hash := tx.TxHash()
	if mp.orphanSeen.Contains(hash) {
		return
	}
	if len(mp.orphans) >= maxOrphanTransactions {
		for h := range mp.orphans {
			mp.removeOrphanLocked(h)
			break
		}
	}

	mp.orphans[hash] = tx
	mp.orphanSeen.Add(hash)
	for _, in := range tx.TxIn {
		if mp.orphansByPrev[in.PreviousOutPoint] == nil {
			mp.orphansByPrev[in.PreviousOutPoint] = make(map[chainhash.Hash]*wire.MsgTx)
		}
		mp.orphansByPrev[in.PreviousOutPoint][hash] = tx
	}
}

func (mp *TxPool) removeOrphanLocked(hash chainhash.Hash) {
	tx, ok := mp.orphans[hash]
	if !ok {
		return
	}
	for _, in := range tx.TxIn {
		byPrev := mp.orphansByPrev[in.PreviousOutPoint]
		delete(byPrev, hash)
		if len(byPrev) == 0 {
			delete(mp.orphansByPrev, in.PreviousOutPoint)
		}
	}
	delete(mp.orphans, hash)
}

// acceptOrphansSpending re-attempts every orphan that spends one of
// newlyAccepted's outputs, recursively unblocking their own dependents
// (§4.4 "automatic addition of orphan transactions that are no longer
// orphans").
func (mp *TxPool) acceptOrphansSpending(newlyAccepted chainhash.Hash) []*wire.MsgTx {
	var out []*wire.MsgTx
	if _, ok := mp.pool[newlyAccepted]; !ok {
		return nil
	}

	queue := []chainhash.Hash{newlyAccepted}
	seen := map[chainhash.Hash]bool{}
	for _, parent := range queue {
		parentTx := mp.pool[parent].Tx
		for i := range parentTx.TxOut {
			op := wire.OutPoint{Hash: parent, Index: uint32(i)}
			for candHash, candTx := range mp.orphansByPrev[op] {
				if seen[candHash] {
					continue
				}
				seen[candHash] = true
				mp.removeOrphanLocked(candHash)

				stillMissing := false
				for _, in := range candTx.TxIn {
					if _, ok := mp.chain.FetchUtxoEntry(in.PreviousOutPoint.Hash); ok {
						continue
					}
					if _, ok := mp.scratch.FetchTxIndex(in.PreviousOutPoint.Hash); ok {
						continue
					}
					stillMissing = true
					break
				}
				if stillMissing {
					mp.addOrphan(candTx)
					continue
				}

				fee, err := blockchain.ConnectInputs(candTx, mp.scratch, chainStoreAdapter{mp.chain},
					mp.chain.Engine(), mp.chain.BestHeight()+1, mp.chain.CoinbaseMaturity(), 0)
				if err != nil {
					continue
				}
				ch := candTx.TxHash()
				mp.pool[ch] = &TxDesc{Tx: candTx, Added: time.Now(), Height: mp.chain.BestHeight(), Fee: fee}
				for _, in := range candTx.TxIn {
					mp.outpoints[in.PreviousOutPoint] = candTx
				}
				out = append(out, candTx)
				queue = append(queue, ch)
			}
		}
	}
	return out
}
