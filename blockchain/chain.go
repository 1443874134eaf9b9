// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockchain implements the chain state machine (§4.3): the
// block index tree, block acceptance and orphan buffering, difficulty
// retargeting, reorganization, and the append-only block store.
package blockchain

import (
	"sync"
	"time"

	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// MempoolBridge decouples the chain engine from the memory pool package
// (which in turn depends on blockchain), per §4.3.2's reorg steps:
// transactions removed from the best chain are resurrected into the
// mempool; transactions now on the best chain are pruned from it.
type MempoolBridge interface {
	// RemoveTransaction drops hash from the pool, e.g. because it was
	// just mined.
	RemoveTransaction(hash chainhash.Hash)

	// MaybeAccept re-admits tx to the pool. Failures are silently
	// dropped, per §4.3.2 ("best-effort").
	MaybeAccept(tx *wire.MsgTx)
}

// nopMempoolBridge discards every call; it is the default until a real
// mempool is wired in.
type nopMempoolBridge struct{}

func (nopMempoolBridge) RemoveTransaction(chainhash.Hash) {}
func (nopMempoolBridge) MaybeAccept(*wire.MsgTx)          {}

// BlockChain is the chain state machine: the in-memory block index tree,
// the current best chain tip, the transaction index / UTXO set, and the
// on-disk block store it persists to (§3, §4.3).
type BlockChain struct {
	chainParams *chaincfg.Params
	store       *BlockStore
	txStore     TxStore
	engine      ScriptEngine
	mempool     MempoolBridge
	timeSource  func() time.Time

	chainLock sync.Mutex
	index     blockIndex
	bestChain *blockNode

	orphans     map[chainhash.Hash]*orphanBlock
	prevOrphans map[chainhash.Hash][]*orphanBlock

	// blocks caches every indexed block's transactions by hash, so
	// reorganizeChain can walk the disconnect/connect lists without
	// depending on BlockStore.ReadBlock.
	blocks map[chainhash.Hash]*wire.MsgBlock
}

// New creates a BlockChain for the given network, backed by store for
// raw block bytes and txStore for the transaction index. If the index is
// empty the genesis block defined by params is inserted as the root.
func New(params *chaincfg.Params, store *BlockStore, txStore TxStore) (*BlockChain, error) {
	b := &BlockChain{
		chainParams: params,
		store:       store,
		txStore:     txStore,
		engine:      NewTxScriptEngine(),
		mempool:     nopMempoolBridge{},
		timeSource:  time.Now,
		index:       make(blockIndex),
		orphans:     make(map[chainhash.Hash]*orphanBlock),
		prevOrphans: make(map[chainhash.Hash][]*orphanBlock),
		blocks:      make(map[chainhash.Hash]*wire.MsgBlock),
	}

	genesisNode := newBlockNode(&params.GenesisBlock.Header, nil)
	b.index.addNode(genesisNode)
	b.bestChain = genesisNode
	b.blocks[genesisNode.hash] = params.GenesisBlock

	if err := b.writeBlockIfAbsent(params.GenesisBlock, genesisNode); err != nil {
		return nil, err
	}
	if err := b.connectCoinbase(params.GenesisBlock.Transactions[0], genesisNode.height); err != nil {
		return nil, err
	}

	return b, nil
}

// SetScriptEngine replaces the ScriptEngine used to verify transaction
// inputs. It must be called before any block carrying non-coinbase
// transactions is processed.
func (b *BlockChain) SetScriptEngine(engine ScriptEngine) {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	b.engine = engine
}

// SetMempool wires a MempoolBridge so reorganizations and newly-mined
// blocks keep the pool consistent (§4.3.2).
func (b *BlockChain) SetMempool(mp MempoolBridge) {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	b.mempool = mp
}

// ChainParams implements ChainCtx.
func (b *BlockChain) ChainParams() *chaincfg.Params { return b.chainParams }

// BlocksPerRetarget implements ChainCtx.
func (b *BlockChain) BlocksPerRetarget() int32 { return b.chainParams.BlocksPerRetarget() }

// MinRetargetTimespan implements ChainCtx.
func (b *BlockChain) MinRetargetTimespan() int64 { return b.chainParams.MinRetargetTimespan() }

// MaxRetargetTimespan implements ChainCtx.
func (b *BlockChain) MaxRetargetTimespan() int64 { return b.chainParams.MaxRetargetTimespan() }

// BestHeight returns the height of the current best chain tip.
func (b *BlockChain) BestHeight() int32 {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	return b.bestChain.height
}

// FetchUtxoEntry returns the indexed transaction hash references, for use
// by the mempool's input lookups when validating a transaction against
// the confirmed chain (§4.4 AcceptToMemoryPool).
func (b *BlockChain) FetchUtxoEntry(hash chainhash.Hash) (*TxIndexEntry, bool) {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	return b.txStore.FetchTxIndex(hash)
}

// Engine returns the ScriptEngine this chain verifies inputs with, so the
// mempool can apply the same script-validity rule to pool candidates.
func (b *BlockChain) Engine() ScriptEngine {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	return b.engine
}

// CoinbaseMaturity returns the network's required coinbase confirmation
// depth.
func (b *BlockChain) CoinbaseMaturity() int32 {
	return int32(b.chainParams.CoinbaseMaturity)
}

// BestHash returns the hash of the current best chain tip.
func (b *BlockChain) BestHash() chainhash.Hash {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	return b.bestChain.hash
}

// HaveBlock reports whether hash is already known, either on the main
// chain, a side chain, or in the orphan buffer.
func (b *BlockChain) HaveBlock(hash *chainhash.Hash) bool {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	return b.haveBlockLocked(hash)
}

func (b *BlockChain) haveBlockLocked(hash *chainhash.Hash) bool {
	if b.index.lookupNode(hash) != nil {
		return true
	}
	_, ok := b.orphans[*hash]
	return ok
}

// connectCoinbase seeds the txdb with a block's coinbase TxIndexEntry
// without running ConnectInputs, since a coinbase has no inputs to
// connect. Used for the genesis block and, through
// connectBlockTransactions, for every block connected to the best chain.
func (b *BlockChain) connectCoinbase(tx *wire.MsgTx, height int32) error {
	b.txStore.PutTxIndex(tx.TxHash(), newTxIndexEntry(tx, height))
	return nil
}

// writeBlockIfAbsent appends block to the store and records its
// position on node, unless the node already carries a position (e.g. it
// was reloaded from a persisted index).
func (b *BlockChain) writeBlockIfAbsent(block *wire.MsgBlock, node *blockNode) error {
	if b.store == nil {
		return nil
	}
	file, offset, err := b.store.WriteBlock(block)
	if err != nil {
		return err
	}
	node.diskFile = file
	node.diskOffset = offset
	return nil
}

// ProcessBlock is the entry point of the acceptance pipeline (§4.3): it
// rejects duplicates, applies CheckBlockSanity, buffers an orphan when
// its parent is unknown, otherwise runs AcceptBlock and any
// reorganization it triggers, then recursively retries every buffered
// orphan whose parent is this block. isOrphan reports whether the block
// was buffered rather than connected, which callers use to decide
// whether to request the missing ancestor (§4.3 step 3).
func (b *BlockChain) ProcessBlock(block *wire.MsgBlock) (isOrphan bool, err error) {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()

	hash := block.BlockHash()
	if b.haveBlockLocked(&hash) {
		return false, ruleError(ErrDuplicateBlock, "block already known")
	}

	if err := CheckBlockSanity(block, b.chainParams.PowLimit, b.timeSource()); err != nil {
		return false, err
	}

	prevNode := b.index.lookupNode(&block.Header.PrevBlock)
	if prevNode == nil {
		b.storeOrphanBlock(block)
		return true, nil
	}

	if err := b.acceptBlock(block, prevNode); err != nil {
		return false, err
	}

	b.acceptOrphansOf(&hash)
	return false, nil
}

// acceptBlock implements AcceptBlock (§4.3 step 4): the contextual
// checks that depend on the block's position in the chain, persistence
// to the block store, and promotion to the new index node, followed by
// a re-evaluation of the best chain if warranted.
func (b *BlockChain) acceptBlock(block *wire.MsgBlock, prevNode *blockNode) error {
	node := newBlockNode(&block.Header, prevNode)

	if node.timestamp <= prevNode.calcPastMedianTime() {
		return ruleError(ErrTimeTooOld, "block timestamp is not after median time of last 11 blocks")
	}

	requiredBits, err := calcNextRequiredDifficulty(prevNode, b)
	if err != nil {
		return err
	}
	if block.Header.Bits != requiredBits {
		return ruleError(ErrUnexpectedDifficulty, "block difficulty does not match required value")
	}

	// Unlike CheckBlockSanity, ConnectInputs touches the shared UTXO
	// state, so it must only run for a block that is actually joining
	// the best chain. A block that only extends a side branch is
	// indexed and cached here, and connected later if reorganizeChain
	// ever promotes it (§4.3.2).
	if err := b.writeBlockIfAbsent(block, node); err != nil {
		return err
	}
	b.index.addNode(node)
	b.blocks[node.hash] = block

	if node.height > b.bestChain.height {
		return b.reorganizeChain(node)
	}
	return nil
}

// connectBlockTransactions is ConnectBlock (§4.3.2): it runs
// ConnectInputs over every non-coinbase transaction, accumulating fees,
// checks the coinbase output does not exceed BlockValue, and writes the
// coinbase's own TxIndexEntry. On any failure the store is left exactly
// as it was for every transaction processed before the failing one,
// since reorganizeChain only calls this against a scratch copy of the
// relevant entries (see disconnectBlockTransactions for the inverse).
func (b *BlockChain) connectBlockTransactions(block *wire.MsgBlock, node *blockNode) error {
	var fees int64
	for _, tx := range block.Transactions[1:] {
		fee, err := ConnectInputs(tx, b.txStore, nil, b.engine, node.height, int32(b.chainParams.CoinbaseMaturity), 0)
		if err != nil {
			return err
		}
		fees += fee
	}

	var coinbaseOut int64
	for _, out := range block.Transactions[0].TxOut {
		coinbaseOut += out.Value
	}
	maxValue := BlockValue(node.height, fees, b.chainParams.SubsidyHalvingInterval)
	if coinbaseOut > maxValue {
		return ruleError(ErrBadCoinbaseValue, "coinbase pays more than the allowed subsidy plus fees")
	}

	return b.connectCoinbase(block.Transactions[0], node.height)
}

// disconnectBlockTransactions is DisconnectBlock (§4.3.2): it clears the
// spent-slot of every output consumed by block's non-coinbase
// transactions, erases every transaction's TxIndexEntry (including the
// coinbase's), and returns the non-coinbase transactions so the caller
// can resurrect them into the mempool.
func (b *BlockChain) disconnectBlockTransactions(block *wire.MsgBlock) []*wire.MsgTx {
	resurrected := make([]*wire.MsgTx, 0, len(block.Transactions)-1)
	for _, tx := range block.Transactions[1:] {
		DisconnectInputs(tx, b.txStore)
		resurrected = append(resurrected, tx)
	}
	b.txStore.RemoveTxIndex(block.Transactions[0].TxHash())
	return resurrected
}
