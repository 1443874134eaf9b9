// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// orphanBlock is a block buffered because its parent has not yet been
// seen (§3, §4.3 step 3).
type orphanBlock struct {
	block *wire.MsgBlock
}

// storeOrphanBlock buffers block, indexed by both its own hash and its
// parent's hash, so acceptOrphansOf can find it once the parent arrives.
// A duplicate orphan (same hash already buffered) is silently ignored.
func (b *BlockChain) storeOrphanBlock(block *wire.MsgBlock) {
	hash := block.BlockHash()
	if _, ok := b.orphans[hash]; ok {
		return
	}

	orphan := &orphanBlock{block: block}
	b.orphans[hash] = orphan

	prevHash := block.Header.PrevBlock
	b.prevOrphans[prevHash] = append(b.prevOrphans[prevHash], orphan)
}

// acceptOrphansOf processes every orphan waiting on hash, in the order
// they arrived, recursively unlocking whatever further orphans each one
// resolves. An orphan that fails AcceptBlock's checks is dropped rather
// than retried (§4.3 step 3, "process any orphan blocks").
func (b *BlockChain) acceptOrphansOf(hash *chainhash.Hash) {
	queue := []chainhash.Hash{*hash}

	for len(queue) > 0 {
		parentHash := queue[0]
		queue = queue[1:]

		children := b.prevOrphans[parentHash]
		if len(children) == 0 {
			continue
		}
		delete(b.prevOrphans, parentHash)

		prevNode := b.index.lookupNode(&parentHash)
		if prevNode == nil {
			// The supposed parent isn't actually connected (shouldn't
			// happen); drop these orphans rather than loop forever.
			for _, orphan := range children {
				delete(b.orphans, orphan.block.BlockHash())
			}
			continue
		}

		for _, orphan := range children {
			childHash := orphan.block.BlockHash()
			delete(b.orphans, childHash)

			if err := b.acceptBlock(orphan.block, prevNode); err != nil {
				log.Debugf("Failed to accept orphan block %s: %v", childHash, err)
				continue
			}
			queue = append(queue, childHash)
		}
	}
}
