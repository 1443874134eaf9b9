// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/talusnet/talusd/wire"
)

// reorganizeChain re-evaluates the best chain after node's height has
// exceeded it (§4.3.2). In the common case node directly extends the
// current tip and is simply connected; otherwise the chain is
// reorganized onto node's branch: the current best chain is disconnected
// back to the fork point, then node's branch is connected from the fork
// point forward. If connecting the new branch fails partway through,
// the attempt is rolled back by disconnecting what was connected and
// reconnecting the original best chain, so the original chain survives
// any failed reorganization attempt. This rollback is best-effort, not
// transactional, pending a database package with real begin/commit/abort
// semantics.
func (b *BlockChain) reorganizeChain(node *blockNode) error {
	if node.parent == b.bestChain {
		block := b.blocks[node.hash]
		if err := b.connectBlockTransactions(block, node); err != nil {
			return err
		}
		b.bestChain.next = node
		b.bestChain = node
		b.mempool.RemoveTransaction(block.Transactions[0].TxHash())
		for _, tx := range block.Transactions[1:] {
			b.mempool.RemoveTransaction(tx.TxHash())
		}
		return nil
	}

	fork := findFork(b.bestChain, node)

	// D: best-chain tip down to (excluding) the fork point, in the order
	// they must be disconnected (tip first).
	var disconnect []*blockNode
	for n := b.bestChain; n != fork; n = n.parent {
		disconnect = append(disconnect, n)
	}

	// C: fork point up to the new tip, in the order they must be
	// connected (fork-adjacent first).
	var connect []*blockNode
	for n := node; n != fork; n = n.parent {
		connect = append(connect, n)
	}
	for i, j := 0, len(connect)-1; i < j; i, j = i+1, j-1 {
		connect[i], connect[j] = connect[j], connect[i]
	}

	var resurrected []*wire.MsgTx
	for _, n := range disconnect {
		resurrected = append(resurrected, b.disconnectBlockTransactions(b.blocks[n.hash])...)
	}

	connected := 0
	var connectErr error
	for _, n := range connect {
		if err := b.connectBlockTransactions(b.blocks[n.hash], n); err != nil {
			connectErr = err
			break
		}
		connected++
	}

	if connectErr != nil {
		// Roll back: disconnect whatever of C was connected, then
		// reconnect D in its original order.
		for i := connected - 1; i >= 0; i-- {
			b.disconnectBlockTransactions(b.blocks[connect[i].hash])
		}
		for i := len(disconnect) - 1; i >= 0; i-- {
			n := disconnect[i]
			if err := b.connectBlockTransactions(b.blocks[n.hash], n); err != nil {
				return AssertError("failed to roll back a failed reorganization: " + err.Error())
			}
		}
		return connectErr
	}

	// Re-point canonical successors along the winning branch and advance
	// the best chain; blocks that left the best chain lose theirs.
	for _, n := range disconnect {
		n.next = nil
	}
	prev := fork
	for _, n := range connect {
		prev.next = n
		prev = n
	}
	b.bestChain = node

	for _, n := range connect {
		block := b.blocks[n.hash]
		b.mempool.RemoveTransaction(block.Transactions[0].TxHash())
		for _, tx := range block.Transactions[1:] {
			b.mempool.RemoveTransaction(tx.TxHash())
		}
	}
	for _, tx := range resurrected {
		b.mempool.MaybeAccept(tx)
	}

	return nil
}
