// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sort"

	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// medianTimeBlocks is the number of previous blocks used when computing
// the median time used to validate block timestamps (§4.3, "Acceptance
// pipeline").
const medianTimeBlocks = 11

// blockNode is an in-memory node of the block index tree (§3 BlockIndex):
// header fields, a parent pointer, a cached hash, and the position of the
// block within the append-only block-file sequence. Parent/child links
// use plain pointers — Go's garbage collector handles the resulting
// cycles the source's node arena exists to avoid in languages without it.
type blockNode struct {
	parent *blockNode
	next   *blockNode // canonical successor; nil when not on the best chain

	hash       chainhash.Hash
	height     int32
	version    int32
	bits       uint32
	timestamp  int64
	merkleRoot chainhash.Hash
	nonce      uint32

	diskFile   uint32
	diskOffset uint32
}

// newBlockNode builds a blockNode from a block header and the parent it
// extends. parent may be nil only for the genesis block.
func newBlockNode(header *wire.BlockHeader, parent *blockNode) *blockNode {
	node := &blockNode{
		parent:     parent,
		hash:       header.BlockHash(),
		version:    header.Version,
		bits:       header.Bits,
		timestamp:  header.Timestamp.Unix(),
		merkleRoot: header.MerkleRoot,
		nonce:      header.Nonce,
	}
	if parent != nil {
		node.height = parent.height + 1
	}
	return node
}

// Height implements HeaderCtx.
func (n *blockNode) Height() int32 { return n.height }

// Bits implements HeaderCtx.
func (n *blockNode) Bits() uint32 { return n.bits }

// Timestamp implements HeaderCtx.
func (n *blockNode) Timestamp() int64 { return n.timestamp }

// Parent implements HeaderCtx.
func (n *blockNode) Parent() HeaderCtx {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// RelativeAncestorCtx implements HeaderCtx.
func (n *blockNode) RelativeAncestorCtx(distance int32) HeaderCtx {
	a := n.ancestor(distance)
	if a == nil {
		return nil
	}
	return a
}

// ancestor returns the ancestor block node at the given distance before
// this node, or nil if distance is negative or exceeds the node's height.
func (n *blockNode) ancestor(distance int32) *blockNode {
	if distance < 0 || distance > n.height {
		return nil
	}
	node := n
	for i := int32(0); i < distance && node != nil; i++ {
		node = node.parent
	}
	return node
}

// relativeAncestor is a typed convenience wrapper over ancestor.
func (n *blockNode) relativeAncestor(distance int32) *blockNode {
	return n.ancestor(distance)
}

// calcPastMedianTime returns the median UTC timestamp of the previous
// medianTimeBlocks blocks ending with, and including, this node (§4.3,
// "GetMedianTimePast").
func (n *blockNode) calcPastMedianTime() int64 {
	timestamps := make([]int64, 0, medianTimeBlocks)
	iter := n
	for i := 0; i < medianTimeBlocks && iter != nil; i++ {
		timestamps = append(timestamps, iter.timestamp)
		iter = iter.parent
	}

	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })
	return timestamps[len(timestamps)/2]
}

// header reconstructs the wire.BlockHeader this node was built from.
func (n *blockNode) header() wire.BlockHeader {
	h := wire.BlockHeader{
		Version:    n.version,
		MerkleRoot: n.merkleRoot,
		Bits:       n.bits,
		Nonce:      n.nonce,
	}
	if n.parent != nil {
		h.PrevBlock = n.parent.hash
	}
	h.Timestamp = unixToTime(n.timestamp)
	return h
}

// blockIndex is the arena of every known block-index record, keyed by
// block hash (§3 BlockIndex). It is guarded by the owning BlockChain's
// chainLock.
type blockIndex map[chainhash.Hash]*blockNode

// lookupNode returns the node for hash, or nil if unknown.
func (bi blockIndex) lookupNode(hash *chainhash.Hash) *blockNode {
	return bi[*hash]
}

// addNode inserts node into the index.
func (bi blockIndex) addNode(node *blockNode) {
	bi[node.hash] = node
}

// findFork walks a and b back in lockstep by height until their pointers
// converge, returning the fork point (§4.3.2, "Best-chain selection").
func findFork(a, b *blockNode) *blockNode {
	for a.height > b.height {
		a = a.parent
	}
	for b.height > a.height {
		b = b.parent
	}
	for a != b {
		a = a.parent
		b = b.parent
	}
	return a
}
