// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// nextPowerOfTwo returns the smallest power of two greater than or equal
// to n.
func nextPowerOfTwo(n int) int {
	if n&(n-1) == 0 {
		return n
	}
	exponent := uint(0)
	for 1<<exponent < n {
		exponent++
	}
	return 1 << exponent
}

// hashMerkleBranches combines the two passed hashes to compute the
// resulting hash of their parent node in the merkle tree (§4.5).
func hashMerkleBranches(left, right *chainhash.Hash) *chainhash.Hash {
	var buf [chainhash.HashSize * 2]byte
	copy(buf[:chainhash.HashSize], left[:])
	copy(buf[chainhash.HashSize:], right[:])
	newHash := chainhash.DoubleHashH(buf[:])
	return &newHash
}

// BuildMerkleTreeStore creates a merkle tree from a slice of transactions
// and returns the tree as a flattened slice using a linear array as
// opposed to a tree structure with pointers. The leaves are stored in the
// first portion of the array and the parent nodes are computed and stored
// in the remainder; see §4.5. An odd level's final element is duplicated
// before hashing, matching the unmodified construction the block header's
// merkle root is committed to.
func BuildMerkleTreeStore(transactions []*wire.MsgTx) []*chainhash.Hash {
	nextPoT := nextPowerOfTwo(len(transactions))
	arraySize := nextPoT*2 - 1
	merkles := make([]*chainhash.Hash, arraySize)

	for i, tx := range transactions {
		txHash := tx.TxHash()
		merkles[i] = &txHash
	}

	offset := nextPoT
	for i := 0; i < arraySize-1; i += 2 {
		switch {
		case merkles[i] == nil:
			merkles[offset] = nil
		case merkles[i+1] == nil:
			newHash := hashMerkleBranches(merkles[i], merkles[i])
			merkles[offset] = newHash
		default:
			newHash := hashMerkleBranches(merkles[i], merkles[i+1])
			merkles[offset] = newHash
		}
		offset++
	}

	return merkles
}

// CalcMerkleRoot returns the merkle root computed over transactions,
// per §4.5. An empty list returns the zero hash.
func CalcMerkleRoot(transactions []*wire.MsgTx) chainhash.Hash {
	if len(transactions) == 0 {
		return chainhash.Hash{}
	}
	merkles := BuildMerkleTreeStore(transactions)
	return *merkles[len(merkles)-1]
}

// MerkleBranch is an inclusion proof for one transaction: the sibling
// hash encountered at each level while walking from the leaf to the root,
// together with the leaf's original index (§4.5). The index's bits
// determine, at each level, whether the node being proven is the left or
// right child.
type MerkleBranch struct {
	Index   uint32
	Hashes  []chainhash.Hash
}

// GetMerkleBranch computes the inclusion proof for the transaction at
// position index within transactions.
func GetMerkleBranch(transactions []*wire.MsgTx, index int) MerkleBranch {
	branch := MerkleBranch{Index: uint32(index)}

	level := make([]chainhash.Hash, len(transactions))
	for i, tx := range transactions {
		level[i] = tx.TxHash()
	}

	idx := index
	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}

		siblingIdx := idx ^ 1
		branch.Hashes = append(branch.Hashes, level[siblingIdx])

		next := make([]chainhash.Hash, len(level)/2)
		for i := 0; i < len(next); i++ {
			next[i] = *hashMerkleBranches(&level[2*i], &level[2*i+1])
		}
		level = next
		idx /= 2
	}

	return branch
}

// CheckMerkleBranch recomputes the root implied by leafHash and branch
// and reports whether it equals root (§4.5). At each level it
// concatenates (sibling, current) if the current level-index bit is set,
// else (current, sibling), doubles-SHA-256, then shifts the index right
// by one.
func CheckMerkleBranch(leafHash chainhash.Hash, branch MerkleBranch, root chainhash.Hash) bool {
	cur := leafHash
	idx := branch.Index
	for _, sibling := range branch.Hashes {
		sibling := sibling
		if idx&1 != 0 {
			cur = *hashMerkleBranches(&sibling, &cur)
		} else {
			cur = *hashMerkleBranches(&cur, &sibling)
		}
		idx >>= 1
	}
	return cur == root
}
