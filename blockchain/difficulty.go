// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/chainhash"
)

var (
	bigOne    = big.NewInt(1)
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *chainhash.Hash) *big.Int {
	buf := *hash
	for i := 0; i < len(buf)/2; i++ {
		buf[i], buf[len(buf)-1-i] = buf[len(buf)-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// CompactToBig converts a compact representation of a whole number N,
// stored as an unsigned 32-bit number, to a big integer (§6). The
// representation is similar to IEEE754 floating point numbers.
//
// Like IEEE754 floating point, there are three basic components: the
// sign, the exponent, and the mantissa. They are broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - bit 23 (the 24th bit) represents the sign bit
//   - the least significant 23 bits represent the mantissa
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := compact >> 24

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(uint(exponent)-3))
	}

	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// BigToCompact converts a whole number N to a compact representation
// using an unsigned 32-bit number (§6). The compact representation only
// provides 23 bits of precision, so values larger than (2^23 - 1) only
// encode the most significant digits of the number.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// CalcWork calculates a work value from difficulty bits. Talus increases
// the difficulty for generating a block by decreasing the value which the
// generated hash must be less than. This difficulty target is stored in
// each block header using a compact representation as described in the
// documentation for CompactToBig. Since a lower target difficulty value
// equates to higher actual difficulty, the work value accumulated must be
// the inverse of the difficulty: in order to avoid potential division by
// zero and really small floating point numbers, the result adds 1 to the
// denominator and multiplies the numerator by 2^256.
func CalcWork(bits uint32) *big.Int {
	target := CompactToBig(bits)
	if target.Sign() <= 0 {
		return big.NewInt(0)
	}
	denominator := new(big.Int).Add(target, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}

// HeaderCtx is the minimal view of a block-index node the difficulty
// calculation needs: a position in the chain with a parent pointer,
// decoupled from any particular in-memory representation (§3 BlockIndex).
type HeaderCtx interface {
	Height() int32
	Bits() uint32
	Timestamp() int64
	Parent() HeaderCtx

	// RelativeAncestorCtx returns the ancestor distance blocks before
	// this node in the chain, or nil if distance exceeds the node's
	// height.
	RelativeAncestorCtx(distance int32) HeaderCtx
}

// ChainCtx supplies the network parameters a difficulty recalculation
// needs.
type ChainCtx interface {
	ChainParams() *chaincfg.Params
	BlocksPerRetarget() int32
	MinRetargetTimespan() int64
	MaxRetargetTimespan() int64
}

// calcNextRequiredDifficulty calculates the required difficulty for the
// block after the passed previous HeaderCtx based on the difficulty
// retarget rules of §4.3.1. This function accepts any block node,
// decoupled from any particular best-chain state, so it can be reused
// both by live validation and by tests that construct a synthetic chain.
func calcNextRequiredDifficulty(lastNode HeaderCtx, c ChainCtx) (uint32, error) {
	if lastNode == nil {
		return c.ChainParams().PowLimitBits, nil
	}

	// The target is unchanged except every BlocksPerRetarget blocks
	// (§4.3.1): a retarget happens going into the block at height
	// lastNode.Height()+1 only when that height is a multiple of the
	// retarget interval.
	if (lastNode.Height()+1)%c.BlocksPerRetarget() != 0 {
		return lastNode.Bits(), nil
	}

	// Ancestor lookup walks BlocksPerRetarget-1 parents back, not
	// BlocksPerRetarget: this off-by-one is part of consensus and must
	// be preserved exactly (§4.3.1, §9 REDESIGN FLAGS).
	firstNode := lastNode.RelativeAncestorCtx(c.BlocksPerRetarget() - 1)
	if firstNode == nil {
		return 0, AssertError("unable to obtain previous retarget block")
	}

	actualTimespan := lastNode.Timestamp() - firstNode.Timestamp()
	adjustedTimespan := actualTimespan
	if actualTimespan < c.MinRetargetTimespan() {
		adjustedTimespan = c.MinRetargetTimespan()
	} else if actualTimespan > c.MaxRetargetTimespan() {
		adjustedTimespan = c.MaxRetargetTimespan()
	}

	oldTarget := CompactToBig(lastNode.Bits())
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(adjustedTimespan))
	targetTimespan := int64(c.ChainParams().TargetTimespan / time.Second)
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	if newTarget.Cmp(c.ChainParams().PowLimit) > 0 {
		newTarget.Set(c.ChainParams().PowLimit)
	}

	newTargetBits := BigToCompact(newTarget)
	log.Debugf("Difficulty retarget at block height %d", lastNode.Height()+1)
	log.Debugf("Old target %08x (%064x)", lastNode.Bits(), oldTarget)
	log.Debugf("New target %08x (%064x)", newTargetBits, CompactToBig(newTargetBits))
	log.Debugf("Actual timespan %v, adjusted timespan %v, target timespan %v",
		time.Duration(actualTimespan)*time.Second,
		time.Duration(adjustedTimespan)*time.Second,
		c.ChainParams().TargetTimespan)

	return newTargetBits, nil
}

// CalcNextRequiredDifficulty calculates the required difficulty for the
// block after the end of the current best chain based on the difficulty
// retarget rules.
//
// This function is safe for concurrent access.
func (b *BlockChain) CalcNextRequiredDifficulty() (uint32, error) {
	b.chainLock.Lock()
	defer b.chainLock.Unlock()
	return calcNextRequiredDifficulty(b.bestChain, b)
}
