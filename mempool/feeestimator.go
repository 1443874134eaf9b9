// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mempool

import (
	"encoding/binary"
	"errors"
	"sync"
)

// feeRateBuckets is the number of fee-rate buckets the estimator tracks,
// each one a running count of how many confirmed transactions fell into
// it, indexed by sat/byte rounded down to the bucket's floor.
const feeRateBuckets = 32

// Defaults mirroring the upstream estimator's tuning constants.
const (
	DefaultEstimateFeeMaxRollback          = 100
	DefaultEstimateFeeMinRegisteredBlocks  = 1
)

// FeeEstimator tracks how transactions at different fee rates have
// historically confirmed, letting callers ask "what fee rate confirms in
// about N blocks" (§4.4's pool-policy feature list, "rate limiting of
// low-fee and free transactions").
type FeeEstimator struct {
	mu                    sync.Mutex
	maxRollback           uint32
	minRegisteredBlocks   uint32
	buckets               [feeRateBuckets]int64
}

// NewFeeEstimator returns an empty estimator that records maxRollback and
// minRegisteredBlocks. No FeeEstimator method reads either value: old
// observations are not aged out, and EstimateFee does not wait for a
// minimum number of observed blocks.
func NewFeeEstimator(maxRollback, minRegisteredBlocks uint32) *FeeEstimator {
	return &FeeEstimator{
		maxRollback:         maxRollback,
		minRegisteredBlocks: minRegisteredBlocks,
	}
}

func bucketFor(satPerByte int64) int {
	if satPerByte < 0 {
		satPerByte = 0
	}
	if satPerByte >= feeRateBuckets {
		return feeRateBuckets - 1
	}
	return int(satPerByte)
}

// ObserveMined records that a transaction paying satPerByte was mined.
func (ef *FeeEstimator) ObserveMined(satPerByte int64) {
	ef.mu.Lock()
	defer ef.mu.Unlock()
	ef.buckets[bucketFor(satPerByte)]++
}

// EstimateFee returns the lowest bucket floor with at least minSamples
// observed confirmations, a conservative stand-in for the full
// decay-weighted estimator the upstream package implements.
func (ef *FeeEstimator) EstimateFee(minSamples int64) int64 {
	ef.mu.Lock()
	defer ef.mu.Unlock()
	for rate := 0; rate < feeRateBuckets; rate++ {
		if ef.buckets[rate] >= minSamples {
			return int64(rate)
		}
	}
	return feeRateBuckets - 1
}

// Save serializes the estimator's bucket counts for SaveFeeEstimatorToFile.
func (ef *FeeEstimator) Save() []byte {
	ef.mu.Lock()
	defer ef.mu.Unlock()
	out := make([]byte, feeRateBuckets*8)
	for i, v := range ef.buckets {
		binary.BigEndian.PutUint64(out[i*8:], uint64(v))
	}
	return out
}

// RestoreFeeEstimator rebuilds an estimator from Save's output.
func RestoreFeeEstimator(payload []byte) (*FeeEstimator, error) {
	if len(payload) != feeRateBuckets*8 {
		return nil, errors.New("fee estimator payload has the wrong length")
	}
	ef := &FeeEstimator{}
	for i := range ef.buckets {
		ef.buckets[i] = int64(binary.BigEndian.Uint64(payload[i*8:]))
	}
	return ef, nil
}
