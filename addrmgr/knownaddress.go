// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrmgr

import (
	"time"

	"github.com/talusnet/talusd/wire"
)

// KnownAddress tracks information about a known network address that is
// used to determine how viable an address is as a peer candidate.
type KnownAddress struct {
	na          *wire.NetAddress
	srcAddr     *wire.NetAddress
	attempts    int
	lastattempt time.Time
	lastsuccess time.Time
	tried       bool
	refs        int
}

// NetAddress returns the underlying network address.
func (ka *KnownAddress) NetAddress() *wire.NetAddress {
	return ka.na
}

// isBad returns true if the address is unlikely to be a good peer. An
// address tried in the last minute is never bad; otherwise it is bad if
// its timestamp is more than ten minutes in the future or before the Unix
// epoch, if it has failed three or more attempts with no success ever
// recorded, if it has no recorded success and hasn't been seen in over
// numMissingDays days, or if it has failed maxFailures or more attempts
// with no success in the last numRetryDays days.
func (ka *KnownAddress) isBad() bool {
	if ka.lastattempt.After(time.Now().Add(-time.Minute)) {
		return false
	}

	if ka.na.Timestamp.After(time.Now().Add(time.Minute * 10)) {
		return true
	}

	if ka.na.Timestamp.Before(time.Unix(0, 0)) {
		return true
	}

	if ka.lastsuccess.IsZero() && ka.attempts >= 3 {
		return true
	}

	if ka.lastsuccess.IsZero() &&
		ka.na.Timestamp.Before(time.Now().Add(-numMissingDays*24*time.Hour)) {
		return true
	}

	if ka.lastsuccess.Before(time.Now().Add(-numRetryDays*24*time.Hour)) &&
		ka.attempts >= maxFailures {
		return true
	}

	return false
}

// chance returns the selection weight for this address: addresses that have
// been tried recently or failed repeatedly score lower.
func (ka *KnownAddress) chance() float64 {
	now := time.Now()
	lastAttempt := now.Sub(ka.lastattempt)
	if lastAttempt < 0 {
		lastAttempt = 0
	}

	c := 1.0
	if lastAttempt < 10*time.Minute {
		c *= 0.01
	}

	for i := 0; i < ka.attempts; i++ {
		c /= 1.5
	}

	return c
}
