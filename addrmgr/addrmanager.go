// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package addrmgr maintains the table of known peer addresses used to seed
// outbound connections, following the gossip model of spec.md section 5:
// addresses arrive via addr/getaddr messages and age out if they can't be
// connected to.
package addrmgr

import (
	"crypto/rand"
	"encoding/binary"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/aead/siphash"

	"github.com/talusnet/talusd/wire"
)

const (
	// numNewBuckets is the number of buckets used to group addresses that
	// have never had a successful connection made to them.
	numNewBuckets = 1024

	// numTriedBuckets is the number of buckets used to group addresses
	// that have had at least one successful connection made to them.
	numTriedBuckets = 64

	// numMissingDays is the number of days after which an address with no
	// recorded successful connection is considered stale.
	numMissingDays = 30

	// numRetryDays is the number of days since the last success after
	// which an address needs to succeed within maxFailures attempts to
	// avoid being marked bad.
	numRetryDays = 7

	// maxFailures is the number of failed connection attempts after
	// numRetryDays that marks an address bad.
	maxFailures = 10

	// maxAddrsPerBucket bounds how many addresses a single bucket holds,
	// to keep any one eclipse attempt from monopolizing the table.
	maxAddrsPerBucket = 64
)

// AddrManager tracks known peer addresses, bucketed by a process-local
// siphash key so an attacker that doesn't know the key can't predict which
// bucket an address they control will land in.
type AddrManager struct {
	mu          sync.Mutex
	key         [16]byte
	addrIndex   map[string]*KnownAddress
	addrNew     [numNewBuckets]map[string]*KnownAddress
	addrTried   [numTriedBuckets]map[string]*KnownAddress
	nTried      int
	nNew        int
}

// New returns an address manager with a freshly generated siphash key.
func New() *AddrManager {
	am := &AddrManager{
		addrIndex: make(map[string]*KnownAddress),
	}
	if _, err := rand.Read(am.key[:]); err != nil {
		// crypto/rand failing means the platform RNG is broken; fall
		// back to a time-derived key rather than leaving buckets
		// unkeyed, since AddAddress always needs one.
		binary.BigEndian.PutUint64(am.key[:8], uint64(time.Now().UnixNano()))
	}
	for i := range am.addrNew {
		am.addrNew[i] = make(map[string]*KnownAddress)
	}
	for i := range am.addrTried {
		am.addrTried[i] = make(map[string]*KnownAddress)
	}
	return am
}

func addrKey(na *wire.NetAddress) string {
	return net.JoinHostPort(na.IP.String(), strconv.Itoa(int(na.Port)))
}

// groupKey returns the /16 (IPv4) or /32 (IPv6) network group an address
// belongs to, used so a single bucket can't fill up with addresses from one
// operator's netblock.
func groupKey(na *wire.NetAddress) []byte {
	ip := na.IP
	if v4 := ip.To4(); v4 != nil {
		return v4[:2]
	}
	return ip.To16()[:4]
}

func (a *AddrManager) newBucket(na, src *wire.NetAddress) int {
	data := append(append([]byte{}, groupKey(na)...), groupKey(src)...)
	h := siphash.Sum64(data, &a.key)
	return int(h % numNewBuckets)
}

func (a *AddrManager) triedBucket(na *wire.NetAddress) int {
	h := siphash.Sum64(groupKey(na), &a.key)
	return int(h % numTriedBuckets)
}

// AddAddress records na as known, having been learned about from srcAddr
// (an addr message's sending peer, or the address itself for self-reported
// entries). Addresses already known are left alone except for a timestamp
// bump.
func (a *AddrManager) AddAddress(na, srcAddr *wire.NetAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := addrKey(na)
	if ka, ok := a.addrIndex[key]; ok {
		if na.Timestamp.After(ka.na.Timestamp) {
			ka.na.Timestamp = na.Timestamp
		}
		return
	}

	ka := &KnownAddress{na: na, srcAddr: srcAddr}
	a.addrIndex[key] = ka
	a.nNew++
	log.Debugf("Added new address %s (total known %d)", key, len(a.addrIndex))

	bucket := a.newBucket(na, srcAddr)
	if len(a.addrNew[bucket]) >= maxAddrsPerBucket {
		a.evictNew(bucket)
	}
	a.addrNew[bucket][key] = ka
	ka.refs++
}

// evictNew drops the least-recently-seen address from bucket to make room
// for a new one; callers hold the lock.
func (a *AddrManager) evictNew(bucket int) {
	var oldestKey string
	var oldest time.Time
	for k, ka := range a.addrNew[bucket] {
		if oldest.IsZero() || ka.na.Timestamp.Before(oldest) {
			oldest = ka.na.Timestamp
			oldestKey = k
		}
	}
	if oldestKey == "" {
		return
	}
	ka := a.addrNew[bucket][oldestKey]
	delete(a.addrNew[bucket], oldestKey)
	ka.refs--
	if ka.refs <= 0 && !ka.tried {
		delete(a.addrIndex, oldestKey)
		a.nNew--
	}
}

// Good moves addr into the tried table after a successful connection.
func (a *AddrManager) Good(addr *wire.NetAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := addrKey(addr)
	ka, ok := a.addrIndex[key]
	if !ok {
		return
	}

	ka.lastsuccess = time.Now()
	ka.lastattempt = ka.lastsuccess
	ka.attempts = 0

	if ka.tried {
		return
	}

	for _, addrs := range a.addrNew {
		if _, ok := addrs[key]; ok {
			delete(addrs, key)
			ka.refs--
		}
	}
	ka.tried = true
	a.nNew--
	ka.refs = 0

	tBucket := a.triedBucket(addr)
	if len(a.addrTried[tBucket]) >= maxAddrsPerBucket {
		a.evictTried(tBucket)
	}
	a.addrTried[tBucket][key] = ka
	a.nTried++
}

func (a *AddrManager) evictTried(bucket int) {
	var oldestKey string
	var oldest time.Time
	for k, ka := range a.addrTried[bucket] {
		if oldest.IsZero() || ka.lastsuccess.Before(oldest) {
			oldest = ka.lastsuccess
			oldestKey = k
		}
	}
	if oldestKey == "" {
		return
	}
	delete(a.addrTried[bucket], oldestKey)
	delete(a.addrIndex, oldestKey)
	a.nTried--
}

// Attempt records a failed or in-flight connection attempt against addr.
func (a *AddrManager) Attempt(addr *wire.NetAddress) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ka, ok := a.addrIndex[addrKey(addr)]
	if !ok {
		return
	}
	ka.lastattempt = time.Now()
	ka.attempts++
}

// GetAddress returns a random non-bad known address, weighted by chance(),
// or nil if the table is empty. Ported from the reference client's
// weighted-rejection-sampling selection loop.
func (a *AddrManager) GetAddress() *wire.NetAddress {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.addrIndex) == 0 {
		return nil
	}

	for i := 0; i < 100; i++ {
		ka := a.pickRandom()
		if ka == nil {
			return nil
		}
		if ka.isBad() {
			continue
		}
		if randFloat() < ka.chance() {
			return ka.na
		}
	}
	return nil
}

func (a *AddrManager) pickRandom() *KnownAddress {
	n := len(a.addrIndex)
	if n == 0 {
		return nil
	}
	idx := randIntn(n)
	i := 0
	for _, ka := range a.addrIndex {
		if i == idx {
			return ka
		}
		i++
	}
	return nil
}

func randFloat() float64 {
	var b [8]byte
	rand.Read(b[:])
	return float64(binary.BigEndian.Uint64(b[:])%1_000_000) / 1_000_000
}

func randIntn(n int) int {
	var b [8]byte
	rand.Read(b[:])
	return int(binary.BigEndian.Uint64(b[:]) % uint64(n))
}

// NumAddresses returns the total number of addresses known, tried and new
// combined.
func (a *AddrManager) NumAddresses() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.addrIndex)
}
