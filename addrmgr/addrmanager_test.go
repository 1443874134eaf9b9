// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package addrmgr

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talusnet/talusd/wire"
)

func mustAddr(t *testing.T, ip string, port uint16) *wire.NetAddress {
	t.Helper()
	return wire.NewNetAddressIPPort(net.ParseIP(ip), port, wire.SFNodeNetwork)
}

func TestAddAddressAndRetrieve(t *testing.T) {
	am := New()
	src := mustAddr(t, "1.2.3.4", 15555)
	na := mustAddr(t, "5.6.7.8", 15555)

	am.AddAddress(na, src)
	require.Equal(t, 1, am.NumAddresses())
	require.Equal(t, na, am.GetAddress())

	// Adding the same address again must not duplicate it.
	am.AddAddress(na, src)
	require.Equal(t, 1, am.NumAddresses())
}

func TestGoodMovesAddressToTried(t *testing.T) {
	am := New()
	src := mustAddr(t, "1.2.3.4", 15555)
	na := mustAddr(t, "5.6.7.8", 15555)
	am.AddAddress(na, src)

	key := addrKey(na)
	ka := am.addrIndex[key]
	require.False(t, ka.tried)

	am.Good(na)
	require.True(t, am.addrIndex[key].tried)
}

func TestAttemptIncrementsCounter(t *testing.T) {
	am := New()
	src := mustAddr(t, "1.2.3.4", 15555)
	na := mustAddr(t, "5.6.7.8", 15555)
	am.AddAddress(na, src)

	am.Attempt(na)
	am.Attempt(na)
	require.Equal(t, 2, am.addrIndex[addrKey(na)].attempts)
}

func TestGetAddressEmptyReturnsNil(t *testing.T) {
	am := New()
	require.Nil(t, am.GetAddress())
}

func TestNewBucketStableForSameManager(t *testing.T) {
	am := New()
	na := mustAddr(t, "8.8.8.8", 15555)
	src := mustAddr(t, "9.9.9.9", 15555)

	require.Equal(t, am.newBucket(na, src), am.newBucket(na, src))
}
