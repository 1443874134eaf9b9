// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashStringRoundTrip(t *testing.T) {
	h := DoubleHashH([]byte("the quick brown fox"))
	parsed, err := NewHashFromStr(h.String())
	require.NoError(t, err)
	require.Equal(t, h, *parsed)
}

func TestHashFromStrTooLong(t *testing.T) {
	_, err := NewHashFromStr(string(make([]byte, MaxHashStringSize+1)))
	require.ErrorIs(t, err, ErrHashStrSize)
}

func TestDoubleHashIsIteratedSHA256(t *testing.T) {
	data := []byte("conserved output ordering")
	first := HashH(data)
	second := HashH(first[:])
	require.Equal(t, second, DoubleHashH(data))
}

func TestHash160Length(t *testing.T) {
	out := Hash160([]byte("pubkey bytes"))
	require.Len(t, out, 20)
}
