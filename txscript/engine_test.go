// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txscript

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/talusnet/talusd/chaincfg"
	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/chainutil"
	"github.com/talusnet/talusd/wire"
)

func buildSpendingTx(pkScript []byte) *wire.MsgTx {
	prevTx := wire.NewMsgTx(wire.TxVersion)
	prevTx.AddTxOut(&wire.TxOut{Value: 5000, PkScript: pkScript})

	spend := wire.NewMsgTx(wire.TxVersion)
	prevOut := wire.NewOutPoint(&chainhash.Hash{}, 0)
	spend.AddTxIn(wire.NewTxIn(prevOut, nil))
	spend.AddTxOut(&wire.TxOut{Value: 4000, PkScript: pkScript})
	return spend
}

func TestEnginePayToPubKeyHashRoundTrip(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	pkHash := chainhash.Hash160(key.PubKey().SerializeCompressed())
	addr, err := chainutil.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
	require.NoError(t, err)

	pkScript, err := PayToAddrScript(addr)
	require.NoError(t, err)
	require.Equal(t, PubKeyHashTy, GetScriptClass(pkScript))

	tx := buildSpendingTx(pkScript)
	sigScript, err := SignatureScript(tx, 0, pkScript, SigHashAll, key, true)
	require.NoError(t, err)
	tx.TxIn[0].SignatureScript = sigScript

	engine, err := NewEngine(sigScript, pkScript, tx, 0)
	require.NoError(t, err)
	require.NoError(t, engine.Execute())
}

func TestEnginePayToPubKeyHashWrongKeyFails(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	other, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	pkHash := chainhash.Hash160(key.PubKey().SerializeCompressed())
	addr, err := chainutil.NewAddressPubKeyHash(pkHash, &chaincfg.MainNetParams)
	require.NoError(t, err)
	pkScript, err := PayToAddrScript(addr)
	require.NoError(t, err)

	tx := buildSpendingTx(pkScript)
	sigScript, err := SignatureScript(tx, 0, pkScript, SigHashAll, other, true)
	require.NoError(t, err)
	tx.TxIn[0].SignatureScript = sigScript

	engine, err := NewEngine(sigScript, pkScript, tx, 0)
	require.NoError(t, err)
	require.Error(t, engine.Execute())
}

func TestEnginePayToPubKeyRoundTrip(t *testing.T) {
	key, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	addr, err := chainutil.NewAddressPubKey(key.PubKey().SerializeCompressed(), &chaincfg.MainNetParams)
	require.NoError(t, err)
	pkScript, err := PayToAddrScript(addr)
	require.NoError(t, err)
	require.Equal(t, PubKeyTy, GetScriptClass(pkScript))

	tx := buildSpendingTx(pkScript)
	sigScript, err := PubKeySignatureScript(tx, 0, pkScript, SigHashAll, key)
	require.NoError(t, err)
	tx.TxIn[0].SignatureScript = sigScript

	engine, err := NewEngine(sigScript, pkScript, tx, 0)
	require.NoError(t, err)
	require.NoError(t, engine.Execute())
}

func TestEngineDisabledOpcodeRejected(t *testing.T) {
	script := []byte{OP_CAT}
	engine, err := NewEngine(nil, script, wire.NewMsgTx(wire.TxVersion), 0)
	require.NoError(t, err)
	err = engine.Execute()
	require.True(t, IsErrorCode(err, ErrOpcodeDisabled))
}
