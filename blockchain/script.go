// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/talusnet/talusd/txscript"
	"github.com/talusnet/talusd/wire"
)

// TxScriptEngine is the ScriptEngine backed by the real stack-based
// interpreter (§4.1, §4.2 step 4): it runs each input's unlocking script
// followed by the referenced output's locking script and requires the
// combined execution to finish with a true value on the stack.
type TxScriptEngine struct{}

// NewTxScriptEngine returns the production ScriptEngine.
func NewTxScriptEngine() TxScriptEngine { return TxScriptEngine{} }

func (TxScriptEngine) VerifyScript(tx *wire.MsgTx, inputIndex int, prevOut *wire.TxOut) error {
	sigScript := tx.TxIn[inputIndex].SignatureScript
	engine, err := txscript.NewEngine(sigScript, prevOut.PkScript, tx, inputIndex)
	if err != nil {
		return err
	}
	return engine.Execute()
}
