// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2024 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package mempool provides a pool of unmined talus transactions.

A key responsibility of the talus network is mining user-generated transactions
into blocks.  In order to facilitate this, the mining process relies on having a
readily-available source of transactions to include in a block that is being
solved.

At a high level, this package satisfies that requirement by providing an
in-memory pool of fully validated transactions.  The pool applies the consensus
rules and its own duplicate, coinbase and double-spend checks; it has no
configurable acceptance policy and no "standard" transaction filter.

Since this package does not deal with other talus specifics such as network
communication and transaction relay, it returns a list of transactions that were
accepted which gives the caller a high level of flexibility in how they want to
proceed.  Typically, this will involve things such as relaying the transactions
to other peers on the network and notifying the mining process that new
transactions are available.

# Feature Overview

The following is a quick overview of the major features.  It is not intended to
be an exhaustive list.

  - Maintain a pool of fully validated transactions
    1. Reject transactions already in the pool
    2. Reject coinbase transactions
    3. Reject double spends (both from the chain and other transactions in pool);
    a conflicting transaction is rejected, never accepted as a replacement
    4. Reject invalid transactions according to the network consensus rules
    5. Full script execution and validation through the chain's script engine
    6. Individual transaction query support
  - Orphan transaction support (transactions that spend from unknown outputs)
    1. A fixed limit of 100 buffered orphans (maxOrphanTransactions)
    2. Automatic addition of orphan transactions that are no longer orphans as new
    transactions are added to the pool
    3. Individual orphan transaction query support
  - Additional metadata tracking for each transaction
    1. Timestamp when the transaction was added to the pool
    2. Most recent block height when the transaction was added to the pool
    3. The fee the transaction pays
  - Manual control of transaction removal
    1. Recursive removal of all dependent transactions

# Errors

Errors returned by this package are either the raw errors provided by underlying
calls or of type mempool.RuleError.  Since there are two classes of rules
(mempool acceptance rules and blockchain (consensus) acceptance rules), the
mempool.RuleError type contains a single Err field which will, in turn, either
be a mempool.TxRuleError or a blockchain.RuleError.  The first indicates a
violation of mempool acceptance rules while the latter indicates a violation of
consensus acceptance rules.  This allows the caller to easily differentiate
between unexpected errors, such as database errors, versus errors due to rule
violations through type assertions.  In addition, callers can programmatically
determine the specific rule violation by type asserting the Err field to one of
the aforementioned types and examining their underlying ErrorCode field.
*/
package mempool
