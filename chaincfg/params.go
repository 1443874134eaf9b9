// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The Talus developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"math/big"
	"time"

	"github.com/talusnet/talusd/chainhash"
	"github.com/talusnet/talusd/wire"
)

// Checkpoint identifies a known-good block by height, used to reject
// alternate histories below that height outright rather than replaying
// full validation against them.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// DNSSeed identifies a DNS seed used to bootstrap peer addresses for a
// network.
type DNSSeed struct {
	Host string

	// HasFiltering indicates whether the seed supports filtering by
	// service flags via the non-standard record type described in
	// BIP0111.
	HasFiltering bool
}

// Params defines the network-specific parameters a full node needs to
// validate and relay for a given talus network: the genesis block, the
// proof-of-work ceiling, the difficulty retarget window, the subsidy
// schedule, and the bootstrap/checkpoint data.
type Params struct {
	// Name defines the human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network on the
	// wire protocol.
	Net wire.TalusNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network used to
	// discover peers when one is not already known.
	DNSSeeds []DNSSeed

	// GenesisBlock defines the first block of the chain.
	GenesisBlock *wire.MsgBlock

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a
	// block as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// CoinbaseMaturity is the number of blocks required before newly
	// generated coins (via the coinbase transaction) may be spent.
	CoinbaseMaturity uint16

	// SubsidyHalvingInterval is the number of blocks before the subsidy
	// is reduced by half.
	SubsidyHalvingInterval int32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine
	// how it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// RetargetAdjustmentFactor is the adjustment factor used to limit
	// the minimum and maximum amount of adjustment that can occur
	// between difficulty retargets.
	RetargetAdjustmentFactor int64

	// GenerateSupported specifies whether or not CPU mining is allowed.
	GenerateSupported bool

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// PubKeyHashAddrID is the version byte used with base58 encoding of a
	// pay-to-pubkey-hash address.
	PubKeyHashAddrID byte

	// PrivateKeyID is the version byte used with base58 encoding of a
	// private key.
	PrivateKeyID byte
}

// BlocksPerRetarget returns the number of blocks between difficulty
// retargets, derived from TargetTimespan and TargetTimePerBlock.
func (p *Params) BlocksPerRetarget() int32 {
	return int32(p.TargetTimespan / p.TargetTimePerBlock)
}

// MinRetargetTimespan returns, in seconds, the minimum amount of time a
// retarget window is allowed to span after clamping.
func (p *Params) MinRetargetTimespan() int64 {
	return int64(p.TargetTimespan/time.Second) / p.RetargetAdjustmentFactor
}

// MaxRetargetTimespan returns, in seconds, the maximum amount of time a
// retarget window is allowed to span after clamping.
func (p *Params) MaxRetargetTimespan() int64 {
	return int64(p.TargetTimespan/time.Second) * p.RetargetAdjustmentFactor
}

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a main network
	// block can have for it to be valid: 2^224 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)
)

// MainNetParams defines the network parameters for the main talus
// network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.MainNet,
	DefaultPort: "8333",
	DNSSeeds: []DNSSeed{
		{"seed.talusnet.org", true},
		{"seed2.talusnet.org", true},
	},

	GenesisBlock: &mainGenesisBlock,
	GenesisHash:  &mainGenesisHash,

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1d00ffff,

	CoinbaseMaturity:       100,
	SubsidyHalvingInterval: 210000,

	TargetTimespan:           time.Hour * 24 * 14,
	TargetTimePerBlock:       time.Minute * 10,
	RetargetAdjustmentFactor: 4,

	GenerateSupported: false,

	Checkpoints: []Checkpoint{
		{0, &mainGenesisHash},
	},

	PubKeyHashAddrID: 0x00,
	PrivateKeyID:     0x80,
}

// RegressionNetParams defines the network parameters for the regression
// test network. Proof of work is essentially disabled (PowLimitBits is
// the loosest representable target) so tests can mine blocks instantly.
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         wire.TestNet,
	DefaultPort: "18444",
	DNSSeeds:    nil,

	GenesisBlock: &regTestGenesisBlock,
	GenesisHash:  &regTestGenesisHash,

	PowLimit:     new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne),
	PowLimitBits: 0x207fffff,

	CoinbaseMaturity:       100,
	SubsidyHalvingInterval: 150,

	TargetTimespan:           time.Hour * 24 * 14,
	TargetTimePerBlock:       time.Minute * 10,
	RetargetAdjustmentFactor: 4,

	GenerateSupported: true,

	Checkpoints: nil,

	PubKeyHashAddrID: 0x6f,
	PrivateKeyID:     0xef,
}

// TestNet3Params defines the network parameters for the test network
// (version 3).
var TestNet3Params = Params{
	Name:        "testnet3",
	Net:         wire.TestNet3,
	DefaultPort: "18333",
	DNSSeeds: []DNSSeed{
		{"testnet-seed.talusnet.org", true},
	},

	GenesisBlock: &testNet3GenesisBlock,
	GenesisHash:  &testNet3GenesisHash,

	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1d00ffff,

	CoinbaseMaturity:       100,
	SubsidyHalvingInterval: 210000,

	TargetTimespan:           time.Hour * 24 * 14,
	TargetTimePerBlock:       time.Minute * 10,
	RetargetAdjustmentFactor: 4,

	GenerateSupported: false,

	Checkpoints: []Checkpoint{
		{0, &testNet3GenesisHash},
	},

	PubKeyHashAddrID: 0x6f,
	PrivateKeyID:     0xef,
}

// SimNetParams defines the network parameters for the simulation test
// network, intended for private integration testing between nodes that
// both know the genesis parameters ahead of time.
var SimNetParams = Params{
	Name:        "simnet",
	Net:         wire.SimNet,
	DefaultPort: "18555",
	DNSSeeds:    nil,

	GenesisBlock: &simNetGenesisBlock,
	GenesisHash:  &simNetGenesisHash,

	PowLimit:     new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne),
	PowLimitBits: 0x207fffff,

	CoinbaseMaturity:       100,
	SubsidyHalvingInterval: 210000,

	TargetTimespan:           time.Hour * 24 * 14,
	TargetTimePerBlock:       time.Minute * 10,
	RetargetAdjustmentFactor: 4,

	GenerateSupported: true,

	Checkpoints: nil,

	PubKeyHashAddrID: 0x3f,
	PrivateKeyID:     0x64,
}

var registeredNets = map[wire.TalusNet]*Params{
	MainNetParams.Net:       &MainNetParams,
	RegressionNetParams.Net: &RegressionNetParams,
	TestNet3Params.Net:      &TestNet3Params,
	SimNetParams.Net:        &SimNetParams,
}

// ErrDuplicateNet describes an error where the parameters for a talus
// network could not be set due to the network already being a standard
// network or previously registered.
var ErrDuplicateNet = errors.New("duplicate network")

// Register registers the network parameters for a talus network. This
// may error with ErrDuplicateNet if the network is already registered.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = params
	return nil
}

// IsRegistered returns whether the network is registered.
func IsRegistered(net wire.TalusNet) bool {
	_, ok := registeredNets[net]
	return ok
}
