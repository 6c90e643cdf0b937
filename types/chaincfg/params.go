/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"errors"
	"math/big"
	"time"

	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
	"gitlab.com/jaxnet/core/headerchain/types/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a Bitcoin block can
	// have for the main network.  It is the value 2^224 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// testNet3PowLimit is the highest proof of work value a Bitcoin block
	// can have for the test network (version 3).  It is the value
	// 2^224 - 1.
	testNet3PowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 224), bigOne)

	// simNetPowLimit is the highest proof of work value a Bitcoin block
	// can have for the simulation test network.  It is the value 2^255 - 1.
	simNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

const (
	// VBTopBits defines the bits to set in the version to signal that the
	// version bits scheme is being used.
	VBTopBits = 0x20000000

	// VBTopMask is the bitmask to use to determine whether or not the
	// version bits scheme is in use.
	VBTopMask = 0xe0000000
)

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial
// download and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// Params defines a Bitcoin network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.BitcoinNet

	// GenesisBlock defines the first block header of the chain.
	GenesisBlock *wire.BlockHeader

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block.  This is really only useful for test
	// networks and MUST NOT be set on the main network.  Networks with
	// this flag set reset their difficulty target, so retarget-grade
	// ancestor windows must be fetched for every block.
	ReduceMinDifficulty bool

	// MinDiffReductionTime is the amount of time after which the minimum
	// required difficulty should be reduced when a block hasn't been found.
	//
	// NOTE: This only applies if ReduceMinDifficulty is true.
	MinDiffReductionTime time.Duration

	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32

	// VBRecognizedBits is the mask of version-bit positions, within the 29
	// bits available below the top mask, that correspond to deployments
	// this network knows about.  Bits outside this mask signal unknown
	// rule changes.
	VBRecognizedBits uint32
}

// RetargetInterval returns the number of blocks between difficulty retargets,
// derived from the target timespan and the target time per block.
func (p *Params) RetargetInterval() int32 {
	return int32(p.TargetTimespan / p.TargetTimePerBlock)
}

// LastCheckpoint returns the most recent checkpoint for the network, or nil
// when the network defines no checkpoints.
func (p *Params) LastCheckpoint() *Checkpoint {
	if len(p.Checkpoints) == 0 {
		return nil
	}
	return &p.Checkpoints[len(p.Checkpoints)-1]
}

// ErrUnknownNet describes an error where the network is not recognized by
// this package.
var ErrUnknownNet = errors.New("unknown network name")

// NetParams returns the parameters registered for the given network name.
func NetParams(name string) (*Params, error) {
	switch name {
	case MainNetParams.Name:
		return &MainNetParams, nil
	case TestNet3Params.Name:
		return &TestNet3Params, nil
	case SimNetParams.Name:
		return &SimNetParams, nil
	}
	return nil, ErrUnknownNet
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in
// that it panics on an error since it will only (and must only) be called
// with hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}
