/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"time"

	"gitlab.com/jaxnet/core/headerchain/types/wire"
)

// SimNetParams defines the network parameters for the simulation test
// network.  This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing.  The functionality is intended to differ in that the only nodes
// which are specifically specified are used to create the network rather than
// following normal discovery rules.  This is important as otherwise it would
// just turn into another public testnet.
var SimNetParams = Params{
	Name: "simnet",
	Net:  wire.SimNet,

	// Chain parameters
	GenesisBlock:         &simNetGenesisBlockHeader,
	GenesisHash:          &simNetGenesisHash,
	PowLimit:             simNetPowLimit,
	PowLimitBits:         0x207fffff,
	TargetTimespan:       time.Hour * 24 * 14, // 14 days
	TargetTimePerBlock:   time.Minute * 10,    // 10 minutes
	ReduceMinDifficulty:  true,
	MinDiffReductionTime: time.Minute * 20, // TargetTimePerBlock * 2

	// Checkpoints ordered from oldest to newest.
	Checkpoints: nil,

	// Consensus rule change deployments.
	//
	// The miner confirmation window is defined as:
	//   target proof of work timespan / target proof of work spacing
	RuleChangeActivationThreshold: 75, // 75% of MinerConfirmationWindow
	MinerConfirmationWindow:       100,

	// The CSV (bit 0) and segwit (bit 1) deployments have both activated
	// on this network.
	VBRecognizedBits: 0x00000003,
}
