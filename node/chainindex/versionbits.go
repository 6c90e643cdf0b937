/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"gitlab.com/jaxnet/core/headerchain/types/chaincfg"
)

// IsGenesis reports whether the entry is the network's genesis block.
func (e *ChainEntry) IsGenesis(params *chaincfg.Params) bool {
	return e.hash == *params.GenesisHash
}

// IsHistorical reports whether the entry lies at or below the network's last
// checkpoint, meaning a consensus engine may elide parts of its validation.
// Networks without checkpoints have no historical entries.
func (e *ChainEntry) IsHistorical(params *chaincfg.Params) bool {
	checkpoint := params.LastCheckpoint()
	if checkpoint == nil {
		return false
	}
	return e.height+1 <= checkpoint.Height
}

// HasBit reports whether the version signals readiness on the given bit.
// This is false whenever the version's top bits differ from the version-bits
// signaling marker, regardless of the bit's state.
func (e *ChainEntry) HasBit(bit uint8) bool {
	version := uint32(e.version)
	return version&chaincfg.VBTopMask == chaincfg.VBTopBits &&
		version&(uint32(1)<<bit) != 0
}

// HasUnknown reports whether the version signals on any bit the network does
// not recognize.  Such blocks indicate a rule change this software knows
// nothing about.
func (e *ChainEntry) HasUnknown(params *chaincfg.Params) bool {
	version := uint32(e.version)
	if version&chaincfg.VBTopMask != chaincfg.VBTopBits {
		return false
	}
	unknownBits := ^uint32(chaincfg.VBTopMask) &^ params.VBRecognizedBits
	return version&unknownBits != 0
}
