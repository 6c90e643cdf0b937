/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"math/big"
	"time"

	"gitlab.com/jaxnet/core/headerchain/types"
	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
	"gitlab.com/jaxnet/core/headerchain/types/pow"
	"gitlab.com/jaxnet/core/headerchain/types/wire"
)

// medianTimeBlocks is the number of previous blocks which should be
// used to calculate the median time used to validate block timestamps.
const medianTimeBlocks = 11

// ChainEntry represents one validated block header within the header chain
// and is primarily used to aid in selecting the best chain to be the main
// chain.  Entries are immutable value objects: once constructed, none of the
// fields change, so they are safe for concurrent access without locks.
// The parent is referenced by hash, never by pointer, and is resolved
// through an IndexReader.
type ChainEntry struct {
	// NOTE: Additions, deletions, or modifications to the order of the
	// definitions in this struct should not be changed without considering
	// how it affects alignment on 64-bit platforms.  The current order is
	// specifically crafted to result in minimal padding.  There will be
	// hundreds of thousands of these in memory, so a few extra bytes of
	// padding adds up.

	hash       chainhash.Hash // hash is the double sha256 of the 80-byte header.
	prevBlock  chainhash.Hash // prevBlock is the hash of the parent entry.
	merkleRoot chainhash.Hash // merkleRoot commits to the block's transactions.
	workSum    *big.Int       // workSum is the total amount of work in the chain up to and including this entry.
	version    int32
	height     int32 // height is -1 when not known.
	ts         uint32
	bits       uint32
	nonce      uint32
}

// EntryOptions is the full field set of a chain entry.  It is used to
// construct synthetic entries, typically in tests or when the surrounding
// system already derived every field.
type EntryOptions struct {
	Version    int32
	PrevBlock  chainhash.Hash
	MerkleRoot chainhash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
	Height     int32

	// WorkSum is the cumulative chainwork through this entry.  When nil it
	// is derived from Bits alone, as for an entry with no known parent.
	WorkSum *big.Int
}

// NewEntry returns a chain entry for the given explicit field set.  The hash
// is always recomputed from the six header fields.
func NewEntry(opts *EntryOptions) *ChainEntry {
	entry := &ChainEntry{
		prevBlock:  opts.PrevBlock,
		merkleRoot: opts.MerkleRoot,
		workSum:    opts.WorkSum,
		version:    opts.Version,
		height:     opts.Height,
		ts:         opts.Timestamp,
		bits:       opts.Bits,
		nonce:      opts.Nonce,
	}
	if entry.workSum == nil {
		entry.workSum = pow.CalcWork(opts.Bits)
	}
	header := entry.Header()
	entry.hash = header.BlockHash()
	return entry
}

// NewEntryFromHeader returns a new chain entry for the given block header and
// parent entry, calculating the height and workSum from the respective fields
// on the parent.  A nil parent produces a genesis-positioned entry of height
// zero whose workSum is its own proof.
func NewEntryFromHeader(header *wire.BlockHeader, parent *ChainEntry) *ChainEntry {
	entry := &ChainEntry{
		hash:       header.BlockHash(),
		prevBlock:  header.PrevBlock,
		merkleRoot: header.MerkleRoot,
		workSum:    pow.CalcWork(header.Bits),
		version:    header.Version,
		ts:         uint32(header.Timestamp.Unix()),
		bits:       header.Bits,
		nonce:      header.Nonce,
	}

	if parent != nil {
		entry.height = parent.height + 1
		entry.workSum = entry.workSum.Add(parent.workSum, entry.workSum)
	}
	return entry
}

func (e *ChainEntry) Hash() chainhash.Hash       { return e.hash }
func (e *ChainEntry) PrevHash() chainhash.Hash   { return e.prevBlock }
func (e *ChainEntry) MerkleRoot() chainhash.Hash { return e.merkleRoot }
func (e *ChainEntry) Version() int32             { return e.version }
func (e *ChainEntry) Height() int32              { return e.height }
func (e *ChainEntry) Timestamp() uint32          { return e.ts }
func (e *ChainEntry) Bits() uint32               { return e.bits }
func (e *ChainEntry) Nonce() uint32              { return e.nonce }

// WorkSum returns the cumulative chainwork through this entry.  The returned
// value must be treated as read-only.
func (e *ChainEntry) WorkSum() *big.Int { return e.workSum }

// Time returns the block timestamp as a time.Time.
func (e *ChainEntry) Time() time.Time { return time.Unix(int64(e.ts), 0) }

// Header constructs a block header from the entry and returns it.
//
// This function is safe for concurrent access.
func (e *ChainEntry) Header() wire.BlockHeader {
	return wire.BlockHeader{
		Version:    e.version,
		PrevBlock:  e.prevBlock,
		MerkleRoot: e.merkleRoot,
		Timestamp:  time.Unix(int64(e.ts), 0),
		Bits:       e.bits,
		Nonce:      e.nonce,
	}
}

// InvVect returns an inventory vector advertising this entry's block to
// announcement protocols.
func (e *ChainEntry) InvVect() *types.InvVect {
	return types.NewInvVect(types.InvTypeBlock, &e.hash)
}
