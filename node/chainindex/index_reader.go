/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"context"

	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
)

// IndexReader is the read side of the external chain index consumed by the
// ancestor walker.  Implementations own the caching and storage discipline;
// this package only requires that the cached lookups never block and that the
// context-aware lookups report plain absence as a nil entry with a nil error.
type IndexReader interface {
	// EntryByHash returns the entry with the given block hash, consulting
	// the backing store when necessary.  A nil entry with a nil error
	// means the hash is simply not indexed.
	EntryByHash(ctx context.Context, hash chainhash.Hash) (*ChainEntry, error)

	// EntryByHeight returns the main-chain entry at the given height,
	// consulting the backing store when necessary.
	EntryByHeight(ctx context.Context, height int32) (*ChainEntry, error)

	// CachedByHash returns the entry with the given block hash only if it
	// is held in memory.  It never blocks.
	CachedByHash(hash chainhash.Hash) *ChainEntry

	// CachedByHeight returns the main-chain entry at the given height only
	// if it is held in memory.  It never blocks.
	CachedByHeight(height int32) *ChainEntry

	// NextHash returns the hash of the main-chain successor of the given
	// block hash, or nil when the block has no recorded successor.  Only
	// main-chain entries have recorded successors.
	NextHash(ctx context.Context, hash chainhash.Hash) (*chainhash.Hash, error)

	// Tip returns the current best entry, or nil when the index is empty.
	Tip() *ChainEntry
}
