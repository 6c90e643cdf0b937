/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"context"
	"fmt"

	"gitlab.com/jaxnet/core/headerchain/types/chaincfg"
)

// Ancestors returns up to max nearest ancestors of the entry, including the
// entry itself at index 0, walking strictly through prevBlock links.  The
// walk first uses the index's in-memory cache and only falls back to the
// possibly blocking lookup for the remainder.  Collection is best-effort: a
// link that resolves to nothing terminates the walk with however many entries
// were gathered, which is the natural outcome once genesis is reached.
func (e *ChainEntry) Ancestors(ctx context.Context, idx IndexReader, max int) ([]*ChainEntry, error) {
	entries := make([]*ChainEntry, 0, max)
	if max == 0 {
		return entries, nil
	}

	// Walk the cache as far as it goes without touching the store.
	entry := e
	for entry != nil {
		entries = append(entries, entry)
		if len(entries) == max {
			return entries, nil
		}
		entry = idx.CachedByHash(entry.prevBlock)
	}

	// Continue from the last resolved entry through the backing store.
	entry = entries[len(entries)-1]
	for len(entries) < max {
		next, err := idx.EntryByHash(ctx, entry.prevBlock)
		if err != nil {
			return nil, err
		}
		if next == nil {
			break
		}
		entries = append(entries, next)
		entry = next
	}
	return entries, nil
}

// RetargetAncestors returns the ancestors needed to evaluate the difficulty
// retargeting and timestamp rules for the block following this entry.  The
// window covers the full retarget interval only on a retarget boundary, or
// always on networks that reset their difficulty target; otherwise the
// median-time window is sufficient.
func (e *ChainEntry) RetargetAncestors(ctx context.Context, idx IndexReader,
	params *chaincfg.Params) ([]*ChainEntry, error) {
	max := medianTimeBlocks
	interval := int(params.RetargetInterval())
	if (int(e.height)+1)%interval == 0 || params.ReduceMinDifficulty {
		if interval > max {
			max = interval
		}
	}
	return e.Ancestors(ctx, idx, max)
}

// Ancestor returns the ancestor entry at the provided height by following the
// chain backwards from this entry.  The returned entry will be nil when a
// negative height is requested.  Entries on the main chain delegate to the
// index's height lookup; side-branch entries walk parent links one at a time,
// and a parent that cannot be resolved below the entry's known height is a
// consistency violation, not a normal absence.
func (e *ChainEntry) Ancestor(ctx context.Context, idx IndexReader,
	params *chaincfg.Params, height int32) (*ChainEntry, error) {
	if height < 0 {
		return nil, nil
	}
	if height > e.height {
		return nil, AssertError(fmt.Sprintf("requested ancestor at height "+
			"%d above entry height %d", height, e.height))
	}

	main, err := e.IsMainChain(ctx, idx, params)
	if err != nil {
		return nil, err
	}
	if main {
		return idx.EntryByHeight(ctx, height)
	}

	entry := e
	for entry.height > height {
		prev, err := idx.EntryByHash(ctx, entry.prevBlock)
		if err != nil {
			return nil, err
		}
		if prev == nil {
			return nil, AssertError(fmt.Sprintf("chain index is missing "+
				"parent %v of entry at height %d", entry.prevBlock,
				entry.height))
		}
		entry = prev
	}
	return entry, nil
}

// Previous returns the parent entry, or nil when the parent is not indexed.
func (e *ChainEntry) Previous(ctx context.Context, idx IndexReader) (*ChainEntry, error) {
	return idx.EntryByHash(ctx, e.prevBlock)
}

// Next returns the main-chain successor of the entry resolved through the
// recorded next-hash index, or nil when the entry has no recorded successor,
// as is always the case for the current tip and for side-branch entries.
func (e *ChainEntry) Next(ctx context.Context, idx IndexReader) (*ChainEntry, error) {
	nextHash, err := idx.NextHash(ctx, e.hash)
	if err != nil {
		return nil, err
	}
	if nextHash == nil {
		return nil, nil
	}
	return idx.EntryByHash(ctx, *nextHash)
}

// NextEntry returns the entry occupying the next height slot, additionally
// verifying that its prevBlock references this entry.  A candidate with a
// different parent belongs to another branch and is treated as absent.
func (e *ChainEntry) NextEntry(ctx context.Context, idx IndexReader) (*ChainEntry, error) {
	next, err := idx.EntryByHeight(ctx, e.height+1)
	if err != nil {
		return nil, err
	}
	if next != nil && next.prevBlock != e.hash {
		return nil, nil
	}
	return next, nil
}

// IsMainChain reports whether the entry is a member of the currently accepted
// best chain.  The current tip and the genesis entry are recognized without
// consulting the backing store; otherwise the cached height slot is compared
// and, failing that, the entry is on the main chain exactly when it has a
// recorded successor.
func (e *ChainEntry) IsMainChain(ctx context.Context, idx IndexReader,
	params *chaincfg.Params) (bool, error) {
	if tip := idx.Tip(); tip != nil && e.hash == tip.hash {
		return true, nil
	}
	if e.hash == *params.GenesisHash {
		return true, nil
	}

	if cached := idx.CachedByHeight(e.height); cached != nil {
		return cached.hash == e.hash, nil
	}

	nextHash, err := idx.NextHash(ctx, e.hash)
	if err != nil {
		return false, err
	}
	return nextHash != nil, nil
}
