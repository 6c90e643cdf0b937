/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/core/headerchain/types/chaincfg"
	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
	"gitlab.com/jaxnet/core/headerchain/types/wire"
)

// fakeIndex is an in-memory IndexReader with separate cached and stored maps
// so tests can drive the cache-first fast path and count backing store
// round-trips.
type fakeIndex struct {
	stored       map[chainhash.Hash]*ChainEntry
	storedHeight map[int32]*ChainEntry
	cached       map[chainhash.Hash]*ChainEntry
	cachedHeight map[int32]*ChainEntry
	next         map[chainhash.Hash]chainhash.Hash
	tip          *ChainEntry

	storeHits int
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		stored:       make(map[chainhash.Hash]*ChainEntry),
		storedHeight: make(map[int32]*ChainEntry),
		cached:       make(map[chainhash.Hash]*ChainEntry),
		cachedHeight: make(map[int32]*ChainEntry),
		next:         make(map[chainhash.Hash]chainhash.Hash),
	}
}

func (f *fakeIndex) EntryByHash(_ context.Context, hash chainhash.Hash) (*ChainEntry, error) {
	f.storeHits++
	return f.stored[hash], nil
}

func (f *fakeIndex) EntryByHeight(_ context.Context, height int32) (*ChainEntry, error) {
	f.storeHits++
	return f.storedHeight[height], nil
}

func (f *fakeIndex) CachedByHash(hash chainhash.Hash) *ChainEntry {
	return f.cached[hash]
}

func (f *fakeIndex) CachedByHeight(height int32) *ChainEntry {
	return f.cachedHeight[height]
}

func (f *fakeIndex) NextHash(_ context.Context, hash chainhash.Hash) (*chainhash.Hash, error) {
	f.storeHits++
	next, ok := f.next[hash]
	if !ok {
		return nil, nil
	}
	return &next, nil
}

func (f *fakeIndex) Tip() *ChainEntry { return f.tip }

// connect records the entry as a stored main-chain member.
func (f *fakeIndex) connect(entry *ChainEntry) {
	f.stored[entry.Hash()] = entry
	f.storedHeight[entry.Height()] = entry
	if f.tip != nil {
		f.next[f.tip.Hash()] = entry.Hash()
	}
	f.tip = entry
}

// cache additionally exposes the entry through the non-blocking lookups.
func (f *fakeIndex) cache(entry *ChainEntry) {
	f.cached[entry.Hash()] = entry
	f.cachedHeight[entry.Height()] = entry
}

// buildChain creates a chain of length n rooted at the network genesis and
// connects every entry in the index.
func buildChain(f *fakeIndex, params *chaincfg.Params, n int) []*ChainEntry {
	entries := make([]*ChainEntry, 0, n)
	entry := NewEntryFromHeader(params.GenesisBlock, nil)
	entries = append(entries, entry)
	f.connect(entry)

	for i := 1; i < n; i++ {
		prev := entries[i-1]
		header := &wire.BlockHeader{
			Version:    1,
			PrevBlock:  prev.Hash(),
			MerkleRoot: chainhash.DoubleHashH([]byte{byte(i), byte(i >> 8)}),
			Timestamp:  time.Unix(int64(prev.Timestamp())+600, 0),
			Bits:       params.PowLimitBits,
			Nonce:      uint32(i),
		}
		entry = NewEntryFromHeader(header, prev)
		entries = append(entries, entry)
		f.connect(entry)
	}
	return entries
}

func TestAncestorsEmptyAndBounds(t *testing.T) {
	idx := newFakeIndex()
	chain := buildChain(idx, &chaincfg.SimNetParams, 5)
	tip := chain[len(chain)-1]
	ctx := context.Background()

	got, err := tip.Ancestors(ctx, idx, 0)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = tip.Ancestors(ctx, idx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, tip.Hash(), got[0].Hash())
	require.Equal(t, chain[3].Hash(), got[1].Hash())
	require.Equal(t, chain[2].Hash(), got[2].Hash())

	// Requesting more than the chain holds stops at genesis.
	got, err = tip.Ancestors(ctx, idx, 100)
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, chain[0].Hash(), got[4].Hash())
}

func TestAncestorsCacheFirst(t *testing.T) {
	idx := newFakeIndex()
	chain := buildChain(idx, &chaincfg.SimNetParams, 8)
	tip := chain[len(chain)-1]
	ctx := context.Background()

	// With the top four entries cached, a walk of four must not touch the
	// backing store at all.
	for _, entry := range chain[4:] {
		idx.cache(entry)
	}
	idx.storeHits = 0
	got, err := tip.Ancestors(ctx, idx, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	require.Zero(t, idx.storeHits)

	// A longer walk continues from the last cache-resolved entry through
	// the store.
	got, err = tip.Ancestors(ctx, idx, 7)
	require.NoError(t, err)
	require.Len(t, got, 7)
	require.Equal(t, chain[1].Hash(), got[6].Hash())
	require.NotZero(t, idx.storeHits)
}

func TestAncestorsUnresolvableLink(t *testing.T) {
	idx := newFakeIndex()
	chain := buildChain(idx, &chaincfg.SimNetParams, 6)
	tip := chain[len(chain)-1]
	ctx := context.Background()

	// Drop an intermediate entry from the store.  The walk must stop there
	// and return what it has rather than fail.
	delete(idx.stored, chain[2].Hash())
	got, err := tip.Ancestors(ctx, idx, 6)
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestAncestorMainChainFastPath(t *testing.T) {
	idx := newFakeIndex()
	params := &chaincfg.SimNetParams
	chain := buildChain(idx, params, 10)
	tip := chain[len(chain)-1]
	ctx := context.Background()

	got, err := tip.Ancestor(ctx, idx, params, 4)
	require.NoError(t, err)
	require.Equal(t, chain[4].Hash(), got.Hash())

	// Negative heights are a plain absence.
	got, err = tip.Ancestor(ctx, idx, params, -1)
	require.NoError(t, err)
	require.Nil(t, got)

	// Heights above the entry are a programming error.
	_, err = tip.Ancestor(ctx, idx, params, tip.Height()+1)
	require.Error(t, err)
	require.IsType(t, AssertError(""), err)
}

func TestAncestorSideBranch(t *testing.T) {
	idx := newFakeIndex()
	params := &chaincfg.SimNetParams
	chain := buildChain(idx, params, 6)
	ctx := context.Background()

	// Fork off chain[3] with an entry the main-chain index does not track.
	forkHeader := &wire.BlockHeader{
		Version:    1,
		PrevBlock:  chain[3].Hash(),
		MerkleRoot: chainhash.DoubleHashH([]byte("fork")),
		Timestamp:  time.Unix(int64(chain[3].Timestamp())+1200, 0),
		Bits:       params.PowLimitBits,
		Nonce:      0xdead,
	}
	fork := NewEntryFromHeader(forkHeader, chain[3])
	idx.stored[fork.Hash()] = fork

	got, err := fork.Ancestor(ctx, idx, params, 2)
	require.NoError(t, err)
	require.Equal(t, chain[2].Hash(), got.Hash())

	// A missing parent below the known height is a consistency violation.
	delete(idx.stored, chain[3].Hash())
	_, err = fork.Ancestor(ctx, idx, params, 2)
	require.Error(t, err)
	require.IsType(t, AssertError(""), err)
}

func TestRetargetAncestors(t *testing.T) {
	params := chaincfg.SimNetParams
	params.TargetTimespan = 130 * time.Minute // interval of 13 blocks
	params.TargetTimePerBlock = 10 * time.Minute
	params.ReduceMinDifficulty = false
	require.Equal(t, int32(13), params.RetargetInterval())

	idx := newFakeIndex()
	chain := buildChain(idx, &params, 20)
	ctx := context.Background()

	// Height 12 is a retarget boundary: (12+1)%13 == 0.
	got, err := chain[12].RetargetAncestors(ctx, idx, &params)
	require.NoError(t, err)
	require.Len(t, got, 13)

	// Off-boundary entries only need the median-time window.
	got, err = chain[14].RetargetAncestors(ctx, idx, &params)
	require.NoError(t, err)
	require.Len(t, got, 11)

	// Target-reset networks always fetch the full window.
	params.ReduceMinDifficulty = true
	got, err = chain[14].RetargetAncestors(ctx, idx, &params)
	require.NoError(t, err)
	require.Len(t, got, 13)
}

func TestPreviousNext(t *testing.T) {
	idx := newFakeIndex()
	params := &chaincfg.SimNetParams
	chain := buildChain(idx, params, 5)
	ctx := context.Background()

	prev, err := chain[3].Previous(ctx, idx)
	require.NoError(t, err)
	require.Equal(t, chain[2].Hash(), prev.Hash())

	next, err := chain[3].Next(ctx, idx)
	require.NoError(t, err)
	require.Equal(t, chain[4].Hash(), next.Hash())

	// The tip has no recorded successor.
	next, err = chain[4].Next(ctx, idx)
	require.NoError(t, err)
	require.Nil(t, next)

	nextEntry, err := chain[3].NextEntry(ctx, idx)
	require.NoError(t, err)
	require.Equal(t, chain[4].Hash(), nextEntry.Hash())
}

func TestNextEntrySideBranchSlot(t *testing.T) {
	idx := newFakeIndex()
	params := &chaincfg.SimNetParams
	chain := buildChain(idx, params, 5)
	ctx := context.Background()

	// Fork at height 3; the main-chain slot at height 4 does not descend
	// from it, so the candidate must be treated as absent.
	forkHeader := &wire.BlockHeader{
		Version:    1,
		PrevBlock:  chain[2].Hash(),
		MerkleRoot: chainhash.DoubleHashH([]byte("slot")),
		Timestamp:  time.Unix(int64(chain[2].Timestamp())+900, 0),
		Bits:       params.PowLimitBits,
		Nonce:      7,
	}
	fork := NewEntryFromHeader(forkHeader, chain[2])

	next, err := fork.NextEntry(ctx, idx)
	require.NoError(t, err)
	require.Nil(t, next)
}

func TestIsMainChain(t *testing.T) {
	idx := newFakeIndex()
	params := &chaincfg.SimNetParams
	chain := buildChain(idx, params, 6)
	tip := chain[len(chain)-1]
	ctx := context.Background()

	// Tip and genesis are recognized without any backing store access.
	idx.storeHits = 0
	main, err := tip.IsMainChain(ctx, idx, params)
	require.NoError(t, err)
	require.True(t, main)

	main, err = chain[0].IsMainChain(ctx, idx, params)
	require.NoError(t, err)
	require.True(t, main)
	require.Zero(t, idx.storeHits)

	// Cached height slot comparison.
	idx.cache(chain[3])
	main, err = chain[3].IsMainChain(ctx, idx, params)
	require.NoError(t, err)
	require.True(t, main)
	require.Zero(t, idx.storeHits)

	// Uncached mid-chain entries fall back to the next-hash index.
	main, err = chain[2].IsMainChain(ctx, idx, params)
	require.NoError(t, err)
	require.True(t, main)
	require.NotZero(t, idx.storeHits)

	// A side-branch entry has no recorded successor.
	forkHeader := &wire.BlockHeader{
		Version:    1,
		PrevBlock:  chain[2].Hash(),
		MerkleRoot: chainhash.DoubleHashH([]byte("branch")),
		Timestamp:  time.Unix(int64(chain[2].Timestamp())+300, 0),
		Bits:       params.PowLimitBits,
		Nonce:      99,
	}
	fork := NewEntryFromHeader(forkHeader, chain[2])
	main, err = fork.IsMainChain(ctx, idx, params)
	require.NoError(t, err)
	require.False(t, main)
}
