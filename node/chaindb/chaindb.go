/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

// Package chaindb implements a persistent chain index on top of badger with
// an in-memory cache of recently touched entries in front of it.  It is the
// reference implementation of the chainindex.IndexReader contract.
package chaindb

import (
	"context"
	"encoding/binary"
	"sync"

	"github.com/dgraph-io/badger"
	"github.com/pkg/errors"
	"gitlab.com/jaxnet/core/headerchain/node/chainindex"
	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
)

// Key prefixes of the badger buckets.  Entry records are keyed by block
// hash; the height and next-hash indexes only track the main chain.
const (
	entryKeyPrefix  = 0x65 // 'e' + hash -> serialized entry
	heightKeyPrefix = 0x68 // 'h' + uint32 -> hash
	nextKeyPrefix   = 0x6e // 'n' + hash -> hash of main-chain successor
)

// tipKey tracks the hash of the current best entry.
var tipKey = []byte("chaintip")

// ChainDB is a badger-backed chain index.  All lookups consult the in-memory
// maps first; the cached accessors never touch the store at all, which is
// what lets the ancestor walker stay on its synchronous fast path.
//
// ChainDB implements chainindex.IndexReader.
type ChainDB struct {
	db *badger.DB

	mtx         sync.RWMutex
	hashCache   map[chainhash.Hash]*chainindex.ChainEntry
	heightCache map[int32]*chainindex.ChainEntry
	tip         *chainindex.ChainEntry
}

// Ensure ChainDB satisfies the reader contract consumed by the walker.
var _ chainindex.IndexReader = (*ChainDB)(nil)

// Open opens or creates the chain index at the given directory and loads the
// recorded tip, when one exists, into memory.
func Open(path string) (*ChainDB, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "can't open chain index")
	}

	cdb := &ChainDB{
		db:          db,
		hashCache:   make(map[chainhash.Hash]*chainindex.ChainEntry),
		heightCache: make(map[int32]*chainindex.ChainEntry),
	}
	if err := cdb.loadTip(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cdb.tip != nil {
		log.Info().
			Str("path", path).
			Int32("tipHeight", cdb.tip.Height()).
			Stringer("tipHash", cdb.tip.Hash()).
			Msg("chain index opened")
	} else {
		log.Info().Str("path", path).Msg("empty chain index created")
	}
	return cdb, nil
}

// Close releases the underlying store.
func (cdb *ChainDB) Close() error {
	return cdb.db.Close()
}

// PutEntry writes the entry record and, for main-chain members, updates the
// height index, the parent's next-hash pointer, and the in-memory caches.
func (cdb *ChainDB) PutEntry(entry *chainindex.ChainEntry, mainChain bool) error {
	hash := entry.Hash()
	err := cdb.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(entryKey(hash), entry.Bytes()); err != nil {
			return err
		}
		if !mainChain {
			return nil
		}
		if err := txn.Set(heightKey(entry.Height()), hash.CloneBytes()); err != nil {
			return err
		}
		prev := entry.PrevHash()
		if prev.IsZero() {
			return nil
		}
		return txn.Set(nextKey(prev), hash.CloneBytes())
	})
	if err != nil {
		return errors.Wrapf(err, "can't store entry %v", hash)
	}

	if mainChain {
		cdb.mtx.Lock()
		cdb.hashCache[hash] = entry
		cdb.heightCache[entry.Height()] = entry
		cdb.mtx.Unlock()
	}

	log.Debug().
		Stringer("hash", hash).
		Int32("height", entry.Height()).
		Bool("mainChain", mainChain).
		Msg("entry stored")
	return nil
}

// SetTip records the given entry as the current best entry.
func (cdb *ChainDB) SetTip(entry *chainindex.ChainEntry) error {
	hash := entry.Hash()
	err := cdb.db.Update(func(txn *badger.Txn) error {
		return txn.Set(tipKey, hash.CloneBytes())
	})
	if err != nil {
		return errors.Wrap(err, "can't store chain tip")
	}

	cdb.mtx.Lock()
	cdb.tip = entry
	cdb.mtx.Unlock()
	return nil
}

// Tip returns the current best entry, or nil when the index is empty.
func (cdb *ChainDB) Tip() *chainindex.ChainEntry {
	cdb.mtx.RLock()
	tip := cdb.tip
	cdb.mtx.RUnlock()
	return tip
}

// CachedByHash returns the entry with the given hash only if it is held in
// memory.  It never blocks.
func (cdb *ChainDB) CachedByHash(hash chainhash.Hash) *chainindex.ChainEntry {
	cdb.mtx.RLock()
	entry := cdb.hashCache[hash]
	cdb.mtx.RUnlock()
	return entry
}

// CachedByHeight returns the main-chain entry at the given height only if it
// is held in memory.  It never blocks.
func (cdb *ChainDB) CachedByHeight(height int32) *chainindex.ChainEntry {
	cdb.mtx.RLock()
	entry := cdb.heightCache[height]
	cdb.mtx.RUnlock()
	return entry
}

// EntryByHash returns the entry with the given hash, falling back to the
// store on a cache miss.  A hash that is simply not indexed yields a nil
// entry with a nil error.
func (cdb *ChainDB) EntryByHash(ctx context.Context, hash chainhash.Hash) (*chainindex.ChainEntry, error) {
	if entry := cdb.CachedByHash(hash); entry != nil {
		return entry, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := cdb.fetch(entryKey(hash))
	if err != nil || raw == nil {
		return nil, err
	}
	entry, err := chainindex.DecodeEntry(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupted entry record %v", hash)
	}

	cdb.mtx.Lock()
	cdb.hashCache[hash] = entry
	cdb.mtx.Unlock()
	return entry, nil
}

// EntryByHeight returns the main-chain entry at the given height, falling
// back to the store on a cache miss.
func (cdb *ChainDB) EntryByHeight(ctx context.Context, height int32) (*chainindex.ChainEntry, error) {
	if entry := cdb.CachedByHeight(height); entry != nil {
		return entry, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := cdb.fetch(heightKey(height))
	if err != nil || raw == nil {
		return nil, err
	}
	hash, err := chainhash.NewHash(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupted height index at %d", height)
	}

	entry, err := cdb.EntryByHash(ctx, *hash)
	if err != nil || entry == nil {
		return entry, err
	}

	cdb.mtx.Lock()
	cdb.heightCache[height] = entry
	cdb.mtx.Unlock()
	return entry, nil
}

// NextHash returns the hash of the main-chain successor of the given hash,
// or nil when the block has no recorded successor.
func (cdb *ChainDB) NextHash(ctx context.Context, hash chainhash.Hash) (*chainhash.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := cdb.fetch(nextKey(hash))
	if err != nil || raw == nil {
		return nil, err
	}
	next, err := chainhash.NewHash(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "corrupted next-hash record for %v", hash)
	}
	return next, nil
}

// loadTip resolves the recorded tip hash into a cached entry.
func (cdb *ChainDB) loadTip() error {
	raw, err := cdb.fetch(tipKey)
	if err != nil || raw == nil {
		return err
	}
	hash, err := chainhash.NewHash(raw)
	if err != nil {
		return errors.Wrap(err, "corrupted chain tip record")
	}

	tip, err := cdb.EntryByHash(context.Background(), *hash)
	if err != nil {
		return err
	}
	if tip == nil {
		return errors.Errorf("chain tip %v has no entry record", hash)
	}
	cdb.tip = tip
	return nil
}

// fetch reads a single value, mapping a missing key to a nil result.
func (cdb *ChainDB) fetch(key []byte) ([]byte, error) {
	var value []byte
	err := cdb.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "chain index read failed")
	}
	return value, nil
}

func entryKey(hash chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = entryKeyPrefix
	copy(key[1:], hash[:])
	return key
}

func heightKey(height int32) []byte {
	key := make([]byte, 5)
	key[0] = heightKeyPrefix
	binary.LittleEndian.PutUint32(key[1:], uint32(height))
	return key
}

func nextKey(hash chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = nextKeyPrefix
	copy(key[1:], hash[:])
	return key
}
