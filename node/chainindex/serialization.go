/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
	"gitlab.com/jaxnet/core/headerchain/types/wire"
)

// EntrySerializedSize is the exact size in bytes of a serialized chain entry
// record: the 80-byte header, a 4-byte height, and a 32-byte little-endian
// chainwork.
const EntrySerializedSize = wire.BlockHeaderPayload + 4 + chainworkSize

// chainworkSize is the fixed width of the stored chainwork value.  256 bits
// is the practical ceiling of accumulated work.
const chainworkSize = 32

// Bytes serializes the entry into the canonical storage record.  The entry
// hash is deliberately not stored; DecodeEntry recomputes it from the header
// bytes so a persisted hash can never diverge from its derivation.
func (e *ChainEntry) Bytes() []byte {
	buf := make([]byte, EntrySerializedSize)

	off := 0
	binary.LittleEndian.PutUint32(buf[off:], uint32(e.version))
	off += 4
	copy(buf[off:], e.prevBlock[:])
	off += chainhash.HashSize
	copy(buf[off:], e.merkleRoot[:])
	off += chainhash.HashSize
	binary.LittleEndian.PutUint32(buf[off:], e.ts)
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], e.bits)
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], e.nonce)
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], uint32(e.height))
	off += 4
	putChainwork(buf[off:off+chainworkSize], e.workSum)

	return buf
}

// Encode writes the canonical storage record of the entry to w.
func (e *ChainEntry) Encode(w io.Writer) error {
	_, err := w.Write(e.Bytes())
	return err
}

// DecodeEntry parses a chain entry from the canonical storage record.  The
// hash is recomputed by double-hashing the 80 header bytes of the record.
// A record shorter than EntrySerializedSize indicates corrupted data and
// fails outright.
func DecodeEntry(b []byte) (*ChainEntry, error) {
	if len(b) < EntrySerializedSize {
		return nil, errors.Wrapf(ErrShortEntry, "got %d bytes, want %d",
			len(b), EntrySerializedSize)
	}

	entry := &ChainEntry{
		hash: chainhash.DoubleHashH(b[:wire.BlockHeaderPayload]),
	}

	off := 0
	entry.version = int32(binary.LittleEndian.Uint32(b[off:]))
	off += 4
	copy(entry.prevBlock[:], b[off:off+chainhash.HashSize])
	off += chainhash.HashSize
	copy(entry.merkleRoot[:], b[off:off+chainhash.HashSize])
	off += chainhash.HashSize
	entry.ts = binary.LittleEndian.Uint32(b[off:])
	off += 4
	entry.bits = binary.LittleEndian.Uint32(b[off:])
	off += 4
	entry.nonce = binary.LittleEndian.Uint32(b[off:])
	off += 4
	entry.height = int32(binary.LittleEndian.Uint32(b[off:]))
	off += 4
	entry.workSum = chainworkFromBytes(b[off : off+chainworkSize])

	return entry, nil
}

// putChainwork writes work into buf as a zero-padded little-endian unsigned
// integer.  buf must be chainworkSize bytes.  A work value wider than the
// fixed record width indicates an internal consistency failure, as no chain
// of valid proofs can accumulate past 256 bits.
func putChainwork(buf []byte, work *big.Int) {
	// big.Int.Bytes is big-endian, so reverse into place.
	wb := work.Bytes()
	if len(wb) > len(buf) {
		panic(AssertError(fmt.Sprintf("chainwork %x overflows the %d-byte "+
			"record field", work, len(buf))))
	}
	for i, b := range wb {
		buf[len(wb)-1-i] = b
	}
}

// chainworkFromBytes parses a zero-padded little-endian unsigned integer.
func chainworkFromBytes(buf []byte) *big.Int {
	be := make([]byte, len(buf))
	for i, b := range buf {
		be[len(buf)-1-i] = b
	}
	return new(big.Int).SetBytes(be)
}

// entryJSON mirrors the human-readable object form of a chain entry.  Every
// field is required; pointers let decoding distinguish absent fields from
// zero values.
type entryJSON struct {
	Hash       *string `json:"hash"`
	Version    *int32  `json:"version"`
	PrevBlock  *string `json:"prevBlock"`
	MerkleRoot *string `json:"merkleRoot"`
	Ts         *uint32 `json:"ts"`
	Bits       *uint32 `json:"bits"`
	Nonce      *uint32 `json:"nonce"`
	Height     *int32  `json:"height"`
	Chainwork  *string `json:"chainwork"`
}

// MarshalJSON implements the json.Marshaler interface.  Hashes are rendered
// in the conventional byte-reversed hexadecimal display form and chainwork as
// a fixed-width 64-digit big-endian hex string.
func (e *ChainEntry) MarshalJSON() ([]byte, error) {
	hash := e.hash.String()
	prevBlock := e.prevBlock.String()
	merkleRoot := e.merkleRoot.String()
	chainwork := fmt.Sprintf("%064x", e.workSum)
	return json.Marshal(&entryJSON{
		Hash:       &hash,
		Version:    &e.version,
		PrevBlock:  &prevBlock,
		MerkleRoot: &merkleRoot,
		Ts:         &e.ts,
		Bits:       &e.bits,
		Nonce:      &e.nonce,
		Height:     &e.height,
		Chainwork:  &chainwork,
	})
}

// EntryFromJSON parses a chain entry from its human-readable object form.
// All fields are required and type-checked; the recorded hash must match the
// hash recomputed from the header fields.
func EntryFromJSON(b []byte) (*ChainEntry, error) {
	var obj entryJSON
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, errors.Wrap(err, "malformed entry object")
	}
	if obj.Hash == nil || obj.Version == nil || obj.PrevBlock == nil ||
		obj.MerkleRoot == nil || obj.Ts == nil || obj.Bits == nil ||
		obj.Nonce == nil || obj.Height == nil || obj.Chainwork == nil {
		return nil, errors.New("entry object is missing required fields")
	}

	hash, err := chainhash.NewHashFromStr(*obj.Hash)
	if err != nil {
		return nil, errors.Wrap(err, "invalid hash")
	}
	prevBlock, err := chainhash.NewHashFromStr(*obj.PrevBlock)
	if err != nil {
		return nil, errors.Wrap(err, "invalid prevBlock")
	}
	merkleRoot, err := chainhash.NewHashFromStr(*obj.MerkleRoot)
	if err != nil {
		return nil, errors.Wrap(err, "invalid merkleRoot")
	}
	workSum, err := parseChainwork(*obj.Chainwork)
	if err != nil {
		return nil, err
	}

	entry := NewEntry(&EntryOptions{
		Version:    *obj.Version,
		PrevBlock:  *prevBlock,
		MerkleRoot: *merkleRoot,
		Timestamp:  *obj.Ts,
		Bits:       *obj.Bits,
		Nonce:      *obj.Nonce,
		Height:     *obj.Height,
		WorkSum:    workSum,
	})
	if !entry.hash.IsEqual(hash) {
		return nil, errors.Wrapf(ErrBadHash, "recorded %s, derived %s",
			hash, entry.hash)
	}
	return entry, nil
}

// parseChainwork parses the fixed-width 64-digit big-endian hex form of the
// cumulative chainwork.
func parseChainwork(s string) (*big.Int, error) {
	if len(s) != chainworkSize*2 {
		return nil, errors.Errorf("chainwork must be %d hex digits, got %d",
			chainworkSize*2, len(s))
	}
	work, ok := new(big.Int).SetString(s, 16)
	if !ok || work.Sign() < 0 {
		return nil, errors.Errorf("invalid chainwork %q", s)
	}
	return work, nil
}
