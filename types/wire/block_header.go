/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package wire

import (
	"bytes"
	"io"
	"time"

	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
)

// BlockHeaderPayload is the number of bytes a block header occupies on the
// wire.  Version 4 bytes + Timestamp 4 bytes + Bits 4 bytes + Nonce 4 bytes +
// PrevBlock and MerkleRoot hashes.
const BlockHeaderPayload = 16 + (chainhash.HashSize * 2)

// BlockHeader defines information about a block and is used in the bitcoin
// block (MsgBlock) and headers (MsgHeaders) messages.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is, unfortunately, encoded as a
	// uint32 on the wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	// Encode the header and double sha256 everything.  Ignore the error
	// returns since there is no way the encode could fail except being out
	// of memory which would cause a run-time panic.
	buf := bytes.NewBuffer(make([]byte, 0, BlockHeaderPayload))
	_ = writeBlockHeader(buf, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Deserialize decodes a block header from r into the receiver using a format
// that is suitable for long-term storage such as a database.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	// At the current time, there is no difference between the wire encoding
	// and the stable long-term storage format.
	return readBlockHeader(r, h)
}

// Serialize encodes a block header from the receiver to w using a format
// that is suitable for long-term storage such as a database.
func (h *BlockHeader) Serialize(w io.Writer) error {
	// At the current time, there is no difference between the wire encoding
	// and the stable long-term storage format.
	return writeBlockHeader(w, h)
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce with the
// timestamp set to the current time truncated to one second precision, which
// matches the precision the wire encoding can carry.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash,
	bits, nonce uint32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  time.Unix(time.Now().Unix(), 0),
		Bits:       bits,
		Nonce:      nonce,
	}
}

// readBlockHeader reads a bitcoin block header from r.
func readBlockHeader(r io.Reader, bh *BlockHeader) error {
	return ReadElements(r, &bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		(*Uint32Time)(&bh.Timestamp), &bh.Bits, &bh.Nonce)
}

// writeBlockHeader writes a bitcoin block header to w.
func writeBlockHeader(w io.Writer, bh *BlockHeader) error {
	sec := uint32(bh.Timestamp.Unix())
	return WriteElements(w, bh.Version, &bh.PrevBlock, &bh.MerkleRoot,
		sec, bh.Bits, bh.Nonce)
}
