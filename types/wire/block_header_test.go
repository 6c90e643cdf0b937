/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package wire

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
)

// mainNetGenesisHeader is the header of the first block of the main network.
var mainNetGenesisHeader = BlockHeader{
	Version:   1,
	PrevBlock: chainhash.Hash{},
	MerkleRoot: chainhash.Hash{
		0x3b, 0xa3, 0xed, 0xfd, 0x7a, 0x7b, 0x12, 0xb2,
		0x7a, 0xc7, 0x2c, 0x3e, 0x67, 0x76, 0x8f, 0x61,
		0x7f, 0xc8, 0x1b, 0xc3, 0x88, 0x8a, 0x51, 0x32,
		0x3a, 0x9f, 0xb8, 0xaa, 0x4b, 0x1e, 0x5e, 0x4a,
	},
	Timestamp: time.Unix(0x495fab29, 0), // 2009-01-03 18:15:05 +0000 UTC
	Bits:      0x1d00ffff,
	Nonce:     0x7c2bac1d, // 2083236893
}

func TestBlockHeaderSerialize(t *testing.T) {
	nonce := uint32(123123) // 0x1e0f3
	prevHash, _ := chainhash.NewHashFromStr("000000000002e7ad7b9eef9479e4aabc65cb831269cc20d2632c13684406dee6")
	merkleHash, _ := chainhash.NewHashFromStr("7e9e4c586439b0cdbe13b1370bdd9435d76a644d047523fd5b1a8f7f356ef1a6")
	bits := uint32(0x1d00ffff)
	bh := NewBlockHeader(1, prevHash, merkleHash, bits, nonce)

	// Serialized header, little endian fields.
	wantBuf := []byte{
		0x01, 0x00, 0x00, 0x00, // Version 1
		0xe6, 0xde, 0x06, 0x44, 0x68, 0x13, 0x2c, 0x63,
		0xd2, 0x20, 0xcc, 0x69, 0x12, 0x83, 0xcb, 0x65,
		0xbc, 0xaa, 0xe4, 0x79, 0x94, 0xef, 0x9e, 0x7b,
		0xad, 0xe7, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, // PrevBlock
		0xa6, 0xf1, 0x6e, 0x35, 0x7f, 0x8f, 0x1a, 0x5b,
		0xfd, 0x23, 0x75, 0x04, 0x4d, 0x64, 0x6a, 0xd7,
		0x35, 0x94, 0xdd, 0x0b, 0x37, 0xb1, 0x13, 0xbe,
		0xcd, 0xb0, 0x39, 0x64, 0x58, 0x4c, 0x9e, 0x7e, // MerkleRoot
		0x29, 0xab, 0x5f, 0x49, // Timestamp
		0xff, 0xff, 0x00, 0x1d, // Bits
		0xf3, 0xe0, 0x01, 0x00, // Nonce
	}

	bh.Timestamp = time.Unix(0x495fab29, 0)

	var buf bytes.Buffer
	if err := bh.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), wantBuf) {
		t.Fatalf("Serialize:\n%s\nwant:\n%s",
			spew.Sdump(buf.Bytes()), spew.Sdump(wantBuf))
	}

	var decoded BlockHeader
	rbuf := bytes.NewReader(wantBuf)
	if err := decoded.Deserialize(rbuf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if !reflect.DeepEqual(decoded, *bh) {
		t.Errorf("Deserialize:\n%s\nwant:\n%s",
			spew.Sdump(&decoded), spew.Sdump(bh))
	}
}

func TestBlockHeaderDeserializeShort(t *testing.T) {
	buf := make([]byte, BlockHeaderPayload-1)
	var bh BlockHeader
	if err := bh.Deserialize(bytes.NewReader(buf)); err == nil {
		t.Fatal("Deserialize of short buffer succeeded")
	}
}

func TestBlockHashGenesis(t *testing.T) {
	wantStr := "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
	hash := mainNetGenesisHeader.BlockHash()
	if hash.String() != wantStr {
		t.Errorf("BlockHash() = %s, want %s", hash, wantStr)
	}

	// Tampering with any field must change the hash.
	tampered := mainNetGenesisHeader
	tampered.Nonce++
	if got := tampered.BlockHash(); got == hash {
		t.Error("BlockHash() unchanged after nonce tamper")
	}
}
