/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chaincfg

import (
	"time"

	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
	"gitlab.com/jaxnet/core/headerchain/types/wire"
)

// genesisHash is the hash of the first block in the block chain for the main
// network (genesis block).
var genesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x6f, 0xe2, 0x8c, 0x0a, 0xb6, 0xf1, 0xb3, 0x72,
	0xc1, 0xa6, 0xa2, 0x46, 0xae, 0x63, 0xf7, 0x4f,
	0x93, 0x1e, 0x83, 0x65, 0xe1, 0x5a, 0x08, 0x9c,
	0x68, 0xd6, 0x19, 0x00, 0x00, 0x00, 0x00, 0x00,
})

// genesisMerkleRoot is the hash of the first transaction in the genesis block
// for the main network.
var genesisMerkleRoot = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x3b, 0xa3, 0xed, 0xfd, 0x7a, 0x7b, 0x12, 0xb2,
	0x7a, 0xc7, 0x2c, 0x3e, 0x67, 0x76, 0x8f, 0x61,
	0x7f, 0xc8, 0x1b, 0xc3, 0x88, 0x8a, 0x51, 0x32,
	0x3a, 0x9f, 0xb8, 0xaa, 0x4b, 0x1e, 0x5e, 0x4a,
})

// genesisBlockHeader is the header of the first block in the block chain for
// the main network.
var genesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{}, // 0000000000000000000000000000000000000000000000000000000000000000
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(0x495fab29, 0), // 2009-01-03 18:15:05 +0000 UTC
	Bits:       0x1d00ffff,
	Nonce:      0x7c2bac1d, // 2083236893
}

// testNet3GenesisHash is the hash of the first block in the block chain for
// the test network (version 3).
var testNet3GenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x43, 0x49, 0x7f, 0xd7, 0xf8, 0x26, 0x95, 0x71,
	0x08, 0xf4, 0xa3, 0x0f, 0xd9, 0xce, 0xc3, 0xae,
	0xba, 0x79, 0x97, 0x20, 0x84, 0xe9, 0x0e, 0xad,
	0x01, 0xea, 0x33, 0x09, 0x00, 0x00, 0x00, 0x00,
})

// testNet3GenesisMerkleRoot is the hash of the first transaction in the
// genesis block for the test network (version 3).  It is the same as the
// merkle root for the main network.
var testNet3GenesisMerkleRoot = genesisMerkleRoot

// testNet3GenesisBlockHeader is the header of the first block in the block
// chain for the test network (version 3).
var testNet3GenesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{}, // 0000000000000000000000000000000000000000000000000000000000000000
	MerkleRoot: testNet3GenesisMerkleRoot,
	Timestamp:  time.Unix(1296688602, 0), // 2011-02-02 23:16:42 +0000 UTC
	Bits:       0x1d00ffff,
	Nonce:      0x18aea41a, // 414098458
}

// simNetGenesisHash is the hash of the first block in the block chain for the
// simulation test network.
var simNetGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x68, 0x3e, 0x86, 0xbd, 0x5c, 0x6d, 0x11, 0x0d,
	0x91, 0xb9, 0x4b, 0x97, 0x13, 0x7b, 0xa6, 0xbf,
	0xe0, 0x2d, 0xbb, 0xdb, 0x8e, 0x3d, 0xff, 0x72,
	0x2a, 0x66, 0x9b, 0x5d, 0x69, 0xd7, 0x7a, 0xf6,
})

// simNetGenesisMerkleRoot is the hash of the first transaction in the genesis
// block for the simulation test network.  It is the same as the merkle root
// for the main network.
var simNetGenesisMerkleRoot = genesisMerkleRoot

// simNetGenesisBlockHeader is the header of the first block in the block
// chain for the simulation test network.
var simNetGenesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{}, // 0000000000000000000000000000000000000000000000000000000000000000
	MerkleRoot: simNetGenesisMerkleRoot,
	Timestamp:  time.Unix(1401292357, 0), // 2014-05-28 15:52:37 +0000 UTC
	Bits:       0x207fffff,
	Nonce:      2,
}
