/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/jaxnet/core/headerchain/types/chaincfg"
	"gitlab.com/jaxnet/core/headerchain/types/chainhash"
)

// entriesWithTimestamps builds a detached ancestor sequence (index 0 = self)
// carrying the given timestamps.
func entriesWithTimestamps(timestamps []uint32) []*ChainEntry {
	entries := make([]*ChainEntry, len(timestamps))
	for i, ts := range timestamps {
		entries[i] = NewEntry(&EntryOptions{
			Version:    1,
			MerkleRoot: chainhash.DoubleHashH([]byte{byte(i)}),
			Timestamp:  ts,
			Bits:       0x207fffff,
			Height:     int32(len(timestamps) - 1 - i),
		})
	}
	return entries
}

func TestMedianTimeOf(t *testing.T) {
	tests := []struct {
		name       string
		timestamps []uint32
		want       int64
	}{
		{
			name: "full window ascending",
			timestamps: []uint32{
				1100, 1090, 1080, 1070, 1060, 1050,
				1040, 1030, 1020, 1010, 1000,
			},
			want: 1050, // sorted[5] of 11
		},
		{
			name: "full window shuffled",
			timestamps: []uint32{
				1050, 1100, 1000, 1090, 1010, 1080,
				1020, 1070, 1030, 1060, 1040,
			},
			want: 1050,
		},
		{
			name:       "single entry",
			timestamps: []uint32{1234},
			want:       1234,
		},
		{
			name:       "even count near genesis",
			timestamps: []uint32{40, 10, 30, 20},
			want:       30, // sorted[2] of 4
		},
		{
			name: "window larger than eleven is truncated",
			timestamps: []uint32{
				2000, 1100, 1090, 1080, 1070, 1060,
				1050, 1040, 1030, 1020, 1010, 5, 4, 3,
			},
			want: 1060, // only the first 11 participate
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MedianTimeOf(entriesWithTimestamps(tt.timestamps))
			require.Equal(t, tt.want, got.Unix())
		})
	}
}

func TestMedianTimeOfEmptySet(t *testing.T) {
	require.PanicsWithValue(t,
		AssertError("median time requested over an empty ancestor set"),
		func() { MedianTimeOf(nil) })
}

func TestMedianTime(t *testing.T) {
	idx := newFakeIndex()
	chain := buildChain(idx, &chaincfg.SimNetParams, 15)
	ctx := context.Background()

	// buildChain spaces blocks 600 seconds apart, so the median over the
	// 11-block window ending at the tip is the timestamp five blocks back.
	tip := chain[len(chain)-1]
	got, err := tip.MedianTime(ctx, idx)
	require.NoError(t, err)
	require.Equal(t, int64(chain[len(chain)-6].Timestamp()), got.Unix())

	// Near genesis the median covers the smaller available set.
	got, err = chain[2].MedianTime(ctx, idx)
	require.NoError(t, err)
	require.Equal(t, int64(chain[1].Timestamp()), got.Unix())
}
