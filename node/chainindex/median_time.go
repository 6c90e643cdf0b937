/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import (
	"context"
	"sort"
	"time"

	"gitlab.com/jaxnet/core/headerchain/types"
)

// MedianTimeOf calculates the median time over the given ancestor sequence,
// where index 0 is the entry itself followed by its ancestors.  At most the
// median-time window of timestamps is considered.  The sequence must not be
// empty.
func MedianTimeOf(entries []*ChainEntry) time.Time {
	if len(entries) == 0 {
		panic(AssertError("median time requested over an empty ancestor set"))
	}

	// Create a slice of the block timestamps used to calculate the median
	// per the number defined by the constant medianTimeBlocks.
	timestamps := make([]int64, 0, medianTimeBlocks)
	for i := 0; i < medianTimeBlocks && i < len(entries); i++ {
		timestamps = append(timestamps, int64(entries[i].ts))
	}
	sort.Sort(types.TimeSorter(timestamps))

	// NOTE: The consensus rules incorrectly calculate the median for even
	// numbers of blocks.  A true median averages the middle two elements
	// for a set with an even number of elements in it.  Since the constant
	// for the previous number of blocks to be used is odd, this is only an
	// issue for a few blocks near the beginning of the chain.  This code
	// follows suit to ensure the same rules are used, however, be aware
	// that should the medianTimeBlocks constant ever be changed to an even
	// number, this code will be wrong.
	medianTimestamp := timestamps[len(timestamps)/2]
	return time.Unix(medianTimestamp, 0)
}

// MedianTime calculates the median time of the previous few blocks prior to,
// and including, the entry, fetching the required ancestors through the given
// index.
func (e *ChainEntry) MedianTime(ctx context.Context, idx IndexReader) (time.Time, error) {
	entries, err := e.Ancestors(ctx, idx, medianTimeBlocks)
	if err != nil {
		return time.Time{}, err
	}
	return MedianTimeOf(entries), nil
}
