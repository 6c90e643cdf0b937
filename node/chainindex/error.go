/*
 * Copyright (c) 2021 The JaxNetwork developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainindex

import "github.com/pkg/errors"

// AssertError identifies an error that indicates an internal code consistency
// issue and should be treated as an unrecoverable database corruption.  An
// example is an ancestor walk below the entry's known height that cannot
// resolve its next parent.
type AssertError string

// Error returns the assertion error as a human-readable string and satisfies
// the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// ErrShortEntry indicates a serialized chain entry record with fewer bytes
// than the fixed record size.
var ErrShortEntry = errors.New("serialized chain entry is too short")

// ErrBadHash indicates a decoded entry whose recorded hash does not match the
// hash recomputed from its header fields.
var ErrBadHash = errors.New("entry hash does not match header fields")
