// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// Sizes and alignments that are part of the on-arena layout; changing
// any of these changes the byte encoding a Heap produces.
const (
	wsize     = 4  // word size, bytes
	dsize     = 8  // doubleword size, bytes
	overhead  = 8  // header + footer, bytes
	minBlock  = 16 // smallest possible block, bytes
	chunkSize = 1 << 12
)

// Addr is a byte offset into an Arena, standing in for the raw pointers
// of the C original. NoAddr is its null value.
type Addr int64

// NoAddr is the sentinel returned in place of a null pointer.
const NoAddr Addr = -1

func roundUp8(n int) int {
	return (n + 7) &^ 7
}
