// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// coalesce merges the free block at bp (header and footer already
// marked free) with whichever physical neighbors are also free, and
// repairs h.cursor if coalescing absorbed the block it referenced. bp
// MUST NOT be the prologue - prevBlock(bp) relies on the prologue's
// footer always being a valid, allocated block, which holds for every
// block other than the prologue itself.
func (h *Heap) coalesce(bp Addr) Addr {
	prev := h.prevBlock(bp)
	next := h.nextBlock(bp)
	prevFree := !h.blockAlloc(prev)
	nextFree := !h.blockAlloc(next)
	size := h.blockSize(bp)

	switch {
	case !prevFree && !nextFree:
		// nothing to merge
	case !prevFree && nextFree:
		size += h.blockSize(next)
		h.setBlock(bp, size, false)
	case prevFree && !nextFree:
		size += h.blockSize(prev)
		bp = prev
		h.setBlock(bp, size, false)
	default: // both free
		size += h.blockSize(prev) + h.blockSize(next)
		bp = prev
		h.setBlock(bp, size, false)
	}

	lo, hi := header(bp), bp+Addr(size)
	if h.cursor > lo && h.cursor < hi {
		h.cursor = bp
	}

	return bp
}
