// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// place marks the free block at bp allocated for a request of asize
// bytes (total block size, including overhead), splitting off a free
// residual block when the remainder would still meet the minimum block
// size. bp MUST be free and its size MUST be >= asize.
func (h *Heap) place(bp Addr, asize int) {
	csize := h.blockSize(bp)

	if csize-asize >= h.cfg.MinBlockBytes {
		h.setBlock(bp, asize, true)
		rest := h.nextBlock(bp)
		h.setBlock(rest, csize-asize, false)
		// The residual's right neighbor is normally allocated (it was
		// part of the block we just split), but realloc's in-place
		// grow path can leave it adjacent to another free block, so
		// coalesce defensively every time.
		h.coalesce(rest)
		return
	}

	h.setBlock(bp, csize, true)
}
