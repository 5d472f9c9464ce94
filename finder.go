// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// findFit implements the next-fit free-block finder: it resumes the
// search from h.cursor rather than always restarting at the prologue,
// wrapping at the epilogue, and gives up once it has cycled all the way
// back to where it started without finding a fit.
func (h *Heap) findFit(asize int) Addr {
	start := h.cursor
	bp := start

	for {
		if !h.blockAlloc(bp) && h.blockSize(bp) >= asize {
			h.cursor = bp
			return bp
		}

		bp = h.nextBlock(bp)
		if h.blockSize(bp) == 0 { // epilogue reached, wrap
			bp = h.heapListP
		}
		if bp == start {
			return NoAddr
		}
	}
}
