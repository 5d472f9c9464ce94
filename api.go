// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import (
	"fmt"
	"log"
	"os"

	"github.com/cznic/mathutil"
)

// reallocLogger receives the unrecoverable-allocation-failure
// diagnostic before the process is terminated. It writes to stderr by
// default, the same destination dbm/crash's log.Logger uses.
var reallocLogger = log.New(os.Stderr, "malloc: ", log.LstdFlags)

// adjustedSize computes the total block size (payload + overhead,
// rounded up to a doubleword) a request of size bytes needs.
func (h *Heap) adjustedSize(size int) int {
	if size <= dsize {
		return h.cfg.MinBlockBytes
	}
	return dsize * ((size + overhead + dsize - 1) / dsize)
}

// Malloc allocates a block with payload capacity for at least size
// bytes and returns its payload address, or NoAddr if size <= 0 or if
// the arena could not be grown far enough to satisfy the request.
func (h *Heap) Malloc(size int) (Addr, error) {
	if size <= 0 {
		return NoAddr, nil
	}

	asize := h.adjustedSize(size)
	if bp := h.findFit(asize); bp != NoAddr {
		h.place(bp, asize)
		return bp, nil
	}

	words := mathutil.Max(asize, h.cfg.ChunkBytes) / wsize
	bp, err := h.extendHeap(words)
	if err != nil {
		return NoAddr, err
	}

	h.place(bp, asize)
	return bp, nil
}

// Free returns the block at ptr to the free list, eagerly coalescing it
// with whichever physical neighbors are also free. Free(NoAddr) is a
// documented no-op.
func (h *Heap) Free(ptr Addr) error {
	if ptr == NoAddr {
		return nil
	}

	if ptr <= h.arena.Lo() || ptr >= h.arena.Hi() {
		return &ErrINVAL{Src: "Heap.Free", Arg: ptr}
	}

	size := h.blockSize(ptr)
	h.setBlock(ptr, size, false)
	h.coalesce(ptr)
	return nil
}

// shrinkInPlace implements the shrink branch of Realloc: it only splits
// off a free residual when that residual would itself meet the minimum
// block size, otherwise the whole block stays allocated at its
// original size rather than leaving an unindexable stub - the same
// threshold place uses when splitting a fresh allocation.
func (h *Heap) shrinkInPlace(ptr Addr, asize, copySize int) {
	if copySize-asize < h.cfg.MinBlockBytes {
		return
	}

	h.setBlock(ptr, asize, true)
	rest := h.nextBlock(ptr)
	h.setBlock(rest, copySize-asize, false)
	h.coalesce(rest)
}

// Realloc resizes the block at ptr to hold size bytes, returning its
// (possibly new) payload address. Realloc(NoAddr, n) behaves like
// Malloc(n); Realloc(ptr, 0) behaves like Free(ptr) - both following
// the common C convention for realloc.
func (h *Heap) Realloc(ptr Addr, size int) (Addr, error) {
	if ptr == NoAddr {
		return h.Malloc(size)
	}

	if size <= 0 {
		return NoAddr, h.Free(ptr)
	}

	copySize := h.blockSize(ptr)
	asize := h.adjustedSize(size)

	switch {
	case asize == copySize:
		return ptr, nil
	case asize < copySize:
		h.shrinkInPlace(ptr, asize, copySize)
		return ptr, nil
	}

	if next := h.nextBlock(ptr); !h.blockAlloc(next) {
		combined := copySize + h.blockSize(next)
		if combined >= asize {
			// Rewrite ptr's header/footer to the combined free size
			// before handing the span to place, which then re-splits
			// it for the requested asize.
			h.setBlock(ptr, combined, false)
			// The absorbed neighbor may be the block the next-fit
			// cursor references; move the cursor back to ptr.
			if h.cursor > ptr && h.cursor < ptr+Addr(combined) {
				h.cursor = ptr
			}
			h.place(ptr, asize)
			return ptr, nil
		}
	}

	newPtr, err := h.Malloc(size)
	if newPtr == NoAddr {
		if err == nil {
			err = fmt.Errorf("malloc: Realloc: allocation failed for %d bytes", size)
		}
		// The backing arena is exhausted and there is no sane value to
		// return: report and terminate. The prior block at ptr is
		// deliberately left allocated.
		reallocLogger.Fatalf("Realloc: %v", err)
	}

	oldPayload := copySize - overhead
	n := oldPayload
	if size < n {
		n = size
	}
	h.arena.WriteBytes(newPtr, h.arena.ReadBytes(ptr, n))

	if err := h.Free(ptr); err != nil {
		return NoAddr, err
	}

	return newPtr, nil
}
