// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "fmt"

// A Heap allocates and recycles blocks of an Arena using a next-fit
// implicit free list and boundary-tag coalescing. A Heap is not safe for
// concurrent use: like lldb.Filer, it is designed for consumption from
// one goroutine only, or behind a caller-supplied mutex.
type Heap struct {
	arena Arena
	cfg   Config

	heapListP Addr // payload address of the prologue block
	cursor    Addr // next-fit search cursor, always a live payload address
}

// NewHeap returns a Heap backed by arena, which MUST be empty (Lo() ==
// Hi()). Call Init before using it.
func NewHeap(arena Arena, cfg Config) (*Heap, error) {
	if arena.Lo() != arena.Hi() {
		return nil, &ErrINVAL{Src: "NewHeap", Arg: "arena is not empty"}
	}

	return &Heap{arena: arena, cfg: cfg.normalize()}, nil
}

// Init lays down the prologue and epilogue sentinels and performs the
// first chunk-sized arena extension. It returns a non-nil error (the Go
// analog of returning -1) if the arena cannot supply the initial 16
// bytes, or the first extension.
func (h *Heap) Init() error {
	base, ok := h.arena.Grow(2 * dsize)
	if !ok {
		return fmt.Errorf("malloc: Init: arena exhausted requesting %d bytes", 2*dsize)
	}

	// [base+0, base+4): alignment padding, left zero.
	h.arena.WriteWord(base+wsize, pack(dsize, true))   // prologue header
	h.arena.WriteWord(base+2*wsize, pack(dsize, true)) // prologue footer
	h.arena.WriteWord(base+3*wsize, pack(0, true))     // epilogue header

	h.heapListP = base + 2*wsize // the prologue's payload pointer == its footer address
	h.cursor = h.heapListP

	if _, err := h.extendHeap(h.cfg.ChunkBytes / wsize); err != nil {
		return err
	}

	return nil
}

// extendHeap grows the arena by at least words*4 bytes (rounded up to
// an even word count), lays down a new free block in place of the old
// epilogue, writes a fresh epilogue after it, coalesces the new block
// with its left neighbor if that neighbor is free, and returns the
// surviving block's payload address.
func (h *Heap) extendHeap(words int) (Addr, error) {
	if words <= 0 {
		words = 1
	}
	if words%2 != 0 {
		words++
	}
	nBytes := words * wsize

	oldEnd, ok := h.arena.Grow(nBytes)
	if !ok {
		return NoAddr, fmt.Errorf("malloc: extendHeap: arena exhausted requesting %d bytes", nBytes)
	}

	bp := oldEnd
	h.setBlock(bp, nBytes, false)
	h.arena.WriteWord(header(h.nextBlock(bp)), pack(0, true))

	return h.coalesce(bp), nil
}
