// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

// This file is the block metadata codec: pure functions that
// pack/unpack (size, alloc-bit) into header/footer words and navigate
// between a block's payload address and its neighbors. None of them
// mutate anything beyond the words at the addresses they are given.

// pack returns size with its allocated bit set or cleared. size MUST
// already be a multiple of 8; the middle two bits stay reserved zero.
func pack(size int, alloc bool) uint32 {
	w := uint32(size)
	if alloc {
		w |= 1
	}
	return w
}

func getSize(w uint32) int {
	return int(w &^ 7)
}

func getAlloc(w uint32) bool {
	return w&1 != 0
}

// header returns the address of bp's header word.
func header(bp Addr) Addr {
	return bp - wsize
}

// footer returns the address of bp's footer word; it reads bp's header
// to learn the block size.
func (h *Heap) footer(bp Addr) Addr {
	size := getSize(h.arena.ReadWord(header(bp)))
	return bp + Addr(size) - dsize
}

// setBlock writes pack(size, alloc) to both the header and the footer
// of the block whose payload starts at bp.
func (h *Heap) setBlock(bp Addr, size int, alloc bool) {
	w := pack(size, alloc)
	h.arena.WriteWord(header(bp), w)
	h.arena.WriteWord(bp+Addr(size)-dsize, w)
}

// blockSize returns the size of the block at payload address bp, as
// recorded in its header.
func (h *Heap) blockSize(bp Addr) int {
	return getSize(h.arena.ReadWord(header(bp)))
}

// blockAlloc reports whether the block at payload address bp is
// currently marked allocated.
func (h *Heap) blockAlloc(bp Addr) bool {
	return getAlloc(h.arena.ReadWord(header(bp)))
}

// nextBlock returns the payload address of the block physically
// following bp.
func (h *Heap) nextBlock(bp Addr) Addr {
	return bp + Addr(h.blockSize(bp))
}

// prevBlock returns the payload address of the block physically
// preceding bp. It requires the previous block's footer to be valid,
// which holds for any block other than one preceding the prologue -
// and the prologue itself is never passed to prevBlock by any caller
// in this package.
func (h *Heap) prevBlock(bp Addr) Addr {
	size := getSize(h.arena.ReadWord(bp - dsize))
	return bp - Addr(size)
}
