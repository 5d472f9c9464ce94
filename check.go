// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import (
	"fmt"
	"os"
	"sort"

	"github.com/cznic/sortutil"
)

// HeapStats summarizes a Verify walk, directly modeled on
// lldb.AllocStats.
type HeapStats struct {
	TotalBlocks int
	AllocBlocks int
	FreeBlocks  int
	AllocBytes  int64
	FreeBytes   int64
}

// CheckHeap is the diagnostic entry point for manual inspection: a
// linear walk that prints every block in verbose mode and reports any
// inconsistency found to stderr. It never mutates the heap and never
// aborts.
func (h *Heap) CheckHeap(verbose bool) {
	h.Verify(verbose, func(err error) bool {
		fmt.Fprintln(os.Stderr, "malloc:", err)
		return true
	})
}

// Verify walks every block from the prologue to the epilogue,
// asserting 8-byte payload alignment, header/footer
// agreement, prologue/epilogue shape, absence of adjacent free blocks,
// and that the next-fit cursor references a block actually on the
// list. Each violation is reported through log, which may return false
// to stop any further reporting (same contract as lldb.Allocator.Verify's
// log parameter - nil defaults to discarding every diagnostic). Verify
// never mutates the heap and never aborts; it only returns accumulated
// statistics.
func (h *Heap) Verify(verbose bool, log func(error) bool) HeapStats {
	if log == nil {
		log = nolog
	}
	sink, stopped := log, false
	log = func(err error) bool {
		if !stopped && !sink(err) {
			stopped = true
		}
		return !stopped
	}

	var st HeapStats

	prologueHdr := h.arena.ReadWord(header(h.heapListP))
	if getSize(prologueHdr) != dsize || !getAlloc(prologueHdr) {
		log(&ErrILSEQ{Kind: ErrBadPrologue, Addr: h.heapListP})
	}

	cursorSeen := false
	prevFree := false
	bp := h.heapListP
	for h.blockSize(bp) != 0 {
		if int64(bp)%dsize != 0 {
			log(&ErrILSEQ{Kind: ErrMisaligned, Addr: bp})
		}

		hw := h.arena.ReadWord(header(bp))
		fw := h.arena.ReadWord(h.footer(bp))
		if hw != fw {
			log(&ErrILSEQ{Kind: ErrTagMismatch, Addr: bp, Arg: int64(hw), Arg2: int64(fw)})
		}

		size := getSize(hw)
		alloc := getAlloc(hw)
		switch {
		case alloc:
			st.AllocBlocks++
			st.AllocBytes += int64(size - overhead)
		default:
			st.FreeBlocks++
			st.FreeBytes += int64(size - overhead)
			if prevFree {
				log(&ErrILSEQ{Kind: ErrAdjacentFree, Addr: h.prevBlock(bp), Arg: int64(bp)})
			}
		}
		prevFree = !alloc

		if bp == h.cursor {
			cursorSeen = true
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "malloc: %#x: header [%d:%s] footer [%d:%s]\n",
				bp, size, allocMark(alloc), getSize(fw), allocMark(getAlloc(fw)))
		}

		st.TotalBlocks++
		bp = h.nextBlock(bp)
	}

	epilogueHdr := h.arena.ReadWord(header(bp))
	if getSize(epilogueHdr) != 0 || !getAlloc(epilogueHdr) {
		log(&ErrILSEQ{Kind: ErrBadEpilogue, Addr: bp})
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "malloc: %#x: EOL\n", bp)
	}

	if !cursorSeen {
		log(&ErrILSEQ{Kind: ErrCursorInvalid, Addr: h.cursor})
	}

	return st
}

// LargestFreeBlocks walks the free list and returns up to n free block
// sizes, largest first; n <= 0 returns all of them. It is meant for operator-facing diagnostics
// (a caller deciding whether a heap is fragmented enough to warrant
// growing ChunkBytes), not for findFit, which never sorts anything.
func (h *Heap) LargestFreeBlocks(n int) []int64 {
	var sizes sortutil.Int64Slice
	for bp := h.heapListP; h.blockSize(bp) != 0; bp = h.nextBlock(bp) {
		if !h.blockAlloc(bp) {
			sizes = append(sizes, int64(h.blockSize(bp)))
		}
	}
	sort.Sort(sort.Reverse(sizes))

	if n > 0 && n < len(sizes) {
		sizes = sizes[:n]
	}
	return sizes
}

func allocMark(alloc bool) string {
	if alloc {
		return "a"
	}
	return "f"
}
