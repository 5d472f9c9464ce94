// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*

Package malloc implements a dynamic memory allocator over a single
contiguous, monotonically growable byte region (an Arena). Client code
requests payload blocks of arbitrary size and later returns them; the
allocator recycles freed space and asks the Arena to grow when no free
block is big enough.

The terms MUST or MUST NOT, if/where used in this documentation, written
in all caps as seen here, are a requirement for any alternative
implementation aiming for compatibility with this one.

Arena

An Arena is a linear, contiguous, growable sequence of bytes, addressed
by byte offset. It never shrinks; Heap never returns bytes to it. See the
Arena type for the exact interface a Heap consumes.

Words and blocks

A word is 4 bytes, a doubleword 8 bytes. Every block is a whole number of
doublewords, at least 16 bytes. A block is identified externally by its
payload address bp, the address immediately following its header:

	offset 0            : header word (size | alloc bit)
	offset 4            : payload, (size - 8) bytes
	offset (size-4)      : footer word, identical bits to the header

The low 3 bits of size are always zero (blocks are 8-byte aligned), so
bit 0 of the packed word doubles as the allocated flag; bits 1-2 are
reserved and always zero.

Sentinels

The Arena begins with a 4-byte alignment pad, an allocated prologue
block of size 8 (header+footer, no payload), and always ends with a
zero-size allocated epilogue header. Coalesce and the next-fit finder
never walk past the epilogue nor merge into the prologue; their mere
presence at both ends removes the edge conditions an unguarded walk
would otherwise have to special-case.

Free block recycling

Free blocks form an implicit list: the sequence obtained by walking
every block via its header size, free and allocated blocks interleaved,
with no explicit next/prev pointers. Malloc locates a candidate with a
next-fit search (resume from the block placed last time, wrap at the
epilogue) rather than always restarting at the prologue; free eagerly
merges a newly freed block with both physical neighbors so two free
blocks are never adjacent. Neither policy is persisted - they are pure
runtime behavior of a *Heap value.

Handles vs. addresses

Unlike lldb's Allocator, which hands out persistent handles into a file,
a malloc.Heap hands out Addr values: byte offsets into an in-process
Arena, valid only for the lifetime of that Heap. There is no reloc
block, no compression, no bit-map verification pass - Verify walks the
live block list directly, since the whole arena is addressable memory
rather than a file that might disagree with a separately maintained free
list.

*/
package malloc
