// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "encoding/binary"

// An Arena is a []byte-like model of the growable byte region backing a
// Heap. In contrast to lldb.Filer, which models a persistent, randomly
// truncatable file, an Arena only ever grows - Heap never calls anything
// resembling Truncate. An Arena is not safe for concurrent access; it is
// designed for consumption by a single Heap from one goroutine only,
// same discipline as lldb.Filer.
type Arena interface {
	// Grow extends the arena by exactly nBytes and returns the address
	// the arena used to end at (where the new region begins) and true.
	// It returns (0, false) if the arena cannot be grown further - the
	// Go analog of mem_sbrk returning the (void *)-1 sentinel.
	Grow(nBytes int) (oldEnd Addr, ok bool)

	// Lo returns the address of the first byte of the arena.
	Lo() Addr

	// Hi returns the address one past the last byte of the arena.
	Hi() Addr

	// ReadWord reads the 4-byte word at address at.
	ReadWord(at Addr) uint32

	// WriteWord writes the 4-byte word at address at.
	WriteWord(at Addr, v uint32)

	// ReadBytes returns a copy of the n bytes starting at address at.
	// It exists for Realloc's payload copy so a Heap never reaches past
	// the Arena interface for raw access, the same discipline
	// lldb.Allocator keeps around its Filer.
	ReadBytes(at Addr, n int) []byte

	// WriteBytes writes b starting at address at.
	WriteBytes(at Addr, b []byte)
}

var _ Arena = (*MemArena)(nil)

// MemArena is an in-process Arena backed by a single growable []byte.
// MaxBytes, if non-zero, caps how far Grow will extend the buffer; once
// hit, Grow reports failure forever after, which is how arena
// exhaustion is exercised in tests without actually exhausting host
// memory.
type MemArena struct {
	buf      []byte
	MaxBytes int
}

// NewMemArena returns an empty MemArena. A MaxBytes of 0 means
// unbounded.
func NewMemArena(maxBytes int) *MemArena {
	return &MemArena{MaxBytes: maxBytes}
}

// Grow implements Arena.
func (a *MemArena) Grow(nBytes int) (Addr, bool) {
	if nBytes < 0 {
		return 0, false
	}

	if a.MaxBytes != 0 && len(a.buf)+nBytes > a.MaxBytes {
		return 0, false
	}

	old := len(a.buf)
	a.buf = append(a.buf, make([]byte, nBytes)...)
	return Addr(old), true
}

// Lo implements Arena.
func (a *MemArena) Lo() Addr { return 0 }

// Hi implements Arena.
func (a *MemArena) Hi() Addr { return Addr(len(a.buf)) }

// ReadWord implements Arena.
func (a *MemArena) ReadWord(at Addr) uint32 {
	return binary.BigEndian.Uint32(a.buf[at : at+4])
}

// WriteWord implements Arena.
func (a *MemArena) WriteWord(at Addr, v uint32) {
	binary.BigEndian.PutUint32(a.buf[at:at+4], v)
}

// ReadBytes implements Arena.
func (a *MemArena) ReadBytes(at Addr, n int) []byte {
	b := make([]byte, n)
	copy(b, a.buf[at:at+Addr(n)])
	return b
}

// WriteBytes implements Arena.
func (a *MemArena) WriteBytes(at Addr, b []byte) {
	copy(a.buf[at:at+Addr(len(b))], b)
}
