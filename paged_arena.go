// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "github.com/cznic/mathutil"

// PagedArena is an Arena backed by a sparse map of fixed-size pages
// instead of one contiguous []byte, adapted from lldb.MemFiler's paging
// scheme. Growing it never has to copy the whole arena the way
// MemArena's append does, at the cost of a map lookup per word access -
// the same trade MemFiler makes against a plain []byte-backed Filer.
type PagedArena struct {
	pages    map[int64]*[pgSize]byte
	size     int64
	MaxBytes int
}

const (
	pgBits = 12
	pgSize = 1 << pgBits
	pgMask = pgSize - 1
)

var zeroPage [pgSize]byte

var _ Arena = (*PagedArena)(nil)

// NewPagedArena returns an empty PagedArena. A MaxBytes of 0 means
// unbounded.
func NewPagedArena(maxBytes int) *PagedArena {
	return &PagedArena{pages: map[int64]*[pgSize]byte{}, MaxBytes: maxBytes}
}

// Grow implements Arena.
func (a *PagedArena) Grow(nBytes int) (Addr, bool) {
	if nBytes < 0 {
		return 0, false
	}

	if a.MaxBytes != 0 && int(a.size)+nBytes > a.MaxBytes {
		return 0, false
	}

	old := a.size
	a.size += int64(nBytes)
	return Addr(old), true
}

// Lo implements Arena.
func (a *PagedArena) Lo() Addr { return 0 }

// Hi implements Arena.
func (a *PagedArena) Hi() Addr { return Addr(a.size) }

func (a *PagedArena) page(pgI int64) *[pgSize]byte {
	pg := a.pages[pgI]
	if pg == nil {
		pg = new([pgSize]byte)
		a.pages[pgI] = pg
	}
	return pg
}

// ReadWord implements Arena.
func (a *PagedArena) ReadWord(at Addr) uint32 {
	var b [4]byte
	a.readInto(b[:], at)
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// WriteWord implements Arena.
func (a *PagedArena) WriteWord(at Addr, v uint32) {
	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	a.WriteBytes(at, b[:])
}

// ReadBytes implements Arena.
func (a *PagedArena) ReadBytes(at Addr, n int) []byte {
	b := make([]byte, n)
	a.readInto(b, at)
	return b
}

func (a *PagedArena) readInto(b []byte, at Addr) {
	off := int64(at)
	pgI := off >> pgBits
	pgO := int(off & pgMask)
	rem := len(b)
	for rem != 0 {
		pg := a.pages[pgI]
		if pg == nil {
			pg = &zeroPage
		}
		nc := copy(b[:mathutil.Min(rem, pgSize-pgO)], pg[pgO:])
		pgI++
		pgO = 0
		rem -= nc
		b = b[nc:]
	}
}

// WriteBytes implements Arena.
func (a *PagedArena) WriteBytes(at Addr, b []byte) {
	off := int64(at)
	pgI := off >> pgBits
	pgO := int(off & pgMask)
	for len(b) != 0 {
		pg := a.page(pgI)
		nc := copy(pg[pgO:], b)
		pgI++
		pgO = 0
		b = b[nc:]
	}
}
