// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "testing"

func TestPagedArenaGrow(t *testing.T) {
	a := NewPagedArena(0)
	if a.Lo() != 0 || a.Hi() != 0 {
		t.Fatalf("fresh arena not empty: lo=%d hi=%d", a.Lo(), a.Hi())
	}

	old, ok := a.Grow(16)
	if !ok || old != 0 {
		t.Fatalf("Grow(16) = (%d, %v), want (0, true)", old, ok)
	}
	if a.Hi() != 16 {
		t.Fatalf("Hi() = %d, want 16", a.Hi())
	}
}

func TestPagedArenaMaxBytesCeiling(t *testing.T) {
	a := NewPagedArena(16)
	if _, ok := a.Grow(16); !ok {
		t.Fatal("Grow(16) should fit exactly at the ceiling")
	}
	if _, ok := a.Grow(1); ok {
		t.Fatal("Grow(1) past the ceiling should fail")
	}
}

func TestPagedArenaCrossesPageBoundary(t *testing.T) {
	a := NewPagedArena(0)
	a.Grow(2 * pgSize)

	at := Addr(pgSize - 2)
	a.WriteWord(at, 0xcafebabe)
	if g := a.ReadWord(at); g != 0xcafebabe {
		t.Fatalf("ReadWord across page boundary = %#x, want 0xcafebabe", g)
	}

	want := make([]byte, 16)
	for i := range want {
		want[i] = byte(i + 1)
	}
	a.WriteBytes(at, want)
	got := a.ReadBytes(at, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d across page boundary: got %#x, want %#x", i, got[i], want[i])
		}
	}
}

func TestPagedArenaUntouchedPagesReadZero(t *testing.T) {
	a := NewPagedArena(0)
	a.Grow(4 * pgSize)

	got := a.ReadBytes(Addr(3*pgSize+10), 8)
	for i, b := range got {
		if b != 0 {
			t.Fatalf("byte %d of an untouched page = %#x, want 0", i, b)
		}
	}
}

// A Heap works identically regardless of which Arena backs it.
func TestHeapOverPagedArena(t *testing.T) {
	arena := NewPagedArena(0)
	h, err := NewHeap(arena, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if err := h.Init(); err != nil {
		t.Fatal(err)
	}

	p, err := h.Malloc(2048)
	if err != nil {
		t.Fatal(err)
	}
	if p == NoAddr {
		t.Fatal("Malloc over a PagedArena returned NoAddr")
	}

	if err := h.Free(p); err != nil {
		t.Fatal(err)
	}

	h.mustVerify(t)
}
