// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package malloc

import "testing"

func TestMemArenaGrow(t *testing.T) {
	a := NewMemArena(0)
	if a.Lo() != 0 || a.Hi() != 0 {
		t.Fatalf("fresh arena not empty: lo=%d hi=%d", a.Lo(), a.Hi())
	}

	old, ok := a.Grow(16)
	if !ok {
		t.Fatal("Grow(16) failed on an unbounded arena")
	}
	if old != 0 {
		t.Fatalf("first Grow returned old end %d, want 0", old)
	}
	if a.Hi() != 16 {
		t.Fatalf("Hi() = %d, want 16", a.Hi())
	}

	old, ok = a.Grow(8)
	if !ok || old != 16 {
		t.Fatalf("second Grow = (%d, %v), want (16, true)", old, ok)
	}
	if a.Hi() != 24 {
		t.Fatalf("Hi() = %d, want 24", a.Hi())
	}
}

func TestMemArenaMaxBytesCeiling(t *testing.T) {
	a := NewMemArena(16)

	if _, ok := a.Grow(16); !ok {
		t.Fatal("Grow(16) should fit exactly at the ceiling")
	}
	if _, ok := a.Grow(1); ok {
		t.Fatal("Grow(1) past the ceiling should fail")
	}
	if a.Hi() != 16 {
		t.Fatalf("Hi() = %d after a failed Grow, want unchanged 16", a.Hi())
	}
}

func TestMemArenaWordRoundTrip(t *testing.T) {
	a := NewMemArena(0)
	a.Grow(8)

	a.WriteWord(0, 0xdeadbeef)
	if g := a.ReadWord(0); g != 0xdeadbeef {
		t.Fatalf("ReadWord(0) = %#x, want 0xdeadbeef", g)
	}

	a.WriteWord(4, 1)
	if g := a.ReadWord(0); g != 0xdeadbeef {
		t.Fatalf("writing word 4 corrupted word 0: got %#x", g)
	}
}

func TestMemArenaByteRoundTrip(t *testing.T) {
	a := NewMemArena(0)
	a.Grow(32)

	want := []byte{1, 2, 3, 4, 5}
	a.WriteBytes(10, want)
	got := a.ReadBytes(10, len(want))
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("byte %d: got %#x, want %#x", i, got[i], want[i])
		}
	}

	got[0] = 0xff
	if a.ReadBytes(10, 1)[0] == 0xff {
		t.Fatal("ReadBytes returned a slice aliasing the arena's backing array")
	}
}
